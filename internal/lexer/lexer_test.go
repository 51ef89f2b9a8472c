package lexer

import (
	"testing"

	"github.com/nevakrien/world-simulator/internal/diag"
	"github.com/nevakrien/world-simulator/pkg/token"
)

func tokenTypes(tokens []token.Token) []token.Type {
	types := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func assertTypes(t *testing.T, got []token.Token, want []token.Type) {
	t.Helper()
	gotTypes := tokenTypes(got)
	if len(gotTypes) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(gotTypes), gotTypes)
	}
	for i := range want {
		if gotTypes[i] != want[i] {
			t.Fatalf("token[%d]: expected %s, got %s", i, want[i], gotTypes[i])
		}
	}
}

func TestOperatorMaximalMunch(t *testing.T) {
	// Scenario 6: every compound operator must win over its prefix form.
	source := "<<= >>= == != <= >= += -= *= /= %= &= |= ^="
	sink := diag.NewSink()
	tokens := Tokenize(source, sink)

	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}

	want := []token.Type{
		token.SHL_ASSIGN, token.SHR_ASSIGN, token.EQ, token.NEQ,
		token.LE, token.GE, token.PLUS_ASSIGN, token.MINUS_ASSIGN,
		token.STAR_ASSIGN, token.SLASH_ASSIGN, token.PERCENT_ASSIGN,
		token.AMP_ASSIGN, token.PIPE_ASSIGN, token.CARET_ASSIGN,
		token.EOF,
	}
	assertTypes(t, tokens, want)
}

func TestStringEscapes(t *testing.T) {
	// Scenario 7: the \n and \t escapes decode to a real newline and a real tab.
	sink := diag.NewSink()
	tokens := Tokenize(`"hi\n\tthere"`, sink)

	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
	if tokens[0].Type != token.STRING {
		t.Fatalf("expected STRING, got %s", tokens[0].Type)
	}
	if tokens[0].Literal != "hi\n\tthere" {
		t.Fatalf("expected %q, got %q", "hi\n\tthere", tokens[0].Literal)
	}
}

func TestStringEscapeNewline(t *testing.T) {
	// \n alone decodes to a single newline character.
	sink := diag.NewSink()
	tokens := Tokenize(`"\n"`, sink)

	if tokens[0].Literal != "\n" {
		t.Fatalf("expected a single newline, got %q (len %d)", tokens[0].Literal, len(tokens[0].Literal))
	}
}

func TestNestedBlockCommentUnmatched(t *testing.T) {
	// Scenario 5: one opener never closes; tokenizer still reaches EOF.
	sink := diag.NewSink()
	tokens := Tokenize("/* outer /* inner */ ", sink)

	if !sink.HasErrors() {
		t.Fatalf("expected an InvalidNestedComment error")
	}
	errs := sink.Errors()
	if len(errs) != 1 || errs[0].Kind != diag.InvalidNestedComment {
		t.Fatalf("expected exactly one InvalidNestedComment, got %+v", errs)
	}
	if errs[0].Line != 1 || errs[0].Column != 1 {
		t.Fatalf("expected outer opener at (1,1), got (%d,%d)", errs[0].Line, errs[0].Column)
	}
	if tokens[len(tokens)-1].Type != token.EOF {
		t.Fatalf("expected a trailing EOF token")
	}
}

func TestNestedBlockCommentBalanced(t *testing.T) {
	sink := diag.NewSink()
	tokens := Tokenize("/* outer /* inner */ still outer */ x", sink)

	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
	assertTypes(t, tokens, []token.Type{token.IDENT, token.EOF})
}

func TestLineComment(t *testing.T) {
	sink := diag.NewSink()
	tokens := Tokenize("x // comment here\ny", sink)

	assertTypes(t, tokens, []token.Type{token.IDENT, token.EOL, token.IDENT, token.EOF})
}

func TestUnmatchedCommentClosure(t *testing.T) {
	sink := diag.NewSink()
	tokens := Tokenize("x */ y", sink)

	if !sink.HasErrors() {
		t.Fatalf("expected an UnmatchedCommentClosure error")
	}
	if sink.Errors()[0].Kind != diag.UnmatchedCommentClosure {
		t.Fatalf("expected UnmatchedCommentClosure, got %s", sink.Errors()[0].Kind)
	}
	assertTypes(t, tokens, []token.Type{token.IDENT, token.IDENT, token.EOF})
}

func TestUnterminatedString(t *testing.T) {
	sink := diag.NewSink()
	tokens := Tokenize(`"hello`, sink)

	if !sink.HasErrors() {
		t.Fatalf("expected an UnterminatedString error")
	}
	if sink.Errors()[0].Kind != diag.UnterminatedString {
		t.Fatalf("expected UnterminatedString, got %s", sink.Errors()[0].Kind)
	}
	if tokens[0].Type != token.STRING || tokens[0].Literal != "hello" {
		t.Fatalf("expected partial STRING token %q, got %+v", "hello", tokens[0])
	}
}

func TestInvalidCharacter(t *testing.T) {
	sink := diag.NewSink()
	tokens := Tokenize("x # y", sink)

	if !sink.HasErrors() {
		t.Fatalf("expected an InvalidCharacter error")
	}
	if sink.Errors()[0].Kind != diag.InvalidCharacter || sink.Errors()[0].Payload != "#" {
		t.Fatalf("expected InvalidCharacter(#), got %+v", sink.Errors()[0])
	}
	assertTypes(t, tokens, []token.Type{token.IDENT, token.IDENT, token.EOF})
}

func TestIdentifierIsZeroCopy(t *testing.T) {
	source := "let long_identifier_name"
	sink := diag.NewSink()
	tokens := Tokenize(source, sink)

	ident := tokens[1]
	if ident.Literal != "long_identifier_name" {
		t.Fatalf("unexpected literal %q", ident.Literal)
	}
	// The identifier's byte offset must point back into source at the
	// same text, proving no copy took place at the slicing boundary.
	offset := ident.Pos.Offset
	if source[offset:offset+len(ident.Literal)] != ident.Literal {
		t.Fatalf("identifier slice does not align with source at offset %d", offset)
	}
}

func TestNumberLiteral(t *testing.T) {
	sink := diag.NewSink()
	tokens := Tokenize("042", sink)

	if tokens[0].Type != token.NUMBER || tokens[0].IntValue != 42 {
		t.Fatalf("expected NUMBER(42), got %+v", tokens[0])
	}
}

func TestNumberOverflowReportsInvalidCharacter(t *testing.T) {
	sink := diag.NewSink()
	tokens := Tokenize("99999999999999999999", sink)

	if !sink.HasErrors() || sink.Errors()[0].Kind != diag.InvalidCharacter {
		t.Fatalf("expected an InvalidCharacter error for an overflowing literal, got %+v", sink.Errors())
	}
	assertTypes(t, tokens, []token.Type{token.EOF})
}

func TestPositionTracking(t *testing.T) {
	sink := diag.NewSink()
	tokens := Tokenize("ab\ncd", sink)

	if tokens[0].Pos.Line != 1 || tokens[0].Pos.Column != 1 {
		t.Fatalf("expected ab at (1,1), got %+v", tokens[0].Pos)
	}
	// tokens[1] is the EOL marker between the two identifiers.
	secondIdent := tokens[2]
	if secondIdent.Pos.Line != 2 || secondIdent.Pos.Column != 1 {
		t.Fatalf("expected cd at (2,1), got %+v", secondIdent.Pos)
	}
}

func TestSinglePunctuation(t *testing.T) {
	sink := diag.NewSink()
	tokens := Tokenize(";:,.?@(){}[]", sink)

	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
	want := []token.Type{
		token.SEMI, token.COLON, token.COMMA, token.DOT, token.QUESTION,
		token.AT, token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACKET, token.RBRACKET, token.EOF,
	}
	assertTypes(t, tokens, want)
}

func TestLengthPreservingPosition(t *testing.T) {
	// Testable property: the EOF token's byte offset equals source length
	// whenever tokenization is clean, i.e. the scan consumed every byte.
	source := "abc + 123 * (x - y)"
	sink := diag.NewSink()
	tokens := Tokenize(source, sink)
	if sink.HasErrors() {
		t.Fatalf("unexpected errors: %v", sink.Errors())
	}
	eof := tokens[len(tokens)-1]
	if eof.Type != token.EOF {
		t.Fatalf("expected trailing EOF, got %s", eof.Type)
	}
	if eof.Pos.Offset != len(source) {
		t.Fatalf("expected EOF offset %d, got %d", len(source), eof.Pos.Offset)
	}
}
