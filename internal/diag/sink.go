// Package diag accumulates tokenizer errors and renders them against the
// original source text, quoting the offending line with the offending
// character bracketed and without any ANSI color: colorizing the report is
// an external collaborator's job, not this package's.
package diag

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a TokenizerError.
type Kind int

const (
	InvalidCharacter Kind = iota
	UnterminatedString
	UnexpectedEOF
	UnmatchedCommentClosure
	InvalidNestedComment
	ExpectedToken
)

var kindNames = map[Kind]string{
	InvalidCharacter:        "InvalidCharacter",
	UnterminatedString:      "UnterminatedString",
	UnexpectedEOF:           "UnexpectedEOF",
	UnmatchedCommentClosure: "UnmatchedCommentClosure",
	InvalidNestedComment:    "InvalidNestedComment",
	ExpectedToken:           "ExpectedToken",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// TokenizerError is a single positioned lexical diagnostic. Payload is the
// kind-specific detail: the offending rune for InvalidCharacter, the
// context or expectation name for UnexpectedEOF/ExpectedToken, empty for
// the others.
type TokenizerError struct {
	Kind    Kind
	Line    int
	Column  int
	Payload string
}

// message renders the one-line human-readable explanation for an error,
// independent of source context.
func (e TokenizerError) message() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("invalid character %q", e.Payload)
	case UnterminatedString:
		return "unterminated string literal"
	case UnexpectedEOF:
		return fmt.Sprintf("unexpected end of file while scanning %s", e.Payload)
	case UnmatchedCommentClosure:
		return "unmatched comment closure '*/' with no open comment"
	case InvalidNestedComment:
		return "unterminated nested comment"
	case ExpectedToken:
		return fmt.Sprintf("expected %s", e.Payload)
	default:
		return "unknown tokenizer error"
	}
}

// Sink accumulates TokenizerErrors in detection order. The zero value is
// ready to use.
type Sink struct {
	errors []TokenizerError
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Append records err, preserving insertion order. No de-duplication is
// performed.
func (s *Sink) Append(err TokenizerError) {
	s.errors = append(s.errors, err)
}

// HasErrors reports whether any error has been appended.
func (s *Sink) HasErrors() bool {
	return len(s.errors) > 0
}

// Errors returns the accumulated errors in detection order. The returned
// slice must not be mutated by the caller.
func (s *Sink) Errors() []TokenizerError {
	return s.errors
}

// Render formats every accumulated error as a four-line block against
// source, in insertion order:
//
//	[Kind] Error at line L, column C
//	<explanation>
//	<source line, with the offending column bracketed>
//	----
//
// Line lookup is 1-based. A line number outside the source's range is
// rendered as "<line not found>". A column beyond the line's length is
// rendered without emphasis.
func (s *Sink) Render(source string) string {
	if len(s.errors) == 0 {
		return ""
	}

	lines := strings.Split(source, "\n")

	var sb strings.Builder
	for _, err := range s.errors {
		fmt.Fprintf(&sb, "[%s] Error at line %d, column %d\n", err.Kind, err.Line, err.Column)
		sb.WriteString(err.message())
		sb.WriteString("\n")
		sb.WriteString(sourceLineFor(lines, err.Line, err.Column))
		sb.WriteString("\n")
		sb.WriteString("----\n")
	}

	return sb.String()
}

// sourceLineFor returns the quoted source line for line, with the rune at
// column bracketed for emphasis. Falls back to a placeholder when line is
// out of range, and prints the raw line unmodified when column exceeds its
// length.
func sourceLineFor(lines []string, line, column int) string {
	if line < 1 || line > len(lines) {
		return "<line not found>"
	}

	text := lines[line-1]
	runes := []rune(text)
	if column < 1 || column > len(runes) {
		return text
	}

	var sb strings.Builder
	sb.WriteString(string(runes[:column-1]))
	sb.WriteByte('[')
	sb.WriteRune(runes[column-1])
	sb.WriteByte(']')
	sb.WriteString(string(runes[column:]))
	return sb.String()
}
