// Command worldsim drives the tokenizer over a source file from the
// command line: the external collaborator the front end specification
// treats as out of scope for its own tested invariants, but still
// describes precisely enough to implement here.
package main

import (
	"fmt"
	"os"

	"github.com/nevakrien/world-simulator/cmd/worldsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
