package cmd

import (
	"fmt"
	"os"
)

// readFile reads path, wrapping any error with the path for a readable
// CLI message.
func readFile(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(contents), nil
}
