package main

import (
	"errors"
	"os"

	"github.com/nufmt/nufmt/cli/cmd"
)

// Exit codes: 0 success, 1 --check found files that would be reformatted
// (no errors), 2 any other error.
func main() {
	err := cmd.Execute()
	switch {
	case err == nil:
		os.Exit(0)
	case errors.Is(err, cmd.ErrWouldReformat):
		os.Exit(1)
	default:
		os.Exit(2)
	}
}
