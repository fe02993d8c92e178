// Package main is the entry point for the modegen CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thoreinstein/modegen/cmd/modegen/commands"
	modegenerrors "github.com/thoreinstein/modegen/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	var exitErr *modegenerrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	os.Exit(modegenerrors.ExitUser)
}
