package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"hlsgrab/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		// Bad operator or manifest input exits 2 so scripts can tell it
		// apart from environment failures.
		if services.IsValidation(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
