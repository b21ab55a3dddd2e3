package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/aoabv/datafetch/internal/cli"
	"github.com/aoabv/datafetch/pkg/datafetch"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(datafetch.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(datafetch.ExitCodeForError(err))
	}
}
