// Command hjarta-ini reads, converts and edits INI files whose section names are
// nested paths and whose values are typed literals.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr, slog.SetDefault))
}

// run executes the tool. install receives the logger built from the flags so the caller
// can make it the default for library code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, install func(*slog.Logger)) int {
	err := newApp(stdin, stdout, stderr, install).Run(args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)

		return 1
	}

	return 0
}
