// Command shops runs the shops REST service.
//
//	shops            same as "shops serve"
//	shops serve      serve the HTTP API until SIGINT/SIGTERM
//	shops migrate    apply database migrations and exit
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command line and returns the process exit code. Errors
// are printed to stderr because the root command silences cobra's own
// error output.
func run(args []string, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "shops: %v\n", err)
		return 1
	}
	return 0
}
