// Package cmd implements the non-server subcommands.
package cmd

import (
	"fmt"
	"os"
)

// Run dispatches the CLI subcommands. It returns the process exit code,
// or -1 when the arguments name no subcommand and the server should
// start.
func Run(args []string) int {
	if len(args) == 0 {
		return -1
	}

	switch args[0] {
	case "list":
		if err := ListTools(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	case "check":
		if err := Check(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(os.Stderr, "Unknown command %q (expected: list, check)\n", args[0])
	return 2
}
