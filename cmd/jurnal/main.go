package main

import (
	"fmt"
	"os"

	"github.com/jurnalguru/jurnal/internal/cli"
)

func main() {
	// Shared store handles live for the whole process and are released
	// on exit; WAL mode keeps the database consistent without an
	// explicit close.
	root := cli.NewRootCommand()
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
