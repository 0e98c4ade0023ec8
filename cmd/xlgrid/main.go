// Command xlgrid converts YAML or JSON documents into spreadsheets and other
// cell-grid formats.
package main

import (
	"fmt"
	"os"

	"github.com/bjaus/xlgrid/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
