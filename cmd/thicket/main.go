// Command thicket is a small CLI wrapper around the thicket package: it
// parses documents and converts them to other formats for inspection
// and scripting.
package main

import (
	"fmt"
	"os"

	"github.com/thicket-lang/go-thicket/internal/cli"
)

func main() {
	if err := cli.NewDefaultRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
