// keytree is a demo CLI for the keytree library. It offers an
// interactive REPL for building and navigating a dialogue tree, and a
// benchmark mode that measures container throughput.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "keytree",
		Short:         "Demo tooling for the keytree container",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newReplCommand())
	root.AddCommand(newBenchCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "keytree: %v\n", err)
		os.Exit(1)
	}
}
