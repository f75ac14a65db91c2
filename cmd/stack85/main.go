// Command stack85 hosts the STACK85 virtual machine: it loads a raw
// image or .s85 assembly source, and runs, debugs, or pokes at it.
// Each mode is a separate cobra subcommand (see alu.go, poke.go)
// rather than a blocking interactive menu.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stack85",
		Short: "STACK85 virtual machine host",
		Long:  "stack85 loads STACK85 images or .s85 assembly and runs, debugs, or inspects them.",
	}

	rootCmd.AddCommand(newRunCmd(), newDebugCmd(), newALUCmd(), newPokeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
