package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmlinuz719/stack85/vm"
)

// newPokeCmd recovers main.rs::test_memory as a non-interactive
// read-or-write against a fresh machine's memory.
func newPokeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "poke <addr> [value]",
		Short: "Read or write one byte of a fresh machine's memory",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			addr64, err := parseUintArg(args[0], 16)
			if err != nil {
				return err
			}
			addr := uint16(addr64)

			c := vm.NewControl(cfg.MemorySize)

			if len(args) == 2 {
				value, err := parseByteArg(args[1])
				if err != nil {
					return err
				}
				c.PokeMemory(addr, value)
				fmt.Printf("wrote 0x%02X to 0x%04X\n", value, addr)
				return nil
			}

			fmt.Printf("0x%04X = 0x%02X\n", addr, c.PeekMemory(addr))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "stack85.toml", "path to config file")
	return cmd
}
