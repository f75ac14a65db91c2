package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmlinuz719/stack85/vm"
)

// newALUCmd recovers main.rs::test_alu's menu option as a
// non-interactive one-shot evaluator.
func newALUCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alu <x> <y> <op>",
		Short: "Evaluate one ALU operation and print result, res_hi, and flags",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseByteArg(args[0])
			if err != nil {
				return err
			}
			y, err := parseByteArg(args[1])
			if err != nil {
				return err
			}
			op, err := parseByteArg(args[2])
			if err != nil {
				return err
			}
			if op > vm.MaxALUOpcode {
				return fmt.Errorf("op %d exceeds max ALU opcode %d", op, vm.MaxALUOpcode)
			}

			var a vm.ALU
			a.LoadX(x)
			a.LoadY(y)
			a.LoadOp(op)
			a.Compute()

			fmt.Printf("result=0x%02X res_hi=0x%02X flags=0x%02X (C=%v V=%v Z=%v N=%v O=%v)\n",
				a.Result(), a.ResHi(), a.Flags(),
				a.TestC(), a.TestV(), a.TestZ(), a.TestN(), a.TestO())
			return nil
		},
	}
	return cmd
}
