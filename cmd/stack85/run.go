package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmlinuz719/stack85/vm"
)

func newRunCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run [image-or-source]",
		Short: "Load an image or .s85 source and run it to halt",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			path, err := resolveImagePath(args, cfg)
			if err != nil {
				return err
			}
			image, err := loadImage(path)
			if err != nil {
				return err
			}

			c := vm.NewControl(cfg.MemorySize)
			c.LoadImage(image)
			c.Start()
			for c.IsRunning() {
				c.ExecuteInstruction()
			}

			fmt.Print(c.View())
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "stack85.toml", "path to config file")
	return cmd
}
