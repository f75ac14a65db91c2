package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vmlinuz719/stack85/vm"
)

// newDebugCmd launches the full-screen TUI debugger: step, run/pause,
// and set-breakpoint, bound to keys instead of typed commands.
func newDebugCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "debug [image-or-source]",
		Short: "Launch the interactive full-screen debugger",
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

			_, err = tea.NewProgram(newDebugModel(c), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "stack85.toml", "path to config file")
	return cmd
}
