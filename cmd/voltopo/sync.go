package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync <path>",
	Short: "Force a sync on a mounted volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sys := newSystem(cfg)
		cmd.Printf("FSSync '%s'\n", args[0])
		if err := sys.Sync(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("sync failed on %q: %w", args[0], err)
		}
		return nil
	},
}
