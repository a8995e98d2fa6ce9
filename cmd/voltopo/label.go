package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var labelCmd = &cobra.Command{
	Use:   "label <device>|<mountpoint> [<newlabel>]",
	Short: "Get or change the label of a volume",
	Long: `With one argument, print the label of the volume on the given
device or mountpoint. With a second argument, set the label instead.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		sys := newSystem(cfg)

		if len(args) == 2 {
			if err := sys.SetLabel(cmd.Context(), args[0], args[1]); err != nil {
				return fmt.Errorf("failed to set label on %q: %w", args[0], err)
			}
			return nil
		}

		label, err := sys.Label(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to read label of %q: %w", args[0], err)
		}
		cmd.Println(label)
		return nil
	},
}
