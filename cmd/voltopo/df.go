package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dfCmd = &cobra.Command{
	Use:   "df <path>",
	Short: "Show space usage for a mounted volume",
	Long: `Display per-allocation-class space usage for the volume mounted
at the given path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		units, err := resolveUnits(cfg)
		if err != nil {
			return err
		}

		sys := newSystem(cfg)
		rows, err := sys.SpaceInfo(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("cannot get space info: %w", err)
		}

		for _, r := range rows {
			cmd.Printf("%s, %s: total=%s, used=%s\n",
				r.Kind, r.Profile,
				units.FormatBytes(r.TotalBytes),
				units.FormatBytes(r.UsedBytes))
		}
		return nil
	},
}
