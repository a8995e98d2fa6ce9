package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voltopo/voltopo/internal/output"
	"github.com/voltopo/voltopo/internal/topology"
)

var showCmd = &cobra.Command{
	Use:   "show [<path>|<uuid>|<device>|<label>]",
	Short: "Show the structure of all volumes",
	Long: `Display the device topology of every volume visible on the host.

Mounted volumes are reported from the kernel mount table with
authoritative usage statistics; unmounted ones come from the raw
block-device scan, with seed chains resolved and their device lists
merged. Each volume appears exactly once no matter how many sources
observed it.

With an argument, only the matching volume is shown: the argument is
tried as an identity prefix, an exact label, a mountpoint, or a block
device path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		allDevices, _ := cmd.Flags().GetBool("all-devices")
		mountedOnly, _ := cmd.Flags().GetBool("mounted")
		format, _ := cmd.Flags().GetString("format")
		noHeaders, _ := cmd.Flags().GetBool("no-headers")

		if allDevices && mountedOnly {
			return fmt.Errorf("--all-devices and --mounted are mutually exclusive")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		units, err := resolveUnits(cfg)
		if err != nil {
			return err
		}
		if format == "" {
			format = cfg.Format
		}
		formatter, err := output.NewFormatter(output.Options{
			Format:    output.Format(format),
			Units:     units,
			NoHeaders: noHeaders,
		})
		if err != nil {
			return err
		}

		sys := newSystem(cfg)
		presenter := &topology.Presenter{
			Mounts:  sys,
			Scanner: sys,
			Prober:  sys,
			Labels:  sys,
			Space:   sys,
		}

		opts := topology.Options{
			MountedOnly: mountedOnly,
			DevicesOnly: allDevices,
		}
		if len(args) == 1 {
			if args[0] == "" {
				return fmt.Errorf("empty search argument")
			}
			opts.Search = args[0]
		}

		reports, showErr := presenter.Show(cmd.Context(), opts)

		// Render what was gathered even when a pass failed; the error
		// still drives the exit status.
		rendered, err := formatter.FormatReportList(reports)
		if err != nil {
			return errors.Join(showErr, err)
		}
		cmd.Print(rendered)
		return showErr
	},
}

func init() {
	showCmd.Flags().BoolP("all-devices", "d", false,
		"show only volumes found by the raw device scan")
	showCmd.Flags().BoolP("mounted", "m", false,
		"show only mounted volumes")
	showCmd.Flags().String("format", "",
		"output format: text, table, json or yaml")
	showCmd.Flags().Bool("no-headers", false,
		"omit headers in table format")
}
