package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/voltopo/voltopo/internal/probe"
)

var replaceCmd = &cobra.Command{
	Use:   "replace <command>",
	Short: "Replace a device of a mounted volume",
}

var replaceStartCmd = &cobra.Command{
	Use:   "start <srcdev>|<devid> <targetdev> <mountpoint>",
	Short: "Start a device replace operation",
	Long: `Duplicate the data currently stored on the source device onto the
target device and remove the source from the volume afterwards. A
numeric first argument is taken as the device id, for sources that are
no longer attached. The target must be at least as large as the source.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		readOnly, _ := cmd.Flags().GetBool("read-only-src")
		force, _ := cmd.Flags().GetBool("force")

		req := probe.ReplaceStartRequest{
			Mountpoint:  args[2],
			Target:      args[1],
			ReadOnlySrc: readOnly,
			Force:       force,
		}
		if devid, err := strconv.ParseUint(args[0], 10, 64); err == nil {
			req.SourceDevid = devid
		} else {
			req.Source = args[0]
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		sys := newSystem(cfg)
		if err := sys.ReplaceStart(cmd.Context(), req); err != nil {
			return fmt.Errorf("replace start failed: %w", err)
		}
		return nil
	},
}

var replaceStatusCmd = &cobra.Command{
	Use:   "status <mountpoint>",
	Short: "Print the status of a running or finished device replace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		sys := newSystem(cfg)
		st, err := sys.ReplaceStatus(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("replace status failed: %w", err)
		}
		cmd.Println(formatReplaceStatus(st))
		return nil
	},
}

var replaceCancelCmd = &cobra.Command{
	Use:   "cancel <mountpoint>",
	Short: "Cancel a running device replace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		sys := newSystem(cfg)
		if err := sys.ReplaceCancel(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("replace cancel failed: %w", err)
		}
		return nil
	},
}

func init() {
	replaceStartCmd.Flags().BoolP("read-only-src", "r", false,
		"only read from the source device if no other zero-defect mirror exists")
	replaceStartCmd.Flags().BoolP("force", "f", false,
		"overwrite a target that looks like it contains a filesystem")

	replaceCmd.AddCommand(replaceStartCmd)
	replaceCmd.AddCommand(replaceStatusCmd)
	replaceCmd.AddCommand(replaceCancelCmd)
}

// formatReplaceStatus renders one status line in the classic shape.
func formatReplaceStatus(st probe.ReplaceStatus) string {
	switch st.State {
	case probe.ReplaceNeverStarted:
		return "Never started"
	case probe.ReplaceStarted:
		return fmt.Sprintf("%s done, %d write errs, %d uncorr. read errs",
			formatProgress(st.ProgressPermille), st.WriteErrors, st.UncorrectableReadErrors)
	default:
		return fmt.Sprintf("%s, %d write errs, %d uncorr. read errs",
			st.State, st.WriteErrors, st.UncorrectableReadErrors)
	}
}

// formatProgress renders a permille progress value as a percentage with
// one decimal.
func formatProgress(permille int) string {
	return fmt.Sprintf("%d.%01d%%", permille/10, permille%10)
}
