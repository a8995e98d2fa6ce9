package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voltopo/voltopo/internal/output"
	"github.com/voltopo/voltopo/internal/probe"
)

var resizeCmd = &cobra.Command{
	Use:   "resize [devid:][+/-]<size>|[devid:]max <path>",
	Short: "Resize a mounted volume",
	Long: `Resize the volume mounted at <path>. The amount takes an optional
device id prefix for multi-device volumes, a sign for relative growth or
shrink, and a k/m/g/t/p/e binary-unit suffix. 'max' grows the device to
its full size.

Resizing operates on mounted volumes and accepts only directories as
<path>: passing a file that contains a volume image would resize the
filesystem the file lives on instead of the image.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, path := args[0], args[1]

		devid, err := validateResizeAmount(amount)
		if err != nil {
			return err
		}

		st, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("resize: cannot stat %q: %w", path, err)
		}
		if !st.IsDir() {
			return fmt.Errorf("resize: %q is not a directory", path)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		sys := newSystem(cfg)

		cmd.Printf("Resize '%s' of '%s'\n", path, amount)
		req := probe.ResizeRequest{Devid: devid, Amount: stripDevid(amount)}
		if err := sys.Resize(cmd.Context(), path, req); err != nil {
			return fmt.Errorf("unable to resize %q: %w", path, err)
		}
		return nil
	},
}

// validateResizeAmount checks the [devid:][+/-]<size>|max form and
// returns the devid prefix, 0 when absent.
func validateResizeAmount(s string) (uint64, error) {
	var devid uint64
	rest := s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		id, err := strconv.ParseUint(s[:i], 10, 64)
		if err != nil || id == 0 {
			return 0, fmt.Errorf("invalid devid in resize amount %q", s)
		}
		devid = id
		rest = s[i+1:]
	}

	if rest == "max" {
		return devid, nil
	}
	rest = strings.TrimPrefix(strings.TrimPrefix(rest, "+"), "-")
	if _, err := output.ParseSize(rest); err != nil {
		return 0, fmt.Errorf("invalid resize amount %q: %w", s, err)
	}
	return devid, nil
}

// stripDevid drops the devid prefix; the devid travels separately in
// the request.
func stripDevid(s string) string {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return s[i+1:]
	}
	return s
}
