package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/voltopo/voltopo/internal/topology"
)

// TableFormatter renders reports as a one-row-per-volume table.
type TableFormatter struct {
	Units Units
	// NoHeaders omits the header row.
	NoHeaders bool
}

// FormatReport formats a single volume report as a table row.
func (f *TableFormatter) FormatReport(r *topology.Report) (string, error) {
	return f.FormatReportList([]topology.Report{*r})
}

// FormatReportList formats a list of volume reports as a table.
func (f *TableFormatter) FormatReportList(reports []topology.Report) (string, error) {
	if len(reports) == 0 {
		return "No volumes found\n", nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	if !f.NoHeaders {
		_, _ = fmt.Fprintln(w, "LABEL\tUUID\tDEVICES\tUSED\tSTATUS")
	}

	for _, r := range reports {
		label := r.Label
		if label == "" {
			label = "-"
		}

		status := "unmounted"
		if r.Mounted {
			status = r.Mountpoint
		}
		if r.DevicesMissing {
			status += " (devices missing)"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%d/%d\t%s\t%s\n",
			label, r.UUID, len(r.Devices), r.TotalDevices,
			f.Units.FormatBytes(r.BytesUsed), status)
	}

	_ = w.Flush()
	return buf.String(), nil
}
