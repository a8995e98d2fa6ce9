package output

import (
	"fmt"
	"strings"

	"github.com/voltopo/voltopo/internal/topology"
)

// TextFormatter renders reports in the classic indented layout, one
// block per volume.
type TextFormatter struct {
	Units Units
}

// FormatReport formats a single volume report.
func (f *TextFormatter) FormatReport(r *topology.Report) (string, error) {
	var b strings.Builder

	if r.Label != "" {
		fmt.Fprintf(&b, "Label: '%s' ", r.Label)
	} else {
		b.WriteString("Label: none ")
	}
	fmt.Fprintf(&b, " uuid: %s\n", r.UUID)
	fmt.Fprintf(&b, "\tTotal devices %d FS bytes used %s\n",
		r.TotalDevices, f.Units.FormatBytes(r.BytesUsed))

	for _, d := range r.Devices {
		fmt.Fprintf(&b, "\tdevid %4d size %s used %s path %s\n",
			d.Devid,
			f.Units.FormatBytes(d.TotalBytes),
			f.Units.FormatBytes(d.UsedBytes),
			d.Path)
	}

	if r.DevicesMissing {
		b.WriteString("\t*** Some devices missing\n")
	}
	b.WriteString("\n")
	return b.String(), nil
}

// FormatReportList formats each report as its own block.
func (f *TextFormatter) FormatReportList(reports []topology.Report) (string, error) {
	if len(reports) == 0 {
		return "No volumes found\n", nil
	}
	var b strings.Builder
	for i := range reports {
		s, err := f.FormatReport(&reports[i])
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
