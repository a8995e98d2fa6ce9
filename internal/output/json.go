package output

import (
	"encoding/json"
	"fmt"

	"github.com/voltopo/voltopo/internal/topology"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct{}

// FormatReport formats a single volume report as JSON.
func (f *JSONFormatter) FormatReport(r *topology.Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// FormatReportList formats a list of volume reports as a JSON array.
func (f *JSONFormatter) FormatReportList(reports []topology.Report) (string, error) {
	if len(reports) == 0 {
		return "[]\n", nil
	}
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal reports to JSON: %w", err)
	}
	return string(data) + "\n", nil
}
