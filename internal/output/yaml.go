package output

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/voltopo/voltopo/internal/topology"
)

// YAMLFormatter formats reports as YAML.
type YAMLFormatter struct{}

// FormatReport formats a single volume report as YAML.
func (f *YAMLFormatter) FormatReport(r *topology.Report) (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report to YAML: %w", err)
	}
	return string(data), nil
}

// FormatReportList formats a list of volume reports as a YAML stream,
// one document per volume.
func (f *YAMLFormatter) FormatReportList(reports []topology.Report) (string, error) {
	if len(reports) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	for i := range reports {
		data, err := yaml.Marshal(&reports[i])
		if err != nil {
			return "", fmt.Errorf("failed to marshal report %s to YAML: %w", reports[i].UUID, err)
		}
		if i > 0 {
			buf.WriteString("---\n")
		}
		buf.Write(data)
	}
	return buf.String(), nil
}
