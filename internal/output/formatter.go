// Package output renders volume topology reports in various formats
// (text, table, JSON, YAML) and handles byte-size unit modes.
package output

import (
	"fmt"

	"github.com/voltopo/voltopo/internal/topology"
)

// Format represents an output format type.
type Format string

const (
	// FormatText is the classic indented per-volume layout.
	FormatText Format = "text"
	// FormatTable is a one-row-per-volume table.
	FormatTable Format = "table"
	// FormatJSON is JSON for machine consumption.
	FormatJSON Format = "json"
	// FormatYAML is YAML for machine consumption.
	FormatYAML Format = "yaml"
)

// Formatter renders topology reports for output.
type Formatter interface {
	// FormatReport formats a single volume report.
	FormatReport(r *topology.Report) (string, error)

	// FormatReportList formats a list of volume reports.
	FormatReportList(reports []topology.Report) (string, error)
}

// Options contains options for formatting output.
type Options struct {
	// Format specifies the output format.
	Format Format
	// Units selects byte-size rendering for human-readable formats.
	Units Units
	// NoHeaders omits headers in table format.
	NoHeaders bool
}

// NewFormatter creates a new Formatter based on the specified format.
func NewFormatter(opts Options) (Formatter, error) {
	switch opts.Format {
	case FormatText, "":
		return &TextFormatter{Units: opts.Units}, nil
	case FormatTable:
		return &TableFormatter{Units: opts.Units, NoHeaders: opts.NoHeaders}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: text, table, json, yaml)", opts.Format)
	}
}

// ValidateFormat checks if a format string is valid.
func ValidateFormat(format string) error {
	switch Format(format) {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid formats: text, table, json, yaml)", format)
	}
}
