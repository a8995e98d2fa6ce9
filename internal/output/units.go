package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Units selects how byte counts are rendered.
type Units string

const (
	// UnitsRaw prints exact byte counts.
	UnitsRaw Units = "raw"
	// UnitsBinary prints IEC sizes (KiB, MiB, ...), the default.
	UnitsBinary Units = "binary"
	// UnitsDecimal prints SI sizes (kB, MB, ...).
	UnitsDecimal Units = "decimal"
)

// ParseUnits validates a unit mode string.
func ParseUnits(s string) (Units, error) {
	switch Units(s) {
	case UnitsRaw, UnitsBinary, UnitsDecimal:
		return Units(s), nil
	case "":
		return UnitsBinary, nil
	default:
		return "", fmt.Errorf("invalid units %q (valid: raw, binary, decimal)", s)
	}
}

// FormatBytes renders n in the selected unit mode.
func (u Units) FormatBytes(n uint64) string {
	switch u {
	case UnitsRaw:
		return strconv.FormatUint(n, 10)
	case UnitsDecimal:
		return humanize.Bytes(n)
	default:
		return humanize.IBytes(n)
	}
}

// ParseSize parses a size argument with an optional binary-unit suffix:
// plain bytes, or k/m/g/t/p/e for KiB multiples, case-insensitive. Used
// by resize and defragment arguments.
func ParseSize(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	mult := uint64(1)
	num := s
	switch strings.ToLower(s[len(s)-1:]) {
	case "k":
		mult = 1 << 10
	case "m":
		mult = 1 << 20
	case "g":
		mult = 1 << 30
	case "t":
		mult = 1 << 40
	case "p":
		mult = 1 << 50
	case "e":
		mult = 1 << 60
	}
	if mult != 1 {
		num = s[:len(s)-1]
	}

	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if mult != 1 && n > ^uint64(0)/mult {
		return 0, fmt.Errorf("size %q overflows", s)
	}
	return n * mult, nil
}
