package output

import (
	"testing"
)

func TestParseUnits(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Units
		wantErr bool
	}{
		{name: "raw", in: "raw", want: UnitsRaw},
		{name: "binary", in: "binary", want: UnitsBinary},
		{name: "decimal", in: "decimal", want: UnitsDecimal},
		{name: "empty defaults to binary", in: "", want: UnitsBinary},
		{name: "unknown", in: "hex", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUnits(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseUnits(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseUnits(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnitsFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		units Units
		n     uint64
		want  string
	}{
		{name: "raw exact", units: UnitsRaw, n: 1536, want: "1536"},
		{name: "raw zero", units: UnitsRaw, n: 0, want: "0"},
		{name: "binary kib", units: UnitsBinary, n: 1536, want: "1.5 KiB"},
		{name: "binary small", units: UnitsBinary, n: 512, want: "512 B"},
		{name: "decimal kb", units: UnitsDecimal, n: 1500, want: "1.5 kB"},
		{name: "decimal small", units: UnitsDecimal, n: 512, want: "512 B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.units.FormatBytes(tt.n); got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    uint64
		wantErr bool
	}{
		{name: "plain bytes", in: "4096", want: 4096},
		{name: "kilobytes", in: "8k", want: 8 << 10},
		{name: "kilobytes upper", in: "8K", want: 8 << 10},
		{name: "megabytes", in: "2m", want: 2 << 20},
		{name: "gigabytes", in: "3g", want: 3 << 30},
		{name: "terabytes", in: "1t", want: 1 << 40},
		{name: "petabytes", in: "1p", want: 1 << 50},
		{name: "exabytes", in: "1e", want: 1 << 60},
		{name: "zero", in: "0", want: 0},
		{name: "empty", in: "", wantErr: true},
		{name: "bare suffix", in: "g", wantErr: true},
		{name: "negative", in: "-5g", wantErr: true},
		{name: "not a number", in: "abc", wantErr: true},
		{name: "overflow", in: "999999999999e", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseSize(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
