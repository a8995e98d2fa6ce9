package main

import (
	"testing"
)

func TestValidateResizeAmount(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantDevid uint64
		wantErr   bool
	}{
		{name: "max", in: "max"},
		{name: "grow", in: "+2g"},
		{name: "shrink", in: "-512m"},
		{name: "absolute", in: "10g"},
		{name: "plain bytes", in: "4096"},
		{name: "devid max", in: "2:max", wantDevid: 2},
		{name: "devid grow", in: "3:+1t", wantDevid: 3},
		{name: "devid zero", in: "0:max", wantErr: true},
		{name: "devid not numeric", in: "abc:max", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "lots", wantErr: true},
		{name: "sign only", in: "+", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			devid, err := validateResizeAmount(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResizeAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && devid != tt.wantDevid {
				t.Errorf("validateResizeAmount(%q) devid = %d, want %d", tt.in, devid, tt.wantDevid)
			}
		})
	}
}

func TestStripDevid(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "2:max", want: "max"},
		{in: "max", want: "max"},
		{in: "3:+1g", want: "+1g"},
		{in: "+1g", want: "+1g"},
	}
	for _, tt := range tests {
		if got := stripDevid(tt.in); got != tt.want {
			t.Errorf("stripDevid(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
