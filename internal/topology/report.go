// Package topology drives the presentation pass over the host's volume
// topology: the mounted-then-unmounted two-pass scan, identity
// deduplication, seed resolution, device-list merge, and the rendered
// per-volume reports.
package topology

import (
	"github.com/voltopo/voltopo/internal/volume"
)

// DeviceReport is one device row of a rendered volume.
type DeviceReport struct {
	Devid      uint64 `json:"devid" yaml:"devid"`
	TotalBytes uint64 `json:"size_bytes" yaml:"size_bytes"`
	UsedBytes  uint64 `json:"used_bytes" yaml:"used_bytes"`
	Path       string `json:"path" yaml:"path"`
}

// Report is one deduplicated volume ready for display: label, identity,
// declared device count, usage, and the merged, devid-sorted device
// list.
type Report struct {
	UUID           string         `json:"uuid" yaml:"uuid"`
	Label          string         `json:"label,omitempty" yaml:"label,omitempty"`
	TotalDevices   uint64         `json:"total_devices" yaml:"total_devices"`
	BytesUsed      uint64         `json:"bytes_used" yaml:"bytes_used"`
	Devices        []DeviceReport `json:"devices" yaml:"devices"`
	DevicesMissing bool           `json:"devices_missing" yaml:"devices_missing"`
	Mounted        bool           `json:"mounted" yaml:"mounted"`
	Mountpoint     string         `json:"mountpoint,omitempty" yaml:"mountpoint,omitempty"`
}

// reportFor renders a volume with an already-final device list.
func reportFor(v *volume.Volume, devices []*volume.Device, mounted bool) Report {
	r := Report{
		UUID:         v.Identity.String(),
		Label:        v.Label,
		TotalDevices: v.TotalDevices,
		BytesUsed:    v.BytesUsed,
		Mounted:      mounted,
		Mountpoint:   v.Mountpoint,
	}
	for _, d := range devices {
		r.Devices = append(r.Devices, DeviceReport{
			Devid:      d.Devid,
			TotalBytes: d.TotalBytes,
			UsedBytes:  d.UsedBytes,
			Path:       d.Path,
		})
	}
	r.DevicesMissing = uint64(len(r.Devices)) < v.TotalDevices
	return r
}
