// Package volume holds the core data model for multi-device volume
// topology: identities, device and volume records, the scan snapshot,
// seed-chain resolution, and the device-list merge.
package volume

// Device is one physical block device contributing to a volume.
type Device struct {
	// Devid is the volume-local device id. Unique within one Volume
	// after merge; a sprout and its seed may both carry the same devid.
	Devid uint64
	// UUID is the per-device identity, distinct from the volume identity.
	UUID Identity
	// Path is the last known device node path. May be stale.
	Path string
	// TotalBytes and UsedBytes are the device-level space statistics.
	TotalBytes uint64
	UsedBytes  uint64
	// Generation is the per-device revision counter. When the same devid
	// is seen at both the sprout and seed layer, the higher generation is
	// the current copy.
	Generation uint64

	// Volume is a non-owning back-reference to the record the device
	// currently belongs to.
	Volume *Volume
}

// Volume is one logical multi-device volume as observed from one source.
type Volume struct {
	Identity Identity
	// Label is the human-readable volume name, empty when unset.
	Label string
	// TotalDevices is the device count the volume's own metadata claims.
	// When it exceeds the number of visible devices, either a seed chain
	// or missing devices explain the shortfall.
	TotalDevices uint64
	// BytesUsed is the filesystem-level used byte count as reported by
	// the observing source.
	BytesUsed uint64
	// Devices are the devices visible to the observing source, keyed by
	// Devid. Order is the source's encounter order until sorted for
	// display.
	Devices []*Device
	// Seed links the read-only seed volume this one extends, forming a
	// singly-linked chain toward the innermost seed.
	Seed *Volume

	// Mountpoint is set for records observed via the mount table.
	Mountpoint string
}

// Clone deep-copies the volume and its devices. The seed link is not
// copied: clones start as unresolved records and the resolver rebuilds
// the chain from the snapshot.
func (v *Volume) Clone() *Volume {
	c := &Volume{
		Identity:     v.Identity,
		Label:        v.Label,
		TotalDevices: v.TotalDevices,
		BytesUsed:    v.BytesUsed,
		Mountpoint:   v.Mountpoint,
	}
	if len(v.Devices) > 0 {
		c.Devices = make([]*Device, 0, len(v.Devices))
		for _, d := range v.Devices {
			dc := *d
			dc.Volume = c
			c.Devices = append(c.Devices, &dc)
		}
	}
	return c
}

// HasSeedShortfall reports whether the record claims more devices than
// are visible, i.e. part of its device list lives in a seed volume or is
// missing outright.
func (v *Volume) HasSeedShortfall() bool {
	return uint64(len(v.Devices)) < v.TotalDevices
}

// AnyDevicePath returns one known device path for partial opens, or ""
// when the record carries no devices.
func (v *Volume) AnyDevicePath() string {
	for _, d := range v.Devices {
		if d.Path != "" {
			return d.Path
		}
	}
	return ""
}
