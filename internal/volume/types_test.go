package volume

import (
	"errors"
	"testing"
)

func TestVolume_Clone(t *testing.T) {
	id := mustIdentity(t, "11111111-2222-3333-4444-555555555555")
	orig := &Volume{
		Identity:     id,
		Label:        "data",
		TotalDevices: 2,
		BytesUsed:    4096,
		Mountpoint:   "/mnt/data",
		Devices:      []*Device{dev(1, 3, "/dev/sdb"), dev(2, 3, "/dev/sdc")},
		Seed:         &Volume{Identity: mustIdentity(t, "99999999-9999-9999-9999-999999999999")},
	}
	orig.Devices[0].Volume = orig
	orig.Devices[1].Volume = orig

	c := orig.Clone()

	if c.Identity != id || c.Label != "data" || c.TotalDevices != 2 ||
		c.BytesUsed != 4096 || c.Mountpoint != "/mnt/data" {
		t.Error("scalar fields not copied")
	}
	if c.Seed != nil {
		t.Error("seed link copied, clones must start unresolved")
	}
	if len(c.Devices) != 2 {
		t.Fatalf("clone has %d devices, want 2", len(c.Devices))
	}
	for i, d := range c.Devices {
		if d == orig.Devices[i] {
			t.Errorf("device %d is shared with the original", i)
		}
		if d.Volume != c {
			t.Errorf("device %d back-reference points outside the clone", i)
		}
	}

	c.Devices[0].Generation = 99
	if orig.Devices[0].Generation != 3 {
		t.Error("mutating the clone changed the original device")
	}
}

func TestVolume_HasSeedShortfall(t *testing.T) {
	tests := []struct {
		name    string
		total   uint64
		visible int
		want    bool
	}{
		{name: "all visible", total: 2, visible: 2, want: false},
		{name: "shortfall", total: 3, visible: 1, want: true},
		{name: "zero declared", total: 0, visible: 0, want: false},
		{name: "more visible than declared", total: 1, visible: 2, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Volume{TotalDevices: tt.total}
			for i := 0; i < tt.visible; i++ {
				v.Devices = append(v.Devices, dev(uint64(i+1), 1, ""))
			}
			if got := v.HasSeedShortfall(); got != tt.want {
				t.Errorf("HasSeedShortfall() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVolume_AnyDevicePath(t *testing.T) {
	v := &Volume{Devices: []*Device{dev(1, 1, ""), dev(2, 1, "/dev/sdc")}}
	if got := v.AnyDevicePath(); got != "/dev/sdc" {
		t.Errorf("AnyDevicePath() = %q, want /dev/sdc", got)
	}

	empty := &Volume{}
	if got := empty.AnyDevicePath(); got != "" {
		t.Errorf("AnyDevicePath() = %q on empty volume, want empty", got)
	}
}

func TestSnapshot_Lookup(t *testing.T) {
	a := &Volume{Identity: mustIdentity(t, "aaaaaaaa-0000-0000-0000-000000000000")}
	b := &Volume{Identity: mustIdentity(t, "bbbbbbbb-0000-0000-0000-000000000000")}
	snap := NewSnapshot([]*Volume{a, b})

	got, err := snap.Lookup(b.Identity)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got != b {
		t.Error("Lookup() returned the wrong record")
	}

	_, err = snap.Lookup(mustIdentity(t, "cccccccc-0000-0000-0000-000000000000"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup() error = %v, want ErrNotFound", err)
	}

	if snap.Len() != 2 {
		t.Errorf("Len() = %d, want 2", snap.Len())
	}
}

func TestRegistry(t *testing.T) {
	reg := &Registry{}
	if reg.Len() != 0 {
		t.Errorf("Len() = %d on empty registry, want 0", reg.Len())
	}

	a := &Volume{Label: "a"}
	b := &Volume{Label: "b"}
	reg.Add(a)
	reg.Add(b)

	vols := reg.Volumes()
	if len(vols) != 2 || vols[0] != a || vols[1] != b {
		t.Error("Volumes() does not preserve insertion order")
	}
}
