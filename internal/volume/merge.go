package volume

import "sort"

// SpliceDevices merges one seed-level device list into the accumulating
// device list of the volume being displayed. When the same devid appears
// on both sides, the copy with the higher generation wins: a device
// replace in a sprout leaves the replaced device behind in the seed, and
// the newer write is the one to show. Equal generations are the same
// device observed twice and the accumulating entry is kept.
//
// Devices unique to the seed are appended. Every devid appears at most
// once in the result given inputs that each hold unique devids.
func SpliceDevices(all, seed []*Device) []*Device {
	byID := make(map[uint64]int, len(all))
	for i, d := range all {
		byID[d.Devid] = i
	}

	out := make([]*Device, len(all))
	copy(out, all)

	for _, sd := range seed {
		i, ok := byID[sd.Devid]
		if !ok {
			byID[sd.Devid] = len(out)
			out = append(out, sd)
			continue
		}
		if sd.Generation > out[i].Generation {
			out[i] = sd
		}
	}
	return out
}

// MergedDevices flattens v's device list with every ancestor in its seed
// chain, outermost sprout first, and returns the result sorted ascending
// by devid. v itself is not modified.
func MergedDevices(v *Volume) []*Device {
	all := v.Devices
	for seed := v.Seed; seed != nil; seed = seed.Seed {
		all = SpliceDevices(all, seed.Devices)
	}

	out := make([]*Device, len(all))
	copy(out, all)
	SortDevices(out)
	return out
}

// SortDevices orders devices ascending by devid. The sort is stable so
// encounter order breaks ties, though post-merge lists hold each devid
// only once.
func SortDevices(devices []*Device) {
	sort.SliceStable(devices, func(i, j int) bool {
		return devices[i].Devid < devices[j].Devid
	})
}
