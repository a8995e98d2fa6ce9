package topology

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/voltopo/voltopo/internal/probe"
	"github.com/voltopo/voltopo/internal/volume"
)

// ErrNoMatch is returned when a search filter was given and no volume
// matched it.
var ErrNoMatch = errors.New("no matching volume found")

// Options selects what one presentation pass covers.
type Options struct {
	// Search filters by identity prefix, exact label, or exact path. A
	// block device path is translated first: to its mountpoint when
	// mounted, otherwise to the identity read off the device.
	Search string
	// MountedOnly skips the raw-device pass.
	MountedOnly bool
	// DevicesOnly skips the mounted pass.
	DevicesOnly bool
}

// Presenter reconciles the mount table and the raw device scan into one
// deduplicated list of volume reports. It owns the identity set for the
// lifetime of one pass; the private registry it builds for the unmounted
// pass holds clones and never touches shared scan state.
type Presenter struct {
	Mounts  probe.MountSource
	Scanner probe.DeviceScanner
	Prober  probe.SeedProber
	Labels  probe.LabelSource
	Space   probe.SpaceSource
}

// Show runs the presentation pass and returns the reports in display
// order: mounted volumes first, then unmounted ones. The two passes fail
// independently; reports gathered before a failure are returned along
// with the joined errors.
func (p *Presenter) Show(ctx context.Context, opts Options) ([]Report, error) {
	seen := volume.NewIdentitySet()
	defer seen.Clear()

	search := opts.Search
	devsOnly := opts.DevicesOnly
	if search != "" {
		resolved, scanOnly, err := p.resolveSearch(ctx, search)
		if err != nil {
			return nil, err
		}
		search = resolved
		devsOnly = devsOnly || scanOnly
	}

	var reports []Report
	var errs []error
	found := false

	if !devsOnly {
		mountedReports, matched, err := p.mountedPass(ctx, seen, search)
		reports = append(reports, mountedReports...)
		found = found || matched
		if err != nil {
			errs = append(errs, err)
		}

		// A satisfied search needs no second look at raw devices.
		if search != "" && found {
			return reports, nil
		}
		if opts.MountedOnly {
			if search != "" && !found {
				errs = append(errs, fmt.Errorf("%q: %w", opts.Search, ErrNoMatch))
			}
			return reports, errors.Join(errs...)
		}
	}

	scanReports, matched, err := p.unmountedPass(ctx, seen, search)
	reports = append(reports, scanReports...)
	found = found || matched
	if err != nil {
		errs = append(errs, err)
	}

	if search != "" && !found {
		errs = append(errs, fmt.Errorf("%q: %w", opts.Search, ErrNoMatch))
	}
	return reports, errors.Join(errs...)
}

// mountedPass walks the mount registry. Mounted records arrive with
// complete, correct device lists, so no merge is needed; only label and
// space statistics are filled in from their collaborators.
func (p *Presenter) mountedPass(ctx context.Context, seen *volume.IdentitySet, search string) ([]Report, bool, error) {
	mounted, err := p.Mounts.MountedVolumes(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("mounted pass: %w", err)
	}

	var reports []Report
	found := false
	for _, v := range mounted {
		if v.Label == "" && p.Labels != nil {
			if label, err := p.Labels.Label(ctx, v.Mountpoint); err == nil {
				v.Label = label
			}
		}
		if search != "" && !matchMounted(v, search) {
			continue
		}
		found = true
		if err := seen.Add(v.Identity); errors.Is(err, volume.ErrAlreadyPresent) {
			continue
		}
		if p.Space != nil {
			if rows, err := p.Space.SpaceInfo(ctx, v.Mountpoint); err == nil {
				v.BytesUsed = probe.UsedBytes(rows)
			}
		}
		devices := make([]*volume.Device, len(v.Devices))
		copy(devices, v.Devices)
		volume.SortDevices(devices)
		reports = append(reports, reportFor(v, devices, true))
	}
	return reports, found, nil
}

// unmountedPass copies unseen scan records into a private registry,
// resolves seed chains, and renders each with its merged, sorted device
// list.
func (p *Presenter) unmountedPass(ctx context.Context, seen *volume.IdentitySet, search string) ([]Report, bool, error) {
	snap, err := p.Scanner.Scan(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("device scan pass: %w", err)
	}

	reg := &volume.Registry{}
	found := false
	for _, v := range snap.Volumes() {
		if search != "" {
			if !matchScanned(v, search) {
				continue
			}
			found = true
		}
		if err := seen.Add(v.Identity); errors.Is(err, volume.ErrAlreadyPresent) {
			continue
		}
		reg.Add(v.Clone())
	}

	// Seed failures degrade the affected volume to a partial chain; it
	// is still rendered, with the missing-devices flag doing the
	// talking.
	resolver := volume.NewSeedResolver(p.Prober, snap)
	_ = resolver.ResolveAll(ctx, reg)

	var reports []Report
	for _, v := range reg.Volumes() {
		reports = append(reports, reportFor(v, volume.MergedDevices(v), false))
	}
	return reports, found, nil
}

// resolveSearch translates a block-device search argument. A mounted
// device becomes its mountpoint; an unmounted one becomes the identity
// of the volume on it, and restricts the pass to scanned devices. Other
// tokens pass through unchanged.
func (p *Presenter) resolveSearch(ctx context.Context, token string) (string, bool, error) {
	abs, err := filepath.Abs(token)
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			abs = resolved
		}
	} else {
		abs = token
	}

	if !isBlockDevice(abs) {
		return token, false, nil
	}

	if mounted, err := p.Mounts.MountedVolumes(ctx); err == nil {
		for _, v := range mounted {
			for _, d := range v.Devices {
				if d.Path == abs {
					return v.Mountpoint, false, nil
				}
			}
		}
	}

	id, err := p.Prober.DeviceIdentity(ctx, abs)
	if err != nil {
		return "", false, fmt.Errorf("no filesystem on %s: %w", token, err)
	}
	return id.String(), true, nil
}

func isBlockDevice(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	mode := fi.Mode()
	return mode&os.ModeDevice != 0 && mode&os.ModeCharDevice == 0
}
