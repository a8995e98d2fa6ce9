// Package probe defines the collaborator contracts the topology core
// consumes: mount enumeration, the raw block-device scan, partial-open
// seed probing, label resolution, and the privileged per-volume
// operations behind the remaining subcommands.
//
// The interfaces allow dependency injection for testing; the Linux
// implementation lives in this package as well.
package probe

import (
	"context"
	"errors"
	"time"

	"github.com/voltopo/voltopo/internal/volume"
)

// ErrUnsupported is returned by operations the current platform or
// privilege level cannot perform.
var ErrUnsupported = errors.New("operation not supported on this system")

// MountSource enumerates currently mounted volumes. Each record carries
// a complete, correct device list; no seed merge is needed for them.
type MountSource interface {
	MountedVolumes(ctx context.Context) ([]*volume.Volume, error)
}

// DeviceScanner performs the systemwide raw device scan. The scan is
// idempotent and may be invoked multiple times; the returned snapshot is
// process-wide state and read/copy-only for callers.
type DeviceScanner interface {
	Scan(ctx context.Context) (*volume.Snapshot, error)
}

// SeedProber opens devices partially to answer identity questions
// without mounting.
type SeedProber interface {
	volume.SeedProber

	// DeviceIdentity reports the identity of the volume the device at
	// path belongs to. Used to turn a raw device argument into a search
	// filter.
	DeviceIdentity(ctx context.Context, devicePath string) (volume.Identity, error)
}

// LabelSource resolves the human-readable label for a mountpoint or
// device path. Failures are non-fatal; callers fall back to "none".
type LabelSource interface {
	Label(ctx context.Context, pathOrDevice string) (string, error)
}

// SpaceRow is one allocation-class row of a mounted volume's space
// report.
type SpaceRow struct {
	Kind       string // Data, Metadata, System, GlobalReserve
	Profile    string // single, DUP, RAID1, ...
	TotalBytes uint64
	UsedBytes  uint64
}

// SpaceSource reports per-allocation-class space statistics for a
// mounted volume. The summed used bytes are the volume's "bytes used"
// figure.
type SpaceSource interface {
	SpaceInfo(ctx context.Context, mountpoint string) ([]SpaceRow, error)
}

// UsedBytes sums the used bytes across all space rows.
func UsedBytes(rows []SpaceRow) uint64 {
	var total uint64
	for _, r := range rows {
		total += r.UsedBytes
	}
	return total
}

// ResizeRequest describes one resize operation. Amount keeps the
// original textual form ("+2g", "max", "-1t"); Devid selects the device
// within a multi-device volume, 0 meaning the default device.
type ResizeRequest struct {
	Devid  uint64
	Amount string
}

// DefragRequest carries the tuning options of one defragment call on a
// single file or directory.
type DefragRequest struct {
	Path         string
	Start        uint64
	Length       uint64
	ExtentThresh uint64
	Compress     string // "", "zlib" or "lzo"
	Flush        bool
}

// ReplaceState enumerates the coarse states a device replace operation
// can be in.
type ReplaceState string

const (
	ReplaceNeverStarted ReplaceState = "never started"
	ReplaceStarted      ReplaceState = "started"
	ReplaceFinished     ReplaceState = "finished"
	ReplaceCanceled     ReplaceState = "canceled"
	ReplaceSuspended    ReplaceState = "suspended"
)

// ReplaceStatus is the progress report of a running or finished device
// replace.
type ReplaceStatus struct {
	State           ReplaceState
	ProgressPermille int // 0..1000, valid while State == ReplaceStarted
	Started         time.Time
	Finished        time.Time
	WriteErrors     uint64
	UncorrectableReadErrors uint64
}

// ReplaceStartRequest names the devices of a replace operation. Source
// is either a device path or a decimal devid (SourceDevid > 0 wins).
type ReplaceStartRequest struct {
	Mountpoint  string
	Source      string
	SourceDevid uint64
	Target      string
	// ReadOnlySrc avoids reading the source device unless required.
	ReadOnlySrc bool
	// Force overwrites a target that looks like it holds a filesystem.
	Force bool
}

// VolumeOps are the raw privileged per-volume operations. They are
// sequential control flow around the core and carry no topology logic.
type VolumeOps interface {
	Sync(ctx context.Context, mountpoint string) error
	SetLabel(ctx context.Context, target, label string) error
	Resize(ctx context.Context, mountpoint string, req ResizeRequest) error
	Defragment(ctx context.Context, req DefragRequest) error
	ReplaceStart(ctx context.Context, req ReplaceStartRequest) error
	ReplaceStatus(ctx context.Context, mountpoint string) (ReplaceStatus, error)
	ReplaceCancel(ctx context.Context, mountpoint string) error
}
