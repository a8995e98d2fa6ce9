package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/voltopo/voltopo/internal/volume"
)

// System is the Linux implementation of the collaborator contracts. The
// block-device scan shells out to lsblk, mount enumeration reads the
// kernel mount table, space statistics come from statfs, and the
// privileged per-volume operations are delegated to the system btrfs
// utility when one is installed.
//
// lsblk exposes no per-device ids, generations or seed linkage, so the
// scan assigns devids in encounter order, declares the visible count as
// the total, and SeedIdentity reports no seed. Topology reconstruction
// over richer scan sources goes through the same interfaces.
type System struct {
	// FSType selects which mount table and scan entries belong to us.
	FSType string
	// MountsPath is the mount table to read, /proc/self/mounts normally.
	MountsPath string
	// Tool is the path of the privileged helper binary; empty means
	// look up "btrfs" on PATH.
	Tool string
	// Exclude drops scanned device paths with any of these prefixes.
	Exclude []string

	// Scan-once cache; the scan is idempotent and callers may re-invoke.
	snap *volume.Snapshot
}

// NewSystem returns a System with the standard Linux defaults.
func NewSystem() *System {
	return &System{
		FSType:     "btrfs",
		MountsPath: "/proc/self/mounts",
	}
}

var (
	_ MountSource   = (*System)(nil)
	_ DeviceScanner = (*System)(nil)
	_ SeedProber    = (*System)(nil)
	_ LabelSource   = (*System)(nil)
	_ SpaceSource   = (*System)(nil)
	_ VolumeOps     = (*System)(nil)
)

// lsblkDevice mirrors the lsblk --json fields the scan consumes.
type lsblkDevice struct {
	Path     string        `json:"path"`
	FSType   *string       `json:"fstype"`
	UUID     *string       `json:"uuid"`
	Label    *string       `json:"label"`
	Size     json.Number   `json:"size"`
	Children []lsblkDevice `json:"children"`
}

// Scan runs the systemwide device scan once and returns the cached
// snapshot on later calls.
func (s *System) Scan(ctx context.Context) (*volume.Snapshot, error) {
	if s.snap != nil {
		return s.snap, nil
	}

	out, err := exec.CommandContext(ctx, "lsblk", "-J", "-b",
		"-o", "PATH,FSTYPE,UUID,LABEL,SIZE").Output()
	if err != nil {
		return nil, fmt.Errorf("block device scan: %w", err)
	}

	snap, err := s.parseScan(out)
	if err != nil {
		return nil, fmt.Errorf("block device scan: %w", err)
	}
	s.snap = snap
	return snap, nil
}

func (s *System) parseScan(data []byte) (*volume.Snapshot, error) {
	var result struct {
		Blockdevices []lsblkDevice `json:"blockdevices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing lsblk output: %w", err)
	}

	byID := make(map[volume.Identity]*volume.Volume)
	var order []*volume.Volume

	var walk func(devs []lsblkDevice)
	walk = func(devs []lsblkDevice) {
		for _, d := range devs {
			walk(d.Children)
			if d.FSType == nil || *d.FSType != s.FSType || d.UUID == nil {
				continue
			}
			if s.excluded(d.Path) {
				continue
			}
			id, err := volume.ParseIdentity(*d.UUID)
			if err != nil {
				continue
			}

			v, ok := byID[id]
			if !ok {
				v = &volume.Volume{Identity: id}
				byID[id] = v
				order = append(order, v)
			}
			if v.Label == "" && d.Label != nil {
				v.Label = *d.Label
			}

			size, _ := strconv.ParseUint(d.Size.String(), 10, 64)
			dev := &volume.Device{
				Devid:      uint64(len(v.Devices) + 1),
				Path:       d.Path,
				TotalBytes: size,
				Volume:     v,
			}
			v.Devices = append(v.Devices, dev)
			v.TotalDevices = uint64(len(v.Devices))
		}
	}
	walk(result.Blockdevices)

	return volume.NewSnapshot(order), nil
}

func (s *System) excluded(path string) bool {
	for _, prefix := range s.Exclude {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// MountedVolumes enumerates mounted volumes of our filesystem type. The
// device list for each comes from the scan, which sees every member
// device of a mounted volume; the same source device mounted at several
// places yields one record.
func (s *System) MountedVolumes(ctx context.Context) ([]*volume.Volume, error) {
	f, err := os.Open(s.MountsPath)
	if err != nil {
		return nil, fmt.Errorf("mount enumeration: %w", err)
	}
	defer f.Close()

	entries, err := parseMountTable(f, s.FSType)
	if err != nil {
		return nil, fmt.Errorf("mount enumeration: %w", err)
	}

	snap, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}

	seenDev := make(map[string]bool)
	var mounted []*volume.Volume
	for _, ent := range entries {
		if seenDev[ent.Device] {
			continue
		}
		seenDev[ent.Device] = true

		src := s.volumeOfDevice(snap, ent.Device)
		if src == nil {
			continue
		}
		v := src.Clone()
		v.Mountpoint = ent.Mountpoint
		mounted = append(mounted, v)
	}
	return mounted, nil
}

func (s *System) volumeOfDevice(snap *volume.Snapshot, devicePath string) *volume.Volume {
	for _, v := range snap.Volumes() {
		for _, d := range v.Devices {
			if d.Path == devicePath {
				return v
			}
		}
	}
	return nil
}

// SeedIdentity reports no seed: seed linkage lives in the on-disk
// superblock, which this implementation does not read.
func (s *System) SeedIdentity(ctx context.Context, devicePath string) (volume.Identity, bool, error) {
	return volume.Identity{}, false, nil
}

// DeviceIdentity resolves which volume the given device belongs to.
func (s *System) DeviceIdentity(ctx context.Context, devicePath string) (volume.Identity, error) {
	snap, err := s.Scan(ctx)
	if err != nil {
		return volume.Identity{}, err
	}
	if v := s.volumeOfDevice(snap, devicePath); v != nil {
		return v.Identity, nil
	}
	return volume.Identity{}, volume.ErrNotFound
}

// Label resolves the label for a mountpoint or device path, best effort.
func (s *System) Label(ctx context.Context, pathOrDevice string) (string, error) {
	snap, err := s.Scan(ctx)
	if err != nil {
		return "", err
	}

	if v := s.volumeOfDevice(snap, pathOrDevice); v != nil {
		return v.Label, nil
	}

	// Mountpoint: map it back to its source device first.
	f, err := os.Open(s.MountsPath)
	if err != nil {
		return "", err
	}
	defer f.Close()
	entries, err := parseMountTable(f, s.FSType)
	if err != nil {
		return "", err
	}
	for _, ent := range entries {
		if ent.Mountpoint != pathOrDevice {
			continue
		}
		if v := s.volumeOfDevice(snap, ent.Device); v != nil {
			return v.Label, nil
		}
	}
	return "", volume.ErrNotFound
}

// SpaceInfo reports space statistics for a mounted volume from statfs.
// Without the filesystem's own accounting only a single aggregate row is
// available.
func (s *System) SpaceInfo(ctx context.Context, mountpoint string) ([]SpaceRow, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(mountpoint, &st); err != nil {
		return nil, fmt.Errorf("statfs %s: %w", mountpoint, err)
	}
	bsize := uint64(st.Bsize)
	total := st.Blocks * bsize
	used := (st.Blocks - st.Bfree) * bsize
	return []SpaceRow{{
		Kind:       "Data",
		Profile:    "single",
		TotalBytes: total,
		UsedBytes:  used,
	}}, nil
}

// Sync flushes the filesystem mounted at mountpoint.
func (s *System) Sync(ctx context.Context, mountpoint string) error {
	f, err := os.Open(mountpoint)
	if err != nil {
		return fmt.Errorf("sync %s: %w", mountpoint, err)
	}
	defer f.Close()
	if err := unix.Syncfs(int(f.Fd())); err != nil {
		return fmt.Errorf("sync %s: %w", mountpoint, err)
	}
	return nil
}

func (s *System) tool() (string, error) {
	if s.Tool != "" {
		return s.Tool, nil
	}
	path, err := exec.LookPath("btrfs")
	if err != nil {
		return "", fmt.Errorf("%w: btrfs utility not found", ErrUnsupported)
	}
	return path, nil
}

func (s *System) run(ctx context.Context, args ...string) error {
	tool, err := s.tool()
	if err != nil {
		return err
	}
	out, err := exec.CommandContext(ctx, tool, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s: %w: %s", tool, strings.Join(args, " "), err,
			strings.TrimSpace(string(out)))
	}
	return nil
}

// SetLabel sets the label on a mounted volume or unmounted device.
func (s *System) SetLabel(ctx context.Context, target, label string) error {
	return s.run(ctx, "filesystem", "label", target, label)
}

// Resize grows or shrinks a mounted volume.
func (s *System) Resize(ctx context.Context, mountpoint string, req ResizeRequest) error {
	amount := req.Amount
	if req.Devid != 0 {
		amount = fmt.Sprintf("%d:%s", req.Devid, req.Amount)
	}
	return s.run(ctx, "filesystem", "resize", amount, mountpoint)
}

// Defragment defragments one file or directory, non-recursively; tree
// walks happen in the caller.
func (s *System) Defragment(ctx context.Context, req DefragRequest) error {
	args := []string{"filesystem", "defragment"}
	if req.Compress != "" {
		args = append(args, "-c"+req.Compress)
	}
	if req.Flush {
		args = append(args, "-f")
	}
	if req.Start > 0 {
		args = append(args, "-s", strconv.FormatUint(req.Start, 10))
	}
	if req.Length > 0 {
		args = append(args, "-l", strconv.FormatUint(req.Length, 10))
	}
	if req.ExtentThresh > 0 {
		args = append(args, "-t", strconv.FormatUint(req.ExtentThresh, 10))
	}
	args = append(args, req.Path)
	return s.run(ctx, args...)
}

// ReplaceStart begins a device replace operation and waits for it.
func (s *System) ReplaceStart(ctx context.Context, req ReplaceStartRequest) error {
	args := []string{"replace", "start", "-B"}
	if req.ReadOnlySrc {
		args = append(args, "-r")
	}
	if req.Force {
		args = append(args, "-f")
	}
	src := req.Source
	if req.SourceDevid != 0 {
		src = strconv.FormatUint(req.SourceDevid, 10)
	}
	args = append(args, src, req.Target, req.Mountpoint)
	return s.run(ctx, args...)
}

// ReplaceStatus reports the state of a device replace operation.
func (s *System) ReplaceStatus(ctx context.Context, mountpoint string) (ReplaceStatus, error) {
	tool, err := s.tool()
	if err != nil {
		return ReplaceStatus{}, err
	}
	out, err := exec.CommandContext(ctx, tool, "replace", "status", "-1", mountpoint).Output()
	if err != nil {
		return ReplaceStatus{}, fmt.Errorf("replace status %s: %w", mountpoint, err)
	}
	return parseReplaceStatus(string(out))
}

// ReplaceCancel cancels a running device replace operation.
func (s *System) ReplaceCancel(ctx context.Context, mountpoint string) error {
	return s.run(ctx, "replace", "cancel", mountpoint)
}
