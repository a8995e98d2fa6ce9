package topology

import (
	"context"

	"github.com/voltopo/voltopo/internal/probe"
	"github.com/voltopo/voltopo/internal/volume"
)

type mockMounts struct {
	volumes []*volume.Volume
	err     error
	calls   int
}

func (m *mockMounts) MountedVolumes(_ context.Context) ([]*volume.Volume, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	// Hand out fresh clones so the presenter can decorate them without
	// the test fixtures drifting between calls.
	out := make([]*volume.Volume, 0, len(m.volumes))
	for _, v := range m.volumes {
		c := v.Clone()
		c.Seed = v.Seed
		out = append(out, c)
	}
	return out, nil
}

type mockScanner struct {
	snapshot *volume.Snapshot
	err      error
	calls    int
}

func (m *mockScanner) Scan(_ context.Context) (*volume.Snapshot, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.snapshot, nil
}

type mockProber struct {
	seeds      map[string]volume.Identity
	identities map[string]volume.Identity
	idErr      error
}

func (m *mockProber) SeedIdentity(_ context.Context, devicePath string) (volume.Identity, bool, error) {
	id, ok := m.seeds[devicePath]
	return id, ok, nil
}

func (m *mockProber) DeviceIdentity(_ context.Context, devicePath string) (volume.Identity, error) {
	if m.idErr != nil {
		return volume.Identity{}, m.idErr
	}
	return m.identities[devicePath], nil
}

type mockLabels struct {
	labels map[string]string
	err    error
}

func (m *mockLabels) Label(_ context.Context, pathOrDevice string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.labels[pathOrDevice], nil
}

type mockSpace struct {
	rows map[string][]probe.SpaceRow
	err  error
}

func (m *mockSpace) SpaceInfo(_ context.Context, mountpoint string) ([]probe.SpaceRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rows[mountpoint], nil
}
