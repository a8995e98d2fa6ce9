package volume

import (
	"context"
	"fmt"
)

// SeedProber learns, by partially opening a device, the identity of the
// seed volume directly beneath the volume that device belongs to. ok is
// false when the volume declares no seed.
type SeedProber interface {
	SeedIdentity(ctx context.Context, devicePath string) (id Identity, ok bool, err error)
}

// SeedResolver completes the Seed link of private volume records whose
// visible device count falls short of the declared total. Seed records
// are cloned out of the scan snapshot so the chain is exclusively owned
// by the resolved record.
type SeedResolver struct {
	prober   SeedProber
	snapshot *Snapshot
}

// NewSeedResolver builds a resolver over the given snapshot.
func NewSeedResolver(prober SeedProber, snapshot *Snapshot) *SeedResolver {
	return &SeedResolver{prober: prober, snapshot: snapshot}
}

// Resolve walks v's seed chain as far as the metadata allows. The chain
// terminates cleanly when a link declares no further seed or has no
// shortfall. A seed identity missing from the snapshot, or a probe
// failure, terminates resolution with a non-nil error; the caller keeps
// the partial chain and renders the volume with its missing-device flag.
//
// A visited set guards against malformed metadata that links back into
// the chain: resolution must never loop on repeated opens of the same
// identity.
func (r *SeedResolver) Resolve(ctx context.Context, v *Volume) error {
	visited := map[Identity]struct{}{v.Identity: {}}

	for cur := v; cur.HasSeedShortfall(); cur = cur.Seed {
		path := cur.AnyDevicePath()
		if path == "" {
			return nil
		}

		seedID, ok, err := r.prober.SeedIdentity(ctx, path)
		if err != nil {
			return fmt.Errorf("probing seed of %s: %w", cur.Identity, err)
		}
		if !ok {
			// No seed declared: the shortfall is plain missing devices.
			return nil
		}

		if _, seen := visited[seedID]; seen {
			return fmt.Errorf("seed of %s: %w", cur.Identity, ErrSeedCycle)
		}
		visited[seedID] = struct{}{}

		src, err := r.snapshot.Lookup(seedID)
		if err != nil {
			return fmt.Errorf("seed %s of %s: %w", seedID, cur.Identity, err)
		}
		cur.Seed = src.Clone()
	}
	return nil
}

// ResolveAll resolves every record in the registry. Per-volume failures
// degrade that volume only; the first error is returned after all
// records have been attempted.
func (r *SeedResolver) ResolveAll(ctx context.Context, reg *Registry) error {
	var first error
	for _, v := range reg.Volumes() {
		if err := r.Resolve(ctx, v); err != nil && first == nil {
			first = err
		}
	}
	return first
}
