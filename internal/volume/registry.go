package volume

// Snapshot is the result of one systemwide raw device scan. It is
// process-wide, populated once by the scanner collaborator, and strictly
// read/copy-only for the presentation pass: records are cloned out of it,
// never mutated in place.
type Snapshot struct {
	volumes []*Volume
	byID    map[Identity]*Volume
}

// NewSnapshot builds a snapshot over scanned volume records.
func NewSnapshot(volumes []*Volume) *Snapshot {
	s := &Snapshot{
		volumes: volumes,
		byID:    make(map[Identity]*Volume, len(volumes)),
	}
	for _, v := range volumes {
		s.byID[v.Identity] = v
	}
	return s
}

// Volumes returns the scanned records in scan order. Callers must not
// mutate them.
func (s *Snapshot) Volumes() []*Volume {
	return s.volumes
}

// Lookup finds the scanned record for id. Returns ErrNotFound when no
// device bearing that identity was seen by the scan.
func (s *Snapshot) Lookup(id Identity) (*Volume, error) {
	v, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

// Len returns the number of distinct volumes in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.volumes)
}

// Registry is the private, exclusively-owned collection of volume records
// one presentation pass works on. It is populated with clones so that
// seed linking and device splicing never corrupt the shared snapshot.
type Registry struct {
	volumes []*Volume
}

// Add appends a record to the registry.
func (r *Registry) Add(v *Volume) {
	r.volumes = append(r.volumes, v)
}

// Volumes returns the registry contents in insertion order.
func (r *Registry) Volumes() []*Volume {
	return r.volumes
}

// Len returns the number of records held.
func (r *Registry) Len() int {
	return len(r.volumes)
}
