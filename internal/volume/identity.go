package volume

import (
	"fmt"

	"github.com/google/uuid"
)

// Identity is the 128-bit filesystem identity (fsid) that distinguishes
// one logical volume from all others, stable across mounts. Equality is
// byte-exact.
type Identity [16]byte

// ParseIdentity parses the canonical textual UUID form of an identity.
func ParseIdentity(s string) (Identity, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid volume identity %q: %w", s, err)
	}
	return Identity(u), nil
}

// String returns the canonical lower-case UUID form.
func (id Identity) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the identity is all zero bytes.
func (id Identity) IsZero() bool {
	return id == Identity{}
}

// IdentitySet records which volume identities have already been reported,
// so a filesystem mounted more than once, or observed by both the mount
// table and the raw device scan, is shown exactly once. Keyed on the full
// identity, not a prefix.
type IdentitySet struct {
	seen map[Identity]struct{}
}

// NewIdentitySet returns an empty set.
func NewIdentitySet() *IdentitySet {
	return &IdentitySet{seen: make(map[Identity]struct{})}
}

// Contains reports whether id was added before.
func (s *IdentitySet) Contains(id Identity) bool {
	_, ok := s.seen[id]
	return ok
}

// Add inserts id into the set. A duplicate insert returns
// ErrAlreadyPresent and leaves the set unmodified.
func (s *IdentitySet) Add(id Identity) error {
	if _, ok := s.seen[id]; ok {
		return ErrAlreadyPresent
	}
	s.seen[id] = struct{}{}
	return nil
}

// Len returns the number of distinct identities added.
func (s *IdentitySet) Len() int {
	return len(s.seen)
}

// Clear releases all recorded identities.
func (s *IdentitySet) Clear() {
	s.seen = make(map[Identity]struct{})
}
