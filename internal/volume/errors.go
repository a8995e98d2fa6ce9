package volume

import "errors"

var (
	// ErrAlreadyPresent is returned by IdentitySet.Add when the identity
	// was inserted before. Callers use it as a skip signal for volumes
	// already reported from another source.
	ErrAlreadyPresent = errors.New("identity already present")

	// ErrNotFound is returned when an identity cannot be located in the
	// scan snapshot. Seed resolution treats it as non-fatal: the chain is
	// left incomplete and the volume is rendered with whatever devices
	// are visible.
	ErrNotFound = errors.New("volume not found")

	// ErrSeedCycle is returned when seed metadata links back to an
	// identity already visited in the same chain. Malformed metadata must
	// terminate resolution, not loop.
	ErrSeedCycle = errors.New("seed chain cycle")
)
