package topology

import (
	"strings"

	"github.com/voltopo/voltopo/internal/volume"
)

// matchIdentity reports whether token is a prefix of the canonical UUID
// text of id. Any token is tried this way; a non-hex token simply never
// matches.
func matchIdentity(id volume.Identity, token string) bool {
	return strings.HasPrefix(id.String(), strings.ToLower(token))
}

// matchMounted applies the search token to a mounted volume: identity
// prefix, exact label, or exact mountpoint.
func matchMounted(v *volume.Volume, token string) bool {
	if matchIdentity(v.Identity, token) {
		return true
	}
	if v.Label != "" && v.Label == token {
		return true
	}
	return v.Mountpoint == token
}

// matchScanned applies the search token to a scanned, unmounted volume:
// identity prefix, exact label, or exact device path.
func matchScanned(v *volume.Volume, token string) bool {
	if matchIdentity(v.Identity, token) {
		return true
	}
	if v.Label != "" && v.Label == token {
		return true
	}
	for _, d := range v.Devices {
		if d.Path == token {
			return true
		}
	}
	return false
}
