package probe

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// mountEntry is one line of the kernel mount table.
type mountEntry struct {
	Device     string
	Mountpoint string
	FSType     string
	Options    string
}

// parseMountTable reads /proc/self/mounts format and keeps entries of the
// given filesystem type. Paths in the mount table escape whitespace as
// octal (\040), which is decoded here.
func parseMountTable(r io.Reader, fsType string) ([]mountEntry, error) {
	var entries []mountEntry

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 {
			continue
		}
		if fields[2] != fsType {
			continue
		}
		entries = append(entries, mountEntry{
			Device:     unescapeMountPath(fields[0]),
			Mountpoint: unescapeMountPath(fields[1]),
			FSType:     fields[2],
			Options:    fields[3],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// unescapeMountPath decodes the \ooo octal escapes getmntent-style
// readers expect in mount table paths.
func unescapeMountPath(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) {
			if n, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(n))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
