//go:build unix

package clean

import "golang.org/x/sys/unix"

// deviceOf returns the device number of the filesystem holding path.
func deviceOf(path string) (uint64, bool) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, false
	}
	return uint64(st.Dev), true //nolint:gosec // Dev is int32 on darwin
}
