//go:build !unix

package clean

// deviceOf is not supported here; the mount guard is disabled.
func deviceOf(string) (uint64, bool) {
	return 0, false
}
