package core

import "fmt"

const (
	mib = 1 << 20
	gib = 1 << 30
)

// FormatSize renders a byte count in MB below 1 GB and in GB from 1 GB up,
// always with two decimals. Units are binary (1 MB = 1024*1024 bytes).
func FormatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	if bytes >= gib {
		return fmt.Sprintf("%.2f GB", float64(bytes)/gib)
	}
	return fmt.Sprintf("%.2f MB", float64(bytes)/mib)
}

// MegabytesToBytes converts a megabyte setting into a byte threshold.
func MegabytesToBytes(mb int) int64 {
	return int64(mb) * mib
}
