package analyze

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charlievieth/fastwalk"

	"github.com/lakshaymaurya-felt/macmole/internal/core"
)

// LargeFile is one radar hit.
type LargeFile struct {
	Size int64  `json:"size"`
	Path string `json:"path"`
}

// walkConfig runs fastwalk with a single worker so callbacks execute one
// at a time, and never follows symlinks.
func walkConfig() *fastwalk.Config {
	return &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
	}
}

// isDir reports whether path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// walkFiles calls fn for every regular file under root with its size.
// Entries that cannot be read or stat'ed are skipped.
func walkFiles(root string, fn func(path string, size int64)) {
	_ = fastwalk.Walk(walkConfig(), root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Silently skip unreadable entries.
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // Vanished or denied mid-walk.
		}

		fn(path, info.Size())
		return nil
	})
}

// ─── Size Scanner ────────────────────────────────────────────────────────────

// DirSize returns the total size of all regular files under path, or 0 when
// path does not exist or is not a directory.
func DirSize(path string) int64 {
	if !isDir(path) {
		return 0
	}

	var total int64
	walkFiles(path, func(_ string, size int64) {
		total += size
	})
	return total
}

// TotalSize sums DirSize over the paths that exist.
func TotalSize(paths []string) int64 {
	var total int64
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		total += DirSize(p)
	}
	return total
}

// ─── Large-File Radar ────────────────────────────────────────────────────────

// FindLargeFiles returns every regular file under roots whose size is at
// least minBytes, largest first. Missing roots are reported to obs and
// skipped.
func FindLargeFiles(roots []string, minBytes int64, obs core.Observer) []LargeFile {
	obs = core.OrNop(obs)

	var found []LargeFile
	for _, root := range roots {
		if !isDir(root) {
			obs.Notice("Skipping (not found): %s", root)
			continue
		}

		obs.Notice("Scanning: %s", root)
		walkFiles(root, func(path string, size int64) {
			if size >= minBytes {
				found = append(found, LargeFile{Size: size, Path: absPath(path)})
			}
		})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Size > found[j].Size
	})

	return found
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
