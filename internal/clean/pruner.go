package clean

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/lakshaymaurya-felt/macmole/internal/core"
)

// ─── Age-Based Pruner ────────────────────────────────────────────────────────

// Pruner deletes expired files under a root, removes subdirectories left
// empty, and never removes the root itself.
type Pruner struct {
	// Observer receives warnings, errors and per-top-level-entry progress.
	Observer core.Observer

	// DryRun counts what would be freed without touching the filesystem.
	DryRun bool

	// OneFileSystem stops the walk at mount points below the root.
	OneFileSystem bool
}

// walk holds the state of one Prune call.
type walk struct {
	policy  Policy
	obs     core.Observer
	dryRun  bool
	label   string
	rootDev uint64
	checkFS bool
}

// PruneOlderThan is a shortcut for pruning root with a plain age cutoff.
func PruneOlderThan(root string, cutoff time.Time, obs core.Observer) int64 {
	p := &Pruner{Observer: obs}
	return p.Prune(root, AgePolicy{Cutoff: cutoff})
}

// Prune walks root and returns the bytes freed by deleting every entry the
// policy expires. A missing root frees nothing and is not an error.
// Symlinks are never followed: a link is judged and removed as a link.
func (p *Pruner) Prune(root string, policy Policy) int64 {
	obs := core.OrNop(p.Observer)

	info, err := os.Stat(root)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			obs.Warn("Skipping (cannot access): %s: %v", root, err)
		}
		return 0
	}
	if !info.IsDir() {
		obs.Warn("Skipping (not a directory): %s", root)
		return 0
	}

	w := &walk{
		policy: policy,
		obs:    obs,
		dryRun: p.DryRun,
		label:  filepath.Base(root),
	}
	if p.OneFileSystem {
		w.rootDev, w.checkFS = deviceOf(root)
	}

	return w.dir(root, true)
}

// dir prunes the entries of one directory. Progress is only reported for
// the entries of the prune root.
func (w *walk) dir(path string, top bool) int64 {
	entries, err := os.ReadDir(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Vanished since the parent was listed.
		case core.IsPermission(err):
			w.obs.Warn("Skipping (no permission to list): %s", path)
		default:
			w.obs.Error("Could not list %s: %v", path, err)
		}
		return 0
	}

	var freed int64
	for i, e := range entries {
		child := filepath.Join(path, e.Name())

		if e.IsDir() {
			freed += w.subdir(child)
		} else {
			freed += w.file(child)
		}

		if top {
			w.obs.Progress(w.label, i+1, len(entries))
		}
	}

	return freed
}

// subdir recurses into a directory and then tries to remove it. Removal
// only succeeds when nothing is left inside; any failure is ignored.
func (w *walk) subdir(path string) int64 {
	if w.checkFS {
		if dev, ok := deviceOf(path); ok && dev != w.rootDev {
			w.obs.Notice("Skipping (other filesystem): %s", path)
			return 0
		}
	}

	freed := w.dir(path, false)

	if !w.dryRun {
		_ = os.Remove(path)
	}

	return freed
}

// file deletes a single entry when the policy expires it and returns its
// size, or 0 when it was kept or could not be removed.
func (w *walk) file(path string) int64 {
	info, err := os.Lstat(path)
	if err != nil {
		if !core.IsSkippable(err) {
			w.obs.Error("Could not inspect %s: %v", path, err)
		}
		return 0
	}

	if !w.policy.Expired(path, info) {
		return 0
	}

	size := info.Size()
	if w.dryRun {
		return size
	}

	if err := os.Remove(path); err != nil {
		if !core.IsSkippable(err) {
			w.obs.Error("Could not delete %s: %v", path, err)
		}
		return 0
	}

	return size
}
