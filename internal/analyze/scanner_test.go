package analyze

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lakshaymaurya-felt/macmole/internal/core"
)

const mb = 1024 * 1024

// sparseFile creates a file of the given apparent size without writing data.
func sparseFile(t *testing.T, path string, size int64) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := f.Truncate(size); err != nil {
		t.Fatal(err)
	}
}

func TestDirSize(t *testing.T) {
	root := t.TempDir()
	sparseFile(t, filepath.Join(root, "a"), 100)
	sparseFile(t, filepath.Join(root, "x", "b"), 200)
	sparseFile(t, filepath.Join(root, "x", "y", "c"), 300)

	if got := DirSize(root); got != 600 {
		t.Errorf("DirSize = %d, want 600", got)
	}
}

func TestDirSizeMissing(t *testing.T) {
	if got := DirSize(filepath.Join(t.TempDir(), "nope")); got != 0 {
		t.Errorf("DirSize(missing) = %d", got)
	}
}

func TestDirSizeIgnoresSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	sparseFile(t, filepath.Join(outside, "big"), 5000)
	sparseFile(t, filepath.Join(root, "small"), 10)
	if err := os.Symlink(filepath.Join(outside, "big"), filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	if got := DirSize(root); got != 10 {
		t.Errorf("DirSize = %d, want 10", got)
	}
}

func TestTotalSizeSkipsMissing(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	sparseFile(t, filepath.Join(a, "f"), 7)
	sparseFile(t, filepath.Join(b, "g"), 5)

	got := TotalSize([]string{a, filepath.Join(a, "missing"), b})
	if got != 12 {
		t.Errorf("TotalSize = %d, want 12", got)
	}
}

func TestFindLargeFiles(t *testing.T) {
	root := t.TempDir()
	sparseFile(t, filepath.Join(root, "small.mov"), 100*mb)
	sparseFile(t, filepath.Join(root, "clips", "medium.mov"), 600*mb)
	sparseFile(t, filepath.Join(root, "clips", "raw", "huge.mov"), 1200*mb)

	got := FindLargeFiles([]string{root}, 500*mb, nil)
	if len(got) != 2 {
		t.Fatalf("found %d files, want 2: %+v", len(got), got)
	}
	if got[0].Size != 1200*mb || filepath.Base(got[0].Path) != "huge.mov" {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Size != 600*mb || filepath.Base(got[1].Path) != "medium.mov" {
		t.Errorf("second = %+v", got[1])
	}
	if !filepath.IsAbs(got[0].Path) {
		t.Errorf("path not absolute: %s", got[0].Path)
	}
}

func TestFindLargeFilesThresholdInclusive(t *testing.T) {
	root := t.TempDir()
	sparseFile(t, filepath.Join(root, "exact"), 1000)
	sparseFile(t, filepath.Join(root, "under"), 999)

	got := FindLargeFiles([]string{root}, 1000, nil)
	if len(got) != 1 || filepath.Base(got[0].Path) != "exact" {
		t.Errorf("got %+v", got)
	}
}

func TestFindLargeFilesMissingRoot(t *testing.T) {
	rec := &core.Recorder{}
	root := t.TempDir()
	missing := filepath.Join(root, "Movies")
	sparseFile(t, filepath.Join(root, "big"), 10)

	got := FindLargeFiles([]string{missing, root}, 5, rec)
	if len(got) != 1 {
		t.Errorf("got %+v", got)
	}

	notices := rec.Messages("notice")
	var skipped bool
	for _, n := range notices {
		if strings.Contains(n, "Skipping (not found)") && strings.Contains(n, missing) {
			skipped = true
		}
	}
	if !skipped {
		t.Errorf("missing root not reported: %v", notices)
	}
}

func TestFindLargeFilesNone(t *testing.T) {
	root := t.TempDir()
	sparseFile(t, filepath.Join(root, "tiny"), 1)

	got := FindLargeFiles([]string{root}, 500*mb, nil)
	if len(got) != 0 {
		t.Errorf("got %+v", got)
	}
}
