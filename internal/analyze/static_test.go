package analyze

import (
	"fmt"
	"strings"
	"testing"
)

func TestRenderRadarNoneFound(t *testing.T) {
	out := RenderRadar(nil, 20)
	if !strings.Contains(out, NoneFoundMessage) {
		t.Errorf("output = %q", out)
	}
	if strings.Contains(out, "Path") {
		t.Error("empty radar rendered a table")
	}
}

func TestRenderRadarTable(t *testing.T) {
	files := []LargeFile{
		{Size: 1200 * mb, Path: "/Users/u/Movies/huge.mov"},
		{Size: 600 * mb, Path: "/Users/u/Downloads/medium.iso"},
	}

	out := RenderRadar(files, 20)
	for _, want := range []string{"Size", "Path", "1.17 GB", "600.00 MB", "huge.mov", "medium.iso", "Top 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "huge.mov") > strings.Index(out, "medium.iso") {
		t.Error("rows not in size order")
	}
}

func TestRenderRadarTruncates(t *testing.T) {
	var files []LargeFile
	for i := 25; i > 0; i-- {
		files = append(files, LargeFile{Size: int64(i) * mb, Path: fmt.Sprintf("/f/file-%02d.bin", i)})
	}

	out := RenderRadar(files, 20)
	if !strings.Contains(out, "file-25.bin") || !strings.Contains(out, "file-06.bin") {
		t.Error("top entries missing")
	}
	if strings.Contains(out, "file-05.bin") {
		t.Error("entry beyond the limit was rendered")
	}
	if !strings.Contains(out, "5 more") {
		t.Errorf("hidden count missing:\n%s", out)
	}
}

func TestTopN(t *testing.T) {
	files := make([]LargeFile, 30)
	if got := len(TopN(files, 20)); got != 20 {
		t.Errorf("TopN = %d", got)
	}
	if got := len(TopN(files[:3], 20)); got != 3 {
		t.Errorf("TopN short = %d", got)
	}
}
