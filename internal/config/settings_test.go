package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSettingsValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
	if s.DaysThreshold != 30 || s.LargeFileMinMB != 500 || s.RadarTop != 20 {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"zero days allowed", func(s *Settings) { s.DaysThreshold = 0 }, false},
		{"negative days", func(s *Settings) { s.DaysThreshold = -1 }, true},
		{"negative mb", func(s *Settings) { s.LargeFileMinMB = -5 }, true},
		{"zero top", func(s *Settings) { s.RadarTop = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			if err := s.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCutoff(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	got := DefaultSettings().Cutoff(now)
	want := time.Date(2026, 9, 19, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Cutoff = %v, want %v", got, want)
	}
}

func TestLargeFileMinBytes(t *testing.T) {
	s := Settings{LargeFileMinMB: 2}
	if got := s.LargeFileMinBytes(); got != 2*1024*1024 {
		t.Errorf("LargeFileMinBytes = %d", got)
	}
}

func TestResolveTargets(t *testing.T) {
	home := filepath.Join("/", "Users", "someone")
	tg := ResolveTargets(home)

	if got := tg.Caches.Paths[0]; got != filepath.Join(home, "Library", "Caches") {
		t.Errorf("caches path = %q", got)
	}
	if got := tg.Logs.Paths[0]; got != filepath.Join(home, "Library", "Logs") {
		t.Errorf("logs path = %q", got)
	}
	if len(tg.ScanRoots) != 3 {
		t.Fatalf("scan roots = %v", tg.ScanRoots)
	}
	if got := filepath.Base(tg.ScanRoots[2]); got != "Movies" {
		t.Errorf("third scan root = %q", got)
	}

	managed := tg.GetTargetsByCategory(CategoryManaged)
	if len(managed) != 2 {
		t.Errorf("managed targets = %d, want 2", len(managed))
	}
	scan := tg.GetTargetsByCategory(CategoryScan)
	if len(scan) != 1 || len(scan[0].Paths) != 3 {
		t.Errorf("scan targets = %+v", scan)
	}
}
