// Package app drives the cleaning operations for one interactive or
// command-line session and keeps the running total of bytes freed.
package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/lakshaymaurya-felt/macmole/internal/analyze"
	"github.com/lakshaymaurya-felt/macmole/internal/clean"
	"github.com/lakshaymaurya-felt/macmole/internal/config"
	"github.com/lakshaymaurya-felt/macmole/internal/core"
	"github.com/lakshaymaurya-felt/macmole/internal/status"
	"github.com/lakshaymaurya-felt/macmole/internal/ui"
)

// Reporter is the observer plus the few rendering calls the session needs.
// ui.Console implements it.
type Reporter interface {
	core.Observer
	Title(icon, text string)
	Success(format string, args ...any)
	Print(block string)
}

// Session owns the thresholds, targets and collaborators for a run.
// It is not safe for concurrent use; operations run one after another.
type Session struct {
	Settings config.Settings
	Targets  config.Targets
	Out      Reporter
	Trash    clean.TrashEmptier
	Log      logrus.FieldLogger

	// Now and Volume are replaceable for tests.
	Now    func() time.Time
	Volume func(path string) (status.VolumeUsage, error)

	totalFreed int64
}

// New builds a session. A nil log discards diagnostics.
func New(settings config.Settings, targets config.Targets, out Reporter, trash clean.TrashEmptier, log logrus.FieldLogger) *Session {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Session{
		Settings: settings,
		Targets:  targets,
		Out:      out,
		Trash:    trash,
		Log:      log,
		Now:      time.Now,
		Volume:   status.Volume,
	}
}

// TotalFreed returns the bytes freed by every prune in this session.
func (s *Session) TotalFreed() int64 {
	return s.totalFreed
}

func (s *Session) policy() clean.AgePolicy {
	return clean.AgePolicy{
		Cutoff: s.Settings.Cutoff(s.Now()),
		Keep:   s.Settings.Keep,
	}
}

func (s *Session) pruner() *clean.Pruner {
	return &clean.Pruner{
		Observer:      s.Out,
		DryRun:        s.Settings.DryRun,
		OneFileSystem: true,
	}
}

// ─── Cache / log cleaning ────────────────────────────────────────────────────

// CleanCaches prunes the caches target and returns the bytes freed.
func (s *Session) CleanCaches() int64 {
	s.Out.Title(ui.IconBroom, "Clearing Caches (age-based)...")
	return s.cleanTarget(s.Targets.Caches)
}

// CleanLogs prunes the logs target and returns the bytes freed.
func (s *Session) CleanLogs() int64 {
	s.Out.Title(ui.IconLog, "Clearing Logs (age-based)...")
	return s.cleanTarget(s.Targets.Logs)
}

func (s *Session) cleanTarget(target config.CleanTarget) int64 {
	policy := s.policy()
	verb := "freed"
	if s.Settings.DryRun {
		verb = "would free"
	}

	var total int64
	for _, dir := range target.Paths {
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			s.Out.Notice("Skipping; does not exist: %s", dir)
			continue
		}

		s.Out.Notice("Target: %s (files last modified before %s)", dir, humanize.Time(policy.Cutoff))
		freed := s.pruner().Prune(dir, policy)
		s.totalFreed += freed
		total += freed

		s.Out.Success("Done %s: %s %s", dir, verb, ui.BoldStyle().Render(core.FormatSize(freed)))
		s.Log.WithFields(logrus.Fields{
			"target":  target.Name,
			"path":    dir,
			"freed":   freed,
			"dry_run": s.Settings.DryRun,
		}).Info("pruned target")
	}

	return total
}

// ─── Trash ───────────────────────────────────────────────────────────────────

// EmptyTrash forwards the request to the trash collaborator. It reports
// whether the request was delivered; failures were already reported.
func (s *Session) EmptyTrash() bool {
	s.Out.Title(ui.IconTrash, "Asking Finder to empty Trash...")

	if s.Settings.DryRun {
		s.Out.Notice("Dry run: Trash left untouched")
		return false
	}
	if s.Trash == nil {
		s.Out.Warn("No trash integration available on this system")
		return false
	}

	ok := s.Trash.EmptyTrash()
	if ok {
		s.Out.Success("Request sent: if Finder has permission, Trash should now be empty.")
	}
	s.Log.WithField("sent", ok).Info("trash request")
	return ok
}

// ─── Radar ───────────────────────────────────────────────────────────────────

// Radar reports large files under roots (the scan targets when empty)
// using the configured threshold.
func (s *Session) Radar(roots []string) []analyze.LargeFile {
	return s.RadarAbove(roots, s.Settings.LargeFileMinBytes())
}

// RadarAbove is Radar with an explicit byte threshold.
func (s *Session) RadarAbove(roots []string, minBytes int64) []analyze.LargeFile {
	if len(roots) == 0 {
		roots = s.Targets.ScanRoots
	}

	s.Out.Title(ui.IconRadar, fmt.Sprintf("Big File Radar (>= %s)", core.FormatSize(minBytes)))
	files := analyze.FindLargeFiles(roots, minBytes, s.Out)
	s.Out.Print("")
	s.Out.Print(analyze.RenderRadar(files, s.Settings.RadarTop))

	s.Log.WithFields(logrus.Fields{
		"roots": len(roots),
		"found": len(files),
	}).Info("radar scan")
	return files
}

// ─── Full clean ──────────────────────────────────────────────────────────────

// FullClean measures, cleans caches and logs, empties the trash, measures
// again and renders the dashboard.
func (s *Session) FullClean() status.Summary {
	cachesBefore := analyze.TotalSize(s.Targets.Caches.Paths)
	logsBefore := analyze.TotalSize(s.Targets.Logs.Paths)

	s.CleanCaches()
	s.CleanLogs()
	s.EmptyTrash()

	cachesAfter := analyze.TotalSize(s.Targets.Caches.Paths)
	logsAfter := analyze.TotalSize(s.Targets.Logs.Paths)

	summary := status.Dashboard(cachesBefore, cachesAfter, logsBefore, logsAfter)
	s.Out.Print(status.RenderDashboard(summary))
	s.ShowVolume()

	return summary
}

// ShowVolume prints the home volume panel when usage can be read.
func (s *Session) ShowVolume() {
	if s.Volume == nil {
		return
	}
	v, err := s.Volume(s.Targets.Home)
	if err != nil {
		s.Log.WithError(err).Debug("volume usage unavailable")
		return
	}
	s.Out.Print("")
	s.Out.Print(status.RenderVolume(v))
}
