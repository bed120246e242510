// Package reload runs full reload passes: every menu file is parsed, the
// registry is swapped in one step and the collected problems are reported.
package reload

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/osse101/chestmenus/internal/errcollect"
	"github.com/osse101/chestmenus/internal/logger"
	"github.com/osse101/chestmenus/internal/menu"
	"github.com/osse101/chestmenus/internal/menuconfig"
	"github.com/osse101/chestmenus/internal/metrics"
	"github.com/osse101/chestmenus/internal/parsing"
)

// Report summarises one reload pass.
type Report struct {
	ID        string             `json:"id"`
	StartedAt time.Time          `json:"started_at"`
	Duration  time.Duration      `json:"duration"`
	Files     int                `json:"files"`
	Skipped   int                `json:"skipped"`
	Menus     int                `json:"menus"`
	Errors    int                `json:"errors"`
	Warnings  int                `json:"warnings"`
	Entries   []errcollect.Entry `json:"entries"`
}

// Service reloads menus from a directory into a registry. Reloads are
// serialized.
type Service struct {
	dir              string
	permissionPrefix string
	registry         *menu.Registry
	onReload         []func(*Report)
	onFailure        []func(error)

	mu   sync.Mutex
	last *Report
}

// Option configures a Service.
type Option func(*Service)

// WithPermissionPrefix sets the prefix of every menu's open permission.
func WithPermissionPrefix(prefix string) Option {
	return func(s *Service) { s.permissionPrefix = prefix }
}

// WithReloadHook registers fn to run after every successful reload.
func WithReloadHook(fn func(*Report)) Option {
	return func(s *Service) { s.onReload = append(s.onReload, fn) }
}

// WithFailureHook registers fn to run when a pass cannot read the menus
// directory.
func WithFailureHook(fn func(error)) Option {
	return func(s *Service) { s.onFailure = append(s.onFailure, fn) }
}

// NewService creates a reload service for the menus under dir.
func NewService(dir string, registry *menu.Registry, opts ...Option) *Service {
	s := &Service{
		dir:              dir,
		permissionPrefix: menu.DefaultOpenPermissionPrefix,
		registry:         registry,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the menus directory.
func (s *Service) Dir() string { return s.dir }

// LastReport returns the report of the latest successful pass, or nil.
func (s *Service) LastReport() *Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Reload runs one full pass. A missing or unreadable menus directory is
// returned as an error and leaves the registry untouched. Problems with
// single files or values end up in the report instead.
func (s *Service) Reload(ctx context.Context) (*Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := &Report{ID: logger.GenerateRequestID(), StartedAt: time.Now()}
	ctx = logger.WithReloadID(ctx, report.ID)
	log := logger.FromContext(ctx)
	log.Info(LogMsgReloadStarted, "dir", s.dir)

	files, err := s.menuFiles()
	if err != nil {
		report.Duration = time.Since(report.StartedAt)
		metrics.RecordReload(report.Duration, true, 0, 0, 0)
		log.Error(LogMsgReloadFailed, "error", err)
		for _, fn := range s.onFailure {
			fn(err)
		}
		return nil, err
	}
	report.Files = len(files)

	collector := errcollect.New()
	loaded := make([]menu.LoadedMenu, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rel := s.relative(path)
		sink := collector.ForFile(rel)

		cfg, err := menuconfig.LoadFile(path)
		if err != nil {
			report.Skipped++
			sink.AddCause(err, fmt.Sprintf(ErrMsgSkippedFile, rel))
			continue
		}

		lm := parsing.LoadMenu(cfg, sink)
		lm.Menu.SetOpenPermission(s.permissionPrefix + lm.FileName)
		loaded = append(loaded, lm)
	}

	s.registry.ReplaceAll(loaded, collector)
	collector.Flush(ctx)

	report.Menus = len(loaded)
	report.Entries = collector.Entries()
	report.Errors = collector.Count(errcollect.SeverityError)
	report.Warnings = collector.Count(errcollect.SeverityWarning)
	report.Duration = time.Since(report.StartedAt)

	metrics.RecordReload(report.Duration, false, report.Errors, report.Warnings, report.Skipped)
	metrics.RecordRegistry(s.registry.Counts())

	log.Info(LogMsgReloadFinished,
		"files", report.Files,
		"menus", report.Menus,
		"errors", report.Errors,
		"warnings", report.Warnings,
		"duration", report.Duration,
	)

	s.last = report
	for _, fn := range s.onReload {
		fn(report)
	}
	return report, nil
}

// menuFiles lists menu files under the directory in lexical order.
func (s *Service) menuFiles() ([]string, error) {
	info, err := os.Stat(s.dir)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgMenusDir, s.dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(ErrMsgNotADirectory, s.dir)
	}

	var files []string
	err = filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && menuconfig.IsMenuFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgMenusDir, s.dir, err)
	}

	sort.Strings(files)
	return files, nil
}

func (s *Service) relative(path string) string {
	if rel, err := filepath.Rel(s.dir, path); err == nil {
		return rel
	}
	return path
}
