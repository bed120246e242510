// Package errcollect accumulates non-fatal diagnostics during a reload pass
// so they can be reported together once the whole batch has been processed.
package errcollect

import (
	"context"
	"log/slog"
	"sync"

	"github.com/osse101/chestmenus/internal/logger"
)

// Severity separates problems that broke something from ones that only
// deserve attention.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Entry is one collected diagnostic.
type Entry struct {
	Severity Severity `json:"-"`
	Level    string   `json:"severity"`
	Message  string   `json:"message"`
	Cause    error    `json:"-"`
	Detail   string   `json:"cause,omitempty"`
	File     string   `json:"file,omitempty"`
}

// Sink is the write side of a collector, the only part loaders need.
type Sink interface {
	Add(message string)
	AddCause(cause error, message string)
	AddWarning(cause error, message string)
}

// Collector is an append-only sink. It never fails and accepts any number of
// entries. It is safe for concurrent use.
type Collector struct {
	mu      sync.Mutex
	entries []Entry
}

var _ Sink = (*Collector)(nil)

// New returns an empty collector.
func New() *Collector {
	return &Collector{}
}

// Add records an error-severity message without a cause.
func (c *Collector) Add(message string) {
	c.append("", SeverityError, message, nil)
}

// AddCause records an error-severity message with the error that caused it.
func (c *Collector) AddCause(cause error, message string) {
	c.append("", SeverityError, message, cause)
}

// AddWarning records a warning-severity message; cause may be nil.
func (c *Collector) AddWarning(cause error, message string) {
	c.append("", SeverityWarning, message, cause)
}

// ForFile returns a sink that tags everything it records with the menu file
// being loaded.
func (c *Collector) ForFile(file string) Sink {
	return fileSink{collector: c, file: file}
}

func (c *Collector) append(file string, severity Severity, message string, cause error) {
	entry := Entry{Severity: severity, Level: severity.String(), Message: message, Cause: cause, File: file}
	if cause != nil {
		entry.Detail = cause.Error()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
}

// Entries returns a copy of everything collected so far, in insertion order.
func (c *Collector) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of collected entries.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Count returns how many entries have the given severity.
func (c *Collector) Count(severity Severity) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		if e.Severity == severity {
			n++
		}
	}
	return n
}

// HasErrors reports whether any error-severity entry was collected.
func (c *Collector) HasErrors() bool {
	return c.Count(SeverityError) > 0
}

// Flush logs every entry through the context logger. Call it once, after the
// whole batch has been processed.
func (c *Collector) Flush(ctx context.Context) {
	log := logger.FromContext(ctx)
	for _, e := range c.Entries() {
		attrs := []any{}
		if e.File != "" {
			attrs = append(attrs, "menu_file", e.File)
		}
		if e.Cause != nil {
			attrs = append(attrs, "cause", e.Detail)
		}
		log.Log(ctx, e.Severity.LogLevel(), e.Message, attrs...)
	}

	errCount, warnCount := c.Count(SeverityError), c.Count(SeverityWarning)
	if errCount+warnCount > 0 {
		log.Warn(LogMsgProblemsFound, "errors", errCount, "warnings", warnCount)
	}
}

type fileSink struct {
	collector *Collector
	file      string
}

func (s fileSink) Add(message string) {
	s.collector.append(s.file, SeverityError, message, nil)
}

func (s fileSink) AddCause(cause error, message string) {
	s.collector.append(s.file, SeverityError, message, cause)
}

func (s fileSink) AddWarning(cause error, message string) {
	s.collector.append(s.file, SeverityWarning, message, cause)
}

// LogLevel maps a severity onto a slog level.
func (s Severity) LogLevel() slog.Level {
	if s == SeverityWarning {
		return slog.LevelWarn
	}
	return slog.LevelError
}
