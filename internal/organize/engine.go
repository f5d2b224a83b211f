// Package organize moves the regular files of a single directory into
// category subfolders under an Organized_Files root, renaming on
// collision. One run is a single sequential pass; failures on
// individual files are collected, not fatal.
package organize

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"shelve/internal/category"
)

// OrganizedRootName is the subfolder created inside the source
// directory to hold the category folders.
const OrganizedRootName = "Organized_Files"

var (
	ErrSourceNotFound = errors.New("source folder does not exist")
	ErrNotDirectory   = errors.New("source path is not a directory")
)

// Engine classifies and moves files. It holds no per-run state; a
// single Engine may serve many runs.
type Engine struct {
	table  *category.Table
	logger *slog.Logger
	noLock bool
}

type Option func(*Engine)

// WithLogger attaches a logger for per-file tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithoutLock disables the cross-process run lock. Intended for tests
// and for callers that serialize runs themselves.
func WithoutLock() Option {
	return func(e *Engine) {
		e.noLock = true
	}
}

func NewEngine(table *category.Table, opts ...Option) *Engine {
	e := &Engine{
		table:  table,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run organizes the immediate regular files of source. Fatal
// preconditions (missing source, non-directory source, uncreatable
// organized root, unlistable source) return an error and a nil Result;
// past that point the run always succeeds and per-file failures are
// reported in Result.Errors.
//
// The engine does not canonicalize source; callers resolve relative
// paths first.
func (e *Engine) Run(source string) (*Result, error) {
	info, err := os.Stat(source)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, source)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access source %q: %w", source, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, source)
	}

	if !e.noLock {
		lock, err := acquireRunLock(source)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				e.logger.Warn("failed to release run lock", "source", source, "error", err)
			}
		}()
	}

	root := filepath.Join(source, OrganizedRootName)
	if err := EnsureDir(root); err != nil {
		return nil, fmt.Errorf("cannot create destination: %w", err)
	}

	entries, err := os.ReadDir(source)
	if err != nil {
		return nil, fmt.Errorf("cannot list source %q: %w", source, err)
	}

	result := newResult(source, root)

	files := regularFileNames(entries)
	if len(files) == 0 {
		result.Message = "No files found in the selected folder."
		e.logger.Info("nothing to organize", "source", source)
		return result, nil
	}

	for _, name := range files {
		// Hidden entries and a stray entry named after the organized
		// root are not candidates: not moved, not errors, not counted.
		if strings.HasPrefix(name, ".") || name == OrganizedRootName {
			continue
		}
		e.moveFile(result, source, root, name)
	}

	result.Message = fmt.Sprintf("Successfully organized %d files!", result.TotalMoved)
	e.logger.Info("run complete",
		"source", source,
		"moved", result.TotalMoved,
		"errors", len(result.Errors))
	return result, nil
}

func (e *Engine) moveFile(result *Result, source, root, name string) {
	categoryName := e.table.Classify(filepath.Ext(name))

	categoryDir := filepath.Join(root, categoryName)
	if err := EnsureDir(categoryDir); err != nil {
		result.recordError(name, err)
		e.logger.Warn("cannot provision category folder", "file", name, "category", categoryName, "error", err)
		return
	}

	target, err := ResolveUnique(categoryDir, name)
	if err != nil {
		result.recordError(name, err)
		e.logger.Warn("cannot resolve destination", "file", name, "error", err)
		return
	}

	if err := os.Rename(filepath.Join(source, name), target); err != nil {
		result.recordError(name, err)
		e.logger.Warn("move failed", "file", name, "error", err)
		return
	}

	result.recordMove(categoryName)
	e.logger.Debug("moved file", "file", name, "category", categoryName, "target", target)
}

func regularFileNames(entries []fs.DirEntry) []string {
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names
}
