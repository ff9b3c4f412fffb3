package internal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/RustWorks/harper-grammar-checker/internal/types"
)

// ReportFunc receives the issues found after a watched file changed.
type ReportFunc func(filename string, issues []tt.Issue)

// Watcher re-lints prose files whenever they are written.
type Watcher struct {
	engine     *Engine
	watcher    *fsnotify.Watcher
	extensions map[string]bool
	debounce   time.Duration
	report     ReportFunc
	logger     *zap.Logger
}

// NewWatcher creates a watcher for files with the given extensions
// (including the dot). report may be nil, in which case issues are logged.
func NewWatcher(engine *Engine, extensions []string, report ReportFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}

	w := &Watcher{
		engine:     engine,
		watcher:    fw,
		extensions: make(map[string]bool, len(extensions)),
		debounce:   100 * time.Millisecond,
		report:     report,
		logger:     engine.logger,
	}
	for _, ext := range extensions {
		w.extensions[ext] = true
	}
	if w.report == nil {
		w.report = w.logIssues
	}
	return w, nil
}

// Add watches dir and every directory below it.
func (w *Watcher) Add(dir string) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error adding directory to watcher: %w", err)
	}
	return nil
}

// Run processes file events until ctx is done or the watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	// latest write per file; linted once it has been quiet for the debounce period
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				pending[event.Name] = time.Now()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", zap.Error(err))
		case now := <-ticker.C:
			for name, last := range pending {
				if now.Sub(last) < w.debounce {
					continue
				}
				delete(pending, name)
				w.lint(name)
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return w.extensions[filepath.Ext(event.Name)]
}

func (w *Watcher) lint(filename string) {
	issues, err := w.engine.Run(filename)
	if err != nil {
		w.logger.Error("Error linting file", zap.String("file", filename), zap.Error(err))
		return
	}
	w.report(filename, issues)
}

func (w *Watcher) logIssues(filename string, issues []tt.Issue) {
	if len(issues) == 0 {
		w.logger.Info("No issues found", zap.String("file", filename))
		return
	}

	w.logger.Info("Found issues", zap.String("file", filename), zap.Int("count", len(issues)))
	for _, issue := range issues {
		w.logger.Info(issue.Message,
			zap.String("rule", issue.Rule),
			zap.Int("line", issue.Start.Line),
			zap.Int("column", issue.Start.Column),
		)
	}
}
