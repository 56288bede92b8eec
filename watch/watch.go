// Package watch keeps a transposed copy of a chart up to date while the
// source is being edited.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/chordshift/file"
	"github.com/jsphweid/chordshift/transpose"
	"go.uber.org/zap"
)

type Options struct {
	Src       string
	Dst       string
	Semitones int
	// quiet period after the last change before re-rendering
	Debounce time.Duration
	Logger   *zap.Logger
}

func render(o Options) error {
	text, err := file.ReadChart(o.Src, nil)
	if err != nil {
		return err
	}
	return file.WriteChart(o.Dst, transpose.Transpose(text, o.Semitones), nil)
}

// Run renders Src into Dst once and again after every burst of changes
// until ctx is done.
func Run(ctx context.Context, o Options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// editors often replace the file rather than write to it, so watch the
	// directory and filter by name
	src := filepath.Clean(o.Src)
	if err := watcher.Add(filepath.Dir(src)); err != nil {
		return fmt.Errorf("watching %s: %w", src, err)
	}

	if err := render(o); err != nil {
		return err
	}
	o.Logger.Info("Rendered chart", zap.String("src", o.Src), zap.String("dst", o.Dst))

	debounced := debounce.New(o.Debounce)
	for {
		select {
		case <-ctx.Done():
			// replace any pending render with a no-op
			debounced(func() {})
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != src || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			debounced(func() {
				if err := render(o); err != nil {
					o.Logger.Warn("Could not render chart", zap.String("src", o.Src), zap.Error(err))
					return
				}
				o.Logger.Info("Rendered chart", zap.String("src", o.Src), zap.String("dst", o.Dst))
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			o.Logger.Warn("Watcher error", zap.Error(err))
		}
	}
}
