package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/andywolf/skillseed/internal/logging"
	"github.com/andywolf/skillseed/internal/skills"
)

// Watch runs the generator once and again after every change to one of the
// configured level files, until ctx is cancelled. Each run reports to done.
// Changes arriving within debounce of each other trigger a single run.
func (g *Generator) Watch(ctx context.Context, debounce time.Duration, done func(*Outcome, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(g.cfg.InputDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", g.cfg.InputDir, err)
	}

	watched := make(map[string]bool, len(g.cfg.Levels))
	for _, level := range g.cfg.SkillLevels() {
		watched[string(level)+skills.FileExtension] = true
	}

	done(g.Run(ctx))
	logging.Info("watching for changes", "dir", g.cfg.InputDir)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Base(event.Name)] || event.Op == fsnotify.Chmod {
				continue
			}
			logging.Debug("input changed", "file", event.Name, "op", event.Op.String())
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn("watch error", "err", err)

		case <-timer.C:
			done(g.Run(ctx))
		}
	}
}
