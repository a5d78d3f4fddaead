package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watch re-applies the speed from path to settings whenever the file is written, until ctx
// is cancelled. The directory is watched so editors that replace the file are picked up.
func Watch(ctx context.Context, path string, settings *Settings, logger zerolog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", target, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := Load(target)
			if err != nil {
				logger.Warn().Err(err).Str("path", target).Msg("ignoring config change")
				continue
			}

			if cfg.Speed != settings.Speed() {
				settings.SetSpeed(cfg.Speed)
				logger.Info().
					Str("speed", string(cfg.Speed)).
					Dur("delay", cfg.Speed.Delay()).
					Msg("speed reloaded")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("config watcher error")
		}
	}
}
