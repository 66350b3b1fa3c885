package inspect

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/danmuck/callsdk/internal/config"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Reload loads path and applies its [decode] section. The listener, auth
// and CORS settings are bound when the server starts, so the running values
// are kept. A config that fails to load leaves the current one in place.
func (s *Server) Reload(path string) error {
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg := s.Config()
	cfg.Decode = loaded.Decode
	if err := s.Apply(cfg); err != nil {
		return err
	}
	log.Info().Str("service", s.Name).Str("path", path).Msg("config reloaded")
	return nil
}

// WatchConfig reloads path whenever it is written or replaced, until ctx is
// done. The parent directory is watched so editors that rename over the
// file are seen.
func (s *Server) WatchConfig(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("inspect: watch %s: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("inspect: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("inspect: watch %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if name, _ := filepath.Abs(event.Name); name != abs {
					continue
				}
				if err := s.Reload(abs); err != nil {
					log.Warn().Str("service", s.Name).Str("path", abs).Err(err).Msg("config reload rejected")
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Str("service", s.Name).Err(err).Msg("config watcher error")
			}
		}
	}()
	return nil
}
