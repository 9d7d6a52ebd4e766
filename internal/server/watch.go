package server

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the project whenever one of its config files is written,
// created or renamed into place, until ctx is cancelled. Editors that
// save by rename are covered by watching the directory, not the file.
func (s *Server) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(s.projectPath); err != nil {
		return fmt.Errorf("watching %s: %w", s.projectPath, err)
	}
	s.log.Debug("watching project", "path", s.projectPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isProjectFile(ev.Name) || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) {
				continue
			}
			s.log.Info("project changed, reloading", "file", ev.Name, "op", ev.Op.String())
			if err := s.Load(); err != nil {
				s.log.Warn("reload failed, keeping previous layout", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watcher error", "err", err)
		}
	}
}
