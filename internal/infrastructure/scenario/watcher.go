package scenario

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/lrutrace/internal/application/port"
	"github.com/bnema/lrutrace/internal/domain/entity"
	"github.com/bnema/lrutrace/internal/logging"
)

// Watch reloads the scenario at path whenever it is written or recreated and
// hands the result to fn. It blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file so editors that save
// through rename keep triggering reloads.
func Watch(
	ctx context.Context,
	loader port.ScenarioLoader,
	path string,
	fn func(entity.Scenario, error),
) error {
	ctx = logging.WithComponent(ctx, "scenario-watcher")
	log := logging.FromContext(ctx)

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close scenario watcher")
		}
	}()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	log.Debug().Str("path", abs).Msg("watching scenario")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug().Str("op", event.Op.String()).Str("file", event.Name).Msg("scenario change detected")
			fn(loader.Load(ctx, abs))
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(werr).Msg("scenario watcher error")
		}
	}
}
