package dataset

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/teranos/lineage/config"
	"github.com/teranos/lineage/errors"
	"github.com/teranos/lineage/graph"
	"github.com/teranos/lineage/ingest"
	"github.com/teranos/lineage/logger"
)

// Loader reads a table from a path
type Loader interface {
	Load(path string) (*ingest.Result, error)
}

// Store holds the current session and swaps it on reload.
// Readers get a consistent snapshot; a failed reload keeps the previous session.
type Store struct {
	path      string
	loader    Loader
	graphOpts graph.Options
	logger    *zap.SugaredLogger

	mu      sync.RWMutex
	current *Session
	group   singleflight.Group
}

// NewStore creates a store for the table at path. Nothing is loaded until Reload.
func NewStore(path string, loader Loader, graphOpts graph.Options, log *zap.SugaredLogger) *Store {
	if log == nil {
		log = logger.ComponentLogger("dataset.store")
	}
	return &Store{
		path:      path,
		loader:    loader,
		graphOpts: graphOpts,
		logger:    log,
	}
}

// Open creates a store from configuration and loads the table once
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	loader := ingest.NewLoader(ingest.OptionsFromConfig(cfg), nil)
	store := NewStore(cfg.Data.Path, loader, graph.OptionsFromConfig(cfg.Graph), nil)
	if _, err := store.Reload(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// Path returns the table path
func (s *Store) Path() string {
	return s.path
}

// Current returns the loaded session
func (s *Store) Current() (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, errors.ErrNoDataset
	}
	return s.current, nil
}

// Reload reads the table again and swaps in a new session.
// Concurrent calls share one load.
func (s *Store) Reload(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err, shared := s.group.Do(s.path, func() (any, error) {
		loaded, err := s.loader.Load(s.path)
		if err != nil {
			return nil, err
		}
		session := NewSession(loaded, s.graphOpts)

		s.mu.Lock()
		s.current = session
		s.mu.Unlock()

		s.logger.Infow("Session loaded",
			logger.FieldSessionID, session.ID,
			logger.FieldFile, session.Path,
			logger.FieldShape, session.Shape,
			logger.FieldRows, session.Stats.Rows,
			logger.FieldNodes, len(session.Resolution.Nodes),
			logger.FieldCount, len(session.Resolution.Persons),
		)
		return session, nil
	})
	if err != nil {
		s.logger.Warnw("Reload failed, keeping previous session",
			logger.FieldFile, s.path,
			logger.FieldError, err,
		)
		return nil, errors.Wrap(err, "failed to load dataset")
	}
	if shared {
		s.logger.Debugw("Reload coalesced", logger.FieldFile, s.path)
	}
	return result.(*Session), nil
}
