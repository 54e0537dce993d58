// Package server exposes the analyses of a dataset.Store as a stateless
// JSON API for an external presentation layer.
//
// Every request reads one session snapshot from the store, so a reload
// triggered by the file watcher never mixes two versions of the table in
// a single response.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teranos/lineage/config"
	"github.com/teranos/lineage/dataset"
	"github.com/teranos/lineage/errors"
	"github.com/teranos/lineage/logger"
)

// Server serves the JSON API over a dataset store
type Server struct {
	store  *dataset.Store
	cfg    config.ServerConfig
	engine *gin.Engine
	http   *http.Server
	logger *zap.SugaredLogger
	state  atomic.Int32
}

// New builds the router. Nothing listens until Start.
func New(store *dataset.Store, cfg config.ServerConfig) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		store:  store,
		cfg:    cfg,
		logger: logger.ComponentLogger("server"),
	}
	s.state.Store(int32(ServerStateStarting))

	engine := gin.New()
	engine.Use(
		requestID(),
		recovery(s.logger),
		requestLogger(s.logger),
		corsFor(cfg.AllowedOrigins),
		rateLimit(cfg.RequestsPerSecond, cfg.Burst),
	)
	s.routes(engine)
	s.engine = engine
	return s
}

// Handler returns the HTTP handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.engine
}

// State returns the current lifecycle state
func (s *Server) State() ServerState {
	return ServerState(s.state.Load())
}

func (s *Server) setState(newState ServerState) {
	s.state.Store(int32(newState))
	s.logger.Infow("Server state changed", "new_state", newState.String())
}

// Start listens on the configured port and serves until Stop.
// It returns once the listener is bound; serve errors are reported on the
// returned channel.
func (s *Server) Start() (<-chan error, error) {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.WithHintf(
			errors.Wrapf(err, "failed to listen on %s", addr),
			"another process may be using port %d; pass --port to pick another", s.cfg.Port,
		)
	}

	s.http = &http.Server{Handler: s.engine}
	s.setState(ServerStateRunning)
	s.logger.Infow("Listening", logger.FieldAddress, ln.Addr().String())

	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- errors.Wrap(err, "server failed")
		}
	}()
	return errc, nil
}

// Stop drains in-flight requests, waiting at most ShutdownTimeout
func (s *Server) Stop(ctx context.Context) error {
	if s.http == nil {
		s.setState(ServerStateStopped)
		return nil
	}
	s.logger.Infow("Initiating server shutdown")
	s.setState(ServerStateDraining)

	ctx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
	defer cancel()
	err := s.http.Shutdown(ctx)

	s.setState(ServerStateStopped)
	if err != nil {
		s.logger.Warnw("Shutdown did not complete cleanly", logger.FieldError, err)
		return errors.Wrap(err, "failed to shut down server")
	}
	s.logger.Infow("Server shutdown complete")
	return nil
}
