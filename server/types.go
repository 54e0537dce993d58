package server

import (
	"time"

	"github.com/teranos/lineage/analysis"
)

const (
	// ShutdownTimeout is how long in-flight requests get to finish on Stop
	ShutdownTimeout = 10 * time.Second

	// RequestIDHeader carries the per-request id in both directions
	RequestIDHeader = "X-Request-ID"
)

// ServerState represents the server lifecycle state
type ServerState int32

const (
	ServerStateStarting ServerState = iota // Listener not yet accepting
	ServerStateRunning                     // Normal operation
	ServerStateDraining                    // Graceful shutdown in progress
	ServerStateStopped                     // Shutdown complete
)

// String returns the human-readable state name
func (s ServerState) String() string {
	switch s {
	case ServerStateStarting:
		return "starting"
	case ServerStateRunning:
		return "running"
	case ServerStateDraining:
		return "draining"
	case ServerStateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status      string    `json:"status"`
	ServerState string    `json:"server_state"`
	Version     string    `json:"version"`
	SessionID   string    `json:"session_id,omitempty"`
	LoadedAt    time.Time `json:"loaded_at,omitempty"`
	File        string    `json:"file,omitempty"`
	Persons     int       `json:"persons"`
}

// BirthPlacesResponse is returned by GET /api/places/births
type BirthPlacesResponse struct {
	Countries []analysis.Share `json:"countries"`
	Cities    []analysis.Share `json:"cities"`
}

// DeathPlacesResponse is returned by GET /api/places/deaths
type DeathPlacesResponse struct {
	Cities []string               `json:"cities"`
	City   string                 `json:"city,omitempty"`
	Deaths []analysis.DeathRecord `json:"deaths,omitempty"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error     string `json:"error"`
	Hint      string `json:"hint,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
