// Package dataset holds the analysis session: one loaded table, its identity
// resolution and everything derived from it.
package dataset

import (
	"time"

	"github.com/google/uuid"

	"github.com/teranos/lineage/analysis"
	"github.com/teranos/lineage/graph"
	"github.com/teranos/lineage/ingest"
	"github.com/teranos/lineage/person"
	"github.com/teranos/lineage/resolve"
)

// Session is an immutable snapshot of one loaded table.
// Derived views are recomputed on every call.
type Session struct {
	ID         string              `json:"id"`
	LoadedAt   time.Time           `json:"loaded_at"`
	Path       string              `json:"path"`
	Format     string              `json:"format"`
	Shape      string              `json:"shape"`
	Stats      ingest.Stats        `json:"stats"`
	Resolution *resolve.Resolution `json:"-"`

	graphOpts graph.Options
}

// NewSession resolves a loaded table into a session
func NewSession(result *ingest.Result, opts graph.Options) *Session {
	return &Session{
		ID:         uuid.NewString(),
		LoadedAt:   time.Now(),
		Path:       result.Path,
		Format:     result.Format,
		Shape:      result.Shape,
		Stats:      result.Stats,
		Resolution: resolve.Resolve(result.Records),
		graphOpts:  opts,
	}
}

// Persons returns the canonical persons, one per real person
func (s *Session) Persons() []person.Record {
	return s.Resolution.Persons
}

// Graph builds the ancestry graph
func (s *Session) Graph() *graph.Graph {
	return graph.Build(s.Resolution, s.graphOpts)
}

// Generations summarizes generation completeness
func (s *Session) Generations() []analysis.GenerationSummary {
	return analysis.Generations(s.Persons())
}

// Surnames computes the weighted surname distribution
func (s *Session) Surnames() analysis.SurnameDistribution {
	return analysis.Surnames(s.Persons())
}

// SurnameCounts counts surname occurrences
func (s *Session) SurnameCounts() []analysis.Share {
	return analysis.SurnameCounts(s.Persons())
}

// Missing audits incomplete records
func (s *Session) Missing(filter analysis.MissingFilter) analysis.MissingReport {
	return analysis.Missing(s.Persons(), filter)
}

// Ages computes ages at death
func (s *Session) Ages() analysis.AgeReport {
	return analysis.Ages(s.Persons())
}

// Report runs every analysis
func (s *Session) Report() analysis.Report {
	return analysis.Analyze(s.Persons())
}
