package config

import (
	"strings"

	"github.com/teranos/lineage/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Data.Shape {
	case ShapeAuto, ShapeParents, ShapeChildren:
	default:
		return errors.WrapInvalidConfig("data.shape must be one of auto, parents, children, got %q", c.Data.Shape)
	}

	// The loader cannot work without these headers
	required := map[string]string{
		"columns.id":         c.Columns.ID,
		"columns.generation": c.Columns.Generation,
		"columns.sex":        c.Columns.Sex,
	}
	for key, header := range required {
		if strings.TrimSpace(header) == "" {
			return errors.WrapInvalidConfig("%s cannot be empty", key)
		}
	}

	if c.Data.Shape == ShapeChildren && strings.TrimSpace(c.Columns.Child) == "" {
		return errors.WrapInvalidConfig("columns.child cannot be empty when data.shape is %q", ShapeChildren)
	}
	if c.Data.Shape == ShapeParents && strings.TrimSpace(c.Columns.Father) == "" && strings.TrimSpace(c.Columns.Mother) == "" {
		return errors.WrapInvalidConfig("columns.father or columns.mother must be set when data.shape is %q", ShapeParents)
	}

	if overlap := overlappingLabel(c.Sex.Male, c.Sex.Female); overlap != "" {
		return errors.WrapInvalidConfig("sex label %q is listed as both male and female", overlap)
	}

	if c.Graph.LinkURL != "" && strings.Count(c.Graph.LinkURL, "%s") != 1 {
		return errors.WrapInvalidConfig("graph.link_url must contain exactly one %%s, got %q", c.Graph.LinkURL)
	}

	// Server port: 0 is invalid (omit for default), negative is invalid
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.WrapInvalidConfig("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	// Rate limiting: 0 = unlimited, negative = invalid
	if c.Server.RequestsPerSecond < 0 {
		return errors.WrapInvalidConfig("server.requests_per_second must be >= 0, got %f", c.Server.RequestsPerSecond)
	}
	if c.Server.RequestsPerSecond > 0 && c.Server.Burst <= 0 {
		return errors.WrapInvalidConfig("server.burst must be > 0 when rate limiting is enabled, got %d", c.Server.Burst)
	}

	if c.Server.DebounceMS < 0 {
		return errors.WrapInvalidConfig("server.debounce_ms must be >= 0, got %d", c.Server.DebounceMS)
	}

	return nil
}

func overlappingLabel(male, female []string) string {
	seen := make(map[string]bool, len(male))
	for _, m := range male {
		seen[strings.ToLower(strings.TrimSpace(m))] = true
	}
	for _, f := range female {
		if seen[strings.ToLower(strings.TrimSpace(f))] {
			return f
		}
	}
	return ""
}
