// Package graph turns a resolution into the node/link structure the tree
// renderer consumes.
package graph

import (
	"go.uber.org/zap"

	"github.com/teranos/lineage/config"
	"github.com/teranos/lineage/logger"
)

// Options configures node presentation
type Options struct {
	MaleColor    string
	FemaleColor  string
	UnknownColor string
	LinkURL      string // fmt template with one %s for the link token
}

// DefaultOptions returns the stock colors and record URL
func DefaultOptions() Options {
	return Options{
		MaleColor:    defaultMaleColor,
		FemaleColor:  defaultFemaleColor,
		UnknownColor: defaultUnknownColor,
		LinkURL:      config.DefaultLinkURL,
	}
}

// OptionsFromConfig builds options from the [graph] section; blank colors keep the defaults
func OptionsFromConfig(cfg config.GraphConfig) Options {
	opts := DefaultOptions()
	if cfg.MaleColor != "" {
		opts.MaleColor = cfg.MaleColor
	}
	if cfg.FemaleColor != "" {
		opts.FemaleColor = cfg.FemaleColor
	}
	if cfg.UnknownColor != "" {
		opts.UnknownColor = cfg.UnknownColor
	}
	opts.LinkURL = cfg.LinkURL
	return opts
}

// Builder builds graph structures from resolutions
type Builder struct {
	opts   Options
	logger *zap.SugaredLogger
}

// NewBuilder creates a new graph builder
func NewBuilder(opts Options, log *zap.SugaredLogger) *Builder {
	if log == nil {
		log = logger.Logger
	}
	return &Builder{
		opts:   opts,
		logger: log.Named("graph.builder"),
	}
}
