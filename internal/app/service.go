// Package app wires the generation pipeline together and exposes the
// operations the server and CLI commands call.
package app

import (
	"adcraft/internal/creative"
	"adcraft/internal/library"
	"adcraft/internal/scoring"
	"adcraft/internal/trends"
	"adcraft/pkg/config"
)

type Service struct {
	cfg       *config.Config
	generator *creative.Generator
	scorer    *scoring.Scorer
	selector  *trends.Selector
	library   *library.Library
	mirror    *library.GCSMirror
}

type ServiceOptions struct {
	Config    *config.Config
	Generator *creative.Generator
	Scorer    *scoring.Scorer
	Selector  *trends.Selector
	Library   *library.Library
	Mirror    *library.GCSMirror
}

func NewService(opts ServiceOptions) *Service {
	return &Service{
		cfg:       opts.Config,
		generator: opts.Generator,
		scorer:    opts.Scorer,
		selector:  opts.Selector,
		library:   opts.Library,
		mirror:    opts.Mirror,
	}
}

func (s *Service) Library() *library.Library {
	return s.library
}

func (s *Service) Mirror() *library.GCSMirror {
	return s.mirror
}
