package processor

import (
	"github.com/nguyentantai21042004/audio-insight/internal/analyzer"
	"github.com/nguyentantai21042004/audio-insight/internal/config"
	"github.com/nguyentantai21042004/audio-insight/internal/export"
	"github.com/nguyentantai21042004/audio-insight/internal/logger"
	"github.com/nguyentantai21042004/audio-insight/internal/registry"
)

type implProcessor struct {
	cfg      *config.Config
	analyzer analyzer.Analyzer
	exporter export.Exporter
	registry *registry.Registry
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, anl analyzer.Analyzer, exp export.Exporter, reg *registry.Registry, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		analyzer: anl,
		exporter: exp,
		registry: reg,
		logger:   log,
	}
}
