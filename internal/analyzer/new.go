package analyzer

import (
	"time"

	"github.com/nguyentantai21042004/audio-insight/internal/config"
	"github.com/nguyentantai21042004/audio-insight/internal/gemini"
	"github.com/nguyentantai21042004/audio-insight/internal/logger"
	"github.com/nguyentantai21042004/audio-insight/pkg/retry"
)

// Options tune an Analyzer. Zero values fall back to the defaults below.
type Options struct {
	// Strategy is config.StrategySingle (one combined request) or
	// config.StrategyMulti (one request per feature and per question).
	Strategy string

	// Policy wraps every individual model request.
	Policy retry.Policy

	// QuestionDelay paces sequential per-question requests in the multi
	// strategy.
	QuestionDelay time.Duration
}

type implAnalyzer struct {
	generator     gemini.Generator
	logger        logger.Logger
	strategy      string
	policy        retry.Policy
	questionDelay time.Duration
}

// New creates an Analyzer over the given generator.
func New(gen gemini.Generator, log logger.Logger, opts Options) Analyzer {
	if opts.Strategy == "" {
		opts.Strategy = config.StrategySingle
	}
	if opts.Policy.MaxAttempts < 3 {
		opts.Policy.MaxAttempts = 3
	}
	if opts.Policy.BaseDelay < time.Second {
		opts.Policy.BaseDelay = time.Second
	}
	if opts.QuestionDelay <= 0 {
		opts.QuestionDelay = 2 * time.Second
	}

	return &implAnalyzer{
		generator:     gen,
		logger:        log,
		strategy:      opts.Strategy,
		policy:        opts.Policy,
		questionDelay: opts.QuestionDelay,
	}
}
