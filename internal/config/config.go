package config

import (
	"fmt"

	"github.com/nguyentantai21042004/audio-insight/internal/types"
)

// Analysis strategies.
const (
	StrategySingle = "single"
	StrategyMulti  = "multi"
)

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type PerformanceConfig struct {
	// MaxConcurrent bounds how many files are analyzed at once. The model's
	// rate limit is per caller, so anything above 1 trades pacing for speed.
	MaxConcurrent int `yaml:"max_concurrent"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type AnalysisConfig struct {
	// Strategy selects how features are obtained: "single" sends one
	// combined request, "multi" sends one request per feature and one per
	// question.
	Strategy string `yaml:"strategy"`

	Features  types.FeatureSelection `yaml:"features"`
	Questions []string               `yaml:"questions"`

	// Retry policy for every individual model request.
	MaxAttempts int `yaml:"max_attempts"`
	BaseDelayMs int `yaml:"base_delay_ms"`

	// QuestionDelayMs paces sequential per-question requests in the multi
	// strategy.
	QuestionDelayMs int `yaml:"question_delay_ms"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	switch c.Analysis.Strategy {
	case "":
		c.Analysis.Strategy = StrategySingle
	case StrategySingle, StrategyMulti:
	default:
		return fmt.Errorf("analysis.strategy must be %q or %q", StrategySingle, StrategyMulti)
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if !c.Analysis.Features.Any() {
		c.Analysis.Features = types.FeatureSelection{
			Summary:                  true,
			TimestampedTranscription: true,
			Transcription:            true,
			Analysis:                 true,
			Chat:                     true,
		}
	}

	// Every model request must survive transient rate limiting; these floors
	// keep a misconfigured file from disabling retries.
	if c.Analysis.MaxAttempts < 3 {
		c.Analysis.MaxAttempts = 3
	}
	if c.Analysis.BaseDelayMs < 1000 {
		c.Analysis.BaseDelayMs = 1000
	}
	if c.Analysis.QuestionDelayMs <= 0 {
		c.Analysis.QuestionDelayMs = 2000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent <= 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}
