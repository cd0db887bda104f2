package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing input path",
			config: Config{
				Paths: PathsConfig{
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "missing output path",
			config: Config{
				Paths: PathsConfig{
					Input: "data/input",
				},
			},
			wantErr: true,
		},
		{
			name: "unknown strategy",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
				Analysis: AnalysisConfig{Strategy: "parallel"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Analysis.Strategy != StrategySingle {
		t.Errorf("Strategy = %q, want %q", cfg.Analysis.Strategy, StrategySingle)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if !cfg.Analysis.Features.Any() {
		t.Error("Features should default to all enabled")
	}
	if cfg.Analysis.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %d, want 3", cfg.Analysis.MaxAttempts)
	}
	if cfg.Analysis.BaseDelayMs != 1000 {
		t.Errorf("BaseDelayMs = %d, want 1000", cfg.Analysis.BaseDelayMs)
	}
	if cfg.Analysis.QuestionDelayMs != 2000 {
		t.Errorf("QuestionDelayMs = %d, want 2000", cfg.Analysis.QuestionDelayMs)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Performance.MaxConcurrent != 1 {
		t.Errorf("MaxConcurrent = %d, want 1", cfg.Performance.MaxConcurrent)
	}
}

func TestValidateRetryFloors(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
		Analysis: AnalysisConfig{
			MaxAttempts: 1,
			BaseDelayMs: 50,
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Analysis.MaxAttempts < 3 {
		t.Errorf("MaxAttempts = %d, want >= 3", cfg.Analysis.MaxAttempts)
	}
	if cfg.Analysis.BaseDelayMs < 1000 {
		t.Errorf("BaseDelayMs = %d, want >= 1000", cfg.Analysis.BaseDelayMs)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
gemini:
  model: "gemini-2.5-flash"

analysis:
  strategy: "multi"
  features:
    summary: true
    analysis: true
  questions:
    - "What were the main topics discussed?"
  question_delay_ms: 2000

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Analysis.Strategy != StrategyMulti {
		t.Errorf("Strategy = %q, want multi", cfg.Analysis.Strategy)
	}
	if !cfg.Analysis.Features.Summary || !cfg.Analysis.Features.Analysis {
		t.Errorf("Features = %+v, want summary and analysis enabled", cfg.Analysis.Features)
	}
	if cfg.Analysis.Features.Transcription {
		t.Error("Transcription should stay disabled when other features are set")
	}
	if len(cfg.Analysis.Questions) != 1 {
		t.Errorf("Questions = %v, want one entry", cfg.Analysis.Questions)
	}
	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want data/input", cfg.Paths.Input)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
