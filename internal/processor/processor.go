package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/audio-insight/internal/registry"
	"github.com/nguyentantai21042004/audio-insight/internal/types"
)

// Process orchestrates the entire audio analysis pipeline
func (p *implProcessor) Process(ctx context.Context, audioPath string) error {
	startTime := time.Now()
	originalFilename := filepath.Base(audioPath)
	baseName := strings.TrimSuffix(originalFilename, filepath.Ext(originalFilename))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting audio analysis: %s", audioPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Load audio payload
	audio, err := p.loadAudio(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("load audio: %w", err)
	}

	// Step 2: Register the run so concurrent callers can observe it. The
	// entry is evicted once this file is done; waiters attached mid-run
	// still receive the final snapshot.
	runID := registry.NewRunID()
	if err := p.registry.Begin(runID); err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	defer p.registry.Evict(runID)

	// Step 3: Run analysis
	questions := p.cfg.Analysis.Questions
	if p.cfg.Analysis.Features.Analysis && len(questions) == 0 {
		p.logger.Debug(ctx, "No questions configured, using defaults")
		questions = types.DefaultQuestions
	}

	result, err := p.analyzer.Run(ctx, audio, p.cfg.Analysis.Features, questions)
	if err != nil {
		p.registry.Fail(runID, err)
		return fmt.Errorf("analyze: %w", err)
	}
	p.registry.Complete(runID, result)

	// Step 4: Export the registry's final snapshot to the output folder
	run, ok := p.registry.Get(runID)
	if !ok {
		return fmt.Errorf("run %s missing from registry", runID)
	}
	written, err := p.exporter.Export(ctx, baseName, run.Result, questions, p.cfg.Paths.Output)
	if err != nil {
		return fmt.Errorf("export results: %w", err)
	}

	// Step 5: Move original audio to archived folder
	if err := p.moveToArchived(ctx, audioPath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Analysis completed successfully!")
	for _, path := range written {
		p.logger.Info(ctx, "Output: %s", path)
	}
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}
