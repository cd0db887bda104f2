package analyzer

import (
	"context"

	"github.com/nguyentantai21042004/audio-insight/internal/types"
)

// Analyzer orchestrates analysis runs against the generative model.
type Analyzer interface {
	// Run analyzes one audio payload and produces the requested features.
	// A transcription transport failure aborts the whole run; failures of
	// individual derived features or questions degrade to sentinel values.
	Run(ctx context.Context, audio types.AudioPayload, features types.FeatureSelection, questions []string) (*types.AnalysisResult, error)

	// Chat answers a free-form question about an already-obtained transcript.
	Chat(ctx context.Context, transcript, userMessage string) (string, error)
}
