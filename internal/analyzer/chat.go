package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/audio-insight/internal/prompt"
)

// Chat answers one user question about an existing transcript. Unlike
// derived features there is nothing downstream to protect, so errors surface
// to the caller.
func (a *implAnalyzer) Chat(ctx context.Context, transcript, userMessage string) (string, error) {
	raw, err := a.generate(ctx, prompt.Chat(transcript, userMessage))
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return strings.TrimSpace(raw), nil
}
