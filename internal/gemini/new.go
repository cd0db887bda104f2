package gemini

import (
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/audio-insight/internal/logger"
)

type implGenerator struct {
	apiKeys []string
	logger  logger.Logger
	model   string

	mu         sync.Mutex
	currentKey int
}

// New creates a Generator that rotates through the supplied Gemini API keys
// when a request is rate limited.
func New(apiKeys []string, model string, log logger.Logger) (Generator, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("at least one API key is required")
	}
	return &implGenerator{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}, nil
}
