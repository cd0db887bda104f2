package gemini

import (
	"context"

	"github.com/nguyentantai21042004/audio-insight/internal/types"
)

// Generator is the external generative capability: one request of text and
// inline-binary parts in, one text response out. Transport failures surface
// as errors whose message may carry a rate-limit or unavailability marker.
type Generator interface {
	Generate(ctx context.Context, parts []types.Part) (string, error)
}
