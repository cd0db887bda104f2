package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/audio-insight/internal/types"
	"google.golang.org/genai"
)

// Generate sends one request to the Gemini API and returns the concatenated
// text of the first candidate. On a rate-limit error the next configured key
// becomes current before the error is returned, so the retry layer above
// lands on a fresh key.
func (g *implGenerator) Generate(ctx context.Context, parts []types.Part) (string, error) {
	key, keyIndex := g.activeKey()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(toGenaiParts(parts), genai.RoleUser),
	}

	result, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		if isRateLimited(err) {
			g.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIndex+1)
			g.rotateKey(keyIndex)
		}
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}

func (g *implGenerator) activeKey() (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.currentKey], g.currentKey
}

// rotateKey advances past the key that just got limited. The index check
// keeps two callers failing on the same key from skipping one.
func (g *implGenerator) rotateKey(from int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == from {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func toGenaiParts(parts []types.Part) []*genai.Part {
	out := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		if len(p.Data) > 0 {
			out = append(out, genai.NewPartFromBytes(p.Data, p.MIMEType))
			continue
		}
		out = append(out, genai.NewPartFromText(p.Text))
	}
	return out
}
