package gemini

import (
	"errors"
	"testing"

	"github.com/nguyentantai21042004/audio-insight/internal/logger"
	"github.com/nguyentantai21042004/audio-insight/internal/types"
)

func TestNewRequiresKeys(t *testing.T) {
	if _, err := New(nil, "gemini-2.5-flash", logger.New("error")); err == nil {
		t.Fatal("New() should reject an empty key list")
	}
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"http 429", errors.New("Error 429: too many requests"), true},
		{"quota", errors.New("generate content: quota exceeded for model"), true},
		{"resource exhausted", errors.New("rpc error: code = RESOURCE_EXHAUSTED"), true},
		{"bad request", errors.New("Error 400: invalid argument"), false},
		{"server error", errors.New("Error 500: internal"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRateLimited(tt.err); got != tt.want {
				t.Errorf("isRateLimited(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRotateKeyAdvances(t *testing.T) {
	g := &implGenerator{apiKeys: []string{"key-a", "key-b", "key-c"}}

	key, idx := g.activeKey()
	if key != "key-a" || idx != 0 {
		t.Fatalf("activeKey() = %q, %d; want key-a, 0", key, idx)
	}

	g.rotateKey(0)
	if key, _ := g.activeKey(); key != "key-b" {
		t.Errorf("after rotation activeKey() = %q, want key-b", key)
	}

	// A second caller failing on the already-rotated-away key must not
	// skip a fresh one.
	g.rotateKey(0)
	if key, _ := g.activeKey(); key != "key-b" {
		t.Errorf("stale rotation moved the key: activeKey() = %q, want key-b", key)
	}

	g.rotateKey(1)
	g.rotateKey(2)
	if key, _ := g.activeKey(); key != "key-a" {
		t.Errorf("rotation should wrap around: activeKey() = %q, want key-a", key)
	}
}

func TestToGenaiParts(t *testing.T) {
	parts := toGenaiParts([]types.Part{
		types.BlobPart([]byte{0x01, 0x02}, "audio/wav"),
		types.TextPart("transcribe this"),
	})

	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(parts))
	}
	if parts[0].InlineData == nil || parts[0].InlineData.MIMEType != "audio/wav" {
		t.Error("first part should carry the audio attachment")
	}
	if parts[1].Text != "transcribe this" {
		t.Errorf("second part text = %q", parts[1].Text)
	}
}
