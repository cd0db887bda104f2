package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/audio-insight/internal/types"
)

var mimeByExtension = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".m4a":  "audio/mp4",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".aac":  "audio/aac",
}

// loadAudio reads the audio file into memory and resolves its MIME type
func (p *implProcessor) loadAudio(ctx context.Context, audioPath string) (types.AudioPayload, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return types.AudioPayload{}, fmt.Errorf("read audio file: %w", err)
	}
	if len(data) == 0 {
		return types.AudioPayload{}, fmt.Errorf("audio file is empty: %s", audioPath)
	}

	ext := strings.ToLower(filepath.Ext(audioPath))
	mimeType, ok := mimeByExtension[ext]
	if !ok {
		return types.AudioPayload{}, fmt.Errorf("unsupported audio format: %s", ext)
	}

	p.logger.Debug(ctx, "Loaded audio: %s (%d bytes, %s)", audioPath, len(data), mimeType)

	return types.AudioPayload{Data: data, MIMEType: mimeType}, nil
}
