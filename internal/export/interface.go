package export

import (
	"context"

	"github.com/nguyentantai21042004/audio-insight/internal/types"
)

// Exporter writes an analysis result to document files.
type Exporter interface {
	// Export writes one docx per produced feature plus a JSON snapshot into
	// destDir, using name as the file stem. It returns the written paths.
	Export(ctx context.Context, name string, result *types.AnalysisResult, questions []string, destDir string) ([]string, error)
}
