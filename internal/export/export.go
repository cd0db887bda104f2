package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/audio-insight/internal/types"
)

// Export writes the produced features of result as documents. Features the
// run did not request are skipped; a failed document is logged and skipped
// so one bad writer does not lose the others.
func (e *implExporter) Export(ctx context.Context, name string, result *types.AnalysisResult, questions []string, destDir string) ([]string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("create dest dir: %w", err)
	}

	var written []string
	write := func(kind, path string, fn func() error) {
		if err := fn(); err != nil {
			e.logger.Error(ctx, "Failed to export %s for %s: %v", kind, name, err)
			return
		}
		written = append(written, path)
	}

	if result.Summary != "" {
		path := filepath.Join(destDir, name+"_summary.docx")
		write("summary", path, func() error {
			return summaryToDocx(docTitle(name, "Summary"), result.Summary, path)
		})
	}

	if result.Transcription != "" || len(result.TimestampedEntries) > 0 {
		path := filepath.Join(destDir, name+"_transcript.docx")
		write("transcript", path, func() error {
			return transcriptToDocx(docTitle(name, "Transcript"), result, path)
		})
	}

	if len(result.Answers) > 0 {
		path := filepath.Join(destDir, name+"_qa.docx")
		write("qa", path, func() error {
			return answersToDocx(docTitle(name, "Q&A"), questions, result.Answers, path)
		})
	}

	jsonPath := filepath.Join(destDir, name+".json")
	write("json", jsonPath, func() error {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		return os.WriteFile(jsonPath, data, 0644)
	})

	return written, nil
}

// docTitle keeps document titles plain ASCII regardless of the source name.
func docTitle(name, kind string) string {
	return name + " - " + kind
}
