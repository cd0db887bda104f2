package export

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/audio-insight/internal/logger"
	"github.com/nguyentantai21042004/audio-insight/internal/types"
)

func TestExportWritesRequestedDocuments(t *testing.T) {
	dir := t.TempDir()
	e := New(logger.New("error"))

	result := &types.AnalysisResult{
		Summary:  "**Overview**\n- The release shipped.",
		Duration: "00:10:00",
		TimestampedEntries: []types.TimestampedEntry{
			{Speaker: "Speaker A", Timestamp: "00:00:05", Text: "We shipped the release."},
		},
		Answers: []string{"The release."},
	}

	written, err := e.Export(context.Background(), "standup", result, []string{"What shipped?"}, dir)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	wantFiles := []string{"standup_summary.docx", "standup_transcript.docx", "standup_qa.docx", "standup.json"}
	if len(written) != len(wantFiles) {
		t.Fatalf("Export() wrote %d files (%v), want %d", len(written), written, len(wantFiles))
	}
	for _, f := range wantFiles {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("expected output file %s: %v", f, err)
		}
	}
}

func TestExportSkipsAbsentFeatures(t *testing.T) {
	dir := t.TempDir()
	e := New(logger.New("error"))

	result := &types.AnalysisResult{Summary: "Just a summary."}

	written, err := e.Export(context.Background(), "call", result, nil, dir)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("Export() wrote %v, want summary docx and json only", written)
	}
	if _, err := os.Stat(filepath.Join(dir, "call_transcript.docx")); !os.IsNotExist(err) {
		t.Error("transcript docx should not be written without transcript content")
	}
	if _, err := os.Stat(filepath.Join(dir, "call_qa.docx")); !os.IsNotExist(err) {
		t.Error("qa docx should not be written without answers")
	}
}

func TestDocTitle(t *testing.T) {
	if got := docTitle("standup", "Summary"); got != "standup - Summary" {
		t.Errorf("docTitle() = %q, want %q", got, "standup - Summary")
	}
}

func TestExportJSONRoundTrips(t *testing.T) {
	dir := t.TempDir()
	e := New(logger.New("error"))

	result := &types.AnalysisResult{
		Summary: "A summary.",
		Answers: []string{types.AnswerFallback},
	}

	if _, err := e.Export(context.Background(), "call", result, []string{"Q?"}, dir); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "call.json"))
	if err != nil {
		t.Fatal(err)
	}

	var decoded types.AnalysisResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if decoded.Summary != result.Summary || len(decoded.Answers) != 1 {
		t.Errorf("snapshot = %+v, want %+v", decoded, result)
	}
}
