package types

// AudioPayload is an audio file handed to an analysis run. The payload is
// consumed once per run; the caller keeps ownership of the underlying bytes.
type AudioPayload struct {
	Data     []byte
	MIMEType string
}

// Part is one element of a generation request: either plain instruction text
// or an inline binary attachment.
type Part struct {
	Text     string
	Data     []byte
	MIMEType string
}

// TextPart builds a text-only request part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// BlobPart builds an inline binary request part.
func BlobPart(data []byte, mimeType string) Part {
	return Part{Data: data, MIMEType: mimeType}
}

// FeatureSelection selects which analysis capabilities a run should produce.
type FeatureSelection struct {
	Summary                  bool `yaml:"summary"`
	TimestampedTranscription bool `yaml:"timestamped_transcription"`
	Transcription            bool `yaml:"transcription"`
	Analysis                 bool `yaml:"analysis"`
	Chat                     bool `yaml:"chat"`
}

// Any reports whether at least one feature is selected. A run with no features
// still succeeds but produces an empty result, so callers should reject this
// earlier.
func (f FeatureSelection) Any() bool {
	return f.Summary || f.TimestampedTranscription || f.Transcription || f.Analysis || f.Chat
}

// TimestampedEntry is one speaker turn in a timestamped transcription.
type TimestampedEntry struct {
	Speaker   string `json:"speaker"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

const (
	// UnknownSpeaker is substituted when a timestamped entry carries no
	// SPEAKER: line.
	UnknownSpeaker = "Unknown Speaker"

	// ZeroTimestamp is substituted when a timestamped entry carries no TIME:
	// line, and is the default duration when the model omits the DURATION
	// header.
	ZeroTimestamp = "00:00:00"

	// AnswerFallback is returned for a question whose answer could not be
	// located or obtained. Graceful degradation, not an error.
	AnswerFallback = "Based on the transcript, I cannot answer this question."

	// SectionUnavailable marks a requested section that was missing from the
	// model response. Distinguishes "asked for but absent" from "not asked".
	SectionUnavailable = "[section unavailable in model response]"
)

// AnalysisResult is the output of one analysis run. Fields for features that
// were not requested stay at their zero value; requested features that could
// not be parsed carry the sentinel values above. The result is created fresh
// per run and never retained by the orchestrator.
type AnalysisResult struct {
	// Transcription is the clean transcript body, set only when the
	// transcription feature was requested.
	Transcription string `json:"transcription,omitempty"`

	// Duration is the audio duration as reported by the model, HH:MM:SS.
	Duration string `json:"duration,omitempty"`

	Summary string `json:"summary,omitempty"`

	// TimestampedEntries is nil when the feature was not requested and empty
	// (non-nil) when requested but nothing could be parsed.
	TimestampedEntries []TimestampedEntry `json:"timestamped_entries,omitempty"`

	// Answers aligns positionally with the question list of the run. Nil when
	// analysis was not requested.
	Answers []string `json:"answers,omitempty"`
}

// DefaultQuestions apply when analysis is requested with an empty question
// list.
var DefaultQuestions = []string{
	"What were the main topics discussed?",
	"What were the key action items or decisions made?",
	"Were there any important deadlines or dates mentioned?",
}
