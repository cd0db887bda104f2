// Package prompt constructs the request payloads sent to the model and owns
// the section-marker conventions the response parser relies on. Markers must
// stay paired and globally unique so sections can be extracted from free-text
// output regardless of what the model puts inside them.
package prompt

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/audio-insight/internal/types"
)

// Paired section delimiters. The parser extracts the first non-greedy match
// between each open/close pair.
const (
	TimestampedOpen  = "===TIMESTAMPED==="
	TimestampedClose = "===END_TIMESTAMPED==="

	TranscriptionOpen  = "===TRANSCRIPTION==="
	TranscriptionClose = "===END_TRANSCRIPTION==="

	SummaryOpen  = "===SUMMARY==="
	SummaryClose = "===END_SUMMARY==="

	QAOpen  = "===Q&A==="
	QAClose = "===END_Q&A==="
)

// Sub-entry conventions inside the timestamped section.
const (
	SpeakerPrefix  = "SPEAKER:"
	TimePrefix     = "TIME:"
	TextPrefix     = "TEXT:"
	EntrySeparator = "---"
)

// DurationPrefix leads the first line of a transcription-only response.
const DurationPrefix = "DURATION:"

const combinedHeader = `You are a professional call transcription and analysis assistant. Follow these instructions EXACTLY:`

const combinedFooter = `IMPORTANT:
- Only include the sections requested above
- Never skip any requested section
- Always include all section markers for requested sections
- Format answers exactly as shown
- Be thorough but concise
- For timestamped section, use the exact format with SPEAKER:, TIME:, TEXT: and separate each entry with ---`

// Combined builds a single request covering every requested feature: the
// audio as an inline attachment plus one numbered instruction block per
// feature. With no features selected it falls back to a plain transcription
// instruction.
func Combined(audio types.AudioPayload, features types.FeatureSelection, questions []string) []types.Part {
	var sections []string
	n := 1

	if features.TimestampedTranscription {
		sections = append(sections, fmt.Sprintf(`%d. Provide a timestamped conversation in this EXACT format:
%s
SPEAKER: Speaker A
TIME: 00:00:15
TEXT: Hello, welcome to today's meeting.
---
SPEAKER: Speaker B
TIME: 00:00:22
TEXT: Thank you for having me.
---
%s`, n, TimestampedOpen, TimestampedClose))
		n++
	}

	if features.Transcription {
		sections = append(sections, fmt.Sprintf(`%d. Provide a clean transcription formatted with new topics/speakers as "**Section Title**"
%s
[Your formatted transcription]
%s`, n, TranscriptionOpen, TranscriptionClose))
		n++
	}

	if features.Summary {
		sections = append(sections, fmt.Sprintf(`%d. Write a concise 5-9 line summary of the key points
%s
[Your summary]
%s`, n, SummaryOpen, SummaryClose))
		n++
	}

	if features.Analysis && len(questions) > 0 {
		numbered := make([]string, len(questions))
		for i, q := range questions {
			numbered[i] = fmt.Sprintf("%d. %s", i+1, q)
		}
		sections = append(sections, fmt.Sprintf(`%d. Answer each question based on the transcript content:
%s
%s

For each question, format EXACTLY as:
Question: <exact question text>
Answer: <your detailed answer>

If you can't find information for an answer, say %q
%s`, n, QAOpen, strings.Join(numbered, "\n"), types.AnswerFallback, QAClose))
		n++
	}

	if len(sections) == 0 {
		sections = append(sections, "1. Provide a clean transcription of the audio content.")
	}

	full := combinedHeader + "\n\n" + strings.Join(sections, "\n\n") + "\n\n" + combinedFooter

	return []types.Part{
		types.BlobPart(audio.Data, audio.MIMEType),
		types.TextPart(full),
	}
}

// Transcription builds the audio-only transcription request used by the
// multi-call strategy. The response must open with a DURATION line so the
// parser can strip it from the transcript body.
func Transcription(audio types.AudioPayload) []types.Part {
	instruction := fmt.Sprintf(`Transcribe this audio clearly and accurately.

Output format:
- First line: "%s HH:MM:SS" with the total audio duration
- Then the transcript, with new topics or speakers introduced as "**Section Title**"
- Prefix each speaker turn with the speaker's name followed by a colon`, DurationPrefix)

	return []types.Part{
		types.BlobPart(audio.Data, audio.MIMEType),
		types.TextPart(instruction),
	}
}

// Summary builds a summary request over an already-obtained transcript.
func Summary(transcript string) []types.Part {
	text := fmt.Sprintf(`Write a concise 5-9 line summary of the key points of this transcript. Wrap the summary EXACTLY between %s and %s markers.

Transcript:
%s`, SummaryOpen, SummaryClose, transcript)

	return []types.Part{types.TextPart(text)}
}

// Timestamped builds a timestamped-breakdown request over an already-obtained
// transcript.
func Timestamped(transcript string) []types.Part {
	text := fmt.Sprintf(`Break this transcript into a timestamped conversation. Wrap the output EXACTLY between %s and %s markers. Format each entry as three labeled lines separated by a line containing only %s:

SPEAKER: <speaker name>
TIME: <HH:MM:SS>
TEXT: <what was said>
%s

Transcript:
%s`, TimestampedOpen, TimestampedClose, EntrySeparator, EntrySeparator, transcript)

	return []types.Part{types.TextPart(text)}
}

// Question builds a single-question analysis request. The instruction echoes
// the exact question text because the parser locates the answer by matching
// it literally.
func Question(transcript, question string) []types.Part {
	text := fmt.Sprintf(`Answer the following question based on this transcript.

Format EXACTLY as:
Question: %s
Answer: <your detailed answer>

If you can't find information for an answer, say %q

Transcript:
%s`, question, types.AnswerFallback, transcript)

	return []types.Part{types.TextPart(text)}
}

// Chat builds a conversational request about an existing transcript.
func Chat(transcript, userMessage string) []types.Part {
	text := fmt.Sprintf(`You are a helpful assistant. This is a transcript of a call:
--- TRANSCRIPT START ---
%s
--- TRANSCRIPT END ---

The user has the following question about this transcript:
User: %s
Assistant:`, transcript, userMessage)

	return []types.Part{types.TextPart(text)}
}
