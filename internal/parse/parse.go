// Package parse extracts structured results out of free-text model output.
// Model output is inherently unreliable, so nothing in this package returns
// an error: a missing or malformed section degrades to a sentinel value and
// the rest of the response is still used. All functions are pure.
package parse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/audio-insight/internal/prompt"
	"github.com/nguyentantai21042004/audio-insight/internal/types"
)

var reDuration = regexp.MustCompile(`^\s*` + prompt.DurationPrefix + `\s*(\d{2}:\d{2}:\d{2})[^\n]*\n?`)

// Sections builds an AnalysisResult from a single multi-section response,
// extracting only the requested features. Fields for unrequested features
// stay at their zero value.
func Sections(raw string, features types.FeatureSelection, questions []string) *types.AnalysisResult {
	result := &types.AnalysisResult{}

	if features.TimestampedTranscription {
		section, _ := Section(raw, prompt.TimestampedOpen, prompt.TimestampedClose)
		result.TimestampedEntries = TimestampedEntries(section)
	}

	if features.Transcription {
		if section, ok := Section(raw, prompt.TranscriptionOpen, prompt.TranscriptionClose); ok {
			result.Transcription = section
		} else {
			result.Transcription = types.SectionUnavailable
		}
	}

	if features.Summary {
		if section, ok := Section(raw, prompt.SummaryOpen, prompt.SummaryClose); ok {
			result.Summary = section
		} else {
			result.Summary = types.SectionUnavailable
		}
	}

	if features.Analysis && len(questions) > 0 {
		section, _ := Section(raw, prompt.QAOpen, prompt.QAClose)
		result.Answers = Answers(section, questions)
	}

	return result
}

// Section returns the trimmed content between the first occurrence of the
// open marker and the next occurrence of the close marker. The second return
// is false when either marker is missing.
func Section(raw, open, close string) (string, bool) {
	start := strings.Index(raw, open)
	if start < 0 {
		return "", false
	}
	rest := raw[start+len(open):]

	end := strings.Index(rest, close)
	if end < 0 {
		return "", false
	}

	return strings.TrimSpace(rest[:end]), true
}

// TimestampedEntries decomposes a timestamped section into speaker turns.
// Fragments are separated by lines holding only the entry separator; within
// a fragment the first SPEAKER:/TIME:/TEXT: line wins. Entries without text
// are dropped, missing speaker and time fall back to defaults.
func TimestampedEntries(section string) []types.TimestampedEntry {
	entries := []types.TimestampedEntry{}
	if strings.TrimSpace(section) == "" {
		return entries
	}

	for _, fragment := range splitFragments(section) {
		entry := types.TimestampedEntry{
			Speaker:   types.UnknownSpeaker,
			Timestamp: types.ZeroTimestamp,
		}
		var haveSpeaker, haveTime, haveText bool

		for _, line := range strings.Split(fragment, "\n") {
			line = strings.TrimSpace(line)
			switch {
			case !haveSpeaker && strings.HasPrefix(line, prompt.SpeakerPrefix):
				if v := strings.TrimSpace(strings.TrimPrefix(line, prompt.SpeakerPrefix)); v != "" {
					entry.Speaker = v
				}
				haveSpeaker = true
			case !haveTime && strings.HasPrefix(line, prompt.TimePrefix):
				if v := strings.TrimSpace(strings.TrimPrefix(line, prompt.TimePrefix)); v != "" {
					entry.Timestamp = v
				}
				haveTime = true
			case !haveText && strings.HasPrefix(line, prompt.TextPrefix):
				entry.Text = strings.TrimSpace(strings.TrimPrefix(line, prompt.TextPrefix))
				haveText = true
			}
		}

		// An entry with no text is not useful.
		if entry.Text != "" {
			entries = append(entries, entry)
		}
	}

	return entries
}

func splitFragments(section string) []string {
	var fragments []string
	for _, fragment := range strings.Split(section, prompt.EntrySeparator) {
		if strings.TrimSpace(fragment) != "" {
			fragments = append(fragments, fragment)
		}
	}
	return fragments
}

// Answers locates one answer per question, in question order, by matching the
// literal question text case-insensitively inside the Q&A section. Questions
// without a located answer get the fallback sentinel.
func Answers(section string, questions []string) []string {
	answers := make([]string, len(questions))

	for i, question := range questions {
		pattern := fmt.Sprintf(`(?is)question:\s*%s\s*answer:\s*(.*?)\s*(?:question:|\z)`, regexp.QuoteMeta(question))
		re, err := regexp.Compile(pattern)
		if err != nil {
			// QuoteMeta makes this unreachable, but a bad pattern must never
			// take down the whole batch.
			answers[i] = types.AnswerFallback
			continue
		}

		if m := re.FindStringSubmatch(section); m != nil && strings.TrimSpace(m[1]) != "" {
			answers[i] = strings.TrimSpace(m[1])
		} else {
			answers[i] = types.AnswerFallback
		}
	}

	return answers
}

// Duration splits a transcription response into its DURATION header and the
// remaining transcript body. A missing header defaults to the zero timestamp
// and leaves the body untouched.
func Duration(text string) (duration, body string) {
	if m := reDuration.FindStringSubmatch(text); m != nil {
		return m[1], strings.TrimSpace(text[len(m[0]):])
	}
	return types.ZeroTimestamp, strings.TrimSpace(text)
}
