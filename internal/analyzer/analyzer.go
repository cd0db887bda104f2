package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/audio-insight/internal/config"
	"github.com/nguyentantai21042004/audio-insight/internal/parse"
	"github.com/nguyentantai21042004/audio-insight/internal/prompt"
	"github.com/nguyentantai21042004/audio-insight/internal/types"
	"github.com/nguyentantai21042004/audio-insight/pkg/batch"
	"github.com/nguyentantai21042004/audio-insight/pkg/retry"
)

// Run produces the requested features for one audio payload. With no run
// features selected it returns an empty result without touching the model;
// callers should reject that case earlier. The chat flag does not count:
// chat is served by the separate Chat operation and produces nothing here.
func (a *implAnalyzer) Run(ctx context.Context, audio types.AudioPayload, features types.FeatureSelection, questions []string) (*types.AnalysisResult, error) {
	if !hasRunFeature(features) {
		return &types.AnalysisResult{}, nil
	}

	if a.strategy == config.StrategyMulti {
		return a.runMulti(ctx, audio, features, questions)
	}
	return a.runSingle(ctx, audio, features, questions)
}

func hasRunFeature(f types.FeatureSelection) bool {
	return f.Summary || f.TimestampedTranscription || f.Transcription || f.Analysis
}

// runSingle sends one combined request covering every requested feature and
// parses all sections out of the one response. Cheapest in quota and
// latency; a malformed response can blank several features at once.
func (a *implAnalyzer) runSingle(ctx context.Context, audio types.AudioPayload, features types.FeatureSelection, questions []string) (*types.AnalysisResult, error) {
	raw, err := a.generate(ctx, prompt.Combined(audio, features, questions))
	if err != nil {
		return nil, fmt.Errorf("analyze audio: %w", err)
	}

	return parse.Sections(raw, features, questions), nil
}

// runMulti transcribes first, then issues one request per derived feature
// and one per question. More requests, but a single bad response degrades
// only its own feature.
func (a *implAnalyzer) runMulti(ctx context.Context, audio types.AudioPayload, features types.FeatureSelection, questions []string) (*types.AnalysisResult, error) {
	// Without a transcript nothing downstream can proceed, so this failure
	// is fatal to the run.
	raw, err := a.generate(ctx, prompt.Transcription(audio))
	if err != nil {
		return nil, fmt.Errorf("transcribe audio: %w", err)
	}
	duration, transcript := parse.Duration(raw)

	// The transcript drives the remaining requests either way; it only
	// appears on the result when asked for.
	result := &types.AnalysisResult{}
	if features.Transcription {
		result.Transcription = transcript
		result.Duration = duration
	}

	if features.Summary {
		summaryRaw, err := a.generate(ctx, prompt.Summary(transcript))
		switch {
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case err != nil:
			a.logger.Warn(ctx, "Summary request failed, degrading: %v", err)
			result.Summary = types.SectionUnavailable
		default:
			if section, ok := parse.Section(summaryRaw, prompt.SummaryOpen, prompt.SummaryClose); ok {
				result.Summary = section
			} else {
				result.Summary = types.SectionUnavailable
			}
		}
	}

	if features.TimestampedTranscription {
		tsRaw, err := a.generate(ctx, prompt.Timestamped(transcript))
		switch {
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case err != nil:
			a.logger.Warn(ctx, "Timestamped request failed, degrading: %v", err)
			result.TimestampedEntries = []types.TimestampedEntry{}
		default:
			section, _ := parse.Section(tsRaw, prompt.TimestampedOpen, prompt.TimestampedClose)
			result.TimestampedEntries = parse.TimestampedEntries(section)
		}
	}

	if features.Analysis && len(questions) > 0 {
		answers, err := batch.Run(ctx, questions, func(ctx context.Context, question string) (string, error) {
			answerRaw, err := a.generate(ctx, prompt.Question(transcript, question))
			if err != nil {
				return "", err
			}
			return parse.Answers(answerRaw, []string{question})[0], nil
		}, a.questionDelay, types.AnswerFallback, func(question string, err error) {
			a.logger.Warn(ctx, "Question %q failed, substituting fallback: %v", question, err)
		})
		if err != nil {
			return nil, err
		}
		result.Answers = answers
	}

	return result, nil
}

// generate wraps one model request in the retry policy.
func (a *implAnalyzer) generate(ctx context.Context, parts []types.Part) (string, error) {
	return retry.Do(ctx, a.policy, func(ctx context.Context) (string, error) {
		return a.generator.Generate(ctx, parts)
	}, func(err error, delay time.Duration) {
		a.logger.Warn(ctx, "Model request failed, retrying in %s: %v", delay, err)
	})
}
