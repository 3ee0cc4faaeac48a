package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/internal/model"
	"meeting-task-extractor/pkg/llmprovider"
	"meeting-task-extractor/pkg/metrics"
)

// Extract sends the transcript to the model and validates each returned record.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	started := time.Now()

	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		metrics.RecordExtraction(metrics.OutcomeInvalidInput, 0, time.Since(started))
		return extraction.ExtractOutput{}, extraction.ErrEmptyTranscript
	}
	if uc.cfg.MaxTranscriptChars > 0 && utf8.RuneCountInString(transcript) > uc.cfg.MaxTranscriptChars {
		metrics.RecordExtraction(metrics.OutcomeInvalidInput, 0, time.Since(started))
		return extraction.ExtractOutput{}, extraction.ErrTranscriptTooLong
	}

	if uc.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.Timeout)
		defer cancel()
	}

	uc.l.Infof(ctx, "Extract: user=%s transcript_chars=%d", sc.UserID, len(transcript))

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemInstruction,
		Messages: []llmprovider.Message{
			{Role: llmprovider.RoleUser, Content: transcript},
		},
		Temperature: uc.cfg.Temperature,
		JSONMode:    true,
	})
	if err != nil {
		metrics.RecordExtraction(metrics.OutcomeFailed, 0, time.Since(started))
		return extraction.ExtractOutput{}, fmt.Errorf("%w: %v", extraction.ErrExtractionFailed, err)
	}

	candidates, dropped, err := parseCandidates(resp.Text)
	if err != nil {
		uc.l.Warnf(ctx, "Extract: unusable model output provider=%s: %v", resp.ProviderName, err)
		metrics.RecordExtraction(metrics.OutcomeFailed, 0, time.Since(started))
		return extraction.ExtractOutput{}, fmt.Errorf("%w: %v", extraction.ErrExtractionFailed, err)
	}

	out := extraction.ExtractOutput{
		Candidates: candidates,
		Count:      len(candidates),
		Dropped:    dropped,
	}

	if dropped > 0 {
		uc.l.Warnf(ctx, "Extract: dropped %d invalid records", dropped)
	}
	uc.l.Infof(ctx, "Extract: user=%s candidates=%d dropped=%d provider=%s",
		sc.UserID, out.Count, out.Dropped, resp.ProviderName)

	if out.Count == 0 {
		metrics.RecordExtraction(metrics.OutcomeNoTasks, dropped, time.Since(started))
		return out, extraction.ErrNoTasksFound
	}

	metrics.RecordExtraction(metrics.OutcomeOK, dropped, time.Since(started))
	return out, nil
}
