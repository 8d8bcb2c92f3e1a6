package usecase

import (
	"context"
	"strings"

	"jarvis-assistant/internal/assistant"
)

// SubmitCommand classifies the command and builds the response for its intent.
// Blank commands are rejected with ErrEmptyCommand.
func (uc *implUseCase) SubmitCommand(ctx context.Context, input assistant.SubmitCommandInput) (assistant.Response, error) {
	if strings.TrimSpace(input.Command) == "" {
		return assistant.Response{}, assistant.ErrEmptyCommand
	}

	out := uc.router.Classify(ctx, input.Command)
	resp := uc.generate(ctx, out, input.Command)

	uc.l.Infof(ctx, "%s: intent=%s rule=%d", LogPrefixSubmitCommand, resp.Intent, out.Rule)
	return resp, nil
}

// Classify runs the router only. No handler is executed.
func (uc *implUseCase) Classify(ctx context.Context, input assistant.ClassifyInput) (assistant.ClassifyOutput, error) {
	if strings.TrimSpace(input.Command) == "" {
		return assistant.ClassifyOutput{}, assistant.ErrEmptyCommand
	}

	out := uc.router.Classify(ctx, input.Command)
	return assistant.ClassifyOutput{
		Intent:  out.Intent,
		Action:  out.Action,
		Keyword: out.Keyword,
		Rule:    out.Rule,
	}, nil
}

// Status reports the assistant identity at request time.
func (uc *implUseCase) Status(ctx context.Context) assistant.StatusOutput {
	return assistant.StatusOutput{
		Name:      uc.identity.Name,
		Version:   uc.identity.Version,
		Active:    uc.identity.Active,
		Timestamp: uc.now(),
	}
}
