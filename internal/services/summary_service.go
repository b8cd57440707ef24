package services

import (
	"context"
	"errors"

	"github.com/hirelogic/hirelogic/internal/prompt"
	"github.com/hirelogic/hirelogic/internal/utils"
)

type SummaryService interface {
	// Summarize condenses one free-text candidate answer.
	Summarize(ctx context.Context, candidateResponse string) (string, error)
}

type summaryService struct {
	executor *prompt.Executor
}

func NewSummaryService(executor *prompt.Executor) SummaryService {
	return &summaryService{executor: executor}
}

func (s *summaryService) Summarize(ctx context.Context, candidateResponse string) (string, error) {
	const op = "SummaryService.Summarize"

	out, err := s.executor.Execute(ctx, summarizeResponseTemplate, map[string]string{
		"candidateResponse": candidateResponse,
	})
	if err != nil {
		var ve *prompt.ValidationError
		if errors.As(err, &ve) {
			return "", utils.E(utils.CodeInvalidArgument, op, "candidate response is required", err)
		}
		return "", utils.E(utils.CodeUnavailable, op, "failed to summarize response", err)
	}

	summary, ok := out.String("summary")
	if !ok {
		return "", utils.E(utils.CodeUnavailable, op, "failed to summarize response", nil)
	}
	return summary, nil
}
