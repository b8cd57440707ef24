package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hirelogic/hirelogic/internal/cache"
	"github.com/hirelogic/hirelogic/internal/prompt"
	"github.com/hirelogic/hirelogic/internal/utils"
)

type QuestionnaireService interface {
	// Generate turns a job description into a markdown questionnaire.
	// The 50-character minimum is enforced by the form controller; this
	// service only requires a non-empty description.
	Generate(ctx context.Context, jobDescription string) (string, error)
}

type questionnaireService struct {
	executor *prompt.Executor
	cache    cache.Cache
	log      *logrus.Logger
}

const questionnaireCacheTTL = 24 * time.Hour

func NewQuestionnaireService(executor *prompt.Executor, c cache.Cache, log *logrus.Logger) QuestionnaireService {
	if log == nil {
		log = logrus.New()
	}
	return &questionnaireService{executor: executor, cache: c, log: log}
}

func (s *questionnaireService) Generate(ctx context.Context, jobDescription string) (string, error) {
	const op = "QuestionnaireService.Generate"

	if jobDescription == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "job description is required", nil)
	}

	key := cache.QuestionnaireKey(jobDescription)
	if s.cache != nil {
		var cached string
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit && cached != "" {
			return cached, nil
		}
	}

	out, err := s.executor.Execute(ctx, questionnaireTemplate, map[string]string{
		"jobDescription": jobDescription,
	})
	if err != nil {
		var ve *prompt.ValidationError
		if errors.As(err, &ve) {
			return "", utils.E(utils.CodeInvalidArgument, op, "invalid questionnaire input", err)
		}
		return "", utils.E(utils.CodeUnavailable, op, "failed to generate questionnaire", err)
	}

	questionnaire, ok := out.String("questionnaire")
	if !ok {
		return "", utils.E(utils.CodeUnavailable, op, "failed to generate questionnaire", nil)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, questionnaire, questionnaireCacheTTL); err != nil {
			s.log.WithError(err).Warn("failed to cache questionnaire")
		}
	}
	return questionnaire, nil
}
