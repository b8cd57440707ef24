package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/hirelogic/hirelogic/internal/prompt"
	"github.com/hirelogic/hirelogic/internal/utils"
)

type QuestionService interface {
	// GenerateQuestions turns a resume and role into an ordered question
	// list. Failures surface as errors; callers must not receive a
	// placeholder list dressed up as real questions.
	GenerateQuestions(ctx context.Context, resume, role string) ([]string, error)
}

type questionService struct {
	executor *prompt.Executor
	log      *logrus.Logger
}

func NewQuestionService(executor *prompt.Executor, log *logrus.Logger) QuestionService {
	if log == nil {
		log = logrus.New()
	}
	return &questionService{executor: executor, log: log}
}

func (s *questionService) GenerateQuestions(ctx context.Context, resume, role string) ([]string, error) {
	const op = "QuestionService.GenerateQuestions"

	out, err := s.executor.Execute(ctx, interviewQuestionsTemplate, map[string]string{
		"resume": resume,
		"role":   role,
	})
	if err != nil {
		var ve *prompt.ValidationError
		if errors.As(err, &ve) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "resume and role are required", err)
		}
		return nil, utils.E(utils.CodeUnavailable, op, "failed to generate interview questions", err)
	}

	questions, ok := out.StringList("questions")
	if !ok || len(questions) == 0 {
		return nil, utils.E(utils.CodeUnavailable, op, "model returned no questions", nil)
	}

	// The 5-7 range is an instruction to the model, not a contract. Accept
	// whatever came back but flag drift.
	if len(questions) < 5 || len(questions) > 7 {
		s.log.WithFields(logrus.Fields{
			"count": len(questions),
			"role":  role,
		}).Warn("interview question count outside requested range")
	}
	return questions, nil
}
