package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/hirelogic/hirelogic/internal/models"
	mongorepo "github.com/hirelogic/hirelogic/internal/repositories/mongo"
	"github.com/hirelogic/hirelogic/internal/utils"
)

type ScheduleService interface {
	Schedule(ctx context.Context, candidateID, date, timeOfDay string, typ models.InterviewType) (*models.Interview, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]models.Interview, error)
	ListAll(ctx context.Context, limit int) ([]models.Interview, error)
	// MarkAIScreeningDone records that the candidate finished the AI
	// screening interview.
	MarkAIScreeningDone(ctx context.Context, candidateID string) error
}

type scheduleService struct {
	interviews mongorepo.InterviewRepository
}

func NewScheduleService(interviews mongorepo.InterviewRepository) ScheduleService {
	return &scheduleService{interviews: interviews}
}

func (s *scheduleService) Schedule(ctx context.Context, candidateID, date, timeOfDay string, typ models.InterviewType) (*models.Interview, error) {
	const op = "ScheduleService.Schedule"

	if candidateID == "" || date == "" || timeOfDay == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "candidate_id, date, and time are required", nil)
	}
	switch typ {
	case models.InterviewAIScreening, models.InterviewTechnical, models.InterviewHRRound:
	default:
		return nil, utils.E(utils.CodeInvalidArgument, op, "unknown interview type", nil)
	}

	i := &models.Interview{
		InterviewID: uuid.NewString(),
		CandidateID: candidateID,
		Date:        date,
		Time:        timeOfDay,
		Type:        typ,
		Status:      models.InterviewScheduled,
	}
	if err := s.interviews.Create(ctx, i); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to schedule interview", err)
	}
	return i, nil
}

func (s *scheduleService) ListByCandidate(ctx context.Context, candidateID string) ([]models.Interview, error) {
	const op = "ScheduleService.ListByCandidate"

	if candidateID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "candidate_id is required", nil)
	}
	rows, err := s.interviews.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list interviews", err)
	}
	return rows, nil
}

func (s *scheduleService) ListAll(ctx context.Context, limit int) ([]models.Interview, error) {
	const op = "ScheduleService.ListAll"

	rows, err := s.interviews.ListAll(ctx, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list interviews", err)
	}
	return rows, nil
}

func (s *scheduleService) MarkAIScreeningDone(ctx context.Context, candidateID string) error {
	const op = "ScheduleService.MarkAIScreeningDone"

	if candidateID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "candidate_id is required", nil)
	}
	if err := s.interviews.CompleteLatestAIScreening(ctx, candidateID); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to complete screening record", err)
	}
	return nil
}
