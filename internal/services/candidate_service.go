package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hirelogic/hirelogic/internal/models"
	pgrepo "github.com/hirelogic/hirelogic/internal/repositories/postgres"
	"github.com/hirelogic/hirelogic/internal/utils"
)

type CandidateService interface {
	Get(ctx context.Context, id string) (*models.Candidate, error)
	List(ctx context.Context) ([]models.Candidate, error)

	// Apply creates a new candidate in the Screening stage from an
	// application form submission.
	Apply(ctx context.Context, name, email, role string) (*models.Candidate, error)

	// ApplyVerification upserts the named document's status to Pending on
	// the candidate's document set. This is the owner-side handler for the
	// verification session's completion event; the status never jumps
	// straight to Verified here.
	ApplyVerification(ctx context.Context, candidateID string, doc models.DocumentName) error

	// AdvanceStage moves the candidate to the next pipeline stage. This is
	// the owner-side handler for the interview session's "advance
	// candidate" exit.
	AdvanceStage(ctx context.Context, candidateID string) (models.Stage, error)
}

type candidateService struct {
	candidates pgrepo.CandidateRepository
}

func NewCandidateService(candidates pgrepo.CandidateRepository) CandidateService {
	return &candidateService{candidates: candidates}
}

func (s *candidateService) Get(ctx context.Context, id string) (*models.Candidate, error) {
	const op = "CandidateService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "candidate id is required", nil)
	}
	c, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "candidate not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get candidate", err)
	}
	return c, nil
}

func (s *candidateService) List(ctx context.Context) ([]models.Candidate, error) {
	const op = "CandidateService.List"

	rows, err := s.candidates.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list candidates", err)
	}
	return rows, nil
}

func (s *candidateService) Apply(ctx context.Context, name, email, role string) (*models.Candidate, error) {
	const op = "CandidateService.Apply"

	if name == "" || email == "" || role == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name, email, and role are required", nil)
	}

	now := time.Now().UTC()
	c := &models.Candidate{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		Role:           role,
		Stage:          models.StageScreening,
		LastActivityAt: now,
		CreatedAt:      now,
	}
	if err := s.candidates.Create(ctx, c); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create candidate", err)
	}
	return c, nil
}

func (s *candidateService) ApplyVerification(ctx context.Context, candidateID string, doc models.DocumentName) error {
	const op = "CandidateService.ApplyVerification"

	if !doc.Valid() {
		return utils.E(utils.CodeInvalidArgument, op, "unknown document name", nil)
	}

	c, err := s.Get(ctx, candidateID)
	if err != nil {
		return err
	}

	docs := models.UpsertDocument(c.Documents(), doc, models.DocPending)
	if err := c.SetDocuments(docs); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to encode documents", err)
	}
	if err := s.candidates.UpdateDocuments(ctx, c); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update documents", err)
	}
	return nil
}

func (s *candidateService) AdvanceStage(ctx context.Context, candidateID string) (models.Stage, error) {
	const op = "CandidateService.AdvanceStage"

	c, err := s.Get(ctx, candidateID)
	if err != nil {
		return "", err
	}

	next, ok := models.NextStage(c.Stage)
	if !ok {
		return "", utils.E(utils.CodeConflict, op, "candidate stage cannot advance", nil)
	}
	if err := s.candidates.UpdateStage(ctx, candidateID, next); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to update stage", err)
	}
	return next, nil
}
