package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/sirupsen/logrus"

	"github.com/hirelogic/hirelogic/internal/models"
	"github.com/hirelogic/hirelogic/internal/providers/llm"
	pgrepo "github.com/hirelogic/hirelogic/internal/repositories/postgres"
	"github.com/hirelogic/hirelogic/internal/storage"
	"github.com/hirelogic/hirelogic/internal/utils"
)

type ResumeService interface {
	// UploadFile stores a resume file for the candidate and records its path.
	UploadFile(ctx context.Context, candidateID, fileName, mimeType string, r io.Reader) (string, error)

	// SetResumeText replaces the candidate's resume text and refreshes the
	// resume embedding used for similarity search.
	SetResumeText(ctx context.Context, candidateID, resume string) error

	// SimilarCandidates returns candidates whose resumes are closest to the
	// given candidate's.
	SimilarCandidates(ctx context.Context, candidateID string, limit int) ([]models.Candidate, error)

	// ListFiles returns the stored resume file objects for the candidate.
	ListFiles(ctx context.Context, candidateID string) ([]string, error)
}

type resumeService struct {
	candidates pgrepo.CandidateRepository
	uploader   storage.Uploader
	lister     storage.Lister
	embedder   llm.Embedder
	log        *logrus.Logger
}

func NewResumeService(candidates pgrepo.CandidateRepository, store storage.ResumeStore, embedder llm.Embedder, log *logrus.Logger) ResumeService {
	if log == nil {
		log = logrus.New()
	}
	return &resumeService{candidates: candidates, uploader: store, lister: store, embedder: embedder, log: log}
}

func (s *resumeService) UploadFile(ctx context.Context, candidateID, fileName, mimeType string, r io.Reader) (string, error) {
	const op = "ResumeService.UploadFile"

	if candidateID == "" || fileName == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "candidate_id and file name are required", nil)
	}
	if s.uploader == nil {
		return "", utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	objectName := path.Join("resumes", candidateID, fileName)
	storedPath, err := s.uploader.Upload(ctx, objectName, mimeType, r)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to upload resume", err)
	}

	if err := s.candidates.UpdateResume(ctx, candidateID, "", storedPath, nil); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to record resume path", err)
	}
	return storedPath, nil
}

func (s *resumeService) SetResumeText(ctx context.Context, candidateID, resume string) error {
	const op = "ResumeService.SetResumeText"

	if candidateID == "" || resume == "" {
		return utils.E(utils.CodeInvalidArgument, op, "candidate_id and resume text are required", nil)
	}

	var embedding []float32
	if s.embedder != nil {
		var err error
		embedding, err = s.embedder.EmbedText(ctx, resume)
		if err != nil {
			// Embedding is best-effort: keep the text even when the
			// embedding call fails.
			s.log.WithError(err).Warn(fmt.Sprintf("%s: resume embedding failed", op))
			embedding = nil
		}
	}

	if err := s.candidates.UpdateResume(ctx, candidateID, resume, "", embedding); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update resume", err)
	}
	return nil
}

func (s *resumeService) ListFiles(ctx context.Context, candidateID string) ([]string, error) {
	const op = "ResumeService.ListFiles"

	if candidateID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "candidate_id is required", nil)
	}
	if s.lister == nil {
		return nil, utils.E(utils.CodeInternal, op, "lister is not configured", nil)
	}

	names, err := s.lister.List(ctx, path.Join("resumes", candidateID)+"/")
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to list resume files", err)
	}
	return names, nil
}

func (s *resumeService) SimilarCandidates(ctx context.Context, candidateID string, limit int) ([]models.Candidate, error) {
	const op = "ResumeService.SimilarCandidates"

	c, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "candidate not found", err)
	}

	emb := c.ResumeEmbedding.Slice()
	if len(emb) == 0 {
		return nil, utils.E(utils.CodeConflict, op, "candidate has no resume embedding", nil)
	}

	rows, err := s.candidates.SearchSimilar(ctx, emb, limit+1)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "similarity search failed", err)
	}

	out := make([]models.Candidate, 0, limit)
	for _, row := range rows {
		if row.ID == candidateID {
			continue
		}
		out = append(out, row)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
