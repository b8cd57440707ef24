package postgres

import (
	"context"
	"errors"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hirelogic/hirelogic/internal/models"
	"github.com/hirelogic/hirelogic/internal/utils"
)

type CandidateRepository interface {
	Create(ctx context.Context, c *models.Candidate) error
	GetByID(ctx context.Context, id string) (*models.Candidate, error)
	List(ctx context.Context) ([]models.Candidate, error)
	UpdateStage(ctx context.Context, id string, stage models.Stage) error
	UpdateDocuments(ctx context.Context, c *models.Candidate) error
	UpdateResume(ctx context.Context, id, resume, filePath string, embedding []float32) error
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]models.Candidate, error)
	Count(ctx context.Context) (int64, error)
}

type candidateRepo struct {
	db *gorm.DB
}

func NewCandidateRepo(db *gorm.DB) CandidateRepository {
	return &candidateRepo{db: db}
}

func (r *candidateRepo) Create(ctx context.Context, c *models.Candidate) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	var c models.Candidate
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &c, err
}

func (r *candidateRepo) List(ctx context.Context) ([]models.Candidate, error) {
	var rows []models.Candidate
	err := r.db.WithContext(ctx).
		Order("last_activity_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *candidateRepo) UpdateStage(ctx context.Context, id string, stage models.Stage) error {
	res := r.db.WithContext(ctx).
		Model(&models.Candidate{}).
		Where("id = ?", id).
		Update("stage", stage)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) UpdateDocuments(ctx context.Context, c *models.Candidate) error {
	return r.db.WithContext(ctx).
		Model(&models.Candidate{}).
		Where("id = ?", c.ID).
		Update("documents", c.DocumentsJSON).Error
}

func (r *candidateRepo) UpdateResume(ctx context.Context, id, resume, filePath string, embedding []float32) error {
	updates := map[string]any{}
	if resume != "" {
		updates["resume"] = resume
	}
	if filePath != "" {
		updates["resume_file_path"] = filePath
	}
	if len(embedding) > 0 {
		updates["resume_embedding"] = pgvector.NewVector(embedding)
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *candidateRepo) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]models.Candidate, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []models.Candidate
	err := r.db.WithContext(ctx).
		Where("resume_embedding IS NOT NULL").
		Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "resume_embedding <=> ?", Vars: []any{pgvector.NewVector(embedding)}},
		}).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *candidateRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Candidate{}).Count(&n).Error
	return n, err
}
