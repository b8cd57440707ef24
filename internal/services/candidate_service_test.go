package services

import (
	"context"
	"testing"

	"github.com/hirelogic/hirelogic/internal/models"
	"github.com/hirelogic/hirelogic/internal/utils"
)

type fakeCandidateRepo struct {
	byID map[string]*models.Candidate

	created       []*models.Candidate
	updatedStages map[string]models.Stage
	updatedDocs   map[string][]models.Document
}

func newFakeCandidateRepo(candidates ...*models.Candidate) *fakeCandidateRepo {
	r := &fakeCandidateRepo{
		byID:          map[string]*models.Candidate{},
		updatedStages: map[string]models.Stage{},
		updatedDocs:   map[string][]models.Document{},
	}
	for _, c := range candidates {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeCandidateRepo) Create(_ context.Context, c *models.Candidate) error {
	r.created = append(r.created, c)
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCandidateRepo) GetByID(_ context.Context, id string) (*models.Candidate, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return c, nil
}

func (r *fakeCandidateRepo) List(context.Context) ([]models.Candidate, error) {
	var rows []models.Candidate
	for _, c := range r.byID {
		rows = append(rows, *c)
	}
	return rows, nil
}

func (r *fakeCandidateRepo) UpdateStage(_ context.Context, id string, stage models.Stage) error {
	if _, ok := r.byID[id]; !ok {
		return utils.ErrNotFound
	}
	r.updatedStages[id] = stage
	r.byID[id].Stage = stage
	return nil
}

func (r *fakeCandidateRepo) UpdateDocuments(_ context.Context, c *models.Candidate) error {
	r.updatedDocs[c.ID] = c.Documents()
	return nil
}

func (r *fakeCandidateRepo) UpdateResume(_ context.Context, id, resume, filePath string, _ []float32) error {
	if _, ok := r.byID[id]; !ok {
		return utils.ErrNotFound
	}
	if resume != "" {
		r.byID[id].Resume = resume
	}
	if filePath != "" {
		r.byID[id].ResumeFilePath = filePath
	}
	return nil
}

func (r *fakeCandidateRepo) SearchSimilar(context.Context, []float32, int) ([]models.Candidate, error) {
	return nil, nil
}

func (r *fakeCandidateRepo) Count(context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func TestCandidateServiceApply(t *testing.T) {
	repo := newFakeCandidateRepo()
	svc := NewCandidateService(repo)

	c, err := svc.Apply(context.Background(), "Priya Kumar", "priya@example.com", "Backend Engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Stage != models.StageScreening {
		t.Errorf("stage = %v, want Screening", c.Stage)
	}
	if c.ID == "" {
		t.Error("candidate must get an id")
	}
	if len(repo.created) != 1 {
		t.Errorf("created = %d", len(repo.created))
	}
}

func TestCandidateServiceApplyValidation(t *testing.T) {
	svc := NewCandidateService(newFakeCandidateRepo())

	_, err := svc.Apply(context.Background(), "", "priya@example.com", "Backend Engineer")
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Errorf("want INVALID_ARGUMENT, got %v", err)
	}
}

func TestCandidateServiceApplyVerification(t *testing.T) {
	c := &models.Candidate{ID: "can-1", Stage: models.StageScreening}
	_ = c.SetDocuments([]models.Document{
		{Name: models.DocAadhaarCard, Status: models.DocVerified},
	})
	repo := newFakeCandidateRepo(c)
	svc := NewCandidateService(repo)

	if err := svc.ApplyVerification(context.Background(), "can-1", models.DocPANCard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	docs := repo.updatedDocs["can-1"]
	var pan *models.Document
	for i := range docs {
		if docs[i].Name == models.DocPANCard {
			pan = &docs[i]
		}
	}
	if pan == nil {
		t.Fatalf("PAN entry missing: %+v", docs)
	}
	// verification requests land as Pending, never straight to Verified
	if pan.Status != models.DocPending {
		t.Errorf("PAN status = %v, want Pending", pan.Status)
	}

	// the untouched entry survives
	if docs[0].Name != models.DocAadhaarCard || docs[0].Status != models.DocVerified {
		t.Errorf("existing entry mutated: %+v", docs[0])
	}

	// repeating the request stays idempotent
	if err := svc.ApplyVerification(context.Background(), "can-1", models.DocPANCard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(repo.updatedDocs["can-1"]); got != 2 {
		t.Errorf("document count after repeat = %d", got)
	}
}

func TestCandidateServiceApplyVerificationUnknownDocument(t *testing.T) {
	svc := NewCandidateService(newFakeCandidateRepo())

	err := svc.ApplyVerification(context.Background(), "can-1", models.DocumentName("Passport"))
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Errorf("want INVALID_ARGUMENT, got %v", err)
	}
}

func TestCandidateServiceAdvanceStage(t *testing.T) {
	tests := []struct {
		name    string
		from    models.Stage
		want    models.Stage
		wantErr utils.Code
	}{
		{"screening advances", models.StageScreening, models.StageInterview, ""},
		{"interview advances", models.StageInterview, models.StageOffer, ""},
		{"offer advances", models.StageOffer, models.StageHired, ""},
		{"hired is terminal", models.StageHired, "", utils.CodeConflict},
		{"rejected is terminal", models.StageRejected, "", utils.CodeConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeCandidateRepo(&models.Candidate{ID: "can-1", Stage: tt.from})
			svc := NewCandidateService(repo)

			got, err := svc.AdvanceStage(context.Background(), "can-1")

			if tt.wantErr != "" {
				if !utils.IsCode(err, tt.wantErr) {
					t.Fatalf("want %s, got %v", tt.wantErr, err)
				}
				if len(repo.updatedStages) != 0 {
					t.Error("terminal stage must not be written")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("stage = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCandidateServiceGetNotFound(t *testing.T) {
	svc := NewCandidateService(newFakeCandidateRepo())

	_, err := svc.Get(context.Background(), "nope")
	if !utils.IsCode(err, utils.CodeNotFound) {
		t.Errorf("want NOT_FOUND, got %v", err)
	}
}
