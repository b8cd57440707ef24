package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hirelogic/hirelogic/internal/models"
)

type InterviewRepository interface {
	Create(ctx context.Context, i *models.Interview) error
	ListByCandidate(ctx context.Context, candidateID string) ([]models.Interview, error)
	ListAll(ctx context.Context, limit int) ([]models.Interview, error)
	SetStatus(ctx context.Context, interviewID string, status models.InterviewStatus) error
	// CompleteLatestAIScreening marks a scheduled AI screening for the
	// candidate as completed. A no-op when none is scheduled.
	CompleteLatestAIScreening(ctx context.Context, candidateID string) error
}

type interviewRepo struct {
	col *mongo.Collection
}

func NewInterviewRepo(db *mongo.Database) InterviewRepository {
	return &interviewRepo{col: db.Collection("interviews")}
}

func (r *interviewRepo) Create(ctx context.Context, i *models.Interview) error {
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, i)
	return err
}

func (r *interviewRepo) ListByCandidate(ctx context.Context, candidateID string) ([]models.Interview, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"candidate_id": candidateID},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.Interview
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *interviewRepo) ListAll(ctx context.Context, limit int) ([]models.Interview, error) {
	if limit <= 0 {
		limit = 100
	}
	cur, err := r.col.Find(ctx,
		bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}).
			SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []models.Interview
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *interviewRepo) SetStatus(ctx context.Context, interviewID string, status models.InterviewStatus) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"interview_id": interviewID},
		bson.M{"$set": bson.M{"status": status}},
	)
	return err
}

func (r *interviewRepo) CompleteLatestAIScreening(ctx context.Context, candidateID string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{
			"candidate_id": candidateID,
			"type":         models.InterviewAIScreening,
			"status":       models.InterviewScheduled,
		},
		bson.M{"$set": bson.M{"status": models.InterviewCompleted}},
	)
	return err
}
