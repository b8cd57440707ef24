package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InterviewType string

const (
	InterviewAIScreening InterviewType = "AI Screening"
	InterviewTechnical   InterviewType = "Technical"
	InterviewHRRound     InterviewType = "HR Round"
)

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "Scheduled"
	InterviewCompleted InterviewStatus = "Completed"
	InterviewCanceled  InterviewStatus = "Canceled"
)

// InterviewStatusIcon maps an interview status to its dashboard icon name.
// Exhaustive over the status enumeration.
func InterviewStatusIcon(s InterviewStatus) string {
	switch s {
	case InterviewCompleted:
		return "check-circle"
	case InterviewScheduled:
		return "clock"
	case InterviewCanceled:
		return "x-circle"
	default:
		return "clock"
	}
}

// Interview is one scheduled or completed interview for a candidate.
type Interview struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	InterviewID string             `bson:"interview_id" json:"id"`
	CandidateID string             `bson:"candidate_id" json:"candidate_id"`

	Date   string          `bson:"date" json:"date"` // YYYY-MM-DD
	Time   string          `bson:"time" json:"time"` // ex: "10:00 AM"
	Type   InterviewType   `bson:"type" json:"type"`
	Status InterviewStatus `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
