package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// Stage of a candidate in the hiring pipeline.
type Stage string

const (
	StageScreening Stage = "Screening"
	StageInterview Stage = "Interview"
	StageOffer     Stage = "Offer"
	StageHired     Stage = "Hired"
	StageRejected  Stage = "Rejected"
)

// NextStage returns the stage a candidate advances to. Hired and Rejected
// are terminal.
func NextStage(s Stage) (Stage, bool) {
	switch s {
	case StageScreening:
		return StageInterview, true
	case StageInterview:
		return StageOffer, true
	case StageOffer:
		return StageHired, true
	default:
		return s, false
	}
}

type Candidate struct {
	ID     string `gorm:"column:id;type:text;primaryKey" json:"id"`
	Name   string `gorm:"column:name;type:text" json:"name"`
	Email  string `gorm:"column:email;type:text;index" json:"email"`
	Avatar string `gorm:"column:avatar;type:text" json:"avatar"`
	Role   string `gorm:"column:role;type:text" json:"role"`
	Stage  Stage  `gorm:"column:stage;type:text" json:"stage"`

	Resume string         `gorm:"column:resume;type:text" json:"resume"`
	Skills pq.StringArray `gorm:"column:skills;type:text[]" json:"skills"`

	// Document set held as JSONB; use Documents/SetDocuments.
	DocumentsJSON datatypes.JSON `gorm:"column:documents;type:jsonb" json:"documents"`

	ResumeFilePath string `gorm:"column:resume_file_path;type:text" json:"resume_file_path,omitempty"`

	ResumeEmbedding pgvector.Vector `gorm:"column:resume_embedding;type:vector(768)" json:"-"`

	LastActivityAt time.Time `gorm:"column:last_activity_at;type:timestamptz" json:"last_activity_at"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (Candidate) TableName() string { return "candidates" }

func (c *Candidate) Documents() []Document {
	if len(c.DocumentsJSON) == 0 {
		return nil
	}
	var docs []Document
	if err := json.Unmarshal(c.DocumentsJSON, &docs); err != nil {
		return nil
	}
	return docs
}

func (c *Candidate) SetDocuments(docs []Document) error {
	b, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	c.DocumentsJSON = datatypes.JSON(b)
	return nil
}
