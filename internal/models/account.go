package models

import "time"

// Account is a recruiter login created through signup.
type Account struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"column:name;type:text" json:"name"`
	Email        string    `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:text" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (Account) TableName() string { return "accounts" }

// PipelineStat is one bar of the dashboard pipeline chart.
type PipelineStat struct {
	Stage string `json:"stage"`
	Value int    `json:"value"`
}
