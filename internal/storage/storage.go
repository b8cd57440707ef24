package storage

import (
	"context"
	"io"
)

// Uploader stores resume files and returns the stored object path.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}

// Lister enumerates stored objects under a prefix, ex: one candidate's
// resume revisions.
type Lister interface {
	List(ctx context.Context, prefix string) ([]string, error)
}

// ResumeStore is the full bucket surface the resume service needs.
type ResumeStore interface {
	Uploader
	Lister
}
