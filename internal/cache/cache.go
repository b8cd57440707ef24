package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// QuestionnaireKey derives the cache key for a generated questionnaire from
// the job description text.
func QuestionnaireKey(jobDescription string) string {
	sum := sha256.Sum256([]byte(jobDescription))
	return "questionnaire:" + hex.EncodeToString(sum[:])
}
