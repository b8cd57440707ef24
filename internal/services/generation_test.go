package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hirelogic/hirelogic/internal/cache"
	"github.com/hirelogic/hirelogic/internal/prompt"
	"github.com/hirelogic/hirelogic/internal/utils"
)

type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (f *fakeProvider) GenerateContent(context.Context, string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeProvider) Close() error { return nil }

type memCache struct {
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (m *memCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	m.data[key] = b
	m.sets++
	return nil
}

func (m *memCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func newExecutor(p *fakeProvider) *prompt.Executor {
	return prompt.NewExecutor(p, nil)
}

func TestQuestionnaireGenerate(t *testing.T) {
	provider := &fakeProvider{response: `{"questionnaire":"## Round 1\n1. Why Go?"}`}
	svc := NewQuestionnaireService(newExecutor(provider), newMemCache(), nil)

	got, err := svc.Generate(context.Background(), "A long enough job description for a backend role.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "## Round 1\n1. Why Go?" {
		t.Errorf("questionnaire = %q", got)
	}
}

func TestQuestionnaireGenerateEmptyInput(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewQuestionnaireService(newExecutor(provider), newMemCache(), nil)

	_, err := svc.Generate(context.Background(), "")
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("want INVALID_ARGUMENT, got %v", err)
	}
	if provider.calls != 0 {
		t.Error("model must not be called for empty input")
	}
}

func TestQuestionnaireGenerateModelFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("quota exceeded")}
	svc := NewQuestionnaireService(newExecutor(provider), newMemCache(), nil)

	_, err := svc.Generate(context.Background(), "A long enough job description for a backend role.")
	if !utils.IsCode(err, utils.CodeUnavailable) {
		t.Errorf("want UNAVAILABLE, got %v", err)
	}
}

func TestQuestionnaireGenerateMalformedOutput(t *testing.T) {
	provider := &fakeProvider{response: `{"wrong":"shape"}`}
	svc := NewQuestionnaireService(newExecutor(provider), newMemCache(), nil)

	_, err := svc.Generate(context.Background(), "A long enough job description for a backend role.")
	if !utils.IsCode(err, utils.CodeUnavailable) {
		t.Errorf("want UNAVAILABLE, got %v", err)
	}
}

func TestQuestionnaireGenerateUsesCache(t *testing.T) {
	provider := &fakeProvider{response: `{"questionnaire":"cached content"}`}
	mc := newMemCache()
	svc := NewQuestionnaireService(newExecutor(provider), mc, nil)

	const jd = "A long enough job description for a backend role."
	if _, err := svc.Generate(context.Background(), jd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mc.sets != 1 {
		t.Fatalf("cache sets = %d", mc.sets)
	}

	// second call is served from cache
	got, err := svc.Generate(context.Background(), jd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "cached content" {
		t.Errorf("cached questionnaire = %q", got)
	}
	if provider.calls != 1 {
		t.Errorf("model calls = %d, want 1", provider.calls)
	}

	// different description misses
	if _, err := svc.Generate(context.Background(), jd+" now with extra requirements"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.calls != 2 {
		t.Errorf("model calls = %d, want 2", provider.calls)
	}
}

func TestQuestionnaireCacheKeyStable(t *testing.T) {
	a := cache.QuestionnaireKey("same text")
	b := cache.QuestionnaireKey("same text")
	c := cache.QuestionnaireKey("other text")
	if a != b {
		t.Error("same description must produce the same key")
	}
	if a == c {
		t.Error("different descriptions must produce different keys")
	}
}

func TestGenerateQuestions(t *testing.T) {
	provider := &fakeProvider{response: `{"questions":["q1","q2","q3","q4","q5"]}`}
	svc := NewQuestionService(newExecutor(provider), nil)

	got, err := svc.GenerateQuestions(context.Background(), "resume text", "Backend Engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("questions = %d", len(got))
	}
}

func TestGenerateQuestionsFailuresAreErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		wantCode utils.Code
	}{
		{"model error", &fakeProvider{err: errors.New("unavailable")}, utils.CodeUnavailable},
		{"empty list", &fakeProvider{response: `{"questions":[]}`}, utils.CodeUnavailable},
		{"wrong shape", &fakeProvider{response: `{"questions":"not a list"}`}, utils.CodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQuestionService(newExecutor(tt.provider), nil)

			got, err := svc.GenerateQuestions(context.Background(), "resume", "role")
			if !utils.IsCode(err, tt.wantCode) {
				t.Fatalf("want %s, got %v", tt.wantCode, err)
			}
			// a failure must never come back as a usable list
			if got != nil {
				t.Errorf("questions = %v, want nil", got)
			}
		})
	}
}

func TestGenerateQuestionsMissingInput(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewQuestionService(newExecutor(provider), nil)

	_, err := svc.GenerateQuestions(context.Background(), "", "Backend Engineer")
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("want INVALID_ARGUMENT, got %v", err)
	}
	if provider.calls != 0 {
		t.Error("model must not be called for missing input")
	}
}

func TestGenerateQuestionsCountDriftAccepted(t *testing.T) {
	// 3 questions is outside the requested 5-7 range but still a valid result
	provider := &fakeProvider{response: `{"questions":["q1","q2","q3"]}`}
	svc := NewQuestionService(newExecutor(provider), nil)

	got, err := svc.GenerateQuestions(context.Background(), "resume", "role")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("questions = %d", len(got))
	}
}

func TestSummarize(t *testing.T) {
	provider := &fakeProvider{response: `{"summary":"Strong on concurrency, weak on SQL."}`}
	svc := NewSummaryService(newExecutor(provider))

	got, err := svc.Summarize(context.Background(), "I have used goroutines extensively...")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Strong on concurrency, weak on SQL." {
		t.Errorf("summary = %q", got)
	}
}

func TestSummarizeEmptyResponse(t *testing.T) {
	provider := &fakeProvider{}
	svc := NewSummaryService(newExecutor(provider))

	_, err := svc.Summarize(context.Background(), "")
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("want INVALID_ARGUMENT, got %v", err)
	}
	if provider.calls != 0 {
		t.Error("model must not be called for empty input")
	}
}
