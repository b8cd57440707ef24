package llm

import (
	"context"
	"errors"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
)

type VertexGemini struct {
	client *vertexgenai.Client
	model  *vertexgenai.GenerativeModel
	embed  *vertexgenai.EmbeddingModel
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName, embedModelName string) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	if embedModelName == "" {
		embedModelName = "text-embedding-004"
	}

	m := c.GenerativeModel(modelName)
	// Structured flows parse the output as JSON, so ask the model for JSON.
	m.GenerationConfig.ResponseMIMEType = "application/json"

	return &VertexGemini{
		client: c,
		model:  m,
		embed:  c.EmbeddingModel(embedModelName),
	}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := v.model.GenerateContent(ctx, vertexgenai.Text(prompt))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(vertexgenai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}

	out := sb.String()
	if out == "" {
		return "", errors.New("model returned no text content")
	}
	return out, nil
}

func (v *VertexGemini) EmbedText(ctx context.Context, text string) ([]float32, error) {
	resp, err := v.embed.EmbedContent(ctx, vertexgenai.Text(text))
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, errors.New("empty embedding result")
	}
	return resp.Embedding.Values, nil
}
