package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Part is one unit of model input: plain text, or inline binary data tagged
// with a media type (e.g. an uploaded resume PDF). It mirrors the SDK's
// content-part concept so the orchestrator never imports the SDK directly.
type Part struct {
	Text     string
	Data     []byte
	MIMEType string
}

// Generator is the slice of the Gemini API the orchestrator needs.
// SearchService depends on this interface so tests can swap in a fake.
type Generator interface {
	// GenerateContent sends the parts as one user turn and returns the raw
	// text reply.
	GenerateContent(ctx context.Context, parts []Part) (string, error)

	// GenerateWithSearch runs one round trip with the Google Search tool
	// enabled, a JSON-only response MIME type, and a system instruction.
	GenerateWithSearch(ctx context.Context, prompt, systemInstruction string) (string, error)
}

// GeminiService wraps the genai client. One instance is created at startup
// and injected into the services that need it.
type GeminiService struct {
	Client *genai.Client
	Model  string
}

// NewGeminiService initializes the Gemini client with the given key and model.
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiService{Client: client, Model: model}, nil
}

func (s *GeminiService) GenerateContent(ctx context.Context, parts []Part) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts(toGenaiParts(parts), genai.RoleUser),
	}
	resp, err := s.Client.Models.GenerateContent(ctx, s.Model, contents, nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func (s *GeminiService) GenerateWithSearch(ctx context.Context, prompt, systemInstruction string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Tools:             []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := s.Client.Models.GenerateContent(ctx, s.Model, contents, cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func toGenaiParts(parts []Part) []*genai.Part {
	out := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.Text != "" {
			out = append(out, genai.NewPartFromText(p.Text))
			continue
		}
		out = append(out, genai.NewPartFromBytes(p.Data, p.MIMEType))
	}
	return out
}
