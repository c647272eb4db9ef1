package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/monopoly-council/internal/models"
	"google.golang.org/api/option"
)

// Response is one raw model reply plus its token accounting.
type Response struct {
	Text  string
	Usage models.UsageTotals
}

// DecisionSource is the decision-making collaborator: a black box that turns
// a rendered prompt into free text. Implementations must be safe for
// concurrent calls.
type DecisionSource interface {
	Generate(ctx context.Context, prompt string) (Response, error)
}

// GeminiSource is the live DecisionSource backed by the Gemini API.
type GeminiSource struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiSource creates a Gemini-backed source for the given model name.
func NewGeminiSource(ctx context.Context, apiKey, modelName string) (*GeminiSource, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiSource{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (s *GeminiSource) Close() {
	s.client.Close()
}

func (s *GeminiSource) Generate(ctx context.Context, prompt string) (Response, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Response{}, err
	}

	usage := models.UsageTotals{}
	if resp.UsageMetadata != nil {
		usage.PromptTokens = int64(resp.UsageMetadata.PromptTokenCount)
		usage.CandidateTokens = int64(resp.UsageMetadata.CandidatesTokenCount)
		usage.TotalTokens = int64(resp.UsageMetadata.TotalTokenCount)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return Response{Usage: usage}, fmt.Errorf("no content returned from Gemini")
	}

	part := resp.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return Response{Usage: usage}, fmt.Errorf("unexpected response type from Gemini")
	}

	return Response{Text: strings.TrimSpace(string(text)), Usage: usage}, nil
}
