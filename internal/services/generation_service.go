package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/docforge/docforge/internal/models"
)

// GeneratedSection is one content block produced by the language model.
type GeneratedSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

// Generator produces outlines, full content, and refinements. Calls are
// synchronous and single-attempt; any upstream failure is returned as-is
// for the caller to surface.
type Generator interface {
	GenerateOutline(ctx context.Context, topic string, documentType models.DocumentType) (string, error)
	GenerateContent(ctx context.Context, outline string, documentType models.DocumentType, extraInstructions string) ([]GeneratedSection, error)
	RefineContent(ctx context.Context, currentContent, instructions string) (string, error)
}

// GenerationService is the OpenAI-backed Generator implementation.
type GenerationService struct {
	client *openai.Client
	model  string
}

// NewGenerationService creates a Generator using the OpenAI chat
// completion API. An empty model falls back to GPT-4o.
func NewGenerationService(apiKey, model string) *GenerationService {
	if model == "" {
		model = openai.GPT4o
	}
	return &GenerationService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func describeDocumentType(documentType models.DocumentType) string {
	if documentType == models.DocumentTypeSlide {
		return "slide deck presentation"
	}
	return "word processor document"
}

// GenerateOutline asks the model for a structured outline on a topic.
func (s *GenerationService) GenerateOutline(ctx context.Context, topic string, documentType models.DocumentType) (string, error) {
	prompt := fmt.Sprintf(`You are a professional writing assistant. Create a structured outline for a %s about the following topic.

Topic: %s

Return the outline as plain text with one numbered top-level entry per section and short sub-points beneath each. Do not write the content itself, only the outline.`,
		describeDocumentType(documentType), topic)

	return s.complete(ctx, prompt)
}

// GenerateContent expands an outline into a full ordered section list.
func (s *GenerationService) GenerateContent(ctx context.Context, outline string, documentType models.DocumentType, extraInstructions string) ([]GeneratedSection, error) {
	prompt := fmt.Sprintf(`You are a professional writing assistant. Write the full content of a %s from the outline below.

Outline:
%s

Additional instructions: %s

Return ONLY a JSON array, one element per section, in this exact shape:
[
  {
    "title": "section title",
    "content": "full section content",
    "order": 1
  }
]

Notes:
- "order" starts at 1 and increases by 1 per section
- content must be complete prose, not bullet placeholders
- do not wrap the JSON in markdown fences or add any explanation`,
		describeDocumentType(documentType), outline, extraInstructions)

	raw, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var sections []GeneratedSection
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		return nil, fmt.Errorf("failed to parse generated sections: %w (response: %s)", err, raw)
	}

	return sections, nil
}

// RefineContent rewrites a single section's content per the instructions.
func (s *GenerationService) RefineContent(ctx context.Context, currentContent, instructions string) (string, error) {
	prompt := fmt.Sprintf(`You are a professional writing assistant. Revise the content below according to the instructions. Return only the revised content, with no preamble.

Content:
%s

Instructions:
%s`, currentContent, instructions)

	return s.complete(ctx, prompt)
}

func (s *GenerationService) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.7,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
