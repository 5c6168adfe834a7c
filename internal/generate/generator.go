// Package generate produces raw candidate vocabulary for a context by
// calling a chat-completion collaborator. The ranking engine never sees
// this package; it receives the candidate pool as plain strings.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/aacvocab/termrank/pkg/config"
	"github.com/aacvocab/termrank/pkg/logger"
)

// Generator requests candidate terms from the OpenAI chat API.
type Generator struct {
	client *openai.Client
	cfg    config.GeneratorConfig
	logger *slog.Logger
}

// New creates a candidate generator.
func New(client *openai.Client, cfg config.GeneratorConfig) *Generator {
	return &Generator{
		client: client,
		cfg:    cfg,
		logger: logger.WithComponent("candidate-generator"),
	}
}

// Generate asks the model for up to target single-word vocabulary terms
// relevant to the context. The model may return fewer; deduplication is
// the pool builder's job, not ours.
func (g *Generator) Generate(ctx context.Context, contextText string, target int) ([]string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: float32(g.cfg.Temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(contextText, target)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generating candidates: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("generating candidates: no completion choices returned")
	}
	terms := parseTermList(resp.Choices[0].Message.Content)
	if len(terms) == 0 {
		return nil, errors.New("generating candidates: response contained no terms")
	}
	g.logger.Debug("candidates generated", "requested", target, "received", len(terms))
	return terms, nil
}

func buildPrompt(contextText string, target int) string {
	return fmt.Sprintf(`Given this context: %q

Generate %d SINGLE WORDS for a VOCABULARY LIST that would help someone discuss this type of situation.

Generate GENERAL, REUSABLE vocabulary for the TYPE of situation, not specific image descriptions.

Rules:
1. SINGLE words only (maximum 2 words for compound terms like "swimming pool")
2. Include basic verbs, basic nouns, common adjectives, and useful pronouns
3. NO numbers, articles, or demonstratives attached to words
4. NO proper nouns or brand names

Output ONLY the words, comma-separated, on one line.`, contextText, target)
}

// parseTermList splits a comma-separated completion into raw terms,
// tolerating code fences and stray newlines in the response.
func parseTermList(s string) []string {
	var terms []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		for _, part := range strings.Split(line, ",") {
			if term := strings.TrimSpace(part); term != "" {
				terms = append(terms, term)
			}
		}
	}
	return terms
}
