package decor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"

	"github.com/aacvocab/termrank/internal/ranker"
	"github.com/aacvocab/termrank/pkg/logger"
)

// OpenAI asks a chat model for an emoji per term. Responses are memoized
// for the process lifetime, including failures, so a flaky model cannot be
// hammered by repeat lookups. Any error yields "" and the ranking result
// stays valid.
type OpenAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger

	mu   sync.Mutex
	memo map[string]string
}

// NewOpenAI creates the chat-backed decoration lookup.
func NewOpenAI(client *openai.Client, model string) *OpenAI {
	return &OpenAI{
		client:  client,
		model:   model,
		timeout: 10 * time.Second,
		logger:  logger.WithComponent("emoji-decorator"),
		memo:    make(map[string]string),
	}
}

// Lookup returns one emoji for the term, or "" when the model fails or
// answers with something that is not a single short token.
func (o *OpenAI) Lookup(text string, category ranker.Category) string {
	key := strings.ToLower(text)
	o.mu.Lock()
	if emoji, ok := o.memo[key]; ok {
		o.mu.Unlock()
		return emoji
	}
	o.mu.Unlock()

	emoji := o.fetch(text, category)
	o.mu.Lock()
	o.memo[key] = emoji
	o.mu.Unlock()
	return emoji
}

func (o *OpenAI) fetch(text string, category ranker.Category) string {
	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	prompt := fmt.Sprintf("Reply with exactly one emoji that best represents the %s %q. Reply with only the emoji, nothing else.",
		category, text)
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.model,
		MaxTokens: 8,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		o.logger.Debug("emoji lookup failed", "term", text, "error", err)
		return ""
	}
	if len(resp.Choices) == 0 {
		return ""
	}
	return sanitizeEmoji(resp.Choices[0].Message.Content)
}

// sanitizeEmoji reduces a model answer to its first whitespace-separated
// token and rejects anything that reads as text rather than an emoji. The
// rune cap leaves room for ZWJ sequences and skin-tone modifiers, which run
// to several runes for one visible glyph.
func sanitizeEmoji(answer string) string {
	answer = strings.TrimSpace(answer)
	if fields := strings.Fields(answer); len(fields) > 0 {
		answer = fields[0]
	}
	if answer == "" || utf8.RuneCountInString(answer) > 12 {
		return ""
	}
	for _, r := range answer {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return ""
		}
	}
	return answer
}
