package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/nmaffly/portfolio-assistant/internal/domain"
	"github.com/nmaffly/portfolio-assistant/internal/openai"
)

const (
	// MaxMessageLength is the validation cap on an inbound question
	MaxMessageLength = 500
	// DefaultHistoryLimit caps how many prior turns are replayed to the model
	DefaultHistoryLimit = 4
)

// ChatClient defines the interface for answer generation
type ChatClient interface {
	GenerateChatCompletion(ctx context.Context, messages []openai.ChatMessage) (*openai.ChatResult, error)
}

// AnswerInput is one validated-on-entry chat request
type AnswerInput struct {
	Message string
	History []domain.ConversationTurn
}

// AnswerOutput is a successful answer
type AnswerOutput struct {
	Response   string
	TokensUsed int
}

// ChatService orchestrates one question: validate, retrieve grounding
// context, compose the prompt, generate, shape the result. The two
// external calls (embedding, generation) are the only slow points;
// everything else is local computation over the in-memory index.
type ChatService struct {
	embedding    EmbeddingClient
	chat         ChatClient
	holder       *IndexHolder
	retrieval    RetrievalConfig
	historyLimit int
	systemPrompt string
	placeholder  string
}

// NewChatService creates a ChatService with the given collaborators.
// systemPrompt must contain placeholder exactly once; the assembled
// context is substituted there on every request.
func NewChatService(
	embedding EmbeddingClient,
	chat ChatClient,
	holder *IndexHolder,
	retrieval RetrievalConfig,
	historyLimit int,
	systemPrompt, placeholder string,
) *ChatService {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &ChatService{
		embedding:    embedding,
		chat:         chat,
		holder:       holder,
		retrieval:    retrieval,
		historyLimit: historyLimit,
		systemPrompt: systemPrompt,
		placeholder:  placeholder,
	}
}

// Answer runs the full pipeline for one question. All failures come
// back as domain errors so the transport layer can map them to status
// codes without inspecting provider internals.
func (s *ChatService) Answer(ctx context.Context, input AnswerInput) (*AnswerOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domain.ErrMessageRequired
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return nil, domain.ErrMessageTooLong
	}

	contextBlock, err := s.retrieveContext(ctx, message)
	if err != nil {
		return nil, err
	}

	messages := s.composeMessages(contextBlock, input.History, message)

	result, err := s.chat.GenerateChatCompletion(ctx, messages)
	if err != nil {
		return nil, classifyUpstreamError(err)
	}

	return &AnswerOutput{
		Response:   result.Content,
		TokensUsed: result.TotalTokens,
	}, nil
}

// retrieveContext embeds the question and ranks it against the index.
// An unpublished index is a degraded condition, not an error: the
// request proceeds with the loading sentinel as context.
func (s *ChatService) retrieveContext(ctx context.Context, message string) (string, error) {
	index, ok := s.holder.Get()
	if !ok {
		return ContextIndexLoading, nil
	}

	queryVec, err := s.embedding.GenerateEmbedding(ctx, message)
	if err != nil {
		return "", classifyUpstreamError(err)
	}

	scored := Rank(queryVec, index, s.retrieval)
	if len(scored) == 0 {
		return ContextNoMatch, nil
	}

	return AssembleContext(scored), nil
}

// composeMessages builds the ordered prompt: system instruction with
// substituted context first, then up to historyLimit prior turns
// (role-filtered, order preserved), then the new question last.
func (s *ChatService) composeMessages(contextBlock string, history []domain.ConversationTurn, message string) []openai.ChatMessage {
	messages := []openai.ChatMessage{
		{
			Role:    "system",
			Content: strings.Replace(s.systemPrompt, s.placeholder, contextBlock, 1),
		},
	}

	if len(history) > s.historyLimit {
		history = history[len(history)-s.historyLimit:]
	}
	for _, turn := range history {
		if !domain.IsValidRole(turn.Role) {
			continue
		}
		messages = append(messages, openai.ChatMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	messages = append(messages, openai.ChatMessage{
		Role:    "user",
		Content: message,
	})

	return messages
}

// classifyUpstreamError converts provider failures into the domain
// taxonomy: quota exhaustion, bad credentials, or unknown.
func classifyUpstreamError(err error) error {
	switch {
	case openai.IsQuotaError(err):
		return domain.NewDomainErrorWithCause(domain.ErrCodeUpstreamQuota, domain.ErrProviderQuotaExhausted.Message, err)
	case openai.IsAuthError(err):
		return domain.NewDomainErrorWithCause(domain.ErrCodeUpstreamConfig, domain.ErrProviderMisconfigured.Message, err)
	default:
		return domain.NewDomainErrorWithCause(domain.ErrCodeInternalError, "chat pipeline failed", err)
	}
}
