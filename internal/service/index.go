package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/nmaffly/portfolio-assistant/internal/domain"
)

// EmbeddingClient defines the interface for generating embeddings
type EmbeddingClient interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// IndexService builds the in-memory embedding index over the knowledge
// base. The corpus is small enough that brute-force in-memory scoring
// is the intended design, so there is no vector store behind this.
type IndexService struct {
	client EmbeddingClient
}

// NewIndexService creates a new IndexService instance
func NewIndexService(client EmbeddingClient) *IndexService {
	return &IndexService{client: client}
}

// BuildIndex embeds every entry, one sequential call per entry, and
// returns the index in entry order. Any single embedding failure fails
// the whole build; callers leave the holder unset and requests fall
// back to the loading sentinel.
func (s *IndexService) BuildIndex(ctx context.Context, entries []domain.KnowledgeEntry) ([]domain.IndexedEntry, error) {
	indexed := make([]domain.IndexedEntry, 0, len(entries))

	for _, entry := range entries {
		if err := domain.ValidateEntry(&entry); err != nil {
			return nil, fmt.Errorf("invalid knowledge entry: %w", err)
		}

		text := EmbeddingText(&entry)
		embedding, err := s.client.GenerateEmbedding(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed entry %q: %w", entry.ID, err)
		}

		indexed = append(indexed, domain.IndexedEntry{
			Entry:     entry,
			Embedding: embedding,
		})
	}

	return indexed, nil
}

// EmbeddingText serializes an entry into the text the embedding model
// scores. The field order is stable and part of the retrieval
// contract; changing it changes retrieval quality.
func EmbeddingText(e *domain.KnowledgeEntry) string {
	parts := []string{
		fmt.Sprintf("Title: %s", e.Title),
		fmt.Sprintf("Category: %s", e.Category),
		fmt.Sprintf("Keywords: %s", strings.Join(e.Keywords, ", ")),
		fmt.Sprintf("Aliases: %s", strings.Join(e.Aliases, ", ")),
	}

	for _, field := range e.Data {
		parts = append(parts, fmt.Sprintf("%s: %s", field.Key, field.Value))
	}

	return strings.Join(parts, "\n")
}

// IndexHolder is the process-wide handoff point for the index: unset
// until the startup build completes, then published exactly once.
// Readers see either no index or a fully-built one, never a partial
// build. Concurrent requests during the build do not block; they
// observe "not ready".
type IndexHolder struct {
	index atomic.Pointer[[]domain.IndexedEntry]
}

// NewIndexHolder creates an empty IndexHolder
func NewIndexHolder() *IndexHolder {
	return &IndexHolder{}
}

// Publish stores the built index. The first publication wins; later
// calls are ignored so the index stays immutable for the process
// lifetime.
func (h *IndexHolder) Publish(index []domain.IndexedEntry) {
	h.index.CompareAndSwap(nil, &index)
}

// Get returns the index and whether it has been published yet
func (h *IndexHolder) Get() ([]domain.IndexedEntry, bool) {
	ptr := h.index.Load()
	if ptr == nil {
		return nil, false
	}
	return *ptr, true
}

// Ready reports whether the index has been published
func (h *IndexHolder) Ready() bool {
	return h.index.Load() != nil
}
