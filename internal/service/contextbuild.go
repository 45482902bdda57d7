package service

import (
	"fmt"
	"strings"

	"github.com/nmaffly/portfolio-assistant/internal/domain"
)

// Fallback context strings. Both are injected into the system prompt in
// place of assembled sources, so the model still answers instead of the
// request erroring out.
const (
	// ContextIndexLoading is used while the startup index build has not
	// completed (or has failed)
	ContextIndexLoading = "Knowledge index is still loading. Please ask again in a moment."
	// ContextNoMatch is used when ranking leaves no entry above threshold
	ContextNoMatch = "No specific context found in Nate’s portfolio knowledge base."
)

// AssembleContext formats ranked entries into the grounding block the
// model sees verbatim. Each source is self-contained and every data
// field is emitted; blocks are blank-line separated so source
// boundaries stay unambiguous.
func AssembleContext(scored []domain.ScoredEntry) string {
	blocks := make([]string, 0, len(scored))

	for i, s := range scored {
		entry := s.Entry.Entry
		parts := []string{
			fmt.Sprintf("SOURCE %d", i+1),
			fmt.Sprintf("ID: %s", entry.ID),
			fmt.Sprintf("CATEGORY: %s", entry.Category),
			fmt.Sprintf("TITLE: %s", entry.Title),
			"CONTENT:",
		}

		for _, field := range entry.Data {
			parts = append(parts, fmt.Sprintf("  %s: %s", field.Key, field.Value))
		}

		blocks = append(blocks, strings.Join(parts, "\n"))
	}

	return strings.Join(blocks, "\n\n")
}
