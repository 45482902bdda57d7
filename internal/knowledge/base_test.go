package knowledge

import (
	"strings"
	"testing"

	"github.com/nmaffly/portfolio-assistant/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntries_AllValid(t *testing.T) {
	entries := Entries()
	require.NotEmpty(t, entries)

	for i := range entries {
		assert.NoError(t, domain.ValidateEntry(&entries[i]), "entry %s", entries[i].ID)
	}
}

func TestEntries_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Entries() {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestEntries_StableOrder(t *testing.T) {
	first := Entries()
	second := Entries()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestEntries_KnownRecords(t *testing.T) {
	byID := make(map[string]domain.KnowledgeEntry)
	for _, e := range Entries() {
		byID[e.ID] = e
	}

	scoutai, ok := byID["project-scoutai"]
	require.True(t, ok)
	assert.Equal(t, domain.CategoryProject, scoutai.Category)

	keys := make([]string, 0, len(scoutai.Data))
	for _, f := range scoutai.Data {
		keys = append(keys, f.Key)
	}
	assert.Contains(t, keys, "architecture")
	assert.Contains(t, keys, "myRole")

	contact, ok := byID["contact"]
	require.True(t, ok)
	assert.Contains(t, contact.Data[0].Value, "ncmaffly@ucdavis.edu")
}

func TestSystemPrompt_HasSinglePlaceholder(t *testing.T) {
	assert.Equal(t, 1, strings.Count(SystemPrompt, ContextPlaceholder))
}
