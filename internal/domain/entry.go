package domain

import (
	"fmt"
	"time"
)

// Category classifies a knowledge entry
type Category string

const (
	CategoryProfile    Category = "profile"
	CategoryProject    Category = "project"
	CategoryExperience Category = "experience"
	CategorySkills     Category = "skills"
	CategoryCareer     Category = "career"
	CategoryContact    Category = "contact"
)

// Field is one free-form data field of a knowledge entry. Fields are
// kept as an ordered slice rather than a map so that embedding text and
// assembled context iterate them in declared order.
type Field struct {
	Key   string
	Value string
}

// KnowledgeEntry represents one curated fact record in the portfolio
// knowledge base
type KnowledgeEntry struct {
	ID       string
	Category Category
	Title    string
	Aliases  []string
	Keywords []string
	Data     []Field
}

// IndexedEntry pairs a knowledge entry with its embedding vector.
// Built once at startup and immutable thereafter.
type IndexedEntry struct {
	Entry     KnowledgeEntry
	Embedding []float32
}

// ScoredEntry pairs an indexed entry with a cosine similarity score.
// Only lives within one ranking call.
type ScoredEntry struct {
	Entry IndexedEntry
	Score float64
}

// Role identifies the author of a conversation turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one message of the prior conversation as
// submitted by the client. Untrusted input; filtered before use.
type ConversationTurn struct {
	Role      Role
	Content   string
	Timestamp time.Time
}

// IsValidRole reports whether r is one of the roles accepted in
// client-supplied history. Anything else is silently dropped.
func IsValidRole(r Role) bool {
	return r == RoleUser || r == RoleAssistant
}

// ValidateEntry validates a KnowledgeEntry instance
func ValidateEntry(e *KnowledgeEntry) error {
	if e == nil {
		return fmt.Errorf("knowledge entry cannot be nil")
	}

	if e.ID == "" {
		return fmt.Errorf("knowledge entry ID is required")
	}

	if e.Title == "" {
		return fmt.Errorf("knowledge entry Title is required")
	}

	if len(e.Data) == 0 {
		return fmt.Errorf("knowledge entry Data cannot be empty")
	}

	if !isValidCategory(e.Category) {
		return fmt.Errorf("knowledge entry Category is invalid: %s", e.Category)
	}

	return nil
}

// isValidCategory checks if a Category is valid
func isValidCategory(c Category) bool {
	switch c {
	case CategoryProfile, CategoryProject, CategoryExperience,
		CategorySkills, CategoryCareer, CategoryContact:
		return true
	}
	return false
}
