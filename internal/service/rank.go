package service

import (
	"math"
	"sort"

	"github.com/nmaffly/portfolio-assistant/internal/domain"
)

const (
	// DefaultTopK bounds how many entries reach the prompt
	DefaultTopK = 4
	// DefaultScoreThreshold drops low-similarity matches; entries with
	// score <= threshold never reach the model
	DefaultScoreThreshold = 0.2

	// cosineEpsilon guards the denominator against zero vectors
	cosineEpsilon = 1e-8
)

// RetrievalConfig holds the ranking tunables. TopK and ScoreThreshold
// trade recall against prompt size and hallucination risk; they are the
// most consequential knobs in the pipeline.
type RetrievalConfig struct {
	TopK           int
	ScoreThreshold float64
}

// DefaultRetrievalConfig returns the production retrieval tunables
func DefaultRetrievalConfig() RetrievalConfig {
	return RetrievalConfig{
		TopK:           DefaultTopK,
		ScoreThreshold: DefaultScoreThreshold,
	}
}

// CosineSimilarity computes dot(a,b) / (|a|*|b| + eps). Vectors are
// compared over the overlapping prefix, which tolerates a
// dimensionality mismatch instead of panicking on it.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + cosineEpsilon)
}

// Rank scores every indexed entry against the query vector and returns
// at most cfg.TopK entries with score above cfg.ScoreThreshold, ordered
// by descending score. The sort is stable, so ties keep index-build
// order. Pure function; repeated calls return identical results.
func Rank(query []float32, index []domain.IndexedEntry, cfg RetrievalConfig) []domain.ScoredEntry {
	scored := make([]domain.ScoredEntry, 0, len(index))
	for _, entry := range index {
		scored = append(scored, domain.ScoredEntry{
			Entry: entry,
			Score: CosineSimilarity(query, entry.Embedding),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if cfg.TopK > 0 && len(scored) > cfg.TopK {
		scored = scored[:cfg.TopK]
	}

	filtered := scored[:0]
	for _, s := range scored {
		if s.Score > cfg.ScoreThreshold {
			filtered = append(filtered, s)
		}
	}

	return filtered
}
