package repository

import (
	"math"
	"sort"

	"cyclica-api/internal/model"
)

// RankChunks scores chunks by cosine similarity to the query embedding,
// drops everything below the threshold, and returns at most limit results
// ordered most similar first.
func RankChunks(chunks []*model.DocumentChunk, query []float64, threshold float64, limit int) []model.ContextChunk {
	results := make([]model.ContextChunk, 0, len(chunks))
	for _, chunk := range chunks {
		sim := cosineSimilarity(chunk.Embedding, query)
		if sim < threshold {
			continue
		}
		results = append(results, model.ContextChunk{
			Filename:   chunk.Filename,
			Content:    chunk.Content,
			Similarity: sim,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
