package usecase

import (
	"math"
	"sort"
)

// cosineSimilarity returns 0 for zero vectors, matching the convention of
// similarity over an empty interaction row.
func cosineSimilarity(a, b []float64) float64 {
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

func cosineSimilarity32(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// cosineSimilarityMatrix computes the full pairwise similarity over the
// rows of m.
func cosineSimilarityMatrix(m [][]float64) [][]float64 {
	n := len(m)
	sim := make([][]float64, n)
	for i := range sim {
		sim[i] = make([]float64, n)
		for j := 0; j <= i; j++ {
			s := cosineSimilarity(m[i], m[j])
			sim[i][j] = s
			sim[j][i] = s
		}
	}
	return sim
}

// argsortDescending returns the indices of values sorted by value
// descending; equal values keep index order.
func argsortDescending(values []float64) []int {
	indices := make([]int, len(values))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return values[indices[a]] > values[indices[b]]
	})
	return indices
}

// topNeighbors picks up to n indices from a similarity row, highest first,
// never including self.
func topNeighbors(similarities []float64, self, n int) []int {
	neighbors := make([]int, 0, n)
	for _, idx := range argsortDescending(similarities) {
		if idx == self {
			continue
		}
		neighbors = append(neighbors, idx)
		if len(neighbors) == n {
			break
		}
	}
	return neighbors
}
