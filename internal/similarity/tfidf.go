package similarity

import (
	"math"
	"sort"
)

// Vectors holds the TF-IDF vectors of two documents over a shared vocabulary.
type Vectors struct {
	Vocabulary []string
	A          []float64
	B          []float64
}

// Vectorize builds TF-IDF vectors for two documents.
// IDF is ln((numDocs+1)/(df+1)) + 1 with numDocs = 2; TF is count over document length.
func Vectorize(docA, docB []string) Vectors {
	tokensA := TokenizeDocument(docA)
	tokensB := TokenizeDocument(docB)

	countsA := countTerms(tokensA)
	countsB := countTerms(tokensB)

	vocabulary := make([]string, 0, len(countsA)+len(countsB))
	for term := range countsA {
		vocabulary = append(vocabulary, term)
	}
	for term := range countsB {
		if _, ok := countsA[term]; !ok {
			vocabulary = append(vocabulary, term)
		}
	}
	sort.Strings(vocabulary)

	const numDocs = 2.0
	vecA := make([]float64, len(vocabulary))
	vecB := make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		df := 0.0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		idf := math.Log((numDocs+1)/(df+1)) + 1
		vecA[i] = termFrequency(countsA[term], len(tokensA)) * idf
		vecB[i] = termFrequency(countsB[term], len(tokensB)) * idf
	}

	return Vectors{Vocabulary: vocabulary, A: vecA, B: vecB}
}

// Cosine returns the TF-IDF cosine similarity of two skill lists in [0, 1].
// It is 0 when either document is empty or has no tokens.
func Cosine(docA, docB []string) float64 {
	if len(docA) == 0 || len(docB) == 0 {
		return 0
	}
	v := Vectorize(docA, docB)
	return CosineVectors(v.A, v.B)
}

// CosineVectors returns the cosine of two equal-length vectors clamped to [0, 1].
func CosineVectors(a, b []float64) float64 {
	if len(a) != len(b) {
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
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if math.IsNaN(sim) || sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

func countTerms(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

func termFrequency(count, length int) float64 {
	if length == 0 {
		return 0
	}
	return float64(count) / float64(length)
}
