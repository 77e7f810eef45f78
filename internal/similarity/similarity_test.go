package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Node.js", []string{"node.js"}},
		{"C++ / C#", []string{"c++", "c#"}},
		{"REST API", []string{"rest", "api"}},
		{"  data-visualization ", []string{"data", "visualization"}},
		{"---", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestVectorize_SortedVocabulary(t *testing.T) {
	v := Vectorize([]string{"sql", "docker"}, []string{"sql", "go"})
	assert.Equal(t, []string{"docker", "go", "sql"}, v.Vocabulary)
	require.Len(t, v.A, 3)
	require.Len(t, v.B, 3)
	assert.Zero(t, v.A[1])
	assert.Zero(t, v.B[0])
	// shared terms carry the lowest idf (1.0)
	assert.InDelta(t, 0.5, v.A[2], 1e-9)
}

func TestCosine_Identical(t *testing.T) {
	doc := []string{"node.js", "sql", "docker"}
	assert.InDelta(t, 1.0, Cosine(doc, doc), 1e-9)
}

func TestCosine_Disjoint(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]string{"python"}, []string{"java"}))
}

func TestCosine_EmptyDocuments(t *testing.T) {
	assert.Equal(t, 0.0, Cosine(nil, []string{"go"}))
	assert.Equal(t, 0.0, Cosine([]string{"go"}, []string{}))
	assert.Equal(t, 0.0, Cosine([]string{"---"}, []string{"go"}))
}

func TestCosine_SymmetricAndBounded(t *testing.T) {
	pairs := [][2][]string{
		{{"react", "typescript", "css"}, {"react", "html"}},
		{{"python", "sql", "excel"}, {"sql", "power bi", "excel", "statistics"}},
		{{"c++"}, {"c++", "c#", "go"}},
	}
	for _, p := range pairs {
		ab := Cosine(p[0], p[1])
		ba := Cosine(p[1], p[0])
		assert.Equal(t, ab, ba)
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.LessOrEqual(t, ab, 1.0)
	}
}

func TestCosineVectors_MismatchedLength(t *testing.T) {
	assert.Equal(t, 0.0, CosineVectors([]float64{1}, []float64{1, 2}))
}
