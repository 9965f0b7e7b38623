// Package embedding maps free text onto a small fixed vector space using a
// static token vocabulary. There is no learned component: an embedding is
// the L2-normalized sum of the vocabulary vectors of the recognized tokens.
package embedding

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

const (
	maxKeywords      = 10
	fallbackKeywords = 5
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9\s]+`)

// Model is an immutable embedding model built from an explicit vocabulary.
// All methods are pure; a Model is safe for concurrent use.
type Model struct {
	vocab map[string][]float64
	dim   int
}

// New builds a Model from a token vocabulary. Every vector in the
// vocabulary must have the same length.
func New(vocab map[string][]float64) (*Model, error) {
	if len(vocab) == 0 {
		return nil, fmt.Errorf("embedding: empty vocabulary")
	}

	dim := 0
	for token, vec := range vocab {
		if dim == 0 {
			dim = len(vec)
		}
		if len(vec) != dim || dim == 0 {
			return nil, fmt.Errorf("embedding: token %q has dimension %d, want %d", token, len(vec), dim)
		}
	}

	return &Model{vocab: vocab, dim: dim}, nil
}

// Default returns a Model over the built-in reference vocabulary.
func Default() *Model {
	m, err := New(DefaultVocabulary())
	if err != nil {
		panic(err)
	}
	return m
}

// Dim reports the vector length this model produces.
func (m *Model) Dim() int {
	return m.dim
}

// Embed maps text to a vector of length Dim. Tokens outside the vocabulary
// contribute nothing; if no token is recognized the zero vector is
// returned, otherwise the accumulated vector is L2-normalized.
func (m *Model) Embed(text string) []float64 {
	vector := make([]float64, m.dim)

	for _, token := range tokenize(text) {
		vec, ok := m.vocab[token]
		if !ok {
			continue
		}
		for i, v := range vec {
			vector[i] += v
		}
	}

	var sum float64
	for _, v := range vector {
		sum += v * v
	}
	magnitude := math.Sqrt(sum)
	if magnitude == 0 {
		return vector
	}

	for i := range vector {
		vector[i] /= magnitude
	}
	return vector
}

// Keywords extracts up to 10 salient tokens in first-occurrence order:
// vocabulary tokens first, then any other token longer than three
// characters. Stop words are dropped. When nothing qualifies, the first
// few raw tokens are returned so callers always have something to show.
func (m *Model) Keywords(text string) []string {
	var candidates []string
	for _, token := range tokenize(text) {
		if len(token) <= 2 {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		candidates = append(candidates, token)
	}

	seen := make(map[string]struct{}, len(candidates))
	keywords := make([]string, 0, maxKeywords)

	appendUnique := func(token string) {
		if len(keywords) >= maxKeywords {
			return
		}
		if _, dup := seen[token]; dup {
			return
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
	}

	for _, token := range candidates {
		if _, ok := m.vocab[token]; ok {
			appendUnique(token)
		}
	}
	for _, token := range candidates {
		if _, ok := m.vocab[token]; !ok && len(token) > 3 {
			appendUnique(token)
		}
	}

	if len(keywords) == 0 && len(candidates) > 0 {
		n := fallbackKeywords
		if n > len(candidates) {
			n = len(candidates)
		}
		return candidates[:n]
	}
	return keywords
}

// CosineSimilarity returns the cosine of the angle between a and b, in
// [-1, 1]. Nil, mismatched or zero-magnitude inputs yield 0 rather than an
// error; those are steady-state conditions here, not failures.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

func tokenize(text string) []string {
	cleaned := nonAlnum.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(cleaned)
}
