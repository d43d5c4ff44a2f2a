// Package similarity computes vector-space document similarity between
// a resume and a job description.
package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/chhaviambor/resume-improvement-assistant/internal/keywords"
)

// maxFeatures caps the joint vocabulary at the most frequent terms.
const maxFeatures = 2000

// Terms must be at least two characters long.
var termRe = regexp.MustCompile(`\w\w+`)

// TFIDF scores two documents with TF-IDF weighted cosine similarity.
type TFIDF struct {
	// MaxFeatures bounds the joint term vocabulary, most frequent first.
	MaxFeatures int
}

// NewTFIDF returns a scorer with the default vocabulary cap.
func NewTFIDF() *TFIDF {
	return &TFIDF{MaxFeatures: maxFeatures}
}

// Score builds TF-IDF vectors over the two texts jointly (English
// stopwords removed) and returns their cosine similarity in [0, 1].
// Either text empty, or an empty vocabulary after stopword removal,
// yields 0.0; this method never fails.
func (t *TFIDF) Score(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}

	termsA := tokenizeTerms(a)
	termsB := tokenizeTerms(b)
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0.0
	}

	vocab := t.buildVocabulary(termsA, termsB)
	if len(vocab) == 0 {
		return 0.0
	}

	vecA := vectorize(termsA, termsB, vocab)
	vecB := vectorize(termsB, termsA, vocab)
	return cosine(vecA, vecB)
}

// tokenizeTerms lowercases and tokenizes text, dropping stopwords.
func tokenizeTerms(text string) []string {
	var terms []string
	for _, tok := range termRe.FindAllString(strings.ToLower(text), -1) {
		if keywords.IsStopword(tok) {
			continue
		}
		terms = append(terms, tok)
	}
	return terms
}

// buildVocabulary selects up to MaxFeatures terms by joint frequency,
// ties broken alphabetically for determinism, and assigns each a
// vector index.
func (t *TFIDF) buildVocabulary(termsA, termsB []string) map[string]int {
	freq := make(map[string]int)
	for _, term := range termsA {
		freq[term]++
	}
	for _, term := range termsB {
		freq[term]++
	}

	terms := make([]string, 0, len(freq))
	for term := range freq {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})

	limit := t.MaxFeatures
	if limit <= 0 {
		limit = maxFeatures
	}
	if len(terms) > limit {
		terms = terms[:limit]
	}

	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}
	return vocab
}

// vectorize builds the L2-normalized TF-IDF vector for doc, using
// other to derive document frequencies over the two-document corpus.
// Smoothed IDF: ln((1+n)/(1+df)) + 1 with n=2.
func vectorize(doc, other []string, vocab map[string]int) []float64 {
	tf := make(map[string]int)
	for _, term := range doc {
		tf[term]++
	}
	otherSet := make(map[string]bool)
	for _, term := range other {
		otherSet[term] = true
	}

	vec := make([]float64, len(vocab))
	for term, idx := range vocab {
		count := tf[term]
		if count == 0 {
			continue
		}
		df := 1
		if otherSet[term] {
			df = 2
		}
		idf := math.Log(3.0/float64(1+df)) + 1.0
		vec[idx] = float64(count) * idf
	}

	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

func cosine(a, b []float64) float64 {
	dot := 0.0
	for i := range a {
		dot += a[i] * b[i]
	}
	// vectors are unit length; clamp residual float error.
	if dot > 1.0 {
		dot = 1.0
	}
	if dot < 0.0 {
		dot = 0.0
	}
	return dot
}
