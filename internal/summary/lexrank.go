// Package summary produces a short extractive summary of a resume by
// ranking its sentences with a graph-centrality algorithm over
// sentence similarity.
package summary

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/chhaviambor/resume-improvement-assistant/internal/keywords"
)

const (
	// fallbackChars bounds the raw-text fallback when ranking fails.
	fallbackChars = 300

	similarityThreshold = 0.1
	damping             = 0.85
	powerIterations     = 30
)

var sentenceWordRe = regexp.MustCompile(`\w+`)

// LexRank selects the most central sentences of a text.
type LexRank struct{}

// NewLexRank returns a ready-to-use summarizer.
func NewLexRank() *LexRank {
	return &LexRank{}
}

// Summarize returns the top sentenceCount sentences in original
// document order, joined with spaces. Empty input yields an empty
// string; when ranking produces nothing usable the first ~300
// characters of the raw input are returned instead. Summarize never
// fails.
func (l *LexRank) Summarize(text string, sentenceCount int) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if sentenceCount <= 0 {
		return truncate(text)
	}

	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return truncate(text)
	}
	if len(sentences) <= sentenceCount {
		return strings.Join(sentences, " ")
	}

	scores := rankSentences(sentences)

	type ranked struct {
		index int
		score float64
	}
	order := make([]ranked, len(sentences))
	for i, s := range scores {
		order[i] = ranked{index: i, score: s}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].score > order[j].score
	})

	picked := order[:sentenceCount]
	sort.Slice(picked, func(i, j int) bool {
		return picked[i].index < picked[j].index
	})

	parts := make([]string, 0, len(picked))
	for _, p := range picked {
		parts = append(parts, sentences[p.index])
	}
	result := strings.TrimSpace(strings.Join(parts, " "))
	if result == "" {
		return truncate(text)
	}
	return result
}

// splitSentences breaks text into sentences at runs of terminal
// punctuation, treating newlines as boundaries too.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)
		boundary := false
		switch r {
		case '.', '!', '?':
			// consume the whole punctuation run
			for i+1 < len(runes) && (runes[i+1] == '.' || runes[i+1] == '!' || runes[i+1] == '?') {
				i++
				current.WriteRune(runes[i])
			}
			boundary = true
		case '\n':
			boundary = true
		}
		if boundary {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// rankSentences runs power iteration over the sentence-similarity
// graph and returns a centrality score per sentence.
func rankSentences(sentences []string) []float64 {
	n := len(sentences)
	vectors := make([]map[string]int, n)
	for i, s := range sentences {
		vectors[i] = termCounts(s)
	}

	// adjacency matrix, row-normalized
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		rowSum := 0.0
		for j := range matrix[i] {
			if i == j {
				continue
			}
			sim := cosineCounts(vectors[i], vectors[j])
			if sim >= similarityThreshold {
				matrix[i][j] = sim
				rowSum += sim
			}
		}
		if rowSum > 0 {
			for j := range matrix[i] {
				matrix[i][j] /= rowSum
			}
		}
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}
	next := make([]float64, n)
	for iter := 0; iter < powerIterations; iter++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for i := 0; i < n; i++ {
				sum += matrix[i][j] * scores[i]
			}
			next[j] = (1-damping)/float64(n) + damping*sum
		}
		copy(scores, next)
	}
	return scores
}

// termCounts tokenizes a sentence into lowercase content-word counts.
func termCounts(sentence string) map[string]int {
	counts := make(map[string]int)
	for _, w := range sentenceWordRe.FindAllString(strings.ToLower(sentence), -1) {
		if keywords.IsStopword(w) {
			continue
		}
		counts[w]++
	}
	return counts
}

func cosineCounts(a, b map[string]int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	dot := 0.0
	for term, ca := range a {
		if cb, ok := b[term]; ok {
			dot += float64(ca) * float64(cb)
		}
	}
	if dot == 0 {
		return 0.0
	}
	normA := 0.0
	for _, c := range a {
		normA += float64(c) * float64(c)
	}
	normB := 0.0
	for _, c := range b {
		normB += float64(c) * float64(c)
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// truncate returns the first ~300 characters of the raw input.
func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= fallbackChars {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(string(runes[:fallbackChars]))
}
