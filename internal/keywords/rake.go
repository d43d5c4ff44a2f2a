// Package keywords ranks candidate phrases in free text using RAKE
// (Rapid Automatic Keyword Extraction): candidate phrases are maximal
// runs of content words between stopwords and punctuation, scored by a
// word co-occurrence degree/frequency graph.
package keywords

import (
	"regexp"
	"sort"
	"strings"
)

var (
	fragmentRe = regexp.MustCompile(`[.,;:!?()\[\]"'\n]+`)
	wordRe     = regexp.MustCompile(`\w+`)
)

// RAKE extracts and ranks keyword phrases from a text.
type RAKE struct{}

// NewRAKE returns a ready-to-use extractor.
func NewRAKE() *RAKE {
	return &RAKE{}
}

// Rank returns up to limit candidate phrases, lowercased and trimmed,
// ordered most relevant first. Equal scores keep first-seen order.
// Empty text yields an empty list.
func (r *RAKE) Rank(text string, limit int) []string {
	if strings.TrimSpace(text) == "" || limit <= 0 {
		return nil
	}

	phrases := candidatePhrases(strings.ToLower(text))
	if len(phrases) == 0 {
		return nil
	}

	freq := make(map[string]int)
	degree := make(map[string]int)
	for _, phrase := range phrases {
		for _, w := range phrase {
			freq[w]++
			degree[w] += len(phrase) - 1
		}
	}

	// Word score: degree/frequency, with each word co-occurring with
	// itself. Phrase score: sum of its word scores.
	type scored struct {
		phrase string
		score  float64
	}
	var ranked []scored
	seen := make(map[string]bool)
	for _, phrase := range phrases {
		joined := strings.Join(phrase, " ")
		if seen[joined] {
			continue
		}
		seen[joined] = true
		score := 0.0
		for _, w := range phrase {
			score += float64(freq[w]+degree[w]) / float64(freq[w])
		}
		ranked = append(ranked, scored{phrase: joined, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]string, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.phrase)
	}
	return out
}

// candidatePhrases splits text at punctuation and stopwords, returning
// the runs of content words in between.
func candidatePhrases(text string) [][]string {
	var phrases [][]string
	for _, fragment := range fragmentRe.Split(text, -1) {
		words := wordRe.FindAllString(fragment, -1)
		var current []string
		for _, w := range words {
			if IsStopword(w) {
				if len(current) > 0 {
					phrases = append(phrases, current)
					current = nil
				}
				continue
			}
			current = append(current, w)
		}
		if len(current) > 0 {
			phrases = append(phrases, current)
		}
	}
	return phrases
}
