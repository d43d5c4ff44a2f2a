// Package textnorm cleans raw resume and job text into a canonical
// lowercase form and computes basic text statistics.
package textnorm

import (
	"math"
	"regexp"
	"strings"
)

var (
	urlRe = regexp.MustCompile(`https?://\S+`)
	// Characters outside this allow-list are replaced with a space.
	disallowedRe = regexp.MustCompile(`[^A-Za-z0-9%.,;:'"()&\- ]+`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
	wordRe       = regexp.MustCompile(`\w+`)
)

// Clean lowercases text, strips URLs and characters outside the
// allow-list (letters, digits, %.,;:'"()&- and space), collapses
// whitespace runs and trims. Empty input yields an empty string.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	t := strings.NewReplacer("\r", " ", "\n", " ").Replace(text)
	t = urlRe.ReplaceAllString(t, "")
	t = disallowedRe.ReplaceAllString(t, " ")
	t = multiSpaceRe.ReplaceAllString(t, " ")
	return strings.ToLower(strings.TrimSpace(t))
}

// WordCount counts word-like tokens (maximal runs of alphanumerics or
// underscore). Empty input yields 0.
func WordCount(text string) int {
	if text == "" {
		return 0
	}
	return len(wordRe.FindAllString(text, -1))
}

// FleschReadingEase computes the Flesch Reading Ease estimate:
// 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
// Sentences are counted as '.', '!' and '?' occurrences, floored at 1.
// Text with no words yields 0.0 rather than an error.
func FleschReadingEase(text string) float64 {
	words := wordRe.FindAllString(text, -1)
	if len(words) == 0 {
		return 0.0
	}

	sentences := strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?")
	if sentences < 1 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += estimateSyllables(w)
	}

	score := 206.835 -
		1.015*(float64(len(words))/float64(sentences)) -
		84.6*(float64(syllables)/float64(len(words)))
	return math.Round(score*100) / 100
}

// estimateSyllables counts vowel-group transitions, treating y as a
// vowel. A trailing silent e removes one count when the total exceeds
// one. Every word has at least one syllable.
func estimateSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count == 0 {
		return 1
	}
	return count
}
