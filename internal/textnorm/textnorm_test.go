package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_LowercasesAndTrims(t *testing.T) {
	got := Clean("  Senior GO Developer  ")
	assert.Equal(t, "senior go developer", got)
}

func TestClean_StripsURLs(t *testing.T) {
	got := Clean("see https://example.com/profile for details")
	assert.Equal(t, "see for details", got)
}

func TestClean_RemovesDisallowedCharacters(t *testing.T) {
	got := Clean("C++ & C# developer — 100% remote!")
	assert.NotContains(t, got, "+")
	assert.NotContains(t, got, "#")
	assert.NotContains(t, got, "!")
	assert.Contains(t, got, "&")
	assert.Contains(t, got, "100%")
}

func TestClean_CollapsesWhitespaceRuns(t *testing.T) {
	got := Clean("a\t\tб b\n\n\nc   d")
	assert.NotContains(t, got, "  ")
}

func TestClean_AllowListOnly(t *testing.T) {
	allowed := "abcdefghijklmnopqrstuvwxyz0123456789%.,;:'\"()&- "
	got := Clean("Résumé with emoji 🎉 and «quotes» plus plain text.")
	for _, r := range got {
		assert.Contains(t, allowed, string(r), "unexpected character %q", r)
	}
}

func TestClean_Empty(t *testing.T) {
	assert.Equal(t, "", Clean(""))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount("a b  c"))
	assert.Equal(t, 2, WordCount("hello, world!"))
	assert.Equal(t, 1, WordCount("snake_case"))
}

func TestFleschReadingEase_EmptyText(t *testing.T) {
	assert.Equal(t, 0.0, FleschReadingEase(""))
	assert.Equal(t, 0.0, FleschReadingEase("!!! ..."))
}

func TestFleschReadingEase_SimpleSentence(t *testing.T) {
	// 5 words, 1 sentence, 5 syllables: 206.835 - 1.015*5 - 84.6*1 = 117.16
	got := FleschReadingEase("the cat sat on mats.")
	assert.InDelta(t, 117.16, got, 0.01)
}

func TestFleschReadingEase_NoTerminatorCountsOneSentence(t *testing.T) {
	withDot := FleschReadingEase("the cat sat on mats.")
	withoutDot := FleschReadingEase("the cat sat on mats")
	assert.Equal(t, withDot, withoutDot)
}

func TestEstimateSyllables(t *testing.T) {
	assert.Equal(t, 1, estimateSyllables("cat"))
	assert.Equal(t, 2, estimateSyllables("happy"))
	// trailing silent e drops one syllable
	assert.Equal(t, 2, estimateSyllables("resume"))
	// never below one, even with no vowels
	assert.Equal(t, 1, estimateSyllables("tv"))
	assert.Equal(t, 1, estimateSyllables("be"))
}

func TestFleschReadingEase_LongerTextStaysFinite(t *testing.T) {
	text := strings.Repeat("engineering complicated distributed infrastructure. ", 20)
	got := FleschReadingEase(text)
	assert.Less(t, got, 100.0)
	assert.Greater(t, got, -200.0)
}
