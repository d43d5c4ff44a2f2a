// Package scoring combines sub-scores into the composite ATS
// compatibility score with explainable diagnostics.
package scoring

import (
	"fmt"
	"math"

	"github.com/chhaviambor/resume-improvement-assistant/internal/types"
)

// Fixed design weights; they sum to 1.0 so the raw fraction stays in
// [0, 1] whenever every component does.
const (
	weightKeywords = 0.60
	weightHeader   = 0.15
	weightLength   = 0.10
	weightTfidf    = 0.15
)

// Word-count tiers for the length sub-score.
const (
	shortResumeWords    = 80
	adequateResumeWords = 200
)

// Aggregate computes the weighted ATS score from the matched-keyword
// ratio, header-keyword presence, resume length tier and TF-IDF
// similarity. It is a pure function: identical inputs always produce
// identical Diagnostics, including the explanation string.
func Aggregate(matchedCount, jobKeywordCount int, headerBonus bool, resumeWordCount int, tfidfSim float64) types.Diagnostics {
	baseRatio := 0.0
	if jobKeywordCount > 0 {
		baseRatio = float64(matchedCount) / float64(jobKeywordCount)
	}

	headerScore := 0.0
	if headerBonus {
		headerScore = 1.0
	}

	lengthScore := lengthTier(resumeWordCount)

	raw := weightKeywords*baseRatio +
		weightHeader*headerScore +
		weightLength*lengthScore +
		weightTfidf*tfidfSim

	score := int(math.Round(raw * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	explanation := fmt.Sprintf(
		"Keywords %d/%d => ratio %.2f; header_bonus=%t; length_score=%.1f; tfidf=%.3f",
		matchedCount, jobKeywordCount, baseRatio, headerBonus, lengthScore, tfidfSim,
	)

	return types.Diagnostics{
		MatchedCount:     matchedCount,
		JobKeywordCount:  jobKeywordCount,
		BaseKeywordRatio: round(baseRatio, 3),
		HeaderBonus:      headerBonus,
		LengthScore:      lengthScore,
		TfidfSimilarity:  round(tfidfSim, 4),
		RawFraction:      round(raw, 4),
		ATSScore:         score,
		Explanation:      explanation,
	}
}

// lengthTier maps the resume word count onto a discrete adequacy
// score: 0.0 below 80 words, 0.5 up to 200, 1.0 beyond.
func lengthTier(words int) float64 {
	switch {
	case words < shortResumeWords:
		return 0.0
	case words < adequateResumeWords:
		return 0.5
	default:
		return 1.0
	}
}

func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
