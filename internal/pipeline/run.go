// Package pipeline orchestrates a full resume analysis run: text
// normalization, keyword extraction, skill matching, similarity
// scoring, aggregation and summarization.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/chhaviambor/resume-improvement-assistant/internal/fuzzy"
	"github.com/chhaviambor/resume-improvement-assistant/internal/keywords"
	"github.com/chhaviambor/resume-improvement-assistant/internal/matching"
	"github.com/chhaviambor/resume-improvement-assistant/internal/scoring"
	"github.com/chhaviambor/resume-improvement-assistant/internal/similarity"
	"github.com/chhaviambor/resume-improvement-assistant/internal/summary"
	"github.com/chhaviambor/resume-improvement-assistant/internal/textnorm"
	"github.com/chhaviambor/resume-improvement-assistant/internal/types"
)

const (
	// headerLines and headerKeywords bound the header-bonus check: any
	// of the top job keywords within the first resume lines.
	headerLines    = 6
	headerKeywords = 6

	// missingShown caps the missing keywords quoted in a suggestion.
	missingShown = 8

	// topKeywordsShown caps the job keywords included in the report.
	topKeywordsShown = 20
)

// Options are the tunables of an analysis run. The fuzzy and cross
// thresholds are independent knobs and must not be conflated.
type Options struct {
	FuzzyThreshold   int
	CrossThreshold   int
	JobKeywordLimit  int
	SummarySentences int
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		FuzzyThreshold:   72,
		CrossThreshold:   75,
		JobKeywordLimit:  40,
		SummarySentences: 2,
	}
}

// KeywordRanker ranks candidate phrases from a text.
type KeywordRanker interface {
	Rank(text string, limit int) []string
}

// VectorSimilarity scores two documents in [0, 1].
type VectorSimilarity interface {
	Score(a, b string) float64
}

// SentenceRanker produces an extractive summary.
type SentenceRanker interface {
	Summarize(text string, sentenceCount int) string
}

// Analyzer runs the analysis pipeline against a fixed skill
// vocabulary. The vocabulary is read-only, so a single Analyzer is
// safe to share across concurrent runs.
type Analyzer struct {
	vocab      []string
	matcher    *matching.Matcher
	ranker     KeywordRanker
	similarity VectorSimilarity
	summarizer SentenceRanker
	opts       Options
}

// New builds an Analyzer with the default algorithm implementations.
func New(vocab []string, opts Options) *Analyzer {
	defaults := DefaultOptions()
	if opts.FuzzyThreshold <= 0 {
		opts.FuzzyThreshold = defaults.FuzzyThreshold
	}
	if opts.CrossThreshold <= 0 {
		opts.CrossThreshold = defaults.CrossThreshold
	}
	if opts.JobKeywordLimit <= 0 {
		opts.JobKeywordLimit = defaults.JobKeywordLimit
	}
	if opts.SummarySentences <= 0 {
		opts.SummarySentences = defaults.SummarySentences
	}

	ranker := keywords.NewRAKE()
	return &Analyzer{
		vocab:      vocab,
		matcher:    matching.NewMatcher(fuzzy.Matcher{}, ranker),
		ranker:     ranker,
		similarity: similarity.NewTFIDF(),
		summarizer: summary.NewLexRank(),
		opts:       opts,
	}
}

// Analyze runs the full pipeline on a resume and a job description.
// It returns an InputError when either text is missing; every
// sub-score failure degrades to a safe default instead of an error.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) (*types.Report, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &InputError{Field: "resume text"}
	}
	if strings.TrimSpace(jobText) == "" {
		return nil, &InputError{Field: "job description"}
	}

	resumeClean := textnorm.Clean(resumeText)
	jobClean := textnorm.Clean(jobText)
	jobKeywords := a.ranker.Rank(jobClean, a.opts.JobKeywordLimit)

	// The summary branch is independent of scoring, so the two run
	// concurrently; neither branch mutates shared state.
	var (
		allSkills   []types.SkillMatch
		matched     []types.SkillMatch
		tfidfSim    float64
		summaryText string
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		allSkills = a.matcher.MatchSkills(resumeClean, a.vocab, a.opts.FuzzyThreshold)
		matched = a.matcher.CrossMatch(allSkills, jobKeywords, a.opts.CrossThreshold)
		tfidfSim = a.similarity.Score(resumeClean, jobClean)
		return nil
	})
	g.Go(func() error {
		summaryText = a.summarizer.Summarize(resumeText, a.opts.SummarySentences)
		return nil
	})
	// both branches degrade internally and never return an error
	_ = g.Wait()

	jobKeywordCount := len(jobKeywords)
	if jobKeywordCount < 1 {
		jobKeywordCount = 1
	}
	wordCount := textnorm.WordCount(resumeClean)
	missing := missingKeywords(jobKeywords, matched)
	headerBonus := headerPresence(resumeText, jobKeywords)

	diagnostics := scoring.Aggregate(len(matched), jobKeywordCount, headerBonus, wordCount, tfidfSim)

	topKeywords := jobKeywords
	if len(topKeywords) > topKeywordsShown {
		topKeywords = topKeywords[:topKeywordsShown]
	}

	return &types.Report{
		RunID:           uuid.NewString(),
		Diagnostics:     diagnostics,
		MatchedSkills:   matched,
		AllSkills:       allSkills,
		MissingKeywords: missing,
		Summary:         summaryText,
		WordCount:       wordCount,
		Readability:     textnorm.FleschReadingEase(resumeClean),
		Similarity:      tfidfSim,
		JobKeywords:     topKeywords,
		Suggestions:     buildSuggestions(resumeText, missing, wordCount),
	}, nil
}

// JobKeywords extracts the top ranked keywords from a job description
// without running the rest of the pipeline.
func (a *Analyzer) JobKeywords(jobText string) ([]string, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, &InputError{Field: "job description"}
	}
	return a.ranker.Rank(textnorm.Clean(jobText), a.opts.JobKeywordLimit), nil
}

// missingKeywords returns the job keywords not covered by any matched
// skill name, case-insensitive.
func missingKeywords(jobKeywords []string, matched []types.SkillMatch) []string {
	covered := make(map[string]bool, len(matched))
	for _, m := range matched {
		covered[strings.ToLower(m.Name)] = true
	}
	var missing []string
	for _, jk := range jobKeywords {
		if !covered[strings.ToLower(jk)] {
			missing = append(missing, jk)
		}
	}
	return missing
}

// headerPresence reports whether any of the top job keywords appears
// in the first lines of the raw resume.
func headerPresence(resumeText string, jobKeywords []string) bool {
	lines := strings.Split(resumeText, "\n")
	if len(lines) > headerLines {
		lines = lines[:headerLines]
	}
	header := strings.ToLower(strings.Join(lines, "\n"))

	top := jobKeywords
	if len(top) > headerKeywords {
		top = top[:headerKeywords]
	}
	for _, jk := range top {
		if strings.Contains(header, strings.ToLower(jk)) {
			return true
		}
	}
	return false
}

// buildSuggestions generates the rule-based improvement advice, in a
// fixed order so identical inputs yield identical reports.
func buildSuggestions(resumeText string, missing []string, wordCount int) []string {
	var suggestions []string
	if len(missing) > 0 {
		shown := missing
		if len(shown) > missingShown {
			shown = shown[:missingShown]
		}
		suggestions = append(suggestions,
			"Consider adding top missing keywords in summary/top lines: "+strings.Join(shown, ", "))
	}
	if wordCount < 80 {
		suggestions = append(suggestions,
			fmt.Sprintf("Resume is short (<80 words, currently %d). Add project details and achievements.", wordCount))
	}
	if !strings.Contains(resumeText, "%") && !strings.Contains(strings.ToLower(resumeText), "percent") {
		suggestions = append(suggestions,
			"Quantify achievements where possible (e.g., 'reduced time by 30%').")
	}
	suggestions = append(suggestions,
		"Place most important keywords in the first 3 lines (summary/header).")
	return suggestions
}
