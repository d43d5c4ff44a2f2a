// Package matching fuzzy-matches resume text against the skill
// vocabulary and filters the result for relevance to a job description.
package matching

import (
	"sort"
	"strings"

	"github.com/chhaviambor/resume-improvement-assistant/internal/types"
)

const (
	// candidatePhraseCap bounds the number of ranked phrases considered
	// as match candidates.
	candidatePhraseCap = 80
	// minTokenLen is the minimum length for raw-token candidates.
	minTokenLen = 3
)

// FuzzyMatcher scores string similarity on a 0-100 scale.
type FuzzyMatcher interface {
	Ratio(a, b string) int
}

// KeywordRanker returns the top ranked phrases for a text.
type KeywordRanker interface {
	Rank(text string, limit int) []string
}

// Matcher finds vocabulary skills in free text.
type Matcher struct {
	fuzzy  FuzzyMatcher
	ranker KeywordRanker
}

// NewMatcher creates a Matcher from the given capabilities.
func NewMatcher(fuzzy FuzzyMatcher, ranker KeywordRanker) *Matcher {
	return &Matcher{fuzzy: fuzzy, ranker: ranker}
}

// MatchSkills matches candidate phrases and tokens from text against
// the vocabulary. Candidates are the top ranked phrases unioned with
// raw tokens longer than two characters, first-seen order, duplicates
// removed. Each candidate is scored against its best vocabulary entry;
// matches below fuzzyThreshold are dropped, one match per canonical
// name is kept (highest confidence wins), and the result is sorted by
// confidence descending with stable tie order.
func (m *Matcher) MatchSkills(text string, vocab []string, fuzzyThreshold int) []types.SkillMatch {
	var matches []types.SkillMatch
	for _, cand := range m.buildCandidates(text) {
		name, score := m.bestVocabMatch(cand, vocab)
		if score <= 0 || score < fuzzyThreshold {
			continue
		}
		matches = append(matches, types.SkillMatch{
			Name:          name,
			Confidence:    score,
			MatchedPhrase: cand,
		})
	}

	deduped := dedupeByName(matches)
	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Confidence > deduped[j].Confidence
	})
	return deduped
}

// CrossMatch retains a skill match only when its canonical name or its
// matched phrase is fuzzy-similar to at least one job keyword. This
// second pass answers whether a matched resume skill is relevant to
// this particular job.
func (m *Matcher) CrossMatch(matches []types.SkillMatch, jobKeywords []string, crossThreshold int) []types.SkillMatch {
	var out []types.SkillMatch
	for _, match := range matches {
		name := strings.ToLower(match.Name)
		phrase := strings.ToLower(match.MatchedPhrase)
		for _, jk := range jobKeywords {
			jk = strings.ToLower(jk)
			if m.fuzzy.Ratio(name, jk) >= crossThreshold || m.fuzzy.Ratio(phrase, jk) >= crossThreshold {
				out = append(out, match)
				break
			}
		}
	}
	return out
}

// buildCandidates unions the top ranked phrases with raw tokens,
// preserving first-seen order and dropping duplicates.
func (m *Matcher) buildCandidates(text string) []string {
	seen := make(map[string]bool)
	var out []string

	for _, p := range m.ranker.Rank(text, candidatePhraseCap) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, tok := range strings.Fields(text) {
		tok = strings.ToLower(tok)
		if len(tok) < minTokenLen || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// bestVocabMatch returns the vocabulary entry with the highest fuzzy
// similarity to the candidate. Ties keep the earlier vocabulary entry.
func (m *Matcher) bestVocabMatch(candidate string, vocab []string) (string, int) {
	bestName := ""
	bestScore := 0
	for _, skill := range vocab {
		if score := m.fuzzy.Ratio(candidate, strings.ToLower(skill)); score > bestScore {
			bestName = skill
			bestScore = score
		}
	}
	return bestName, bestScore
}

// dedupeByName keeps the highest-confidence match per canonical name,
// preserving first-seen position.
func dedupeByName(matches []types.SkillMatch) []types.SkillMatch {
	index := make(map[string]int)
	var out []types.SkillMatch
	for _, match := range matches {
		if i, ok := index[match.Name]; ok {
			if match.Confidence > out[i].Confidence {
				out[i] = match
			}
			continue
		}
		index[match.Name] = len(out)
		out = append(out, match)
	}
	return out
}
