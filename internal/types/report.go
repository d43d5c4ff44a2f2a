// Package types defines the data structures shared between pipeline stages.
package types

// SkillMatch records a vocabulary skill found in the resume text.
// At most one SkillMatch exists per canonical skill name; when several
// candidate phrases map to the same skill, the highest-confidence one wins.
type SkillMatch struct {
	// Name is the canonical skill name from the vocabulary.
	Name string `json:"name"`
	// Confidence is the fuzzy similarity on a 0-100 scale. It is always
	// at or above the configured fuzzy threshold.
	Confidence int `json:"confidence"`
	// MatchedPhrase is the resume phrase or token that produced the match.
	MatchedPhrase string `json:"matched_phrase"`
}

// Diagnostics holds every intermediate component of the composite ATS
// score. It is produced once per analysis run and never mutated.
type Diagnostics struct {
	MatchedCount     int     `json:"matched_count"`
	JobKeywordCount  int     `json:"job_keyword_count"`
	BaseKeywordRatio float64 `json:"base_keyword_ratio"`
	HeaderBonus      bool    `json:"header_bonus"`
	LengthScore      float64 `json:"length_score"`
	TfidfSimilarity  float64 `json:"tfidf_similarity"`
	RawFraction      float64 `json:"raw_fraction"`
	ATSScore         int     `json:"ats_score"`
	Explanation      string  `json:"explanation"`
}

// Report is the full output of one analysis run, consumed by the CLI
// printer and the REST API.
type Report struct {
	RunID       string      `json:"run_id"`
	Diagnostics Diagnostics `json:"diagnostics"`

	// MatchedSkills are the skills retained after cross-matching against
	// the job keywords. AllSkills is the pre-cross-match list.
	MatchedSkills []SkillMatch `json:"matched_skills"`
	AllSkills     []SkillMatch `json:"all_skills"`

	// MissingKeywords are job keywords not covered by any matched skill.
	MissingKeywords []string `json:"missing_keywords"`

	Summary     string   `json:"summary"`
	WordCount   int      `json:"word_count"`
	Readability float64  `json:"readability"`
	Similarity  float64  `json:"similarity"`
	JobKeywords []string `json:"job_keywords"`
	Suggestions []string `json:"suggestions"`
}
