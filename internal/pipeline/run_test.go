package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chhaviambor/resume-improvement-assistant/internal/types"
)

const testResume = `Python Developer
Experienced python developer with 5 years experience in machine learning and sql.
Built data pipelines that reduced processing time by 40%.
Led migration of reporting workloads to postgresql.
Mentored junior engineers and ran weekly design reviews.
Shipped production services used by millions of customers.`

const testJob = "Looking for Python and SQL engineer to build data products."

func testVocabulary() []string {
	return []string{"python", "sql", "machine learning", "postgresql"}
}

func TestAnalyze_MissingResume(t *testing.T) {
	a := New(testVocabulary(), DefaultOptions())
	_, err := a.Analyze(context.Background(), "", testJob)
	require.Error(t, err)
	var ie *InputError
	assert.ErrorAs(t, err, &ie)
}

func TestAnalyze_MissingJob(t *testing.T) {
	a := New(testVocabulary(), DefaultOptions())
	_, err := a.Analyze(context.Background(), testResume, "   ")
	require.Error(t, err)
	var ie *InputError
	assert.ErrorAs(t, err, &ie)
}

func TestAnalyze_FullReport(t *testing.T) {
	a := New(testVocabulary(), DefaultOptions())
	report, err := a.Analyze(context.Background(), testResume, testJob)
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.NotEmpty(t, report.JobKeywords)
	assert.NotEmpty(t, report.Summary)
	assert.Greater(t, report.WordCount, 0)
	assert.GreaterOrEqual(t, report.Diagnostics.ATSScore, 0)
	assert.LessOrEqual(t, report.Diagnostics.ATSScore, 100)
	assert.NotEmpty(t, report.Suggestions)
}

func TestAnalyze_SkillScenario(t *testing.T) {
	a := New([]string{"python", "sql", "machine learning"}, DefaultOptions())
	resume := "Python developer with 5 years experience in machine learning and SQL"
	job := "Looking for Python and SQL engineer"

	report, err := a.Analyze(context.Background(), resume, job)
	require.NoError(t, err)

	byName := make(map[string]types.SkillMatch)
	for _, m := range report.AllSkills {
		byName[m.Name] = m
	}
	require.Contains(t, byName, "python")
	require.Contains(t, byName, "sql")
	assert.Equal(t, 100, byName["python"].Confidence)
	assert.Equal(t, 100, byName["sql"].Confidence)

	for _, missing := range report.MissingKeywords {
		assert.NotEqual(t, "python", strings.ToLower(missing))
		assert.NotEqual(t, "sql", strings.ToLower(missing))
	}
}

func TestAnalyze_HeaderBonusDetected(t *testing.T) {
	a := New(testVocabulary(), DefaultOptions())
	// "python" ranks among the top job keywords and appears in the
	// first line of the resume
	report, err := a.Analyze(context.Background(), testResume, testJob)
	require.NoError(t, err)
	assert.True(t, report.Diagnostics.HeaderBonus)
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := New(testVocabulary(), DefaultOptions())
	first, err := a.Analyze(context.Background(), testResume, testJob)
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), testResume, testJob)
	require.NoError(t, err)

	// run IDs differ; everything else must be identical
	assert.Equal(t, first.Diagnostics, second.Diagnostics)
	assert.Equal(t, first.MatchedSkills, second.MatchedSkills)
	assert.Equal(t, first.MissingKeywords, second.MissingKeywords)
	assert.Equal(t, first.Suggestions, second.Suggestions)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestAnalyze_QuantifiedAchievementSuppressesSuggestion(t *testing.T) {
	a := New(testVocabulary(), DefaultOptions())
	report, err := a.Analyze(context.Background(), testResume, testJob)
	require.NoError(t, err)

	for _, s := range report.Suggestions {
		assert.NotContains(t, s, "Quantify achievements")
	}
}

func TestAnalyze_ShortResumeSuggestion(t *testing.T) {
	a := New(testVocabulary(), DefaultOptions())
	report, err := a.Analyze(context.Background(), "Python developer.", testJob)
	require.NoError(t, err)

	found := false
	for _, s := range report.Suggestions {
		if strings.Contains(s, "Resume is short") {
			found = true
		}
	}
	assert.True(t, found)
	assert.Equal(t, 0.0, report.Diagnostics.LengthScore)
}

func TestMissingKeywords_CaseInsensitive(t *testing.T) {
	matched := []types.SkillMatch{{Name: "Python", Confidence: 100, MatchedPhrase: "python"}}
	missing := missingKeywords([]string{"PYTHON", "sql engineer"}, matched)
	assert.Equal(t, []string{"sql engineer"}, missing)
}

func TestHeaderPresence(t *testing.T) {
	resume := "Senior Python Developer\nBerlin\n\nProfile:\nBackend work.\nMore.\npython hidden far below"
	assert.True(t, headerPresence(resume, []string{"python"}))
	assert.False(t, headerPresence("line1\nline2", []string{"python"}))
	assert.False(t, headerPresence(resume, nil))
}

func TestHeaderPresence_WindowLimitedToSixLines(t *testing.T) {
	resume := "a\nb\nc\nd\ne\nf\npython"
	assert.False(t, headerPresence(resume, []string{"python"}))
}

func TestHeaderPresence_OnlyTopSixKeywordsCount(t *testing.T) {
	resume := "golang services\nmore text"
	jobKeywords := []string{"kw1", "kw2", "kw3", "kw4", "kw5", "kw6", "golang"}
	// "golang" is the seventh keyword and must not trigger the bonus
	assert.False(t, headerPresence(resume, jobKeywords))
}

func TestBuildSuggestions_AlwaysEndsWithPlacementAdvice(t *testing.T) {
	got := buildSuggestions("resume text", nil, 500)
	require.NotEmpty(t, got)
	assert.Contains(t, got[len(got)-1], "first 3 lines")
}

func TestBuildSuggestions_MissingKeywordsCapped(t *testing.T) {
	missing := []string{"k1", "k2", "k3", "k4", "k5", "k6", "k7", "k8", "k9", "k10"}
	got := buildSuggestions("text", missing, 500)
	assert.Contains(t, got[0], "k8")
	assert.NotContains(t, got[0], "k9")
}