package engine

import (
	"testing"

	"github.com/jonathan/hirescore/internal/catalog"
	"github.com/jonathan/hirescore/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(nil, nil)
	require.NoError(t, err)
	return e
}

func TestAnalyzeResume_FullResult(t *testing.T) {
	e := newTestEngine(t)

	resume := "Senior backend engineer with 6+ years of experience in Python, Docker and AWS."
	job := "Engineer wanted: Python, Kubernetes and AWS. 5+ years of experience required."

	result := e.AnalyzeResume(resume, job)

	assert.Equal(t, 6, result.ExperienceYears)
	assert.Equal(t, []string{"Python", "AWS", "Docker"}, result.KeySkills)
	assert.Equal(t, []string{"Python", "AWS"}, result.Strengths)
	assert.Equal(t, []string{"Kubernetes"}, result.Weaknesses)
	assert.Contains(t, result.Summary, "6 years")
	assert.Contains(t, result.Summary, "engineering role")
	assert.GreaterOrEqual(t, result.MatchScore, 0)
	assert.LessOrEqual(t, result.MatchScore, 95)
	assert.Empty(t, result.Fallbacks)
}

func TestAnalyzeResume_FallbacksRecorded(t *testing.T) {
	e := newTestEngine(t)

	result := e.AnalyzeResume("", "")

	assert.Equal(t, 50, result.MatchScore)
	assert.Equal(t, 3, result.ExperienceYears)
	assert.Equal(t, []string{"Technical expertise", "Problem solving", "Adaptability"}, result.Strengths)
	assert.ElementsMatch(t,
		[]string{FallbackMatchScore, FallbackExperience, FallbackStrengths},
		result.Fallbacks)
	// Even fully degraded results are schema-complete.
	assert.NotNil(t, result.KeySkills)
	assert.NotNil(t, result.Weaknesses)
	assert.NotEmpty(t, result.Summary)
}

func TestAnalyzeResume_Idempotent(t *testing.T) {
	e := newTestEngine(t)

	resume := "Developer, 4 years in Go and SQL"
	job := "Go developer"

	assert.Equal(t, e.AnalyzeResume(resume, job), e.AnalyzeResume(resume, job))
}

func TestAnalyzeResume_CustomCatalog(t *testing.T) {
	c := catalog.New([]string{"Terraform", "Ansible"})
	e, err := New(c, nil)
	require.NoError(t, err)

	result := e.AnalyzeResume("Automated infra with Terraform", "Terraform shop")

	assert.Equal(t, []string{"Terraform"}, result.KeySkills)
}

func TestRankCandidates(t *testing.T) {
	e := newTestEngine(t)

	candidates := []types.Candidate{
		{Skills: []string{"Go"}, ExperienceYears: 1, EducationLevel: "none"},
		{Skills: []string{"Go", "SQL"}, ExperienceYears: 8, EducationLevel: "bachelors"},
	}
	req := types.JobRequirements{
		RequiredSkills: []string{"Go", "SQL"},
		MinExperience:  5,
		EducationLevel: "bachelors",
	}

	result := e.RankCandidates(candidates, req)

	require.Len(t, result.RankedCandidates, 2)
	assert.Equal(t, 100, result.RankedCandidates[0].AIScore)
	assert.Equal(t, 0.4, result.RankingCriteria.SkillsWeight)
}

func TestAnalyzeBias_EmptyInput(t *testing.T) {
	e := newTestEngine(t)

	result := e.AnalyzeBias(nil)

	assert.Equal(t, 0, result.BiasScore)
	assert.Empty(t, result.BiasIndicators)
	assert.Equal(t, []string{"Collect more hiring data for analysis"}, result.Recommendations)
	assert.True(t, result.Fallback)
}

func TestAnalyzeSentiment(t *testing.T) {
	e := newTestEngine(t)

	result := e.AnalyzeSentiment("I am excited and confident about this amazing role?", "platform role")

	assert.Contains(t, []string{"positive", "neutral", "negative"}, result.Sentiment)
	assert.GreaterOrEqual(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 0.95)
	assert.GreaterOrEqual(t, result.EngagementScore, 0)
	assert.LessOrEqual(t, result.EngagementScore, 100)
}

func TestAnalyzeSentiment_Idempotent(t *testing.T) {
	e := newTestEngine(t)

	a := e.AnalyzeSentiment("I believe this is great", "ctx")
	b := e.AnalyzeSentiment("I believe this is great", "ctx")

	assert.Equal(t, a, b)
}
