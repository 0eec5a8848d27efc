package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchScore_SelfMatchHitsCap(t *testing.T) {
	s := MatchScore("go developer with kubernetes", "go developer with kubernetes")

	assert.Equal(t, 95.0, s.Value)
	assert.False(t, s.Fallback)
}

func TestMatchScore_Symmetric(t *testing.T) {
	a := "senior go engineer building distributed systems"
	b := "we need an engineer who knows go and sql"

	assert.Equal(t, MatchScore(a, b).Value, MatchScore(b, a).Value)
}

func TestMatchScore_PartialOverlap(t *testing.T) {
	// A = {go, sql}, B = {go, java}; intersection 1, union 3.
	s := MatchScore("go sql", "go java")

	assert.InDelta(t, 100.0/3.0, s.Value, 0.0001)
	assert.False(t, s.Fallback)
}

func TestMatchScore_NoOverlap(t *testing.T) {
	s := MatchScore("alpha beta", "gamma delta")

	assert.Equal(t, 0.0, s.Value)
	assert.False(t, s.Fallback)
}

func TestMatchScore_EmptyUnionFallsBack(t *testing.T) {
	s := MatchScore("", "   ")

	assert.Equal(t, 50.0, s.Value)
	assert.True(t, s.Fallback)
}

func TestMatchScore_CasingAndPunctuationAreDistinctTokens(t *testing.T) {
	// "go," and "go" are different tokens; casing is folded.
	withComma := MatchScore("go,", "go")
	assert.Equal(t, 0.0, withComma.Value)

	folded := MatchScore("GO", "go")
	assert.Equal(t, 95.0, folded.Value)
}

func TestMatchScore_RangeProperty(t *testing.T) {
	pairs := [][2]string{
		{"a b c", "c d e"},
		{"x", "x x x"},
		{"", "words here"},
		{"one two", ""},
	}
	for _, p := range pairs {
		s := MatchScore(p[0], p[1])
		assert.GreaterOrEqual(t, s.Value, 0.0)
		assert.LessOrEqual(t, s.Value, 95.0)
	}
}

func TestGenerateSummary_RoleNounPriority(t *testing.T) {
	skills := []string{"Go", "SQL", "Docker", "AWS"}

	// "engineer" wins over "manager" regardless of position in the text.
	s := GenerateSummary(skills, 6, "Hiring manager seeks a software engineer")
	assert.Equal(t,
		"Experienced professional with 6 years in the field. Strong expertise in Go, SQL, Docker. Well-suited for engineering role with relevant technical background and proven track record.",
		s)

	s = GenerateSummary(skills, 6, "web developer wanted")
	assert.Contains(t, s, "development position")

	s = GenerateSummary(skills, 6, "product manager role")
	assert.Contains(t, s, "management role")

	s = GenerateSummary(skills, 6, "data analyst")
	assert.Contains(t, s, "this position")
}

func TestGenerateSummary_NoSkills(t *testing.T) {
	s := GenerateSummary(nil, 3, "any job")

	assert.Contains(t, s, "various technologies")
}

func TestGenerateSummary_TopThreeSkillsOnly(t *testing.T) {
	s := GenerateSummary([]string{"A", "B", "C", "D"}, 1, "")

	assert.Contains(t, s, "A, B, C")
	assert.NotContains(t, s, "D")
}

func TestFallbackSummary(t *testing.T) {
	assert.Equal(t,
		"Professional candidate with 3 years of experience and relevant skills for this position.",
		FallbackSummary(3))
}

func TestAnalyzeGaps_Overlap(t *testing.T) {
	g := AnalyzeGaps(
		[]string{"Python", "SQL", "Docker"},
		[]string{"Python", "Docker", "Kubernetes", "AWS"},
	)

	assert.Equal(t, []string{"Python", "Docker"}, g.Strengths)
	assert.Equal(t, []string{"Kubernetes", "AWS"}, g.Weaknesses)
	assert.False(t, g.GenericStrengths)
}

func TestAnalyzeGaps_Caps(t *testing.T) {
	shared := []string{"A", "B", "C", "D", "E"}
	jobOnly := []string{"V", "W", "X", "Y"}

	g := AnalyzeGaps(shared, append(append([]string{}, shared...), jobOnly...))

	assert.Len(t, g.Strengths, 4)
	assert.Len(t, g.Weaknesses, 3)
}

func TestAnalyzeGaps_GenericStrengthsSubstitution(t *testing.T) {
	g := AnalyzeGaps([]string{"Python"}, []string{"Java", "Spring"})

	assert.Equal(t, []string{"Technical expertise", "Problem solving", "Adaptability"}, g.Strengths)
	assert.True(t, g.GenericStrengths)
	assert.Equal(t, []string{"Java", "Spring"}, g.Weaknesses)
}

func TestAnalyzeGaps_EmptyInputs(t *testing.T) {
	g := AnalyzeGaps(nil, nil)

	assert.True(t, g.GenericStrengths)
	assert.Empty(t, g.Weaknesses)
}
