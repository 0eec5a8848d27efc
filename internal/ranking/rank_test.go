package ranking

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/hirescore/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCandidates_DescendingOrder(t *testing.T) {
	candidates := []types.Candidate{
		{Skills: nil, ExperienceYears: 0, EducationLevel: "none"},
		{Skills: []string{"Go", "SQL"}, ExperienceYears: 5, EducationLevel: "bachelors"},
		{Skills: []string{"Go"}, ExperienceYears: 2, EducationLevel: "bachelors"},
	}
	req := types.JobRequirements{
		RequiredSkills: []string{"Go", "SQL"},
		MinExperience:  5,
		EducationLevel: "bachelors",
	}

	result := RankCandidates(candidates, req)

	require.Len(t, result.RankedCandidates, 3)
	assert.Equal(t, 100, result.RankedCandidates[0].AIScore)
	for i := 1; i < len(result.RankedCandidates); i++ {
		assert.GreaterOrEqual(t,
			result.RankedCandidates[i-1].AIScore,
			result.RankedCandidates[i].AIScore)
	}
}

func TestRankCandidates_StableOnTies(t *testing.T) {
	// Identical candidates tie; input order must survive the sort.
	first, _ := json.Marshal("first")
	second, _ := json.Marshal("second")
	candidates := []types.Candidate{
		{ExperienceYears: 1, Extra: map[string]json.RawMessage{"id": first}},
		{ExperienceYears: 1, Extra: map[string]json.RawMessage{"id": second}},
	}

	result := RankCandidates(candidates, types.JobRequirements{MinExperience: 2})

	assert.JSONEq(t, `"first"`, string(result.RankedCandidates[0].Extra["id"]))
	assert.JSONEq(t, `"second"`, string(result.RankedCandidates[1].Extra["id"]))
}

func TestRankCandidates_CriteriaReported(t *testing.T) {
	result := RankCandidates(nil, types.JobRequirements{})

	assert.Equal(t, types.RankingCriteria{
		SkillsWeight:      0.4,
		ExperienceWeight:  0.3,
		EducationWeight:   0.2,
		CulturalFitWeight: 0.1,
	}, result.RankingCriteria)
	assert.Empty(t, result.RankedCandidates)
}

func TestRankCandidates_Deterministic(t *testing.T) {
	candidates := make([]types.Candidate, 50)
	for i := range candidates {
		candidates[i] = types.Candidate{ExperienceYears: i % 7, EducationLevel: "bachelors"}
	}
	req := types.JobRequirements{MinExperience: 6, EducationLevel: "bachelors"}

	a := RankCandidates(candidates, req)
	b := RankCandidates(candidates, req)

	assert.Equal(t, a, b)
}

func TestRankCandidates_ScoreRounded(t *testing.T) {
	// 1/3 of required skills: 40/3 = 13.33 + 10 edu mismatch + 10 cultural = 33.33 → 33.
	candidates := []types.Candidate{{Skills: []string{"Go"}}}
	req := types.JobRequirements{RequiredSkills: []string{"Go", "SQL", "AWS"}, EducationLevel: "masters"}

	result := RankCandidates(candidates, req)

	assert.Equal(t, 33, result.RankedCandidates[0].AIScore)
}

func TestRankCandidates_EmptyEducationLevelsMatch(t *testing.T) {
	// Neither side states an education level; empty compares equal to
	// empty, earning full education credit: 40/3 + 20 + 10 = 43.33 → 43.
	candidates := []types.Candidate{{Skills: []string{"Go"}}}
	req := types.JobRequirements{RequiredSkills: []string{"Go", "SQL", "AWS"}}

	result := RankCandidates(candidates, req)

	assert.Equal(t, 43, result.RankedCandidates[0].AIScore)
}
