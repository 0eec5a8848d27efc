package ranking

import (
	"testing"

	"github.com/jonathan/hirescore/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScoreCandidate_PerfectMatch(t *testing.T) {
	candidate := &types.Candidate{
		Skills:          []string{"Go", "SQL"},
		ExperienceYears: 5,
		EducationLevel:  "bachelors",
	}
	req := &types.JobRequirements{
		RequiredSkills: []string{"go", "sql"},
		MinExperience:  5,
		EducationLevel: "bachelors",
	}

	assert.Equal(t, 100.0, scoreCandidate(candidate, req))
}

func TestScoreCandidate_NoSignals(t *testing.T) {
	candidate := &types.Candidate{}
	req := &types.JobRequirements{
		RequiredSkills: []string{"Go"},
		MinExperience:  5,
		EducationLevel: "masters",
	}

	// 0 skills + 0 experience + 10 education mismatch + 10 cultural fit.
	assert.Equal(t, 20.0, scoreCandidate(candidate, req))
}

func TestComputeSkillsScore_CaseInsensitiveEquality(t *testing.T) {
	candidate := &types.Candidate{Skills: []string{"PYTHON", "docker", "Rust"}}
	req := &types.JobRequirements{RequiredSkills: []string{"Python", "Docker", "Go", "SQL"}}

	// 2 of 4 required matched.
	assert.InDelta(t, 20.0, computeSkillsScore(candidate, req), 0.0001)
}

func TestComputeSkillsScore_NoRequiredSkills(t *testing.T) {
	candidate := &types.Candidate{Skills: []string{"Go"}}
	req := &types.JobRequirements{}

	assert.Equal(t, 0.0, computeSkillsScore(candidate, req))
}

func TestComputeExperienceScore(t *testing.T) {
	req := &types.JobRequirements{MinExperience: 4}

	assert.Equal(t, 15.0, computeExperienceScore(&types.Candidate{ExperienceYears: 2}, req))
	assert.Equal(t, 30.0, computeExperienceScore(&types.Candidate{ExperienceYears: 4}, req))
	// Exceeding the minimum earns no extra credit.
	assert.Equal(t, 30.0, computeExperienceScore(&types.Candidate{ExperienceYears: 9}, req))
	// No minimum means no contribution.
	assert.Equal(t, 0.0, computeExperienceScore(&types.Candidate{ExperienceYears: 9}, &types.JobRequirements{}))
}

func TestComputeEducationScore(t *testing.T) {
	req := &types.JobRequirements{EducationLevel: "masters"}

	assert.Equal(t, 20.0, computeEducationScore(&types.Candidate{EducationLevel: "masters"}, req))
	// Mismatch (including missing data) earns the half-credit policy default.
	assert.Equal(t, 10.0, computeEducationScore(&types.Candidate{EducationLevel: "bachelors"}, req))
	assert.Equal(t, 10.0, computeEducationScore(&types.Candidate{}, req))
	// Education matching is exact, not case-folded.
	assert.Equal(t, 10.0, computeEducationScore(&types.Candidate{EducationLevel: "Masters"}, req))
	// Two empty levels compare equal and earn full credit.
	assert.Equal(t, 20.0, computeEducationScore(&types.Candidate{}, &types.JobRequirements{}))
}

func TestScoreCandidate_CappedAt100(t *testing.T) {
	candidate := &types.Candidate{
		Skills:          []string{"Go"},
		ExperienceYears: 10,
		EducationLevel:  "phd",
	}
	req := &types.JobRequirements{
		RequiredSkills: []string{"Go"},
		MinExperience:  1,
		EducationLevel: "phd",
	}

	assert.LessOrEqual(t, scoreCandidate(candidate, req), 100.0)
}
