// Package ranking computes weighted multi-factor fit scores for
// candidates against job requirements and orders candidate lists by
// that score.
package ranking

import (
	"strings"

	"github.com/jonathan/hirescore/internal/types"
)

// Weight schedule for scoring components, in points out of 100. The
// schedule is a fixed constant of the algorithm and is reported back to
// callers verbatim.
const (
	skillsWeight      = 40.0
	experienceWeight  = 30.0
	educationWeight   = 20.0
	culturalFitWeight = 10.0
)

// Policy constants, not measured signals: any education mismatch still
// earns half credit, and cultural fit is a flat placeholder because no
// cultural-fit signal is consumed.
const (
	educationMismatchPoints = 10.0
	culturalFitPoints       = culturalFitWeight
)

// computeSkillsScore awards up to skillsWeight points for the fraction of
// required skills the candidate matches (case-insensitive equality, no
// substring logic). No required skills means no skills contribution.
func computeSkillsScore(candidate *types.Candidate, req *types.JobRequirements) float64 {
	if len(req.RequiredSkills) == 0 {
		return 0
	}

	required := make(map[string]bool, len(req.RequiredSkills))
	for _, s := range req.RequiredSkills {
		required[strings.ToLower(s)] = true
	}

	matched := 0
	for _, s := range candidate.Skills {
		if required[strings.ToLower(s)] {
			matched++
		}
	}

	return float64(matched) / float64(len(req.RequiredSkills)) * skillsWeight
}

// computeExperienceScore awards up to experienceWeight points for the
// candidate's years relative to the minimum, capped at full credit.
// A job with no minimum contributes nothing.
func computeExperienceScore(candidate *types.Candidate, req *types.JobRequirements) float64 {
	if req.MinExperience <= 0 {
		return 0
	}

	ratio := float64(candidate.ExperienceYears) / float64(req.MinExperience)
	if ratio > 1.0 {
		ratio = 1.0
	}
	return ratio * experienceWeight
}

// computeEducationScore awards full credit for an exact education-level
// match and half credit otherwise, including when either side is empty.
func computeEducationScore(candidate *types.Candidate, req *types.JobRequirements) float64 {
	if candidate.EducationLevel == req.EducationLevel {
		return educationWeight
	}
	return educationMismatchPoints
}

// scoreCandidate computes the total fit score in [0, 100].
func scoreCandidate(candidate *types.Candidate, req *types.JobRequirements) float64 {
	score := computeSkillsScore(candidate, req) +
		computeExperienceScore(candidate, req) +
		computeEducationScore(candidate, req) +
		culturalFitPoints

	if score > 100 {
		score = 100
	}
	return score
}
