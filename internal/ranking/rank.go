package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/hirescore/internal/types"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentScores bounds the scoring workers for large candidate
// lists. Scoring is pure, so the only cost is CPU.
const maxConcurrentScores = 8

// Criteria returns the fixed weight schedule as fractions of 1.
func Criteria() types.RankingCriteria {
	return types.RankingCriteria{
		SkillsWeight:      skillsWeight / 100,
		ExperienceWeight:  experienceWeight / 100,
		EducationWeight:   educationWeight / 100,
		CulturalFitWeight: culturalFitWeight / 100,
	}
}

// RankCandidates scores every candidate against the requirements and
// returns them sorted by descending score. The sort is stable: ties keep
// their input order. Scoring runs concurrently but writes by index, so
// results are deterministic.
func RankCandidates(candidates []types.Candidate, req types.JobRequirements) types.RankingResult {
	ranked := make([]types.RankedCandidate, len(candidates))

	var g errgroup.Group
	g.SetLimit(maxConcurrentScores)
	for i := range candidates {
		g.Go(func() error {
			score := scoreCandidate(&candidates[i], &req)
			ranked[i] = types.RankedCandidate{
				Candidate: candidates[i],
				AIScore:   int(math.Round(score)),
			}
			return nil
		})
	}
	// Workers never return errors; Wait is just the join point.
	_ = g.Wait()

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AIScore > ranked[j].AIScore
	})

	return types.RankingResult{
		RankedCandidates: ranked,
		RankingCriteria:  Criteria(),
	}
}
