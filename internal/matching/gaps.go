package matching

import (
	"strings"
)

const (
	maxStrengths  = 4
	maxWeaknesses = 3
)

// genericStrengths is substituted when the resume and job share no
// extracted skills. The substitution masks a true "no overlap" result,
// so Gaps reports it through the GenericStrengths flag.
var genericStrengths = []string{"Technical expertise", "Problem solving", "Adaptability"}

// Gaps holds the strength/weakness set difference between resume skills
// and job skills.
type Gaps struct {
	Strengths  []string
	Weaknesses []string
	// GenericStrengths is true when Strengths is the generic triple
	// rather than actual skill overlap.
	GenericStrengths bool
}

// AnalyzeGaps set-differences the two extracted skill lists. Strengths
// are skills in both lists (resume order, capped at 4); weaknesses are
// job skills missing from the resume (capped at 3).
func AnalyzeGaps(resumeSkills, jobSkills []string) Gaps {
	jobSet := make(map[string]bool, len(jobSkills))
	for _, s := range jobSkills {
		jobSet[strings.ToLower(s)] = true
	}
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		resumeSet[strings.ToLower(s)] = true
	}

	var strengths []string
	for _, s := range resumeSkills {
		if jobSet[strings.ToLower(s)] {
			strengths = append(strengths, s)
			if len(strengths) == maxStrengths {
				break
			}
		}
	}

	var weaknesses []string
	for _, s := range jobSkills {
		if !resumeSet[strings.ToLower(s)] {
			weaknesses = append(weaknesses, s)
			if len(weaknesses) == maxWeaknesses {
				break
			}
		}
	}

	g := Gaps{Strengths: strengths, Weaknesses: weaknesses}
	if len(g.Strengths) == 0 {
		g.Strengths = append([]string(nil), genericStrengths...)
		g.GenericStrengths = true
	}
	return g
}
