package matching

import (
	"fmt"
	"strings"
)

// roleNouns maps job-description keywords to the role phrasing used in
// summaries. Checked in order; the first hit wins.
var roleNouns = []struct {
	keyword string
	noun    string
}{
	{"engineer", "engineering role"},
	{"developer", "development position"},
	{"manager", "management role"},
}

const genericRoleNoun = "this position"

// GenerateSummary renders a fixed-template synopsis from the extracted
// skills, the experience years, and a role noun picked by substring
// search over the job description. It is a deterministic template, not
// generative text.
func GenerateSummary(skills []string, experienceYears int, jobDescription string) string {
	topSkills := "various technologies"
	if len(skills) > 0 {
		n := min(len(skills), 3)
		topSkills = strings.Join(skills[:n], ", ")
	}

	jobTitle := genericRoleNoun
	jobLower := strings.ToLower(jobDescription)
	for _, rn := range roleNouns {
		if strings.Contains(jobLower, rn.keyword) {
			jobTitle = rn.noun
			break
		}
	}

	return fmt.Sprintf(
		"Experienced professional with %d years in the field. Strong expertise in %s. Well-suited for %s with relevant technical background and proven track record.",
		experienceYears, topSkills, jobTitle)
}

// FallbackSummary is the generic sentence substituted when summary
// composition fails.
func FallbackSummary(experienceYears int) string {
	return fmt.Sprintf(
		"Professional candidate with %d years of experience and relevant skills for this position.",
		experienceYears)
}
