package extraction

import (
	"regexp"
	"strconv"
)

// DefaultExperienceYears is returned when no pattern matches. It is a
// policy constant, not a measurement; callers can tell the two apart via
// the found flag on ExtractExperience.
const DefaultExperienceYears = 3

// experiencePatterns are tried in priority order; the first match wins.
// The bare "<N> years" fallback comes last because it fires on unrelated
// numbers (e.g. "2020 years" in malformed text).
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*in`),
	regexp.MustCompile(`(?i)experience\s*:\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\s*years?`),
}

// ExtractExperience applies the year patterns in priority order and
// returns the integer from the first match. When nothing matches it
// returns (DefaultExperienceYears, false).
func ExtractExperience(text string) (years int, found bool) {
	for _, pattern := range experiencePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// Digits too large for an int; treat as no match.
			continue
		}
		return n, true
	}
	return DefaultExperienceYears, false
}
