// Package extraction pulls structured signals (skills, experience years)
// out of free-form resume and job-description text.
package extraction

import (
	"github.com/jonathan/hirescore/internal/catalog"
)

// MaxSkills caps how many skills a single extraction reports.
const MaxSkills = 8

// SkillExtractor scans free text for known skills from an injected catalog.
type SkillExtractor struct {
	catalog *catalog.Catalog
}

// NewSkillExtractor creates a skill extractor over the given catalog.
func NewSkillExtractor(c *catalog.Catalog) *SkillExtractor {
	return &SkillExtractor{catalog: c}
}

// Extract returns up to MaxSkills catalog entries found in the text, in
// catalog order. Matching is case-insensitive substring matching; no
// fuzzy or partial-word logic.
func (e *SkillExtractor) Extract(text string) []string {
	found := e.catalog.MatchText(text)
	if len(found) > MaxSkills {
		found = found[:MaxSkills]
	}
	return found
}
