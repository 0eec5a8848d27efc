// Package catalog provides the fixed skill vocabulary used by all extractors.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// defaultSkills is the reference vocabulary. Order matters: extraction
// results are reported in catalog order, so reordering this list changes
// observable output.
var defaultSkills = []string{
	"Python", "JavaScript", "Java", "React", "Node.js", "SQL", "AWS", "Docker",
	"Kubernetes", "Machine Learning", "Data Science", "Project Management",
	"Leadership", "Communication", "Problem Solving", "Teamwork", "Git",
	"HTML", "CSS", "TypeScript", "Angular", "Vue", "MongoDB", "PostgreSQL",
	"C++", "C#", ".NET", "Spring", "Django", "Flask", "Redis", "GraphQL",
}

// Catalog is an immutable, ordered list of known skill names.
// It is built once at startup and shared by all components; nothing
// mutates it after construction, so concurrent reads need no locking.
type Catalog struct {
	skills []string
	lower  []string
}

// New builds a catalog from the given skill names, preserving order.
// Empty and duplicate entries (case-insensitive) are dropped.
func New(skills []string) *Catalog {
	c := &Catalog{
		skills: make([]string, 0, len(skills)),
		lower:  make([]string, 0, len(skills)),
	}
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		name := strings.TrimSpace(s)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		c.skills = append(c.skills, name)
		c.lower = append(c.lower, key)
	}
	return c
}

// Default returns the reference catalog.
func Default() *Catalog {
	return New(defaultSkills)
}

// LoadFile reads a catalog from a JSON file containing an array of skill
// names. The file order becomes the catalog order.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var skills []string
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	if len(skills) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no skills", path)
	}

	return New(skills), nil
}

// Len returns the number of skills in the catalog.
func (c *Catalog) Len() int {
	return len(c.skills)
}

// Skills returns a copy of the catalog entries in order.
func (c *Catalog) Skills() []string {
	out := make([]string, len(c.skills))
	copy(out, c.skills)
	return out
}

// Contains reports whether name is a catalog entry (case-insensitive).
func (c *Catalog) Contains(name string) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, l := range c.lower {
		if l == key {
			return true
		}
	}
	return false
}

// MatchText returns the catalog entries whose lowercase form appears as a
// substring of the lowercased text, in catalog order.
func (c *Catalog) MatchText(text string) []string {
	textLower := strings.ToLower(text)

	var found []string
	for i, l := range c.lower {
		if strings.Contains(textLower, l) {
			found = append(found, c.skills[i])
		}
	}
	return found
}
