// Package matching compares resume text against job-description text:
// lexical overlap scoring, summary generation, and strength/weakness
// analysis.
package matching

import (
	"strings"
)

const (
	// matchScoreCap keeps the overlap score strictly heuristic: even a
	// verbatim copy of the job description never reads as a perfect match.
	matchScoreCap = 95.0
	// neutralMatchScore is the fallback when no comparison is possible.
	neutralMatchScore = 50.0
)

// Score is a match score with an explicit fallback marker. Fallback is
// true when the value is the neutral default rather than a measured
// overlap.
type Score struct {
	Value    float64
	Fallback bool
}

// MatchScore computes a Jaccard-style overlap between the two texts:
// each is tokenized by whitespace into a set of lowercase words, and the
// score is |A∩B| / |A∪B| * 100, capped at matchScoreCap. An empty union
// yields the neutral default. Symmetric and deterministic; no stemming
// or stopword removal, so punctuation and casing variants are distinct
// tokens.
func MatchScore(resumeText, jobDescription string) Score {
	resumeWords := wordSet(resumeText)
	jobWords := wordSet(jobDescription)

	union := len(resumeWords)
	intersection := 0
	for w := range jobWords {
		if resumeWords[w] {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return Score{Value: neutralMatchScore, Fallback: true}
	}

	similarity := float64(intersection) / float64(union) * 100
	if similarity > matchScoreCap {
		similarity = matchScoreCap
	}
	return Score{Value: similarity}
}

// wordSet tokenizes text by whitespace into a set of lowercase words.
func wordSet(text string) map[string]bool {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
