package types

import "encoding/json"

// marshalWithScore renders a candidate object with an ai_score field
// merged in.
func marshalWithScore(c Candidate, score int) ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return nil, err
	}
	out["ai_score"] = scoreJSON
	return json.Marshal(out)
}

// ResumeAnalysis is the result of the resume-analysis operation.
// Fallbacks records which components degraded to their neutral defaults;
// it is diagnostic only and never serialized to callers.
type ResumeAnalysis struct {
	MatchScore      int      `json:"match_score"`
	KeySkills       []string `json:"key_skills"`
	ExperienceYears int      `json:"experience_years"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Summary         string   `json:"summary"`

	Fallbacks []string `json:"-"`
}

// RankedCandidate is a caller candidate annotated with its fit score.
type RankedCandidate struct {
	Candidate
	AIScore int `json:"ai_score"`
}

// MarshalJSON merges the candidate's fields (including preserved extras)
// with the ai_score annotation.
func (rc RankedCandidate) MarshalJSON() ([]byte, error) {
	return marshalWithScore(rc.Candidate, rc.AIScore)
}

// RankingCriteria is the fixed weight schedule reported alongside every
// ranking so callers can audit the formula.
type RankingCriteria struct {
	SkillsWeight      float64 `json:"skills_weight"`
	ExperienceWeight  float64 `json:"experience_weight"`
	EducationWeight   float64 `json:"education_weight"`
	CulturalFitWeight float64 `json:"cultural_fit_weight"`
}

// RankingResult is the result of the candidate-ranking operation.
type RankingResult struct {
	RankedCandidates []RankedCandidate `json:"ranked_candidates"`
	RankingCriteria  RankingCriteria   `json:"ranking_criteria"`
}

// BiasIndicator holds per-group hire rates and their population variance
// for one grouping dimension.
type BiasIndicator struct {
	HireRates map[string]float64 `json:"hire_rates"`
	Variance  float64            `json:"variance"`
}

// BiasReport is the result of the bias-analysis operation.
type BiasReport struct {
	BiasScore       int                      `json:"bias_score"`
	BiasIndicators  map[string]BiasIndicator `json:"bias_indicators"`
	Recommendations []string                 `json:"recommendations"`

	Fallback bool `json:"-"`
}

// Emotions is the enthusiasm/confidence/concern ratio triple. The ratios
// sum to 1 unless every keyword family had zero hits, in which case all
// three are 0.
type Emotions struct {
	Enthusiasm float64 `json:"enthusiasm"`
	Confidence float64 `json:"confidence"`
	Concern    float64 `json:"concern"`
}

// SentimentReport is the result of the sentiment-analysis operation.
type SentimentReport struct {
	Sentiment       string   `json:"sentiment"`
	Confidence      float64  `json:"confidence"`
	Emotions        Emotions `json:"emotions"`
	EngagementScore int      `json:"engagement_score"`

	Fallback bool `json:"-"`
}
