// Package types defines the request, response, and domain types shared by
// the scoring engine and its HTTP/CLI surfaces.
package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// Candidate is a caller-supplied candidate record. Unknown JSON fields
// are preserved in Extra so ranked output can echo the caller's object
// untouched.
type Candidate struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	EducationLevel  string   `json:"education_level"`

	Extra map[string]json.RawMessage `json:"-"`
}

// candidateKnownFields are the JSON keys owned by the Candidate struct.
var candidateKnownFields = map[string]bool{
	"skills":           true,
	"experience_years": true,
	"education_level":  true,
}

// UnmarshalJSON decodes the known fields and stashes everything else in
// Extra.
func (c *Candidate) UnmarshalJSON(data []byte) error {
	type alias Candidate
	var known alias
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = Candidate(known)
	for key, value := range raw {
		if candidateKnownFields[key] {
			continue
		}
		if c.Extra == nil {
			c.Extra = make(map[string]json.RawMessage)
		}
		c.Extra[key] = value
	}
	return nil
}

// MarshalJSON re-emits the known fields alongside any preserved extras.
func (c Candidate) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(c.Extra)+3)
	for key, value := range c.Extra {
		out[key] = value
	}

	skills, err := json.Marshal(c.Skills)
	if err != nil {
		return nil, err
	}
	experience, err := json.Marshal(c.ExperienceYears)
	if err != nil {
		return nil, err
	}
	education, err := json.Marshal(c.EducationLevel)
	if err != nil {
		return nil, err
	}
	out["skills"] = skills
	out["experience_years"] = experience
	out["education_level"] = education

	return json.Marshal(out)
}

// JobRequirements describe what the job asks for. The ranking weight
// schedule is a fixed constant of the algorithm, not part of this type.
type JobRequirements struct {
	RequiredSkills []string `json:"required_skills"`
	MinExperience  int      `json:"min_experience"`
	EducationLevel string   `json:"education_level"`
}

// HiringRecord is one historical hiring event. Gender and Age are
// optional; Hired is the outcome.
type HiringRecord struct {
	Gender *string  `json:"gender,omitempty"`
	Age    *float64 `json:"age,omitempty"`
	Hired  bool     `json:"hired"`
}

// AnalyzeResumeRequest is the payload for POST /analyze-resume.
type AnalyzeResumeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// RankCandidatesRequest is the payload for POST /rank-candidates.
type RankCandidatesRequest struct {
	Candidates      []Candidate     `json:"candidates" validate:"required"`
	JobRequirements JobRequirements `json:"job_requirements"`
}

// AnalyzeBiasRequest is the payload for POST /analyze-bias.
type AnalyzeBiasRequest struct {
	HiringData []HiringRecord `json:"hiring_data"`
}

// AnalyzeSentimentRequest is the payload for POST /analyze-sentiment.
type AnalyzeSentimentRequest struct {
	Text    string `json:"text" validate:"required"`
	Context string `json:"context,omitempty"`
}

// Validate validates the AnalyzeResumeRequest using the validator.
func (r *AnalyzeResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RankCandidatesRequest using the validator.
func (r *RankCandidatesRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeSentimentRequest using the validator.
func (r *AnalyzeSentimentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
