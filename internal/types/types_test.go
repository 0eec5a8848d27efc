package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidate_UnmarshalPreservesExtras(t *testing.T) {
	raw := `{"name":"Ada","skills":["Go"],"experience_years":5,"education_level":"masters","notes":{"referral":true}}`

	var c Candidate
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	assert.Equal(t, []string{"Go"}, c.Skills)
	assert.Equal(t, 5, c.ExperienceYears)
	assert.Equal(t, "masters", c.EducationLevel)
	assert.JSONEq(t, `"Ada"`, string(c.Extra["name"]))
	assert.JSONEq(t, `{"referral":true}`, string(c.Extra["notes"]))
	assert.NotContains(t, c.Extra, "skills")
}

func TestCandidate_MarshalRoundTrip(t *testing.T) {
	raw := `{"name":"Ada","skills":["Go"],"experience_years":5,"education_level":"masters"}`

	var c Candidate
	require.NoError(t, json.Unmarshal([]byte(raw), &c))

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestRankedCandidate_MarshalMergesScore(t *testing.T) {
	var c Candidate
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c1","skills":["Go"],"experience_years":2,"education_level":"bachelors"}`), &c))

	out, err := json.Marshal(RankedCandidate{Candidate: c, AIScore: 87})
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"id":"c1","skills":["Go"],"experience_years":2,"education_level":"bachelors","ai_score":87}`,
		string(out))
}

func TestAnalyzeResumeRequest_Validate(t *testing.T) {
	req := &AnalyzeResumeRequest{}
	assert.Error(t, req.Validate())

	req = &AnalyzeResumeRequest{ResumeText: "r", JobDescription: "j"}
	assert.NoError(t, req.Validate())

	req = &AnalyzeResumeRequest{ResumeText: "r"}
	assert.Error(t, req.Validate())
}

func TestRankCandidatesRequest_Validate(t *testing.T) {
	req := &RankCandidatesRequest{}
	assert.Error(t, req.Validate())

	req = &RankCandidatesRequest{Candidates: []Candidate{{}}}
	assert.NoError(t, req.Validate())
}

func TestAnalyzeSentimentRequest_Validate(t *testing.T) {
	req := &AnalyzeSentimentRequest{}
	assert.Error(t, req.Validate())

	req = &AnalyzeSentimentRequest{Text: "hello"}
	assert.NoError(t, req.Validate())
}

func TestHiringRecord_OptionalFields(t *testing.T) {
	var r HiringRecord
	require.NoError(t, json.Unmarshal([]byte(`{"hired":true}`), &r))

	assert.Nil(t, r.Gender)
	assert.Nil(t, r.Age)
	assert.True(t, r.Hired)
}
