package schemas

import (
	"testing"

	rootschemas "github.com/jonathan/hirescore/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument_AnalyzeResume(t *testing.T) {
	valid := `{"resume_text":"r","job_description":"j"}`
	assert.NoError(t, ValidateDocument(rootschemas.AnalyzeResume, valid))

	// Unknown top-level fields are ignored, not rejected.
	extra := `{"resume_text":"r","job_description":"j","client_tag":"x"}`
	assert.NoError(t, ValidateDocument(rootschemas.AnalyzeResume, extra))

	missing := `{"resume_text":"r"}`
	err := ValidateDocument(rootschemas.AnalyzeResume, missing)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "job_description")
}

func TestValidateDocument_RankCandidates(t *testing.T) {
	valid := `{"candidates":[{"skills":["Go"],"experience_years":3,"education_level":"bachelors","name":"Ada"}]}`
	assert.NoError(t, ValidateDocument(rootschemas.RankCandidates, valid))

	notArray := `{"candidates":"nope"}`
	assert.Error(t, ValidateDocument(rootschemas.RankCandidates, notArray))

	missing := `{}`
	assert.Error(t, ValidateDocument(rootschemas.RankCandidates, missing))
}

func TestValidateDocument_AnalyzeBias(t *testing.T) {
	valid := `{"hiring_data":[{"gender":"male","age":34,"hired":true},{"hired":false}]}`
	assert.NoError(t, ValidateDocument(rootschemas.AnalyzeBias, valid))

	// hiring_data is optional; an empty document is a legal request.
	assert.NoError(t, ValidateDocument(rootschemas.AnalyzeBias, `{}`))

	// A record without hired is accepted and counts as not hired.
	partialRecord := `{"hiring_data":[{"gender":"male"}]}`
	assert.NoError(t, ValidateDocument(rootschemas.AnalyzeBias, partialRecord))

	badRecord := `{"hiring_data":[{"hired":"yes"}]}`
	assert.Error(t, ValidateDocument(rootschemas.AnalyzeBias, badRecord))
}

func TestValidateDocument_AnalyzeSentiment(t *testing.T) {
	assert.NoError(t, ValidateDocument(rootschemas.AnalyzeSentiment, `{"text":"hi","context":"c"}`))
	assert.Error(t, ValidateDocument(rootschemas.AnalyzeSentiment, `{"context":"c"}`))
	assert.Error(t, ValidateDocument(rootschemas.AnalyzeSentiment, `{"text":""}`))
}

func TestValidateDocument_MalformedJSON(t *testing.T) {
	err := ValidateDocument(rootschemas.AnalyzeResume, `{not json`)
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}
