// Package schemas embeds the JSON Schemas for the scoring API request
// payloads.
package schemas

import _ "embed"

//go:embed analyze_resume.schema.json
var AnalyzeResume string

//go:embed rank_candidates.schema.json
var RankCandidates string

//go:embed analyze_bias.schema.json
var AnalyzeBias string

//go:embed analyze_sentiment.schema.json
var AnalyzeSentiment string
