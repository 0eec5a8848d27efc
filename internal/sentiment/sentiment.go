// Package sentiment scores interview/communication text for polarity,
// emotion keyword ratios, and an engagement heuristic.
package sentiment

import (
	"math"
	"strings"

	"github.com/jonathan/hirescore/internal/types"
	"github.com/jonreiter/govader"
)

const (
	// polarityScale maps the analyzer's compound polarity onto a signed
	// integer score in [-5, 5], matching the confidence formula
	// min(|score|/5, 0.95).
	polarityScale = 5.0
	maxConfidence = 0.95
	// neutralConfidence is the policy default when the polarity score is
	// exactly zero.
	neutralConfidence = 0.5
)

// Emotion keyword families. Tokens are matched whole after punctuation
// trimming; counts feed the ratio triple.
var (
	enthusiasmWords = wordList("excited", "enthusiastic", "passionate", "love", "amazing", "fantastic")
	confidenceWords = wordList("confident", "sure", "certain", "believe", "know", "experienced")
	concernWords    = wordList("concerned", "worried", "unsure", "doubt", "uncertain")
)

func wordList(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// Analyzer bundles the lexical polarity scorer with the emotion and
// engagement heuristics. Safe for concurrent use: the underlying lexicon
// is read-only after construction.
type Analyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer creates a sentiment analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Analyze scores the text and bundles the sentiment label, confidence,
// emotion ratios, and engagement score. context feeds only the
// engagement heuristic and may be empty.
func (a *Analyzer) Analyze(text, context string) types.SentimentReport {
	score := a.polarityScore(text)

	label := "neutral"
	confidence := neutralConfidence
	if score > 0 {
		label = "positive"
		confidence = math.Min(float64(score)/polarityScale, maxConfidence)
	} else if score < 0 {
		label = "negative"
		confidence = math.Min(math.Abs(float64(score))/polarityScale, maxConfidence)
	}

	return types.SentimentReport{
		Sentiment:       label,
		Confidence:      round2(confidence),
		Emotions:        extractEmotions(text),
		EngagementScore: int(math.Round(engagementScore(text, context))),
	}
}

// polarityScore runs the lexical scorer and maps its compound polarity
// ([-1, 1]) to a signed integer in [-5, 5].
func (a *Analyzer) polarityScore(text string) int {
	polarity := a.vader.PolarityScores(text)
	return int(math.Round(polarity.Compound * polarityScale))
}

// extractEmotions counts hits per keyword family and normalizes each
// count by the total across all three families. All-zero counts yield
// all-zero ratios; otherwise the ratios sum to 1.
func extractEmotions(text string) types.Emotions {
	var enthusiasm, confidence, concern int
	for _, token := range strings.Fields(strings.ToLower(text)) {
		word := strings.Trim(token, ".,;:!?\"'()[]{}")
		switch {
		case enthusiasmWords[word]:
			enthusiasm++
		case confidenceWords[word]:
			confidence++
		case concernWords[word]:
			concern++
		}
	}

	total := enthusiasm + confidence + concern
	if total == 0 {
		total = 1
	}

	return types.Emotions{
		Enthusiasm: round2(float64(enthusiasm) / float64(total)),
		Confidence: round2(float64(confidence) / float64(total)),
		Concern:    round2(float64(concern) / float64(total)),
	}
}

// Engagement component weights and saturation points. The heuristic
// conflates keyword stuffing with genuine engagement and offers no
// protection against repeated-word gaming.
const (
	lengthSaturation   = 500.0
	questionSaturation = 3.0
	mentionSaturation  = 5.0
	minContextWordLen  = 4
	lengthWeight       = 30.0
	questionWeight     = 30.0
	mentionWeight      = 40.0
)

// engagementScore combines text length, question density, and contextual
// keyword overlap into a 0-100 composite.
func engagementScore(text, context string) float64 {
	lengthScore := math.Min(float64(len(text))/lengthSaturation, 1.0) * lengthWeight

	questions := strings.Count(text, "?")
	questionScore := math.Min(float64(questions)/questionSaturation, 1.0) * questionWeight

	textLower := strings.ToLower(text)
	mentions := 0
	for _, word := range strings.Split(strings.ToLower(context), " ") {
		if len(word) >= minContextWordLen && strings.Contains(textLower, word) {
			mentions++
		}
	}
	mentionScore := math.Min(float64(mentions)/mentionSaturation, 1.0) * mentionWeight

	return lengthScore + questionScore + mentionScore
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
