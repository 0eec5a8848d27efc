// Package engine exposes the public scoring operations: resume analysis,
// candidate ranking, bias analysis, and sentiment analysis. Each
// operation is a pure function of its inputs plus the injected catalog
// and policy constants; there is no state shared across calls.
package engine

import (
	"fmt"
	"math"

	"github.com/jonathan/hirescore/internal/bias"
	"github.com/jonathan/hirescore/internal/catalog"
	"github.com/jonathan/hirescore/internal/extraction"
	"github.com/jonathan/hirescore/internal/matching"
	"github.com/jonathan/hirescore/internal/ranking"
	"github.com/jonathan/hirescore/internal/sentiment"
	"github.com/jonathan/hirescore/internal/types"
	"go.uber.org/zap"
)

// Fallback markers recorded on results when a component degraded to its
// neutral default instead of producing a measurement.
const (
	FallbackMatchScore = "match_score"
	FallbackExperience = "experience_years"
	FallbackStrengths  = "strengths"
	FallbackSummary    = "summary"
	FallbackPanic      = "panic"
)

// Engine composes the leaf scoring components. Construct once, share
// freely: every method is safe for concurrent use.
type Engine struct {
	skills    *extraction.SkillExtractor
	bias      *bias.Detector
	sentiment *sentiment.Analyzer
	logger    *zap.Logger
}

// New creates an engine over the given catalog. A nil catalog uses the
// reference vocabulary; a nil logger disables logging.
func New(c *catalog.Catalog, logger *zap.Logger) (*Engine, error) {
	if c == nil {
		c = catalog.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	detector, err := bias.NewDetector(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create bias detector: %w", err)
	}

	return &Engine{
		skills:    extraction.NewSkillExtractor(c),
		bias:      detector,
		sentiment: sentiment.NewAnalyzer(),
		logger:    logger,
	}, nil
}

// AnalyzeResume extracts skills and experience from the resume, scores
// its overlap with the job description, and composes the strengths,
// weaknesses, and summary. Internal failures never escape: each
// component degrades to its documented neutral default and the result's
// Fallbacks field records which ones did.
func (e *Engine) AnalyzeResume(resumeText, jobDescription string) (result types.ResumeAnalysis) {
	defer e.absorb("analyze_resume", func() {
		result = types.ResumeAnalysis{
			MatchScore:      50,
			KeySkills:       []string{},
			ExperienceYears: extraction.DefaultExperienceYears,
			Strengths:       []string{},
			Weaknesses:      []string{},
			Summary:         matching.FallbackSummary(extraction.DefaultExperienceYears),
			Fallbacks:       []string{FallbackPanic},
		}
	})

	keySkills := e.skills.Extract(resumeText)
	jobSkills := e.skills.Extract(jobDescription)

	score := matching.MatchScore(resumeText, jobDescription)
	years, yearsFound := extraction.ExtractExperience(resumeText)
	gaps := matching.AnalyzeGaps(keySkills, jobSkills)
	summary := matching.GenerateSummary(keySkills, years, jobDescription)

	result = types.ResumeAnalysis{
		MatchScore:      int(math.Round(score.Value)),
		KeySkills:       emptyIfNil(keySkills),
		ExperienceYears: years,
		Strengths:       gaps.Strengths,
		Weaknesses:      emptyIfNil(gaps.Weaknesses),
		Summary:         summary,
	}
	if score.Fallback {
		result.Fallbacks = append(result.Fallbacks, FallbackMatchScore)
	}
	if !yearsFound {
		result.Fallbacks = append(result.Fallbacks, FallbackExperience)
	}
	if gaps.GenericStrengths {
		result.Fallbacks = append(result.Fallbacks, FallbackStrengths)
	}

	e.logger.Debug("resume analyzed",
		zap.Int("match_score", result.MatchScore),
		zap.Int("key_skills", len(result.KeySkills)),
		zap.Strings("fallbacks", result.Fallbacks))
	return result
}

// RankCandidates scores and sorts the candidates against the job
// requirements.
func (e *Engine) RankCandidates(candidates []types.Candidate, req types.JobRequirements) (result types.RankingResult) {
	defer e.absorb("rank_candidates", func() {
		result = types.RankingResult{
			RankedCandidates: []types.RankedCandidate{},
			RankingCriteria:  ranking.Criteria(),
		}
	})

	result = ranking.RankCandidates(candidates, req)

	e.logger.Debug("candidates ranked", zap.Int("count", len(result.RankedCandidates)))
	return result
}

// AnalyzeBias derives hire-rate variance indicators from the hiring
// records.
func (e *Engine) AnalyzeBias(records []types.HiringRecord) (result types.BiasReport) {
	defer e.absorb("analyze_bias", func() {
		result = types.BiasReport{
			BiasScore:       0,
			BiasIndicators:  map[string]types.BiasIndicator{},
			Recommendations: []string{"Collect more hiring data for analysis"},
			Fallback:        true,
		}
	})

	result = e.bias.Analyze(records)

	e.logger.Debug("bias analyzed",
		zap.Int("bias_score", result.BiasScore),
		zap.Int("dimensions", len(result.BiasIndicators)))
	return result
}

// AnalyzeSentiment scores the text's polarity, emotions, and engagement.
// context is optional and feeds only the engagement heuristic.
func (e *Engine) AnalyzeSentiment(text, context string) (result types.SentimentReport) {
	defer e.absorb("analyze_sentiment", func() {
		result = types.SentimentReport{
			Sentiment:       "neutral",
			Confidence:      0.5,
			Emotions:        types.Emotions{},
			EngagementScore: 0,
			Fallback:        true,
		}
	})

	result = e.sentiment.Analyze(text, context)

	e.logger.Debug("sentiment analyzed",
		zap.String("sentiment", result.Sentiment),
		zap.Int("engagement_score", result.EngagementScore))
	return result
}

// absorb converts a panic in an operation into the operation's neutral
// default. Computation failures are never surfaced to callers; the
// operations always return a well-formed result.
func (e *Engine) absorb(operation string, fallback func()) {
	if r := recover(); r != nil {
		e.logger.Error("computation failure absorbed",
			zap.String("operation", operation),
			zap.Any("panic", r))
		fallback()
	}
}

// emptyIfNil keeps JSON output as [] rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
