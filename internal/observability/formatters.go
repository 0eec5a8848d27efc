// Package observability provides formatted output utilities for CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/hirescore/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the one-shot CLI commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeAnalysis outputs a human-readable resume analysis summary.
func (p *Printer) PrintResumeAnalysis(analysis *types.ResumeAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Match Score:  %d/100\n", analysis.MatchScore))
	sb.WriteString(fmt.Sprintf("Experience:   %d years\n", analysis.ExperienceYears))
	sb.WriteString("\n")

	if len(analysis.KeySkills) > 0 {
		sb.WriteString("Key Skills:\n")
		count := min(len(analysis.KeySkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.KeySkills[i]))
		}
		if len(analysis.KeySkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.KeySkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		for _, s := range analysis.Strengths {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", s))
		}
	}
	if len(analysis.Weaknesses) > 0 {
		sb.WriteString("Gaps:\n")
		for _, w := range analysis.Weaknesses {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", w))
		}
		sb.WriteString("\n")
	}

	summary := analysis.Summary
	if len(summary) > 50 {
		summary = summary[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Summary: %s", summary))

	p.printBox("RESUME ANALYSIS", sb.String())
}

// PrintRankingResult outputs the top ranked candidates with scores.
func (p *Printer) PrintRankingResult(result *types.RankingResult) {
	if result == nil || len(result.RankedCandidates) == 0 {
		p.printBox("CANDIDATE RANKING", "No candidates to rank")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(result.RankedCandidates)))

	count := min(len(result.RankedCandidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		ranked := result.RankedCandidates[i]
		sb.WriteString(fmt.Sprintf("#%d  Score: %d/100\n", i+1, ranked.AIScore))
		if len(ranked.Candidate.Skills) > 0 {
			skills := strings.Join(ranked.Candidate.Skills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		sb.WriteString(fmt.Sprintf("    Experience: %d years\n", ranked.Candidate.ExperienceYears))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.RankedCandidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(result.RankedCandidates)-maxItemsToShow))
	}

	p.printBox("CANDIDATE RANKING", sb.String())
}

// PrintBiasReport outputs the bias indicators per dimension.
func (p *Printer) PrintBiasReport(report *types.BiasReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Bias Score: %d/100\n", report.BiasScore))

	if len(report.BiasIndicators) > 0 {
		sb.WriteString("\n")
		for _, name := range sortedIndicatorNames(report.BiasIndicators) {
			indicator := report.BiasIndicators[name]
			sb.WriteString(fmt.Sprintf("%s (variance %.4f):\n", name, indicator.Variance))
			for _, group := range sortedGroupNames(indicator.HireRates) {
				sb.WriteString(fmt.Sprintf("  • %-12s %.0f%%\n", group, indicator.HireRates[group]*100))
			}
		}
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(report.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := report.Recommendations[i]
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
		if len(report.Recommendations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Recommendations)-maxItemsToShow))
		}
	}

	p.printBox("BIAS ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSentimentReport outputs sentiment, emotions, and engagement.
func (p *Printer) PrintSentimentReport(report *types.SentimentReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sentiment:   %s\n", report.Sentiment))
	sb.WriteString(fmt.Sprintf("Confidence:  %.2f\n", report.Confidence))
	sb.WriteString(fmt.Sprintf("Engagement:  %d/100\n", report.EngagementScore))
	sb.WriteString("\n")

	sb.WriteString("Emotions:\n")
	sb.WriteString(fmt.Sprintf("  • enthusiasm  %.2f\n", report.Emotions.Enthusiasm))
	sb.WriteString(fmt.Sprintf("  • confidence  %.2f\n", report.Emotions.Confidence))
	sb.WriteString(fmt.Sprintf("  • concern     %.2f", report.Emotions.Concern))

	p.printBox("SENTIMENT ANALYSIS", sb.String())
}

func sortedIndicatorNames(indicators map[string]types.BiasIndicator) []string {
	names := make([]string, 0, len(indicators))
	for name := range indicators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedGroupNames(rates map[string]float64) []string {
	names := make([]string, 0, len(rates))
	for name := range rates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
