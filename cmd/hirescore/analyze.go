package main

import (
	"fmt"
	"os"

	"github.com/jonathan/hirescore/internal/observability"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long:  "Analyze a resume text file against a job description file, reporting match score, key skills, experience, strengths, gaps, and a summary.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeJobFile    string
	analyzeJSON       bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumeFile, "resume", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", "Path to job description text file (required)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit raw JSON instead of formatted output")
	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	eng, err := newEngine(cfg, log)
	if err != nil {
		return err
	}

	resumeText, err := readInput(analyzeResumeFile)
	if err != nil {
		return err
	}
	jobText, err := readInput(analyzeJobFile)
	if err != nil {
		return err
	}

	result := eng.AnalyzeResume(string(resumeText), string(jobText))

	if analyzeJSON {
		return printJSON(result)
	}
	observability.NewPrinter(os.Stdout).PrintResumeAnalysis(&result)
	return nil
}
