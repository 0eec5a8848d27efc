package main

import (
	"fmt"
	"os"

	"github.com/jonathan/hirescore/internal/observability"
	"github.com/spf13/cobra"
)

var sentimentCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Analyze communication sentiment and engagement",
	Long:  "Analyze candidate communication text for sentiment, emotion ratios, and an engagement score. Text comes from --text or a file via --in.",
	RunE:  runSentiment,
}

var (
	sentimentText      string
	sentimentInputFile string
	sentimentContext   string
	sentimentJSON      bool
)

func init() {
	sentimentCmd.Flags().StringVar(&sentimentText, "text", "", "Text to analyze")
	sentimentCmd.Flags().StringVarP(&sentimentInputFile, "in", "i", "", "Path to text file, or - for stdin")
	sentimentCmd.Flags().StringVar(&sentimentContext, "context", "", "Optional conversation context for engagement scoring")
	sentimentCmd.Flags().BoolVar(&sentimentJSON, "json", false, "Emit raw JSON instead of formatted output")

	rootCmd.AddCommand(sentimentCmd)
}

func runSentiment(_ *cobra.Command, _ []string) error {
	if sentimentText == "" && sentimentInputFile == "" {
		return fmt.Errorf("must provide either --text or --in")
	}
	if sentimentText != "" && sentimentInputFile != "" {
		return fmt.Errorf("cannot use --text with --in")
	}

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

	text := sentimentText
	if sentimentInputFile != "" {
		data, err := readInput(sentimentInputFile)
		if err != nil {
			return err
		}
		text = string(data)
	}

	result := eng.AnalyzeSentiment(text, sentimentContext)

	if sentimentJSON {
		return printJSON(result)
	}
	observability.NewPrinter(os.Stdout).PrintSentimentReport(&result)
	return nil
}
