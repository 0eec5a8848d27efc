package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/hirescore/internal/observability"
	intschemas "github.com/jonathan/hirescore/internal/schemas"
	"github.com/jonathan/hirescore/internal/types"
	"github.com/jonathan/hirescore/schemas"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates against job requirements",
	Long:  "Rank candidates from a JSON file holding candidates and job_requirements, printing the sorted list with fit scores.",
	RunE:  runRank,
}

var (
	rankInputFile string
	rankJSON      bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankInputFile, "in", "i", "", "Path to JSON input file, or - for stdin (required)")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Emit raw JSON instead of formatted output")
	_ = rankCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
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

	data, err := readInput(rankInputFile)
	if err != nil {
		return err
	}
	if err := intschemas.ValidateDocument(schemas.RankCandidates, string(data)); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	var req types.RankCandidatesRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse input JSON: %w", err)
	}

	result := eng.RankCandidates(req.Candidates, req.JobRequirements)

	if rankJSON {
		return printJSON(result)
	}
	observability.NewPrinter(os.Stdout).PrintRankingResult(&result)
	return nil
}
