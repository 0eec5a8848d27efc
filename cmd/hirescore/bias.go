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

var biasCmd = &cobra.Command{
	Use:   "bias",
	Short: "Analyze hiring records for bias indicators",
	Long:  "Analyze historical hiring records from a JSON file, reporting hire-rate variance per dimension and recommendations.",
	RunE:  runBias,
}

var (
	biasInputFile string
	biasJSON      bool
)

func init() {
	biasCmd.Flags().StringVarP(&biasInputFile, "in", "i", "", "Path to JSON input file, or - for stdin (required)")
	biasCmd.Flags().BoolVar(&biasJSON, "json", false, "Emit raw JSON instead of formatted output")
	_ = biasCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(biasCmd)
}

func runBias(_ *cobra.Command, _ []string) error {
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

	data, err := readInput(biasInputFile)
	if err != nil {
		return err
	}
	if err := intschemas.ValidateDocument(schemas.AnalyzeBias, string(data)); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	var req types.AnalyzeBiasRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse input JSON: %w", err)
	}

	result := eng.AnalyzeBias(req.HiringData)

	if biasJSON {
		return printJSON(result)
	}
	observability.NewPrinter(os.Stdout).PrintBiasReport(&result)
	return nil
}
