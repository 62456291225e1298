package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/careercraft/internal/analyzer"
	"github.com/jonathan/careercraft/internal/ats"
	"github.com/jonathan/careercraft/internal/observability"
	"github.com/jonathan/careercraft/internal/textextract"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume file and score it for ATS compatibility",
	Long:  "Extract text from a resume file (PDF, DOCX or plain text), analyze its sections, skills, education, experience and projects, and score it for ATS compatibility.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile string
	analyzeJSON      bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to resume file (.pdf, .docx or .txt)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the result as JSON instead of formatted output")
	_ = analyzeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(analyzeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	text, err := textextract.Extract(analyzeInputFile, data)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	record := analyzer.Analyze(text)
	score, err := ats.NewScorer(nil).Score(record, text)
	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}

	if analyzeJSON {
		out := map[string]any{
			"analysis":  record.External(),
			"ats_score": score,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAnalysis(record)
	printer.PrintAtsScore(score)

	return nil
}
