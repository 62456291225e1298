package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/careercraft/internal/analyzer"
	"github.com/jonathan/careercraft/internal/ats"
	"github.com/jonathan/careercraft/internal/jobfetch"
	"github.com/jonathan/careercraft/internal/matching"
	"github.com/jonathan/careercraft/internal/observability"
	"github.com/jonathan/careercraft/internal/textextract"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume against a job description",
	Long:  "Analyze a resume file, extract the skills a job description asks for, and report matched, partially matched and missing skills together with a job-fit score.",
	RunE:  runMatch,
}

var (
	matchResumeFile string
	matchJobFile    string
	matchJobURL     string
	matchJSON       bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "in", "i", "", "Path to resume file (.pdf, .docx or .txt)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Emit the result as JSON instead of formatted output")
	_ = matchCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if (matchJobFile == "") == (matchJobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url is required")
	}

	resumeData, err := os.ReadFile(matchResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	resumeText, err := textextract.Extract(matchResumeFile, resumeData)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	jobText, err := loadJobDescription(matchJobFile, matchJobURL)
	if err != nil {
		return err
	}

	record := analyzer.Analyze(resumeText)
	score, err := ats.NewScorer(nil).Score(record, resumeText)
	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}

	result, err := matching.NewService(nil).MatchJob(record.Skills, score.ATSScore, jobText)
	if err != nil {
		return fmt.Errorf("failed to match job: %w", err)
	}

	if matchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	observability.NewPrinter(os.Stdout).PrintJobFit(result)

	return nil
}

// loadJobDescription reads the job description from a local file or fetches
// it from a job posting URL.
func loadJobDescription(path, jobURL string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}

	text, err := jobfetch.Description(context.Background(), jobURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return text, nil
}
