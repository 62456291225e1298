package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/careercraft/internal/analyzer"
	"github.com/jonathan/careercraft/internal/coverletter"
	"github.com/jonathan/careercraft/internal/llm"
	"github.com/jonathan/careercraft/internal/observability"
	"github.com/jonathan/careercraft/internal/textextract"
	"github.com/jonathan/careercraft/internal/types"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Draft a cover letter from a resume and job details",
	Long: `Analyze a resume file and draft a cover letter tailored to the given
company and role. With a Gemini API key the letter is drafted by the
model; without one a deterministic template letter is produced.`,
	RunE: runCoverLetter,
}

var (
	letterResumeFile string
	letterCompany    string
	letterTitle      string
	letterJobFile    string
	letterJobURL     string
	letterName       string
	letterAPIKey     string
	letterJSON       bool
)

func init() {
	coverLetterCmd.Flags().StringVarP(&letterResumeFile, "in", "i", "", "Path to resume file (.pdf, .docx or .txt)")
	coverLetterCmd.Flags().StringVarP(&letterCompany, "company", "c", "", "Company name")
	coverLetterCmd.Flags().StringVarP(&letterTitle, "title", "t", "", "Job title")
	coverLetterCmd.Flags().StringVarP(&letterJobFile, "job", "j", "", "Path to job description text file (optional, mutually exclusive with --job-url)")
	coverLetterCmd.Flags().StringVar(&letterJobURL, "job-url", "", "URL to fetch the job posting from (optional, mutually exclusive with --job)")
	coverLetterCmd.Flags().StringVarP(&letterName, "name", "n", "", "Candidate name")
	coverLetterCmd.Flags().StringVar(&letterAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	coverLetterCmd.Flags().BoolVar(&letterJSON, "json", false, "Emit the result as JSON instead of plain text")
	_ = coverLetterCmd.MarkFlagRequired("in")
	_ = coverLetterCmd.MarkFlagRequired("company")

	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	data, err := os.ReadFile(letterResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := textextract.Extract(letterResumeFile, data)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	job := types.JobInfo{
		CompanyName: letterCompany,
		JobTitle:    letterTitle,
	}
	if letterJobFile != "" && letterJobURL != "" {
		return fmt.Errorf("at most one of --job or --job-url may be given")
	}
	if letterJobFile != "" || letterJobURL != "" {
		desc, err := loadJobDescription(letterJobFile, letterJobURL)
		if err != nil {
			return err
		}
		job.Description = desc
	}

	apiKey := letterAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var client llm.Client
	if apiKey != "" {
		client, err = llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
	}

	record := analyzer.Analyze(text)
	letter, err := coverletter.NewGenerator(client).Generate(ctx, record, job, letterName)
	if err != nil {
		return fmt.Errorf("failed to generate cover letter: %w", err)
	}

	if letterJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(letter)
	}

	observability.NewPrinter(os.Stdout).PrintCoverLetter(letter)

	return nil
}
