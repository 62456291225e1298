// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/careercraft/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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

// truncateList joins items with commas, shortening the result to fit a box line.
func truncateList(items []string, limit int) string {
	joined := strings.Join(items, ", ")
	if len(joined) > limit {
		joined = joined[:limit-3] + "..."
	}
	return joined
}

// PrintAnalysis outputs a human-readable summary of a resume analysis.
func (p *Printer) PrintAnalysis(record *types.AnalysisRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sections := []string{
		types.SectionSkills, types.SectionEducation, types.SectionExperience,
		types.SectionProjects, types.SectionAchievements, types.SectionPositions,
	}
	sb.WriteString("Sections found:\n")
	for _, section := range sections {
		marker := "✗"
		if record.Sections[section] {
			marker = "✓"
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", marker, section))
	}
	sb.WriteString("\n")

	if len(record.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(record.Skills)))
		count := min(len(record.Skills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("  %s\n", truncateList(record.Skills[:count], 50)))
		if len(record.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(record.Education)))
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(record.Experience)))
	sb.WriteString(fmt.Sprintf("Project entries:    %d", len(record.Projects)))

	p.printBox("RESUME ANALYSIS", sb.String())
}

// PrintAtsScore outputs the ATS score with its component breakdown and feedback.
func (p *Printer) PrintAtsScore(result *types.AtsScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ATS Score: %d / 100\n\n", result.ATSScore))

	sb.WriteString("Breakdown:\n")
	sb.WriteString(fmt.Sprintf("  Sections:    %.1f / 30\n", result.Breakdown.Sections))
	sb.WriteString(fmt.Sprintf("  Skills:      %.1f / 30\n", result.Breakdown.Skills))
	sb.WriteString(fmt.Sprintf("  Keywords:    %.1f / 20\n", result.Breakdown.Keywords))
	sb.WriteString(fmt.Sprintf("  Readability: %.1f / 20\n", result.Breakdown.Readability))

	if len(result.Feedback) > 0 {
		sb.WriteString("\nFeedback:\n")
		count := min(len(result.Feedback), maxItemsToShow)
		for i := 0; i < count; i++ {
			line := result.Feedback[i]
			if len(line) > 50 {
				line = line[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
		if len(result.Feedback) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Feedback)-maxItemsToShow))
		}
	}

	p.printBox("ATS COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobFit outputs the job-fit score with matched, partial and missing skills.
func (p *Printer) PrintJobFit(result *types.JobFitResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job Fit Score:    %d / 100\n", result.JobFitScore))
	sb.WriteString(fmt.Sprintf("Skill Match:      %.1f%%\n\n", result.SkillMatchPercentage))

	buckets := []struct {
		label  string
		skills []string
	}{
		{"Matched", result.MatchedSkills},
		{"Partial", result.PartialMatches},
		{"Missing", result.MissingSkills},
	}
	for _, b := range buckets {
		if len(b.skills) == 0 {
			continue
		}
		count := min(len(b.skills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("%s (%d):\n", b.label, len(b.skills)))
		sb.WriteString(fmt.Sprintf("  %s\n", truncateList(b.skills[:count], 50)))
	}

	if len(result.JobFeedback) > 0 {
		sb.WriteString("\nFeedback:\n")
		count := min(len(result.JobFeedback), 3)
		for i := 0; i < count; i++ {
			line := result.JobFeedback[i]
			if len(line) > 50 {
				line = line[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", line))
		}
		if len(result.JobFeedback) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.JobFeedback)-3))
		}
	}

	p.printBox("JOB FIT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCoverLetter outputs a drafted cover letter as plain text.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCoverLetter(letter *types.CoverLetter) {
	if letter == nil {
		return
	}

	fmt.Fprintf(p.out, "%s\n\n", letter.Greeting)
	for _, paragraph := range letter.Body {
		fmt.Fprintf(p.out, "%s\n\n", paragraph)
	}
	fmt.Fprintf(p.out, "%s\n%s\n", letter.Closing, letter.SignOff)
}
