package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/careercraft/internal/types"
)

// feedbackCategories orders the category table for grouped missing-skill
// guidance.
var feedbackCategories = []string{
	"cloud", "devops", "database", "frontend", "backend",
	"mobile", "data science", "testing",
}

// categoryKeywords drive keyword-based grouping of missing skills.
var categoryKeywords = map[string][]string{
	"cloud":        {"aws", "azure", "gcp", "cloud", "s3", "ec2", "lambda"},
	"devops":       {"docker", "kubernetes", "jenkins", "ci/cd", "terraform", "ansible"},
	"database":     {"sql", "mongodb", "postgresql", "mysql", "redis", "database"},
	"frontend":     {"react", "angular", "vue", "html", "css", "javascript", "typescript"},
	"backend":      {"node", "express", "django", "flask", "fastapi", "spring", "api"},
	"mobile":       {"android", "ios", "flutter", "react native", "swift", "kotlin"},
	"data science": {"python", "machine learning", "tensorflow", "pytorch", "pandas", "numpy"},
	"testing":      {"selenium", "jest", "pytest", "testing", "junit"},
}

// generateJobFeedback applies the job-fit feedback rules in fixed priority.
// Rules are conditionally appended, not mutually exclusive, and unlike the
// ATS feedback there is no deduplication or truncation.
func generateJobFeedback(match *types.MatchResult, jobSkillCount int) []string {
	var feedback []string

	missing := match.MissingSkills
	partial := match.PartialMatches
	pct := match.SkillMatchPercentage

	// Rule 1: missing skills, grouped when numerous.
	switch {
	case len(missing) >= 5:
		groups := groupSkillsByCategory(missing)
		if len(groups) > 0 {
			for _, g := range groups[:min(2, len(groups))] {
				skillList := strings.Join(g.skills[:min(3, len(g.skills))], ", ")
				feedback = append(feedback, fmt.Sprintf(
					"Add %s-related skills such as %s to improve job alignment.", g.category, skillList))
			}
		} else {
			feedback = append(feedback, fmt.Sprintf(
				"Add key skills such as %s to better match job requirements.",
				strings.Join(missing[:min(4, len(missing))], ", ")))
		}
	case len(missing) > 0:
		feedback = append(feedback, fmt.Sprintf(
			"Consider adding %s to your resume to meet all job requirements.",
			strings.Join(missing, ", ")))
	}

	// Rule 2: partial matches.
	switch {
	case len(partial) > 4:
		feedback = append(feedback,
			"Strengthen your proficiency in partially matched skills through practical projects and real-world applications.")
	case len(partial) > 0:
		for _, skill := range partial[:min(2, len(partial))] {
			feedback = append(feedback, fmt.Sprintf(
				"Strengthen %s proficiency through hands-on projects or practical experience.", skill))
		}
	}

	// Rule 3: low overall match.
	switch {
	case pct < 40:
		feedback = append(feedback,
			"Your skill set shows significant gaps for this role. Focus on acquiring core technical skills listed in the job description.")
	case pct < 60:
		feedback = append(feedback,
			"Consider targeted upskilling in missing areas to improve your candidacy for this position.")
	}

	// Rule 4: nothing matched at all.
	if len(match.MatchedSkills) == 0 && jobSkillCount > 0 {
		feedback = append(feedback,
			"Your resume shows minimal alignment with this job's technical requirements. Review the job description carefully and highlight relevant experience.")
	}

	// Rule 5: strong match with a residual gap.
	if pct >= 70 && len(missing) > 0 {
		feedback = append(feedback, fmt.Sprintf(
			"You have a strong skill match. Adding %s would make you an even stronger candidate.",
			strings.Join(missing[:min(2, len(missing))], ", ")))
	}

	// Fallbacks.
	if len(feedback) < 2 && (len(missing) > 0 || len(partial) > 0) {
		if len(missing) > 0 {
			feedback = append(feedback,
				"Focus on acquiring missing technical skills through online courses, certifications, or projects.")
		} else {
			feedback = append(feedback,
				"Build practical projects that demonstrate your proficiency in the required technologies.")
		}
	}
	if len(feedback) == 0 {
		feedback = append(feedback,
			"Your skills align well with the job requirements. Ensure your resume clearly demonstrates your experience with these technologies.",
			"Consider highlighting specific projects or achievements that showcase your expertise in the matched skills.")
	}

	return feedback
}

// categoryGroup pairs a category with the missing skills falling into it.
type categoryGroup struct {
	category string
	skills   []string
}

// groupSkillsByCategory buckets skills by the first category whose keywords
// hit; uncategorized skills fall into "general". Empty groups are omitted and
// category order is stable.
func groupSkillsByCategory(skillList []string) []categoryGroup {
	buckets := make(map[string][]string)
	for _, skill := range skillList {
		lower := strings.ToLower(skill)
		categorized := false
		for _, category := range feedbackCategories {
			for _, kw := range categoryKeywords[category] {
				if strings.Contains(lower, kw) {
					buckets[category] = append(buckets[category], skill)
					categorized = true
					break
				}
			}
			if categorized {
				break
			}
		}
		if !categorized {
			buckets["general"] = append(buckets["general"], skill)
		}
	}

	var groups []categoryGroup
	for _, category := range append(feedbackCategories, "general") {
		if skills, ok := buckets[category]; ok {
			groups = append(groups, categoryGroup{category: category, skills: skills})
		}
	}
	return groups
}
