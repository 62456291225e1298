package types

// MatchResult buckets every job-description skill into exactly one of three
// disjoint lists and carries the aggregate match percentage.
type MatchResult struct {
	MatchedSkills        []string `json:"matched_skills"`
	PartialMatches       []string `json:"partial_matches"`
	MissingSkills        []string `json:"missing_skills"`
	SkillMatchPercentage float64  `json:"skill_match_percentage"`
}

// JobFitResult combines the skill match with the résumé's ATS score into a
// single job-fit verdict plus rule-based feedback.
type JobFitResult struct {
	JobFitScore          int      `json:"job_fit_score"`
	SkillMatchPercentage float64  `json:"skill_match_percentage"`
	MatchedSkills        []string `json:"matched_skills"`
	PartialMatches       []string `json:"partial_matches"`
	MissingSkills        []string `json:"missing_skills"`
	JobFeedback          []string `json:"job_feedback"`
}

// CoverLetter is the structured output of the cover-letter generator.
type CoverLetter struct {
	Greeting      string   `json:"greeting"`
	Body          []string `json:"body"`
	Closing       string   `json:"closing"`
	SignOff       string   `json:"sign_off"`
	CandidateName string   `json:"candidate_name"`
}
