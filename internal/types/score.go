package types

// ScoreBreakdown holds the four ATS sub-scores before rounding. Each axis is
// independently capped: sections 30, skills 30, keywords 20, readability 20.
type ScoreBreakdown struct {
	Sections    float64 `json:"sections"`
	Skills      float64 `json:"skills"`
	Keywords    float64 `json:"keywords"`
	Readability float64 `json:"readability"`
}

// AtsScoreResult is the output of the ATS scorer: an aggregate 0-100 score,
// the per-axis breakdown, and up to five distinct feedback lines in priority
// order.
type AtsScoreResult struct {
	ATSScore  int            `json:"ats_score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Feedback  []string       `json:"feedback"`
}
