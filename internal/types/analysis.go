// Package types defines the shared data structures exchanged between the
// résumé analysis pipeline stages and the HTTP API.
package types

// Section keys recognized by the segmenter. These are the canonical map keys
// used in AnalysisRecord.Sections and AnalysisRecord.RawSections.
const (
	SectionSkills       = "skills"
	SectionEducation    = "education"
	SectionExperience   = "experience"
	SectionProjects     = "projects"
	SectionAchievements = "achievements"
	SectionPositions    = "positions"
)

// EducationEntry represents one education record assembled from consecutive
// lines of the education section. Any field may be empty; entries with neither
// institution nor degree are never emitted.
type EducationEntry struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// ExperienceEntry represents one work-experience record. Description
// accumulates free text lines that did not classify as organization, role or
// duration.
type ExperienceEntry struct {
	Organization string `json:"organization,omitempty"`
	Role         string `json:"role,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Description  string `json:"description"`
}

// ProjectEntry represents one project parsed from the projects section.
type ProjectEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AnalysisRecord aggregates everything extracted from a single résumé. It is
// produced once per analysis call and treated as immutable afterwards.
//
// Sections and RawSections deliberately carry different signals: Sections says
// a header label occurred anywhere in the document, RawSections holds text
// that was actually isolated under an exact header line. Downstream scoring
// depends on the distinction, so the two maps are never collapsed.
type AnalysisRecord struct {
	Sections    map[string]bool   `json:"sections"`
	RawSections map[string]string `json:"raw_sections,omitempty"`
	Skills      []string          `json:"skills"`
	Education   []EducationEntry  `json:"education"`
	Experience  []ExperienceEntry `json:"experience"`
	Projects    []ProjectEntry    `json:"projects"`
}

// External returns a shallow copy suitable for returning to API callers.
// RawSections is internal plumbing for the ATS scorer and is stripped here.
func (a *AnalysisRecord) External() *AnalysisRecord {
	out := *a
	out.RawSections = nil
	return &out
}
