// Package analyzer orchestrates résumé analysis: section segmentation,
// skill extraction, and the structured education/experience/project parsers.
package analyzer

import (
	"github.com/jonathan/careercraft/internal/extraction"
	"github.com/jonathan/careercraft/internal/sections"
	"github.com/jonathan/careercraft/internal/skills"
	"github.com/jonathan/careercraft/internal/types"
)

// Analyze runs the full extraction pipeline over raw résumé text and returns
// a unified analysis record. The record includes RawSections, which is
// internal input for the ATS scorer; call External() before handing the
// record to API callers.
//
// Skill extraction prefers the dedicated skills section; when that yields
// nothing the whole document is scanned as a fallback, so a résumé without a
// labeled skills section still gets skill credit.
func Analyze(content string) *types.AnalysisRecord {
	present := sections.Detect(content)
	raw := sections.ExtractRaw(content)

	skillList := skills.Extract(raw[types.SectionSkills])
	if len(skillList) == 0 {
		skillList = skills.Extract(content)
	}

	return &types.AnalysisRecord{
		Sections:    present,
		RawSections: raw,
		Skills:      skillList,
		Education:   extraction.Education(raw[types.SectionEducation]),
		Experience:  extraction.Experience(raw[types.SectionExperience]),
		Projects:    extraction.Projects(raw[types.SectionProjects]),
	}
}
