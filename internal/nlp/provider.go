// Package nlp wraps the linguistic-analysis backend used by job-skill
// extraction: noun-phrase chunking and named-entity recognition.
package nlp

import (
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/jonathan/careercraft/internal/types"
)

// Provider supplies noun phrases and named entities for a text. The call is
// CPU-bound and synchronous; a failure fails the whole request (there is no
// deterministic fallback), surfaced as ErrCollaboratorUnavailable.
type Provider interface {
	Analyze(text string) (*Result, error)
}

// Result holds the linguistic features extracted from one text.
type Result struct {
	NounPhrases []string
	Entities    []string
}

// nounTags are the POS tags allowed inside a noun-phrase chunk.
var nounTags = map[string]struct{}{
	"JJ": {}, "JJR": {}, "JJS": {},
	"NN": {}, "NNS": {}, "NNP": {}, "NNPS": {},
}

// ProseProvider implements Provider on a statistical POS tagger and NER
// model. The underlying model is loaded once and is read-only, so a single
// ProseProvider is safe for concurrent use.
type ProseProvider struct{}

// NewProseProvider returns the production linguistic-analysis provider.
func NewProseProvider() *ProseProvider {
	return &ProseProvider{}
}

// Analyze tags the text and derives noun phrases from maximal runs of
// adjective/noun tokens, plus the model's named entities.
func (p *ProseProvider) Analyze(text string) (*Result, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, &types.ErrCollaboratorUnavailable{Name: "linguistic analysis", Err: err}
	}

	res := &Result{}

	var run []string
	flush := func() {
		if len(run) > 0 {
			res.NounPhrases = append(res.NounPhrases, strings.Join(run, " "))
			run = nil
		}
	}
	for _, tok := range doc.Tokens() {
		if _, ok := nounTags[tok.Tag]; ok {
			run = append(run, tok.Text)
			continue
		}
		flush()
	}
	flush()

	for _, ent := range doc.Entities() {
		res.Entities = append(res.Entities, ent.Text)
	}

	return res, nil
}
