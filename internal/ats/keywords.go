package ats

import (
	"regexp"
	"sort"
	"strings"
)

// KeywordRanker supplies the term-importance statistic for the keyword axis:
// the top-k most important terms of a document.
type KeywordRanker interface {
	TopTerms(text string, k int) ([]string, error)
}

// topKeywordCount is how many document keywords the keyword axis inspects.
const topKeywordCount = 30

// wordRe tokenizes lowercased text into words of at least two characters,
// mirroring the tokenization the importance statistic was tuned for.
var wordRe = regexp.MustCompile(`[a-z0-9_]{2,}`)

// densityWordRe tokenizes the raw stream for the repetition tier.
var densityWordRe = regexp.MustCompile(`[a-z0-9]+`)

// TermFrequencyRanker ranks terms of a single document by raw frequency,
// excluding English stopwords. With one document there is no corpus to weigh
// rarity against, so frequency ordering with an alphabetical tie-break is the
// deterministic equivalent of a tf-idf cut.
type TermFrequencyRanker struct{}

// TopTerms returns up to k distinct terms ordered by descending frequency,
// ties broken alphabetically. Empty text yields an empty list.
func (TermFrequencyRanker) TopTerms(text string, k int) ([]string, error) {
	counts := make(map[string]int)
	for _, tok := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if _, stop := stopwords[tok]; stop {
			continue
		}
		counts[tok]++
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > k {
		terms = terms[:k]
	}
	return terms, nil
}

// normalizeToken collapses a term for comparison against résumé skills:
// lowercase with dots and spaces removed, so "node.js" and "nodejs" compare
// equal.
func normalizeToken(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "")
	return strings.ReplaceAll(s, " ", "")
}

// stopwords is a compact English stopword list for the frequency ranker.
var stopwords = func() map[string]struct{} {
	words := []string{
		"about", "above", "after", "again", "all", "also", "am", "an", "and",
		"any", "are", "as", "at", "be", "because", "been", "before", "being",
		"below", "between", "both", "but", "by", "can", "could", "did", "do",
		"does", "doing", "down", "during", "each", "few", "for", "from",
		"further", "had", "has", "have", "having", "he", "her", "here", "hers",
		"him", "his", "how", "if", "in", "into", "is", "it", "its", "itself",
		"just", "me", "more", "most", "my", "myself", "no", "nor", "not",
		"now", "of", "off", "on", "once", "only", "or", "other", "our",
		"ours", "out", "over", "own", "same", "she", "should", "so", "some",
		"such", "than", "that", "the", "their", "theirs", "them", "then",
		"there", "these", "they", "this", "those", "through", "to", "too",
		"under", "until", "up", "very", "was", "we", "were", "what", "when",
		"where", "which", "while", "who", "whom", "why", "will", "with",
		"would", "you", "your", "yours", "yourself",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()
