package ats

import (
	"strings"
	"unicode"
)

// fleschReadingEase computes the standard reading-ease statistic:
// 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
// Texts without words score 0.
func fleschReadingEase(text string) float64 {
	sentences := splitSentences(text)
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	sentenceCount := len(sentences)
	if sentenceCount == 0 {
		sentenceCount = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentenceCount)
	syllablesPerWord := float64(syllables) / float64(len(words))
	return 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
}

// splitSentences splits on terminal punctuation and drops blank fragments.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, strings.TrimSpace(p))
		}
	}
	return out
}

// countSyllables estimates syllables by counting vowel groups, with the
// common silent-e adjustment. Every word counts as at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if word == "" {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

// scoreFlesch maps reading ease onto the readability tier table.
func scoreFlesch(text string) float64 {
	score := fleschReadingEase(text)
	switch {
	case score >= 50:
		return 10
	case score >= 40:
		return 8
	case score >= 30:
		return 5
	default:
		return 2
	}
}

// scoreSentenceLength rewards short average sentence length.
func scoreSentenceLength(text string) float64 {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return 0
	}

	totalWords := 0
	for _, s := range sentences {
		totalWords += len(strings.Fields(s))
	}
	avg := float64(totalWords) / float64(len(sentences))

	switch {
	case avg <= 20:
		return 5
	case avg <= 25:
		return 3
	default:
		return 1
	}
}

// scoreParagraphDensity rewards breaking text into digestible paragraphs.
// Paragraphs are blank-line separated blocks.
func scoreParagraphDensity(text string) float64 {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) == 0 {
		return 0
	}

	totalWords := 0
	for _, p := range paragraphs {
		totalWords += len(strings.Fields(p))
	}
	avg := float64(totalWords) / float64(len(paragraphs))

	switch {
	case avg <= 80:
		return 5
	case avg <= 120:
		return 3
	default:
		return 1
	}
}

// scoreReadability sums the three readability tiers; empty or blank text
// degrades to 0 rather than erroring.
func scoreReadability(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return scoreFlesch(text) + scoreSentenceLength(text) + scoreParagraphDensity(text)
}
