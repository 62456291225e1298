package ats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountSyllables(t *testing.T) {
	cases := map[string]int{
		"go":       1,
		"python":   2,
		"developer": 4,
		"a":        1,
		"make":     1,
		"table":    2,
	}
	for word, want := range cases {
		assert.Equal(t, want, countSyllables(word), "word %q", word)
	}
}

func TestScoreReadability_EmptyText(t *testing.T) {
	assert.Zero(t, scoreReadability(""))
	assert.Zero(t, scoreReadability("  \n "))
}

func TestScoreSentenceLength(t *testing.T) {
	assert.Equal(t, 5.0, scoreSentenceLength("Short sentence. Another one."))

	long := strings.Repeat("word ", 30) + "."
	assert.Equal(t, 1.0, scoreSentenceLength(long))

	assert.Equal(t, 0.0, scoreSentenceLength(""))
}

func TestScoreParagraphDensity(t *testing.T) {
	assert.Equal(t, 5.0, scoreParagraphDensity("A short paragraph.\n\nAnother short one."))

	dense := strings.Repeat("word ", 150)
	assert.Equal(t, 1.0, scoreParagraphDensity(dense))
}

func TestFleschReadingEase_SimpleTextReadsEasy(t *testing.T) {
	easy := "I like to code. Code is fun. We ship it fast."
	assert.Greater(t, fleschReadingEase(easy), 50.0)

	assert.Zero(t, fleschReadingEase(""))
}
