package main

import (
	"encoding/json"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverLetterCommand_MissingCompany(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "cover-letter", "--in", "resume.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestCoverLetterCommand_TemplateMode(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumePath := writeTempResume(t)

	cmd := exec.Command(binaryPath, "cover-letter",
		"--in", resumePath, "--company", "Acme", "--name", "Jane Doe", "--json")
	cmd.Env = []string{"PATH=/usr/bin:/bin"} // no GEMINI_API_KEY: template mode

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	var letter struct {
		Greeting      string   `json:"greeting"`
		Body          []string `json:"body"`
		CandidateName string   `json:"candidate_name"`
	}
	require.NoError(t, json.Unmarshal(output, &letter))

	assert.Equal(t, "Dear Hiring Manager at Acme,", letter.Greeting)
	assert.Equal(t, "Jane Doe", letter.CandidateName)
	assert.Len(t, letter.Body, 4)
}
