package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempResume(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.txt")
	content := "SKILLS\nPython, Docker, Git\n\nEDUCATION\nStanford University\nBS Computer Science\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAnalyzeCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumePath := writeTempResume(t)

	cmd := exec.Command(binaryPath, "analyze", "--in", resumePath, "--json")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	var result struct {
		Analysis struct {
			Skills []string `json:"skills"`
		} `json:"analysis"`
		AtsScore struct {
			ATSScore int `json:"ats_score"`
		} `json:"ats_score"`
	}
	require.NoError(t, json.Unmarshal(output, &result))

	assert.Contains(t, result.Analysis.Skills, "python")
	assert.GreaterOrEqual(t, result.AtsScore.ATSScore, 0)
	assert.LessOrEqual(t, result.AtsScore.ATSScore, 100)
}

func TestAnalyzeCommand_UnsupportedFormat(t *testing.T) {
	binaryPath := getBinaryPath(t)

	path := filepath.Join(t.TempDir(), "resume.odt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	cmd := exec.Command(binaryPath, "analyze", "--in", path)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unsupported")
}
