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

func TestMatchCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "match", "--in", "resume.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestMatchCommand_JSON(t *testing.T) {
	binaryPath := getBinaryPath(t)
	resumePath := writeTempResume(t)

	jobPath := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("Requirements: Python, Docker, Kubernetes"), 0644))

	cmd := exec.Command(binaryPath, "match", "--in", resumePath, "--job", jobPath, "--json")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	var result struct {
		JobFitScore   int      `json:"job_fit_score"`
		MatchedSkills []string `json:"matched_skills"`
		MissingSkills []string `json:"missing_skills"`
	}
	require.NoError(t, json.Unmarshal(output, &result))

	assert.Contains(t, result.MatchedSkills, "python")
	assert.Contains(t, result.MissingSkills, "kubernetes")
	assert.GreaterOrEqual(t, result.JobFitScore, 0)
}
