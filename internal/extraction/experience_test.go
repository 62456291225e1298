package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperience_SingleEntry(t *testing.T) {
	text := `Acme Corp
Software Engineer Intern
Jun 2022 - Aug 2022
Built internal tooling in Go.
Shipped three services to production.`

	got := Experience(text)

	require.Len(t, got, 1)
	assert.Equal(t, "Acme Corp", got[0].Organization)
	assert.Equal(t, "Software Engineer Intern", got[0].Role)
	assert.Equal(t, "Jun 2022 - Aug 2022", got[0].Duration)
	assert.Equal(t, "Built internal tooling in Go. Shipped three services to production.", got[0].Description)
}

func TestExperience_NewEntryOnSecondRole(t *testing.T) {
	text := `Acme Corp
Software Engineer Intern
Jun 2022 - Aug 2022
Worked on billing.
Data Analyst
Jan 2023 - Present
Dashboards and reports.`

	got := Experience(text)

	require.Len(t, got, 2)
	assert.Equal(t, "Software Engineer Intern", got[0].Role)
	assert.Equal(t, "Data Analyst", got[1].Role)
	assert.Equal(t, "Jan 2023 - Present", got[1].Duration)
	assert.Equal(t, "Dashboards and reports.", got[1].Description)
	// The organization heuristic only applies before the first role line.
	assert.Empty(t, got[1].Organization)
}

func TestExperience_OrganizationHeuristicRequiresShortLine(t *testing.T) {
	text := "A fairly long opening line about the position\nBackend Developer"

	got := Experience(text)

	require.Len(t, got, 1)
	assert.Empty(t, got[0].Organization)
	assert.Equal(t, "Backend Developer", got[0].Role)
	assert.Equal(t, "A fairly long opening line about the position", got[0].Description)
}

func TestExperience_RoleWithoutOrganization(t *testing.T) {
	got := Experience("Frontend Developer\nBuilt the dashboard UI with React.")

	require.Len(t, got, 1)
	assert.Empty(t, got[0].Organization)
	assert.Equal(t, "Frontend Developer", got[0].Role)
}

func TestExperience_NoIdentifyingFields(t *testing.T) {
	assert.Empty(t, Experience("2019 - 2023"))
	assert.Empty(t, Experience(""))
}
