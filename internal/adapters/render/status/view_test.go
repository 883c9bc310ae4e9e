package status

import (
	"testing"
	"time"

	"github.com/bnema/bonita-cli/internal/application"
	"github.com/bnema/bonita-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConnectionReport(t *testing.T) {
	output, err := RenderConnection(application.ConnectionReport{
		Profile:  "dev",
		BaseURL:  "http://localhost:8080/bonita",
		Username: "walter.bates",
		Processes: []application.ProcessCheck{
			{Name: "SYSTEM_RegisterProcess", ID: "9000", Registry: true},
			{Name: "RegisterUser", ID: "902891387048802672"},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "profile: dev")
	assert.Contains(t, output, "http://localhost:8080/bonita")
	assert.Contains(t, output, "walter.bates")
	assert.Contains(t, output, "processes: 2")
	assert.Contains(t, output, "SYSTEM_RegisterProcess")
	assert.Contains(t, output, "(case registry)")
	assert.Contains(t, output, "id 902891387048802672")
	assert.NotContains(t, output, "missing")
}

func TestRenderConnectionMarksMissingProcess(t *testing.T) {
	output, err := RenderConnection(application.ConnectionReport{
		Profile:   "dev",
		Processes: []application.ProcessCheck{{Name: "Onboarding"}},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "missing")
	assert.Contains(t, output, "id -")
	assert.Contains(t, output, "engine: n/a")
}

func TestRenderProfilesMarksCurrent(t *testing.T) {
	output, err := RenderProfiles([]domain.Profile{
		{ID: "dev", BaseURL: "http://localhost:8080/bonita", Username: "walter.bates", SecretRef: "bonita://dev/password", RequiredProcesses: []string{"RegisterUser"}},
		{ID: "prod", BaseURL: "https://bpm.example.com/bonita", Username: "svc"},
	}, "dev")

	require.NoError(t, err)
	assert.Contains(t, output, "profiles: 2")
	assert.Contains(t, output, "dev *")
	assert.NotContains(t, output, "prod *")
	assert.Contains(t, output, "requires: RegisterUser")
	assert.Contains(t, output, "password: stored")
	assert.Contains(t, output, "password: not stored")
}

func TestRenderProfilesEmpty(t *testing.T) {
	output, err := RenderProfiles(nil, domain.DefaultProfileID)

	require.NoError(t, err)
	assert.Contains(t, output, "No profiles configured")
}

func TestRenderHistory(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	output, err := RenderHistory([]domain.LaunchRecord{
		{Kind: domain.RecordKindLaunch, Profile: "dev", ProcessName: "RegisterUser", EntityID: "7", CaseID: "5014", At: now.Add(-3 * 24 * time.Hour)},
		{Kind: domain.RecordKindComplete, Profile: "dev", ProcessName: "RegisterUser", EntityID: "7", CaseID: "5014", TaskName: "Step2-Manual", At: now.Add(-2 * time.Hour)},
		{Kind: domain.RecordKindLaunch, Profile: "dev", ProcessName: "Onboarding", EntityID: "8", CaseID: "5015", At: now.Add(-20 * time.Second)},
	}, RenderOptions{Now: now, FadeAfter: 7 * 24 * time.Hour})

	require.NoError(t, err)
	assert.Contains(t, output, "records: 3")
	assert.Contains(t, output, "3 days ago (15 Oct)")
	assert.Contains(t, output, "2 hours ago")
	assert.Contains(t, output, "just now")
	assert.Contains(t, output, "launched case 5014")
	assert.Contains(t, output, "completed Step2-Manual in case 5014")
	assert.Contains(t, output, "entity 8")
	assert.Contains(t, output, "[dev]")
}

func TestRenderHistoryWithoutNowShowsTimestamps(t *testing.T) {
	at := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)

	output, err := RenderHistory([]domain.LaunchRecord{
		{Kind: domain.RecordKindLaunch, ProcessName: "RegisterUser", CaseID: "1", At: at},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "2026-10-01 09:30")
}

func TestRenderHistoryEmpty(t *testing.T) {
	output, err := RenderHistory(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Nothing launched yet.")
}

func TestAgeColorFadesOlderRecords(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	opts := RenderOptions{Now: now, FadeAfter: 10 * time.Hour}

	assert.Equal(t, lipgloss.Color("255"), ageColor(now, opts))
	assert.Equal(t, lipgloss.Color("240"), ageColor(now.Add(-20*time.Hour), opts))
	assert.Equal(t, lipgloss.Color("255"), ageColor(now.Add(-20*time.Hour), RenderOptions{Now: now}))
}
