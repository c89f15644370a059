package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidDate(t *testing.T) {
	valid := []string{"2024-01-01", "2024-06-15", "2024-13-40"}
	for _, date := range valid {
		require.True(t, ValidDate(date), "expected %q to match the wire format", date)
	}

	invalid := []string{"", "2024-1-1", "2024/01/01", "20240101", "2024-01-01T00:00:00", "x024-01-01"}
	for _, date := range invalid {
		require.False(t, ValidDate(date), "expected %q to be rejected", date)
	}
}

func TestNormalizeEntries_FillsDefaults(t *testing.T) {
	entries := NormalizeEntries([]TaskEntryInput{
		{PlanTask: "write report"},
	})

	require.Len(t, entries, 1)
	entry := entries[0]
	require.NotEmpty(t, entry.ID)
	require.Equal(t, "Default", entry.Category)
	require.Zero(t, entry.Duration)
	require.Equal(t, "write report", entry.PlanTask)
	require.Empty(t, entry.StartTime)
	require.Empty(t, entry.EndTime)
	require.Empty(t, entry.ActualTask)
}

func TestNormalizeEntries_WellFormedUnchanged(t *testing.T) {
	duration := 45.0
	in := TaskEntryInput{
		ID:         "entry-1",
		StartTime:  "09:00",
		EndTime:    "09:45",
		PlanTask:   "standup",
		ActualTask: "standup ran long",
		Category:   "Meetings",
		Duration:   &duration,
	}

	entries := NormalizeEntries([]TaskEntryInput{in})

	require.Len(t, entries, 1)
	entry := entries[0]
	require.Equal(t, "entry-1", entry.ID)
	require.Equal(t, "09:00", entry.StartTime)
	require.Equal(t, "09:45", entry.EndTime)
	require.Equal(t, "standup", entry.PlanTask)
	require.Equal(t, "standup ran long", entry.ActualTask)
	require.Equal(t, "Meetings", entry.Category)
	require.Equal(t, 45.0, entry.Duration)
}

func TestNormalizeEntries_GeneratedIDsUniqueWithinCall(t *testing.T) {
	inputs := make([]TaskEntryInput, 50)
	entries := NormalizeEntries(inputs)

	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		require.NotEmpty(t, entry.ID)
		_, dup := seen[entry.ID]
		require.False(t, dup, "duplicate generated id %q", entry.ID)
		seen[entry.ID] = struct{}{}
	}
}

func TestNormalizeEntries_ZeroDurationPreserved(t *testing.T) {
	zero := 0.0
	entries := NormalizeEntries([]TaskEntryInput{
		{ID: "a", Duration: &zero, Category: "Work"},
	})

	require.Equal(t, 0.0, entries[0].Duration)
	require.Equal(t, "Work", entries[0].Category)
}

func TestNormalizeSummary_Defaults(t *testing.T) {
	summary := NormalizeSummary(SummaryInput{})

	require.Zero(t, summary.TotalPlannedTime)
	require.Zero(t, summary.TotalActualTime)
	require.Zero(t, summary.Efficiency)
	require.NotNil(t, summary.Categories)
	require.Empty(t, summary.Categories)
}

func TestNormalizeSummary_SuppliedValuesKept(t *testing.T) {
	planned, actual, efficiency := 480.0, 430.0, 89.5
	summary := NormalizeSummary(SummaryInput{
		TotalPlannedTime: &planned,
		TotalActualTime:  &actual,
		Efficiency:       &efficiency,
		Categories: map[string]any{
			"Work": map[string]any{"planned": 480.0},
		},
	})

	require.Equal(t, 480.0, summary.TotalPlannedTime)
	require.Equal(t, 430.0, summary.TotalActualTime)
	require.Equal(t, 89.5, summary.Efficiency)
	require.Contains(t, summary.Categories, "Work")
}
