package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Werneck0live/office-admin/internal/models"
)

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	day, err := ParseDay("2024-01-05", loc)
	require.NoError(t, err)

	start, end := DayBounds(day, loc)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 1, 5, 23, 59, 59, 999000000, loc), end)
}

func TestParseDay_Invalid(t *testing.T) {
	_, err := ParseDay("05/01/2024", time.UTC)
	assert.Error(t, err)
}

func TestDailyEntries_StrictUpperBound(t *testing.T) {
	loc := time.UTC
	src := newMemory(t)
	emp := employee("E", 0)
	insert(t, src, models.CollBuildingEmployees, emp)
	insert(t, src, models.CollAccessLogs,
		models.AccessLog{ID: models.NewID[models.AccessLog](), EmployeeID: emp.ID,
			EntryTime: time.Date(2024, 1, 5, 8, 0, 0, 0, loc), ExitTime: time.Date(2024, 1, 5, 17, 0, 0, 0, loc), Location: "Sảnh A"},
		models.AccessLog{ID: models.NewID[models.AccessLog](), EmployeeID: emp.ID,
			EntryTime: time.Date(2024, 1, 5, 23, 59, 59, 999000000, loc), Location: "Sảnh B"},
	)

	day, err := ParseDay("2024-01-05", loc)
	require.NoError(t, err)
	got, err := NewEngine(src, loc).DailyEntries(context.Background(), day)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].EntryCount)
	require.Len(t, got[0].DailyEntries, 1)
	assert.Equal(t, "Sảnh A", got[0].DailyEntries[0].Location)
	assert.True(t, time.Date(2024, 1, 5, 17, 0, 0, 0, loc).Equal(got[0].DailyEntries[0].ExitTime))
}

func TestDailyEntries_AllEmployeesInStoreOrder(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	src := newMemory(t)
	first := employee("Zed", 0)
	second := employee("Amy", 0)
	insert(t, src, models.CollBuildingEmployees, first, second)

	start := time.Date(2024, 1, 5, 0, 0, 0, 0, loc)
	insert(t, src, models.CollAccessLogs,
		models.AccessLog{EmployeeID: second.ID, EntryTime: start, Location: "in-at-midnight"},
		models.AccessLog{EmployeeID: second.ID, EntryTime: start.Add(-time.Millisecond), Location: "previous-day"},
		models.AccessLog{EmployeeID: second.ID, EntryTime: start.Add(12 * time.Hour), Location: "noon"},
		models.AccessLog{EmployeeID: models.NewID[models.BuildingEmployee](), EntryTime: start.Add(time.Hour), Location: "orphan"},
	)

	got, err := NewEngine(src, loc).DailyEntries(context.Background(), start)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Zed", got[0].FullName)
	assert.Equal(t, 0, got[0].EntryCount)
	assert.NotNil(t, got[0].DailyEntries)

	assert.Equal(t, "Amy", got[1].FullName)
	assert.Equal(t, got[1].EntryCount, len(got[1].DailyEntries))
	var locations []string
	for _, e := range got[1].DailyEntries {
		locations = append(locations, e.Location)
		assert.False(t, e.EntryTime.Before(start))
	}
	assert.Equal(t, []string{"in-at-midnight", "noon"}, locations)
}
