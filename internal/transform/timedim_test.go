package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCalendarCompleteness(t *testing.T) {
	rows := BuildCalendar()

	// 2023 and 2024 together, 2024 being a leap year.
	require.Len(t, rows, 731)
	assert.Equal(t, 20230101, rows[0].DateID)
	assert.Equal(t, 20241231, rows[len(rows)-1].DateID)

	seen := make(map[int]bool, len(rows))
	for _, r := range rows {
		assert.False(t, seen[r.DateID], "duplicate DateID %d", r.DateID)
		seen[r.DateID] = true
		assert.Equal(t, (r.Month-1)/3+1, r.Quarter, "quarter for %d", r.DateID)
	}
}

func TestBuildCalendarDerivedFields(t *testing.T) {
	rows := BuildCalendar()

	byID := make(map[int]int, len(rows))
	for i, r := range rows {
		byID[r.DateID] = i
	}

	// 2023-06-15 is a Thursday in Q2.
	r := rows[byID[20230615]]
	assert.Equal(t, "2023-06-15", r.FullDate)
	assert.Equal(t, 2023, r.Year)
	assert.Equal(t, 6, r.Month)
	assert.Equal(t, 15, r.Day)
	assert.Equal(t, 2, r.Quarter)
	assert.Equal(t, "June", r.MonthName)
	assert.Equal(t, "Thursday", r.DayName)
	assert.Equal(t, 3, r.DayOfWeek, "Thursday is 3 with Monday as 0")

	// 2023-01-01 is a Sunday, the last day of the Monday-first week.
	assert.Equal(t, 6, rows[byID[20230101]].DayOfWeek)
	// 2023-01-02 is a Monday.
	assert.Equal(t, 0, rows[byID[20230102]].DayOfWeek)
}

func TestDateID(t *testing.T) {
	assert.Equal(t, 20230615, DateID(time.Date(2023, 6, 15, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, 20241231, DateID(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
	// Outside the generated window the ID is still derived; the foreign key
	// simply dangles.
	assert.Equal(t, 20250101, DateID(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}
