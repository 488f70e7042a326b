package transform

import (
	"time"

	"github.com/dukaforge/salesmart/pkg/types"
)

// Generated calendar window, inclusive. Facts dated outside the window load
// with a dangling DateID; the source has no windowing guard and neither do
// we.
var (
	calendarStart = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	calendarEnd   = time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// DateID derives the YYYYMMDD day number for a timestamp. It is the only
// bridge between fact timestamps and the time dimension.
func DateID(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// BuildCalendar materializes one DimTime row per calendar day in the fixed
// window, independent of any source data. The result is identical on every
// run. DayOfWeek is zero-based with Monday as 0.
func BuildCalendar() []types.DimTime {
	var rows []types.DimTime
	for d := calendarStart; !d.After(calendarEnd); d = d.AddDate(0, 0, 1) {
		rows = append(rows, types.DimTime{
			DateID:    DateID(d),
			FullDate:  d.Format("2006-01-02"),
			Year:      d.Year(),
			Month:     int(d.Month()),
			Day:       d.Day(),
			Quarter:   (int(d.Month())-1)/3 + 1,
			DayOfWeek: (int(d.Weekday()) + 6) % 7,
			MonthName: d.Month().String(),
			DayName:   d.Weekday().String(),
		})
	}
	return rows
}
