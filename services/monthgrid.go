package services

import (
	"time"

	"github.com/MayerAttila/Gifty/models"
)

// DayCell is one slot of the rendered month grid.
type DayCell struct {
	Date    time.Time `json:"date"`
	Key     string    `json:"key"`
	InMonth bool      `json:"inMonth"`
}

// MonthMatrix builds the flat ordered day-cell sequence for a month:
// full weeks starting Sunday, padded with leading and trailing days
// from the adjacent months. The cell count is always a multiple of 7.
func MonthMatrix(year int, month time.Month) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	startWeekday := int(first.Weekday())
	// Day 0 of the next month is the last day of this one.
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
	totalCells := ((startWeekday + daysInMonth + 6) / 7) * 7

	cells := make([]DayCell, 0, totalCells)
	for i := 0; i < totalCells; i++ {
		date := first.AddDate(0, 0, i-startWeekday)
		cells = append(cells, DayCell{
			Date:    date,
			Key:     models.DateKey(date),
			InMonth: date.Month() == month,
		})
	}
	return cells
}
