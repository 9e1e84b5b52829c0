package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/MayerAttila/Gifty/models"
)

// CalendarEvent is one occasion occurrence inside a day bucket.
type CalendarEvent struct {
	MemberName string `json:"memberName"`
	Label      string `json:"label"`
}

// MonthEvent is an entry of the flat this-month list. Key is synthetic
// and stays unique even when two members share a day and label.
type MonthEvent struct {
	Key        string    `json:"key"`
	MemberName string    `json:"memberName"`
	Label      string    `json:"label"`
	Occurrence time.Time `json:"occurrence"`
}

// MonthData is everything the calendar view needs for one month.
type MonthData struct {
	Year        int                        `json:"year"`
	Month       int                        `json:"month"`
	Days        []DayCell                  `json:"days"`
	EventsByDay map[string][]CalendarEvent `json:"eventsByDay"`
	Events      []MonthEvent               `json:"events"`
}

// BuildMonthData aggregates the member collection against one displayed
// month. It is a pure function of its inputs and is recomputed on every
// request; no state is kept between calls.
func BuildMonthData(year int, month time.Month, members []models.Member) MonthData {
	eventsByDay := make(map[string][]CalendarEvent)
	dayDates := make(map[string]time.Time)

	for _, member := range members {
		for _, occ := range member.SpecialDates {
			occurrence, ok := OccurrenceInMonth(occ.Date, year, month)
			if !ok {
				continue
			}
			key := models.DateKey(occurrence)
			eventsByDay[key] = append(eventsByDay[key], CalendarEvent{
				MemberName: member.Name,
				Label:      occ.Label,
			})
			dayDates[key] = occurrence
		}
	}

	for _, bucket := range eventsByDay {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].MemberName < bucket[j].MemberName
		})
	}

	// Zero-padded day keys sort chronologically.
	keys := make([]string, 0, len(eventsByDay))
	for key := range eventsByDay {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var events []MonthEvent
	for _, key := range keys {
		for i, event := range eventsByDay[key] {
			events = append(events, MonthEvent{
				Key:        fmt.Sprintf("%s-%s-%s-%d", key, event.MemberName, event.Label, i),
				MemberName: event.MemberName,
				Label:      event.Label,
				Occurrence: dayDates[key],
			})
		}
	}

	return MonthData{
		Year:        year,
		Month:       int(month),
		Days:        MonthMatrix(year, month),
		EventsByDay: eventsByDay,
		Events:      events,
	}
}

// BuildMonthWindow builds the rolling month rail around a center date:
// `past` months back through `future` months ahead, inclusive of the
// center month.
func BuildMonthWindow(center time.Time, past, future int, members []models.Member) []MonthData {
	if past < 0 {
		past = 0
	}
	if future < 0 {
		future = 0
	}

	anchor := time.Date(center.Year(), center.Month(), 1, 0, 0, 0, 0, time.Local)
	window := make([]MonthData, 0, past+future+1)
	for offset := -past; offset <= future; offset++ {
		m := anchor.AddDate(0, offset, 0)
		window = append(window, BuildMonthData(m.Year(), m.Month(), members))
	}
	return window
}

// UpcomingEvents lists every occasion occurrence within the next `days`
// days from today, chronological, ties broken by member name for a
// stable panel ordering.
func UpcomingEvents(members []models.Member, today time.Time, days int) []MonthEvent {
	if days <= 0 {
		days = 30
	}
	start := models.Midnight(today)
	end := start.AddDate(0, 0, days)

	var events []MonthEvent
	for _, member := range members {
		for _, occ := range member.SpecialDates {
			next, ok := NextOccurrence(occ.Date, start)
			if !ok || !next.Before(end) {
				continue
			}
			events = append(events, MonthEvent{
				MemberName: member.Name,
				Label:      occ.Label,
				Occurrence: next,
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Occurrence.Equal(events[j].Occurrence) {
			return events[i].Occurrence.Before(events[j].Occurrence)
		}
		return events[i].MemberName < events[j].MemberName
	})
	for i := range events {
		events[i].Key = fmt.Sprintf("%s-%s-%s-%d",
			models.DateKey(events[i].Occurrence), events[i].MemberName, events[i].Label, i)
	}
	return events
}
