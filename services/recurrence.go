package services

import (
	"sort"
	"time"

	"github.com/MayerAttila/Gifty/models"
)

// maxYearScan bounds the next-occurrence search. Feb 29 occasions can
// skip up to eight years between valid occurrences (1896 -> 1904).
const maxYearScan = 8

// NextOccurrence projects an occasion's stored date onto its next
// annual occurrence on or after today. The candidate keeps the
// occasion's month and day in today's year; when building that date
// rolls into the following month (Feb 29 in a non-leap year) the year
// is skipped entirely, and a candidate already behind today advances by
// one year. Returns false only when no year in range yields a valid
// date, which cannot happen for real calendar input.
func NextOccurrence(occasion time.Time, today time.Time) (time.Time, bool) {
	start := models.Midnight(today)
	month, day := occasion.Month(), occasion.Day()

	for year := start.Year(); year <= start.Year()+maxYearScan; year++ {
		candidate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		if candidate.Month() != month {
			continue
		}
		if candidate.Before(start) {
			continue
		}
		return candidate, true
	}
	return time.Time{}, false
}

// OccurrenceInMonth reconstructs an occasion's date inside a specific
// displayed (year, month). Unlike NextOccurrence this is evaluated per
// month: a March 5 birthday lands in every displayed March, not just
// the nearest one. Returns false when the day overflows the month
// (Feb 29 against a non-leap February) or the occasion belongs to a
// different month.
func OccurrenceInMonth(occasion time.Time, year int, month time.Month) (time.Time, bool) {
	reconstructed := time.Date(year, occasion.Month(), occasion.Day(), 0, 0, 0, 0, time.Local)
	if reconstructed.Month() != occasion.Month() {
		return time.Time{}, false
	}
	if reconstructed.Month() != month {
		return time.Time{}, false
	}
	return reconstructed, true
}

// NextOccasion picks the member occasion whose next occurrence is
// nearest to today. Occasions with no valid upcoming occurrence are
// ignored; ties keep the stored occasion order.
func NextOccasion(member models.Member, today time.Time) (models.Occasion, time.Time, bool) {
	var (
		best     models.Occasion
		bestDate time.Time
		found    bool
	)
	for _, occ := range member.SpecialDates {
		next, ok := NextOccurrence(occ.Date, today)
		if !ok {
			continue
		}
		if !found || next.Before(bestDate) {
			best, bestDate, found = occ, next, true
		}
	}
	return best, bestDate, found
}

// SortMembersByUpcoming orders members closest-occasion-first. The sort
// is stable so members with identical next occurrences, and members
// with no occasions at all (which group at the end), keep their stored
// order across renders.
func SortMembersByUpcoming(members []models.Member, today time.Time) []models.Member {
	sorted := make([]models.Member, len(members))
	copy(sorted, members)

	next := make(map[int]time.Time, len(sorted))
	for _, m := range sorted {
		if _, date, ok := NextOccasion(m, today); ok {
			next[m.ID] = date
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		di, iOK := next[sorted[i].ID]
		dj, jOK := next[sorted[j].ID]
		if iOK != jOK {
			return iOK
		}
		if !iOK {
			return false
		}
		return di.Before(dj)
	})
	return sorted
}
