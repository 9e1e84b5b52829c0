package services

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/MayerAttila/Gifty/models"
	"github.com/MayerAttila/Gifty/utils"
)

const icsProductID = "-//Gifty//Occasion Calendar//EN"

// BuildOccasionCalendar renders every valid occasion as an all-day
// yearly-recurring VEVENT. Feb 29 occasions carry the same FREQ=YEARLY
// rule; RFC 5545 yearly recurrence only fires in leap years, which
// matches how the calendar views suppress the day elsewhere.
func BuildOccasionCalendar(members []models.Member, now time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName("Gifty Occasions")

	for _, member := range members {
		slug := utils.ToMemberSlug(member.Name, member.ID)
		for _, occ := range member.SpecialDates {
			uid := fmt.Sprintf("member-%d-%s@gifty", member.ID, utils.ToMemberSlug(occ.Label, member.ID))

			event := cal.AddEvent(uid)
			event.SetDtStampTime(now.UTC())
			event.SetAllDayStartAt(occ.Date)
			event.SetAllDayEndAt(occ.Date.AddDate(0, 0, 1))
			event.SetSummary(fmt.Sprintf("%s: %s", member.Name, occ.Label))
			event.SetDescription(fmt.Sprintf("%s for %s (member %s)", occ.Label, member.Name, slug))
			event.AddRrule("FREQ=YEARLY")
		}
	}
	return cal
}
