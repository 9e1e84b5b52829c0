package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MayerAttila/Gifty/utils"
)

// BirthdayLabel is the reserved occasion label the member forms treat
// specially. It is stored like any other occasion.
const BirthdayLabel = "Birthday"

// Occasion is a labeled recurring date attached to a member.
type Occasion struct {
	Label string    `json:"label"`
	Date  time.Time `json:"date"`
}

// MarshalJSON writes the date in its canonical YYYY-MM-DD form.
func (o Occasion) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Label string `json:"label"`
		Date  string `json:"date"`
	}{
		Label: o.Label,
		Date:  o.Date.Format(DateLayout),
	})
}

// UnmarshalJSON accepts the canonical date form as well as RFC 3339.
func (o *Occasion) UnmarshalJSON(data []byte) error {
	var raw struct {
		Label string `json:"label"`
		Date  string `json:"date"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	date, ok := ParseCalendarDate(raw.Date)
	if !ok {
		return fmt.Errorf("invalid occasion date %q", raw.Date)
	}
	o.Label = raw.Label
	o.Date = date
	return nil
}

type Member struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Gender       string     `json:"gender"`
	Connection   string     `json:"connection"`
	Likings      string     `json:"likings,omitempty"`
	SpecialDates []Occasion `json:"specialDates,omitempty"`
}

// Slug returns the URL-safe identifier used to address this member.
func (m *Member) Slug() string {
	return utils.ToMemberSlug(m.Name, m.ID)
}

type OccasionInput struct {
	Label string `json:"label" binding:"required"`
	Date  string `json:"date" binding:"required"`
}

type MemberRequest struct {
	Name         string          `json:"name" binding:"required"`
	Gender       string          `json:"gender" binding:"required"`
	Connection   string          `json:"connection" binding:"required"`
	Birthday     string          `json:"birthday"`
	Likings      string          `json:"likings"`
	SpecialDates []OccasionInput `json:"specialDates"`
}

// Occasions folds the request's occasion inputs plus the dedicated
// birthday field into a deduplicated occasion set. Labels are compared
// case-insensitively after trimming, with the last write winning while
// first-seen order is preserved. Entries with empty labels or
// unparseable dates are skipped.
func (r *MemberRequest) Occasions() []Occasion {
	set := newOccasionSet()
	for _, input := range r.SpecialDates {
		set.put(input.Label, input.Date)
	}
	set.put(BirthdayLabel, r.Birthday)
	return set.ordered
}

// occasionSet deduplicates occasions by case-insensitive label while
// keeping insertion order, mirroring how the collection is revived from
// storage.
type occasionSet struct {
	index   map[string]int
	ordered []Occasion
}

func newOccasionSet() *occasionSet {
	return &occasionSet{index: make(map[string]int)}
}

func (s *occasionSet) put(label, rawDate string) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return
	}
	date, ok := ParseCalendarDate(rawDate)
	if !ok {
		return
	}

	occ := Occasion{Label: trimmed, Date: date}
	key := strings.ToLower(trimmed)
	if at, exists := s.index[key]; exists {
		s.ordered[at] = occ
		return
	}
	s.index[key] = len(s.ordered)
	s.ordered = append(s.ordered, occ)
}

// NextMemberID assigns ids as max(existing)+1.
func NextMemberID(members []Member) int {
	next := 1
	for _, m := range members {
		if m.ID >= next {
			next = m.ID + 1
		}
	}
	return next
}

// FindMemberBySlug resolves a slug against the collection. Returns nil
// when no member matches.
func FindMemberBySlug(members []Member, slug string) *Member {
	normalized := strings.ToLower(strings.TrimSpace(slug))
	for i := range members {
		if members[i].Slug() == normalized {
			return &members[i]
		}
	}
	return nil
}
