package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Revival turns loosely-typed stored JSON back into model values. Each
// record is validated on its own so one malformed entry never poisons
// the rest of the collection; callers drop invalid records and keep
// loading.

type rawOccasion struct {
	Label *string `json:"label"`
	Date  *string `json:"date"`
}

type rawMember struct {
	ID           *int          `json:"id"`
	Name         *string       `json:"name"`
	Gender       *string       `json:"gender"`
	Connection   *string       `json:"connection"`
	Likings      *string       `json:"likings"`
	Birthday     *string       `json:"birthday"`
	SpecialDates []rawOccasion `json:"specialDates"`
}

// ReviveMember validates a single stored member record. The returned
// error names the failing field so the drop policy stays observable in
// logs. Occasions with blank labels or unparseable dates are dropped
// silently inside an otherwise valid member.
func ReviveMember(raw json.RawMessage) (*Member, error) {
	var candidate rawMember
	if err := json.Unmarshal(raw, &candidate); err != nil {
		return nil, fmt.Errorf("not a member object: %w", err)
	}

	switch {
	case candidate.ID == nil:
		return nil, fmt.Errorf("missing id")
	case candidate.Name == nil:
		return nil, fmt.Errorf("missing name")
	case candidate.Gender == nil:
		return nil, fmt.Errorf("missing gender")
	case candidate.Connection == nil:
		return nil, fmt.Errorf("missing connection")
	}

	set := newOccasionSet()
	for _, entry := range candidate.SpecialDates {
		if entry.Label == nil || entry.Date == nil {
			continue
		}
		set.put(*entry.Label, *entry.Date)
	}
	// Legacy records carried the birthday outside the occasion set.
	if candidate.Birthday != nil {
		set.put(BirthdayLabel, *candidate.Birthday)
	}

	member := &Member{
		ID:           *candidate.ID,
		Name:         *candidate.Name,
		Gender:       *candidate.Gender,
		Connection:   *candidate.Connection,
		SpecialDates: set.ordered,
	}
	if candidate.Likings != nil {
		member.Likings = *candidate.Likings
	}
	return member, nil
}

type rawProduct struct {
	ID           *string  `json:"id"`
	MemberID     *int     `json:"memberId"`
	Name         *string  `json:"name"`
	URL          *string  `json:"url"`
	Notes        *string  `json:"notes"`
	PriceDisplay *string  `json:"priceDisplay"`
	PriceValue   *float64 `json:"priceValue"`
	CreatedAt    *string  `json:"createdAt"`
	UpdatedAt    *string  `json:"updatedAt"`
}

// ReviveMemberProduct validates a single stored product record.
// Optional fields are kept only when they carry a usable value.
func ReviveMemberProduct(raw json.RawMessage) (*MemberProduct, error) {
	var candidate rawProduct
	if err := json.Unmarshal(raw, &candidate); err != nil {
		return nil, fmt.Errorf("not a product object: %w", err)
	}

	switch {
	case candidate.ID == nil || *candidate.ID == "":
		return nil, fmt.Errorf("missing id")
	case candidate.MemberID == nil:
		return nil, fmt.Errorf("missing memberId")
	case candidate.Name == nil || strings.TrimSpace(*candidate.Name) == "":
		return nil, fmt.Errorf("missing name")
	case candidate.CreatedAt == nil:
		return nil, fmt.Errorf("missing createdAt")
	}

	product := &MemberProduct{
		ID:        *candidate.ID,
		MemberID:  *candidate.MemberID,
		Name:      *candidate.Name,
		CreatedAt: *candidate.CreatedAt,
	}
	if candidate.URL != nil && strings.TrimSpace(*candidate.URL) != "" {
		product.URL = strings.TrimSpace(*candidate.URL)
	}
	if candidate.Notes != nil && strings.TrimSpace(*candidate.Notes) != "" {
		product.Notes = strings.TrimSpace(*candidate.Notes)
	}
	if candidate.PriceDisplay != nil && strings.TrimSpace(*candidate.PriceDisplay) != "" {
		product.PriceDisplay = strings.TrimSpace(*candidate.PriceDisplay)
	}
	if candidate.PriceValue != nil {
		product.PriceValue = candidate.PriceValue
	}
	if candidate.UpdatedAt != nil && *candidate.UpdatedAt != "" {
		product.UpdatedAt = *candidate.UpdatedAt
	}
	return product, nil
}
