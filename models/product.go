package models

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MemberProduct is a gift idea tracked for a member. MemberID is a soft
// reference: deleting a member leaves its products orphaned rather than
// cascading.
type MemberProduct struct {
	ID           string   `json:"id"`
	MemberID     int      `json:"memberId"`
	Name         string   `json:"name"`
	URL          string   `json:"url,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	PriceDisplay string   `json:"priceDisplay,omitempty"`
	PriceValue   *float64 `json:"priceValue,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt,omitempty"`
}

type ProductRequest struct {
	Name  string `json:"name" binding:"required"`
	URL   string `json:"url"`
	Price string `json:"price"`
	Notes string `json:"notes"`
}

var nonPriceChars = regexp.MustCompile(`[^0-9.,]`)

// ParsePriceValue extracts a best-effort numeric value from a free-text
// price ("€ 24,99" -> 24.99). Returns nil when nothing numeric remains.
func ParsePriceValue(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	normalized := strings.ReplaceAll(nonPriceChars.ReplaceAllString(trimmed, ""), ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil
	}
	return &value
}

// NewMemberProduct builds a product from validated form values.
func NewMemberProduct(memberID int, req ProductRequest) MemberProduct {
	product := MemberProduct{
		ID:        uuid.NewString(),
		MemberID:  memberID,
		Name:      strings.TrimSpace(req.Name),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	product.applyOptional(req)
	return product
}

// ApplyUpdate replaces the editable fields and stamps UpdatedAt.
func (p *MemberProduct) ApplyUpdate(req ProductRequest) {
	p.Name = strings.TrimSpace(req.Name)
	p.URL = ""
	p.Notes = ""
	p.PriceDisplay = ""
	p.PriceValue = nil
	p.applyOptional(req)
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}

func (p *MemberProduct) applyOptional(req ProductRequest) {
	if url := strings.TrimSpace(req.URL); url != "" {
		p.URL = url
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		p.Notes = notes
	}
	if price := strings.TrimSpace(req.Price); price != "" {
		p.PriceDisplay = price
		p.PriceValue = ParsePriceValue(price)
	}
}
