package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviveMemberValid(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 4,
		"name": "Ann",
		"gender": "female",
		"connection": "sister",
		"likings": "books, tea",
		"specialDates": [
			{"label": "Birthday", "date": "2000-03-05"},
			{"label": "Graduation", "date": "2018-05-20T00:00:00Z"}
		]
	}`)

	member, err := ReviveMember(raw)
	require.NoError(t, err)
	assert.Equal(t, 4, member.ID)
	assert.Equal(t, "Ann", member.Name)
	assert.Equal(t, "books, tea", member.Likings)
	require.Len(t, member.SpecialDates, 2)
	assert.Equal(t, time.Date(2000, time.March, 5, 0, 0, 0, 0, time.Local), member.SpecialDates[0].Date)
}

func TestReviveMemberMissingRequiredField(t *testing.T) {
	cases := map[string]string{
		"missing name":       `{"id": 1, "gender": "m", "connection": "friend"}`,
		"missing id":         `{"name": "Bob", "gender": "m", "connection": "friend"}`,
		"missing gender":     `{"id": 1, "name": "Bob", "connection": "friend"}`,
		"missing connection": `{"id": 1, "name": "Bob", "gender": "m"}`,
		"not an object":      `"just a string"`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReviveMember(json.RawMessage(raw))
			assert.Error(t, err)
		})
	}
}

func TestReviveMemberDropsBrokenOccasions(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 1, "name": "Bob", "gender": "m", "connection": "friend",
		"specialDates": [
			{"label": "Birthday", "date": "garbage"},
			{"label": "  ", "date": "2020-01-01"},
			{"label": "Keeps", "date": "2020-01-01"},
			{"label": "NoDate"}
		]
	}`)

	member, err := ReviveMember(raw)
	require.NoError(t, err)
	require.Len(t, member.SpecialDates, 1)
	assert.Equal(t, "Keeps", member.SpecialDates[0].Label)
}

func TestReviveMemberLegacyBirthdayField(t *testing.T) {
	raw := json.RawMessage(`{
		"id": 1, "name": "Bob", "gender": "m", "connection": "friend",
		"birthday": "1990-11-12"
	}`)

	member, err := ReviveMember(raw)
	require.NoError(t, err)
	require.Len(t, member.SpecialDates, 1)
	assert.Equal(t, BirthdayLabel, member.SpecialDates[0].Label)
	assert.Equal(t, time.Date(1990, time.November, 12, 0, 0, 0, 0, time.Local), member.SpecialDates[0].Date)
}

func TestReviveMemberProduct(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "p-1",
		"memberId": 4,
		"name": "Teapot",
		"url": "  https://example.com/teapot  ",
		"priceDisplay": "24,99 €",
		"priceValue": 24.99,
		"createdAt": "2024-01-02T03:04:05Z"
	}`)

	product, err := ReviveMemberProduct(raw)
	require.NoError(t, err)
	assert.Equal(t, "p-1", product.ID)
	assert.Equal(t, 4, product.MemberID)
	assert.Equal(t, "https://example.com/teapot", product.URL)
	require.NotNil(t, product.PriceValue)
	assert.InDelta(t, 24.99, *product.PriceValue, 0.001)
	assert.Empty(t, product.Notes)
}

func TestReviveMemberProductMissingFields(t *testing.T) {
	cases := map[string]string{
		"missing id":        `{"memberId": 1, "name": "X", "createdAt": "2024-01-01T00:00:00Z"}`,
		"blank name":        `{"id": "p", "memberId": 1, "name": "  ", "createdAt": "2024-01-01T00:00:00Z"}`,
		"missing memberId":  `{"id": "p", "name": "X", "createdAt": "2024-01-01T00:00:00Z"}`,
		"missing createdAt": `{"id": "p", "memberId": 1, "name": "X"}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReviveMemberProduct(json.RawMessage(raw))
			assert.Error(t, err)
		})
	}
}
