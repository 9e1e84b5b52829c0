package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMemberSlug(t *testing.T) {
	cases := []struct {
		name string
		id   int
		want string
	}{
		{"Ann Smith", 1, "ann-smith"},
		{"Zoë", 2, "zoe"},
		{"  José   García ", 3, "jose-garcia"},
		{"Anne-Marie O'Neill", 4, "anne-marie-o-neill"},
		{"Ørjan", 5, "rjan"}, // Ø has no combining-mark decomposition
		{"123", 6, "123"},
		{"!!!", 7, "member-7"},
		{"", 8, "member-8"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ToMemberSlug(tc.name, tc.id), "name %q", tc.name)
	}
}
