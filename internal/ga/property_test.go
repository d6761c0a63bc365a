package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyResourceName(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"int", 12345, "properties/12345"},
		{"int64", int64(12345), "properties/12345"},
		{"json number", float64(12345), "properties/12345"},
		{"zero", 0, "properties/0"},
		{"digit string", "12345", "properties/12345"},
		{"digit string with spaces", "  12345  ", "properties/12345"},
		{"resource name", "properties/12345", "properties/12345"},
		{"resource name with spaces", " properties/12345 ", "properties/12345"},
		{"leading zeros normalised", "0012345", "properties/12345"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PropertyResourceName(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPropertyResourceName_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"non-digit string", "abc"},
		{"resource name with non-digits", "properties/abc"},
		{"negative int", -5},
		{"negative number", float64(-5)},
		{"fractional number", 123.45},
		{"negative string", "-5"},
		{"wrong prefix", "accounts/12345"},
		{"extra path segment", "properties/12/34"},
		{"empty string", ""},
		{"bare prefix", "properties/"},
		{"nil", nil},
		{"bool", true},
		{"mapping", map[string]any{"id": 12345}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := PropertyResourceName(tc.input)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
