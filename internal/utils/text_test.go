package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"JANE'S CAFE", "Jane's Cafe"},
		{"123 main st", "123 Main St"},
		{"  new   york ", "New York"},
		{"o'hare", "O'hare"},
		{"ÉCOLE du nord", "École Du Nord"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TitleCase(tt.input))
		})
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "coffee-shops", Slugify("Coffee Shops"))
	assert.Equal(t, "bars-restaurants", Slugify("  Bars & Restaurants!"))
	assert.Equal(t, "café", Slugify("Café"))
	assert.Equal(t, "", Slugify("--"))
}

func TestIsStateCode(t *testing.T) {
	assert.True(t, IsStateCode("IL"))
	assert.False(t, IsStateCode("il"))
	assert.False(t, IsStateCode("ILL"))
	assert.False(t, IsStateCode(""))
}

func TestStateName(t *testing.T) {
	assert.Equal(t, "Illinois", StateName("IL"))
	assert.Equal(t, "District of Columbia", StateName("DC"))
	assert.Equal(t, "ZZ", StateName("ZZ"))
}
