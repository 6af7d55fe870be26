package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palette-lab/api/models"
)

func TestNameAchromatic(t *testing.T) {
	tests := []struct {
		hsl  models.HSL
		want string
	}{
		{models.HSL{H: 0, S: 0, L: 10}, "Black"},
		{models.HSL{H: 0, S: 0, L: 30}, "Dark Gray"},
		{models.HSL{H: 0, S: 0, L: 50}, "Gray"},
		{models.HSL{H: 0, S: 0, L: 70}, "Light Gray"},
		{models.HSL{H: 0, S: 0, L: 85}, "White"},

		// Hue is ignored below the saturation threshold.
		{models.HSL{H: 200, S: 9, L: 50}, "Gray"},
		{models.HSL{H: 120, S: 5, L: 15}, "Black"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Name(tt.hsl), "hsl %v", tt.hsl)
	}
}

func TestNameHueBands(t *testing.T) {
	tests := []struct {
		hsl  models.HSL
		want string
	}{
		{models.HSL{H: 0, S: 100, L: 50}, "Vivid Red"},
		{models.HSL{H: 15, S: 60, L: 50}, "Red"},
		{models.HSL{H: 16, S: 60, L: 50}, "Orange"},
		{models.HSL{H: 70, S: 60, L: 50}, "Yellow"},
		{models.HSL{H: 71, S: 60, L: 50}, "Green"},
		{models.HSL{H: 180, S: 60, L: 50}, "Cyan"},
		{models.HSL{H: 240, S: 60, L: 50}, "Blue"},
		{models.HSL{H: 270, S: 60, L: 50}, "Purple"},
		{models.HSL{H: 300, S: 60, L: 50}, "Magenta"},

		// The band above 330 wraps back to red.
		{models.HSL{H: 345, S: 60, L: 50}, "Red"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Name(tt.hsl), "hsl %v", tt.hsl)
	}
}

func TestNamePrefixPrecedence(t *testing.T) {
	tests := []struct {
		hsl  models.HSL
		want string
	}{
		// Lightness beats saturation.
		{models.HSL{H: 0, S: 100, L: 20}, "Dark Red"},
		{models.HSL{H: 240, S: 100, L: 80}, "Light Blue"},
		{models.HSL{H: 120, S: 30, L: 50}, "Pale Green"},
		{models.HSL{H: 120, S: 90, L: 50}, "Vivid Green"},
		// Mid saturation and lightness gets no prefix.
		{models.HSL{H: 120, S: 60, L: 50}, "Green"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Name(tt.hsl), "hsl %v", tt.hsl)
	}
}
