package colors

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palette-lab/api/models"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.RGB
	}{
		{"full form with hash", "#FF0000", models.RGB{R: 255, G: 0, B: 0}},
		{"full form without hash", "00FF00", models.RGB{R: 0, G: 255, B: 0}},
		{"lower case", "#0000ff", models.RGB{R: 0, G: 0, B: 255}},
		{"shorthand", "#F00", models.RGB{R: 255, G: 0, B: 0}},
		{"shorthand without hash", "abc", models.RGB{R: 170, G: 187, B: 204}},
		{"mixed case", "#FfAa00", models.RGB{R: 255, G: 170, B: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToRGB(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexToRGBInvalid(t *testing.T) {
	for _, input := range []string{"", "#", "#12345", "1234567", "GGGGGG", "#ZZZ", "notacolor"} {
		t.Run(input, func(t *testing.T) {
			_, err := HexToRGB(input)
			require.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestRGBToHex(t *testing.T) {
	assert.Equal(t, "#FF0000", RGBToHex(models.RGB{R: 255, G: 0, B: 0}))
	assert.Equal(t, "#00FFFF", RGBToHex(models.RGB{R: 0, G: 255, B: 255}))
	assert.Equal(t, "#0A0B0C", RGBToHex(models.RGB{R: 10, G: 11, B: 12}))

	// Out-of-range channels clamp instead of producing malformed hex.
	assert.Equal(t, "#00FF00", RGBToHex(models.RGB{R: -20, G: 300, B: 0}))
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name string
		rgb  models.RGB
		want models.HSL
	}{
		{"red", models.RGB{R: 255, G: 0, B: 0}, models.HSL{H: 0, S: 100, L: 50}},
		{"cyan", models.RGB{R: 0, G: 255, B: 255}, models.HSL{H: 180, S: 100, L: 50}},
		{"black", models.RGB{}, models.HSL{H: 0, S: 0, L: 0}},
		{"white", models.RGB{R: 255, G: 255, B: 255}, models.HSL{H: 0, S: 0, L: 100}},
		{"gray", models.RGB{R: 128, G: 128, B: 128}, models.HSL{H: 0, S: 0, L: 50}},
		{"orange", models.RGB{R: 255, G: 165, B: 0}, models.HSL{H: 39, S: 100, L: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RGBToHSL(tt.rgb))
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name string
		hsl  models.HSL
		want models.RGB
	}{
		{"red", models.HSL{H: 0, S: 100, L: 50}, models.RGB{R: 255, G: 0, B: 0}},
		{"cyan", models.HSL{H: 180, S: 100, L: 50}, models.RGB{R: 0, G: 255, B: 255}},
		{"achromatic", models.HSL{H: 0, S: 0, L: 50}, models.RGB{R: 128, G: 128, B: 128}},
		{"dark green", models.HSL{H: 120, S: 100, L: 25}, models.RGB{R: 0, G: 128, B: 0}},
		{"white", models.HSL{H: 0, S: 0, L: 100}, models.RGB{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HSLToRGB(tt.hsl))
		})
	}
}

// Hex and RGB are both integer domains, so the round trip is exact.
func TestRoundTripRGBHexRGB(t *testing.T) {
	corners := []models.RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 1, G: 2, B: 3},
	}
	for _, rgb := range corners {
		got, err := HexToRGB(RGBToHex(rgb))
		require.NoError(t, err)
		assert.Equal(t, rgb, got)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		rgb := models.RGB{R: rng.Intn(256), G: rng.Intn(256), B: rng.Intn(256)}
		got, err := HexToRGB(RGBToHex(rgb))
		require.NoError(t, err)
		require.Equal(t, rgb, got)
	}
}

// HSL -> RGB -> HSL drift stays within one unit per component at 25%
// saturation and up, where the 8-bit RGB quantization step is fine
// enough. Below that the step spans several degrees of hue and the
// one-unit bound does not hold; see TestRoundTripHSLDriftLowSaturation.
func TestRoundTripHSLDrift(t *testing.T) {
	for h := 0; h < 360; h += 30 {
		for _, s := range []int{25, 50, 75, 100} {
			for _, l := range []int{25, 40, 50, 60, 75} {
				hsl := models.HSL{H: h, S: s, L: l}
				back := RGBToHSL(HSLToRGB(hsl))

				assert.LessOrEqual(t, hueDistance(hsl.H, back.H), 1, "hue drift for %v", hsl)
				assert.LessOrEqual(t, abs(hsl.S-back.S), 1, "saturation drift for %v", hsl)
				assert.LessOrEqual(t, abs(hsl.L-back.L), 1, "lightness drift for %v", hsl)
			}
		}
	}
}

// At low saturation the chroma shrinks, so a single RGB step covers
// 60/chroma degrees of hue. Channel rounding moves the numerator and
// denominator of the recovered hue by at most one step each, bounding
// the drift by 120/chroma degrees plus the final integer rounding.
func TestRoundTripHSLDriftLowSaturation(t *testing.T) {
	// A single quantization step: hsl(1, 10%, 35%) maps to rgb(98, 81, 80)
	// and comes back with two degrees of hue drift.
	back := RGBToHSL(HSLToRGB(models.HSL{H: 1, S: 10, L: 35}))
	assert.Equal(t, models.HSL{H: 3, S: 10, L: 35}, back)

	for h := 0; h < 360; h += 15 {
		for _, s := range []int{10, 15, 20} {
			for _, l := range []int{25, 40, 50, 60, 75} {
				hsl := models.HSL{H: h, S: s, L: l}
				back := RGBToHSL(HSLToRGB(hsl))

				chroma := (1 - math.Abs(2*float64(l)/100-1)) * float64(s) / 100 * 255
				maxHueDrift := int(math.Ceil(120/chroma)) + 1

				assert.LessOrEqual(t, hueDistance(hsl.H, back.H), maxHueDrift, "hue drift for %v", hsl)
				assert.LessOrEqual(t, abs(hsl.S-back.S), 2, "saturation drift for %v", hsl)
				assert.LessOrEqual(t, abs(hsl.L-back.L), 1, "lightness drift for %v", hsl)
			}
		}
	}
}

func hueDistance(a, b int) int {
	d := abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func TestParseAcceptedForms(t *testing.T) {
	want := models.ColorInfo{
		Hex:  "#FF0000",
		RGB:  models.RGB{R: 255, G: 0, B: 0},
		HSL:  models.HSL{H: 0, S: 100, L: 50},
		Name: "Vivid Red",
	}

	for _, input := range []string{"#FF0000", "FF0000", "rgb(255, 0, 0)", "rgb(255,0,0)", "hsl(0, 100%, 50%)"} {
		t.Run(input, func(t *testing.T) {
			got, err := Parse(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseKeepsMatchedRepresentation(t *testing.T) {
	// The matched HSL is kept verbatim even when the round trip through
	// RGB would drift.
	got, err := Parse("hsl(210, 75%, 60%)")
	require.NoError(t, err)
	assert.Equal(t, models.HSL{H: 210, S: 75, L: 60}, got.HSL)
	assert.Equal(t, RGBToHex(got.RGB), got.Hex)
}

func TestParseRejected(t *testing.T) {
	for _, input := range []string{
		"notacolor",
		"",
		"rgb(256, 0, 0)",
		"rgb(1, 2)",
		"hsl(360, 100%, 50%)",
		"hsl(0, 100, 50)",
		"#FF00",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestRandomIsConsistent(t *testing.T) {
	for i := 0; i < 50; i++ {
		c := Random()
		assert.Equal(t, RGBToHex(c.RGB), c.Hex)
		assert.Equal(t, RGBToHSL(c.RGB), c.HSL)
		assert.NotEmpty(t, c.Name)
	}
}
