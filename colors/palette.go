package colors

import (
	"fmt"
	"math"

	"github.com/palette-lab/api/models"
)

// Variant identifies one of the fixed palette derivation rules.
type Variant string

const (
	Complementary Variant = "complementary"
	Analogous     Variant = "analogous"
	Triadic       Variant = "triadic"
	Tetradic      Variant = "tetradic"
	Monochromatic Variant = "monochromatic"
)

// DefaultMonochromeCount is used when a monochromatic request carries
// no explicit count.
const DefaultMonochromeCount = 5

// MinMonochromeCount and MaxMonochromeCount bound the monochromatic
// sample count. Callers validate against these before calling Generate.
const (
	MinMonochromeCount = 3
	MaxMonochromeCount = 10
)

// harmonyOffsets maps each harmony variant to the hue rotations applied
// to the base color. Monochromatic is not listed; it varies lightness
// instead of hue.
var harmonyOffsets = map[Variant][]int{
	Complementary: {180},
	Analogous:     {-30, 0, 30},
	Triadic:       {0, 120, 240},
	Tetradic:      {0, 90, 180, 270},
}

// ParseVariant maps a request string onto a known palette variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case Complementary, Analogous, Triadic, Tetradic, Monochromatic:
		return v, nil
	}
	return "", fmt.Errorf("unknown palette variant %q", s)
}

// Generate derives related colors from the base color. Harmony variants
// rotate the base hue by the variant's fixed offsets; monochromatic
// steps lightness linearly from 10% to 90% across count samples. The
// count only applies to monochromatic and is assumed to be within
// [MinMonochromeCount, MaxMonochromeCount]; callers validate it at the
// request boundary.
func Generate(base models.ColorInfo, variant Variant, count int) []models.ColorInfo {
	if variant == Monochromatic {
		return monochromatic(base, count)
	}

	offsets := harmonyOffsets[variant]
	derived := make([]models.ColorInfo, 0, len(offsets))
	for _, offset := range offsets {
		derived = append(derived, FromHSL(models.HSL{
			H: wrapHue(base.HSL.H + offset),
			S: base.HSL.S,
			L: base.HSL.L,
		}))
	}
	return derived
}

// monochromatic keeps hue and saturation and spreads lightness from 10
// to 90 in equal steps.
func monochromatic(base models.ColorInfo, count int) []models.ColorInfo {
	if count == 0 {
		count = DefaultMonochromeCount
	}

	step := 80.0 / float64(count-1)
	derived := make([]models.ColorInfo, 0, count)
	for i := 0; i < count; i++ {
		derived = append(derived, FromHSL(models.HSL{
			H: base.HSL.H,
			S: base.HSL.S,
			L: int(math.Round(10 + float64(i)*step)),
		}))
	}
	return derived
}

// wrapHue keeps hue within [0, 360) even when the rotation goes
// negative.
func wrapHue(h int) int {
	return ((h % 360) + 360) % 360
}
