package colors

import "github.com/palette-lab/api/models"

// hueBand maps hues up to and including Max onto a coarse color name.
type hueBand struct {
	Max  int
	Name string
}

// The last band and the first both resolve to Red because hue wraps.
var hueBands = []hueBand{
	{15, "Red"},
	{45, "Orange"},
	{70, "Yellow"},
	{150, "Green"},
	{210, "Cyan"},
	{250, "Blue"},
	{290, "Purple"},
	{330, "Magenta"},
	{360, "Red"},
}

// Name maps an HSL value to an approximate human-readable label. It is
// deliberately coarse: near-achromatic colors become shades of gray,
// everything else gets a banded hue name with at most one
// lightness/saturation prefix.
func Name(hsl models.HSL) string {
	// Near-achromatic colors are graded by lightness alone.
	if hsl.S < 10 {
		switch {
		case hsl.L < 20:
			return "Black"
		case hsl.L < 40:
			return "Dark Gray"
		case hsl.L < 60:
			return "Gray"
		case hsl.L < 80:
			return "Light Gray"
		default:
			return "White"
		}
	}

	hueName := "Red"
	for _, band := range hueBands {
		if hsl.H <= band.Max {
			hueName = band.Name
			break
		}
	}

	var prefix string
	switch {
	case hsl.L < 30:
		prefix = "Dark "
	case hsl.L > 70:
		prefix = "Light "
	case hsl.S < 40:
		prefix = "Pale "
	case hsl.S > 80:
		prefix = "Vivid "
	}

	return prefix + hueName
}
