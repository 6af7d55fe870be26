// Package colors implements the color model behind the palette API:
// exact conversion between HEX, RGB and HSL, free-form color parsing,
// harmony palette generation and a coarse naming heuristic. Every
// function is pure; concurrent callers need no coordination.
package colors

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/palette-lab/api/models"
)

// ErrInvalidFormat is returned when input text matches none of the
// recognized hex/rgb/hsl patterns.
var ErrInvalidFormat = errors.New("invalid color format")

var (
	rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	hslPattern = regexp.MustCompile(`^hsl\(\s*(\d{1,3})\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%\s*\)$`)
)

// HexToRGB converts a hex color string to RGB. The leading # is
// optional; both 3-digit shorthand (each digit doubled) and 6-digit
// full form are accepted, case-insensitive.
func HexToRGB(hex string) (models.RGB, error) {
	cleaned := strings.TrimPrefix(hex, "#")

	if len(cleaned) == 3 {
		cleaned = strings.Repeat(string(cleaned[0]), 2) +
			strings.Repeat(string(cleaned[1]), 2) +
			strings.Repeat(string(cleaned[2]), 2)
	}

	if len(cleaned) != 6 {
		return models.RGB{}, fmt.Errorf("%w: %q has invalid length", ErrInvalidFormat, hex)
	}

	value, parseErr := strconv.ParseUint(cleaned, 16, 32)
	if parseErr != nil {
		return models.RGB{}, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidFormat, hex)
	}

	return models.RGB{
		R: int(value >> 16 & 0xFF),
		G: int(value >> 8 & 0xFF),
		B: int(value & 0xFF),
	}, nil
}

// RGBToHex formats an RGB triple as an upper-case #RRGGBB string. Each
// channel is clamped to [0, 255], so the result is well-formed for any
// numeric input.
func RGBToHex(rgb models.RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(rgb.R), clampChannel(rgb.G), clampChannel(rgb.B))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// RGBToHSL converts an RGB triple to HSL with integer-rounded hue in
// degrees and saturation/lightness in percent.
func RGBToHSL(rgb models.RGB) models.HSL {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return models.HSL{
		H: int(math.Round(h*360)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToRGB converts an HSL triple to RGB. Achromatic colors (s == 0)
// map every channel to lightness directly.
func HSLToRGB(hsl models.HSL) models.RGB {
	h := float64(hsl.H) / 360
	s := float64(hsl.S) / 100
	l := float64(hsl.L) / 100

	if s == 0 {
		v := int(math.Round(l * 255))
		return models.RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return models.RGB{
		R: int(math.Round(hueToChannel(p, q, h+1.0/3.0) * 255)),
		G: int(math.Round(hueToChannel(p, q, h) * 255)),
		B: int(math.Round(hueToChannel(p, q, h-1.0/3.0) * 255)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// Parse accepts a #-prefixed hex string, an rgb(r, g, b) pattern, an
// hsl(h, s%, l%) pattern, or a bare hex string, in that order. The
// matched representation is kept verbatim and the other two are derived
// from it, so the result is always internally consistent.
func Parse(input string) (models.ColorInfo, error) {
	trimmed := strings.TrimSpace(input)

	if strings.HasPrefix(trimmed, "#") {
		rgb, err := HexToRGB(trimmed)
		if err != nil {
			return models.ColorInfo{}, err
		}
		return FromRGB(rgb), nil
	}

	if match := rgbPattern.FindStringSubmatch(trimmed); match != nil {
		r, _ := strconv.Atoi(match[1])
		g, _ := strconv.Atoi(match[2])
		b, _ := strconv.Atoi(match[3])
		if r > 255 || g > 255 || b > 255 {
			return models.ColorInfo{}, fmt.Errorf("%w: rgb channels must be within [0, 255]", ErrInvalidFormat)
		}
		return FromRGB(models.RGB{R: r, G: g, B: b}), nil
	}

	if match := hslPattern.FindStringSubmatch(trimmed); match != nil {
		h, _ := strconv.Atoi(match[1])
		s, _ := strconv.Atoi(match[2])
		l, _ := strconv.Atoi(match[3])
		if h >= 360 || s > 100 || l > 100 {
			return models.ColorInfo{}, fmt.Errorf("%w: hsl values out of range", ErrInvalidFormat)
		}
		return FromHSL(models.HSL{H: h, S: s, L: l}), nil
	}

	// Last attempt: a bare hex string without the # prefix.
	rgb, err := HexToRGB(trimmed)
	if err != nil {
		return models.ColorInfo{}, fmt.Errorf("%w: %q matched no known pattern", ErrInvalidFormat, input)
	}
	return FromRGB(rgb), nil
}

// FromRGB builds a consistent ColorInfo from an RGB triple.
func FromRGB(rgb models.RGB) models.ColorInfo {
	hsl := RGBToHSL(rgb)
	return models.ColorInfo{
		Hex:  RGBToHex(rgb),
		RGB:  rgb,
		HSL:  hsl,
		Name: Name(hsl),
	}
}

// FromHSL builds a consistent ColorInfo from an HSL triple. The given
// HSL is kept as-is; RGB and hex are derived from it.
func FromHSL(hsl models.HSL) models.ColorInfo {
	rgb := HSLToRGB(hsl)
	return models.ColorInfo{
		Hex:  RGBToHex(rgb),
		RGB:  rgb,
		HSL:  hsl,
		Name: Name(hsl),
	}
}

// Random returns a uniformly sampled color.
func Random() models.ColorInfo {
	return FromRGB(models.RGB{
		R: rand.Intn(256),
		G: rand.Intn(256),
		B: rand.Intn(256),
	})
}
