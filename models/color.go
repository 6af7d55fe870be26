package models

import "fmt"

// RGB holds additive color channels, each an integer in [0, 255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees [0, 360), saturation and lightness as
// integer percentages [0, 100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// ColorInfo is the canonical color value exchanged over the wire.
// The three representations always describe the same color; Name is a
// derived label and not part of the color's identity.
type ColorInfo struct {
	Hex  string `json:"hex"`
	RGB  RGB    `json:"rgb"`
	HSL  HSL    `json:"hsl"`
	Name string `json:"name,omitempty"`
}

// PaletteResponse wraps a generated palette for API responses.
type PaletteResponse struct {
	Variant string      `json:"variant"`
	Base    ColorInfo   `json:"base"`
	Colors  []ColorInfo `json:"colors"`
}

func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
}
