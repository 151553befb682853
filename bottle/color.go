package bottle

import (
	"fmt"
	"strings"
)

// Color is one unit of liquid. Colors compare by declaration order.
type Color uint8

const (
	Red Color = iota
	Green
	DGreen
	Blue
	DBlue
	Pink
	Yellow
	Grey
	Brown
	Orange
	LOrange

	numColors
)

var colorNames = [numColors]string{
	Red:     "Red",
	Green:   "Green",
	DGreen:  "DGreen",
	Blue:    "Blue",
	DBlue:   "DBlue",
	Pink:    "Pink",
	Yellow:  "Yellow",
	Grey:    "Grey",
	Brown:   "Brown",
	Orange:  "Orange",
	LOrange: "LOrange",
}

// Palette returns every valid color in ascending order.
func Palette() []Color {
	out := make([]Color, numColors)
	for i := range out {
		out[i] = Color(i)
	}

	return out
}

// Valid reports whether c belongs to the palette.
func (c Color) Valid() bool { return c < numColors }

// String returns the color name, or Color(n) for values outside the palette.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}

	return colorNames[c]
}

// ParseColor maps a color name to its Color, ignoring case.
func ParseColor(name string) (Color, error) {
	name = strings.TrimSpace(name)
	for i, n := range colorNames {
		if strings.EqualFold(n, name) {
			return Color(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}
