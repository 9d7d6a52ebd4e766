package layout

import colorful "github.com/lucasb-eyer/go-colorful"

// Hue families, as fractions of the color wheel.
const (
	bodyHue   = 0.55 // blue-grey
	roofHue   = 0.08 // warm
	windowHue = 0.55 // lit blue-white
)

// hslHex converts hue, saturation and lightness in [0,1] to a #rrggbb
// string.
func hslHex(h, s, l float64) string {
	return colorful.Hsl(h*360, s, l).Clamped().Hex()
}
