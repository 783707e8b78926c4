package colorutil

import "math"

// BrightenColor shifts the lightness channel by amount, clamped to [0,1],
// and recombines with the given alpha. Hue and saturation are unchanged.
func BrightenColor(hsl HSL, alpha uint8, amount float64) Color {
	adjusted := hsl
	adjusted.L = Clamp(adjusted.L+amount, 0.0, 1.0)
	return adjusted.Color(alpha)
}

// SaturateAndBrighten shifts the saturation and value channels independently,
// each clamped to [0,1]. Hue is unchanged; the result is opaque.
func SaturateAndBrighten(hsv HSV, saturateAmount, brightenAmount float64) Color {
	adjusted := HSV{
		H: hsv.H,
		S: Clamp(hsv.S+saturateAmount, 0.0, 1.0),
		V: Clamp(hsv.V+brightenAmount, 0.0, 1.0),
	}
	return adjusted.Color()
}

// OutlineColor derives a border color that stays visually separated from
// both the background and foreground it sits between. The clamp bounds and
// the sign flip are part of the contrast contract; do not retune them.
func OutlineColor(background, foreground HSV) Color {
	minDiff := Clamp((background.S+foreground.S)*1.2, 0.28, 0.5)
	diff := Clamp(math.Abs(background.V-foreground.V)/2, minDiff, 0.5)

	if background.V+foreground.V > 1.0 {
		diff = -diff
	}

	return SaturateAndBrighten(foreground, -0.2, diff)
}
