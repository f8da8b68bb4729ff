package render

import "github.com/gdamore/tcell/v2"

// palette orders the classic ANSI colors by rough luminance, dark to bright.
var palette = []tcell.Color{
	tcell.ColorBlack,
	tcell.ColorGray,
	tcell.ColorPurple,
	tcell.ColorFuchsia,
	tcell.ColorNavy,
	tcell.ColorBlue,
	tcell.ColorTeal,
	tcell.ColorAqua,
	tcell.ColorGreen,
	tcell.ColorLime,
	tcell.ColorOlive,
	tcell.ColorYellow,
	tcell.ColorMaroon,
	tcell.ColorRed,
	tcell.ColorSilver,
	tcell.ColorWhite,
}

// intensityColor quantizes a [0,1] intensity into the palette by truncation.
func intensityColor(v float64) tcell.Color {
	v = clamp01(v)
	if v >= 1 {
		return palette[len(palette)-1]
	}
	return palette[int(v*float64(len(palette)))]
}
