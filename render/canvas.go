package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// DefaultMaxDB is the log-scale reference. The value is uncalibrated; it
// was carried over from observed behavior.
const DefaultMaxDB = 50.0

// Waterfall rows pack two traces per cell: the upper half block's
// foreground carries the newer trace, its background the older.
const waterfallGlyph = '▀'

// Canvas splits the terminal into a spectrum widget on top and a scrolling
// waterfall underneath.
type Canvas struct {
	screen tcell.Screen
	maxDB  float64

	cols     int
	rows     int
	specRows int
	fallRows int

	history *History
}

func NewCanvas(screen tcell.Screen, maxDB float64) *Canvas {
	if maxDB == 0 {
		maxDB = DefaultMaxDB
	}
	c := &Canvas{screen: screen, maxDB: maxDB}
	c.layout()
	return c
}

// SpectrumWidth is the braille pixel width of the spectrum widget. It is
// also the frame length requested from the framer, one bin per pixel.
func (c *Canvas) SpectrumWidth() int {
	cols, _ := c.screen.Size()
	return cellCols * cols
}

// layout splits the rows between the two widgets so they sum exactly, and
// rebounds the history to twice the waterfall height.
func (c *Canvas) layout() {
	c.cols, c.rows = c.screen.Size()
	c.specRows = c.rows / 2
	c.fallRows = c.rows - c.specRows
	if c.history == nil {
		c.history = NewHistory(2 * c.fallRows)
	} else {
		c.history.Resize(2 * c.fallRows)
	}
}

// AddSpectrum renders one spectrum frame: the instantaneous trace on top
// and one more line of waterfall below.
func (c *Canvas) AddSpectrum(spectrum []complex64) {
	if w, h := c.screen.Size(); w != c.cols || h != c.rows {
		c.layout()
	}
	if c.cols == 0 || c.rows == 0 {
		return
	}
	trace := Normalize(spectrum, c.maxDB)
	c.history.Push(binAverage(trace, cellCols*c.cols))
	c.screen.Clear()
	c.drawSpectrum()
	c.drawWaterfall()
	c.screen.Show()
}

func (c *Canvas) drawSpectrum() {
	bins := c.history.At(0)
	if bins == nil || c.specRows == 0 {
		return
	}
	pixelHeight := float64(cellRows * c.specRows)
	for col := 0; col < c.cols; col++ {
		var p1, p2 int
		if i := cellCols * col; i < len(bins) {
			p1 = int(math.Floor(bins[i] * pixelHeight))
		}
		if i := cellCols*col + 1; i < len(bins) {
			p2 = int(math.Floor(bins[i] * pixelHeight))
		}
		c.drawPixelPair(col, p1, p2)
	}
}

// drawPixelPair draws a column of the bar silhouette: p1 and p2 are pixel
// heights from the bottom for the cell's left and right sub-columns.
func (c *Canvas) drawPixelPair(col, p1, p2 int) {
	maxPixel := cellRows * c.specRows
	clamp := func(p int) int {
		if p < 0 {
			return 0
		}
		if p >= maxPixel {
			return maxPixel - 1
		}
		return p
	}
	// Terminal rows index from the top; bar heights from the bottom.
	p1 = maxPixel - clamp(p1) - 1
	p2 = maxPixel - clamp(p2) - 1

	c1, c2 := p1/cellRows, p2/cellRows
	lo, hi := c1, c2
	if lo > hi {
		lo, hi = hi, lo
	}

	style := tcell.StyleDefault.Bold(true)
	set := func(row int, glyph rune) {
		c.screen.SetContent(col, row, glyph, nil, style)
	}

	full := brailleCell(0, 0)
	for row := hi; row < c.specRows; row++ {
		set(row, full)
	}
	leftFull := brailleCell(0, -1)
	for row := lo; row < c2; row++ {
		set(row, leftFull)
	}
	rightFull := brailleCell(-1, 0)
	for row := lo; row < c1; row++ {
		set(row, rightFull)
	}

	// Boundary cells hold the partial fills.
	switch {
	case c1 == c2:
		set(c1, brailleCell(p1%cellRows, p2%cellRows))
	case c1 > c2:
		set(c1, brailleCell(p1%cellRows, 0))
		set(c2, brailleCell(-1, p2%cellRows))
	default:
		set(c1, brailleCell(p1%cellRows, -1))
		set(c2, brailleCell(0, p2%cellRows))
	}
}

func (c *Canvas) drawWaterfall() {
	for row := 0; row < c.fallRows; row++ {
		newer, older := c.history.At(2*row), c.history.At(2*row+1)
		if newer == nil && older == nil {
			return
		}
		for col := 0; col < c.cols; col++ {
			fg, okNew := cellIntensity(newer, col)
			bg, okOld := cellIntensity(older, col)
			if !okNew && !okOld {
				continue
			}
			style := tcell.StyleDefault.
				Foreground(intensityColor(fg)).
				Background(intensityColor(bg))
			c.screen.SetContent(col, c.specRows+row, waterfallGlyph, nil, style)
		}
	}
}

// cellIntensity averages the trace's pixel pair for a terminal column.
// Traces may be ragged across resizes, so positions are checked per column;
// a missing trace or column reads as zero intensity.
func cellIntensity(trace []float64, col int) (float64, bool) {
	i := cellCols * col
	if i >= len(trace) {
		return 0, false
	}
	v, n := trace[i], 1.0
	if i+1 < len(trace) {
		v += trace[i+1]
		n++
	}
	return v / n, true
}
