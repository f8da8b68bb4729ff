package render

// Each terminal cell is a 2x4 braille dot grid.
const cellCols = 2
const cellRows = 4

const brailleBase = 0x2800

// Dot bits per sub-row, indexed from the top of the cell; left column, then
// right.
var brailleBits = [cellRows][cellCols]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// brailleCell builds the glyph whose left and right sub-columns are filled
// from sub-rows p1 and p2 down to the bottom of the cell. Sub-rows index
// from the top; pass a negative index to leave a sub-column empty.
func brailleCell(p1, p2 int) rune {
	var c rune
	if p1 >= 0 {
		for i := p1; i < cellRows; i++ {
			c |= brailleBits[i][0]
		}
	}
	if p2 >= 0 {
		for i := p2; i < cellRows; i++ {
			c |= brailleBits[i][1]
		}
	}
	return brailleBase + c
}
