package layout

import (
	"math"

	"github.com/npillmayer/hbshape"
)

// Align is the horizontal alignment of lines within a frame.
type Align int

// Alignments
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Frame describes the space text is set into. Lengths are in user units
// (e.g. pixels or points), except where noted.
type Frame struct {
	Size       float64 // font size: user units per em
	UnitsPerEm int     // of the font; 0 is taken as 1000
	Width      float64 // content width, 0 for unbounded
	Ascender   float64 // in design units, distance from top to first baseline
	LineHeight float64 // in design units, distance between baselines
	Align      Align
}

// Scale returns user units per design unit.
func (fr Frame) Scale() float64 {
	upem := fr.UnitsPerEm
	if upem <= 0 {
		upem = hbshape.DefaultUnitsPerEm
	}
	return fr.Size / float64(upem)
}

// MaxLineWidth returns the frame width in design units, to be used for
// wrapping with TokenShaper.Lines. It is +Inf for unbounded frames.
func (fr Frame) MaxLineWidth() float64 {
	if fr.Width <= 0 || fr.Scale() <= 0 {
		return math.Inf(1)
	}
	return fr.Width / fr.Scale()
}

// Placed is a glyph positioned in user space. The y axis points downwards,
// with the top of the frame at y=0; (X, Y) is the glyph origin on the
// baseline.
type Placed struct {
	GID  uint32
	Line int
	X, Y float64
}

// Place positions the glyphs of lines in fr. The pen advances by each glyph's
// advance; offsets move the glyph but not the pen.
func Place(lines []Line, fr Frame) []Placed {
	scale := fr.Scale()
	var placed []Placed
	for i, line := range lines {
		width := float64(line.Width) * scale
		x := 0.0
		if fr.Width > 0 {
			switch fr.Align {
			case AlignCenter:
				x = (fr.Width - width) / 2
			case AlignRight:
				x = fr.Width - width
			}
		}
		baseline := (fr.Ascender + float64(i)*fr.LineHeight) * scale
		var penX, penY float64
		for _, g := range line.Glyphs {
			placed = append(placed, Placed{
				GID:  g.GID,
				Line: i,
				X:    x + penX + float64(g.XOffset)*scale,
				Y:    baseline - (penY + float64(g.YOffset)*scale),
			})
			penX += float64(g.XAdvance) * scale
			penY += float64(g.YAdvance) * scale
		}
	}
	return placed
}
