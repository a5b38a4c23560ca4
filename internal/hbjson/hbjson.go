/*
Package hbjson reads and writes shaping results in the formats of HarfBuzz's
hb-shape utility: JSON glyph records ("--output-format=json") and the compact
text form "[gid=cluster+advance|...]".

Fixtures bundle a shaping context, input code points and the expected glyphs.
They are used for golden tests against hb-shape output.
*/
package hbjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/hbshape"
)

// Glyph is one positioned glyph as hb-shape writes it.
type Glyph struct {
	G  uint32 `json:"g"`  // glyph index
	Cl uint32 `json:"cl"` // cluster index
	DX int32  `json:"dx"` // x offset
	DY int32  `json:"dy"` // y offset
	AX int32  `json:"ax"` // x advance
	AY int32  `json:"ay"` // y advance
}

// FromGlyphs converts shaping results to hb-shape records.
func FromGlyphs(glyphs []hbshape.Glyph) []Glyph {
	out := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		out[i] = Glyph{
			G:  g.GID,
			Cl: g.Cluster,
			DX: g.XOffset,
			DY: g.YOffset,
			AX: g.XAdvance,
			AY: g.YAdvance,
		}
	}
	return out
}

// Encode writes glyphs as a JSON array.
func Encode(w io.Writer, glyphs []Glyph) error {
	return json.NewEncoder(w).Encode(glyphs)
}

// Decode reads a JSON array of glyphs.
func Decode(r io.Reader) ([]Glyph, error) {
	var glyphs []Glyph
	if err := json.NewDecoder(r).Decode(&glyphs); err != nil {
		return nil, fmt.Errorf("hbjson: %w", err)
	}
	return glyphs, nil
}

// Format returns glyphs in hb-shape's text form. Vertical advances and
// offsets are included only if non-zero.
func Format(glyphs []Glyph) string {
	var b strings.Builder
	b.WriteString("[")
	for i, g := range glyphs {
		if i > 0 {
			b.WriteString("|")
		}
		fmt.Fprintf(&b, "%d=%d+%d", g.G, g.Cl, g.AX)
		if g.AY != 0 {
			fmt.Fprintf(&b, ",%d", g.AY)
		}
		if g.DX != 0 || g.DY != 0 {
			fmt.Fprintf(&b, "@%d,%d", g.DX, g.DY)
		}
	}
	b.WriteString("]")
	return b.String()
}

// Compare returns an error describing the first difference between got and
// want, or nil if they are equal.
func Compare(got, want []Glyph) error {
	if len(got) != len(want) {
		return fmt.Errorf("unequal number of glyphs: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			return fmt.Errorf("glyph[%d] mismatch: got=%+v want=%+v", i, got[i], want[i])
		}
	}
	return nil
}
