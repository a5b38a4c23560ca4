package fontquery

import (
	"fmt"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/hbshape"
)

// FontMetrics holds the vertical metrics of a font in design units.
type FontMetrics struct {
	UnitsPerEm int
	Ascender   float32
	Descender  float32 // negative below the baseline
	LineGap    float32
}

// LineHeight returns ascender - descender + line gap.
func (m FontMetrics) LineHeight() float32 {
	return m.Ascender - m.Descender + m.LineGap
}

// Metrics returns the horizontal-layout line metrics of a font. The face of
// f is used, so Metrics must not run concurrently with shaping on f.
func Metrics(f *hbshape.Font) (FontMetrics, error) {
	m := FontMetrics{UnitsPerEm: f.UnitsPerEm()}
	face := f.Face()
	if face == nil {
		return m, fmt.Errorf("fontquery: font is closed")
	}
	ext, ok := face.FontHExtents()
	if !ok {
		return m, QueryError{Table: "hhea", Issue: "no horizontal extents"}
	}
	m.Ascender, m.Descender, m.LineGap = ext.Ascender, ext.Descender, ext.LineGap
	return m, nil
}

// Describe returns family and aspect of a font as one line of text, e.g.
// "Go (style=1, weight=400, stretch=1)".
func Describe(f *hbshape.Font) string {
	face := f.Face()
	if face == nil {
		return ""
	}
	d := face.Describe()
	return fmt.Sprintf("%s (style=%d, weight=%g, stretch=%g)", d.Family,
		d.Aspect.Style, float32(d.Aspect.Weight), float32(d.Aspect.Stretch))
}

// FontType returns the kind of outlines of a font: "TrueType", "CFF",
// "Apple TrueType", "Type 1" or "unknown".
func FontType(f *hbshape.Font) string {
	ld, err := loader(f)
	if err != nil {
		return "unknown"
	}
	switch ld.Type {
	case ot.TrueType:
		return "TrueType"
	case ot.OpenType:
		return "CFF"
	case ot.AppleTrueType:
		return "Apple TrueType"
	case ot.PostScript1:
		return "Type 1"
	}
	return "unknown"
}

var layoutTables = []string{"GDEF", "GSUB", "GPOS", "kern", "morx", "kerx", "trak", "BASE", "JSTF"}

// LayoutTables returns the tags of the advanced layout tables present in a
// font, in a fixed order.
func LayoutTables(f *hbshape.Font) []string {
	ld, err := loader(f)
	if err != nil {
		return nil
	}
	var tables []string
	for _, tag := range layoutTables {
		if ld.HasTable(ot.MustNewTag(tag)) {
			tables = append(tables, tag)
		}
	}
	return tables
}

// GlyphCount returns the number of glyphs of a font, as stated in table
// 'maxp'.
func GlyphCount(f *hbshape.Font) (int, error) {
	b, err := rawTable(f, "maxp")
	if err != nil {
		return 0, err
	}
	if len(b) < 6 {
		return 0, QueryError{Table: "maxp", Issue: "table too short"}
	}
	return int(u16(b[4:6])), nil
}
