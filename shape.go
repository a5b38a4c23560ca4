package hbshape

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-text/typesetting/harfbuzz"
	"github.com/go-text/typesetting/language"
)

// Glyph is one positioned glyph of a shaping result. Advances and offsets are
// in font design units.
//
// Cluster is the byte offset into the input text of the first character the
// glyph has been produced from. Clusters may repeat (one character shaped to
// several glyphs) or skip (several characters shaped to one glyph). They are
// non-decreasing for left-to-right runs and non-increasing for right-to-left
// runs.
type Glyph struct {
	GID      uint32 // glyph index, 0 is .notdef
	Cluster  uint32
	XAdvance int32
	YAdvance int32
	XOffset  int32
	YOffset  int32
}

// Feature is an OpenType feature setting, e.g. "liga" switched off.
type Feature = harfbuzz.Feature

// Params is the segment context for shaping a run of text.
type Params struct {
	Language  string    // BCP 47 language tag, empty for unspecified
	Script    ScriptTag // ISO 15924 script, 0 for unspecified
	Direction Direction
	Features  []Feature // optional feature overrides, usually nil
}

// Shape shapes text, which is expected to be UTF-8, and writes the resulting
// glyphs to out. It returns the number of glyphs written, which never exceeds
// len(out). If the run shapes to more glyphs than out can hold, the first
// len(out) glyphs in shaping order are written.
//
// Script and language are taken from params if set. If either one is unset, it
// is guessed from the text. Explicit settings are never overridden. Direction
// is always taken from params.
//
// Shape does not report errors: a nil or closed font, nil text and an empty
// output slice all result in 0, as does empty text.
func (f *Font) Shape(text []byte, params Params, out []Glyph) (n int) {
	if f == nil || f.hb == nil || text == nil || len(out) == 0 || len(text) == 0 {
		return 0
	}
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("shaping %q with %s failed: %v", text, f.path, r)
			n = 0
		}
	}()
	buf := harfbuzz.NewBuffer()
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRune(text[i:])
		buf.AddRune(r, i)
		i += size
	}
	buf.Props.Direction = params.Direction.hb()
	if params.Script != 0 {
		buf.Props.Script = params.Script.script()
	}
	if params.Language != "" {
		buf.Props.Language = language.NewLanguage(params.Language)
	}
	if params.Script == 0 || params.Language == "" {
		buf.GuessSegmentProperties() // fills unset properties only
	}
	buf.Shape(f.hb, params.Features)
	count := min(len(buf.Info), len(buf.Pos))
	n = min(count, len(out))
	for i := 0; i < n; i++ {
		info, pos := buf.Info[i], buf.Pos[i]
		out[i] = Glyph{
			GID:      uint32(info.Glyph),
			Cluster:  uint32(info.Cluster),
			XAdvance: pos.XAdvance,
			YAdvance: pos.YAdvance,
			XOffset:  pos.XOffset,
			YOffset:  pos.YOffset,
		}
	}
	tracer().Debugf("shaped %d bytes into %d of %d glyphs, script=%s, lang=%s, dir=%s",
		len(text), n, count, buf.Props.Script, buf.Props.Language, params.Direction)
	return n
}

// ParseFeatures parses a list of feature settings separated by commas or
// white space, in the syntax of hb-shape, e.g. "-liga,kern,ss01=2".
func ParseFeatures(list string) ([]Feature, error) {
	items := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(items) == 0 {
		return nil, nil
	}
	features := make([]Feature, 0, len(items))
	for _, item := range items {
		feat, err := harfbuzz.ParseFeature(item)
		if err != nil {
			return nil, fmt.Errorf("hbshape: invalid feature %q: %w", item, err)
		}
		features = append(features, feat)
	}
	return features, nil
}
