package layout

import (
	"fmt"

	"github.com/npillmayer/hbshape"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// Shaper shapes a run of UTF-8 text into a bounded slice of glyphs.
// *hbshape.Font implements Shaper.
type Shaper interface {
	Shape(text []byte, params hbshape.Params, out []hbshape.Glyph) int
}

// maxBuffer limits the glyph buffer for a single token.
const maxBuffer = 1 << 20

// Run is the shaping result of one token.
type Run struct {
	Text   string
	Glyphs []hbshape.Glyph
	Width  int32 // sum of horizontal advances, in design units
}

// TokenShaper shapes tokens with fixed parameters and caches the results.
//
// A TokenShaper is not safe for concurrent use.
type TokenShaper struct {
	shaper Shaper
	params hbshape.Params
	cache  map[string]*Run
	buf    []hbshape.Glyph
}

// NewTokenShaper creates a token shaper for s. A non-empty language of params
// has to be a well-formed BCP 47 tag; it is canonicalized.
func NewTokenShaper(s Shaper, params hbshape.Params) (*TokenShaper, error) {
	if s == nil {
		return nil, fmt.Errorf("layout: no shaper")
	}
	ts := &TokenShaper{shaper: s}
	if err := ts.SetParams(params); err != nil {
		return nil, err
	}
	return ts, nil
}

// SetParams changes the shaping parameters and empties the cache.
func (ts *TokenShaper) SetParams(params hbshape.Params) error {
	if params.Language != "" {
		tag, err := language.Parse(params.Language)
		if err != nil {
			return fmt.Errorf("layout: language %q: %w", params.Language, err)
		}
		params.Language = tag.String()
	}
	ts.params = params
	ts.Reset()
	return nil
}

// Params returns the current shaping parameters.
func (ts *TokenShaper) Params() hbshape.Params {
	return ts.params
}

// Reset empties the cache.
func (ts *TokenShaper) Reset() {
	ts.cache = make(map[string]*Run)
}

// Cached returns the number of cached tokens.
func (ts *TokenShaper) Cached() int {
	return len(ts.cache)
}

// Shape returns the shaping result for a token. The glyph buffer starts at
// four glyphs per byte of input and grows as described for ShapeAll.
//
// The returned Run is shared with the cache and must not be modified.
func (ts *TokenShaper) Shape(token string) *Run {
	if run, ok := ts.cache[token]; ok {
		return run
	}
	run := &Run{Text: token}
	if token != "" {
		if len(ts.buf) < max(32, 4*len(token)+8) {
			ts.buf = make([]hbshape.Glyph, max(32, 4*len(token)+8))
		}
		var n int
		n, ts.buf = shapeInto(ts.shaper, []byte(token), ts.params, ts.buf)
		run.Glyphs = make([]hbshape.Glyph, n)
		copy(run.Glyphs, ts.buf[:n])
		run.Width = Width(run.Glyphs)
	}
	ts.cache[token] = run
	return run
}

// ShapeAll shapes text completely. If shaping fills the glyph buffer, the
// result may have been cut off, and text is shaped again with a buffer of
// twice the size, up to a limit of 1<<20 glyphs.
func ShapeAll(s Shaper, text string, params hbshape.Params) []hbshape.Glyph {
	if text == "" {
		return nil
	}
	n, buf := shapeInto(s, []byte(text), params, make([]hbshape.Glyph, 2*len(text)+8))
	return buf[:n:n]
}

// shapeInto shapes text into buf, growing buf while it is filled completely.
// It returns the glyph count and the buffer finally used.
func shapeInto(s Shaper, text []byte, params hbshape.Params, buf []hbshape.Glyph) (int, []hbshape.Glyph) {
	n := s.Shape(text, params, buf)
	for n == len(buf) && len(buf) < maxBuffer {
		tracer().Debugf("glyph buffer of %d full for %q, growing", len(buf), text)
		buf = make([]hbshape.Glyph, min(2*len(buf), maxBuffer))
		n = s.Shape(text, params, buf)
	}
	return n, buf
}

// Width returns the sum of the horizontal advances of glyphs.
func Width(glyphs []hbshape.Glyph) int32 {
	var w int32
	for _, g := range glyphs {
		w += g.XAdvance
	}
	return w
}

// MostlyNotdef reports whether at least half of the glyphs are .notdef,
// which usually means the font does not cover the text's script. It is false
// for an empty slice.
func MostlyNotdef(glyphs []hbshape.Glyph) bool {
	zero := 0
	for _, g := range glyphs {
		if g.GID == 0 {
			zero++
		}
	}
	return len(glyphs) > 0 && zero >= len(glyphs)-zero
}

// BaseDirection returns the direction of the first character of text with a
// strong bidi class, or left-to-right if there is none.
func BaseDirection(text string) hbshape.Direction {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return hbshape.LeftToRight
		case bidi.R, bidi.AL:
			return hbshape.RightToLeft
		}
	}
	return hbshape.LeftToRight
}
