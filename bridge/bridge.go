/*
Package bridge exposes font handling and shaping as a flat table of functions
over integer handles, the way they are called across a language boundary
(e.g. from a game engine's scripting runtime).

Compared to package hbshape, every failure collapses to a sentinel: opening
a font yields handle 0, and shaping yields 0 glyphs. Causes are traced to key
'hbshape.bridge' at debug level and are not reported otherwise.

Handles carry a generation counter. Using a handle after DestroyFont behaves
like using handle 0, and calling DestroyFont twice is harmless. Calls for the
same handle are serialized, so the functions of this package may be called
from any goroutine.
*/
package bridge

import (
	"bytes"

	"github.com/npillmayer/hbshape"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hbshape.bridge'
func tracer() tracing.Trace {
	return tracing.Select("hbshape.bridge")
}

var fonts handleTable

// Functions is the table of entry points offered across the boundary.
type Functions struct {
	CreateFont  func(path string, faceIndex int) Handle
	DestroyFont func(h Handle)
	UnitsPerEm  func(h Handle) int
	Shape       func(h Handle, text []byte, lang string, script uint32, dir int,
		out []hbshape.Glyph, capacity int) int
}

// Exports returns the function table.
func Exports() Functions {
	return Functions{
		CreateFont:  CreateFont,
		DestroyFont: DestroyFont,
		UnitsPerEm:  UnitsPerEm,
		Shape:       Shape,
	}
}

// CreateFont opens face number faceIndex of the font file at path. Negative
// indices select the first face. It returns 0 if the font cannot be opened.
func CreateFont(path string, faceIndex int) Handle {
	f, err := hbshape.OpenFont(path, faceIndex)
	if err != nil {
		tracer().Debugf("create font: %v", err)
		return 0
	}
	h := fonts.register(f)
	tracer().Debugf("create font %s[%d] -> handle %#x", path, faceIndex, uint64(h))
	return h
}

// DestroyFont releases the font behind h. Handle 0, unknown and already
// destroyed handles are ignored.
func DestroyFont(h Handle) {
	if f := fonts.unregister(h); f != nil {
		f.Close()
		tracer().Debugf("destroyed font handle %#x", uint64(h))
	}
}

// UnitsPerEm returns the units per em of the font behind h, or 0 for an
// invalid handle.
func UnitsPerEm(h Handle) int {
	e := fonts.lookup(h)
	if e == nil {
		return 0
	}
	defer e.mu.Unlock()
	return e.font.UnitsPerEm()
}

// Shape shapes UTF-8 text with the font behind h and writes at most capacity
// glyphs to out. Text ends at the first NUL byte, if any. lang is a BCP 47
// language tag or "", script an ISO 15924 tag as packed by hbshape.MakeTag or
// 0, and dir is 1 for right-to-left and any other value for left-to-right.
//
// Shape returns the number of glyphs written. Invalid handles, nil text or
// output, and capacities ≤ 0 result in 0. Capacities beyond len(out) are
// clamped.
func Shape(h Handle, text []byte, lang string, script uint32, dir int,
	out []hbshape.Glyph, capacity int) int {
	//
	if text == nil || out == nil || capacity <= 0 {
		return 0
	}
	capacity = min(capacity, len(out))
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	e := fonts.lookup(h)
	if e == nil {
		tracer().Debugf("shape: invalid font handle %#x", uint64(h))
		return 0
	}
	defer e.mu.Unlock()
	params := hbshape.Params{
		Language:  lang,
		Script:    hbshape.ScriptTag(script),
		Direction: hbshape.LeftToRight,
	}
	if dir == 1 {
		params.Direction = hbshape.RightToLeft
	}
	return e.font.Shape(text, params, out[:capacity])
}

// Live returns the number of fonts created and not yet destroyed.
func Live() int {
	return fonts.count()
}
