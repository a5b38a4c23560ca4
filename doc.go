/*
Package hbshape is a small front-end for complex-script text shaping.

Shaping turns a run of Unicode code points, together with a font and a
language/script/direction context, into an ordered sequence of positioned
glyphs. The shaping algorithm itself is HarfBuzz as ported to Go by the
go-text project; this package manages the life cycle of font resources and
defines a narrow calling contract around the shaper:

  - [OpenFont] loads a font file, opens a face (collections are supported) and
    creates a shaping instance scaled to the font's units-per-em. Every result
    of shaping is therefore expressed in font design units; clients scale to
    device space themselves.
  - [Font.Shape] shapes one run of UTF-8 text into a caller supplied slice of
    [Glyph] records and reports how many records have been written. Shaping
    never fails loudly: degenerate input results in 0 glyphs.
  - [Font.Close] releases everything acquired by [OpenFont].

Package bridge offers the same operations as a flat table of functions over
integer handles, for callers on the other side of a language boundary.

# Concurrency

A Font is not safe for concurrent use. The underlying face keeps glyph caches
which are updated during shaping. Clients either hold one Font per goroutine
or guard calls to Shape on a shared Font with a mutex. Distinct fonts share no
state and may be used concurrently.

# Tracing

The package traces to key 'hbshape'.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package hbshape

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hbshape'
func tracer() tracing.Trace {
	return tracing.Select("hbshape")
}
