/*
Package layout arranges shaped text into lines.

Text is broken into paragraphs at line feeds and, if wrapping is enabled, into
space-separated tokens. Tokens are shaped one by one and kept in a cache, so
repeated words are shaped once. Lines are filled greedily: a token which would
overflow a non-empty line starts a new line. There is no hyphenation and no
bidi reordering; every line is shaped as a single run in the direction given
by the shaping parameters.

Place converts lines into glyph positions in user space for a given font size,
frame width and alignment.

The package traces to key 'hbshape.layout'.
*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hbshape.layout'
func tracer() tracing.Trace {
	return tracing.Select("hbshape.layout")
}
