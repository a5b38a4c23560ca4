/*
Package fontquery answers questions about an opened font: header values,
names, vertical metrics and the layout tables present.

Queries work on the raw bytes of a font, independently of shaping. They may
therefore be used while the font is shaping on another goroutine.

The package traces to key 'hbshape.fontquery'.
*/
package fontquery

import (
	"fmt"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/hbshape"
	"github.com/npillmayer/hbshape/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hbshape.fontquery'
func tracer() tracing.Trace {
	return tracing.Select("hbshape.fontquery")
}

// QueryError reports a table which is missing or cannot be decoded.
type QueryError struct {
	Table string // OpenType table tag, e.g. "head"
	Issue string
}

// Error implements the error interface.
func (e QueryError) Error() string {
	return fmt.Sprintf("fontquery: table %s: %s", e.Table, e.Issue)
}

// loader opens a table loader on the font's bytes.
func loader(f *hbshape.Font) (*ot.Loader, error) {
	data := f.Data()
	if data == nil {
		return nil, fmt.Errorf("fontquery: font is closed")
	}
	blob := &fontload.Blob{Path: f.Path(), Data: data}
	return blob.Loader(f.FaceIndex())
}

// rawTable returns the bytes of a table, or a QueryError if it is missing.
func rawTable(f *hbshape.Font, tag string) ([]byte, error) {
	ld, err := loader(f)
	if err != nil {
		return nil, err
	}
	t := ot.MustNewTag(tag)
	if !ld.HasTable(t) {
		return nil, QueryError{Table: tag, Issue: "not present in font"}
	}
	b, err := ld.RawTable(t)
	if err != nil {
		return nil, QueryError{Table: tag, Issue: err.Error()}
	}
	return b, nil
}

func u16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])<<0
}
