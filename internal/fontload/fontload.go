/*
Package fontload reads font files into memory and opens faces from them.

A font file is kept as an owned byte image (a Blob). Faces parsed from a blob
reference the blob's bytes, so a blob has to outlive every face derived from it.
Collections (*.ttc, *.otc) are supported by selecting a face index.
*/
package fontload

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'hbshape.fontload'
func tracer() tracing.Trace {
	return tracing.Select("hbshape.fontload")
}

// ErrEmpty is returned for a font file without content.
var ErrEmpty = errors.New("fontload: font data is empty")

// ErrFaceIndex is returned if a face index is not present in a font file.
var ErrFaceIndex = errors.New("fontload: face index out of range")

// Blob is the in-memory image of a font file.
type Blob struct {
	Path string // file path the data has been read from
	Data []byte // raw data, must not change after faces have been opened
}

// Load reads a font file into a Blob. Missing, unreadable and empty files are
// reported as errors.
func Load(path string) (*Blob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	tracer().Debugf("loaded %d bytes from %s", len(data), path)
	return &Blob{Path: path, Data: data}, nil
}

// Resolve maps a font name to a file path. Names of existing files are
// returned unchanged, everything else is looked up in the system's font
// directories, e.g. "DejaVuSans.ttf" or "NotoSansDevanagari-Regular.ttf".
func Resolve(name string) (string, error) {
	if name == "" {
		return "", errors.New("fontload: empty font name")
	}
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return name, nil
	}
	path, err := findfont.Find(name)
	if err != nil {
		return "", err
	}
	tracer().Debugf("resolved font %q to %s", name, path)
	return path, nil
}

// Loaders returns a table loader for every face contained in the blob.
func (b *Blob) Loaders() ([]*ot.Loader, error) {
	if b == nil || len(b.Data) == 0 {
		return nil, ErrEmpty
	}
	return ot.NewLoaders(bytes.NewReader(b.Data))
}

// Loader returns the table loader for face number index.
func (b *Blob) Loader(index int) (*ot.Loader, error) {
	lds, err := b.Loaders()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(lds) {
		return nil, fmt.Errorf("%w: %d not in [0…%d)", ErrFaceIndex, index, len(lds))
	}
	return lds[index], nil
}

// Face parses face number index into a go-text face, ready to be used for
// shaping.
func (b *Blob) Face(index int) (face *font.Face, ld *ot.Loader, err error) {
	defer func() {
		if r := recover(); r != nil {
			face, ld, err = nil, nil, fmt.Errorf("fontload: malformed font data: %v", r)
		}
	}()
	if ld, err = b.Loader(index); err != nil {
		return nil, nil, err
	}
	ft, err := font.NewFont(ld)
	if err != nil {
		return nil, nil, err
	}
	return font.NewFace(ft), ld, nil
}

// SFNT opens face number index with x/image/font/sfnt. This is a second view
// of the same bytes, used for name records and glyph outlines.
func (b *Blob) SFNT(index int) (*sfnt.Font, error) {
	if b == nil || len(b.Data) == 0 {
		return nil, ErrEmpty
	}
	coll, err := sfnt.ParseCollection(b.Data)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= coll.NumFonts() {
		return nil, fmt.Errorf("%w: %d not in [0…%d)", ErrFaceIndex, index, coll.NumFonts())
	}
	return coll.Font(index)
}
