package hbshape

import (
	"errors"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/harfbuzz"
	"github.com/npillmayer/hbshape/internal/fontload"
)

// DefaultUnitsPerEm is substituted for faces reporting zero units per em.
const DefaultUnitsPerEm = 1000

// Font is an opened font, ready for shaping. It owns the raw font data, the
// face parsed from it and a shaping instance created from the face. All three
// are acquired by OpenFont and released together by Close.
//
// A Font is not safe for concurrent use, see the package documentation.
type Font struct {
	path  string
	index int
	blob  *fontload.Blob // owned font data, outlives face
	face  *font.Face     // parsed face, outlives hb
	hb    *harfbuzz.Font // shaping instance, scaled to upem
	upem  int
}

// OpenFont loads the font file at path and prepares face number faceIndex for
// shaping. Negative face indices select the first face.
//
// Errors are of type *OpenError and wrap one of ErrEmptyFont, ErrFaceIndex,
// ErrFontFormat or an error from the file system. If an error is returned,
// every resource acquired so far has been released.
func OpenFont(path string, faceIndex int) (f *Font, err error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if faceIndex < 0 {
		faceIndex = 0
	}
	f = &Font{path: path, index: faceIndex}
	defer func() {
		if err != nil {
			f.Close()
			f = nil
		}
	}()
	if f.blob, err = fontload.Load(path); err != nil {
		return f, openError(path, faceIndex, StageRead, err)
	}
	if f.face, _, err = f.blob.Face(faceIndex); err != nil {
		if !errors.Is(err, ErrFaceIndex) {
			err = errors.Join(ErrFontFormat, err)
		}
		return f, openError(path, faceIndex, StageFace, err)
	}
	if f.hb = harfbuzz.NewFont(f.face); f.hb == nil {
		return f, openError(path, faceIndex, StageInstance, errors.New("no shaping instance"))
	}
	f.upem = int(f.face.Upem())
	if f.upem <= 0 { // go-text already maps a zero 'head' value to 1000
		f.upem = DefaultUnitsPerEm
	}
	// results are reported in design units: scale and ppem both equal upem
	f.hb.XScale, f.hb.YScale = int32(f.upem), int32(f.upem)
	f.face.SetPpem(uint16(f.upem), uint16(f.upem))
	tracer().Debugf("opened font %s[%d], upem=%d", path, faceIndex, f.upem)
	return f, nil
}

// Close releases the shaping instance, the face and the font data, in this
// order. Close on a nil or already closed font does nothing.
func (f *Font) Close() {
	if f == nil {
		return
	}
	if f.hb != nil || f.face != nil || f.blob != nil {
		tracer().Debugf("closing font %s[%d]", f.path, f.index)
	}
	f.hb = nil
	f.face = nil
	f.blob = nil
	f.upem = 0
}

// UnitsPerEm returns the font's design units per em, which is the unit of all
// shaping results. It returns 0 for a nil or closed font and a positive value
// otherwise.
func (f *Font) UnitsPerEm() int {
	if f == nil || f.hb == nil {
		return 0
	}
	return f.upem
}

// Path returns the file path the font has been loaded from.
func (f *Font) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// FaceIndex returns the index of the font's face within its font file.
func (f *Font) FaceIndex() int {
	if f == nil {
		return 0
	}
	return f.index
}

// Face returns the parsed go-text face, or nil for a closed font.
// Clients must not use the face concurrently with Shape.
func (f *Font) Face() *font.Face {
	if f == nil {
		return nil
	}
	return f.face
}

// Data returns the raw bytes of the font file, or nil for a closed font.
// The bytes must not be modified.
func (f *Font) Data() []byte {
	if f == nil || f.blob == nil {
		return nil
	}
	return f.blob.Data
}
