package hbshape

import (
	"errors"
	"fmt"

	"github.com/npillmayer/hbshape/internal/fontload"
)

var (
	// ErrEmptyPath indicates that OpenFont has been called without a file path.
	ErrEmptyPath = errors.New("hbshape: empty font path")
	// ErrEmptyFont indicates a font file without content.
	ErrEmptyFont = fontload.ErrEmpty
	// ErrFaceIndex indicates a face index not present in a font file or collection.
	ErrFaceIndex = fontload.ErrFaceIndex
	// ErrFontFormat indicates data which cannot be parsed as an OpenType font.
	ErrFontFormat = errors.New("hbshape: unrecognized font format")
)

// Stage identifies the step of opening a font which failed.
type Stage int

const (
	// StageRead is reading the font file into memory.
	StageRead Stage = iota
	// StageFace is parsing a face from the font data.
	StageFace
	// StageInstance is creating the scaled shaping instance.
	StageInstance
)

// String returns a human-readable representation of a stage.
func (s Stage) String() string {
	switch s {
	case StageRead:
		return "read"
	case StageFace:
		return "face"
	case StageInstance:
		return "instance"
	default:
		return "unknown"
	}
}

// OpenError is returned by OpenFont. Nothing acquired before the failing stage
// is left over when an OpenError is returned.
type OpenError struct {
	Path  string // font file path
	Index int    // requested face index, after normalization
	Stage Stage  // step which failed
	Err   error  // underlying cause
}

// Error implements the error interface.
func (e *OpenError) Error() string {
	return fmt.Sprintf("hbshape: cannot open %s[%d] (%s): %v", e.Path, e.Index, e.Stage, e.Err)
}

// Unwrap returns the underlying cause.
func (e *OpenError) Unwrap() error {
	return e.Err
}

func openError(path string, index int, stage Stage, err error) error {
	return &OpenError{Path: path, Index: index, Stage: stage, Err: err}
}
