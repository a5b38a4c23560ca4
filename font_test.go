package hbshape

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/npillmayer/hbshape/internal/testfont"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type FontTestEnviron struct {
	suite.Suite
	path string
}

// listen for 'go test' command --> run test methods
func TestFontLifecycle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbshape")
	defer teardown()
	suite.Run(t, new(FontTestEnviron))
}

// run once, before test suite methods
func (env *FontTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("hbshape").SetTraceLevel(tracing.LevelDebug)
	env.path = testfont.GoRegular(env.T())
}

// run once, after test suite methods
func (env *FontTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *FontTestEnviron) TestOpenAndClose() {
	f, err := OpenFont(env.path, 0)
	env.Require().NoError(err)
	env.Require().NotNil(f)
	env.Equal(env.path, f.Path())
	env.NotNil(f.Face())
	env.NotEmpty(f.Data())
	f.Close()
	env.Zero(f.UnitsPerEm(), "closed font should report 0 units per em")
	env.Nil(f.Face(), "closed font should have released its face")
	env.Nil(f.Data(), "closed font should have released its data")
	f.Close() // second close is harmless
}

func (env *FontTestEnviron) TestUnitsPerEm() {
	f, err := OpenFont(env.path, 0)
	env.Require().NoError(err)
	defer f.Close()
	env.Greater(f.UnitsPerEm(), 0)
	env.Equal(int(f.Face().Upem()), f.UnitsPerEm(), "expected upem of face")
}

func (env *FontTestEnviron) TestZeroUnitsPerEm() {
	f, err := OpenFont(testfont.ZeroUpem(env.T()), 0)
	env.Require().NoError(err)
	defer f.Close()
	env.Equal(DefaultUnitsPerEm, f.UnitsPerEm())
	env.Equal(int32(DefaultUnitsPerEm), f.hb.XScale)
	env.Equal(int32(DefaultUnitsPerEm), f.hb.YScale)
	out := make([]Glyph, 8)
	env.Equal(5, f.Shape([]byte("Hello"), Params{}, out))
}

func (env *FontTestEnviron) TestNilFont() {
	var f *Font
	env.Zero(f.UnitsPerEm())
	env.Equal("", f.Path())
	f.Close()
}

func (env *FontTestEnviron) TestNegativeFaceIndex() {
	f, err := OpenFont(env.path, -1)
	env.Require().NoError(err)
	defer f.Close()
	env.Equal(0, f.FaceIndex())
}

func (env *FontTestEnviron) TestFaceIndexOutOfRange() {
	f, err := OpenFont(env.path, 3)
	env.Nil(f)
	env.True(errors.Is(err, ErrFaceIndex), "expected ErrFaceIndex, got %v", err)
	var oerr *OpenError
	env.Require().True(errors.As(err, &oerr))
	env.Equal(StageFace, oerr.Stage)
}

func (env *FontTestEnviron) TestMissingFile() {
	f, err := OpenFont(filepath.Join(env.T().TempDir(), "no-such-font.ttf"), 0)
	env.Nil(f)
	env.True(errors.Is(err, fs.ErrNotExist), "expected not-exist error, got %v", err)
	var oerr *OpenError
	env.Require().True(errors.As(err, &oerr))
	env.Equal(StageRead, oerr.Stage)
}

func (env *FontTestEnviron) TestEmptyPath() {
	f, err := OpenFont("", 0)
	env.Nil(f)
	env.ErrorIs(err, ErrEmptyPath)
}

func (env *FontTestEnviron) TestEmptyFile() {
	f, err := OpenFont(testfont.Empty(env.T()), 0)
	env.Nil(f)
	env.ErrorIs(err, ErrEmptyFont)
}

func (env *FontTestEnviron) TestCorruptFiles() {
	for _, path := range []string{
		testfont.Garbage(env.T()),
		testfont.Truncated(env.T(), 64),
	} {
		f, err := OpenFont(path, 0)
		env.Nil(f, "expected no font for %s", path)
		env.ErrorIs(err, ErrFontFormat, "expected format error for %s", path)
	}
}
