package hbjson

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/hbshape"
	"github.com/npillmayer/hbshape/internal/testfont"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFormat(t *testing.T) {
	glyphs := []Glyph{
		{G: 43, Cl: 0, AX: 1200},
		{G: 72, Cl: 1, AX: 560, AY: 10},
		{G: 7, Cl: 1, AX: 0, DX: -300, DY: 20},
	}
	want := "[43=0+1200|72=1+560,10|7=1+0@-300,20]"
	if got := Format(glyphs); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if got := Format(nil); got != "[]" {
		t.Errorf("expected [], got %s", got)
	}
}

func TestDecodeHbShapeOutput(t *testing.T) {
	input := `[{"g":68,"cl":0,"dx":0,"dy":0,"ax":561,"ay":0},{"g":69,"cl":1,"dx":0,"dy":0,"ax":615,"ay":0}]`
	glyphs, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []Glyph{{G: 68, Cl: 0, AX: 561}, {G: 69, Cl: 1, AX: 615}}
	if err := Compare(glyphs, want); err != nil {
		t.Error(err)
	}
	if _, err := Decode(strings.NewReader(`{"g":1}`)); err == nil {
		t.Error("expected error for non-array input")
	}
}

func TestCompareReportsMismatch(t *testing.T) {
	a := []Glyph{{G: 1, Cl: 0, AX: 100}}
	if err := Compare(a, nil); err == nil {
		t.Error("expected length mismatch")
	}
	b := []Glyph{{G: 1, Cl: 0, AX: 101}}
	if err := Compare(a, b); err == nil || !strings.Contains(err.Error(), "glyph[0]") {
		t.Errorf("expected mismatch at glyph[0], got %v", err)
	}
}

func TestGoldenFixture(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbshape")
	defer teardown()
	//
	path := testfont.GoRegular(t)
	font, err := hbshape.OpenFont(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer font.Close()
	fx := Fixture{
		Context: Context{Font: path, Script: "Latn", Language: "en", Dir: "ltr", Features: []string{"-kern"}},
		Input:   []uint32{'H', 'e', 'l', 'l', 'o'},
	}
	if fx.Output, err = fx.Shape(font); err != nil {
		t.Fatal(err)
	}
	if len(fx.Output) != 5 {
		t.Fatalf("expected 5 glyphs, got %d", len(fx.Output))
	}
	dir := t.TempDir()
	if err = Save(filepath.Join(dir, "hello.json"), fx); err != nil {
		t.Fatal(err)
	}
	fixtures, err := LoadDir(dir)
	if err != nil || len(fixtures) != 1 {
		t.Fatalf("expected 1 fixture, got %d (%v)", len(fixtures), err)
	}
	got, err := fixtures[0].Shape(font)
	if err != nil {
		t.Fatal(err)
	}
	if err := Compare(got, fixtures[0].Output); err != nil {
		t.Errorf("reshaping golden fixture: %v", err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, got); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), `[{"g":`) {
		t.Errorf("unexpected JSON %s", buf.String())
	}
}

func TestFixtureValidation(t *testing.T) {
	if err := (Fixture{}).Validate(); err == nil {
		t.Error("expected error for empty fixture")
	}
	fx := Fixture{Context: Context{Font: "x.ttf", Dir: "up"}, Input: []uint32{'a'}}
	if _, err := fx.Params(); err == nil {
		t.Error("expected error for invalid direction")
	}
	fx = Fixture{Context: Context{Font: "x.ttf", Dir: "ltr"}, Input: []uint32{0xD800}}
	if _, err := fx.Text(); err == nil {
		t.Error("expected error for surrogate code point")
	}
}
