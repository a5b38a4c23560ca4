package hbjson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/hbshape"
)

// Context is the shaping context of a fixture.
type Context struct {
	Font     string   `json:"font"`
	Face     int      `json:"face,omitempty"`
	Script   string   `json:"script,omitempty"`
	Language string   `json:"language,omitempty"`
	Dir      string   `json:"dir"`
	Features []string `json:"features,omitempty"`
}

// Fixture is an expected shaping result for a sequence of code points.
type Fixture struct {
	Context Context  `json:"context"`
	Input   []uint32 `json:"input"` // Unicode code points
	Output  []Glyph  `json:"output"`
}

// Validate checks the required fields of a fixture.
func (f Fixture) Validate() error {
	if f.Context.Font == "" {
		return fmt.Errorf("fixture: context.font is required")
	}
	if f.Context.Dir == "" {
		return fmt.Errorf("fixture: context.dir is required")
	}
	if len(f.Input) == 0 {
		return fmt.Errorf("fixture: input must not be empty")
	}
	return nil
}

// Text returns the input code points as UTF-8.
func (f Fixture) Text() ([]byte, error) {
	var b strings.Builder
	for i, cp := range f.Input {
		if cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
			return nil, fmt.Errorf("fixture: input[%d]=%d is not a valid Unicode scalar", i, cp)
		}
		b.WriteRune(rune(cp))
	}
	return []byte(b.String()), nil
}

// Params returns the shaping parameters of the fixture's context.
func (f Fixture) Params() (hbshape.Params, error) {
	var p hbshape.Params
	if f.Context.Script != "" {
		tag, err := hbshape.ParseScriptTag(f.Context.Script)
		if err != nil {
			return p, err
		}
		p.Script = tag
	}
	p.Language = f.Context.Language
	dir, err := ParseDirection(f.Context.Dir)
	if err != nil {
		return p, err
	}
	p.Direction = dir
	if len(f.Context.Features) > 0 {
		if p.Features, err = hbshape.ParseFeatures(strings.Join(f.Context.Features, ",")); err != nil {
			return p, err
		}
	}
	return p, nil
}

// Shape shapes the fixture's input with f and returns the result in
// hb-shape form.
func (f Fixture) Shape(font *hbshape.Font) ([]Glyph, error) {
	text, err := f.Text()
	if err != nil {
		return nil, err
	}
	params, err := f.Params()
	if err != nil {
		return nil, err
	}
	out := make([]hbshape.Glyph, 4*len(text)+8)
	n := font.Shape(text, params, out)
	return FromGlyphs(out[:n]), nil
}

// ParseDirection accepts "ltr", "rtl" and their long forms.
func ParseDirection(s string) (hbshape.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr", "left-to-right":
		return hbshape.LeftToRight, nil
	case "rtl", "right-to-left":
		return hbshape.RightToLeft, nil
	}
	return hbshape.LeftToRight, fmt.Errorf("invalid direction %q (expected ltr|rtl)", s)
}

// Save writes a fixture as indented JSON.
func Save(path string, f Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Load reads and validates a fixture.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, err
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, err
	}
	if err := f.Validate(); err != nil {
		return Fixture{}, err
	}
	return f, nil
}

// LoadDir reads all *.json fixtures of a directory, sorted by file name.
func LoadDir(dir string) ([]Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".json") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	out := make([]Fixture, 0, len(paths))
	for _, p := range paths {
		f, err := Load(p)
		if err != nil {
			return nil, fmt.Errorf("load fixture %s: %w", p, err)
		}
		out = append(out, f)
	}
	return out, nil
}
