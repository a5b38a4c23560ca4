package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/hbshape"
	"github.com/npillmayer/hbshape/internal/fontload"
	"github.com/npillmayer/hbshape/internal/hbjson"
	"github.com/npillmayer/hbshape/layout"
	"github.com/npillmayer/hbshape/nojoin"
	"github.com/npillmayer/schuko/tracing"
	"github.com/thatisuday/commando"
)

// shapeFlags are the command line settings common to shaping commands.
type shapeFlags struct {
	params  hbshape.Params
	autoDir bool
}

func parseShapeFlags(flags map[string]commando.FlagValue) (shapeFlags, error) {
	var sf shapeFlags
	var err error
	if sf.params.Script, err = parseScript(optString(flags["script"])); err != nil {
		return sf, err
	}
	sf.params.Language = optString(flags["lang"])
	if sf.params.Direction, sf.autoDir, err = parseDirection(optString(flags["direction"])); err != nil {
		return sf, err
	}
	if sf.params.Features, err = hbshape.ParseFeatures(optString(flags["features"])); err != nil {
		return sf, err
	}
	return sf, nil
}

// forText returns the shaping parameters for text, with the direction taken
// from the text if it is set to auto.
func (sf shapeFlags) forText(text string) hbshape.Params {
	p := sf.params
	if sf.autoDir {
		p.Direction = layout.BaseDirection(text)
	}
	return p
}

// optString returns the value of a string flag, with "-" standing for unset.
func optString(flag commando.FlagValue) string {
	s, err := flag.GetString()
	if err != nil {
		return ""
	}
	s = strings.TrimSpace(s)
	if s == "-" {
		return ""
	}
	return s
}

func parseScript(s string) (hbshape.ScriptTag, error) {
	if s == "" || strings.EqualFold(s, "auto") {
		return 0, nil
	}
	return hbshape.ParseScriptTag(s)
}

func parseDirection(s string) (dir hbshape.Direction, auto bool, err error) {
	switch strings.ToLower(s) {
	case "":
		return hbshape.LeftToRight, false, nil
	case "auto":
		return hbshape.LeftToRight, true, nil
	}
	dir, err = hbjson.ParseDirection(s)
	return dir, false, err
}

func parseShapeInput(textArg commando.ArgValue, cpFlag commando.FlagValue) (string, error) {
	if cp := optString(cpFlag); cp != "" {
		runes, err := parseCodepoints(cp)
		if err != nil {
			return "", err
		}
		return string(runes), nil
	}
	return textArg.Value, nil
}

func parseCodepoints(spec string) ([]rune, error) {
	parts := splitCSVSpace(spec)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		r, err := parseCodepointToken(p)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func parseCodepointToken(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.New("empty codepoint token")
	}
	hex := token
	switch {
	case strings.HasPrefix(hex, "U+"), strings.HasPrefix(hex, "u+"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid codepoint %q: %w", token, err)
	}
	if u > 0x10FFFF || (u >= 0xD800 && u <= 0xDFFF) {
		return 0, fmt.Errorf("codepoint %q is not a Unicode scalar value", token)
	}
	return rune(u), nil
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// fixture builds a test fixture from an input text and its shaping result.
func fixture(f *hbshape.Font, text string, params hbshape.Params, features string,
	glyphs []hbshape.Glyph) hbjson.Fixture {
	//
	fx := hbjson.Fixture{
		Context: hbjson.Context{
			Font:     f.Path(),
			Face:     f.FaceIndex(),
			Language: params.Language,
			Dir:      strings.ToLower(params.Direction.String()),
			Features: splitCSVSpace(features),
		},
		Output: hbjson.FromGlyphs(glyphs),
	}
	if params.Script != 0 {
		fx.Context.Script = params.Script.String()
	}
	for _, r := range text {
		fx.Input = append(fx.Input, uint32(r))
	}
	return fx
}

func applyNoJoin(text string, settingsFile string) (string, error) {
	if settingsFile == "" {
		return text, nil
	}
	settings, err := nojoin.LoadSettings(settingsFile)
	if err != nil {
		return "", err
	}
	settings.Normalize()
	return nojoin.Effective(settings, nil).Apply(text), nil
}

func mustOpenFont(name string, face int) *hbshape.Font {
	path, err := fontload.Resolve(name)
	if err != nil {
		fatalf("cannot find font %s: %v", name, err)
	}
	f, err := hbshape.OpenFont(path, face)
	if err != nil {
		fatalf("%v", err)
	}
	tracer().Infof("opened %s", path)
	return f
}

func setVerbosity(flags map[string]commando.FlagValue) {
	if v, ok := flags["verbose"]; ok {
		if verbose, err := v.GetBool(); err == nil && verbose {
			tracer().SetTraceLevel(tracing.LevelInfo)
		}
	}
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "hbtools: "+format+"\n", args...)
	os.Exit(1)
}
