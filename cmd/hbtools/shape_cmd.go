package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/hbshape/internal/hbjson"
	"github.com/npillmayer/hbshape/layout"
	"github.com/thatisuday/commando"
)

func runShapeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbosity(flags)
	fontName := strings.TrimSpace(args["font"].Value)
	if fontName == "" {
		fatalf("font path is required")
	}
	sf, err := parseShapeFlags(flags)
	if err != nil {
		fatalf("%v", err)
	}
	input, err := parseShapeInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	if input, err = applyNoJoin(input, optString(flags["nojoin"])); err != nil {
		fatalf("%v", err)
	}
	f := mustOpenFont(fontName, mustFlagInt(flags["face"], "face"))
	defer f.Close()

	params := sf.forText(input)
	glyphs := layout.ShapeAll(f, input, params)
	tracer().Infof("%d glyphs for %d bytes of input", len(glyphs), len(input))
	if layout.MostlyNotdef(glyphs) {
		fmt.Fprintf(os.Stderr, "hbtools: font %s does not seem to support the input\n", f.Path())
	}

	hb := hbjson.FromGlyphs(glyphs)
	if mustFlagBool(flags["json"], "json") {
		if err := hbjson.Encode(os.Stdout, hb); err != nil {
			fatalf("%v", err)
		}
	} else {
		fmt.Println(hbjson.Format(hb))
	}
	if out := optString(flags["fixture"]); out != "" {
		fx := fixture(f, input, params, optString(flags["features"]), glyphs)
		if err := hbjson.Save(out, fx); err != nil {
			fatalf("cannot save fixture: %v", err)
		}
		fmt.Printf("wrote %s\n", out)
	}
}
