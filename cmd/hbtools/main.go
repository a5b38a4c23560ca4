/*
Command hbtools shapes text from the command line, reports font properties
and renders shaped text to PNG images.

	hbtools shape NotoSansDevanagari-Regular.ttf नमस्ते --script Deva --lang hi
	hbtools shape Amiri-Regular.ttf --codepoints U+0627,U+0644 --direction rtl --json
	hbtools font Go-Regular.ttf
	hbtools view Go-Regular.ttf "Hello World" --output hello.png --size 48
*/
package main

import (
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'hbshape.tools'
func tracer() tracing.Trace {
	return tracing.Select("hbshape.tools")
}

func main() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.hbshape.tools": "Error",
		"trace.hbshape":       "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	commando.
		SetExecutableName("hbtools").
		SetVersion("v0.1.0").
		SetDescription("CLI for shaping text and font diagnostics.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("shape").
		SetDescription("Shape text with a given font and print the glyph stream.").
		SetShortDescription("shape text").
		AddArgument("font", "font file path or name", "").
		AddArgument("text...", "text to shape", "").
		AddFlag("face", "face index within a font collection", commando.Int, 0).
		AddFlag("script,s", "script (ISO 15924, e.g. Latn, Deva, Arab), - for guessing", commando.String, "-").
		AddFlag("lang,l", "language tag (BCP 47, e.g. en, hi, ar), - for guessing", commando.String, "-").
		AddFlag("direction,d", "direction: ltr|rtl|auto", commando.String, "ltr").
		AddFlag("features,f", "feature list (e.g. liga=0,kern,-calt)", commando.String, "-").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0915,U+094D)", commando.String, "-").
		AddFlag("nojoin,n", "no-join settings file (YAML) applied before shaping", commando.String, "-").
		AddFlag("json,j", "print glyphs as JSON", commando.Bool, nil).
		AddFlag("fixture", "save input and result as a JSON test fixture", commando.String, "-").
		SetAction(runShapeCommand)

	commando.
		Register("view").
		SetDescription("Render shaped text to a PNG image.").
		SetShortDescription("shape to image").
		AddArgument("font", "font file path or name", "").
		AddArgument("text...", "text to shape and render", "").
		AddFlag("face", "face index within a font collection", commando.Int, 0).
		AddFlag("script,s", "script (ISO 15924, e.g. Latn, Deva, Arab), - for guessing", commando.String, "-").
		AddFlag("lang,l", "language tag (BCP 47, e.g. en, hi, ar), - for guessing", commando.String, "-").
		AddFlag("direction,d", "direction: ltr|rtl|auto", commando.String, "auto").
		AddFlag("features,f", "feature list (e.g. liga=0,kern,-calt)", commando.String, "-").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0915,U+094D)", commando.String, "-").
		AddFlag("output,o", "output PNG file", commando.String, "hbtools-view.png").
		AddFlag("size,p", "font size in pixels per em", commando.Int, 48).
		AddFlag("width,W", "image width in pixels", commando.Int, 640).
		AddFlag("height,H", "image height in pixels, 0 to fit the text", commando.Int, 0).
		AddFlag("align,a", "alignment: left|center|right", commando.String, "left").
		AddFlag("show-bboxes,B", "draw red bounding-box outlines per rendered glyph", commando.Bool, nil).
		SetAction(runViewCommand)

	commando.
		Register("font").
		SetDescription("Print properties of a font.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "font file path or name", "").
		AddFlag("face", "face index within a font collection", commando.Int, 0).
		AddFlag("names,N", "print all entries of table 'name'", commando.Bool, nil).
		SetAction(runFontCommand)

	commando.Parse(nil)
}
