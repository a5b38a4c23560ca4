package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/hbshape/fontquery"
	"github.com/thatisuday/commando"
)

func runFontCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setVerbosity(flags)
	fontName := strings.TrimSpace(args["font"].Value)
	if fontName == "" {
		fatalf("font path is required")
	}
	f := mustOpenFont(fontName, mustFlagInt(flags["face"], "face"))
	defer f.Close()

	fmt.Printf("Path: %s\n", f.Path())
	fmt.Printf("Face: %d\n", f.FaceIndex())
	fmt.Printf("Type: %s\n", fontquery.FontType(f))
	fmt.Printf("Description: %s\n", fontquery.Describe(f))
	if names, err := fontquery.Names(f); err == nil {
		if names.Family != "" {
			fmt.Printf("Family: %s\n", names.Family)
		}
		if names.Subfamily != "" {
			fmt.Printf("Subfamily: %s\n", names.Subfamily)
		}
		if names.Version != "" {
			fmt.Printf("Version: %s\n", names.Version)
		}
	} else {
		fmt.Printf("Names: %v\n", err)
	}
	if head, err := fontquery.HeadInfo(f); err == nil {
		fmt.Printf("Revision: %.3f\n", head.Revision())
		fmt.Printf("Bounds: (%d,%d)-(%d,%d)\n", head.XMin, head.YMin, head.XMax, head.YMax)
	} else {
		fmt.Printf("Head: %v\n", err)
	}
	fmt.Printf("Units per em: %d\n", f.UnitsPerEm())
	if n, err := fontquery.GlyphCount(f); err == nil {
		fmt.Printf("Glyphs: %d\n", n)
	}
	if m, err := fontquery.Metrics(f); err == nil {
		fmt.Printf("Metrics: ascender=%g descender=%g line-gap=%g line-height=%g\n",
			m.Ascender, m.Descender, m.LineGap, m.LineHeight())
	}
	fmt.Printf("Layout: %s\n", strings.Join(fontquery.LayoutTables(f), ","))

	if mustFlagBool(flags["names"], "names") {
		for id, s := range fontquery.NamesRange(f) {
			fmt.Printf("name %3d: %s\n", id, s)
		}
	}
}
