package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/hbshape"
	"github.com/npillmayer/hbshape/fontquery"
	"github.com/npillmayer/hbshape/internal/hbjson"
	"github.com/npillmayer/hbshape/layout"
	"github.com/pterm/pterm"
)

func printGlyphs(glyphs []hbshape.Glyph, format string) error {
	switch format {
	case "json":
		return hbjson.Encode(os.Stdout, hbjson.FromGlyphs(glyphs))
	case "text":
		pterm.Println(hbjson.Format(hbjson.FromGlyphs(glyphs)))
		return nil
	case "", "table":
		return glyphTable(glyphs).Render()
	}
	return fmt.Errorf("unknown format '%s', use table|text|json", format)
}

func glyphTable(glyphs []hbshape.Glyph) *pterm.TablePrinter {
	data := [][]string{
		{"#", "GID", "Cluster", "X-Adv", "Y-Adv", "X-Off", "Y-Off"},
	}
	for i, g := range glyphs {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", g.GID),
			fmt.Sprintf("%d", g.Cluster),
			fmt.Sprintf("%d", g.XAdvance),
			fmt.Sprintf("%d", g.YAdvance),
			fmt.Sprintf("%d", g.XOffset),
			fmt.Sprintf("%d", g.YOffset),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data)
}

func printLines(lines []layout.Line, format string) {
	if format == "text" {
		for _, l := range lines {
			pterm.Println(l.Text)
		}
		return
	}
	data := [][]string{
		{"Line", "Width", "Glyphs", "Text"},
	}
	for i, l := range lines {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", l.Width),
			fmt.Sprintf("%d", len(l.Glyphs)),
			l.Text,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printFontInfo(f *hbshape.Font) error {
	data := [][]string{
		{"Property", "Value"},
		{"Path", f.Path()},
		{"Face", fmt.Sprintf("%d", f.FaceIndex())},
		{"Type", fontquery.FontType(f)},
		{"Description", fontquery.Describe(f)},
		{"Units per em", fmt.Sprintf("%d", f.UnitsPerEm())},
	}
	if names, err := fontquery.Names(f); err == nil {
		data = append(data,
			[]string{"Family", names.Family},
			[]string{"Subfamily", names.Subfamily},
			[]string{"Version", names.Version},
		)
	} else {
		tracer().Infof("names: %v", err)
	}
	if head, err := fontquery.HeadInfo(f); err == nil {
		data = append(data, []string{"Revision", fmt.Sprintf("%.3f", head.Revision())})
	}
	if n, err := fontquery.GlyphCount(f); err == nil {
		data = append(data, []string{"Glyphs", fmt.Sprintf("%d", n)})
	}
	if m, err := fontquery.Metrics(f); err == nil {
		data = append(data,
			[]string{"Ascender", fmt.Sprintf("%g", m.Ascender)},
			[]string{"Descender", fmt.Sprintf("%g", m.Descender)},
			[]string{"Line gap", fmt.Sprintf("%g", m.LineGap)},
		)
	}
	data = append(data, []string{"Layout tables", strings.Join(fontquery.LayoutTables(f), " ")})
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
