package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "shape", "format", "formats":
		pterm.Info.Println("shape[:format] <text>")
		pterm.Println(`
	Shapes text with the current font and parameters. Formats are
	  table   a table of glyphs (default)
	  text    hb-shape style: [gid=cluster+advance|...]
	  json    a JSON array of glyphs
	Clusters are byte offsets into the UTF-8 text.
	`)
	case "params", "lang", "script", "dir", "features":
		pterm.Info.Println("Shaping parameters")
		pterm.Println(`
	lang <bcp47>|auto       language, e.g. "hi" or "sr-Latn"
	script <tag>|auto       ISO 15924 script tag, e.g. "Deva"
	dir ltr|rtl|auto        direction; auto takes it from the text
	features <list>         e.g. "liga=0, kern"
	Language and script are guessed from the text if set to auto.
	`)
	case "wrap":
		pterm.Info.Println("wrap[:format] <width> <text>")
		pterm.Println(`
	Breaks text into lines at spaces, with width in font design units.
	Format "text" prints one line per row, the default prints a table.
	`)
	case "nojoin", "zwnj":
		pterm.Info.Println("nojoin <file>|off|<words>")
		pterm.Println(`
	Inserts zero-width non-joiners after each virama of listed words before
	shaping. Words are taken from a YAML settings file or from a list
	separated by commas.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println("\t" + strings.Join(opNames, ", "))
		pterm.Println(`
	font <name> [face]      load a font file
	info                    print font information
	upem                    print units per em of the font
	help <topic>            topics: shape, params, wrap, nojoin
	`)
	}
}
