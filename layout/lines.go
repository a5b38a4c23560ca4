package layout

import (
	"math"
	"strings"

	"github.com/npillmayer/hbshape"
)

// Line is a line of shaped text. Glyph clusters are byte offsets into Text.
type Line struct {
	Text   string
	Glyphs []hbshape.Glyph
	Width  int32 // in design units
}

func (l *Line) append(run *Run) {
	offset := uint32(len(l.Text))
	for _, g := range run.Glyphs {
		g.Cluster += offset
		l.Glyphs = append(l.Glyphs, g)
	}
	l.Text += run.Text
	l.Width += run.Width
}

// Lines shapes text into lines. Line breaks "\r\n", "\r" and "\n" end
// paragraphs; an empty paragraph results in an empty line.
//
// If maxWidth is positive and finite, paragraphs are wrapped at spaces so
// that lines do not exceed maxWidth design units, unless a single token is
// wider. Every token after the first one of a paragraph carries its leading
// space, which is dropped if the token starts a new line. Otherwise every
// paragraph is shaped as a single line.
//
// Lines returns at least one line.
func (ts *TokenShaper) Lines(text string, maxWidth float64) []Line {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	wrap := maxWidth > 0 && !math.IsInf(maxWidth, 1)
	var lines []Line
	for _, para := range strings.Split(text, "\n") {
		if para == "" {
			lines = append(lines, Line{})
			continue
		}
		if !wrap {
			var line Line
			line.append(ts.Shape(para))
			lines = append(lines, line)
			continue
		}
		var line Line
		for i, word := range strings.Split(para, " ") {
			token := word
			if i > 0 {
				token = " " + word
			}
			if token == "" {
				continue
			}
			run := ts.Shape(token)
			if len(line.Glyphs) > 0 && float64(line.Width+run.Width) > maxWidth {
				lines = append(lines, line)
				line = Line{}
				if trimmed := strings.TrimLeft(token, " "); trimmed != "" {
					run = ts.Shape(trimmed)
				}
			}
			line.append(run)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, Line{})
	}
	tracer().Debugf("%d bytes of text set into %d lines", len(text), len(lines))
	return lines
}
