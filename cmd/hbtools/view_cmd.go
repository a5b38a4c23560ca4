package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/hbshape"
	"github.com/npillmayer/hbshape/fontquery"
	"github.com/npillmayer/hbshape/internal/fontload"
	"github.com/npillmayer/hbshape/layout"
	"github.com/thatisuday/commando"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const viewMargin = 8 // pixels

func runViewCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
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
	if input == "" {
		fatalf("input text is empty")
	}
	outPath := optString(flags["output"])
	if outPath == "" {
		fatalf("output path is empty")
	}
	size := mustFlagInt(flags["size"], "size")
	width := mustFlagInt(flags["width"], "width")
	height := mustFlagInt(flags["height"], "height")
	if size <= 0 {
		fatalf("--size must be > 0")
	}
	if width <= 2*viewMargin || height < 0 {
		fatalf("--width must be > %d and --height must be >= 0", 2*viewMargin)
	}
	align, err := parseAlign(optString(flags["align"]))
	if err != nil {
		fatalf("%v", err)
	}

	f := mustOpenFont(fontName, mustFlagInt(flags["face"], "face"))
	defer f.Close()
	ts, err := layout.NewTokenShaper(f, sf.forText(input))
	if err != nil {
		fatalf("%v", err)
	}
	frame, err := textFrame(f, float64(size), float64(width-2*viewMargin), align)
	if err != nil {
		fatalf("%v", err)
	}
	lines := ts.Lines(input, frame.MaxLineWidth())
	placed := layout.Place(lines, frame)
	if len(placed) == 0 {
		fatalf("shaping produced no glyphs")
	}
	if height == 0 {
		h := (frame.Ascender + float64(len(lines)-1)*frame.LineHeight) * frame.Scale()
		h += -descender(f) * frame.Scale()
		height = int(math.Ceil(h)) + 2*viewMargin
	}
	img, err := renderPlaced(f, placed, size, width, height, mustFlagBool(flags["show-bboxes"], "show-bboxes"))
	if err != nil {
		fatalf("render failed: %v", err)
	}
	if err := writePNG(outPath, img); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("wrote %s (lines=%d, glyphs=%d)\n", outPath, len(lines), len(placed))
}

func parseAlign(s string) (layout.Align, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return layout.AlignLeft, nil
	case "center", "centre":
		return layout.AlignCenter, nil
	case "right":
		return layout.AlignRight, nil
	}
	return layout.AlignLeft, fmt.Errorf("invalid alignment %q, use left|center|right", s)
}

// textFrame sets up a layout frame from the vertical metrics of f.
func textFrame(f *hbshape.Font, size, width float64, align layout.Align) (layout.Frame, error) {
	m, err := fontquery.Metrics(f)
	if err != nil {
		return layout.Frame{}, err
	}
	return layout.Frame{
		Size:       size,
		UnitsPerEm: f.UnitsPerEm(),
		Width:      width,
		Ascender:   float64(m.Ascender),
		LineHeight: float64(m.LineHeight()),
		Align:      align,
	}, nil
}

func descender(f *hbshape.Font) float64 {
	if m, err := fontquery.Metrics(f); err == nil {
		return float64(m.Descender)
	}
	return 0
}

// renderPlaced draws the outlines of placed glyphs in black on white.
// Glyph positions are shifted by the image margin.
func renderPlaced(f *hbshape.Font, placed []layout.Placed, size, width, height int,
	showBBoxes bool) (*image.RGBA, error) {
	//
	blob := &fontload.Blob{Path: f.Path(), Data: f.Data()}
	sf, err := blob.SFNT(f.FaceIndex())
	if err != nil {
		return nil, fmt.Errorf("cannot parse font for rasterization: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{255, 255, 255, 255}), image.Point{}, draw.Src)
	rast := vector.NewRasterizer(width, height)
	rast.DrawOp = draw.Over
	var buf sfnt.Buffer
	drawn := 0
	for _, p := range placed {
		segs, err := sf.LoadGlyph(&buf, sfnt.GlyphIndex(p.GID), fixed.I(size), nil)
		if err != nil {
			tracer().Debugf("cannot load glyph %d: %v", p.GID, err)
			continue
		}
		dx := float32(p.X) + viewMargin
		dy := float32(p.Y) + viewMargin
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				rast.MoveTo(dx+float32(seg.Args[0].X)/64, dy+float32(seg.Args[0].Y)/64)
			case sfnt.SegmentOpLineTo:
				rast.LineTo(dx+float32(seg.Args[0].X)/64, dy+float32(seg.Args[0].Y)/64)
			case sfnt.SegmentOpQuadTo:
				rast.QuadTo(
					dx+float32(seg.Args[0].X)/64, dy+float32(seg.Args[0].Y)/64,
					dx+float32(seg.Args[1].X)/64, dy+float32(seg.Args[1].Y)/64,
				)
			case sfnt.SegmentOpCubeTo:
				rast.CubeTo(
					dx+float32(seg.Args[0].X)/64, dy+float32(seg.Args[0].Y)/64,
					dx+float32(seg.Args[1].X)/64, dy+float32(seg.Args[1].Y)/64,
					dx+float32(seg.Args[2].X)/64, dy+float32(seg.Args[2].Y)/64,
				)
			}
		}
		if showBBoxes && len(segs) > 0 {
			b := segs.Bounds()
			drawRectOutline(img, b.Min.X.Floor()+int(dx), b.Min.Y.Floor()+int(dy),
				b.Max.X.Ceil()+int(dx), b.Max.Y.Ceil()+int(dy), color.RGBA{255, 0, 0, 255})
		}
		drawn++
	}
	if drawn == 0 {
		return nil, errors.New("no drawable glyph paths found")
	}
	rast.Draw(img, img.Bounds(), image.Black, image.Point{})
	return img, nil
}

func drawRectOutline(img *image.RGBA, minX int, minY int, maxX int, maxY int, c color.RGBA) {
	if img == nil {
		return
	}
	if maxX < minX {
		minX, maxX = maxX, minX
	}
	if maxY < minY {
		minY, maxY = maxY, minY
	}
	b := img.Bounds()
	minX, minY = max(minX, b.Min.X), max(minY, b.Min.Y)
	maxX, maxY = min(maxX, b.Max.X), min(maxY, b.Max.Y)
	if minX >= maxX || minY >= maxY {
		return
	}
	// top and bottom
	for x := minX; x < maxX; x++ {
		img.SetRGBA(x, minY, c)
		img.SetRGBA(x, maxY-1, c)
	}
	// left and right
	for y := minY; y < maxY; y++ {
		img.SetRGBA(minX, y, c)
		img.SetRGBA(maxX-1, y, c)
	}
}

func writePNG(outPath string, img image.Image) error {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("cannot encode png: %w", err)
	}
	return nil
}
