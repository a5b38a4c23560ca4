package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/hbshape"
	"github.com/npillmayer/hbshape/layout"
	"github.com/npillmayer/hbshape/nojoin"
	"github.com/pterm/pterm"
)

// Op is a single command of the REPL. Commands are entered as
//
//	op[:format] [argument]
//
// where the argument is the remainder of the line, including spaces.
type Op struct {
	code   int
	arg    string
	format string
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	FONT
	SHAPE
	LANG
	SCRIPT
	DIR
	FEATURES
	UPEM
	INFO
	WRAP
	NOJOIN
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"font":     FONT,
	"shape":    SHAPE,
	"lang":     LANG,
	"script":   SCRIPT,
	"dir":      DIR,
	"features": FEATURES,
	"upem":     UPEM,
	"info":     INFO,
	"wrap":     WRAP,
	"nojoin":   NOJOIN,
}

var opNames = []string{
	"quit",
	"help",
	"font",
	"shape",
	"lang",
	"script",
	"dir",
	"features",
	"upem",
	"info",
	"wrap",
	"nojoin",
}

// parseCommand splits an input line into an op-code, an optional format and
// the argument. Unknown commands are mapped to HELP.
func parseCommand(line string) *Op {
	op := &Op{code: NOOP}
	line = strings.TrimSpace(line)
	if line == "" {
		return op
	}
	word, rest, _ := strings.Cut(line, " ")
	c := strings.Split(word, ":") // e.g.  "shape:json" or "help:commands"
	code, ok := opMap[strings.ToLower(c[0])]
	if !ok {
		code = HELP
	}
	op.code = code
	if code == QUIT {
		return op
	}
	op.format = strings.ToLower(getOptArg(c, 1))
	op.arg = strings.TrimSpace(rest)
	if op.arg == "" {
		tracer().Debugf("%s", opNames[code])
	} else {
		tracer().Debugf("%s: '%s'", opNames[code], op.arg)
	}
	return op
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	FONT:     fontOp,
	SHAPE:    shapeOp,
	LANG:     langOp,
	SCRIPT:   scriptOp,
	DIR:      dirOp,
	FEATURES: featuresOp,
	UPEM:     upemOp,
	INFO:     infoOp,
	WRAP:     wrapOp,
	NOJOIN:   nojoinOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	tracer().Debugf("op = %v", op)
	if op == nil || op.code == NOOP {
		return nil, false
	}
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	err, stop = f(intp, op)
	if err != nil {
		pterm.Error.Println(err)
	}
	return
}

var errNoFont = errors.New("no font loaded; use 'font <name>'")

func (intp *Intp) checkFont() error {
	if intp.font == nil || intp.ts == nil {
		return errNoFont
	}
	return nil
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// font <name> [face]
func fontOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		if intp.font == nil {
			return errNoFont, false
		}
		pterm.Printf("%s, face %d, %d units per em\n", intp.font.Path(),
			intp.font.FaceIndex(), intp.font.UnitsPerEm())
		return nil, false
	}
	args := strings.Fields(op.arg)
	face := 0
	if len(args) > 1 {
		var err error
		if face, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("face index: %w", err), false
		}
	}
	return intp.loadFont(args[0], face), false
}

func shapeOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	text := op.arg
	if intp.nojoin != nil {
		text = intp.nojoin.Apply(text)
	}
	params := intp.params
	if intp.autoDir {
		params.Direction = layout.BaseDirection(text)
	}
	glyphs := layout.ShapeAll(intp.font, text, params)
	tracer().Infof("shaped %d glyphs", len(glyphs))
	if layout.MostlyNotdef(glyphs) {
		pterm.Warning.Println("font does not seem to support this text")
	}
	return printGlyphs(glyphs, op.format), false
}

func langOp(intp *Intp, op *Op) (error, bool) {
	lang := op.arg
	if lang == "-" || lang == "auto" {
		lang = ""
	}
	old := intp.params.Language
	intp.params.Language = lang
	if err := intp.resetShaper(); err != nil {
		intp.params.Language = old
		return err, false
	}
	if intp.ts != nil { // take the canonical form
		intp.params.Language = intp.ts.Params().Language
	}
	return nil, false
}

func scriptOp(intp *Intp, op *Op) (error, bool) {
	var tag hbshape.ScriptTag
	if op.arg != "" && op.arg != "-" && op.arg != "auto" {
		var err error
		if tag, err = hbshape.ParseScriptTag(op.arg); err != nil {
			return err, false
		}
	}
	intp.params.Script = tag
	return intp.resetShaper(), false
}

func dirOp(intp *Intp, op *Op) (error, bool) {
	intp.autoDir = false
	switch strings.ToLower(op.arg) {
	case "ltr", "":
		intp.params.Direction = hbshape.LeftToRight
	case "rtl":
		intp.params.Direction = hbshape.RightToLeft
	case "auto":
		intp.autoDir = true
	default:
		return fmt.Errorf("unknown direction '%s', use ltr|rtl|auto", op.arg), false
	}
	return intp.resetShaper(), false
}

func featuresOp(intp *Intp, op *Op) (error, bool) {
	features, err := hbshape.ParseFeatures(op.arg)
	if err != nil {
		return err, false
	}
	intp.params.Features = features
	return intp.resetShaper(), false
}

func upemOp(intp *Intp, op *Op) (error, bool) {
	if intp.font == nil {
		return errNoFont, false
	}
	pterm.Printf("%d units per em\n", intp.font.UnitsPerEm())
	return nil, false
}

func infoOp(intp *Intp, op *Op) (error, bool) {
	if intp.font == nil {
		return errNoFont, false
	}
	return printFontInfo(intp.font), false
}

// wrap <width> <text>
func wrapOp(intp *Intp, op *Op) (error, bool) {
	if err := intp.checkFont(); err != nil {
		return err, false
	}
	w, text, _ := strings.Cut(op.arg, " ")
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return fmt.Errorf("usage: wrap <width> <text>: %w", err), false
	}
	if intp.nojoin != nil {
		text = intp.nojoin.Apply(text)
	}
	lines := intp.ts.Lines(text, width)
	printLines(lines, op.format)
	return nil, false
}

// nojoin <file> | off | words...
func nojoinOp(intp *Intp, op *Op) (error, bool) {
	switch {
	case op.arg == "off":
		intp.nojoin = nil
		pterm.Println("no-join replacements disabled")
		return nil, false
	case op.arg == "":
		if intp.nojoin == nil {
			pterm.Println("no-join replacements disabled")
		} else {
			pterm.Printf("%d no-join replacements active\n", intp.nojoin.Len())
		}
		return nil, false
	}
	if _, err := os.Stat(op.arg); err == nil {
		return intp.loadNoJoin(op.arg), false
	}
	intp.nojoin = nojoin.Effective(nil, nojoin.ParseTokens(op.arg))
	pterm.Printf("%d no-join replacements active\n", intp.nojoin.Len())
	return nil, false
}

func getOptArg(s []string, inx int) string {
	if len(s) > inx {
		return s[inx]
	}
	return ""
}
