/*
Command hbshape is an interactive shell for shaping text.

Start it with a font, then type text to shape:

	hbshape -font NotoSansDevanagari-Regular.ttf -lang hi
	hb > script deva
	hb > shape नमस्ते
	hb > shape:json नमस्ते
	hb > wrap 2000 a longer text which should be broken into lines

Fonts are given as file paths or as file names, which are searched in the
system's font directories. Type "help" for a list of commands.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/hbshape"
	"github.com/npillmayer/hbshape/internal/fontload"
	"github.com/npillmayer/hbshape/layout"
	"github.com/npillmayer/hbshape/nojoin"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'hbshape.cli'
func tracer() tracing.Trace {
	return tracing.Select("hbshape.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.hbshape.cli": "Info",
		"trace.hbshape":     "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load (path or file name)")
	face := flag.Int("face", 0, "Face index within a font collection")
	lang := flag.String("lang", "", "Language (BCP 47), empty for guessing")
	settings := flag.String("nojoin", "", "No-join settings file (YAML)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to hbshape") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("hb > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, params: hbshape.Params{Language: *lang}}
	defer intp.close()
	//
	// load font to use
	if *fontname != "" {
		if err := intp.loadFont(*fontname, *face); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	if *settings != "" {
		if err := intp.loadNoJoin(*settings); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font    *hbshape.Font
	repl    *readline.Instance
	params  hbshape.Params
	autoDir bool                  // take direction from the text
	ts      *layout.TokenShaper   // recreated on font or parameter changes
	nojoin  *nojoin.Replacements // nil if not configured
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "( no font )"
	}
	dir := intp.params.Direction.String()
	if intp.autoDir {
		dir = "auto"
	}
	return fmt.Sprintf("( font=%s script=%s lang=%s dir=%s )", intp.font.Path(),
		orUnset(intp.params.Script.String()), orUnset(intp.params.Language), dir)
}

func orUnset(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op := parseCommand(line)
		err, quit := intp.execute(op)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) close() {
	intp.font.Close()
	if intp.repl != nil {
		intp.repl.Close()
	}
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string, face int) error {
	path, err := fontload.Resolve(fontname)
	if err != nil {
		return err
	}
	f, err := hbshape.OpenFont(path, face)
	if err != nil {
		return err
	}
	intp.font.Close()
	intp.font = f
	tracer().Infof("loaded font %s, %d units per em", path, f.UnitsPerEm())
	return intp.resetShaper()
}

func (intp *Intp) resetShaper() (err error) {
	if intp.font == nil {
		intp.ts = nil
		return nil
	}
	if intp.ts == nil {
		intp.ts, err = layout.NewTokenShaper(intp.font, intp.params)
		return err
	}
	return intp.ts.SetParams(intp.params)
}

func (intp *Intp) loadNoJoin(path string) error {
	settings, err := nojoin.LoadSettings(path)
	if err != nil {
		return err
	}
	settings.Normalize()
	intp.nojoin = nojoin.Effective(settings, nil)
	pterm.Printf("%d no-join replacements active\n", intp.nojoin.Len())
	return nil
}
