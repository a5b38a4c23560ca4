package main

import (
	"testing"

	"github.com/npillmayer/hbshape"
	"github.com/npillmayer/hbshape/internal/testfont"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pterm/pterm"
)

func newTestIntp(t *testing.T) *Intp {
	pterm.DisableOutput()
	intp := &Intp{}
	if err := intp.loadFont(testfont.GoRegular(t), 0); err != nil {
		t.Fatalf("cannot load test font: %v", err)
	}
	t.Cleanup(intp.close)
	return intp
}

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbshape.cli")
	defer teardown()
	//
	op := parseCommand("shape:JSON  Hello World ")
	if op.code != SHAPE || op.format != "json" || op.arg != "Hello World" {
		t.Errorf("unexpected op %+v", op)
	}
	if op = parseCommand("quit now"); op.code != QUIT || op.arg != "" {
		t.Errorf("expected QUIT without argument, have %+v", op)
	}
	if op = parseCommand("frobnicate"); op.code != HELP {
		t.Errorf("expected unknown command to map to HELP, have %d", op.code)
	}
	if op = parseCommand("   "); op.code != NOOP {
		t.Errorf("expected NOOP for empty line, have %d", op.code)
	}
}

func TestExecuteWithoutFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbshape.cli")
	defer teardown()
	//
	pterm.DisableOutput()
	intp := &Intp{}
	if err, _ := intp.execute(parseCommand("shape abc")); err != errNoFont {
		t.Errorf("expected error for missing font, have %v", err)
	}
	if err, stop := intp.execute(parseCommand("quit")); err != nil || !stop {
		t.Errorf("expected quit to stop the REPL")
	}
	if err, _ := intp.execute(parseCommand("help shape")); err != nil {
		t.Error(err)
	}
}

func TestParameterCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbshape.cli")
	defer teardown()
	//
	intp := newTestIntp(t)
	for _, line := range []string{"lang EN-us", "script latn", "dir rtl", "features liga=0, kern"} {
		if err, _ := intp.execute(parseCommand(line)); err != nil {
			t.Fatalf("%s: %v", line, err)
		}
	}
	p := intp.params
	if p.Language != "en-US" {
		t.Errorf("expected canonical language en-US, have %q", p.Language)
	}
	if p.Script != hbshape.MakeTag("Latn") {
		t.Errorf("expected script Latn, have %s", p.Script)
	}
	if p.Direction != hbshape.RightToLeft {
		t.Errorf("expected RTL")
	}
	if len(p.Features) != 2 {
		t.Errorf("expected 2 features, have %d", len(p.Features))
	}
	if err, _ := intp.execute(parseCommand("lang 12345678901")); err == nil {
		t.Errorf("expected invalid language to be rejected")
	}
	if intp.params.Language != "en-US" {
		t.Errorf("expected language to be unchanged after error, have %q", intp.params.Language)
	}
	if err, _ := intp.execute(parseCommand("dir sideways")); err == nil {
		t.Errorf("expected invalid direction to be rejected")
	}
	if err, _ := intp.execute(parseCommand("dir auto")); err != nil || !intp.autoDir {
		t.Errorf("expected automatic direction")
	}
}

func TestShapeCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbshape.cli")
	defer teardown()
	//
	intp := newTestIntp(t)
	for _, line := range []string{"shape Hello", "shape:text Hello", "shape:json Hello",
		"wrap 1500 the quick brown fox", "wrap:text 0 jumps", "info", "font", "upem"} {
		if err, _ := intp.execute(parseCommand(line)); err != nil {
			t.Errorf("%s: %v", line, err)
		}
	}
	if err, _ := intp.execute(parseCommand("shape:xml Hello")); err == nil {
		t.Errorf("expected unknown format to be rejected")
	}
	if err, _ := intp.execute(parseCommand("wrap wide text")); err == nil {
		t.Errorf("expected invalid width to be rejected")
	}
}

func TestNoJoinCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbshape.cli")
	defer teardown()
	//
	intp := newTestIntp(t)
	if err, _ := intp.execute(parseCommand("nojoin शक्ति, विद्या")); err != nil {
		t.Fatal(err)
	}
	if intp.nojoin == nil || intp.nojoin.Len() != 2 {
		t.Fatalf("expected 2 replacements")
	}
	if err, _ := intp.execute(parseCommand("nojoin off")); err != nil || intp.nojoin != nil {
		t.Errorf("expected replacements to be disabled")
	}
}
