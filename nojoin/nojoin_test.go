package nojoin

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const (
	kssa    = "क्ष"      // KA VIRAMA SSA
	kshatra = "क्षत्र"   // KA VIRAMA SSA TA VIRAMA RA
	kshatri = "क्षत्रिय" // continues with a vowel sign
	zwnj    = "\u200c"
)

func TestInsertZWNJ(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbshape.nojoin")
	defer teardown()
	//
	cases := []struct{ in, out string }{
		{kssa, "क्" + zwnj + "ष"},
		{kshatra, "क्" + zwnj + "षत्" + zwnj + "र"},
		{"क्" + zwnj + "ष", "क्" + zwnj + "ष"},
		{"क्\u200dष", "क्\u200dष"},
		{"क्", "क्" + zwnj},
		{"hello", "hello"},
		{"", ""},
	}
	for _, c := range cases {
		if got := InsertZWNJ(c.in); got != c.out {
			t.Errorf("InsertZWNJ(%q) = %q, expected %q", c.in, got, c.out)
		}
	}
}

func TestSelectiveVariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbshape.nojoin")
	defer teardown()
	//
	got := SelectiveVariant(kshatra, "त्र; क")
	want := "क्षत्" + zwnj + "र"
	if got != want {
		t.Errorf("expected only त्र to be disjoined, got %q", got)
	}
	if got = SelectiveVariant(kshatra, " , ;"); got != kshatra {
		t.Errorf("expected word unchanged for empty patterns, got %q", got)
	}
	if got = SelectiveVariant("", "त्र"); got != "" {
		t.Errorf("expected empty word to stay empty, got %q", got)
	}
}

func TestReplaceWholeWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbshape.nojoin")
	defer teardown()
	//
	text := kshatra + " " + kshatri + ", " + kshatra
	got := ReplaceWholeWord(text, kshatra, "X")
	want := "X " + kshatri + ", X"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got = ReplaceWholeWord("cat concat cat", "cat", "dog"); got != "dog concat dog" {
		t.Errorf("expected whole-word replacement, got %q", got)
	}
	if got = ReplaceWholeWord("category", "cat", "dog"); got != "category" {
		t.Errorf("expected no replacement inside word, got %q", got)
	}
}

func TestIsWordRune(t *testing.T) {
	for _, r := range []rune{'a', '7', 'क', 'ि', '्', '\u200c', '\u200d'} {
		if !IsWordRune(r) {
			t.Errorf("expected %U to be a word rune", r)
		}
	}
	for _, r := range []rune{' ', ',', '।', '-'} {
		if IsWordRune(r) {
			t.Errorf("expected %U not to be a word rune", r)
		}
	}
}

func TestParseTokens(t *testing.T) {
	got := ParseTokens(" a, b;\tc\r\n\n d ,, ")
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got = ParseTokens(" \n "); len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	s := &Settings{
		Words: []string{" zeta", "alpha", "", "zeta", "  "},
		Rules: []Rule{
			{Word: "w2", Patterns: "b, a"},
			{Word: " w1 ", Patterns: "x"},
			{Word: "w2", Patterns: "a;c"},
			{Word: "", Patterns: "ignored"},
		},
	}
	s.Normalize()
	if want := []string{"alpha", "zeta"}; !reflect.DeepEqual(s.Words, want) {
		t.Errorf("expected words %v, got %v", want, s.Words)
	}
	want := []Rule{{Word: "w1", Patterns: "x"}, {Word: "w2", Patterns: "a, b, c"}}
	if !reflect.DeepEqual(s.Rules, want) {
		t.Errorf("expected rules %v, got %v", want, s.Rules)
	}
}

func TestSortLongestFirst(t *testing.T) {
	s := []string{"ab", kssa, "abcd", "cd", "x", kshatra}
	sortLongestFirst(s)
	// क्ष counts 3 runes, क्षत्र 6
	want := []string{kshatra, "abcd", kssa, "ab", "cd", "x"}
	if !reflect.DeepEqual(s, want) {
		t.Errorf("expected %v, got %v", want, s)
	}
}

func TestEffectiveReplacements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbshape.nojoin")
	defer teardown()
	//
	shared := &Settings{
		Words: []string{kshatra, kssa, "plain"},
		Rules: []Rule{{Word: kshatra, Patterns: "त्र"}},
	}
	r := Effective(shared, nil)
	if r.Len() != 2 {
		t.Errorf("expected 2 replacements (plain word has no virama), got %d", r.Len())
	}
	if v, _ := r.Lookup(kshatra); v != "क्षत्"+zwnj+"र" {
		t.Errorf("expected shared rule to override shared word, got %q", v)
	}
	r = Effective(shared, []string{kshatra})
	if v, _ := r.Lookup(kshatra); v != InsertZWNJ(kshatra) {
		t.Errorf("expected local word to override shared rule, got %q", v)
	}
	text := kssa + " " + kshatra + " " + kshatri
	got := r.Apply(text)
	want := InsertZWNJ(kssa) + " " + InsertZWNJ(kshatra) + " " + kshatri
	if got != want {
		t.Errorf("Apply = %q, expected %q", got, want)
	}
	var none *Replacements
	if none.Apply(text) != text || none.Len() != 0 {
		t.Errorf("nil replacements must not change text")
	}
}

func TestSettingsFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hbshape.nojoin")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "nojoin.yaml")
	s := &Settings{Rules: []Rule{{Word: kshatra, Patterns: "त्र"}}}
	s.AddWords(kssa + ", " + kshatra)
	if err := s.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(s, loaded) {
		t.Errorf("expected %+v, got %+v", s, loaded)
	}
	if _, err = LoadSettings(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing settings file")
	}
}
