package hbshape

import (
	"fmt"
	"strings"

	"github.com/go-text/typesetting/harfbuzz"
	"github.com/go-text/typesetting/language"
)

// Direction is the writing direction of a text run.
type Direction int

const (
	// LeftToRight is the default direction.
	LeftToRight Direction = 0
	// RightToLeft is used for Arabic, Hebrew and other RTL scripts.
	RightToLeft Direction = 1
)

// String returns "LTR" or "RTL". Every value other than RightToLeft denotes
// left-to-right.
func (d Direction) String() string {
	if d == RightToLeft {
		return "RTL"
	}
	return "LTR"
}

func (d Direction) hb() harfbuzz.Direction {
	if d == RightToLeft {
		return harfbuzz.RightToLeft
	}
	return harfbuzz.LeftToRight
}

// ScriptTag is a four-letter ISO 15924 script code, packed big-endian into an
// unsigned integer ('D','e','v','a' → 0x44657661). Zero means "unspecified".
type ScriptTag uint32

// MakeTag packs a four-letter script code. Strings of any other length
// result in 0.
func MakeTag(s string) ScriptTag {
	if len(s) != 4 {
		return 0
	}
	return ScriptTag(uint32(s[0])<<24 | uint32(s[1])<<16 | uint32(s[2])<<8 | uint32(s[3]))
}

// ParseScriptTag accepts a four-letter script code in any letter case and
// returns it in canonical form.
func ParseScriptTag(s string) (ScriptTag, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return 0, fmt.Errorf("hbshape: script tag %q is not four letters", s)
	}
	for _, c := range []byte(s) {
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return 0, fmt.Errorf("hbshape: script tag %q contains non-letters", s)
		}
	}
	return MakeTag(s).canonical(), nil
}

// ScriptOf returns the script tag of a rune, as defined by Unicode's Scripts
// property.
func ScriptOf(r rune) ScriptTag {
	return ScriptTag(language.LookupScript(r))
}

// String returns the four-letter code of a tag, or "" for 0.
func (t ScriptTag) String() string {
	if t == 0 {
		return ""
	}
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// canonical folds the letter case to 'Xxxx'.
func (t ScriptTag) canonical() ScriptTag {
	return t&0xDFDFDFDF | 0x00202020
}

// script maps a tag to the shaper's script value. Besides case folding, a few
// ISO 15924 variants are mapped to the script they are shaped as.
func (t ScriptTag) script() language.Script {
	if t == 0 {
		return 0
	}
	switch t = t.canonical(); t {
	case MakeTag("Qaai"):
		return language.Inherited
	case MakeTag("Qaac"):
		return language.Coptic
	case MakeTag("Cyrs"):
		return language.Cyrillic
	case MakeTag("Latf"), MakeTag("Latg"):
		return language.Latin
	case MakeTag("Syre"), MakeTag("Syrj"), MakeTag("Syrn"):
		return language.Syriac
	}
	return language.Script(t)
}
