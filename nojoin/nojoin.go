/*
Package nojoin suppresses conjunct forms in Devanagari words.

A Devanagari consonant followed by a virama (U+094D) usually joins the next
consonant into a conjunct or a half form. Inserting a zero width non-joiner
(U+200C) after the virama makes the shaper display the explicit virama
instead. Some words are conventionally written that way, or render badly with
fonts lacking a conjunct. This package rewrites such words in a text before
it is shaped:

  - no-join words get a ZWNJ after every virama,
  - selective rules name a word together with the consonant clusters which
    must not join; all other clusters of the word stay joined.

Replacements are applied to whole words only. A word is a maximal run of
letters, digits, combining marks, ZWNJ and ZWJ.

The package traces to key 'hbshape.nojoin'.
*/
package nojoin

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hbshape.nojoin'
func tracer() tracing.Trace {
	return tracing.Select("hbshape.nojoin")
}

const (
	// Virama is DEVANAGARI SIGN VIRAMA.
	Virama = '\u094D'
	// ZWNJ is ZERO WIDTH NON-JOINER.
	ZWNJ = '\u200C'
	// ZWJ is ZERO WIDTH JOINER.
	ZWJ = '\u200D'
)

// InsertZWNJ returns word with a ZWNJ inserted after every virama which is not
// already followed by ZWNJ or ZWJ.
func InsertZWNJ(word string) string {
	if !strings.ContainsRune(word, Virama) {
		return word
	}
	var b strings.Builder
	b.Grow(len(word) + 12)
	for i, r := range word {
		b.WriteRune(r)
		if r != Virama {
			continue
		}
		next, _ := utf8.DecodeRuneInString(word[i+utf8.RuneLen(r):])
		if next != ZWNJ && next != ZWJ {
			b.WriteRune(ZWNJ)
		}
	}
	return b.String()
}

// SelectiveVariant returns word with only the given clusters kept from
// joining. patterns is a list in the syntax of ParseTokens. Patterns without
// a virama are ignored; longer patterns are applied first.
func SelectiveVariant(word string, patterns string) string {
	if word == "" {
		return word
	}
	tokens := ParseTokens(patterns)
	sortLongestFirst(tokens)
	result := word
	for _, pattern := range tokens {
		if !strings.ContainsRune(pattern, Virama) {
			continue
		}
		replacement := InsertZWNJ(pattern)
		if replacement == pattern {
			continue
		}
		result = strings.ReplaceAll(result, pattern, replacement)
	}
	return result
}

// ReplaceWholeWord replaces every occurrence of word in text which is not
// part of a longer word. Occurrences are searched left to right and do not
// overlap.
func ReplaceWholeWord(text, word, replacement string) string {
	if text == "" || word == "" || replacement == word {
		return text
	}
	var b strings.Builder
	search, appended := 0, 0
	for search < len(text) {
		i := strings.Index(text[search:], word)
		if i < 0 {
			break
		}
		match := search + i
		search = match + len(word)
		if !boundaryBefore(text, match) || !boundaryAfter(text, match+len(word)) {
			continue
		}
		if b.Len() == 0 {
			b.Grow(len(text) + 16)
		}
		b.WriteString(text[appended:match])
		b.WriteString(replacement)
		appended = match + len(word)
	}
	if appended == 0 {
		return text
	}
	b.WriteString(text[appended:])
	return b.String()
}

func boundaryBefore(text string, pos int) bool {
	if pos <= 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return !IsWordRune(r)
}

func boundaryAfter(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return !IsWordRune(r)
}

// IsWordRune reports whether r may be part of a word: letters, digits,
// combining marks (Mn, Mc, Me), ZWNJ and ZWJ.
func IsWordRune(r rune) bool {
	if r == ZWNJ || r == ZWJ {
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.M, r)
}

// ParseTokens splits a list separated by line breaks, tabs, commas or
// semicolons. Tokens are trimmed and empty tokens are dropped.
func ParseTokens(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case '\r', '\n', ',', ';', '\t':
			return true
		}
		return false
	})
	tokens := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
