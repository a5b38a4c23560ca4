package nojoin

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Replacements maps words to their no-join variants.
type Replacements struct {
	keys []string          // longest first
	repl map[string]string // word -> variant
}

// Effective builds the replacements for a text from shared settings (may be
// nil) and a list of local no-join words. Later sources take precedence:
// shared no-join words are overridden by shared rules for the same word, and
// local words override both.
func Effective(shared *Settings, local []string) *Replacements {
	r := &Replacements{repl: make(map[string]string)}
	if shared != nil {
		for _, w := range shared.Words {
			w = strings.TrimSpace(w)
			r.add(w, InsertZWNJ(w), false)
		}
		for _, rule := range shared.Rules {
			w := strings.TrimSpace(rule.Word)
			r.add(w, SelectiveVariant(w, rule.Patterns), true)
		}
	}
	for _, w := range local {
		w = strings.TrimSpace(w)
		r.add(w, InsertZWNJ(w), true)
	}
	sortLongestFirst(r.keys)
	tracer().Debugf("%d effective no-join replacements", len(r.keys))
	return r
}

func (r *Replacements) add(word, variant string, overwrite bool) {
	if word == "" || variant == "" || word == variant {
		return
	}
	if _, ok := r.repl[word]; ok {
		if overwrite {
			r.repl[word] = variant
		}
		return
	}
	r.repl[word] = variant
	r.keys = append(r.keys, word)
}

// Len returns the number of words to replace.
func (r *Replacements) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Lookup returns the variant for a word.
func (r *Replacements) Lookup(word string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.repl[word]
	return v, ok
}

// Apply replaces whole-word occurrences in text, longest words first.
func (r *Replacements) Apply(text string) string {
	if r.Len() == 0 || text == "" {
		return text
	}
	for _, w := range r.keys {
		text = ReplaceWholeWord(text, w, r.repl[w])
	}
	return text
}

// sortLongestFirst sorts by descending number of runes, keeping the order of
// equally long strings.
func sortLongestFirst(s []string) {
	slices.SortStableFunc(s, func(a, b string) int {
		return cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a))
	})
}
