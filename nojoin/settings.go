package nojoin

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule keeps selected clusters of a word from joining.
type Rule struct {
	Word     string `yaml:"word"`
	Patterns string `yaml:"patterns"` // e.g. "त्त, न्द"
}

// Settings is a persistent no-join configuration, usually shared between
// documents.
type Settings struct {
	Words []string `yaml:"words"` // words with every virama kept from joining
	Rules []Rule   `yaml:"rules"`
}

// LoadSettings reads settings from a YAML file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := &Settings{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("nojoin: settings %s: %w", path, err)
	}
	tracer().Debugf("loaded %d no-join words and %d rules from %s", len(s.Words), len(s.Rules), path)
	return s, nil
}

// Save writes settings as YAML.
func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// AddWords adds every token of list (see ParseTokens) as a no-join word.
// Duplicates are removed by Normalize.
func (s *Settings) AddWords(list string) {
	s.Words = append(s.Words, ParseTokens(list)...)
}

// Normalize trims all entries, removes empty and duplicate words and sorts
// them. Rules for the same word are merged; their patterns are sorted and
// joined by ", ".
func (s *Settings) Normalize() {
	seen := make(map[string]bool, len(s.Words))
	words := s.Words[:0]
	for _, w := range s.Words {
		if w = strings.TrimSpace(w); w != "" && !seen[w] {
			seen[w] = true
			words = append(words, w)
		}
	}
	slices.Sort(words)
	s.Words = words
	merged := make(map[string]map[string]bool)
	for _, rule := range s.Rules {
		word := strings.TrimSpace(rule.Word)
		if word == "" {
			continue
		}
		if merged[word] == nil {
			merged[word] = make(map[string]bool)
		}
		for _, p := range ParseTokens(rule.Patterns) {
			merged[word][p] = true
		}
	}
	rules := make([]Rule, 0, len(merged))
	for word, set := range merged {
		patterns := make([]string, 0, len(set))
		for p := range set {
			patterns = append(patterns, p)
		}
		slices.Sort(patterns)
		rules = append(rules, Rule{Word: word, Patterns: strings.Join(patterns, ", ")})
	}
	slices.SortFunc(rules, func(a, b Rule) int { return strings.Compare(a.Word, b.Word) })
	s.Rules = rules
}
