package enhancer

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// CategoryGeneral is the fallback subject category when no keyword matches.
const CategoryGeneral = "general"

// categoryNamePattern keeps names usable as metric label values.
var categoryNamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9\-]*[a-z0-9])?$`)

//go:embed vocabulary.yaml
var defaultVocabularyYAML []byte

// Category is a subject bucket: keywords select it, adjectives describe it.
type Category struct {
	Name       string   `yaml:"name"`
	Keywords   []string `yaml:"keywords"`
	Adjectives []string `yaml:"adjectives"`
}

// Vocabulary holds every word pool and sentence template the template
// enhancer draws from. Category order is significant for classification.
type Vocabulary struct {
	Categories   []Category `yaml:"categories"`
	General      []string   `yaml:"general"`
	Styles       []string   `yaml:"styles"`
	Moods        []string   `yaml:"moods"`
	Environments []string   `yaml:"environments"`
	Lenses       []string   `yaml:"lenses"`
	Sentences    []string   `yaml:"sentences"`

	sentences []*template.Template
}

// SentenceData is passed to every sentence template.
type SentenceData struct {
	Subject     string
	Category    string
	Adjectives  string
	Style       string
	Mood        string
	Environment string
	Lens        string
}

// DefaultVocabulary parses the embedded vocabulary.
func DefaultVocabulary() (*Vocabulary, error) {
	return ParseVocabulary(defaultVocabularyYAML)
}

// LoadVocabulary reads a vocabulary file, or the embedded default when path is empty.
func LoadVocabulary(path string) (*Vocabulary, error) {
	if path == "" {
		return DefaultVocabulary()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary decodes and validates a YAML vocabulary document.
func ParseVocabulary(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode vocabulary: %w", err)
	}
	if err := v.validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

func (v *Vocabulary) validate() error {
	if len(v.Categories) == 0 {
		return errors.New("vocabulary: at least one category is required")
	}
	seen := make(map[string]bool, len(v.Categories))
	for i, c := range v.Categories {
		name := strings.TrimSpace(c.Name)
		switch {
		case name == "":
			return fmt.Errorf("vocabulary: category %d has no name", i)
		case !categoryNamePattern.MatchString(name):
			return fmt.Errorf("vocabulary: category name %q must be lowercase letters, digits and hyphens", name)
		case name == CategoryGeneral:
			return fmt.Errorf("vocabulary: %q is reserved for the fallback pool", CategoryGeneral)
		case seen[name]:
			return fmt.Errorf("vocabulary: duplicate category %q", name)
		case len(c.Keywords) == 0:
			return fmt.Errorf("vocabulary: category %q has no keywords", name)
		case len(c.Adjectives) == 0:
			return fmt.Errorf("vocabulary: category %q has no adjectives", name)
		}
		seen[name] = true
		v.Categories[i].Name = name
	}

	pools := []struct {
		name  string
		words []string
	}{
		{"general", v.General},
		{"styles", v.Styles},
		{"moods", v.Moods},
		{"environments", v.Environments},
		{"lenses", v.Lenses},
		{"sentences", v.Sentences},
	}
	for _, p := range pools {
		if len(p.words) == 0 {
			return fmt.Errorf("vocabulary: %s must not be empty", p.name)
		}
	}

	v.sentences = make([]*template.Template, 0, len(v.Sentences))
	for i, src := range v.Sentences {
		t, err := template.New(fmt.Sprintf("sentence-%d", i)).Option("missingkey=error").Parse(src)
		if err != nil {
			return fmt.Errorf("vocabulary: sentence %d: %w", i, err)
		}
		v.sentences = append(v.sentences, t)
	}
	return nil
}

// Classify returns the first category, in declaration order, that has a
// keyword contained in prompt (case-insensitive), or CategoryGeneral.
//
// Matching is by substring, so "carpet" matches the keyword "car".
func (v *Vocabulary) Classify(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, c := range v.Categories {
		for _, kw := range c.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return c.Name
			}
		}
	}
	return CategoryGeneral
}

// CategoryNames lists the categories in declaration order followed by
// CategoryGeneral.
func (v *Vocabulary) CategoryNames() []string {
	names := make([]string, 0, len(v.Categories)+1)
	for _, c := range v.Categories {
		names = append(names, c.Name)
	}
	return append(names, CategoryGeneral)
}

// Adjectives returns the adjective pool for a category.
func (v *Vocabulary) Adjectives(category string) []string {
	for _, c := range v.Categories {
		if c.Name == category {
			return c.Adjectives
		}
	}
	return v.General
}
