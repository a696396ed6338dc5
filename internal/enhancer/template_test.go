package enhancer

import (
	"context"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) func() Rand {
	return func() Rand { return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

func newTestTemplate(t *testing.T, opts ...TemplateOption) *Template {
	t.Helper()
	vocab, err := DefaultVocabulary()
	require.NoError(t, err)
	return NewTemplate(vocab, append([]TemplateOption{WithRandSource(seeded(42))}, opts...)...)
}

func TestNormalizeSeed(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{"a cat", "A cat", nil},
		{"  lone wolf  ", "Lone wolf", nil},
		{"Already", "Already", nil},
		{"élan vital", "Élan vital", nil},
		{"42 robots", "42 robots", nil},
		{"", "", ErrEmptySeed},
		{" \t\n ", "", ErrEmptySeed},
	}
	for _, tt := range tests {
		got, err := NormalizeSeed(tt.in)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestClassify(t *testing.T) {
	tpl := newTestTemplate(t)
	tests := []struct {
		seed string
		want string
	}{
		{"a lone mage in a ruined castle", "character"},
		{"A misty MOUNTAIN pass", "landscape"},
		{"a rusted spaceship", "object"},
		{"a tiger at dawn", "animal"},
		{"a dragon over the sea", "character"}, // character is declared before animal
		{"a persian carpet", "object"},         // "carpet" contains "car"
		{"an abstract feeling", CategoryGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tpl.Classify(tt.seed), tt.seed)
	}
}

func TestClassify_Stable(t *testing.T) {
	tpl := newTestTemplate(t, WithRandSource(NewRand))
	for _, seed := range []string{"a cat on a roof", "skyline at night", "nothing in particular"} {
		first := tpl.Classify(seed)
		for i := 0; i < 20; i++ {
			res, err := tpl.Generate(seed)
			require.NoError(t, err)
			assert.Equal(t, first, res.Category)
			assert.Equal(t, first, tpl.Classify(seed))
		}
	}
}

func TestGenerate_ContainsCapitalizedSeed(t *testing.T) {
	tpl := newTestTemplate(t)
	res, err := tpl.Generate("a lone mage in a ruined castle")
	require.NoError(t, err)

	assert.Equal(t, "character", res.Category)
	assert.Contains(t, res.Text, "A lone mage in a ruined castle is ")
	assert.NotContains(t, res.Text, "  ")
	assert.Len(t, res.Adjectives, DefaultAdjectiveCount)
	for _, adj := range res.Adjectives {
		assert.Contains(t, tpl.Vocabulary().Adjectives("character"), adj)
	}
	assert.Contains(t, tpl.Vocabulary().Styles, res.Style)
	assert.Contains(t, tpl.Vocabulary().Moods, res.Mood)
	assert.Contains(t, tpl.Vocabulary().Environments, res.Environment)
	assert.Contains(t, tpl.Vocabulary().Lenses, res.Lens)
	assert.Contains(t, res.Text, res.Environment)
	assert.Contains(t, res.Text, res.Style)
}

func TestGenerate_AllSentencesPresent(t *testing.T) {
	tpl := newTestTemplate(t)
	res, err := tpl.Generate("a village by the river")
	require.NoError(t, err)

	for _, fixed := range []string{
		"The composition emphasizes depth, texture, and intricate details",
		"Every element in the scene contributes to storytelling",
		"Perfect for high-quality AI-generated artwork",
		"Rendered in ",
	} {
		assert.Equal(t, 1, strings.Count(res.Text, fixed), fixed)
	}
}

func TestGenerate_AdjectivesDistinct(t *testing.T) {
	tpl := newTestTemplate(t, WithRandSource(NewRand))
	for i := 0; i < 50; i++ {
		res, err := tpl.Generate("a wolf")
		require.NoError(t, err)
		seen := map[string]bool{}
		for _, a := range res.Adjectives {
			assert.False(t, seen[a], "duplicate adjective %q", a)
			seen[a] = true
		}
	}
}

func TestGenerate_AdjectiveCountClampedToPool(t *testing.T) {
	tpl := newTestTemplate(t, WithAdjectiveCount(100))
	res, err := tpl.Generate("something vague")
	require.NoError(t, err)
	assert.Len(t, res.Adjectives, len(tpl.Vocabulary().General))
}

func TestGenerate_DoesNotMutatePools(t *testing.T) {
	tpl := newTestTemplate(t)
	before := append([]string(nil), tpl.Vocabulary().Adjectives("animal")...)
	_, err := tpl.Generate("a horse")
	require.NoError(t, err)
	assert.Equal(t, before, tpl.Vocabulary().Adjectives("animal"))
}

func TestGenerate_Reproducible(t *testing.T) {
	a, err := newTestTemplate(t).Generate("a cat on a roof")
	require.NoError(t, err)
	b, err := newTestTemplate(t).Generate("a cat on a roof")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEnhance_EmptySeed(t *testing.T) {
	tpl := newTestTemplate(t)
	_, err := tpl.Enhance(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptySeed)
}

func TestParseVocabulary_Invalid(t *testing.T) {
	base := func(mut string) string {
		return `
categories:
  - name: thing
    keywords: [box]
    adjectives: [square]
general: [plain]
styles: [sketch]
moods: [calm]
environments: [indoors]
lenses: [close-up]
sentences: ["{{.Subject}} is {{.Adjectives}}."]
` + mut
	}

	_, err := ParseVocabulary([]byte(base("")))
	require.NoError(t, err)

	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "categories: [\n"},
		{"no categories", "general: [x]"},
		{"reserved name", strings.Replace(base(""), "name: thing", "name: general", 1)},
		{"bad name", strings.Replace(base(""), "name: thing", "name: Big Thing", 1)},
		{"no keywords", strings.Replace(base(""), "keywords: [box]", "keywords: []", 1)},
		{"empty lenses", strings.Replace(base(""), "lenses: [close-up]", "lenses: []", 1)},
		{"bad sentence", strings.Replace(base(""), `"{{.Subject}} is {{.Adjectives}}."`, `"{{.Subject"`, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVocabulary([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadVocabulary_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	doc := `
categories:
  - name: vehicle
    keywords: [truck]
    adjectives: [rugged]
general: [plain]
styles: [sketch]
moods: [calm]
environments: [on a highway]
lenses: [wide shot]
sentences: ["{{.Subject}}, {{.Adjectives}} {{.Category}} {{.Environment}}."]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	vocab, err := LoadVocabulary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"vehicle", CategoryGeneral}, vocab.CategoryNames())

	res, err := NewTemplate(vocab).Generate("big truck")
	require.NoError(t, err)
	assert.Equal(t, "Big truck, rugged vehicle on a highway.", res.Text)

	_, err = LoadVocabulary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
