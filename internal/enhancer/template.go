package enhancer

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/joestump/prompt-architect/internal/metrics"
)

// DefaultAdjectiveCount is how many adjectives are drawn per prompt.
const DefaultAdjectiveCount = 4

// Rand is the randomness the template enhancer needs. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG generator seeded from the runtime's entropy source.
func NewRand() Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Result is a generated prompt together with the choices that produced it.
type Result struct {
	Text        string   `json:"text"`
	Seed        string   `json:"seed"`
	Category    string   `json:"category"`
	Adjectives  []string `json:"adjectives"`
	Style       string   `json:"style"`
	Mood        string   `json:"mood"`
	Environment string   `json:"environment"`
	Lens        string   `json:"lens"`
}

// Template fills fixed sentence templates with randomly drawn vocabulary.
type Template struct {
	vocab          *Vocabulary
	adjectiveCount int
	newRand        func() Rand
}

// TemplateOption configures a Template.
type TemplateOption func(*Template)

// WithRandSource sets the factory called once per Generate for a fresh Rand.
func WithRandSource(fn func() Rand) TemplateOption {
	return func(t *Template) { t.newRand = fn }
}

// WithAdjectiveCount sets how many adjectives are drawn. Values below one are ignored.
func WithAdjectiveCount(n int) TemplateOption {
	return func(t *Template) {
		if n > 0 {
			t.adjectiveCount = n
		}
	}
}

// NewTemplate creates a template enhancer over vocab.
func NewTemplate(vocab *Vocabulary, opts ...TemplateOption) *Template {
	t := &Template{
		vocab:          vocab,
		adjectiveCount: DefaultAdjectiveCount,
		newRand:        NewRand,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Vocabulary returns the vocabulary the enhancer draws from.
func (t *Template) Vocabulary() *Vocabulary { return t.vocab }

// Classify returns the subject category of seed. It is deterministic.
func (t *Template) Classify(seed string) string {
	return t.vocab.Classify(seed)
}

// Enhance implements Enhancer.
func (t *Template) Enhance(_ context.Context, seed string) (string, error) {
	res, err := t.Generate(seed)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Generate builds an enhanced prompt. Adjectives are sampled without
// replacement, min(adjectiveCount, pool size) of them; every other pool
// contributes one element; the rendered sentences are shuffled and joined
// with single spaces.
func (t *Template) Generate(seed string) (Result, error) {
	prompt, err := NormalizeSeed(seed)
	if err != nil {
		return Result{}, err
	}
	r := t.newRand()

	category := t.vocab.Classify(prompt)
	metrics.SubjectCategoryTotal.WithLabelValues(category).Inc()

	res := Result{
		Seed:        prompt,
		Category:    category,
		Adjectives:  sample(r, t.vocab.Adjectives(category), t.adjectiveCount),
		Style:       pick(r, t.vocab.Styles),
		Mood:        pick(r, t.vocab.Moods),
		Environment: pick(r, t.vocab.Environments),
		Lens:        pick(r, t.vocab.Lenses),
	}
	data := SentenceData{
		Subject:     prompt,
		Category:    category,
		Adjectives:  strings.Join(res.Adjectives, ", "),
		Style:       res.Style,
		Mood:        res.Mood,
		Environment: res.Environment,
		Lens:        res.Lens,
	}

	sentences := make([]string, 0, len(t.vocab.sentences))
	var buf bytes.Buffer
	for _, tmpl := range t.vocab.sentences {
		buf.Reset()
		if err := tmpl.Execute(&buf, data); err != nil {
			return Result{}, fmt.Errorf("render %s: %w", tmpl.Name(), err)
		}
		if s := strings.TrimSpace(buf.String()); s != "" {
			sentences = append(sentences, s)
		}
	}
	r.Shuffle(len(sentences), func(i, j int) {
		sentences[i], sentences[j] = sentences[j], sentences[i]
	})

	res.Text = strings.Join(sentences, " ")
	return res, nil
}

// sample returns n distinct elements of pool in random order without
// modifying pool.
func sample(r Rand, pool []string, n int) []string {
	out := make([]string, len(pool))
	copy(out, pool)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if n < len(out) {
		out = out[:n]
	}
	return out
}

func pick(r Rand, pool []string) string {
	return pool[r.IntN(len(pool))]
}
