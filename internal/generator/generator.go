// Package generator produces synthetic, per-type labeled samples with
// checksum-correct and locale-aware values. Every generator arm
// corresponds 1:1 with a taxonomy key; internal/checker enforces the
// bijection at check time.
package generator

import (
	"math/rand"
	"sort"

	"github.com/finetype/finetype/internal/errors"
	"github.com/finetype/finetype/internal/taxonomy"
)

// Sample is a produced (text, label) pair. Immutable once returned.
type Sample struct {
	Text  string
	Label string
}

// arm produces one sample for a key, given a locale ("" for universal
// types). It is a pure function of the RNG and locale.
type arm func(g *Generator, locale string) string

// registry maps every known generator key to its arm. Registered by
// each domain file's init(), mirroring the taxonomy's own key space so
// the Checker can compare the two sets directly (see internal/checker).
var registry = map[string]arm{}

func register(key string, fn arm) {
	if _, exists := registry[key]; exists {
		panic("generator: duplicate registration for " + key)
	}
	registry[key] = fn
}

// Keys returns the sorted set of keys with a registered generator arm.
func Keys() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// HasArm reports whether key has a registered generator.
func HasArm(key string) bool {
	_, ok := registry[key]
	return ok
}

// Generator owns a seeded pseudo-random source and produces samples.
// It is not safe for concurrent use; callers needing concurrency must
// construct one Generator per goroutine (see spec's concurrency model).
type Generator struct {
	taxonomy *taxonomy.Taxonomy
	rng      *rand.Rand
}

// New constructs a non-deterministic generator, seeded from the
// global math/rand source. Use NewSeeded for reproducible output.
func New(tax *taxonomy.Taxonomy) *Generator {
	return &Generator{taxonomy: tax, rng: rand.New(rand.NewSource(rand.Int63()))}
}

// NewSeeded constructs a generator with a fixed seed; identical seeds
// produce identical output sequences.
func NewSeeded(tax *taxonomy.Taxonomy, seed int64) *Generator {
	return &Generator{taxonomy: tax, rng: rand.New(rand.NewSource(seed))}
}

// Generate produces count 3-level-labeled samples for key.
func (g *Generator) Generate(key string, count int) ([]Sample, error) {
	fn, ok := registry[key]
	if !ok {
		return nil, errors.Atf(errors.KindIntegrity, key, "no generator arm registered for this key")
	}
	out := make([]Sample, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, Sample{Text: fn(g, ""), Label: key})
	}
	return out, nil
}

// GenerateLocalized produces count 4-level-labeled samples for key
// under the given locale.
func (g *Generator) GenerateLocalized(key, locale string, count int) ([]Sample, error) {
	fn, ok := registry[key]
	if !ok {
		return nil, errors.Atf(errors.KindIntegrity, key, "no generator arm registered for this key")
	}
	label, _ := taxonomy.ParseLabel(key)
	out := make([]Sample, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, Sample{Text: fn(g, locale), Label: label.WithLocale(locale)})
	}
	return out, nil
}

// GenerateAll produces countPerLabel samples for every taxonomy
// definition at or above priorityFloor, 3-level labeled.
func (g *Generator) GenerateAll(priorityFloor, countPerLabel int) ([]Sample, error) {
	var out []Sample
	for _, kd := range g.taxonomy.ByPriority(priorityFloor) {
		samples, err := g.Generate(kd.Key, countPerLabel)
		if err != nil {
			return nil, err
		}
		out = append(out, samples...)
	}
	return out, nil
}

// GenerateAllLocalized produces the full Cartesian expansion: locale_specific
// types generate once per declared locale, everything else generates once
// under the UNIVERSAL locale, all 4-level labeled.
func (g *Generator) GenerateAllLocalized(priorityFloor, countPerLabel int) ([]Sample, error) {
	var out []Sample
	for _, kd := range g.taxonomy.ByPriority(priorityFloor) {
		if kd.Definition.Designation == taxonomy.DesignationLocaleSpecific && len(kd.Definition.Locales) > 0 {
			for _, loc := range kd.Definition.Locales {
				samples, err := g.GenerateLocalized(kd.Key, loc, countPerLabel)
				if err != nil {
					return nil, err
				}
				out = append(out, samples...)
			}
		} else {
			samples, err := g.GenerateLocalized(kd.Key, taxonomy.LocaleUniversal, countPerLabel)
			if err != nil {
				return nil, err
			}
			out = append(out, samples...)
		}
	}
	return out, nil
}

// --- shared low-level helpers used across domain files ---

func (g *Generator) digits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + g.rng.Intn(10))
	}
	return string(b)
}

func (g *Generator) digitsNonZeroFirst(n int) string {
	b := make([]byte, n)
	b[0] = byte('1' + g.rng.Intn(9))
	for i := 1; i < n; i++ {
		b[i] = byte('0' + g.rng.Intn(10))
	}
	return string(b)
}

func (g *Generator) letters(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('A' + g.rng.Intn(26))
	}
	return string(b)
}

func (g *Generator) alnum(n int) string {
	const set = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = set[g.rng.Intn(len(set))]
	}
	return string(b)
}

func (g *Generator) choice(options []string) string {
	return options[g.rng.Intn(len(options))]
}

func (g *Generator) hexString(charCount int) string {
	const hex = "0123456789abcdef"
	b := make([]byte, charCount)
	for i := range b {
		b[i] = hex[g.rng.Intn(len(hex))]
	}
	return string(b)
}
