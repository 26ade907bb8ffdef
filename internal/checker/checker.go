// Package checker enforces the bijection between the taxonomy
// registry and the generator registry: every taxonomy key must have a
// generator arm and vice versa, and every generated sample must
// itself validate against its own definition's schema fragment.
package checker

import (
	"sort"

	"github.com/google/uuid"

	"github.com/finetype/finetype/internal/generator"
	"github.com/finetype/finetype/internal/taxonomy"
	"github.com/finetype/finetype/internal/validator"
)

// FailureKind distinguishes why one taxonomy key failed the check.
type FailureKind string

const (
	// KindMissingGenerator: the key exists in the taxonomy but no
	// generator.init() ever registered an arm for it.
	KindMissingGenerator FailureKind = "missing_generator"
	// KindOrphanGenerator: an arm is registered for a key absent from
	// the loaded taxonomy.
	KindOrphanGenerator FailureKind = "orphan_generator"
	// KindSampleInvalid: the generator arm ran, but its own output
	// fails the definition's validation fragment.
	KindSampleInvalid FailureKind = "sample_invalid"
)

// Failure is one bijection or sample-validity defect.
type Failure struct {
	Key    string
	Kind   FailureKind
	Domain string
	Detail string
}

// Report is the complete result of one Check run.
type Report struct {
	RunID     string
	TotalKeys int
	Failures  []Failure
}

// OK reports whether the taxonomy and generator registries are fully
// consistent.
func (r Report) OK() bool { return len(r.Failures) == 0 }

// ByDomain groups failures by their domain segment.
func (r Report) ByDomain() map[string][]Failure {
	out := make(map[string][]Failure)
	for _, f := range r.Failures {
		out[f.Domain] = append(out[f.Domain], f)
	}
	return out
}

// AtPriority filters failures to keys whose taxonomy definition has
// release_priority >= min.
func (r Report) AtPriority(tax *taxonomy.Taxonomy, min int) []Failure {
	var out []Failure
	for _, f := range r.Failures {
		def, ok := tax.Get(f.Key)
		if !ok {
			continue
		}
		if def.ReleasePriority >= min {
			out = append(out, f)
		}
	}
	return out
}

// FailuresOfKind returns every failure of the given kind.
func (r Report) FailuresOfKind(kind FailureKind) []Failure {
	var out []Failure
	for _, f := range r.Failures {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

// samplesPerKey bounds how many samples Check generates per key when
// checking sample validity against schema.
const samplesPerKey = 5

// Check verifies the bijection between tax.Labels() and
// generator.Keys(), then generates samplesPerKey samples per key that
// has both a definition and an arm, validating each against its own
// schema fragment.
func Check(tax *taxonomy.Taxonomy) Report {
	taxKeys := make(map[string]bool)
	for _, k := range tax.Labels() {
		taxKeys[k] = true
	}
	genKeys := make(map[string]bool)
	for _, k := range generator.Keys() {
		genKeys[k] = true
	}

	var failures []Failure

	for key := range taxKeys {
		if !genKeys[key] {
			failures = append(failures, Failure{
				Key: key, Kind: KindMissingGenerator, Domain: domainOf(key),
				Detail: "taxonomy defines this key but no generator arm is registered for it",
			})
		}
	}
	for key := range genKeys {
		if !taxKeys[key] {
			failures = append(failures, Failure{
				Key: key, Kind: KindOrphanGenerator, Domain: domainOf(key),
				Detail: "a generator arm is registered for this key but it is absent from the taxonomy",
			})
		}
	}

	gen := generator.New(tax)
	for key := range taxKeys {
		if !genKeys[key] {
			continue
		}
		def, _ := tax.Get(key)
		if def == nil || def.Validation == nil {
			continue
		}
		samples, err := gen.Generate(key, samplesPerKey)
		if err != nil {
			failures = append(failures, Failure{
				Key: key, Kind: KindSampleInvalid, Domain: domainOf(key),
				Detail: "generation failed: " + err.Error(),
			})
			continue
		}
		for _, s := range samples {
			if violations := validator.Validate(s.Text, def.Validation); len(violations) > 0 {
				failures = append(failures, Failure{
					Key: key, Kind: KindSampleInvalid, Domain: domainOf(key),
					Detail: "generated sample " + s.Text + " fails its own schema",
				})
				break
			}
		}
	}

	sort.Slice(failures, func(i, j int) bool {
		if failures[i].Key != failures[j].Key {
			return failures[i].Key < failures[j].Key
		}
		return failures[i].Kind < failures[j].Kind
	})

	return Report{RunID: uuid.New().String(), TotalKeys: len(taxKeys), Failures: failures}
}

func domainOf(key string) string {
	for i, c := range key {
		if c == '.' {
			return key[:i]
		}
	}
	return key
}
