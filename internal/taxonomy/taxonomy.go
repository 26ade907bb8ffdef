// Package taxonomy loads, validates, and indexes the closed set of
// finetype type definitions: the declarative registry described by
// domain.category.type keys, their transformation contracts, and
// their JSON-Schema-subset validation fragments.
package taxonomy

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/finetype/finetype/internal/errors"
	"github.com/finetype/finetype/internal/logger"

	"gopkg.in/yaml.v3"
)

// Domains is the closed set of recognized domains.
var Domains = map[string]bool{
	"datetime":       true,
	"technology":     true,
	"identity":       true,
	"geography":      true,
	"representation": true,
	"container":      true,
}

// Locales is the closed set of recognized locale tags, exclusive of
// the universal marker.
var Locales = map[string]bool{
	"EN": true, "EN_AU": true, "EN_GB": true, "EN_CA": true, "EN_US": true,
	"DE": true, "FR": true, "ES": true, "IT": true, "NL": true, "PL": true,
	"RU": true, "JA": true, "ZH": true, "KO": true, "AR": true,
}

// LocaleUniversal marks a label with no locale dimension.
const LocaleUniversal = "UNIVERSAL"

// BroadTypes is the closed set of target DuckDB-style broad types.
var BroadTypes = map[string]bool{
	"TIMESTAMP": true, "DATE": true, "TIME": true, "INTERVAL": true,
	"BIGINT": true, "SMALLINT": true, "TINYINT": true, "DOUBLE": true,
	"BOOLEAN": true, "VARCHAR": true, "UUID": true, "INET": true,
	"JSON": true, "GEOMETRY": true, "MONETARY": true,
}

// Extensions is the closed set of named DuckDB extensions that
// transform_ext may reference.
var Extensions = map[string]bool{
	"inet": true, "json": true, "spatial": true, "icu": true,
	"monetary": true, "netquack": true,
}

// Designation classifies the scope and stability of a label.
type Designation string

const (
	DesignationUniversal      Designation = "universal"
	DesignationLocaleSpecific Designation = "locale_specific"
	DesignationBroadNumbers   Designation = "broad_numbers"
	DesignationBroadWords     Designation = "broad_words"
	DesignationBroadCharacters Designation = "broad_characters"
	DesignationBroadObject    Designation = "broad_object"
)

func validDesignation(d Designation) bool {
	switch d {
	case DesignationUniversal, DesignationLocaleSpecific, DesignationBroadNumbers,
		DesignationBroadWords, DesignationBroadCharacters, DesignationBroadObject, "":
		return true
	default:
		return false
	}
}

// Validation is a JSON-Schema-subset validation fragment, restricted
// to the keywords supported by the validator.
type Validation struct {
	Type      string   `yaml:"type,omitempty"`
	Pattern   string   `yaml:"pattern,omitempty"`
	MinLength *int     `yaml:"minLength,omitempty"`
	MaxLength *int     `yaml:"maxLength,omitempty"`
	Minimum   *float64 `yaml:"minimum,omitempty"`
	Maximum   *float64 `yaml:"maximum,omitempty"`
	Enum      []string `yaml:"enum,omitempty"`

	compiled *regexp.Regexp
}

// Compiled returns the cached compiled pattern matcher, or nil if no
// pattern was declared.
func (v *Validation) Compiled() *regexp.Regexp { return v.compiled }

// Definition is a single taxonomy entry, addressed by a 3-level key.
type Definition struct {
	Title           string            `yaml:"title,omitempty"`
	Description     string            `yaml:"description,omitempty"`
	Designation     Designation       `yaml:"designation,omitempty"`
	Locales         []string          `yaml:"locales,omitempty"`
	BroadType       string            `yaml:"broad_type,omitempty"`
	FormatString    string            `yaml:"format_string,omitempty"`
	Transform       string            `yaml:"transform,omitempty"`
	TransformExt    string            `yaml:"transform_ext,omitempty"`
	Decompose       map[string]string `yaml:"decompose,omitempty"`
	Validation      *Validation       `yaml:"validation,omitempty"`
	Tier            []string          `yaml:"tier,omitempty"`
	ReleasePriority int               `yaml:"release_priority,omitempty"`
	Aliases         []string          `yaml:"aliases,omitempty"`
	Samples         []string          `yaml:"samples,omitempty"`
	References      []string          `yaml:"references,omitempty"`
	Notes           string            `yaml:"notes,omitempty"`
}

// Taxonomy is the complete, loaded, and validated set of definitions.
// It is read-only once constructed and safe to share across goroutines.
type Taxonomy struct {
	definitions map[string]*Definition
	labels      []string // sorted 3-level keys
}

// Load reads taxonomy documents from path, which may name a single
// YAML file or a directory of definitions_*.yaml files. Any Io, Parse,
// or Schema failure is fatal per the error propagation policy.
func Load(path string) (*Taxonomy, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.At(errors.KindIo, path, err)
	}
	if info.IsDir() {
		return LoadDirectory(path)
	}
	return LoadFile(path)
}

// LoadFile loads a single YAML document.
func LoadFile(path string) (*Taxonomy, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.At(errors.KindIo, path, err)
	}
	return FromYAML(path, content)
}

// LoadDirectory loads every definitions_*.yaml document in dir,
// merging them into a single taxonomy. Duplicate keys across
// documents are a fatal Integrity error.
func LoadDirectory(dir string) (*Taxonomy, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "definitions_*.yaml"))
	if err != nil {
		return nil, errors.At(errors.KindIo, dir, err)
	}
	if len(matches) == 0 {
		return nil, errors.Atf(errors.KindIo, dir, "no definitions_*.yaml files found")
	}
	sort.Strings(matches)

	merged := make(map[string]*Definition)
	for _, path := range matches {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.At(errors.KindIo, path, err)
		}
		var raw map[string]*Definition
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, errors.At(errors.KindParse, path, err)
		}
		for key, def := range raw {
			if _, exists := merged[key]; exists {
				return nil, errors.Atf(errors.KindIntegrity, key, "duplicate definition key across taxonomy documents")
			}
			merged[key] = def
		}
	}

	return build(merged)
}

// FromYAML parses a single YAML document's bytes. location is used
// only for error reporting.
func FromYAML(location string, content []byte) (*Taxonomy, error) {
	var raw map[string]*Definition
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.At(errors.KindParse, location, err)
	}
	return build(raw)
}

func build(raw map[string]*Definition) (*Taxonomy, error) {
	labels := make([]string, 0, len(raw))
	for key, def := range raw {
		if err := validateDefinition(key, def); err != nil {
			return nil, err
		}
		labels = append(labels, key)
	}
	sort.Strings(labels)

	logger.Logger.Debugw("taxonomy loaded", logger.FieldCount, len(labels))

	return &Taxonomy{definitions: raw, labels: labels}, nil
}

func validateDefinition(key string, def *Definition) error {
	parts := strings.Split(key, ".")
	if len(parts) != 3 {
		return errors.Atf(errors.KindSchema, key, "definition key must have exactly 3 segments (domain.category.type)")
	}
	domain := parts[0]
	if !Domains[domain] {
		return errors.Atf(errors.KindSchema, key, "unknown domain %q", domain)
	}
	if !validDesignation(def.Designation) {
		return errors.Atf(errors.KindSchema, key, "unknown designation %q", def.Designation)
	}
	for _, loc := range def.Locales {
		if loc != LocaleUniversal && !Locales[loc] {
			return errors.Atf(errors.KindSchema, key, "unknown locale %q", loc)
		}
	}
	if def.BroadType != "" && !BroadTypes[def.BroadType] {
		return errors.Atf(errors.KindSchema, key, "unknown broad_type %q", def.BroadType)
	}
	if def.TransformExt != "" && !Extensions[def.TransformExt] {
		return errors.Atf(errors.KindSchema, key, "unknown transform_ext %q", def.TransformExt)
	}
	if def.Transform != "" && strings.Contains(def.Transform, "{col}") {
		if strings.Count(def.Transform, "{") != strings.Count(def.Transform, "}") {
			return errors.Atf(errors.KindSchema, key, "transform has unbalanced braces: %q", def.Transform)
		}
	}
	if len(def.Tier) > 0 && !BroadTypes[def.Tier[0]] {
		return errors.Atf(errors.KindSchema, key, "tier[0] %q is not a known broad type", def.Tier[0])
	}
	if def.Validation != nil {
		if def.Validation.Pattern != "" {
			compiled, err := regexp.Compile(def.Validation.Pattern)
			if err != nil {
				return errors.Atf(errors.KindSchema, key, "invalid regex %q: %v", def.Validation.Pattern, err)
			}
			def.Validation.compiled = compiled
		}
		for _, s := range def.Samples {
			if vr := validateSampleAgainstSchema(s, def.Validation); !vr {
				return errors.Atf(errors.KindIntegrity, key, "sample %q does not validate against its own schema", s)
			}
		}
	}
	return nil
}

// validateSampleAgainstSchema is a minimal structural check used only
// at load time to catch authoring mistakes in declared samples; the
// full validator (internal/validator) implements the same keyword set
// for runtime use.
func validateSampleAgainstSchema(sample string, v *Validation) bool {
	if v.compiled != nil && !v.compiled.MatchString(sample) {
		return false
	}
	if v.MinLength != nil && len(sample) < *v.MinLength {
		return false
	}
	if v.MaxLength != nil && len(sample) > *v.MaxLength {
		return false
	}
	return true
}

// Get returns the definition for an exact 3-level key.
func (t *Taxonomy) Get(key string) (*Definition, bool) {
	def, ok := t.definitions[key]
	return def, ok
}

// GetLocalized parses a 4-level label, resolves its 3-level
// definition, and verifies the locale is declared on it.
func (t *Taxonomy) GetLocalized(labelWithLocale string) (*Definition, error) {
	label, ok := ParseLabel(labelWithLocale)
	if !ok || label.Locale == "" {
		return nil, errors.Atf(errors.KindSchema, labelWithLocale, "not a 4-level locale-qualified label")
	}
	def, ok := t.Get(label.Key())
	if !ok {
		return nil, errors.Atf(errors.KindIntegrity, labelWithLocale, "unknown label key %q", label.Key())
	}
	if label.Locale != LocaleUniversal {
		found := false
		for _, l := range def.Locales {
			if l == label.Locale {
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Atf(errors.KindSchema, labelWithLocale, "locale %q not declared for %q", label.Locale, label.Key())
		}
	}
	return def, nil
}

// Labels returns the sorted 3-level keys.
func (t *Taxonomy) Labels() []string { return t.labels }

// Len returns the number of definitions.
func (t *Taxonomy) Len() int { return len(t.definitions) }

// Definitions returns every (key, definition) pair in sorted key order.
func (t *Taxonomy) Definitions() []KeyedDefinition {
	out := make([]KeyedDefinition, 0, len(t.labels))
	for _, key := range t.labels {
		out = append(out, KeyedDefinition{Key: key, Definition: t.definitions[key]})
	}
	return out
}

// KeyedDefinition pairs a key with its definition for ordered iteration.
type KeyedDefinition struct {
	Key        string
	Definition *Definition
}

// ByDomain returns definitions whose key starts with domain+".".
func (t *Taxonomy) ByDomain(domain string) []KeyedDefinition {
	prefix := domain + "."
	var out []KeyedDefinition
	for _, key := range t.labels {
		if strings.HasPrefix(key, prefix) {
			out = append(out, KeyedDefinition{Key: key, Definition: t.definitions[key]})
		}
	}
	return out
}

// ByTier returns definitions whose tier field matches (broadType, category).
func (t *Taxonomy) ByTier(broadType, category string) []KeyedDefinition {
	var out []KeyedDefinition
	for _, key := range t.labels {
		def := t.definitions[key]
		if len(def.Tier) >= 2 && def.Tier[0] == broadType && def.Tier[1] == category {
			out = append(out, KeyedDefinition{Key: key, Definition: def})
		}
	}
	return out
}

// ByPriority returns definitions with release_priority >= min.
func (t *Taxonomy) ByPriority(min int) []KeyedDefinition {
	var out []KeyedDefinition
	for _, key := range t.labels {
		def := t.definitions[key]
		if def.ReleasePriority >= min {
			out = append(out, KeyedDefinition{Key: key, Definition: def})
		}
	}
	return out
}

// DomainsPresent returns the sorted, deduplicated set of domains present.
func (t *Taxonomy) DomainsPresent() []string {
	seen := map[string]bool{}
	for _, key := range t.labels {
		seen[strings.SplitN(key, ".", 2)[0]] = true
	}
	out := make([]string, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Categories returns the sorted, deduplicated categories within domain.
func (t *Taxonomy) Categories(domain string) []string {
	prefix := domain + "."
	seen := map[string]bool{}
	for _, key := range t.labels {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		parts := strings.SplitN(key, ".", 3)
		if len(parts) >= 2 {
			seen[parts[1]] = true
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// LabelToIndex builds a label-to-class-index mapping in sorted key order.
func (t *Taxonomy) LabelToIndex() map[string]int {
	out := make(map[string]int, len(t.labels))
	for i, l := range t.labels {
		out[l] = i
	}
	return out
}

// IndexToLabel builds the inverse of LabelToIndex.
func (t *Taxonomy) IndexToLabel() map[int]string {
	out := make(map[int]string, len(t.labels))
	for i, l := range t.labels {
		out[i] = l
	}
	return out
}

// ExpandLocales produces the full Cartesian expansion of 4-level
// locale-qualified labels for every definition at or above
// priorityFloor: locale_specific types expand over their declared
// locales, everything else gets the single ".UNIVERSAL" suffix.
func (t *Taxonomy) ExpandLocales(priorityFloor int) []string {
	var out []string
	for _, kd := range t.ByPriority(priorityFloor) {
		label, _ := ParseLabel(kd.Key)
		if kd.Definition.Designation == DesignationLocaleSpecific && len(kd.Definition.Locales) > 0 {
			for _, loc := range kd.Definition.Locales {
				out = append(out, label.WithLocale(loc))
			}
		} else {
			out = append(out, label.WithLocale(LocaleUniversal))
		}
	}
	sort.Strings(out)
	return out
}

// TierGraph materializes the Tier-0/Tier-1/Tier-2 inference tree.
func (t *Taxonomy) TierGraph() *TierGraph {
	return buildTierGraph(t)
}
