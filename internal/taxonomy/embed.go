package taxonomy

import (
	"embed"
	"sort"

	"github.com/finetype/finetype/internal/errors"
)

//go:embed data/*.yaml
var embeddedDefinitions embed.FS

// LoadEmbedded builds a Taxonomy from the definitions bundled into the
// binary at build time, for use when the caller supplies no
// --taxonomy path. This is the zero-config default; a filesystem path
// given via Load always takes precedence.
func LoadEmbedded() (*Taxonomy, error) {
	entries, err := embeddedDefinitions.ReadDir("data")
	if err != nil {
		return nil, errors.At(errors.KindIo, "data", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	merged := make(map[string]*Definition)
	for _, name := range names {
		content, err := embeddedDefinitions.ReadFile("data/" + name)
		if err != nil {
			return nil, errors.At(errors.KindIo, name, err)
		}
		tax, err := FromYAML(name, content)
		if err != nil {
			return nil, err
		}
		for _, key := range tax.labels {
			if _, exists := merged[key]; exists {
				return nil, errors.Atf(errors.KindIntegrity, key, "duplicate definition key across embedded taxonomy documents")
			}
			merged[key] = tax.definitions[key]
		}
	}

	return build(merged)
}
