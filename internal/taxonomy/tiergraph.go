package taxonomy

import "sort"

// TierGraph is the three-level inference hierarchy derived from each
// definition's `tier: [broad_type, category]` field: broad types at
// the root, categories at level 1, concrete types (full labels) as
// leaves at level 2.
type TierGraph struct {
	broadTypes []string
	categories map[string][]string
	types      map[tierPath][]string
	labelPath  map[string]tierPath
}

type tierPath struct {
	broadType string
	category  string
}

func buildTierGraph(t *Taxonomy) *TierGraph {
	categories := make(map[string][]string)
	types := make(map[tierPath][]string)
	labelPath := make(map[string]tierPath)

	for _, kd := range t.Definitions() {
		if len(kd.Definition.Tier) < 2 {
			continue
		}
		broadType := kd.Definition.Tier[0]
		category := kd.Definition.Tier[1]
		path := tierPath{broadType, category}

		categories[broadType] = append(categories[broadType], category)
		types[path] = append(types[path], kd.Key)
		labelPath[kd.Key] = path
	}

	for bt, cats := range categories {
		categories[bt] = dedupSorted(cats)
	}
	for path, labels := range types {
		sort.Strings(labels)
		types[path] = labels
	}

	broadTypes := make([]string, 0, len(categories))
	for bt := range categories {
		broadTypes = append(broadTypes, bt)
	}
	sort.Strings(broadTypes)

	return &TierGraph{
		broadTypes: broadTypes,
		categories: categories,
		types:      types,
		labelPath:  labelPath,
	}
}

func dedupSorted(xs []string) []string {
	sort.Strings(xs)
	out := xs[:0]
	var last string
	first := true
	for _, x := range xs {
		if first || x != last {
			out = append(out, x)
			last = x
			first = false
		}
	}
	return out
}

// BroadTypes returns the sorted Tier-0 classes.
func (g *TierGraph) BroadTypes() []string { return g.broadTypes }

// CategoriesFor returns the sorted Tier-1 classes for a broad type.
func (g *TierGraph) CategoriesFor(broadType string) []string {
	return g.categories[broadType]
}

// TypesFor returns the sorted Tier-2 classes (full labels) for a
// (broad_type, category) pair.
func (g *TierGraph) TypesFor(broadType, category string) []string {
	return g.types[tierPath{broadType, category}]
}

// TierPath returns the (broad_type, category) for a full label.
func (g *TierGraph) TierPath(label string) (broadType, category string, ok bool) {
	path, ok := g.labelPath[label]
	return path.broadType, path.category, ok
}

// BroadTypeFor returns the Tier-0 label for a full label.
func (g *TierGraph) BroadTypeFor(label string) (string, bool) {
	path, ok := g.labelPath[label]
	return path.broadType, ok
}

// CategoryFor returns the Tier-1 label for a full label.
func (g *TierGraph) CategoryFor(label string) (string, bool) {
	path, ok := g.labelPath[label]
	return path.category, ok
}

// NeedsTier2 reports whether a (broad_type, category) pair has more
// than minTypes concrete types, i.e. whether a Tier-2 model would be
// useful. Per the design notes, this implementation only exposes the
// tier graph for diagnostics; it does not compose a tiered classifier.
func (g *TierGraph) NeedsTier2(broadType, category string, minTypes int) bool {
	return len(g.TypesFor(broadType, category)) > minTypes
}

// Tier2Groups returns the sorted (broad_type, category) pairs with
// more than minTypes concrete types.
func (g *TierGraph) Tier2Groups(minTypes int) [][2]string {
	var out [][2]string
	for path, labels := range g.types {
		if len(labels) > minTypes {
			out = append(out, [2]string{path.broadType, path.category})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// DirectResolveGroups returns (broad_type, category) pairs with a
// single concrete type — no Tier-2 model needed since Tier-1 already
// resolves unambiguously, paired with that single label.
func (g *TierGraph) DirectResolveGroups() []DirectResolveGroup {
	var out []DirectResolveGroup
	for path, labels := range g.types {
		if len(labels) == 1 {
			out = append(out, DirectResolveGroup{BroadType: path.broadType, Category: path.category, Label: labels[0]})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BroadType != out[j].BroadType {
			return out[i].BroadType < out[j].BroadType
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// DirectResolveGroup names a (broad_type, category) pair that
// resolves directly to a single concrete type.
type DirectResolveGroup struct {
	BroadType string
	Category  string
	Label     string
}

// Summary returns aggregate statistics about the tier graph's shape.
func (g *TierGraph) Summary() TierGraphSummary {
	return TierGraphSummary{
		Tier0Classes:       len(g.broadTypes),
		Tier1Models:        len(g.broadTypes),
		Tier2ModelsGT5:     len(g.Tier2Groups(5)),
		Tier2ModelsGT1:     len(g.Tier2Groups(1)),
		DirectResolveGroups: len(g.DirectResolveGroups()),
		TotalLabels:        len(g.labelPath),
	}
}

// TierGraphSummary reports aggregate tier graph statistics, used by
// tests asserting taxonomy shape.
type TierGraphSummary struct {
	Tier0Classes        int
	Tier1Models         int
	Tier2ModelsGT5      int
	Tier2ModelsGT1      int
	DirectResolveGroups int
	TotalLabels         int
}
