package taxonomy_test

import (
	"testing"

	"github.com/finetype/finetype/internal/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
datetime.timestamp.iso_8601:
  title: "ISO 8601"
  description: "Standard international datetime format"
  designation: universal
  locales: [UNIVERSAL]
  broad_type: TIMESTAMP
  format_string: "%Y-%m-%dT%H:%M:%SZ"
  transform: "strptime({col}, '%Y-%m-%dT%H:%M:%SZ')"
  validation:
    type: string
    pattern: "^\\d{4}-\\d{2}-\\d{2}T\\d{2}:\\d{2}:\\d{2}Z$"
    minLength: 20
    maxLength: 20
  tier: [TIMESTAMP, timestamp]
  release_priority: 5
  aliases: [big_endian]
  samples:
    - "2024-01-15T10:30:00Z"
`

func TestParseYAML(t *testing.T) {
	tax, err := taxonomy.FromYAML("sample", []byte(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, 1, tax.Len())
	assert.Equal(t, []string{"datetime.timestamp.iso_8601"}, tax.Labels())
}

func TestLabelParse(t *testing.T) {
	label, ok := taxonomy.ParseLabel("datetime.timestamp.iso_8601")
	require.True(t, ok)
	assert.Equal(t, "datetime", label.Domain)
	assert.Equal(t, "timestamp", label.Category)
	assert.Equal(t, "iso_8601", label.Type)
	assert.Equal(t, "datetime.timestamp.iso_8601", label.Key())
}

func TestLabelWithLocale(t *testing.T) {
	label, ok := taxonomy.ParseLabel("datetime.date.abbreviated_month")
	require.True(t, ok)
	assert.Equal(t, "datetime.date.abbreviated_month.FR", label.WithLocale("FR"))
}

func TestGetDefinition(t *testing.T) {
	tax, err := taxonomy.FromYAML("sample", []byte(sampleYAML))
	require.NoError(t, err)
	def, ok := tax.Get("datetime.timestamp.iso_8601")
	require.True(t, ok)
	assert.Equal(t, "ISO 8601", def.Title)
	assert.Equal(t, "TIMESTAMP", def.BroadType)
	assert.Equal(t, 5, def.ReleasePriority)
}

func TestDomainsAndCategories(t *testing.T) {
	tax, err := taxonomy.FromYAML("sample", []byte(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"datetime"}, tax.DomainsPresent())
	assert.Equal(t, []string{"timestamp"}, tax.Categories("datetime"))
}

func TestAtPriority(t *testing.T) {
	tax, err := taxonomy.FromYAML("sample", []byte(sampleYAML))
	require.NoError(t, err)
	assert.Len(t, tax.ByPriority(5), 1)
	assert.Len(t, tax.ByPriority(6), 0)
}

const tieredYAML = `
datetime.timestamp.iso_8601:
  title: "ISO 8601"
  designation: universal
  locales: [UNIVERSAL]
  broad_type: TIMESTAMP
  validation:
    type: string
  tier: [TIMESTAMP, timestamp]
  release_priority: 5
  samples: ["2024-01-15T10:30:00Z"]

datetime.timestamp.rfc_2822:
  title: "RFC 2822"
  designation: universal
  locales: [UNIVERSAL]
  broad_type: TIMESTAMP
  validation:
    type: string
  tier: [TIMESTAMP, timestamp]
  release_priority: 5
  samples: ["Mon, 15 Jan 2024 10:30:00 +0000"]

datetime.date.us_slash:
  title: "US Slash Date"
  designation: universal
  locales: [UNIVERSAL]
  broad_type: DATE
  validation:
    type: string
  tier: [DATE, date]
  release_priority: 5
  samples: ["01/15/2024"]

technology.internet.ip_v4:
  title: "IPv4"
  designation: universal
  locales: [UNIVERSAL]
  broad_type: INET
  validation:
    type: string
  tier: [INET, internet]
  release_priority: 5
  samples: ["192.168.1.1"]

technology.internet.ip_v6:
  title: "IPv6"
  designation: universal
  locales: [UNIVERSAL]
  broad_type: INET
  validation:
    type: string
  tier: [INET, internet]
  release_priority: 5
  samples: ["::1"]
`

func TestTierGraphBroadTypes(t *testing.T) {
	tax, err := taxonomy.FromYAML("sample", []byte(tieredYAML))
	require.NoError(t, err)
	graph := tax.TierGraph()
	assert.Equal(t, []string{"DATE", "INET", "TIMESTAMP"}, graph.BroadTypes())
}

func TestTierGraphCategories(t *testing.T) {
	tax, err := taxonomy.FromYAML("sample", []byte(tieredYAML))
	require.NoError(t, err)
	graph := tax.TierGraph()
	assert.Equal(t, []string{"timestamp"}, graph.CategoriesFor("TIMESTAMP"))
	assert.Equal(t, []string{"internet"}, graph.CategoriesFor("INET"))
	assert.Equal(t, []string{"date"}, graph.CategoriesFor("DATE"))
	assert.Len(t, graph.CategoriesFor("UNKNOWN"), 0)
}

func TestTierGraphTypes(t *testing.T) {
	tax, err := taxonomy.FromYAML("sample", []byte(tieredYAML))
	require.NoError(t, err)
	graph := tax.TierGraph()
	tsTypes := graph.TypesFor("TIMESTAMP", "timestamp")
	assert.Len(t, tsTypes, 2)
	assert.Contains(t, tsTypes, "datetime.timestamp.iso_8601")
	assert.Contains(t, tsTypes, "datetime.timestamp.rfc_2822")

	inetTypes := graph.TypesFor("INET", "internet")
	assert.Len(t, inetTypes, 2)
}

func TestTierGraphTierPath(t *testing.T) {
	tax, err := taxonomy.FromYAML("sample", []byte(tieredYAML))
	require.NoError(t, err)
	graph := tax.TierGraph()
	bt, cat, ok := graph.TierPath("datetime.timestamp.iso_8601")
	require.True(t, ok)
	assert.Equal(t, "TIMESTAMP", bt)
	assert.Equal(t, "timestamp", cat)

	broadType, ok := graph.BroadTypeFor("technology.internet.ip_v4")
	require.True(t, ok)
	assert.Equal(t, "INET", broadType)

	category, ok := graph.CategoryFor("technology.internet.ip_v4")
	require.True(t, ok)
	assert.Equal(t, "internet", category)
}

func TestTierGraphSummary(t *testing.T) {
	tax, err := taxonomy.FromYAML("sample", []byte(tieredYAML))
	require.NoError(t, err)
	summary := tax.TierGraph().Summary()
	assert.Equal(t, 3, summary.Tier0Classes)
	assert.Equal(t, 5, summary.TotalLabels)
}

func TestUnknownDomainRejected(t *testing.T) {
	_, err := taxonomy.FromYAML("sample", []byte(`
nonsense.timestamp.iso_8601:
  designation: universal
  locales: [UNIVERSAL]
`))
	require.Error(t, err)
}
