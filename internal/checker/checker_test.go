package checker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finetype/finetype/internal/taxonomy"
)

func TestCheckBundledTaxonomyIsFullyConsistent(t *testing.T) {
	tax, err := taxonomy.LoadEmbedded()
	require.NoError(t, err)

	report := Check(tax)
	if !report.OK() {
		for _, f := range report.Failures {
			t.Logf("failure: %s %s %s", f.Key, f.Kind, f.Detail)
		}
	}
	assert.True(t, report.OK(), "expected the bundled taxonomy and generator registry to be a perfect bijection")
	assert.Greater(t, report.TotalKeys, 0)
}

func TestReportByDomainGroupsFailures(t *testing.T) {
	r := Report{
		Failures: []Failure{
			{Key: "datetime.date.iso", Kind: KindMissingGenerator, Domain: "datetime"},
			{Key: "identity.person.email", Kind: KindOrphanGenerator, Domain: "identity"},
			{Key: "datetime.date.us_slash", Kind: KindMissingGenerator, Domain: "datetime"},
		},
	}
	byDomain := r.ByDomain()
	assert.Len(t, byDomain["datetime"], 2)
	assert.Len(t, byDomain["identity"], 1)
}

func TestFailuresOfKindFilters(t *testing.T) {
	r := Report{
		Failures: []Failure{
			{Key: "a.b.c", Kind: KindMissingGenerator},
			{Key: "d.e.f", Kind: KindSampleInvalid},
		},
	}
	assert.Len(t, r.FailuresOfKind(KindMissingGenerator), 1)
	assert.Len(t, r.FailuresOfKind(KindSampleInvalid), 1)
}
