package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finetype/finetype/internal/taxonomy"
)

func ptrInt(v int) *int { return &v }
func ptrFloat(v float64) *float64 { return &v }

func definitionWith(v *taxonomy.Validation) *taxonomy.Definition {
	return &taxonomy.Definition{Validation: v}
}

func TestValidateNilValidationReturnsNoViolations(t *testing.T) {
	assert.Empty(t, Validate("anything", nil))
}

func TestValidateMinMaxLength(t *testing.T) {
	v := &taxonomy.Validation{MinLength: ptrInt(3), MaxLength: ptrInt(5)}
	assert.Empty(t, Validate("abcd", v))
	assert.NotEmpty(t, Validate("ab", v))
	assert.NotEmpty(t, Validate("abcdef", v))
}

func TestValidateMinimumMaximum(t *testing.T) {
	v := &taxonomy.Validation{Minimum: ptrFloat(-90), Maximum: ptrFloat(90)}
	assert.Empty(t, Validate("45.0", v))
	assert.NotEmpty(t, Validate("120.0", v))
	assert.NotEmpty(t, Validate("-95.0", v))
}

func TestValidateEnum(t *testing.T) {
	v := &taxonomy.Validation{Enum: []string{"M", "F", "X"}}
	assert.Empty(t, Validate("M", v))
	assert.NotEmpty(t, Validate("Q", v))
}

func TestValidateAccumulatesAllViolations(t *testing.T) {
	v := &taxonomy.Validation{MinLength: ptrInt(10), Enum: []string{"only-this"}}
	violations := Validate("short", v)
	assert.Len(t, violations, 2)
}

func TestValidateColumnCollectsFailingIndices(t *testing.T) {
	def := definitionWith(&taxonomy.Validation{MinLength: ptrInt(3)})
	values := []string{"okay", "a", "fine", "b"}
	failures := ValidateColumn(values, def)
	require.Len(t, failures, 2)
	_, has1 := failures[1]
	_, has3 := failures[3]
	assert.True(t, has1)
	assert.True(t, has3)
}

func TestApplySetNull(t *testing.T) {
	def := definitionWith(&taxonomy.Validation{MinLength: ptrInt(3)})
	values := []string{"okay", "a", "fine"}
	failures := ValidateColumn(values, def)
	out, quarantined := Apply(StrategySetNull, values, def, failures)
	assert.Equal(t, "", out[1])
	assert.Nil(t, quarantined)
	assert.Equal(t, "okay", out[0])
}

func TestApplyForwardFillUsesPrecedingGoodValue(t *testing.T) {
	def := definitionWith(&taxonomy.Validation{MinLength: ptrInt(3)})
	values := []string{"good", "x", "also-good"}
	failures := ValidateColumn(values, def)
	out, quarantined := Apply(StrategyForwardFill, values, def, failures)
	assert.Equal(t, "good", out[1])
	assert.Empty(t, quarantined)
}

func TestApplyForwardFillQuarantinesWhenNoPriorGoodValue(t *testing.T) {
	def := definitionWith(&taxonomy.Validation{MinLength: ptrInt(3)})
	values := []string{"x", "good"}
	failures := ValidateColumn(values, def)
	_, quarantined := Apply(StrategyForwardFill, values, def, failures)
	assert.Equal(t, []int{0}, quarantined)
}

func TestApplyBackwardFillUsesFollowingGoodValue(t *testing.T) {
	def := definitionWith(&taxonomy.Validation{MinLength: ptrInt(3)})
	values := []string{"x", "good-one"}
	failures := ValidateColumn(values, def)
	out, quarantined := Apply(StrategyBackwardFill, values, def, failures)
	assert.Equal(t, "good-one", out[0])
	assert.Empty(t, quarantined)
}

func TestApplyQuarantineDefaultReturnsSortedIndices(t *testing.T) {
	def := definitionWith(&taxonomy.Validation{MinLength: ptrInt(3)})
	values := []string{"okay", "a", "fine", "b"}
	failures := ValidateColumn(values, def)
	_, quarantined := Apply(StrategyQuarantine, values, def, failures)
	assert.Equal(t, []int{1, 3}, quarantined)
}
