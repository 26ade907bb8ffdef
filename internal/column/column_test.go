package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleDateSlashAmbiguityResolvesEUWhenFirstFieldOver12(t *testing.T) {
	values := []string{"25/01/2024", "03/01/2024", "10/01/2024"}
	label, ruleName, ok := ruleDateSlashAmbiguity(labelDateUSSlash, values, nil)
	assert.True(t, ok)
	assert.Equal(t, labelDateEUSlash, label)
	assert.Equal(t, ruleNameDateSlash, ruleName)
}

func TestRuleDateSlashAmbiguityResolvesUSWhenSecondFieldOver12(t *testing.T) {
	values := []string{"01/25/2024", "01/03/2024"}
	label, ruleName, ok := ruleDateSlashAmbiguity(labelDateEUSlash, values, nil)
	assert.True(t, ok)
	assert.Equal(t, labelDateUSSlash, label)
	assert.Equal(t, ruleNameDateSlash, ruleName)
}

func TestRuleCoordinateRangeForcesLongitudeOutOfLatBounds(t *testing.T) {
	values := []string{"45.0", "120.5", "-30.2"}
	label, ruleName, ok := ruleCoordinateRange(labelLatitude, values, nil)
	assert.True(t, ok)
	assert.Equal(t, labelLongitude, label)
	assert.Equal(t, ruleNameCoordinateRange, ruleName)
}

func TestRuleYearDetectionFiresOnMostlyYearlikeValues(t *testing.T) {
	values := []string{"1998", "2004", "2012", "2026"}
	label, ruleName, ok := ruleYearDetection(labelYear, values, nil)
	assert.True(t, ok)
	assert.Equal(t, labelYear, label)
	assert.Equal(t, ruleNameYearDetection, ruleName)
}

func TestRuleYearDetectionDefersBelowThreshold(t *testing.T) {
	values := []string{"1998", "2004", "12", "56", "78"}
	_, _, ok := ruleYearDetection(labelDecimalNumber, values, nil)
	assert.False(t, ok)
}

func TestRuleSequentialIntegerDetection(t *testing.T) {
	values := []string{"1", "2", "3", "4", "5"}
	label, ruleName, ok := ruleSequentialIntegerDetection(labelIntegerNumber, values, nil)
	assert.True(t, ok)
	assert.Equal(t, labelIncrement, label)
	assert.Equal(t, ruleNameSequentialInt, ruleName)
}

func TestRuleSequentialIntegerDetectionDefersOnNonSequential(t *testing.T) {
	values := []string{"1", "5", "3"}
	_, _, ok := ruleSequentialIntegerDetection(labelIntegerNumber, values, nil)
	assert.False(t, ok)
}

func TestRulePortDetection(t *testing.T) {
	values := []string{"80", "443", "22", "8080"}
	label, ruleName, ok := rulePortDetection(labelIntegerNumber, values, nil)
	assert.True(t, ok)
	assert.Equal(t, labelPort, label)
	assert.Equal(t, ruleNamePortDetection, ruleName)
}

func TestRuleStreetNumberDetectionRequiresDuplicate(t *testing.T) {
	values := []string{"12", "34", "12", "56", "78"}
	label, ruleName, ok := ruleStreetNumberDetection(labelIntegerNumber, values, nil)
	assert.True(t, ok)
	assert.Equal(t, labelStreetNumber, label)
	assert.Equal(t, ruleNameStreetNumber, ruleName)
}

func TestClassifyOnAllNullColumnReturnsPlainTextAtZeroConfidence(t *testing.T) {
	result := Classify(nil, []string{"", "", ""}, 0, 0)
	assert.Equal(t, emptyColumnLabel, result.Label)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, 3, result.NullCount)
}
