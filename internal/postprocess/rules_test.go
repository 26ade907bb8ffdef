package postprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finetype/finetype/internal/classifier"
)

func topOf(label string) []classifier.Prediction {
	return []classifier.Prediction{{Label: label, Confidence: 0.9}}
}

func TestRFC3339VsISO8601OffsetBySeparator(t *testing.T) {
	assert.Equal(t, labelISO8601Offset, Apply("2024-01-15T10:30:00+00:00", topOf(labelRFC3339)))
	assert.Equal(t, labelRFC3339, Apply("2024-01-15 10:30:00+00:00", topOf(labelISO8601Offset)))
}

func TestHashVsTokenHexByLength(t *testing.T) {
	hash32 := "d41d8cd98f00b204e9800998ecf8427e"[:32]
	assert.Equal(t, labelHash, Apply(hash32, topOf(labelTokenHex)))
	tok := "0123456789abcdef0123456789ab"
	assert.Equal(t, labelTokenHex, Apply(tok, topOf(labelHash)))
}

func TestEmojiVsGenderSymbolByExactSet(t *testing.T) {
	assert.Equal(t, labelGenderSymbol, Apply("♂", topOf(labelEmoji)))
	assert.Equal(t, labelEmoji, Apply("🎉", topOf(labelGenderSymbol)))
}

func TestISSNVsPostalCodeByChecksum(t *testing.T) {
	// 0317-8471 is a checksum-valid ISSN test value.
	assert.Equal(t, labelISSN, Apply("0317-8471", topOf(labelPostalCode)))
	assert.Equal(t, labelPostalCode, Apply("90210", topOf(labelISSN)))
}

func TestLatitudeVsLongitudeByRange(t *testing.T) {
	assert.Equal(t, labelLongitude, Apply("120.5", topOf(labelLatitude)))
	assert.Equal(t, labelLongitude, Apply("45.0", topOf(labelLongitude)))
}

func TestEmailRescueFromHostnameUsernameSlug(t *testing.T) {
	assert.Equal(t, labelEmail, Apply("jane.doe@example.com", topOf(labelHostname)))
	assert.Equal(t, labelEmail, Apply("jane.doe@example.com", topOf(labelUsername)))
	assert.Equal(t, labelEmail, Apply("jane.doe@example.com", topOf(labelSlug)))
	assert.Equal(t, labelHostname, Apply("example.com", topOf(labelHostname)))
}

func TestEmailRescueDoesNotFireOnStructuredValues(t *testing.T) {
	assert.Equal(t, labelUsername, Apply("a=b@c.d&e=f", topOf(labelUsername)))
	assert.Equal(t, labelSlug, Apply("user@example.com; other", topOf(labelSlug)))
	assert.Equal(t, labelHostname, Apply("scheme://user@example.com", topOf(labelHostname)))
}

func TestApplyLeavesUnrelatedLabelUnchanged(t *testing.T) {
	assert.Equal(t, "representation.text.plain_text", Apply("hello world", topOf("representation.text.plain_text")))
}

func TestApplyOnEmptyPredictionsReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", Apply("anything", nil))
}
