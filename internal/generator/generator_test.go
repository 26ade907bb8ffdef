package generator

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	return NewSeeded(nil, 42)
}

func TestEveryRegisteredKeyGenerates(t *testing.T) {
	g := newTestGenerator()
	for _, key := range Keys() {
		samples, err := g.Generate(key, 3)
		require.NoError(t, err, "key %s", key)
		require.Len(t, samples, 3)
		for _, s := range samples {
			assert.Equal(t, key, s.Label)
			assert.NotEmpty(t, s.Text)
		}
	}
}

func TestGenerateUnknownKeyFails(t *testing.T) {
	g := newTestGenerator()
	_, err := g.Generate("nonsense.not.real", 1)
	assert.Error(t, err)
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	a := NewSeeded(nil, 7)
	b := NewSeeded(nil, 7)
	sa, err := a.Generate("datetime.timestamp.iso_8601", 5)
	require.NoError(t, err)
	sb, err := b.Generate("datetime.timestamp.iso_8601", 5)
	require.NoError(t, err)
	for i := range sa {
		assert.Equal(t, sa[i].Text, sb[i].Text)
	}
}

func TestLuhnCheckDigitValidatesKnownCreditCardNumber(t *testing.T) {
	// 4532015112830366 is a well-known Luhn-valid test number.
	body := "453201511283036"
	check := luhnCheckDigit(body)
	assert.Equal(t, byte('6'-'0'), check)
}

func TestEANCheckDigitMatchesKnownUPC(t *testing.T) {
	// 036000291452 is a real UPC-A; as a 12-digit EAN-style payload
	// (left-padded with the implicit UPC leading zero) its check digit is 2.
	check := eanCheckDigit("003600029145")
	assert.Equal(t, byte(2), check)
}

func TestISBN10CheckDigitHandlesXRemainder(t *testing.T) {
	// 0-306-40615-2 is a canonical ISBN-10 test value.
	check := isbn10CheckDigit("030640615")
	assert.Equal(t, byte('2'), check)
	// 0-8044-2957-X: the weighted sum leaves remainder 10, written as 'X'.
	assert.Equal(t, byte('X'), isbn10CheckDigit("080442957"))
}

func TestISO7064Mod9710IsWithinValidRange(t *testing.T) {
	result := iso7064Mod9710("5299ABCDEFGH123456")
	assert.GreaterOrEqual(t, result, 2)
	assert.LessOrEqual(t, result, 98)
}

func TestRFC3339UsesSpaceSeparator(t *testing.T) {
	g := newTestGenerator()
	samples, err := g.Generate("datetime.timestamp.rfc_3339", 10)
	require.NoError(t, err)
	for _, s := range samples {
		assert.Contains(t, s.Text, " ")
		assert.NotContains(t, s.Text[:11], "T")
	}
}

func TestISO8601OffsetUsesTSeparator(t *testing.T) {
	g := newTestGenerator()
	samples, err := g.Generate("datetime.timestamp.iso_8601_offset", 10)
	require.NoError(t, err)
	for _, s := range samples {
		assert.Contains(t, s.Text, "T")
	}
}

func TestGenderSymbolsAreExactSet(t *testing.T) {
	g := newTestGenerator()
	samples, err := g.Generate("identity.person.gender_symbol", 50)
	require.NoError(t, err)
	allowed := map[string]bool{"♂": true, "♀": true, "⚧": true, "⚪": true}
	for _, s := range samples {
		assert.True(t, allowed[s.Text], "unexpected gender symbol %q", s.Text)
	}
}

func TestGenderSymbolsDisjointFromEmoji(t *testing.T) {
	for _, sym := range genderSymbols {
		for _, e := range emojis {
			assert.NotEqual(t, sym, e)
		}
	}
}

func TestHashUsesCanonicalDigestLengths(t *testing.T) {
	g := newTestGenerator()
	samples, err := g.Generate("technology.cryptographic.hash", 30)
	require.NoError(t, err)
	valid := map[int]bool{32: true, 40: true, 64: true}
	for _, s := range samples {
		assert.True(t, valid[len(s.Text)], "unexpected hash length %d", len(s.Text))
	}
}

func TestTokenHexNeverCollidesWithHashLengths(t *testing.T) {
	g := newTestGenerator()
	samples, err := g.Generate("technology.cryptographic.token_hex", 50)
	require.NoError(t, err)
	hashLengths := map[int]bool{32: true, 40: true, 64: true, 128: true}
	for _, s := range samples {
		assert.False(t, hashLengths[len(s.Text)], "token_hex collided with hash length %d", len(s.Text))
	}
}

func TestTokenURLSafeAlwaysContainsDashOrUnderscore(t *testing.T) {
	g := newTestGenerator()
	samples, err := g.Generate("technology.cryptographic.token_urlsafe", 30)
	require.NoError(t, err)
	for _, s := range samples {
		assert.True(t, strings.ContainsAny(s.Text, "-_"))
	}
}

func TestBitcoinAddressPrefixes(t *testing.T) {
	g := newTestGenerator()
	samples, err := g.Generate("identity.payment.bitcoin_address", 50)
	require.NoError(t, err)
	for _, s := range samples {
		ok := strings.HasPrefix(s.Text, "1") || strings.HasPrefix(s.Text, "3") || strings.HasPrefix(s.Text, "bc1")
		assert.True(t, ok, "unexpected bitcoin address prefix: %s", s.Text)
	}
}

func TestCreditCardNumbersPassLuhn(t *testing.T) {
	g := newTestGenerator()
	samples, err := g.Generate("identity.payment.credit_card_number", 20)
	require.NoError(t, err)
	for _, s := range samples {
		assert.True(t, passesLuhn(s.Text), "credit card number failed Luhn: %s", s.Text)
	}
}

func TestLatitudeWithinBounds(t *testing.T) {
	g := newTestGenerator()
	samples, err := g.Generate("geography.coordinate.latitude", 50)
	require.NoError(t, err)
	for _, s := range samples {
		v, err := strconv.ParseFloat(s.Text, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, -90.0)
		assert.LessOrEqual(t, v, 90.0)
	}
}

func TestLongitudeCanExceedLatitudeBounds(t *testing.T) {
	g := newTestGenerator()
	samples, err := g.Generate("geography.coordinate.longitude", 200)
	require.NoError(t, err)
	exceedsLatRange := false
	for _, s := range samples {
		v, err := strconv.ParseFloat(s.Text, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, -180.0)
		assert.LessOrEqual(t, v, 180.0)
		if v > 90 || v < -90 {
			exceedsLatRange = true
		}
	}
	assert.True(t, exceedsLatRange, "expected at least one longitude outside [-90,90] across 200 samples")
}

func TestEastAsianFullNameIsSurnameFirstNoSpace(t *testing.T) {
	g := newTestGenerator()
	samples, err := g.GenerateLocalized("identity.person.full_name", "JA", 10)
	require.NoError(t, err)
	for _, s := range samples {
		assert.NotContains(t, s.Text, " ")
	}
}

func TestWesternFullNameHasSpace(t *testing.T) {
	g := newTestGenerator()
	samples, err := g.GenerateLocalized("identity.person.full_name", "EN", 10)
	require.NoError(t, err)
	for _, s := range samples {
		assert.Contains(t, s.Text, " ")
	}
}

// passesLuhn validates a full digit string (including its own check
// digit) via the standard Luhn algorithm, independent of the
// production luhnCheckDigit helper used to construct it.
func passesLuhn(number string) bool {
	sum := 0
	parity := len(number) % 2
	for i := 0; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return false
		}
		d := int(number[i] - '0')
		if i%2 == parity {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}
