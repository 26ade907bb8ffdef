// Package postprocess applies a fixed, ordered stack of deterministic
// rules over the classifier's raw prediction for a single value,
// resolving confusable label pairs the char-level signal alone cannot
// separate. Rules run in the order declared and the first one that
// fires wins; a value none of them touch keeps the classifier's
// top prediction unchanged.
package postprocess

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/finetype/finetype/internal/classifier"
)

// Rule inspects value and the classifier's current top label, and
// either returns a replacement label (rewritten=true) or leaves the
// prediction untouched.
type Rule func(value string, top classifier.Prediction) (label string, rewritten bool)

// Stack is the ordered rule list applied by Apply.
var Stack = []Rule{
	ruleRFC3339VsISO8601Offset,
	ruleHashVsTokenHex,
	ruleEmojiVsGenderSymbol,
	ruleISSNVsPostalCode,
	ruleLatitudeVsLongitude,
	ruleEmailRescue,
}

// Apply runs value's top prediction through Stack in order, returning
// the first rewritten label, or the original top label if nothing
// fires.
func Apply(value string, predictions []classifier.Prediction) string {
	if len(predictions) == 0 {
		return ""
	}
	top := predictions[0]
	for _, rule := range Stack {
		if label, ok := rule(value, top); ok {
			return label
		}
	}
	return top.Label
}

const (
	labelISO8601Offset = "datetime.timestamp.iso_8601_offset"
	labelRFC3339       = "datetime.timestamp.rfc_3339"
	labelHash          = "technology.cryptographic.hash"
	labelTokenHex      = "technology.cryptographic.token_hex"
	labelEmoji         = "representation.text.emoji"
	labelGenderSymbol  = "identity.person.gender_symbol"
	labelISSN          = "technology.code.issn"
	labelPostalCode    = "geography.address.postal_code"
	labelLatitude      = "geography.coordinate.latitude"
	labelLongitude     = "geography.coordinate.longitude"
	labelHostname      = "technology.internet.hostname"
	labelUsername      = "identity.person.username"
	labelSlug          = "technology.internet.slug"
	labelEmail         = "identity.person.email"
)

// ruleRFC3339VsISO8601Offset resolves the two labels that share
// identical lexical shape except for the date/time separator: 'T'
// means ISO 8601 offset, a space means RFC 3339.
func ruleRFC3339VsISO8601Offset(value string, top classifier.Prediction) (string, bool) {
	if top.Label != labelISO8601Offset && top.Label != labelRFC3339 {
		return "", false
	}
	if len(value) < 11 {
		return top.Label, true
	}
	if value[10] == 'T' {
		return labelISO8601Offset, true
	}
	if value[10] == ' ' {
		return labelRFC3339, true
	}
	return top.Label, true
}

// ruleHashVsTokenHex resolves on length alone: canonical hash digest
// lengths (32, 40, 64, 128) are a hash; anything else hex-shaped is a
// token.
func ruleHashVsTokenHex(value string, top classifier.Prediction) (string, bool) {
	if top.Label != labelHash && top.Label != labelTokenHex {
		return "", false
	}
	if !isHexString(value) {
		return top.Label, true
	}
	switch len(value) {
	case 32, 40, 64, 128:
		return labelHash, true
	default:
		return labelTokenHex, true
	}
}

var hexPattern = regexp.MustCompile(`^[0-9a-fA-F]+$`)

func isHexString(s string) bool { return hexPattern.MatchString(s) }

// ruleEmojiVsGenderSymbol resolves on exact set membership: the
// gender symbol alphabet is the closed 4-glyph set; anything else the
// classifier calls one of these two labels is an emoji.
func ruleEmojiVsGenderSymbol(value string, top classifier.Prediction) (string, bool) {
	if top.Label != labelEmoji && top.Label != labelGenderSymbol {
		return "", false
	}
	switch value {
	case "♂", "♀", "⚧", "⚪":
		return labelGenderSymbol, true
	default:
		return labelEmoji, true
	}
}

// ruleISSNVsPostalCode resolves on the presence of a hyphen at
// position 4 plus the ISSN checksum: a valid ISSN keeps its label,
// otherwise the value is treated as a postal code.
func ruleISSNVsPostalCode(value string, top classifier.Prediction) (string, bool) {
	if top.Label != labelISSN && top.Label != labelPostalCode {
		return "", false
	}
	if len(value) == 9 && value[4] == '-' && issnChecksumValid(value) {
		return labelISSN, true
	}
	return labelPostalCode, true
}

func issnChecksumValid(value string) bool {
	digits := strings.ReplaceAll(value, "-", "")
	if len(digits) != 8 {
		return false
	}
	sum := 0
	for i := 0; i < 7; i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
		sum += int(digits[i]-'0') * (8 - i)
	}
	last := digits[7]
	remainder := sum % 11
	var expected byte
	if remainder == 0 {
		expected = '0'
	} else if remainder == 1 {
		expected = 'X'
	} else {
		expected = byte('0' + (11 - remainder))
	}
	return last == expected
}

// ruleLatitudeVsLongitude resolves on numeric range: a value outside
// [-90, 90] can only be a longitude.
func ruleLatitudeVsLongitude(value string, top classifier.Prediction) (string, bool) {
	if top.Label != labelLatitude && top.Label != labelLongitude {
		return "", false
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return top.Label, true
	}
	if v < -90 || v > 90 {
		return labelLongitude, true
	}
	return top.Label, true
}

// ruleEmailRescue resolves the hostname/username/slug confusion set
// against an ordinary email address: if the value contains exactly
// one '@' with a dotted domain, it is an email regardless of which of
// the three the classifier preferred.
func ruleEmailRescue(value string, top classifier.Prediction) (string, bool) {
	switch top.Label {
	case labelHostname, labelUsername, labelSlug:
	default:
		return "", false
	}
	if looksLikeEmail(value) {
		return labelEmail, true
	}
	return top.Label, true
}

// emailForbiddenChars are the container/structured-value markers whose
// presence rules a value out of the email rescue even when it
// otherwise has the shape of one: ", = & { } | ; ://".
const emailForbiddenChars = ",=&{}|; \t"

func looksLikeEmail(value string) bool {
	at := strings.Index(value, "@")
	if at <= 0 || at != strings.LastIndex(value, "@") {
		return false
	}
	if strings.ContainsAny(value, emailForbiddenChars) || strings.Contains(value, "://") {
		return false
	}
	domain := value[at+1:]
	return strings.Contains(domain, ".")
}
