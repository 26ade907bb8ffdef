package generator

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

func init() {
	register("identity.person.full_name", genFullName)
	register("identity.person.first_name", genFirstName)
	register("identity.person.last_name", genLastName)
	register("identity.person.email", genPersonEmail)
	register("identity.person.phone_number", genPhoneNumber)
	register("identity.person.username", genUsername)
	register("identity.person.password", genPassword)
	register("identity.person.gender", genGender)
	register("identity.person.gender_code", genGenderCode)
	register("identity.person.gender_symbol", genGenderSymbol)
	register("identity.person.blood_type", genBloodType)
	register("identity.person.age", genAge)

	register("identity.payment.credit_card_number", genCreditCardNumber)
	register("identity.payment.credit_card_expiration_date", genCreditCardExpiration)
	register("identity.payment.cvv", genCVV)
	register("identity.payment.credit_card_network", genCreditCardNetwork)
	register("identity.payment.bitcoin_address", genBitcoinAddress)
	register("identity.payment.ethereum_address", genEthereumAddress)
	register("identity.payment.paypal_email", genPaypalEmail)
}

// genFullName produces "First Last" for Western locales and a
// surname-first, no-space joining for JA/ZH/KO, per spec.md §4.C.
func genFullName(g *Generator, locale string) string {
	first := g.randomFirstName(locale)
	last := g.randomLastName(locale)
	if isEastAsianLocale(g.localeOrDefault(locale)) {
		return last + first
	}
	return first + " " + last
}

func genFirstName(g *Generator, locale string) string { return g.randomFirstName(locale) }
func genLastName(g *Generator, locale string) string  { return g.randomLastName(locale) }

var emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "example.com", "company.org"}
var emailSeparators = []string{".", "_", ""}

func genPersonEmail(g *Generator, locale string) string {
	first := strings.ToLower(g.randomFirstName(locale))
	last := strings.ToLower(g.randomLastName(locale))
	sep := g.choice(emailSeparators)
	num := ""
	if g.rng.Float64() < 0.3 {
		num = fmt.Sprintf("%d", 1+g.rng.Intn(98))
	}
	return fmt.Sprintf("%s%s%s%s@%s", first, sep, last, num, g.choice(emailDomains))
}

func genUsername(g *Generator, locale string) string {
	first := strings.ToLower(g.randomFirstName(locale))
	seps := []string{".", "_", "-", ""}
	sep := g.choice(seps)
	var suffix string
	if g.rng.Float64() < 0.5 {
		suffix = fmt.Sprintf("%d", 1+g.rng.Intn(998))
	} else {
		suffix = g.randomWord()
	}
	return first + sep + suffix
}

func genPassword(g *Generator, _ string) string {
	const alnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	length := 8 + g.rng.Intn(12)
	b := make([]byte, length)
	for i := range b {
		b[i] = alnum[g.rng.Intn(len(alnum))]
	}
	const specials = "!@#$%^&*()_+-=[]{}|;:',.<>?"
	pos := g.rng.Intn(len(b))
	special := specials[g.rng.Intn(len(specials))]
	out := make([]byte, 0, length+1)
	out = append(out, b[:pos]...)
	out = append(out, special)
	out = append(out, b[pos:]...)
	return string(out)
}

var genders = []string{"Male", "Female", "Non-binary", "Other", "Prefer not to say"}
var genderCodes = []string{"M", "F", "X"}

// genderSymbols is exactly the set spec.md §4.C mandates, distinct
// from the emoji set the post-processor must not confuse it with.
var genderSymbols = []string{"♂", "♀", "⚧", "⚪"}

func genGender(g *Generator, _ string) string       { return g.choice(genders) }
func genGenderCode(g *Generator, _ string) string   { return g.choice(genderCodes) }
func genGenderSymbol(g *Generator, _ string) string { return g.choice(genderSymbols) }

var bloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func genBloodType(g *Generator, _ string) string { return g.choice(bloodTypes) }
func genAge(g *Generator, _ string) string       { return fmt.Sprintf("%d", 1+g.rng.Intn(99)) }

// genPhoneNumber covers a representative subset of the 14 locale
// templates named in spec.md §4.C (US/CA, UK, DE, FR, with EN default).
func genPhoneNumber(g *Generator, locale string) string {
	switch g.localeOrDefault(locale) {
	case "EN_GB":
		if g.rng.Float64() < 0.6 {
			return fmt.Sprintf("+447%02d%06d", 0+g.rng.Intn(100), g.rng.Intn(1000000))
		}
		return fmt.Sprintf("+4420%04d%04d", 1000+g.rng.Intn(9000), 1000+g.rng.Intn(9000))
	case "DE":
		if g.rng.Float64() < 0.6 {
			return fmt.Sprintf("+49%03d%08d", 150+g.rng.Intn(30), g.rng.Intn(100000000))
		}
		areaCodes := []int{30, 40, 69, 89, 211, 221, 351, 511, 711, 911}
		return fmt.Sprintf("+49%d%07d", areaCodes[g.rng.Intn(len(areaCodes))], 1000000+g.rng.Intn(9000000))
	case "FR":
		prefix := 6
		if g.rng.Float64() >= 0.6 {
			prefix = 1 + g.rng.Intn(4)
		}
		return fmt.Sprintf("+33%d%02d%02d%02d%02d", prefix, 10+g.rng.Intn(89), 10+g.rng.Intn(89), 10+g.rng.Intn(89), 10+g.rng.Intn(89))
	default: // EN, EN_US, EN_CA and unhandled locales fall back to NANPA
		area := 200 + g.rng.Intn(799)
		exchange := 200 + g.rng.Intn(799)
		subscriber := 1000 + g.rng.Intn(9000)
		if g.rng.Float64() < 0.5 {
			return fmt.Sprintf("+1%03d%03d%04d", area, exchange, subscriber)
		}
		return fmt.Sprintf("+1 (%03d) %03d-%04d", area, exchange, subscriber)
	}
}

func genCreditCardNumber(g *Generator, _ string) string {
	var prefix string
	var totalLen int
	switch g.rng.Intn(4) {
	case 0:
		prefix, totalLen = "4", 16
	case 1:
		prefix, totalLen = fmt.Sprintf("%d", 51+g.rng.Intn(5)), 16
	case 2:
		if g.rng.Intn(2) == 0 {
			prefix = "34"
		} else {
			prefix = "37"
		}
		totalLen = 15
	default:
		prefix, totalLen = "6011", 16
	}
	randomDigits := totalLen - len(prefix) - 1
	body := prefix + g.digits(randomDigits)
	check := luhnCheckDigit(body)
	return fmt.Sprintf("%s%c", body, check+'0')
}

func genCreditCardExpiration(g *Generator, _ string) string {
	return fmt.Sprintf("%02d/%02d", 1+g.rng.Intn(12), 25+g.rng.Intn(7))
}

func genCVV(g *Generator, _ string) string {
	if g.rng.Float64() < 0.85 {
		return fmt.Sprintf("%03d", 100+g.rng.Intn(900))
	}
	return fmt.Sprintf("%04d", 1000+g.rng.Intn(9000))
}

var creditCardNetworks = []string{"Visa", "Mastercard", "Amex", "Discover", "Diners Club", "JCB"}

func genCreditCardNetwork(g *Generator, _ string) string { return g.choice(creditCardNetworks) }

const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// base58Body base58-encodes n random bytes via mr-tron/base58 (the
// same encoder real wallet software uses) and pads/truncates the
// result to exactly length characters, since raw random bytes rarely
// base58-encode to precisely the canonical address body length.
func (g *Generator) base58Body(length int) string {
	raw := make([]byte, length)
	g.rng.Read(raw)
	encoded := base58.Encode(raw)
	for len(encoded) < length {
		encoded += encoded
	}
	return encoded[:length]
}

// genBitcoinAddress produces one of the three address formats named
// in spec.md §4.C: P2PKH (1...), P2SH (3...), Bech32 (bc1...).
func genBitcoinAddress(g *Generator, _ string) string {
	switch g.rng.Intn(3) {
	case 0:
		return "1" + g.base58Body(33)
	case 1:
		return "3" + g.base58Body(33)
	default:
		return "bc1" + g.randomFromAlphabet(bech32Charset, 39)
	}
}

func (g *Generator) randomFromAlphabet(alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[g.rng.Intn(len(alphabet))]
	}
	return string(b)
}

func genEthereumAddress(g *Generator, _ string) string {
	return "0x" + g.hexString(40)
}

func genPaypalEmail(g *Generator, locale string) string {
	first := strings.ToLower(g.randomFirstName(locale))
	last := strings.ToLower(g.randomLastName(locale))
	switch g.rng.Intn(5) {
	case 0:
		return fmt.Sprintf("%s@paypal.com", first)
	case 1:
		return fmt.Sprintf("pp-%s.%s@paypal.com", first, last)
	case 2:
		return fmt.Sprintf("%s-payments@paypal.com", g.randomWord())
	case 3:
		services := []string{"service", "payments", "billing", "merchant", "seller"}
		return fmt.Sprintf("%s.%s@%s.paypal.com", first, last, g.choice(services))
	default:
		return fmt.Sprintf("paypal-%s%d@%s.com", first, 1+g.rng.Intn(998), g.randomWord())
	}
}
