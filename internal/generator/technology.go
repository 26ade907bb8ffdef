package generator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func init() {
	register("technology.internet.ip_v4", genIPv4)
	register("technology.internet.ip_v6", genIPv6)
	register("technology.internet.mac_address", genMACAddress)
	register("technology.internet.hostname", genHostname)
	register("technology.internet.url", genURL)
	register("technology.internet.port", genPort)
	register("technology.internet.slug", genSlug)

	register("technology.cryptographic.uuid", genUUID)
	register("technology.cryptographic.hash", genHash)
	register("technology.cryptographic.token_hex", genTokenHex)
	register("technology.cryptographic.token_urlsafe", genTokenURLSafe)

	register("technology.code.isbn", genISBN)
	register("technology.code.ean", genEAN)
	register("technology.code.issn", genISSN)
	register("technology.code.doi", genDOI)
	register("technology.code.imei", genIMEI)
	register("technology.code.isin", genISIN)
	register("technology.code.cusip", genCUSIP)
	register("technology.code.sedol", genSEDOL)
	register("technology.code.swift_bic", genSWIFTBIC)
	register("technology.code.lei", genLEI)
}

var tlds = []string{"com", "org", "net", "io", "dev", "co", "app"}

func genIPv4(g *Generator, _ string) string {
	return fmt.Sprintf("%d.%d.%d.%d", 1+g.rng.Intn(254), g.rng.Intn(255), g.rng.Intn(255), 1+g.rng.Intn(254))
}

func genIPv6(g *Generator, _ string) string {
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04x", g.rng.Intn(65536))
	}
	return strings.Join(groups, ":")
}

func genMACAddress(g *Generator, _ string) string {
	octets := make([]string, 6)
	for i := range octets {
		octets[i] = fmt.Sprintf("%02x", g.rng.Intn(256))
	}
	return strings.Join(octets, ":")
}

func genHostname(g *Generator, _ string) string {
	return fmt.Sprintf("%s.%s", g.randomWord(), g.choice(tlds))
}

func genURL(g *Generator, _ string) string {
	nWords := 1 + g.rng.Intn(2)
	var domain strings.Builder
	for i := 0; i < nWords; i++ {
		domain.WriteString(g.randomWord())
	}
	nSegments := 1 + g.rng.Intn(3)
	segments := make([]string, nSegments)
	for i := range segments {
		segments[i] = g.randomWord()
	}
	return fmt.Sprintf("https://%s.%s/%s", domain.String(), g.choice(tlds), strings.Join(segments, "/"))
}

func genSlug(g *Generator, _ string) string {
	n := 2 + g.rng.Intn(4)
	words := make([]string, n)
	for i := range words {
		words[i] = g.randomWord()
	}
	return strings.Join(words, "-")
}

// genPort follows the weighted distribution from spec.md §4.C: 60%
// well-known, 20% registered (1024-49151), 20% ephemeral (49152-65535).
var commonPorts = []int{22, 25, 53, 80, 110, 143, 443, 465, 587, 993, 995, 3306, 3389, 5432, 5672, 5900, 6379, 8080, 8443, 8888, 9090, 9200, 9300, 27017}

func genPort(g *Generator, _ string) string {
	roll := g.rng.Float64()
	switch {
	case roll < 0.60:
		return fmt.Sprintf("%d", commonPorts[g.rng.Intn(len(commonPorts))])
	case roll < 0.80:
		return fmt.Sprintf("%d", 1024+g.rng.Intn(49151-1024))
	default:
		return fmt.Sprintf("%d", 49152+g.rng.Intn(65535-49152))
	}
}

func genUUID(g *Generator, _ string) string {
	return uuid.New().String()
}

// genHash emits canonical hash lengths (32/MD5, 40/SHA-1, 64/SHA-256)
// so length alone discriminates it from token_hex.
func genHash(g *Generator, _ string) string {
	lengths := []int{32, 40, 64}
	return g.hexString(lengths[g.rng.Intn(len(lengths))])
}

// genTokenHex emits lengths in [16,48) excluding the canonical hash
// lengths (32, 40, 64, 128), per spec.md §4.C.
func genTokenHex(g *Generator, _ string) string {
	hashLengths := map[int]bool{32: true, 40: true, 64: true, 128: true}
	length := 16 + g.rng.Intn(32)
	for hashLengths[length] {
		length = 16 + g.rng.Intn(32)
	}
	return g.hexString(length)
}

// genTokenURLSafe emits a base64url token mandatorily containing '-'
// or '_', distinguishing it from base58 Bitcoin addresses.
func genTokenURLSafe(g *Generator, _ string) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	length := 22 + g.rng.Intn(22)
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[g.rng.Intn(len(alphabet))]
	}
	if !strings.ContainsAny(string(b), "-_") {
		pos := g.rng.Intn(len(b))
		if g.rng.Intn(2) == 0 {
			b[pos] = '-'
		} else {
			b[pos] = '_'
		}
	}
	return string(b)
}

func genISBN(g *Generator, _ string) string {
	if g.rng.Float64() < 0.6 {
		prefix := "978"
		if g.rng.Float64() >= 0.8 {
			prefix = "979"
		}
		group := fmt.Sprintf("%d", g.rng.Intn(9))
		publisher := fmt.Sprintf("%05d", 10000+g.rng.Intn(90000))
		title := fmt.Sprintf("%03d", 100+g.rng.Intn(900))
		digits := prefix + group + publisher + title
		check := isbn13CheckDigit(digits)
		if g.rng.Float64() < 0.6 {
			return fmt.Sprintf("%s-%s-%s-%s-%c", prefix, group, publisher, title, check+'0')
		}
		return fmt.Sprintf("%s%c", digits, check+'0')
	}
	group := fmt.Sprintf("%d", g.rng.Intn(9))
	publisher := fmt.Sprintf("%05d", 1000+g.rng.Intn(98000))
	title := fmt.Sprintf("%03d", 10+g.rng.Intn(989))
	body := group + publisher + title
	check := isbn10CheckDigit(body)
	if g.rng.Float64() < 0.6 {
		return fmt.Sprintf("%s-%s-%s-%c", group, publisher, title, check)
	}
	return fmt.Sprintf("%s%c", body, check)
}

var gs1Prefixes = []string{"000", "001", "030", "040", "300", "310", "350", "370", "400", "410", "420", "440", "450", "459", "500", "509", "690", "694", "699", "880", "890", "930", "940"}

func genEAN(g *Generator, _ string) string {
	if g.rng.Float64() < 0.7 {
		prefix := g.choice(gs1Prefixes)
		body := g.digits(12 - len(prefix))
		partial := prefix + body
		check := eanCheckDigit(partial)
		return fmt.Sprintf("%s%c", partial, check+'0')
	}
	body := g.digits(7)
	check := eanCheckDigit(body)
	return fmt.Sprintf("%s%c", body, check+'0')
}

func genISSN(g *Generator, _ string) string {
	body := fmt.Sprintf("%04d%03d", 1000+g.rng.Intn(8999), 100+g.rng.Intn(899))
	sum := 0
	for i, c := range body {
		sum += int(c-'0') * (8 - i)
	}
	check := byte('0' + (11-sum%11)%11)
	if check == '0'+10 {
		check = 'X'
	}
	return fmt.Sprintf("%s-%s%c", body[:4], body[4:], check)
}

var doiRegistrants = []string{"1038", "1016", "1126", "1145", "1109", "1002", "1007", "1371", "1073", "1186", "3389", "1021", "48550", "5281", "1000", "7554"}
var doiJournals = []string{"nature", "science", "cell", "lancet", "nphys", "nmat"}

func genDOI(g *Generator, _ string) string {
	reg := g.choice(doiRegistrants)
	var suffix string
	switch g.rng.Intn(5) {
	case 0:
		suffix = fmt.Sprintf("%s%05d", g.choice(doiJournals), 10000+g.rng.Intn(90000))
	case 1:
		suffix = fmt.Sprintf("j.%s.%d.%02d.%03d",
			[]string{"cell", "neuron", "jmb", "jtbi", "amc"}[g.rng.Intn(5)],
			2000+g.rng.Intn(26), 1+g.rng.Intn(12), 1+g.rng.Intn(99))
	case 2:
		suffix = fmt.Sprintf("arXiv.%02d%02d.%05d", 18+g.rng.Intn(8), 1+g.rng.Intn(12), 10+g.rng.Intn(99989))
	case 3:
		suffix = g.alnum(5 + g.rng.Intn(7))
	default:
		suffix = fmt.Sprintf("s%05d-%03d-%05d-%d", 10000+g.rng.Intn(90000), g.rng.Intn(999), 10000+g.rng.Intn(90000), g.rng.Intn(9))
	}
	return fmt.Sprintf("10.%s/%s", reg, suffix)
}

var imeiTACs = []string{
	"35332509", "35391109", "35404909", "35648409",
	"35290611", "35397710", "35466210", "35195410",
	"35816110", "35837910", "35455610", "35260810",
	"86109003", "86637303", "86813603", "86930804",
	"86876103", "35780008", "35928509", "35455307",
}

func genIMEI(g *Generator, _ string) string {
	tac := g.choice(imeiTACs)
	serial := g.digits(6)
	partial := tac + serial
	check := luhnCheckDigit(partial)
	return fmt.Sprintf("%s%c", partial, check+'0')
}

var isinCountries = []string{"US", "GB", "DE", "FR", "JP", "CA", "AU", "CH", "NL", "SE"}

func genISIN(g *Generator, _ string) string {
	country := g.choice(isinCountries)
	id := g.alnum(9)
	body := country + id
	check := isinCheckDigit(body)
	return fmt.Sprintf("%s%c", body, check+'0')
}

func genCUSIP(g *Generator, _ string) string {
	body := g.alnum(8)
	check := cusipCheckDigit(body)
	return fmt.Sprintf("%s%c", body, check+'0')
}

const sedolConsonants = "BCDFGHJKLMNPQRSTVWXYZ0123456789"

func genSEDOL(g *Generator, _ string) string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = sedolConsonants[g.rng.Intn(len(sedolConsonants))]
	}
	body := string(b)
	check := sedolCheckDigit(body)
	return fmt.Sprintf("%s%c", body, check+'0')
}

var swiftCountries = []string{"US", "GB", "DE", "FR", "JP", "CH", "NL", "SG", "HK", "AU"}

func genSWIFTBIC(g *Generator, _ string) string {
	bank := g.letters(4)
	country := g.choice(swiftCountries)
	location := g.alnum(2)
	code := bank + country + location
	if g.rng.Float64() < 0.5 {
		code += g.alnum(3)
	}
	return code
}

var leiLOUPrefixes = []string{"5299", "2138", "7LTW", "5493", "2148", "3912", "8156", "2549"}

func genLEI(g *Generator, _ string) string {
	lou := g.choice(leiLOUPrefixes)
	remaining := 18 - len(lou)
	body := lou + g.alnum(remaining)
	check := iso7064Mod9710(body)
	return fmt.Sprintf("%s%02d", body, check)
}
