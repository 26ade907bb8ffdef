package generator

import "fmt"

func init() {
	register("geography.location.country_code", genCountryCode)
	register("geography.location.city", genCity)
	register("geography.location.region", genRegion)

	register("geography.address.postal_code", genPostalCode)
	register("geography.address.street_number", genStreetNumber)
	register("geography.address.street_name", genStreetName)
	register("geography.address.full_address", genFullAddress)

	register("geography.coordinate.latitude", genLatitude)
	register("geography.coordinate.longitude", genLongitude)
}

var countryCodes = []string{"US", "GB", "DE", "FR", "ES", "IT", "NL", "CA", "AU", "JP", "CN", "KR", "BR", "IN", "MX", "PL", "RU"}

func genCountryCode(g *Generator, _ string) string { return g.choice(countryCodes) }

var citiesByLocale = map[string][]string{
	"EN":    {"Springfield", "Franklin", "Clinton", "Madison", "Georgetown"},
	"EN_GB": {"Manchester", "Bristol", "Leeds", "Sheffield", "Liverpool"},
	"EN_AU": {"Parramatta", "Geelong", "Newcastle", "Wollongong"},
	"EN_CA": {"Mississauga", "Brampton", "Kelowna", "Burnaby"},
	"DE":    {"München", "Köln", "Frankfurt", "Stuttgart", "Leipzig"},
	"FR":    {"Lyon", "Marseille", "Toulouse", "Nantes", "Bordeaux"},
	"ES":    {"Sevilla", "Valencia", "Bilbao", "Zaragoza"},
	"IT":    {"Milano", "Napoli", "Torino", "Bologna"},
	"NL":    {"Utrecht", "Eindhoven", "Rotterdam", "Groningen"},
	"JA":    {"Osaka", "Yokohama", "Nagoya", "Sapporo"},
	"ZH":    {"Shanghai", "Shenzhen", "Guangzhou", "Chengdu"},
	"KO":    {"Busan", "Incheon", "Daegu", "Daejeon"},
}

func genCity(g *Generator, locale string) string {
	loc := g.localeOrDefault(locale)
	names, ok := citiesByLocale[loc]
	if !ok {
		names = citiesByLocale["EN"]
	}
	return g.choice(names)
}

var regionsByLocale = map[string][]string{
	"EN":    {"California", "Texas", "New York", "Ohio", "Georgia"},
	"EN_GB": {"Yorkshire", "Kent", "Essex", "Cornwall"},
	"EN_AU": {"New South Wales", "Victoria", "Queensland", "Tasmania"},
	"EN_CA": {"Ontario", "British Columbia", "Alberta", "Quebec"},
	"DE":    {"Bayern", "Hessen", "Sachsen", "Niedersachsen"},
	"FR":    {"Bretagne", "Provence", "Normandie", "Alsace"},
	"ES":    {"Andalucía", "Cataluña", "Galicia"},
	"IT":    {"Toscana", "Lombardia", "Sicilia"},
}

func genRegion(g *Generator, locale string) string {
	loc := g.localeOrDefault(locale)
	names, ok := regionsByLocale[loc]
	if !ok {
		names = regionsByLocale["EN"]
	}
	return g.choice(names)
}

// genPostalCode routes on locale per spec.md §4.C's locale-specific
// postal formats: US ZIP (5 or ZIP+4), UK alphanumeric, CA alternating
// letter/digit, DE/FR/ES/IT 5-digit, NL 4-digit+2-letter.
func genPostalCode(g *Generator, locale string) string {
	switch g.localeOrDefault(locale) {
	case "EN_GB":
		outward := fmt.Sprintf("%s%d", g.letters(1+g.rng.Intn(2)), g.rng.Intn(10))
		inward := fmt.Sprintf("%d%s", g.rng.Intn(10), g.letters(2))
		return outward + " " + inward
	case "EN_CA":
		const letters = "ABCEGHJKLMNPRSTVXY"
		b := func() byte { return letters[g.rng.Intn(len(letters))] }
		return fmt.Sprintf("%c%d%c %d%c%d", b(), g.rng.Intn(10), b(), g.rng.Intn(10), b(), g.rng.Intn(10))
	case "EN_AU":
		return fmt.Sprintf("%04d", 1000+g.rng.Intn(8000))
	case "DE", "FR", "ES", "IT":
		return fmt.Sprintf("%05d", 10000+g.rng.Intn(89000))
	case "NL":
		return fmt.Sprintf("%04d %s", 1000+g.rng.Intn(8999), g.letters(2))
	case "JA":
		return fmt.Sprintf("%03d-%04d", g.rng.Intn(1000), g.rng.Intn(10000))
	default: // EN, EN_US default to American ZIP / ZIP+4
		if g.rng.Float64() < 0.7 {
			return fmt.Sprintf("%05d", 10000+g.rng.Intn(89999))
		}
		return fmt.Sprintf("%05d-%04d", 10000+g.rng.Intn(89999), g.rng.Intn(10000))
	}
}

func genStreetNumber(g *Generator, _ string) string {
	return fmt.Sprintf("%d", 1+g.rng.Intn(9998))
}

var streetSuffixes = []string{"St", "Ave", "Blvd", "Rd", "Ln", "Dr", "Way", "Ct"}

func genStreetName(g *Generator, _ string) string {
	return fmt.Sprintf("%s %s", g.randomWord(), g.choice(streetSuffixes))
}

func genFullAddress(g *Generator, locale string) string {
	return fmt.Sprintf("%s %s, %s, %s %s",
		genStreetNumber(g, locale), genStreetName(g, locale), genCity(g, locale),
		genRegion(g, locale), genPostalCode(g, locale))
}

// genLatitude/genLongitude emit values within strict geographic
// bounds; the post-processor relies on the [-90,90] vs [-180,180]
// overlap band to disambiguate against each other (spec.md §4.E).
func genLatitude(g *Generator, _ string) string {
	v := -90 + g.rng.Float64()*180
	return fmt.Sprintf("%.6f", v)
}

func genLongitude(g *Generator, _ string) string {
	v := -180 + g.rng.Float64()*360
	return fmt.Sprintf("%.6f", v)
}
