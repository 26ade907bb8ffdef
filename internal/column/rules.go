package column

import (
	"strconv"
	"strings"
)

const (
	labelDateUSSlash   = "datetime.date.us_slash"
	labelDateEUSlash   = "datetime.date.eu_slash"
	labelDateShortMDY  = "datetime.date.short_mdy"
	labelDateShortDMY  = "datetime.date.short_dmy"
	labelLatitude      = "geography.coordinate.latitude"
	labelLongitude     = "geography.coordinate.longitude"
	labelYear          = "datetime.component.year"
	labelPostalCode    = "geography.address.postal_code"
	labelPort          = "technology.internet.port"
	labelIncrement     = "representation.numeric.increment"
	labelIntegerNumber = "representation.numeric.integer_number"
	labelDecimalNumber = "representation.numeric.decimal_number"
	labelStreetNumber  = "geography.address.street_number"
)

// Rule names recorded onto Result.DisambiguationApplied, in the exact
// strings the scenarios in spec.md §8 name.
const (
	ruleNameDateSlash       = "date_slash_disambiguation"
	ruleNameShortDate       = "short_date_disambiguation"
	ruleNameCoordinateRange = "coordinate_range_disambiguation"
	ruleNameYearDetection   = "numeric_year_detection"
	ruleNamePostalCodeYear  = "postal_code_year_exclusion"
	ruleNamePortDetection   = "port_detection"
	ruleNameSequentialInt   = "numeric_sequential_detection"
	ruleNameStreetNumber    = "street_number_detection"
	ruleNamePostalCodeShape = "postal_code_shape_detection"
)

// yearMin and yearMax bound the plausible 4-digit year range used by
// both year-detection rules.
const (
	yearMin = 1900
	yearMax = 2100
	// yearDetectionThreshold is the minimum share of values that must
	// be 4-digit integers in [yearMin, yearMax] for either year rule to
	// fire (of all sampled values for ruleYearDetection, of the
	// integer-valued ones for rulePostalCodeYearExclusion).
	yearDetectionThreshold = 0.8
)

// disambiguationRule inspects the column's plurality label, its raw
// sample values, and the full vote tally, and either confirms a
// (possibly different) label under its own rule name or defers by
// returning ok=false.
type disambiguationRule func(label string, values []string, votes map[string]int) (resolved string, ruleName string, ok bool)

// rules runs in this fixed order; the first rule whose predicate
// matches the plurality label decides the column, all others defer.
var rules = []disambiguationRule{
	ruleDateSlashAmbiguity,
	ruleShortDateAmbiguity,
	ruleCoordinateRange,
	ruleYearDetection,
	rulePostalCodeYearExclusion,
	rulePortDetection,
	ruleSequentialIntegerDetection,
	ruleStreetNumberDetection,
	rulePostalCodeShapeDetection,
}

// applyDisambiguation runs the fixed rule stack over label, returning
// the resolved label and the name of the rule that fired, or label
// and "" unchanged if none matched.
func applyDisambiguation(label string, values []string, votes map[string]int) (string, string) {
	for _, rule := range rules {
		if resolved, ruleName, ok := rule(label, values, votes); ok {
			return resolved, ruleName
		}
	}
	return label, ""
}

// ruleDateSlashAmbiguity: us_slash and eu_slash are lexically
// identical whenever the first two numeric fields are both <= 12; a
// column where any sampled value has a first field > 12 is
// unambiguously eu_slash (day-first), and vice versa.
func ruleDateSlashAmbiguity(label string, values []string, _ map[string]int) (string, string, bool) {
	if label != labelDateUSSlash && label != labelDateEUSlash {
		return "", "", false
	}
	sawFirstOver12 := false
	sawSecondOver12 := false
	for _, v := range values {
		parts := strings.Split(v, "/")
		if len(parts) != 3 {
			continue
		}
		a, errA := strconv.Atoi(parts[0])
		b, errB := strconv.Atoi(parts[1])
		if errA != nil || errB != nil {
			continue
		}
		if a > 12 {
			sawFirstOver12 = true
		}
		if b > 12 {
			sawSecondOver12 = true
		}
	}
	if sawFirstOver12 && !sawSecondOver12 {
		return labelDateEUSlash, ruleNameDateSlash, true
	}
	if sawSecondOver12 && !sawFirstOver12 {
		return labelDateUSSlash, ruleNameDateSlash, true
	}
	return label, ruleNameDateSlash, true
}

// ruleShortDateAmbiguity mirrors ruleDateSlashAmbiguity for the
// unpadded short_mdy / short_dmy pair, delimited by '-'.
func ruleShortDateAmbiguity(label string, values []string, _ map[string]int) (string, string, bool) {
	if label != labelDateShortMDY && label != labelDateShortDMY {
		return "", "", false
	}
	sawFirstOver12 := false
	sawSecondOver12 := false
	for _, v := range values {
		parts := strings.Split(v, "-")
		if len(parts) != 3 {
			continue
		}
		a, errA := strconv.Atoi(parts[0])
		b, errB := strconv.Atoi(parts[1])
		if errA != nil || errB != nil {
			continue
		}
		if a > 12 {
			sawFirstOver12 = true
		}
		if b > 12 {
			sawSecondOver12 = true
		}
	}
	if sawFirstOver12 && !sawSecondOver12 {
		return labelDateShortDMY, ruleNameShortDate, true
	}
	if sawSecondOver12 && !sawFirstOver12 {
		return labelDateShortMDY, ruleNameShortDate, true
	}
	return label, ruleNameShortDate, true
}

// ruleCoordinateRange: a column voting between latitude and longitude
// is longitude the moment any sampled value falls outside [-90, 90].
func ruleCoordinateRange(label string, values []string, _ map[string]int) (string, string, bool) {
	if label != labelLatitude && label != labelLongitude {
		return "", "", false
	}
	for _, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		if f < -90 || f > 90 {
			return labelLongitude, ruleNameCoordinateRange, true
		}
	}
	return label, ruleNameCoordinateRange, true
}

// ruleYearDetection must fire before sequential-integer detection: a
// column where decimal_number, street_number, year, or postal_code
// dominates but at least 80% of non-null trimmed values are 4-digit
// integers in [1900, 2100] reads as bare years.
func ruleYearDetection(label string, values []string, _ map[string]int) (string, string, bool) {
	switch label {
	case labelDecimalNumber, labelStreetNumber, labelYear, labelPostalCode:
	default:
		return "", "", false
	}
	total := 0
	yearlike := 0
	for _, v := range values {
		total++
		trimmed := strings.TrimSpace(v)
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			continue
		}
		if len(trimmed) == 4 && n >= yearMin && n <= yearMax {
			yearlike++
		}
	}
	if total > 0 && float64(yearlike)/float64(total) >= yearDetectionThreshold {
		return labelYear, ruleNameYearDetection, true
	}
	return "", "", false
}

// rulePostalCodeYearExclusion keeps a genuine 4-digit-year column from
// being reported as a postal code just because the digit shape
// overlaps: a postal_code plurality whose integer values are at least
// 80% 4-digit years in [1900, 2100] is relabeled to year. It counts
// only integer values, while ruleYearDetection, which runs first and
// also covers postal_code, counts every sampled value.
func rulePostalCodeYearExclusion(label string, values []string, _ map[string]int) (string, string, bool) {
	if label != labelPostalCode {
		return "", "", false
	}
	total := 0
	yearlike := 0
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			continue
		}
		total++
		if len(trimmed) == 4 && n >= yearMin && n <= yearMax {
			yearlike++
		}
	}
	if total > 0 && float64(yearlike)/float64(total) >= yearDetectionThreshold {
		return labelYear, ruleNamePostalCodeYear, true
	}
	return "", "", false
}

// rulePortDetection: a column of integers that are all valid port
// numbers (1-65535), at least 60% of them well-known service ports
// (22, 80, 443, 3306, 5432, 8080, ...), is a port column rather than a
// generic integer.
func rulePortDetection(label string, values []string, _ map[string]int) (string, string, bool) {
	if label != labelIntegerNumber && label != labelIncrement {
		return "", "", false
	}
	wellKnownPorts := map[int]bool{20: true, 21: true, 22: true, 23: true, 25: true, 53: true,
		80: true, 110: true, 143: true, 443: true, 465: true, 587: true, 993: true, 995: true,
		3306: true, 3389: true, 5432: true, 5672: true, 5900: true, 6379: true, 8080: true,
		8443: true, 8888: true, 9090: true, 9200: true, 9300: true, 27017: true}
	total := 0
	portlike := 0
	wellKnown := 0
	for _, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			continue
		}
		total++
		if n >= 1 && n <= 65535 {
			portlike++
			if wellKnownPorts[n] {
				wellKnown++
			}
		}
	}
	if total > 0 && portlike == total && float64(wellKnown)/float64(total) >= 0.6 {
		return labelPort, ruleNamePortDetection, true
	}
	return "", "", false
}

// ruleSequentialIntegerDetection: a column of integers increasing by
// exactly 1 (a row id / autoincrement key) reports as increment
// rather than a generic integer_number. Does not fire when year
// detection has already claimed the column (that rule runs first).
func ruleSequentialIntegerDetection(label string, values []string, _ map[string]int) (string, string, bool) {
	if label != labelIntegerNumber {
		return "", "", false
	}
	var nums []int
	for _, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return "", "", false
		}
		nums = append(nums, n)
	}
	if len(nums) < 3 {
		return "", "", false
	}
	for i := 1; i < len(nums); i++ {
		if nums[i] != nums[i-1]+1 {
			return "", "", false
		}
	}
	return labelIncrement, ruleNameSequentialInt, true
}

// ruleStreetNumberDetection: small positive integers, none port-like
// in scale beyond 5 digits and none forming a strict sequential run,
// paired with an integer_number/increment plurality, read as street
// numbers when every sample is under 10000 and at least one repeats
// (a real address book reuses common street numbers across streets).
func ruleStreetNumberDetection(label string, values []string, _ map[string]int) (string, string, bool) {
	if label != labelIntegerNumber && label != labelIncrement {
		return "", "", false
	}
	seen := map[int]bool{}
	dup := false
	total := 0
	for _, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return "", "", false
		}
		if n < 1 || n >= 10000 {
			return "", "", false
		}
		total++
		if seen[n] {
			dup = true
		}
		seen[n] = true
	}
	if total >= 5 && dup {
		return labelStreetNumber, ruleNameStreetNumber, true
	}
	return "", "", false
}

// rulePostalCodeShapeDetection: a column of fixed-width digit strings
// (with leading zeros preserved, meaning it was not read as a number)
// at exactly 5 characters and not year-like is a postal code.
func rulePostalCodeShapeDetection(label string, values []string, _ map[string]int) (string, string, bool) {
	if label != labelPostalCode {
		return "", "", false
	}
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if len(trimmed) != 5 {
			return "", "", false
		}
		if _, err := strconv.Atoi(trimmed); err != nil {
			return "", "", false
		}
	}
	return labelPostalCode, ruleNamePostalCodeShape, true
}
