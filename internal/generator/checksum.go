package generator

// Shared checksum helpers, each a pure function consumed by several
// generator arms below. Grounded on the original generator's own
// luhn_check_digit / ean_check_digit / isbn10_check_digit helpers,
// extended with the additional identifier checksums spec.md requires
// that the original implementation never had arms for (ISIN, CUSIP,
// SEDOL, LEI's ISO 7064 Mod 97-10).

// luhnCheckDigit returns the Luhn check digit for a string of digits,
// read left to right (the digit returned would be appended last).
func luhnCheckDigit(digits string) byte {
	sum := 0
	// The digit immediately preceding the (not-yet-appended) check
	// digit is always doubled first, so parity is keyed off len-1, not
	// len: an odd-length body starts doubling at index 0, not index 1.
	parity := (len(digits) - 1) % 2
	for i, b := range []byte(digits) {
		d := int(b - '0')
		if i%2 == parity {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return byte((10 - sum%10) % 10)
}

// eanCheckDigit computes the GS1 weighted-sum-mod-10 check digit
// (weights alternate 1, 3 from the left). Shared by EAN-13, EAN-8 and
// ISBN-13 (isbn13CheckDigit is an alias of this).
func eanCheckDigit(digits string) byte {
	sum := 0
	for i, b := range []byte(digits) {
		d := int(b - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	return byte((10 - sum%10) % 10)
}

func isbn13CheckDigit(digits string) byte { return eanCheckDigit(digits) }

// isbn10CheckDigit computes the ISBN-10 weighted-sum-mod-11 check
// character over a 9-digit string, returning 'X' for a remainder of 10.
func isbn10CheckDigit(digits string) byte {
	sum := 0
	for i, b := range []byte(digits) {
		d := int(b - '0')
		sum += d * (10 - i)
	}
	remainder := (11 - sum%11) % 11
	if remainder == 10 {
		return 'X'
	}
	return byte('0' + remainder)
}

// alphaExpand expands a letter to its two-digit numeric value
// (A=10..Z=35) for checksum purposes, leaving digits unchanged. Used
// by ISIN and CUSIP-style checksums over alphanumeric identifiers.
func alphaExpand(s string) string {
	out := make([]byte, 0, len(s)*2)
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			out = append(out, byte(c))
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			out = append(out, byte('0'+v/10), byte('0'+v%10))
		case c >= 'a' && c <= 'z':
			v := int(c-'a') + 10
			out = append(out, byte('0'+v/10), byte('0'+v%10))
		}
	}
	return string(out)
}

// isinCheckDigit computes the ISIN check digit: the Luhn digit over
// the numeric expansion (alphaExpand) of the 2-letter country code
// plus 9-character identifier (11 characters total).
func isinCheckDigit(countryAndID string) byte {
	return luhnCheckDigit(alphaExpand(countryAndID))
}

// cusipCheckDigit computes the CUSIP check digit: positions are
// 1-indexed, values at even positions (1-indexed) are doubled, letters
// expand A=10..Z=35 (the CUSIP '*', '@' and '#' characters are not
// handled and count as 0; samples generated here never contain them), digits
// of each (possibly two-digit) value are summed, and the check digit
// is (10 - sum mod 10) mod 10.
func cusipCheckDigit(body string) byte {
	sum := 0
	for i, c := range body {
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case c >= 'A' && c <= 'Z':
			v = int(c-'A') + 10
		case c >= 'a' && c <= 'z':
			v = int(c-'a') + 10
		}
		pos := i + 1
		if pos%2 == 0 {
			v *= 2
		}
		sum += v/10 + v%10
	}
	return byte((10 - sum%10) % 10)
}

// sedolCheckDigit computes the SEDOL check digit over a 6-character
// body (no vowels), weights [1,3,1,7,3,9], letters expand A=10..Z=35.
func sedolCheckDigit(body string) byte {
	weights := [6]int{1, 3, 1, 7, 3, 9}
	sum := 0
	for i, c := range body {
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case c >= 'A' && c <= 'Z':
			v = int(c-'A') + 10
		}
		sum += v * weights[i]
	}
	return byte((10 - sum%10) % 10)
}

// iso7064Mod9710 computes the two ISO 7064 Mod 97-10 check digits used
// by both LEI and IBAN: append "00" to the numeric expansion of body,
// take the value mod 97, subtract from 98.
func iso7064Mod9710(body string) int {
	expanded := alphaExpand(body) + "00"
	remainder := 0
	for _, c := range expanded {
		remainder = (remainder*10 + int(c-'0')) % 97
	}
	return 98 - remainder
}
