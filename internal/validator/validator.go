// Package validator checks values against a taxonomy definition's
// JSON-Schema-subset validation fragment, and applies one of a small
// set of column-level strategies to values that fail.
package validator

import (
	"strconv"

	"github.com/finetype/finetype/internal/taxonomy"
)

// Violation describes one failed validation keyword for one value.
type Violation struct {
	Value  string
	Rule   string
	Detail string
}

// Validate checks value against v, collecting every failing keyword
// rather than stopping at the first: a caller reporting validation
// failures wants the complete list, not just the first hit.
func Validate(value string, v *taxonomy.Validation) []Violation {
	if v == nil {
		return nil
	}
	var violations []Violation

	switch v.Type {
	case "number":
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			violations = append(violations, Violation{Value: value, Rule: "type", Detail: v.Type})
		}
	case "boolean":
		if value != "true" && value != "false" {
			violations = append(violations, Violation{Value: value, Rule: "type", Detail: v.Type})
		}
	}
	if compiled := v.Compiled(); compiled != nil && !compiled.MatchString(value) {
		violations = append(violations, Violation{Value: value, Rule: "pattern", Detail: v.Pattern})
	}
	if v.MinLength != nil && len(value) < *v.MinLength {
		violations = append(violations, Violation{Value: value, Rule: "minLength", Detail: strconv.Itoa(*v.MinLength)})
	}
	if v.MaxLength != nil && len(value) > *v.MaxLength {
		violations = append(violations, Violation{Value: value, Rule: "maxLength", Detail: strconv.Itoa(*v.MaxLength)})
	}
	if v.Minimum != nil || v.Maximum != nil {
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			if v.Minimum != nil && n < *v.Minimum {
				violations = append(violations, Violation{Value: value, Rule: "minimum", Detail: strconv.FormatFloat(*v.Minimum, 'g', -1, 64)})
			}
			if v.Maximum != nil && n > *v.Maximum {
				violations = append(violations, Violation{Value: value, Rule: "maximum", Detail: strconv.FormatFloat(*v.Maximum, 'g', -1, 64)})
			}
		}
	}
	if len(v.Enum) > 0 && !contains(v.Enum, value) {
		violations = append(violations, Violation{Value: value, Rule: "enum", Detail: value})
	}

	return violations
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

// ValidateColumn validates every value against def.Validation,
// returning the subset of values that failed along with their
// violations, in original order.
func ValidateColumn(values []string, def *taxonomy.Definition) map[int][]Violation {
	failures := make(map[int][]Violation)
	if def == nil || def.Validation == nil {
		return failures
	}
	for i, v := range values {
		if vs := Validate(v, def.Validation); len(vs) > 0 {
			failures[i] = vs
		}
	}
	return failures
}
