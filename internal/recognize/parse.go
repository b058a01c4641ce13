package recognize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	mixedFractionRe = regexp.MustCompile(`^(\d+)\s+(\d+)\s*/\s*(\d+)$`)
	feetInchesRe    = regexp.MustCompile(`^(?:(\d+(?:\.\d+)?)')?\s*(?:(\d+(?:\.\d+)?)(?:\s+(\d+)\s*/\s*(\d+))?\s*")?$`)
)

// ParseDimension converts a recognized annotation text into a numeric value.
//
// Accepted forms:
//
//	24          plain value in the sketch's unit
//	24.5        decimal value
//	3 1/2       mixed fraction
//	12'6"       feet and inches, resolved to feet (12.5)
//	12'         feet only
//	6"          inches only, resolved to feet (0.5)
//	6 1/2"      inches with a fraction
//
// Curly quotes from recognizers that normalize punctuation are accepted.
// Anything else is a non-numeric annotation and returns an error.
func ParseDimension(text string) (float64, error) {
	s := strings.TrimSpace(text)
	s = strings.NewReplacer("’", "'", "‘", "'", "“", `"`, "”", `"`, "″", `"`, "′", "'").Replace(s)

	if s == "" {
		return 0, fmt.Errorf("empty dimension text")
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}

	if m := mixedFractionRe.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den == 0 {
			return 0, fmt.Errorf("zero denominator in %q", text)
		}
		return whole + num/den, nil
	}

	if m := feetInchesRe.FindStringSubmatch(s); m != nil && (m[1] != "" || m[2] != "") {
		var value float64
		if m[1] != "" {
			feet, _ := strconv.ParseFloat(m[1], 64)
			value += feet
		}
		if m[2] != "" {
			inches, _ := strconv.ParseFloat(m[2], 64)
			if m[3] != "" {
				num, _ := strconv.ParseFloat(m[3], 64)
				den, _ := strconv.ParseFloat(m[4], 64)
				if den == 0 {
					return 0, fmt.Errorf("zero denominator in %q", text)
				}
				inches += num / den
			}
			value += inches / 12
		}
		return value, nil
	}

	return 0, fmt.Errorf("unrecognized dimension text %q", text)
}
