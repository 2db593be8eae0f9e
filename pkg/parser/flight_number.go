package parser

import (
	"regexp"
	"strings"
)

var (
	// Two-character designator, optional space, one to four digits.
	flightNumberPattern = regexp.MustCompile(`\b([A-Z0-9]{2})\s?(\d{1,4})\b`)

	// Designator introduced by "flight", "flt" or "flt." and optional "no".
	flightNumberCtxPattern = regexp.MustCompile(`(?i)(?:flight|flt|flt\.)\s*(?:no\.?\s*)?([A-Z0-9]{2}\s?\d{1,4})`)
)

var flightNumberSteps = []step{
	flightNumberByDesignator,
	flightNumberByContext,
}

// ExtractFlightNumber returns an IATA style flight number such as "AI302"
// or "6E2341", or "" when none is found.
func ExtractFlightNumber(text string) string {
	return firstOf(flightNumberSteps, text)
}

// flightNumberByDesignator accepts the first match whose designator is a
// known airline code or is shaped like one (two letters).
func flightNumberByDesignator(text string) string {
	for _, m := range flightNumberPattern.FindAllStringSubmatch(text, -1) {
		code, num := m[1], m[2]
		if _, known := AirlineForCode(code); known || isAlpha(code) {
			return code + num
		}
	}
	return ""
}

// flightNumberByContext keeps the capture's case as written; only spaces
// are removed.
func flightNumberByContext(text string) string {
	m := flightNumberCtxPattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.Join(strings.Fields(m[1]), "")
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return s != ""
}
