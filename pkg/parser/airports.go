package parser

import "regexp"

var (
	// Keywords are matched in any case; the captured token is checked for
	// upper case afterwards by IsValidAirport.
	fromAirportPattern = regexp.MustCompile(`(?i)(?:from|departure|depart|origin)\s*:?\s*.{0,30}?\b([A-Z]{3})\b`)
	toAirportPattern   = regexp.MustCompile(`(?i)(?:to|arrival|arrive|destination)\s*:?\s*.{0,30}?\b([A-Z]{3})\b`)

	// Bare "DEL → BOM" style route, upper case only.
	routePattern = regexp.MustCompile(`\b([A-Z]{3})\s*(?:→|->|–|—|-)\s*([A-Z]{3})\b`)
)

// ExtractAirports returns the origin and destination airport codes.
// Keyword scoped matches are preferred; a bare route only fills the
// sides that are still empty.
func ExtractAirports(text string) (from, to string) {
	from = firstValidAirport(fromAirportPattern, text)
	to = firstValidAirport(toAirportPattern, text)

	if from != "" && to != "" {
		return from, to
	}

	if m := routePattern.FindStringSubmatch(text); len(m) == 3 {
		if from == "" && IsValidAirport(m[1]) {
			from = m[1]
		}
		if to == "" && IsValidAirport(m[2]) {
			to = m[2]
		}
	}
	return from, to
}

// firstValidAirport walks keyword occurrences in order and returns the
// first captured token that passes the validity filter.
func firstValidAirport(pattern *regexp.Regexp, text string) string {
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		if IsValidAirport(m[1]) {
			return m[1]
		}
	}
	return ""
}
