package parser

import (
	"regexp"
	"strings"
)

var senderDomainPattern = regexp.MustCompile(`@([\w.-]+)`)

// ExtractAirline names the operating airline. The sender domain is
// trusted first, then the flight number designator, then any airline key
// or name mentioned in the text.
func ExtractAirline(text, sender, flightNumber string) string {
	if name := airlineBySender(sender); name != "" {
		return name
	}
	if name := airlineByDesignator(flightNumber); name != "" {
		return name
	}
	return airlineByMention(text)
}

func airlineBySender(sender string) string {
	m := senderDomainPattern.FindStringSubmatch(sender)
	if len(m) < 2 {
		return ""
	}
	domain := strings.ReplaceAll(strings.ToLower(m[1]), ".", "")
	for _, a := range knownAirlines {
		if strings.Contains(domain, a.Key) {
			return a.Name
		}
	}
	return ""
}

func airlineByDesignator(flightNumber string) string {
	if len(flightNumber) < 2 {
		return ""
	}
	name, _ := AirlineForCode(flightNumber[:2])
	return name
}

func airlineByMention(text string) string {
	lower := strings.ToLower(text)
	for _, a := range knownAirlines {
		if strings.Contains(lower, a.Key) || strings.Contains(lower, strings.ToLower(a.Name)) {
			return a.Name
		}
	}
	return ""
}
