package parser

import (
	"regexp"
	"strings"
)

// bookingRefGrammars are tried in order. Each captures one candidate code.
var bookingRefGrammars = []*regexp.Regexp{
	// PNR: ABC123, PNR No. ABC123, pnr number ABC123
	regexp.MustCompile(`(?i)PNR\s*(?:no\.?|number|#|:)?\s*:?\s*\b([A-Z0-9]{5,8})\b`),
	// Booking reference: ABC123, Confirmation code ABC123
	regexp.MustCompile(`(?i)(?:booking\s*(?:ref|reference|id|code|no)|confirmation\s*(?:no|number|code|#))\s*:?\s*\b([A-Z0-9]{5,8})\b`),
	// Reference: ABC123, Ref. No ABC123
	regexp.MustCompile(`(?i)(?:reference|ref\.?)\s*(?:no\.?|number|#|:)?\s*:?\s*\b([A-Z0-9]{6})\b`),
}

// ExtractBookingRef returns the upper-cased booking reference, or "".
// A capture that is a known prose word does not end the search; the next
// grammar is tried instead.
func ExtractBookingRef(text string) string {
	for _, g := range bookingRefGrammars {
		m := g.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		candidate := strings.ToUpper(m[1])
		if isBookingRefStopword(candidate) {
			continue
		}
		return candidate
	}
	return ""
}
