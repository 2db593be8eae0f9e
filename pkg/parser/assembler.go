package parser

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"flightscan-service/internal/domain/entity"
)

// Mail Date header layouts, tried in order after comments are removed.
var receivedDateLayouts = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05",
	"2 Jan 2006 15:04:05",
}

// Parenthesised header comment such as "(UTC)" or "(IST)".
var headerCommentPattern = regexp.MustCompile(`\s*\(.*\)`)

// FullText is the text every extractor reads: subject, a space, body,
// with Unicode whitespace other than newlines turned into plain spaces.
// The patterns' \s only matches ASCII space characters.
func FullText(email entity.Email) string {
	return strings.Map(plainSpace, email.Subject+" "+email.Body)
}

// plainSpace maps every whitespace rune except '\n' to ' '. Newlines are
// kept because they end the date keyword windows.
func plainSpace(r rune) rune {
	if r == '\n' {
		return r
	}
	if unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f) {
		return ' '
	}
	return r
}

// Assemble builds the candidate record for one email. It never fails;
// fields that cannot be extracted are left empty.
func Assemble(email entity.Email) entity.FlightRecord {
	text := FullText(email)

	flightNumber := ExtractFlightNumber(text)
	from, to := ExtractAirports(text)
	receivedDate := ParseReceivedDate(email.DateHeader)

	flightDate := ExtractFlightDate(text)
	if flightDate == "" {
		flightDate = receivedDate
	}

	return entity.FlightRecord{
		FlightDate:   flightDate,
		Airline:      ExtractAirline(text, email.From, flightNumber),
		FlightNumber: flightNumber,
		FromCode:     from,
		ToCode:       to,
		BookingRef:   ExtractBookingRef(text),
		Subject:      email.Subject,
		ReceivedDate: receivedDate,
		MessageID:    email.EmailID,
	}
}

// ParseReceivedDate converts a raw Date header to YYYY-MM-DD in the
// header's own offset, or "" if no layout fits.
func ParseReceivedDate(raw string) string {
	if raw == "" {
		return ""
	}
	clean := strings.TrimSpace(headerCommentPattern.ReplaceAllString(raw, ""))
	for _, layout := range receivedDateLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return t.Format(isoDateLayout)
		}
	}
	return ""
}
