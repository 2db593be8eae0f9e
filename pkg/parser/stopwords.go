package parser

// set builds a lookup set from a word list.
func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// airportStopwords are three-letter upper-case tokens that show up in
// booking mail but are not airports: common English words, travel and
// fare abbreviations, currencies, time zones.
var airportStopwords = set(
	"THE", "AND", "FOR", "YOU", "ARE", "HAS", "WAS", "HIS", "HER", "OUR",
	"NOT", "BUT", "ALL", "CAN", "HAD", "ONE", "OUT", "DAY", "GET", "HIM",
	"HOW", "ITS", "MAY", "NEW", "NOW", "OLD", "SEE", "WAY", "WHO", "DID",
	"GOT", "LET", "SAY", "SHE", "TOO", "USE", "PNR", "ADD", "COM", "NON",
	"END", "OFF", "RUN", "SET", "TRY", "PUT", "BIG", "FEW", "FAR", "OWN",
	"SAT", "SIT", "TOP", "RED", "HOT", "CUT", "AGO", "YES", "YET", "RAN",
	"BED", "BOX", "BOY", "CAR", "DOG", "EAR", "EAT", "EYE", "FLY", "GAS",
	"GUN", "HIT", "JOB", "KEY", "LAY", "LEG", "LIE", "MAP", "MRS",
	"OIL", "PAY", "PER", "SIX", "SUN", "TEN", "WAR", "WET", "WIN",
	"WON", "AIR", "ACT", "AGE", "AID", "AIM", "ART", "ASK", "BAD",
	"BAR", "BIT", "BUY", "COP", "CRY", "DIE", "DIG", "DRY", "DUE", "ERA",
	"FAN", "FAT", "FEE", "FIT", "FUN", "GAP", "HAT", "ICE", "ILL",
	"JAM", "JET", "LAW", "LAP", "LOG", "LOT", "LOW", "MAN", "MEN", "MET",
	"MIX", "MOB", "MUD", "NET", "NOR", "NUT", "ODD", "PAN", "PEN", "PET",
	"PIN", "PIT", "POT", "RAW", "RIB", "RID", "ROB", "ROD", "ROW", "RUB",
	"SAD", "SIP", "SKI", "TAP", "TAX", "TIE", "TIN", "TIP", "TOE", "TON",
	"TOW", "TOY", "TUB", "VAN", "VIA", "VOW", "WEB", "WIG", "WIT", "WOE",
	"YEN", "ZOO", "FWD", "REF", "INR", "USD", "EUR", "SMS", "OTP", "URL",
	"PDF", "APP", "API", "RSS", "FAQ", "TBA", "TBD", "ETA", "ETD", "GMT",
	"IST", "EST", "PST", "CST", "UTC", "BAG", "DEP", "ARR", "FLT",
	"ONS", "UAE", "USA", "DGR", "VRM", "STD", "STA", "AVL", "CNF", "RAC",
	"GEN", "TAT", "OBC", "INF", "ADT", "CHD", "PAX", "SEQ", "QTY",
	"AMT", "SUB", "TTL", "MAX", "MIN", "AVG", "REQ", "RES",
	"TEL", "ORG", "GOV", "EDU", "MIL", "INT", "EXT", "SRC",
	"DST", "MSG", "ERR", "CMD", "SYS", "BUS", "CAB",
)

// bookingRefStopwords are words and word fragments the labelled
// reference grammars capture from their own surrounding prose.
var bookingRefStopwords = set(
	"NUMBER", "REFERENCE", "BOOKING", "CONFIRM", "DETAIL", "DETAILS",
	"FLIGHT", "STATUS", "CANCEL", "CHANGE", "UPDATE", "ERENCE",
	"RENCE", "UMBER", "ATION", "TICKET", "TRAVEL",
	"PLEASE", "REFUND", "AMOUNT", "TOTAL", "PRICE", "CHARGE",
	"EMAIL", "ISSUE", "BOARD", "CHECK", "PRINT", "VALID",
	"NUMERIC", "STRING", "FORMAT", "RETURN",
)

// IsValidAirport reports whether a captured three-letter token can be an
// airport code: upper-case as written and not a known false positive.
func IsValidAirport(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	_, stop := airportStopwords[code]
	return !stop
}

// isBookingRefStopword reports whether an upper-cased capture is prose.
func isBookingRefStopword(candidate string) bool {
	_, stop := bookingRefStopwords[candidate]
	return stop
}
