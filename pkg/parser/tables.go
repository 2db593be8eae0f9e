package parser

// airlineName pairs a lookup key with the display name it maps to.
type airlineName struct {
	Key  string
	Name string
}

// knownAirlines is scanned in order; the first key found wins.
var knownAirlines = []airlineName{
	{"airindia", "Air India"},
	{"indigo", "IndiGo"},
	{"goindigo", "IndiGo"},
	{"spicejet", "SpiceJet"},
	{"vistara", "Vistara"},
	{"airvistara", "Vistara"},
	{"akasaair", "Akasa Air"},
	{"airasia", "AirAsia"},
	{"emirates", "Emirates"},
	{"etihad", "Etihad"},
	{"qatar", "Qatar Airways"},
	{"qatarairways", "Qatar Airways"},
	{"singapore", "Singapore Airlines"},
	{"singaporeair", "Singapore Airlines"},
	{"lufthansa", "Lufthansa"},
	{"british", "British Airways"},
	{"britishairways", "British Airways"},
	{"klm", "KLM"},
	{"airfrance", "Air France"},
	{"united", "United Airlines"},
	{"delta", "Delta Airlines"},
	{"american", "American Airlines"},
	{"southwest", "Southwest Airlines"},
	{"thai", "Thai Airways"},
	{"cathay", "Cathay Pacific"},
	{"cathaypacific", "Cathay Pacific"},
	{"jet", "Jet Airways"},
	{"jetairways", "Jet Airways"},
	{"goair", "Go First"},
	{"gofirst", "Go First"},
	{"allianceair", "Alliance Air"},
	{"starair", "Star Air"},
	{"flydubai", "FlyDubai"},
	{"omanair", "Oman Air"},
	{"saudia", "Saudia"},
	{"turkish", "Turkish Airlines"},
	{"turkishairlines", "Turkish Airlines"},
}

// airlineCodes maps IATA two-character airline designators to names.
var airlineCodes = map[string]string{
	"AI": "Air India",
	"6E": "IndiGo",
	"SG": "SpiceJet",
	"UK": "Vistara",
	"QP": "Akasa Air",
	"I5": "AirAsia India",
	"EK": "Emirates",
	"EY": "Etihad",
	"QR": "Qatar Airways",
	"SQ": "Singapore Airlines",
	"LH": "Lufthansa",
	"BA": "British Airways",
	"KL": "KLM",
	"AF": "Air France",
	"UA": "United Airlines",
	"DL": "Delta Airlines",
	"AA": "American Airlines",
	"WN": "Southwest Airlines",
	"TG": "Thai Airways",
	"CX": "Cathay Pacific",
	"9W": "Jet Airways",
	"G8": "Go First",
	"9I": "Alliance Air",
	"S5": "Star Air",
	"FZ": "FlyDubai",
	"WY": "Oman Air",
	"SV": "Saudia",
	"TK": "Turkish Airlines",
}

// AirlineForCode returns the display name for an IATA airline code.
func AirlineForCode(code string) (string, bool) {
	name, ok := airlineCodes[code]
	return name, ok
}

// excludedSubjects are lower-case subject fragments of mail that is never
// a flight booking, even when it quotes flight numbers or codes.
var excludedSubjects = []string{
	"hotel booking",
	"bus booking",
	"bus ticket",
	"credit card",
	"account summary",
	"savings of rs",
	"missed out on saving",
	"message from our ceo",
	"message from the ceo",
	"discounts in dubai",
	"big discounts",
	"credit note",
	"tax invoice",
	"gst invoice",
	"vrl travels",
	"credit card communication",
	"voucher worth",
	"challenge #",
	"intermiles credited",
}
