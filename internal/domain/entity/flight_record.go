// internal/domain/entity/flight_record.go
package entity

// FlightRecord is one candidate booking extracted from one email.
// Every field uses "" for unknown, never a nil or placeholder value.
type FlightRecord struct {
	FlightDate   string `json:"date" yaml:"date" bson:"flightDate"`
	Airline      string `json:"airline" yaml:"airline" bson:"airline"`
	FlightNumber string `json:"flightNumber" yaml:"flightNumber" bson:"flightNumber"`
	FromCode     string `json:"from" yaml:"from" bson:"fromCode"`
	ToCode       string `json:"to" yaml:"to" bson:"toCode"`
	BookingRef   string `json:"bookingRef" yaml:"bookingRef" bson:"bookingRef"`
	Subject      string `json:"emailSubject" yaml:"emailSubject" bson:"subject"`
	ReceivedDate string `json:"emailDate" yaml:"emailDate" bson:"receivedDate"`
	MessageID    string `json:"-" yaml:"-" bson:"messageId"`
}

// Columns is the fixed tabular column order for exported records.
var Columns = []string{
	"Date",
	"Airline",
	"Flight Number",
	"From",
	"To",
	"PNR/Booking Ref",
	"Email Subject",
	"Email Date",
}

// Row returns the record's values in Columns order.
func (r FlightRecord) Row() []string {
	return []string{
		r.FlightDate,
		r.Airline,
		r.FlightNumber,
		r.FromCode,
		r.ToCode,
		r.BookingRef,
		r.Subject,
		r.ReceivedDate,
	}
}

// Richness counts the populated booking fields, 0 to 6.
func (r FlightRecord) Richness() int {
	score := 0
	for _, v := range []string{r.FlightNumber, r.FromCode, r.ToCode, r.Airline, r.FlightDate, r.BookingRef} {
		if v != "" {
			score++
		}
	}
	return score
}

// HasRoute reports whether both airport codes are known.
func (r FlightRecord) HasRoute() bool {
	return r.FromCode != "" && r.ToCode != ""
}
