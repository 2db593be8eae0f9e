package entity

// Email is one retrieved message reduced to what the scanner reads.
// Body is plain text; HTML flattening happens before an Email is built.
type Email struct {
	EmailID    string `bson:"emailId"`
	From       string `bson:"from"`
	Subject    string `bson:"subject"`
	DateHeader string `bson:"dateHeader"`
	Body       string `bson:"body"`
}
