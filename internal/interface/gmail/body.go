package gmail

import (
	"encoding/base64"
	"strings"

	"flightscan-service/pkg/htmltext"

	"google.golang.org/api/gmail/v1"
)

// messageBody returns the plain text parts of a payload, or the flattened
// HTML parts when there is no plain text.
func messageBody(payload *gmail.MessagePart) string {
	plain, html := collectParts(payload)
	if plain != "" {
		return plain
	}
	if html != "" {
		return htmltext.Flatten(html)
	}
	return ""
}

func collectParts(part *gmail.MessagePart) (plain, html string) {
	if part == nil {
		return "", ""
	}

	switch part.MimeType {
	case "text/plain":
		return partData(part), ""
	case "text/html":
		return "", partData(part)
	}

	for _, sub := range part.Parts {
		p, h := collectParts(sub)
		plain += p
		html += h
	}
	return plain, html
}

func partData(part *gmail.MessagePart) string {
	if part.Body == nil || part.Body.Data == "" {
		return ""
	}
	return decodeBase64URL(part.Body.Data)
}

// decodeBase64URL accepts padded and unpadded base64url and replaces
// invalid UTF-8 sequences.
func decodeBase64URL(data string) string {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return ""
	}
	return strings.ToValidUTF8(string(raw), "\uFFFD")
}
