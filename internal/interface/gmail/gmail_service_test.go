package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"flightscan-service/pkg/logger"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

func encode(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

// fakeGmail serves canned list pages per query and full messages per ID.
type fakeGmail struct {
	t        *testing.T
	pages    map[string][]gmail.ListMessagesResponse
	messages map[string]gmail.Message
}

func (f *fakeGmail) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const prefix = "/gmail/v1/users/me/messages"
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == prefix:
		q := r.URL.Query()
		if q.Get("includeSpamTrash") != "true" {
			f.t.Errorf("list without includeSpamTrash: %s", r.URL.RawQuery)
		}
		pages := f.pages[q.Get("q")]
		idx := 0
		if tok := q.Get("pageToken"); tok != "" {
			idx = int(tok[0] - '0')
		}
		if idx >= len(pages) {
			json.NewEncoder(w).Encode(gmail.ListMessagesResponse{})
			return
		}
		json.NewEncoder(w).Encode(pages[idx])
	case strings.HasPrefix(r.URL.Path, prefix+"/"):
		if r.URL.Query().Get("format") != "full" {
			f.t.Errorf("get without format=full: %s", r.URL.RawQuery)
		}
		msg, ok := f.messages[strings.TrimPrefix(r.URL.Path, prefix+"/")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"code":404,"message":"Not Found"}}`))
			return
		}
		json.NewEncoder(w).Encode(msg)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestService(t *testing.T, fake *fakeGmail, queries []string) *GmailService {
	t.Helper()
	fake.t = t
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	svc, err := NewGmailServiceWithOptions(context.Background(), queries, logger.NewNop(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("NewGmailServiceWithOptions() error = %v", err)
	}
	return svc
}

func TestListMessageIDs_PagesAndDeduplicates(t *testing.T) {
	fake := &fakeGmail{
		pages: map[string][]gmail.ListMessagesResponse{
			"q1": {
				{Messages: []*gmail.Message{{Id: "a"}, {Id: "b"}}, NextPageToken: "1"},
				{Messages: []*gmail.Message{{Id: "c"}}},
			},
			"q2": {
				{Messages: []*gmail.Message{{Id: "b"}, {Id: "d"}}},
			},
		},
	}
	svc := newTestService(t, fake, []string{"q1", "q2", "q3"})

	ids, err := svc.ListMessageIDs(context.Background())
	if err != nil {
		t.Fatalf("ListMessageIDs() error = %v", err)
	}
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("ListMessageIDs() = %v, want %v", ids, want)
	}
}

func TestFetchEmail_PrefersPlainText(t *testing.T) {
	fake := &fakeGmail{
		messages: map[string]gmail.Message{
			"m1": {
				Id: "m1",
				Payload: &gmail.MessagePart{
					MimeType: "multipart/alternative",
					Headers: []*gmail.MessagePartHeader{
						{Name: "From", Value: "IndiGo <noreply@goindigo.in>"},
						{Name: "Subject", Value: "Your itinerary"},
						{Name: "Date", Value: "Mon, 15 Jan 2024 10:00:00 +0530"},
					},
					Parts: []*gmail.MessagePart{
						{MimeType: "text/html", Body: &gmail.MessagePartBody{Data: encode("<p>html body</p>")}},
						{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: encode("Flight 6E 2341")}},
					},
				},
			},
		},
	}
	svc := newTestService(t, fake, []string{"q"})

	email, err := svc.FetchEmail(context.Background(), "m1")
	if err != nil {
		t.Fatalf("FetchEmail() error = %v", err)
	}
	if email.EmailID != "m1" || email.From != "IndiGo <noreply@goindigo.in>" || email.Subject != "Your itinerary" {
		t.Fatalf("unexpected headers: %+v", email)
	}
	if email.DateHeader != "Mon, 15 Jan 2024 10:00:00 +0530" {
		t.Fatalf("DateHeader = %q", email.DateHeader)
	}
	if email.Body != "Flight 6E 2341" {
		t.Fatalf("Body = %q, want plain text part", email.Body)
	}
}

func TestFetchEmail_NotFound(t *testing.T) {
	svc := newTestService(t, &fakeGmail{}, []string{"q"})

	if _, err := svc.FetchEmail(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for missing message")
	}
}

func TestMessageBody(t *testing.T) {
	tests := []struct {
		name    string
		payload *gmail.MessagePart
		want    string
	}{
		{
			name: "html only is flattened",
			payload: &gmail.MessagePart{
				MimeType: "multipart/mixed",
				Parts: []*gmail.MessagePart{{
					MimeType: "multipart/alternative",
					Parts: []*gmail.MessagePart{
						{MimeType: "text/html", Body: &gmail.MessagePartBody{Data: encode("<table><tr><td>From</td><td>DEL</td></tr></table>")}},
					},
				}},
			},
			want: "From DEL",
		},
		{
			name: "plain parts concatenate",
			payload: &gmail.MessagePart{
				MimeType: "multipart/mixed",
				Parts: []*gmail.MessagePart{
					{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: encode("one ")}},
					{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: encode("two")}},
				},
			},
			want: "one two",
		},
		{
			name:    "single plain payload, unpadded",
			payload: &gmail.MessagePart{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: base64.RawURLEncoding.EncodeToString([]byte("PNR AB12CD"))}},
			want:    "PNR AB12CD",
		},
		{
			name:    "attachment without data",
			payload: &gmail.MessagePart{MimeType: "application/pdf", Body: &gmail.MessagePartBody{AttachmentId: "x"}},
			want:    "",
		},
		{
			name:    "nil payload",
			payload: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := messageBody(tt.payload); got != tt.want {
				t.Errorf("messageBody() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeBase64URL_InvalidUTF8(t *testing.T) {
	got := decodeBase64URL(base64.URLEncoding.EncodeToString([]byte{'o', 'k', 0xff}))
	if got != "ok\uFFFD" {
		t.Fatalf("decodeBase64URL() = %q", got)
	}
}
