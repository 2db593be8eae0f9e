package gmail

import (
	"context"
	"fmt"

	"flightscan-service/internal/domain/entity"
	"flightscan-service/internal/domain/repository"
	"flightscan-service/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const userID = "me"

// DefaultQueries are the Gmail searches that together cover booking mail
// from airlines and travel platforms.
var DefaultQueries = []string{
	// Generic flight terms
	`"boarding pass"`,
	`"flight confirmation"`,
	`"flight itinerary"`,
	`"e-ticket"`,
	`"booking confirmation" flight`,
	`"trip confirmation" flight`,
	`"PNR"`,
	`"flight booking"`,
	// Active Indian airlines
	"from:indigo subject:itinerary",
	"from:goindigo subject:itinerary",
	"from:airindia",
	"from:airindiaexpress",
	"from:spicejet",
	"from:akasaair",
	"from:allianceair",
	"from:starair",
	"from:flybig",
	// Defunct or renamed Indian airlines
	"from:jetairways",
	"from:goair",
	"from:gofirst",
	"from:airasiago",
	"from:airasia subject:booking",
	"from:airdeccan",
	"from:airsahara",
	"from:kingfisherairlines",
	"from:flygokingfisher",
	"from:airvistara",
	"from:vfrpl",
	"from:aircosta",
	"from:airpegasus",
	"from:trujet",
	"from:paramountairways",
	"from:mdlrairlines",
	"from:zoomair",
	// Booking platforms
	"from:makemytrip flight",
	"from:ixigo flight",
	"from:cleartrip flight",
	"from:yatra flight",
	"from:easemytrip flight",
	"from:goibibo flight",
	"from:happyeasygo flight",
}

// GmailService reads flight mail from a Gmail mailbox
type GmailService struct {
	gmailService *gmail.Service
	queries      []string
	logger       logger.Logger
}

var _ repository.EmailSource = (*GmailService)(nil)

// NewGmailService creates a new Gmail service authorised by tokenSource
func NewGmailService(ctx context.Context, tokenSource oauth2.TokenSource, queries []string, logger logger.Logger) (*GmailService, error) {
	return NewGmailServiceWithOptions(ctx, queries, logger, option.WithTokenSource(tokenSource))
}

// NewGmailServiceWithOptions creates a Gmail service from raw client options
func NewGmailServiceWithOptions(ctx context.Context, queries []string, logger logger.Logger, opts ...option.ClientOption) (*GmailService, error) {
	gmailService, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}
	if len(queries) == 0 {
		queries = DefaultQueries
	}

	return &GmailService{
		gmailService: gmailService,
		queries:      queries,
		logger:       logger.With("component", "gmail"),
	}, nil
}

// ListMessageIDs runs every search query, following result pages, and
// returns the unique message IDs in first-seen order
func (s *GmailService) ListMessageIDs(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var ids []string

	for _, query := range s.queries {
		pageToken := ""
		for {
			call := s.gmailService.Users.Messages.List(userID).
				Q(query).
				IncludeSpamTrash(true).
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}

			resp, err := call.Do()
			if err != nil {
				return nil, fmt.Errorf("failed to list messages for query %q: %w", query, err)
			}

			for _, msg := range resp.Messages {
				if _, ok := seen[msg.Id]; ok {
					continue
				}
				seen[msg.Id] = struct{}{}
				ids = append(ids, msg.Id)
			}

			pageToken = resp.NextPageToken
			if pageToken == "" {
				break
			}
		}
		s.logger.Debug("Query complete", "query", query, "uniqueTotal", len(ids))
	}

	s.logger.Info("Found flight emails", "count", len(ids))
	return ids, nil
}

// FetchEmail retrieves one full message and decodes its body to plain text
func (s *GmailService) FetchEmail(ctx context.Context, id string) (*entity.Email, error) {
	msg, err := s.gmailService.Users.Messages.Get(userID, id).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", id, err)
	}

	email := &entity.Email{EmailID: msg.Id}
	if email.EmailID == "" {
		email.EmailID = id
	}
	if msg.Payload == nil {
		return email, nil
	}

	// Later duplicates of a header win.
	for _, header := range msg.Payload.Headers {
		switch header.Name {
		case "From":
			email.From = header.Value
		case "Subject":
			email.Subject = header.Value
		case "Date":
			email.DateHeader = header.Value
		}
	}
	email.Body = messageBody(msg.Payload)

	return email, nil
}
