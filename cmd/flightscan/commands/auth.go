package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"flightscan-service/internal/infrastructure/oauth"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Obtain a Gmail refresh token",
	Long: `Auth prints a consent URL for read-only Gmail access, waits for the
OAuth callback on GMAIL_REDIRECT_URL and prints the refresh token to
store as GMAIL_REFRESH_TOKEN.`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.GmailClientID == "" || cfg.GmailClientSecret == "" {
		return errors.New("GMAIL_CLIENT_ID and GMAIL_CLIENT_SECRET must be set")
	}
	redirect, err := url.Parse(cfg.GmailRedirectURL)
	if err != nil {
		return fmt.Errorf("invalid GMAIL_REDIRECT_URL: %w", err)
	}

	callbackPath := redirect.Path
	if callbackPath == "" {
		callbackPath = "/"
	}

	gmailOAuth := oauth.NewGmailOAuth(cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRedirectURL, "", log)
	state := uuid.NewString()
	tokens := make(chan *oauth2.Token, 1)

	mux := http.NewServeMux()
	mux.Handle(callbackPath, callbackHandler(gmailOAuth, state, tokens))
	server := &http.Server{Addr: redirect.Host, Handler: mux}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Open this URL in your browser:\n%s\n", gmailOAuth.GenerateAuthURL(state))

	var token *oauth2.Token
	select {
	case token = <-tokens:
	case err := <-serveErr:
		return fmt.Errorf("callback server failed: %w", err)
	case <-cmd.Context().Done():
		return cmd.Context().Err()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	server.Shutdown(shutdownCtx)

	if token.RefreshToken == "" {
		return errors.New("no refresh token returned; revoke the app's access and retry")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nRefresh Token: %s\n\n", token.RefreshToken)
	return nil
}

// callbackHandler exchanges the authorization code and delivers the token once.
func callbackHandler(gmailOAuth *oauth.GmailOAuth, state string, tokens chan<- *oauth2.Token) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "Missing code parameter", http.StatusBadRequest)
			return
		}

		token, err := gmailOAuth.ExchangeCode(r.Context(), code)
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to exchange code: %v", err), http.StatusInternalServerError)
			return
		}

		select {
		case tokens <- token:
		default:
		}
		fmt.Fprintf(w, "Authentication successful! You can close this window.")
	}
}
