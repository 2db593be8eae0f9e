package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GMAIL_POLL_INTERVAL", "")
	t.Setenv("GMAIL_FETCH_WORKERS", "not-a-number")
	t.Setenv("PASSENGER_NAMES", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.GmailPollInterval != time.Hour {
		t.Errorf("GmailPollInterval = %v, want 1h", cfg.GmailPollInterval)
	}
	if cfg.GmailFetchWorkers != 4 {
		t.Errorf("GmailFetchWorkers = %d, want 4", cfg.GmailFetchWorkers)
	}
	if cfg.PassengerNames != nil {
		t.Errorf("PassengerNames = %v, want none", cfg.PassengerNames)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GMAIL_FETCH_WORKERS", "8")
	t.Setenv("PASSENGER_NAMES", "Jane Traveller, ,J Traveller")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/flights")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != "9090" || cfg.GmailFetchWorkers != 8 {
		t.Errorf("unexpected overrides %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.PassengerNames, []string{"Jane Traveller", "J Traveller"}) {
		t.Errorf("PassengerNames = %v", cfg.PassengerNames)
	}
	if cfg.PostgresURI != "postgres://localhost/flights" {
		t.Errorf("PostgresURI = %q", cfg.PostgresURI)
	}
}
