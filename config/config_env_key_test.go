package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeEnvKey_ChorechartSections(t *testing.T) {
	existing := map[string]any{
		"web": map[string]any{
			"cookieName":      "",
			"flashCookieName": "",
		},
		"database": map[string]any{
			"sqlitePath": "",
		},
		"auth": map[string]any{
			"accessTTL": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "WEB_COOKIENAME", want: "web.cookieName"},
		{envKey: "WEB_FLASHCOOKIENAME", want: "web.flashCookieName"},
		{envKey: "DATABASE_SQLITEPATH", want: "database.sqlitePath"},
		{envKey: "AUTH_ACCESSTTL", want: "auth.accessTTL"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Database.Driver != "postgres" {
		t.Fatalf("driver = %q, want postgres", cfg.Database.Driver)
	}
	if cfg.Auth.AccessTTL != defaultAccessTTL || cfg.Auth.RefreshTTL != defaultRefreshTTL {
		t.Fatalf("unexpected token TTLs %v/%v", cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)
	}
	if cfg.PubSub.Provider != "noop" {
		t.Fatalf("pubsub provider = %q, want noop", cfg.PubSub.Provider)
	}

	loc, err := cfg.LedgerLocation()
	if err != nil {
		t.Fatalf("LedgerLocation: %v", err)
	}
	if loc.String() != "UTC" {
		t.Fatalf("ledger location = %s, want UTC", loc)
	}
}
