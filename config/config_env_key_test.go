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
		"ledger": map[string]any{
			"baseUrl": "",
			"apiKey":  "",
		},
		"outbox": map[string]any{
			"path": "",
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
		{envKey: "LEDGER_BASEURL", want: "ledger.baseUrl"},
		{envKey: "LEDGER_API_KEY", want: "ledger.api.key"},
		{envKey: "OUTBOX_PATH", want: "outbox.path"},
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

func TestNormalizeToken(t *testing.T) {
	tests := map[string]string{
		"baseUrl":  "baseurl",
		"base_url": "baseurl",
		"API-Key":  "apikey",
		"":         "",
	}

	for in, want := range tests {
		if got := normalizeToken(in); got != want {
			t.Fatalf("normalizeToken(%q) = %q, want %q", in, got, want)
		}
	}
}
