package config

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
)

func clearKanboardEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"KANBOARD_URL", "KANBOARD_API_TOKEN", "KANBOARD_USERNAME",
		"KANBOARD_AUTH_HEADER", "KANBOARD_VERIFY_SSL", "KANBOARD_TIMEOUT",
		"KANBOARD_MAX_RETRIES", "KANBOARD_RETRY_DELAY", "KANBOARD_DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearKanboardEnv(t)
	t.Setenv("KANBOARD_URL", "https://x/jsonrpc.php")
	t.Setenv("KANBOARD_API_TOKEN", "tok123")

	cfg, err := load(viper.New(), "")
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.URL != "https://x/jsonrpc.php" {
		t.Errorf("URL = %q, want https://x/jsonrpc.php", cfg.URL)
	}
	if cfg.APIToken != "tok123" {
		t.Errorf("APIToken = %q, want tok123", cfg.APIToken)
	}
	if !cfg.ApplicationAuth() {
		t.Error("ApplicationAuth() = false, want application mode when no username is set")
	}
	if cfg.Username != kanboard.DefaultUsername {
		t.Errorf("Username = %q, want default %q", cfg.Username, kanboard.DefaultUsername)
	}
	if !cfg.VerifySSL {
		t.Error("VerifySSL = false, want default true")
	}
	if cfg.Timeout != kanboard.DefaultTimeout {
		t.Errorf("Timeout = %d, want default %d", cfg.Timeout, kanboard.DefaultTimeout)
	}
	if cfg.MaxRetries != kanboard.DefaultMaxRetries {
		t.Errorf("MaxRetries = %d, want default %d", cfg.MaxRetries, kanboard.DefaultMaxRetries)
	}
	if cfg.RetryDelay != kanboard.DefaultRetryDelay {
		t.Errorf("RetryDelay = %v, want default %v", cfg.RetryDelay, kanboard.DefaultRetryDelay)
	}
	if cfg.Debug {
		t.Error("Debug = true, want default false")
	}
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantMsg string
	}{
		{
			name:    "missing url",
			env:     map[string]string{"KANBOARD_API_TOKEN": "tok123"},
			wantMsg: "KANBOARD_URL",
		},
		{
			name:    "missing api token",
			env:     map[string]string{"KANBOARD_URL": "https://x/jsonrpc.php"},
			wantMsg: "KANBOARD_API_TOKEN",
		},
		{
			name: "url without scheme",
			env: map[string]string{
				"KANBOARD_URL":       "kanboard.example.com",
				"KANBOARD_API_TOKEN": "tok123",
			},
			wantMsg: "http(s)",
		},
		{
			name: "unparseable timeout",
			env: map[string]string{
				"KANBOARD_URL":       "https://x/jsonrpc.php",
				"KANBOARD_API_TOKEN": "tok123",
				"KANBOARD_TIMEOUT":   "not-a-number",
			},
			wantMsg: "parse configuration",
		},
		{
			name: "zero timeout",
			env: map[string]string{
				"KANBOARD_URL":       "https://x/jsonrpc.php",
				"KANBOARD_API_TOKEN": "tok123",
				"KANBOARD_TIMEOUT":   "0",
			},
			wantMsg: "KANBOARD_TIMEOUT",
		},
		{
			name: "negative max retries",
			env: map[string]string{
				"KANBOARD_URL":         "https://x/jsonrpc.php",
				"KANBOARD_API_TOKEN":   "tok123",
				"KANBOARD_MAX_RETRIES": "-1",
			},
			wantMsg: "KANBOARD_MAX_RETRIES",
		},
		{
			name: "negative retry delay",
			env: map[string]string{
				"KANBOARD_URL":         "https://x/jsonrpc.php",
				"KANBOARD_API_TOKEN":   "tok123",
				"KANBOARD_RETRY_DELAY": "-0.5",
			},
			wantMsg: "KANBOARD_RETRY_DELAY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearKanboardEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := load(viper.New(), "")
			if err == nil {
				t.Fatal("load() error = nil, want configuration error")
			}
			if !kanboard.IsKind(err, kanboard.KindConfiguration) {
				t.Fatalf("load() error = %v, want configuration kind", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("load() error = %q, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadCustomAuthHeader(t *testing.T) {
	clearKanboardEnv(t)
	t.Setenv("KANBOARD_URL", "https://x/jsonrpc.php")
	t.Setenv("KANBOARD_API_TOKEN", "tok123")
	t.Setenv("KANBOARD_AUTH_HEADER", "X-API-Auth")

	cfg, err := load(viper.New(), "")
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.AuthHeader != "X-API-Auth" {
		t.Fatalf("AuthHeader = %q, want X-API-Auth", cfg.AuthHeader)
	}
}

func TestLoadNormalizesURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "already endpoint", url: "https://x/jsonrpc.php", want: "https://x/jsonrpc.php"},
		{name: "base url", url: "https://kanboard.example.com", want: "https://kanboard.example.com/jsonrpc.php"},
		{name: "trailing slash", url: "https://kanboard.example.com/", want: "https://kanboard.example.com/jsonrpc.php"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearKanboardEnv(t)
			t.Setenv("KANBOARD_URL", tt.url)
			t.Setenv("KANBOARD_API_TOKEN", "tok123")

			cfg, err := load(viper.New(), "")
			if err != nil {
				t.Fatalf("load() error = %v", err)
			}
			if cfg.URL != tt.want {
				t.Fatalf("URL = %q, want %q", cfg.URL, tt.want)
			}
		})
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	clearKanboardEnv(t)

	fs := afero.NewMemMapFs()
	content := []byte(
		"url: https://kanboard.internal/jsonrpc.php\n" +
			"api_token: filetoken\n" +
			"username: alice\n" +
			"verify_ssl: false\n" +
			"timeout: 10\n" +
			"max_retries: 5\n" +
			"retry_delay: 2.5\n")
	if err := afero.WriteFile(fs, "/etc/kanboard-mcp.yaml", content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	v := viper.New()
	v.SetFs(fs)
	cfg, err := load(v, "/etc/kanboard-mcp.yaml")
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if cfg.URL != "https://kanboard.internal/jsonrpc.php" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.APIToken != "filetoken" {
		t.Errorf("APIToken = %q, want filetoken", cfg.APIToken)
	}
	if cfg.ApplicationAuth() {
		t.Error("ApplicationAuth() = true, want named-user mode for username alice")
	}
	if cfg.VerifySSL {
		t.Error("VerifySSL = true, want false from file")
	}
	if cfg.Timeout != 10 || cfg.MaxRetries != 5 || cfg.RetryDelay != 2.5 {
		t.Errorf("numeric options = (%d, %d, %v), want (10, 5, 2.5)", cfg.Timeout, cfg.MaxRetries, cfg.RetryDelay)
	}
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	clearKanboardEnv(t)

	v := viper.New()
	v.SetFs(afero.NewMemMapFs())
	_, err := load(v, "/nonexistent/kanboard.yaml")
	if err == nil {
		t.Fatal("load() error = nil, want error for missing explicit config file")
	}
	if !kanboard.IsKind(err, kanboard.KindConfiguration) {
		t.Fatalf("load() error = %v, want configuration kind", err)
	}
}
