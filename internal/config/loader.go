// Package config loads and validates the Kanboard connection settings from
// the environment, an optional .env file and an optional config file. It
// produces the immutable kanboard.Config consumed by the client; it performs
// no network access.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kanboardtools/kanboard-mcp/internal/kanboard"
)

const (
	// EnvPrefix is the prefix for all recognized environment variables,
	// e.g. KANBOARD_URL, KANBOARD_API_TOKEN.
	EnvPrefix = "KANBOARD"

	configName = ".kanboard-mcp"
)

// validate caches struct metadata, one instance per process.
var validate = validator.New()

// Load builds the connection configuration. Precedence follows viper:
// environment variables (including those loaded from a .env file in the
// working directory) override values from an optional config file, which
// override the defaults. The returned error is always of the shared kanboard
// error family with the configuration kind.
func Load(cfgFile string) (kanboard.Config, error) {
	// A missing .env is fine; values from an existing one become plain
	// environment variables before viper reads anything.
	_ = godotenv.Load()

	return load(viper.New(), cfgFile)
}

func load(v *viper.Viper, cfgFile string) (kanboard.Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("url", "")
	v.SetDefault("api_token", "")
	v.SetDefault("username", kanboard.DefaultUsername)
	v.SetDefault("auth_header", "")
	v.SetDefault("verify_ssl", true)
	v.SetDefault("timeout", kanboard.DefaultTimeout)
	v.SetDefault("max_retries", kanboard.DefaultMaxRetries)
	v.SetDefault("retry_delay", kanboard.DefaultRetryDelay)
	v.SetDefault("debug", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return kanboard.Config{}, configError(fmt.Sprintf("read config file %s: %v", cfgFile, err), err)
		}
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return kanboard.Config{}, configError(fmt.Sprintf("read config file %s: %v", v.ConfigFileUsed(), err), err)
			}
			// No config file is the normal case; env vars carry everything.
		}
	}

	var cfg kanboard.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return kanboard.Config{}, configError(fmt.Sprintf("parse configuration: %v", err), err)
	}

	cfg.URL = normalizeURL(cfg.URL)

	if err := validate.Struct(cfg); err != nil {
		return kanboard.Config{}, configError(describeValidationError(err), err)
	}
	return cfg, nil
}

// normalizeURL appends the jsonrpc.php endpoint when the operator configured
// the Kanboard base URL instead of the RPC entry point.
func normalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" || strings.HasSuffix(u, "/jsonrpc.php") {
		return u
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return u // leave it for validation to reject
	}
	return strings.TrimSuffix(u, "/") + "/jsonrpc.php"
}

func describeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	var problems []string
	for _, fe := range verrs {
		switch fe.Field() {
		case "URL":
			if fe.Tag() == "required" {
				problems = append(problems, "KANBOARD_URL is required")
			} else {
				problems = append(problems, fmt.Sprintf("KANBOARD_URL %q must be an http(s) URL", fe.Value()))
			}
		case "APIToken":
			problems = append(problems, "KANBOARD_API_TOKEN is required")
		case "Timeout":
			problems = append(problems, fmt.Sprintf("KANBOARD_TIMEOUT must be positive, got %v", fe.Value()))
		case "MaxRetries":
			problems = append(problems, fmt.Sprintf("KANBOARD_MAX_RETRIES must be non-negative, got %v", fe.Value()))
		case "RetryDelay":
			problems = append(problems, fmt.Sprintf("KANBOARD_RETRY_DELAY must be non-negative, got %v", fe.Value()))
		default:
			problems = append(problems, fe.Error())
		}
	}
	return strings.Join(problems, "; ")
}

func configError(message string, cause error) error {
	return &kanboard.Error{Kind: kanboard.KindConfiguration, Message: message, Err: cause}
}
