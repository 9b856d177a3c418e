package kanboard

import "time"

// Defaults applied by config.Load when an option is not set.
const (
	DefaultUsername   = "jsonrpc"
	DefaultTimeout    = 30
	DefaultMaxRetries = 3
	DefaultRetryDelay = 1.0
)

// Config holds the connection parameters for one Kanboard endpoint. It is
// built once at startup by the config package and never mutated afterwards;
// the client keeps its own copy.
type Config struct {
	// URL is the JSON-RPC endpoint, e.g. https://kanboard.example.com/jsonrpc.php.
	URL string `mapstructure:"url" validate:"required,http_url"`
	// APIToken authenticates every request.
	APIToken string `mapstructure:"api_token" validate:"required"`
	// Username selects the authentication mode: the reserved "jsonrpc" user
	// authenticates as the application, anything else as that named user.
	Username string `mapstructure:"username"`
	// AuthHeader, when set, names a custom header that carries the Basic
	// credentials instead of Authorization. Used behind reverse proxies that
	// consume the standard header themselves.
	AuthHeader string `mapstructure:"auth_header"`
	// VerifySSL disables TLS certificate verification when false.
	VerifySSL bool `mapstructure:"verify_ssl"`
	// Timeout is the per-attempt request timeout in seconds.
	Timeout int `mapstructure:"timeout" validate:"gt=0"`
	// MaxRetries is the total attempt budget for connection-level failures.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0"`
	// RetryDelay is the constant delay between attempts, in seconds.
	RetryDelay float64 `mapstructure:"retry_delay" validate:"gte=0"`
	// Debug enables attempt-level logging on stderr.
	Debug bool `mapstructure:"debug"`
}

// ApplicationAuth reports whether the client authenticates as the
// application principal rather than a named user.
func (c Config) ApplicationAuth() bool {
	return c.Username == "" || c.Username == DefaultUsername
}

// BasicAuth returns the HTTP Basic credentials for the configured mode.
func (c Config) BasicAuth() (user, password string) {
	if c.ApplicationAuth() {
		return DefaultUsername, c.APIToken
	}
	return c.Username, c.APIToken
}

func (c Config) timeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func (c Config) retryDelay() time.Duration {
	return time.Duration(c.RetryDelay * float64(time.Second))
}

func (c Config) attempts() int {
	if c.MaxRetries < 1 {
		return 1
	}
	return c.MaxRetries
}
