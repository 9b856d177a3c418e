// Package kanboard implements the resilient client for the Kanboard JSON-RPC
// API. Every remote call goes through Client.Call, which owns authentication,
// per-attempt timeouts, retry of transport failures and classification of
// every failure into the shared Error family.
package kanboard

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
)

// Client is the sole owner of the authenticated session to one Kanboard
// endpoint. The underlying http.Client is safe for concurrent use, so
// handlers may call into one Client from multiple goroutines; each call is an
// independent round trip with no shared per-call state.
type Client struct {
	cfg  Config
	http *http.Client
	user string
	pass string
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	ID      string `json:"id"`
	Params  any    `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// New builds a client for the given configuration. The URL is validated here
// so that a malformed endpoint surfaces as a configuration error before the
// first call. No network traffic happens until Call.
func New(cfg Config) (*Client, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, configErrorf("invalid Kanboard URL %q", cfg.URL)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !cfg.VerifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- operator opt-out via KANBOARD_VERIFY_SSL
	}

	user, pass := cfg.BasicAuth()
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout:   cfg.timeout(),
			Transport: transport,
		},
		user: user,
		pass: pass,
	}, nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// Call invokes a Kanboard API method and returns the decoded result payload
// unchanged. Params may be nil, positional ([]any) or named (map[string]any)
// and are forwarded to the wire as-is.
//
// Only connection-level failures are retried: up to MaxRetries total attempts
// with a constant RetryDelay between them. Protocol errors, rejected
// credentials and configuration problems surface immediately. Every returned
// error is a *Error.
func (c *Client) Call(ctx context.Context, method string, params any) (any, error) {
	if method == "" {
		return nil, configErrorf("method name is required")
	}

	attempts := c.cfg.attempts()
	var lastErr *Error

	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := c.dispatch(ctx, method, params)
		if err == nil {
			if c.cfg.Debug && attempt > 1 {
				fmt.Fprintf(os.Stderr, "[DEBUG] %s succeeded on attempt %d\n", method, attempt)
			}
			return result, nil
		}

		var kerr *Error
		if !errors.As(err, &kerr) {
			return nil, err
		}
		if !kerr.Retryable() {
			return nil, kerr
		}

		lastErr = kerr
		if attempt == attempts {
			break
		}
		if c.cfg.Debug {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s attempt %d/%d failed: %v; retrying in %s\n",
				method, attempt, attempts, kerr, c.cfg.retryDelay())
		}
		select {
		case <-ctx.Done():
			return nil, connError(ctx.Err(), "%s aborted while waiting to retry", method)
		case <-time.After(c.cfg.retryDelay()):
		}
	}

	lastErr.Message = fmt.Sprintf("%s failed after %d attempts: %s", method, attempts, lastErr.Message)
	return nil, lastErr
}

// dispatch performs one JSON-RPC round trip and classifies any failure.
func (c *Client) dispatch(ctx context.Context, method string, params any) (any, error) {
	payload := rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		ID:      uuid.New().String(),
		Params:  params,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, configErrorf("encode %s request: %v", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, configErrorf("build %s request: %v", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.AuthHeader != "" {
		creds := base64.StdEncoding.EncodeToString([]byte(c.user + ":" + c.pass))
		req.Header.Set(c.cfg.AuthHeader, "Basic "+creds)
	} else {
		req.SetBasicAuth(c.user, c.pass)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, connError(err, "%s: %v", method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, authErrorf("credentials rejected by %s (HTTP %d)", c.cfg.URL, resp.StatusCode)
	case resp.StatusCode >= 500:
		return nil, connError(nil, "%s: server returned HTTP %d", method, resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, apiError(0, fmt.Sprintf("%s: server rejected request with HTTP %d", method, resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, connError(err, "%s: read response: %v", method, err)
	}

	var decoded rpcResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, connError(err, "%s: invalid JSON-RPC response: %v", method, err)
	}
	if decoded.Error != nil {
		return nil, apiError(decoded.Error.Code, fmt.Sprintf("%s: %s", method, decoded.Error.Message))
	}

	// Decode the result without reshaping; null stays nil.
	if len(decoded.Result) == 0 || bytes.Equal(decoded.Result, []byte("null")) {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(decoded.Result, &result); err != nil {
		return nil, connError(err, "%s: decode result: %v", method, err)
	}
	return result, nil
}
