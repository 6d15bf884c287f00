package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to both platform APIs. It carries no per-command state; one
// Client is built at process start and shared by every command invocation.
type Client struct {
	baseURL    string
	username   string
	password   string
	token      string
	httpClient *http.Client
	log        zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	BaseURL  string // platform URL, e.g. "https://aap.example.com"
	Username string
	Password string
	Token    string        // personal access token; takes precedence over basic auth
	Timeout  time.Duration // applied uniformly to every outbound call (default: 30s)
	// InsecureSkipVerify disables TLS certificate verification, for
	// platforms running with self-signed certificates.
	InsecureSkipVerify bool
	HTTPClient         *http.Client // optional custom HTTP client
	Logger             *zerolog.Logger
}

// NewClient creates a new platform API client.
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if cfg.InsecureSkipVerify {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		}
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		}
	}

	log := zerolog.New(os.Stderr).Level(zerolog.Disabled)
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		token:      cfg.Token,
		httpClient: httpClient,
		log:        log,
	}
}

// SetToken sets the access token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do performs one HTTP request against the platform and decodes the JSON
// response into out. Backend failures are translated into the closed error
// taxonomy here; callers never see raw transport errors.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindUnexpected, Message: "encoding request body", cause: err}
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return &Error{Kind: KindUnexpected, Message: "building request", cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	} else if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	c.log.Debug().Str("method", method).Str("path", path).Msg("api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindUnavailable, Message: unavailableReason(err), cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindUnavailable, Message: "reading response", cause: err}
	}

	c.log.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("api response")

	if resp.StatusCode >= 400 {
		return c.statusError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		dec := json.NewDecoder(bytes.NewReader(respBody))
		dec.UseNumber()
		if err := dec.Decode(out); err != nil {
			return &Error{Kind: KindUnexpected, StatusCode: resp.StatusCode,
				Message: "decoding response", cause: err}
		}
	}
	return nil
}

// statusError maps an error status to the taxonomy. 404 is returned as a
// bare not-found; callers that know the resource and identifier fill those
// in before surfacing it.
func (c *Client) statusError(status int, body []byte) *Error {
	switch {
	case status == http.StatusNotFound:
		return &Error{Kind: KindNotFound, StatusCode: status}
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return &Error{Kind: KindPermissionDenied, StatusCode: status}
	case status >= 500:
		return &Error{Kind: KindUnavailable, StatusCode: status,
			Message: fmt.Sprintf("HTTP %d", status)}
	default:
		return &Error{Kind: KindUnexpected, StatusCode: status, Message: apiMessage(body)}
	}
}

// apiMessage extracts a human-readable message from an error response body.
// The platform reports either {"detail": "..."} or a field-to-messages map.
func apiMessage(body []byte) string {
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		return detail.Detail
	}

	var fields map[string][]string
	if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
		var parts []string
		for field, msgs := range fields {
			parts = append(parts, field+": "+strings.Join(msgs, "; "))
		}
		return strings.Join(parts, ", ")
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	return msg
}

func unavailableReason(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return "request timed out"
	}
	return "connection failed"
}
