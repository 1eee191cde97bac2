// api/client.go - backend API client wrapper
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxErrorBody = 1 << 20

// Envelope is the uniform response shape the backend wraps every payload in.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Count   int             `json:"count,omitempty"`
}

// DecodeData unmarshals the data payload into v.
func (e *Envelope) DecodeData(v interface{}) error {
	if len(e.Data) == 0 {
		return fmt.Errorf("response has no data payload")
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// Error is an application-level failure: the backend answered with a non-2xx
// status and (where possible) a human-readable message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
}

// ErrorMessage extracts the message to surface to the user: the server's own
// words for application errors, a generic connectivity line for everything
// else (transport failures carry no user-appropriate detail).
func ErrorMessage(err error) string {
	if apiErr, ok := err.(*Error); ok {
		return apiErr.Message
	}
	return "Unable to connect to the server. Please try again."
}

// Client talks to the conference backend. It is stateless and safe for
// concurrent use; each call owns its own request/response pair.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a Client. A nil httpClient gets a 30s timeout default.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// do performs one backend call. token, when non-empty, is sent as a bearer
// credential. body and contentType describe an optional request body.
func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string) (*Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	// Only error bodies are capped; they feed a one-line message. Success
	// payloads (abstract lists and the like) are read in full.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &Error{Status: resp.StatusCode, Message: errorMessage(resp, raw)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read backend response: %w", err)
	}

	return decodeSuccess(resp, raw), nil
}

// doJSON marshals payload as a JSON body.
func (c *Client) doJSON(ctx context.Context, method, path, token string, payload interface{}) (*Envelope, error) {
	var body io.Reader
	contentType := ""
	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = buf
		contentType = "application/json"
	}
	return c.do(ctx, method, path, token, body, contentType)
}

// errorMessage resolves the best available message for a failed call: the
// JSON message/error field, else the raw body text, else the status line.
func errorMessage(resp *http.Response, raw []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}
	return resp.Status
}

// decodeSuccess tolerates backends that answer 2xx with plain text or an
// empty body: anything that is not parseable JSON degrades to a message-only
// envelope instead of failing the call.
func decodeSuccess(resp *http.Response, raw []byte) *Envelope {
	if len(bytes.TrimSpace(raw)) == 0 {
		return &Envelope{Success: true}
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		var env Envelope
		if err := json.Unmarshal(raw, &env); err == nil {
			return &env
		}
	}

	return &Envelope{Success: true, Message: strings.TrimSpace(string(raw))}
}
