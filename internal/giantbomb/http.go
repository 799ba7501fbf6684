package giantbomb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	gberrors "github.com/lepinkainen/gbrandom/internal/errors"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 4 << 20

// envelopeFields must be present and non-null in every envelope.
var envelopeFields = []string{"error", "status_code"}

// getEnvelope performs a GET against endpoint and returns the decoded envelope
// with its results left raw. The envelope fields and any extra required
// fields are checked first, then the envelope status.
func (c *Client) getEnvelope(ctx context.Context, op, endpoint string, required ...string) (*Envelope[json.RawMessage], error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, gberrors.NewTransportError(op, redactURL(endpoint), err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, gberrors.NewTransportError(op, redactURL(endpoint), redactError(err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, gberrors.NewTransportError(op, redactURL(endpoint), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, gberrors.NewRemoteStatusError(op, resp.StatusCode, statusMessage(body))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, gberrors.NewDecodeError(op, err)
	}
	for _, name := range append(envelopeFields, required...) {
		if raw, ok := fields[name]; !ok || string(raw) == "null" {
			return nil, gberrors.NewDecodeError(op, missingField(name))
		}
	}

	var env Envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, gberrors.NewDecodeError(op, err)
	}

	if !env.OK() {
		return nil, gberrors.NewRemoteError(op, envelopeMessage(env.Error, env.StatusCode))
	}

	return &env, nil
}

// decodeResults decodes the raw results payload of an envelope into T.
func decodeResults[T any](op string, raw json.RawMessage) (T, error) {
	var results T
	if len(raw) == 0 {
		return results, gberrors.NewDecodeError(op, fmt.Errorf("missing required field %q", "results"))
	}
	if err := json.Unmarshal(raw, &results); err != nil {
		return results, gberrors.NewDecodeError(op, err)
	}
	return results, nil
}

// statusMessage extracts a human readable message from a non-2xx body.
func statusMessage(body []byte) string {
	var env struct {
		Error      string `json:"error"`
		StatusCode int    `json:"status_code"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return envelopeMessage(env.Error, env.StatusCode)
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > 512 {
		msg = msg[:512]
	}
	if msg == "" {
		return "unexpected status"
	}
	return "unexpected status: " + msg
}

func envelopeMessage(text string, statusCode int) string {
	if text == "" {
		text = "unknown error"
	}
	return fmt.Sprintf("remote reported %q (status_code %d)", text, statusCode)
}

// redactURL strips the api_key parameter so endpoints can be logged and
// returned in errors.
func redactURL(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "<invalid url>"
	}
	q := u.Query()
	if q.Has("api_key") {
		q.Del("api_key")
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// redactError removes the request URL from *url.Error values, which would
// otherwise leak the API key into messages.
func redactError(err error) error {
	if urlErr, ok := err.(*url.Error); ok {
		return urlErr.Err
	}
	return err
}
