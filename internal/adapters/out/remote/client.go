// Package remote implements the HTTP client side of the transport adapter:
// it forwards marketplace operations to an upstream BaleConnect server and
// translates its envelope responses into outcomes.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/transport"
)

const defaultTimeout = 10 * time.Second

// maxResponseBytes caps how much of an upstream response is read. The
// envelope payloads are small; anything larger is a misbehaving server.
const maxResponseBytes = 4 << 20

// Client forwards operations to the upstream server over HTTP. It implements
// transport.RemoteCaller: connection-level failures are returned as
// errs.ErrTransportFailure (tripping the adapter's fallback latch), while
// HTTP-level failures pass through as outcomes.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("remote base URL")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Send posts the operation payload and decodes the envelope response.
func (c *Client) Send(ctx context.Context, op string, payload []byte) (transport.Outcome, error) {
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+op, bytes.NewReader(payload))
	if err != nil {
		return transport.Outcome{}, errs.NewTransportFailureError(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return transport.Outcome{}, errs.NewTransportFailureError(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return transport.Outcome{}, errs.NewTransportFailureError(op, err)
	}

	var outcome transport.Outcome
	if err := json.Unmarshal(body, &outcome); err != nil {
		return transport.Outcome{
			Status: resp.StatusCode,
			Error:  fmt.Sprintf("unexpected response from server (status %d)", resp.StatusCode),
		}, nil
	}

	outcome.Status = resp.StatusCode
	return outcome, nil
}

// Health probes the upstream health endpoint. Returns nil only when the
// server answers 200.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return errs.NewTransportFailureError("/health", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errs.NewTransportFailureError("/health", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode != http.StatusOK {
		return errs.NewTransportFailureError("/health", fmt.Errorf("status %d", resp.StatusCode))
	}
	return nil
}
