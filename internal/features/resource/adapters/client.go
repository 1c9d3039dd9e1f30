package adapters

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"dispatch-store/internal/core/auth"
	"dispatch-store/internal/core/logger"
	"dispatch-store/internal/features/resource/domain"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client performs exactly one round trip per call against the logistics
// backend and normalizes the response envelope. It never retries.
type Client struct {
	// baseURL is the backend root every resource path is joined to.
	baseURL string
	// http is the HTTP client used for API requests.
	http *http.Client
	// tokens supplies the bearer token; nil means unauthenticated.
	tokens auth.TokenSource
}

// NewClient creates a new Client.
func NewClient(baseURL string, httpClient *http.Client, tokens auth.TokenSource) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
	}
}

// FetchCollection sends GET path?query and normalizes a list envelope.
func (c *Client) FetchCollection(ctx context.Context, path string, query url.Values) (domain.Collection, error) {
	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return domain.Collection{}, err
	}
	col, err := decodeCollection(body)
	if err != nil {
		return domain.Collection{}, malformed(err)
	}
	return col, nil
}

// FetchRecord sends method path with payload as JSON and normalizes a single
// record envelope.
func (c *Client) FetchRecord(ctx context.Context, method, path string, payload any) (domain.Record, error) {
	body, err := c.do(ctx, method, path, nil, payload)
	if err != nil {
		return nil, err
	}
	r, err := decodeRecord(body)
	if err != nil {
		return nil, malformed(err)
	}
	return r, nil
}

// Send performs a call whose response body is ignored.
func (c *Client) Send(ctx context.Context, method, path string) error {
	_, err := c.do(ctx, method, path, nil, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Message: domain.GenericErrorMessage, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{StatusCode: resp.StatusCode, Message: domain.GenericErrorMessage, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.TransportError{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(body),
			Err:        fmt.Errorf("%s %s returned status %d", method, path, resp.StatusCode),
		}
	}

	return body, nil
}

// authorize attaches the bearer token when one is available. Token store
// failures are logged and the request goes out unauthenticated.
func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if c.tokens == nil {
		return
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		if !errors.Is(err, auth.ErrNoToken) {
			logger.For("gateway").Warn("Token lookup failed, sending unauthenticated request", zap.Error(err))
		}
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func malformed(err error) error {
	return &domain.TransportError{
		Message: domain.GenericErrorMessage,
		Err:     fmt.Errorf("malformed response: %w", err),
	}
}
