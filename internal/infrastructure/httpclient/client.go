// Package httpclient implements the outbound HTTP adapter used by the check
// dispatcher. It issues exactly one authenticated GET per invocation and
// classifies every way the call can go wrong into a *domain.Failure.
package httpclient

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/stackwatch/checkstack/internal/domain"
	"github.com/stackwatch/checkstack/internal/ports"
)

// Client is the default Fetcher backed by net/http. A fresh http.Client is
// built per fetch because the timeout and TLS mode come from the
// per-invocation endpoint config.
type Client struct {
	logger ports.Logger
}

// New builds a Client.
func New(logger ports.Logger) *Client {
	return &Client{logger: logger}
}

// Fetch implements ports.Fetcher. No retries: a single failed attempt
// surfaces to the caller.
func (c *Client) Fetch(ctx context.Context, cfg domain.EndpointConfig, path string) ([]byte, error) {
	endpoint := strings.TrimRight(cfg.BaseURL, "/") + path
	c.logger.Debug("sending request", map[string]interface{}{"method": http.MethodGet, "url": endpoint})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &domain.Failure{Kind: domain.FailureConnection, Err: errors.Wrap(err, "build request")}
	}
	req.SetBasicAuth(cfg.User, cfg.Password)
	req.Header.Set("Accept", "application/json")

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.Insecure {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		failure := classifyTransportError(err)
		c.logger.Error("request failed", err, map[string]interface{}{"url": endpoint, "kind": string(failure.Kind)})
		return nil, failure
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Error("authentication failed", nil, map[string]interface{}{"url": endpoint, "status": resp.StatusCode})
		return nil, &domain.Failure{Kind: domain.FailureAuth, HTTPStatus: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("unexpected status", nil, map[string]interface{}{"url": endpoint, "status": resp.StatusCode})
		return nil, &domain.Failure{Kind: domain.FailureHTTPStatus, HTTPStatus: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	if !json.Valid(body) {
		c.logger.Error("invalid response body", nil, map[string]interface{}{"url": endpoint})
		return nil, &domain.Failure{Kind: domain.FailureParse, Err: errors.New("response body is not valid JSON")}
	}

	c.logger.Debug("response received", map[string]interface{}{"url": endpoint, "bytes": len(body)})
	return body, nil
}

func classifyTransportError(err error) *domain.Failure {
	if errors.Is(err, context.DeadlineExceeded) {
		return &domain.Failure{Kind: domain.FailureTimeout, Err: err}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &domain.Failure{Kind: domain.FailureTimeout, Err: err}
	}
	return &domain.Failure{Kind: domain.FailureConnection, Err: err}
}
