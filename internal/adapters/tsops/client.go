// Package tsops reads agent and case data from the TSOps ticketing API.
package tsops

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/gimme-omni/internal/domain"
	"github.com/bnema/gimme-omni/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	maxResponseBytes      = 4 << 20
	defaultRequestTimeout = 30 * time.Second
	userAgent             = "gimme-omni/report"

	agentPath   = "/api/agents/"
	casesPath   = "/api/cases/current"
	agentsPath  = "/api/agents/simple"
	requestIDHd = "X-Request-Id"
)

var ErrUnauthorized = errors.New("tsops rejected the credentials")

// TokenFunc returns the bearer token to send, or "" for none.
type TokenFunc func(ctx context.Context) (string, error)

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	Token          TokenFunc
	RequestTimeout time.Duration
	Log            zerolog.Logger
}

var _ ports.SnapshotSource = (*Client)(nil)

func (c *Client) FetchAgent(ctx context.Context, username string) (domain.Agent, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.Agent{}, errors.New("username is required")
	}

	var payload agentPayload
	if err := c.getJSON(ctx, agentPath+url.PathEscape(username), &payload); err != nil {
		return domain.Agent{}, err
	}

	agent := payload.toDomain()
	if agent.Username == "" {
		agent.Username = username
	}

	return agent, nil
}

func (c *Client) FetchCurrentCases(ctx context.Context) ([]domain.Case, error) {
	var payload []casePayload
	if err := c.getJSON(ctx, casesPath, &payload); err != nil {
		return nil, err
	}

	cases := make([]domain.Case, 0, len(payload))
	for _, p := range payload {
		cases = append(cases, p.toDomain())
	}

	return cases, nil
}

func (c *Client) FetchAgents(ctx context.Context) ([]domain.Agent, error) {
	var payload []agentPayload
	if err := c.getJSON(ctx, agentsPath, &payload); err != nil {
		return nil, err
	}

	agents := make([]domain.Agent, 0, len(payload))
	for _, p := range payload {
		agents = append(agents, p.toDomain())
	}

	return agents, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	request, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	requestID := uuid.NewString()
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", userAgent)
	request.Header.Set(requestIDHd, requestID)

	if c.Token != nil {
		token, err := c.Token(ctx)
		if err != nil {
			return fmt.Errorf("resolve api token: %w", err)
		}
		if token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}

	started := time.Now()
	response, err := c.httpClient().Do(request)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer func() { _ = response.Body.Close() }()

	c.Log.Debug().
		Str("method", http.MethodGet).
		Str("path", path).
		Int("status", response.StatusCode).
		Str("request_id", requestID).
		Dur("elapsed", time.Since(started)).
		Msg("tsops request")

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("GET %s: read response: %w", path, err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		snippet := strings.TrimSpace(string(body))
		if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
			return fmt.Errorf("GET %s: %w: status %d: %s", path, ErrUnauthorized, response.StatusCode, snippet)
		}
		return fmt.Errorf("GET %s: status %d: %s", path, response.StatusCode, snippet)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("GET %s: decode payload: %w", path, err)
	}

	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}

	return endpoint.String(), nil
}
