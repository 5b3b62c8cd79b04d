package tsops

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/gimme-omni/internal/adapters/tsops/tsopstest"
	"github.com/bnema/gimme-omni/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFixture() tsopstest.Fixture {
	return tsopstest.Fixture{
		Agents: []tsopstest.Agent{
			{Username: "achulock", State: "Available", Skills: []string{"fl_english_ib"}, AdjustedLastContactEndTime: "2026-02-13T10:58:59.000000Z"},
			{Username: "peer", State: "Unavailable", Skills: []string{"fl_english_ib", "bl_pi"}, AdjustedLastContactEndTime: "2026-02-14T09:00:00.123456Z"},
		},
		Cases: []tsopstest.Case{
			{Subject: "00123456 - PI Server down", Timestamp: "2026-02-14T10:15:00.000000Z", Category: 1, Origin: "Web", Language: "English"},
			{Subject: "00123457 - escalation", Timestamp: "2026-02-14T11:00:00.000000Z", Category: 1, Origin: "Back Line Request", Language: "English"},
		},
	}
}

func newTestClient(server *tsopstest.Server) *Client {
	return &Client{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Log:        zerolog.Nop(),
	}
}

func TestClientFetchAgent(t *testing.T) {
	t.Parallel()

	server := tsopstest.NewServer(testFixture())
	t.Cleanup(server.Close)

	agent, err := newTestClient(server).FetchAgent(context.Background(), "achulock")
	require.NoError(t, err)
	assert.Equal(t, domain.Agent{
		Username:       "achulock",
		State:          domain.AgentStateAvailable,
		Skills:         []string{"fl_english_ib"},
		LastContactEnd: "2026-02-13T10:58:59.000000Z",
	}, agent)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "/api/agents/achulock", requests[0].URL.Path)
	assert.Equal(t, "application/json", requests[0].Header.Get("Accept"))
	_, err = uuid.Parse(requests[0].Header.Get("X-Request-Id"))
	assert.NoError(t, err)
	assert.Empty(t, requests[0].Header.Get("Authorization"))
}

func TestClientFetchAgentFillsMissingUsername(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"adjustedLastContactEndTime":"2026-02-13T10:58:59.000000Z"}`)
	}))
	t.Cleanup(server.Close)

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client(), Log: zerolog.Nop()}
	agent, err := client.FetchAgent(context.Background(), "achulock")
	require.NoError(t, err)
	assert.Equal(t, "achulock", agent.Username)
}

func TestClientFetchCurrentCasesAndAgents(t *testing.T) {
	t.Parallel()

	server := tsopstest.NewServer(testFixture())
	t.Cleanup(server.Close)
	client := newTestClient(server)

	cases, err := client.FetchCurrentCases(context.Background())
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, domain.Case{
		Subject:   "00123456 - PI Server down",
		CreatedAt: "2026-02-14T10:15:00.000000Z",
		Category:  domain.CategoryOmniChannel,
		Origin:    "Web",
		Language:  domain.LanguageEnglish,
	}, cases[0])
	assert.Equal(t, domain.OriginBackLineRequest, cases[1].Origin)

	agents, err := client.FetchAgents(context.Background())
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "peer", agents[1].Username)
	assert.Equal(t, domain.AgentState("Unavailable"), agents[1].State)
	assert.Equal(t, []string{"fl_english_ib", "bl_pi"}, agents[1].Skills)
}

func TestClientSendsBearerToken(t *testing.T) {
	t.Parallel()

	fixture := testFixture()
	fixture.Token = "bearer-123"
	server := tsopstest.NewServer(fixture)
	t.Cleanup(server.Close)

	client := newTestClient(server)
	client.Token = func(context.Context) (string, error) { return "bearer-123", nil }

	_, err := client.FetchAgents(context.Background())
	require.NoError(t, err)
}

func TestClientMapsRejectedCredentials(t *testing.T) {
	t.Parallel()

	fixture := testFixture()
	fixture.Token = "bearer-123"
	server := tsopstest.NewServer(fixture)
	t.Cleanup(server.Close)

	client := newTestClient(server)
	client.Token = func(context.Context) (string, error) { return "wrong", nil }

	_, err := client.FetchCurrentCases(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorContains(t, err, "status 401")
}

func TestClientTokenErrorAbortsRequest(t *testing.T) {
	t.Parallel()

	server := tsopstest.NewServer(testFixture())
	t.Cleanup(server.Close)

	tokenErr := errors.New("pass locked")
	client := newTestClient(server)
	client.Token = func(context.Context) (string, error) { return "", tokenErr }

	_, err := client.FetchAgents(context.Background())
	require.ErrorIs(t, err, tokenErr)
	assert.Empty(t, server.Requests())
}

func TestClientSurfacesUnexpectedStatus(t *testing.T) {
	t.Parallel()

	server := tsopstest.NewServer(testFixture())
	t.Cleanup(server.Close)

	_, err := newTestClient(server).FetchAgent(context.Background(), "nobody")
	require.Error(t, err)
	assert.ErrorContains(t, err, "status 404")
	assert.ErrorContains(t, err, "agent not found")
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestClientRejectsMalformedPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"not":"a list"}`)
	}))
	t.Cleanup(server.Close)

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client(), Log: zerolog.Nop()}
	_, err := client.FetchCurrentCases(context.Background())
	assert.ErrorContains(t, err, "decode payload")
}

func TestClientAppliesRequestTimeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(server.Close)

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client(), RequestTimeout: 50 * time.Millisecond, Log: zerolog.Nop()}
	_, err := client.FetchAgents(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBuildAPIURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    string
		want    string
		wantErr string
	}{
		{name: "plain host", base: "https://tsops.example", want: "https://tsops.example/api/cases/current"},
		{name: "trailing slash", base: "https://tsops.example/", want: "https://tsops.example/api/cases/current"},
		{name: "empty", base: "", wantErr: "api base url is required"},
		{name: "bad scheme", base: "ftp://tsops.example", wantErr: "must use http or https"},
		{name: "missing host", base: "https://", wantErr: "host is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := buildAPIURL(tc.base, casesPath)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	client, err := NewHTTPClient(TLSOptions{})
	require.NoError(t, err)
	assert.Nil(t, client.Transport)

	missing := filepath.Join(t.TempDir(), "missing.pem")
	_, err = NewHTTPClient(TLSOptions{CAFile: missing})
	assert.ErrorContains(t, err, "read ca file")

	notPEM := filepath.Join(t.TempDir(), "bundle.pem")
	require.NoError(t, os.WriteFile(notPEM, []byte("not a certificate"), 0o600))
	_, err = NewHTTPClient(TLSOptions{CAFile: notPEM})
	assert.ErrorContains(t, err, "no PEM certificates")

	client, err = NewHTTPClient(TLSOptions{InsecureSkipVerify: true})
	require.NoError(t, err)
	assert.NotNil(t, client.Transport)
}
