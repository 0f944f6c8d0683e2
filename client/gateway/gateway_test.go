package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monkedo/connect-go/schema"
)

func TestService_ConnectionStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/p1/users/u1/connections/status", r.URL.Path)
		assert.Equal(t, "slack,jira", r.URL.Query().Get("appKeys"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"slack":"connected","jira":"not-connected"}`))
	}))
	defer server.Close()

	srv := New(server.URL, "p1")
	statuses, err := srv.ConnectionStatus(context.Background(), "u1", []string{"slack", "jira"})
	require.NoError(t, err)
	assert.Equal(t, schema.StatusConnected, statuses["slack"])
	assert.Equal(t, schema.StatusNotConnected, statuses["jira"])
}

func TestService_Connect(t *testing.T) {
	testCases := []struct {
		description string
		body        string
		expectURL   string
		expectOAuth bool
	}{
		{
			description: "oauth authorization URL",
			body:        `"https://auth.example.com/authorize?state=x"`,
			expectURL:   "https://auth.example.com/authorize?state=x",
			expectOAuth: true,
		},
		{
			description: "plain text URL body",
			body:        "https://auth.example.com/authorize\n",
			expectURL:   "https://auth.example.com/authorize",
			expectOAuth: true,
		},
		{
			description: "opaque object payload",
			body:        `{"id":"conn-1"}`,
		},
		{
			description: "non-URL string",
			body:        `"ok"`,
		},
		{
			description: "empty body",
		},
	}

	for _, testCase := range testCases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method, testCase.description)
			assert.Equal(t, "/projects/p1/users/u1/connections/slack", r.URL.Path, testCase.description)
			_, _ = w.Write([]byte(testCase.body))
		}))
		srv := New(server.URL, "p1")
		resp, err := srv.Connect(context.Background(), "u1", "slack", map[string]any{"scope": "basic"})
		require.NoError(t, err, testCase.description)
		URL, ok := resp.AuthorizationURL()
		assert.Equal(t, testCase.expectOAuth, ok, testCase.description)
		assert.Equal(t, testCase.expectURL, URL, testCase.description)
		server.Close()
	}
}

func TestService_CredentialInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/p1/apps/acme/credential-info", r.URL.Path)
		_, _ = w.Write([]byte(`{"appName":"Acme","desc":"See **docs**.","fields":[{"name":"apiKey"}]}`))
	}))
	defer server.Close()

	srv := New(server.URL, "p1")
	info, err := srv.CredentialInfo(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme", info.AppName)
	require.Len(t, info.Fields, 1)
	assert.Equal(t, "apiKey", info.Fields[0].Name)
}

func TestService_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":222,"message":"connection exists"}`))
	}))
	defer server.Close()

	srv := New(server.URL, "p1")
	_, err := srv.Connect(context.Background(), "u1", "slack", nil)
	require.Error(t, err)
	var gatewayErr *Error
	require.True(t, errors.As(err, &gatewayErr))
	assert.Equal(t, http.StatusBadRequest, gatewayErr.StatusCode)
	assert.Equal(t, schema.CodeConnectionAlreadyExists, gatewayErr.Code)
	assert.Equal(t, "connection exists", gatewayErr.Message)
}

func TestService_ErrorNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	srv := New(server.URL, "p1")
	_, err := srv.ConnectionStatus(context.Background(), "u1", []string{"slack"})
	var gatewayErr *Error
	require.True(t, errors.As(err, &gatewayErr))
	assert.Equal(t, "upstream unavailable", gatewayErr.Message)
}
