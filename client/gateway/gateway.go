// Package gateway implements the REST client for the integration platform's
// connection endpoints. It only issues the calls the connection flow needs:
// connection status, connect initiation and credential-info retrieval.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"

	"github.com/viant/afs/url"

	"github.com/monkedo/connect-go/schema"
)

// DefaultEndpoint is the public platform API base.
const DefaultEndpoint = "https://app.monkedo.com/api/v1/ipaas"

// Service issues requests against a single project's gateway endpoints.
type Service struct {
	endpoint string
	project  string
	client   *http.Client
}

// Option represents a service option.
type Option func(s *Service)

// WithHTTPClient overrides the HTTP client used for all gateway calls.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// New creates a gateway service for the given endpoint and project id.
func New(endpoint, project string, options ...Option) *Service {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	ret := &Service{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		project:  project,
		client:   http.DefaultClient,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// ConnectionStatus returns the connection status per app key for a user.
func (s *Service) ConnectionStatus(ctx context.Context, userID string, appKeys []string) (map[string]schema.Status, error) {
	URL := url.Join(s.projectURL(), "users", neturl.PathEscape(userID), "connections", "status")
	URL += "?appKeys=" + neturl.QueryEscape(strings.Join(appKeys, ","))
	data, _, err := s.do(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, err
	}
	var result map[string]schema.Status
	if err = json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode connection status: %w", err)
	}
	return result, nil
}

// Connect initiates a connection attempt. The response body is either a bare
// authorization URL string (OAuth apps) or an opaque success payload.
func (s *Service) Connect(ctx context.Context, userID, appKey string, fields map[string]any) (*ConnectResponse, error) {
	URL := url.Join(s.projectURL(), "users", neturl.PathEscape(userID), "connections", neturl.PathEscape(appKey))
	if fields == nil {
		fields = map[string]any{}
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode connect request: %w", err)
	}
	data, _, err := s.do(ctx, http.MethodPost, URL, body)
	if err != nil {
		return nil, err
	}
	return newConnectResponse(data), nil
}

// CredentialInfo fetches the credential-collection schema for an app.
func (s *Service) CredentialInfo(ctx context.Context, appKey string) (*schema.CredentialInfo, error) {
	URL := url.Join(s.projectURL(), "apps", neturl.PathEscape(appKey), "credential-info")
	data, _, err := s.do(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return nil, err
	}
	info := &schema.CredentialInfo{}
	if err = json.Unmarshal(data, info); err != nil {
		return nil, fmt.Errorf("failed to decode credential info: %w", err)
	}
	return info, nil
}

func (s *Service) projectURL() string {
	return url.Join(s.endpoint, "projects", neturl.PathEscape(s.project))
}

func (s *Service) do(ctx context.Context, method, URL string, body []byte) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, URL, reader)
	if err != nil {
		return nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, newError(resp.StatusCode, data)
	}
	return data, resp.StatusCode, nil
}
