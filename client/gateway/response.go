package gateway

import (
	"encoding/json"
	"strings"
)

// ConnectResponse wraps the connect endpoint's body, which is either a bare
// authorization URL string or an opaque success payload.
type ConnectResponse struct {
	Raw json.RawMessage
}

func newConnectResponse(data []byte) *ConnectResponse {
	raw := json.RawMessage(data)
	if len(data) > 0 && !json.Valid(data) {
		// Some deployments return the URL as text/plain rather than a JSON
		// encoded string.
		raw, _ = json.Marshal(strings.TrimSpace(string(data)))
	}
	return &ConnectResponse{Raw: raw}
}

// AuthorizationURL returns the OAuth authorization URL and true when the
// response is a bare string starting with an HTTP(S) scheme. Any other shape
// (object, null, non-URL string, empty body) means the connection completed
// synchronously.
func (r *ConnectResponse) AuthorizationURL() (string, bool) {
	if r == nil || len(r.Raw) == 0 {
		return "", false
	}
	var value string
	if err := json.Unmarshal(r.Raw, &value); err != nil {
		return "", false
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value, true
	}
	return "", false
}
