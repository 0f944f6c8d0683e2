package gateway

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error is a non-2xx gateway response. Code and Message come from the
// server-supplied {code, message} payload when present.
type Error struct {
	StatusCode int
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gateway error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway error %d", e.StatusCode)
}

func newError(statusCode int, body []byte) *Error {
	ret := &Error{StatusCode: statusCode}
	if err := json.Unmarshal(body, ret); err != nil {
		ret.Message = strings.TrimSpace(string(body))
	}
	return ret
}
