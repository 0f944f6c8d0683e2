package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/monkedo/connect-go/client/gateway"
	"github.com/monkedo/connect-go/schema"
)

// ErrInvalidArgument is returned when a required identifier is missing. It is
// raised synchronously, before any network call.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, detail)
}

const (
	msgConnectionExists = "Connection already exists. Please disconnect the existing connection to connect again."
	msgUnauthorized     = "Unauthorized. Please check your credentials."
)

// UserMessage maps an error to the text shown to the end user. Known platform
// codes get fixed human-readable messages regardless of the server's own
// wording; anything else surfaces the raw message.
func UserMessage(err error) string {
	var gatewayErr *gateway.Error
	if errors.As(err, &gatewayErr) {
		switch {
		case gatewayErr.Code == schema.CodeConnectionAlreadyExists:
			return msgConnectionExists
		case gatewayErr.StatusCode == http.StatusUnauthorized:
			return msgUnauthorized
		case gatewayErr.Message != "":
			return gatewayErr.Message
		}
	}
	return err.Error()
}
