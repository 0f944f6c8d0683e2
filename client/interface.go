package client

import (
	"context"

	"github.com/monkedo/connect-go/client/form"
	"github.com/monkedo/connect-go/client/theme"
	"github.com/monkedo/connect-go/schema"
)

// Interface defines the orchestrator surface exposed to host applications.
type Interface interface {
	// CheckUserConnections returns connection status per app key
	CheckUserConnections(ctx context.Context, userID string, appKeys []string) (map[string]schema.Status, error)

	// ConnectApp initiates a connect attempt and resolves its terminal outcome
	ConnectApp(ctx context.Context, request *schema.ConnectionRequest) (schema.Outcome, error)

	// FetchCredentialSchema retrieves and presents the credential form
	FetchCredentialSchema(ctx context.Context, userID, appKey string) (*form.Form, error)

	// SubmitCredentialForm resubmits collected credential values
	SubmitCredentialForm(ctx context.Context, f *form.Form) error

	// AwaitModal waits for the open credential modal and reconciles
	AwaitModal(ctx context.Context) (schema.Outcome, error)

	// ConnectWithCredentials combines fetch, await and reconcile
	ConnectWithCredentials(ctx context.Context, userID, appKey string) (schema.Outcome, error)

	// SetTheme merges theme options into the client's theme
	SetTheme(options theme.Options)

	// CloseModal tears down any open credential modal
	CloseModal()
}

var _ Interface = (*Client)(nil)
