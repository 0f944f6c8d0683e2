// Package client implements the connection-flow orchestrator: it decides, per
// connect attempt, whether the result is immediate, requires an OAuth popup
// wait, or requires credential collection, and reconciles the asynchronous
// outcome into a single terminal result.
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/monkedo/connect-go/client/form"
	"github.com/monkedo/connect-go/client/gateway"
	"github.com/monkedo/connect-go/client/theme"
	"github.com/monkedo/connect-go/client/ui"
	"github.com/monkedo/connect-go/client/watch"
	"github.com/monkedo/connect-go/markdown"
	"github.com/monkedo/connect-go/schema"
)

// vendorName is the platform's own branding inside credential-info
// descriptions; a configured display name replaces it before rendering.
const vendorName = "Monkedo"

const (
	// DefaultBannerTTL is how long a transient error banner stays visible.
	DefaultBannerTTL = 10 * time.Second
	popupName        = "oauthPopup"
	popupWidth       = 600
	popupHeight      = 700
)

// Gateway is the subset of platform calls the orchestrator makes.
type Gateway interface {
	ConnectionStatus(ctx context.Context, userID string, appKeys []string) (map[string]schema.Status, error)
	Connect(ctx context.Context, userID, appKey string, fields map[string]any) (*gateway.ConnectResponse, error)
	CredentialInfo(ctx context.Context, appKey string) (*schema.CredentialInfo, error)
}

// Client orchestrates connection flows for one project. All per-instance
// state (theme, open modal) lives here rather than on package level, so two
// clients on the same host never clobber each other.
type Client struct {
	gateway      Gateway
	opener       ui.Opener
	renderer     ui.Renderer
	markdown     *markdown.Renderer
	displayName  string
	pollInterval time.Duration
	bannerTTL    time.Duration
	logger       Logger
	watches      *watch.Registry

	mux       sync.Mutex
	theme     theme.Theme
	modal     ui.Modal
	modalForm *form.Form
}

// New creates an orchestrator over the given gateway.
func New(gw Gateway, options ...Option) *Client {
	ret := &Client{
		gateway:      gw,
		opener:       ui.BrowserOpener{},
		markdown:     markdown.New(),
		pollInterval: watch.DefaultInterval,
		bannerTTL:    DefaultBannerTTL,
		theme:        theme.Default(),
		logger:       nopLogger{},
		watches:      watch.NewRegistry(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// CheckUserConnections returns the connection status per app key. It performs
// one read-only gateway call and has no side effects.
func (c *Client) CheckUserConnections(ctx context.Context, userID string, appKeys []string) (map[string]schema.Status, error) {
	if userID == "" || len(appKeys) == 0 {
		return nil, invalidArgument(`"userId" and "appKeys" are required`)
	}
	return c.gateway.ConnectionStatus(ctx, userID, appKeys)
}

// ConnectApp initiates a connection attempt. When the gateway answers with a
// bare authorization URL the call opens a popup and resolves only once the
// popup's close has been reconciled against a follow-up status check; any
// other response shape resolves Success immediately.
func (c *Client) ConnectApp(ctx context.Context, request *schema.ConnectionRequest) (schema.Outcome, error) {
	if request == nil || request.UserID == "" || request.AppKey == "" {
		return schema.Outcome{}, invalidArgument(`"userId" and "appKey" are required`)
	}
	response, err := c.gateway.Connect(ctx, request.UserID, request.AppKey, request.Fields)
	if err != nil {
		return schema.Outcome{}, err
	}
	if URL, ok := response.AuthorizationURL(); ok {
		return c.awaitPopup(ctx, URL, request.UserID, request.AppKey)
	}
	return schema.Outcome{Code: schema.OutcomeSuccess}, nil
}

// FetchCredentialSchema retrieves the credential-collection schema for an app
// and presents it via the renderer. It returns the live form once the dialog
// is up; use AwaitModal (or ConnectWithCredentials) to wait for the user.
func (c *Client) FetchCredentialSchema(ctx context.Context, userID, appKey string) (*form.Form, error) {
	if userID == "" || appKey == "" {
		return nil, invalidArgument(`"userId" and "appKey" are required`)
	}
	info, err := c.gateway.CredentialInfo(ctx, appKey)
	if err != nil {
		return nil, err
	}
	description := info.Desc
	if c.displayName != "" {
		description = strings.ReplaceAll(description, vendorName, c.displayName)
	}
	descriptionHTML, err := c.markdown.Render(description)
	if err != nil {
		return nil, err
	}
	f, err := form.New(userID, appKey, info.Fields)
	if err != nil {
		return nil, fmt.Errorf("invalid credential schema for %q: %w", appKey, err)
	}
	if c.renderer == nil {
		// headless: the caller renders the form itself
		return f, nil
	}
	view := &ui.FormView{
		Title:           "Connect " + info.AppName,
		Description:     description,
		DescriptionHTML: descriptionHTML,
		Form:            f,
		Theme:           c.Theme(),
	}
	c.CloseModal() // at most one open modal; tear down any previous one
	modal, err := c.renderer.Render(ctx, view)
	if err != nil {
		return nil, err
	}
	c.mux.Lock()
	c.modal = modal
	c.modalForm = f
	c.mux.Unlock()
	return f, nil
}

// SubmitCredentialForm collects the form's visible values, wraps them as
// connectionFields and re-invokes ConnectApp. A gateway failure is rendered
// as a transient banner on the open modal rather than propagated, so the
// user can correct and retry without losing the form.
func (c *Client) SubmitCredentialForm(ctx context.Context, f *form.Form) error {
	if f == nil {
		return invalidArgument("form is required")
	}
	request := &schema.ConnectionRequest{
		UserID: f.UserID(),
		AppKey: f.AppKey(),
		Fields: map[string]any{"connectionFields": f.Values()},
	}
	if _, err := c.ConnectApp(ctx, request); err != nil {
		if errors.Is(err, ErrInvalidArgument) {
			return err
		}
		c.logger.Printf("credential submission for %q failed: %v", f.AppKey(), err)
		c.showBanner(UserMessage(err))
		return nil
	}
	c.CloseModal()
	return nil
}

// AwaitModal waits until the currently open credential modal is dismissed and
// reconciles the outcome against a follow-up status check, exactly like the
// popup path.
func (c *Client) AwaitModal(ctx context.Context) (schema.Outcome, error) {
	c.mux.Lock()
	modal, f := c.modal, c.modalForm
	c.mux.Unlock()
	if modal == nil || f == nil {
		return schema.Outcome{}, errors.New("no open modal")
	}
	outcome, err := c.awaitSurface(ctx, modal, f.UserID(), f.AppKey())
	c.clearModal(modal)
	return outcome, err
}

// ConnectWithCredentials runs the full credential path: fetch schema, render
// the form, wait for dismissal and reconcile. This restores the auto-waiting
// behavior of the hosted SDK as an explicit opt-in. Without a renderer it
// returns a PendingForm outcome carrying the schema, leaving collection and
// submission to the caller.
func (c *Client) ConnectWithCredentials(ctx context.Context, userID, appKey string) (schema.Outcome, error) {
	f, err := c.FetchCredentialSchema(ctx, userID, appKey)
	if err != nil {
		return schema.Outcome{}, err
	}
	if c.renderer == nil {
		return schema.Outcome{Code: schema.OutcomePendingForm, Fields: f.Fields()}, nil
	}
	return c.AwaitModal(ctx)
}

// SetTheme merges options into the client's theme. Only set keys are
// overwritten; everything else keeps its current value.
func (c *Client) SetTheme(options theme.Options) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.theme.Apply(options)
}

// Theme returns a copy of the current theme.
func (c *Client) Theme() theme.Theme {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.theme
}

// CloseModal tears down the open credential modal, if any. Safe to call
// repeatedly.
func (c *Client) CloseModal() {
	c.mux.Lock()
	modal := c.modal
	c.modal = nil
	c.modalForm = nil
	c.mux.Unlock()
	if modal != nil {
		modal.Close()
	}
}

// Watches exposes the live watch registry.
func (c *Client) Watches() *watch.Registry {
	return c.watches
}

func (c *Client) awaitPopup(ctx context.Context, URL, userID, appKey string) (schema.Outcome, error) {
	surface, err := c.opener.Open(ctx, ui.OpenRequest{
		URL:    URL,
		Name:   popupName,
		Width:  popupWidth,
		Height: popupHeight,
	})
	if err != nil {
		if errors.Is(err, ui.ErrPopupBlocked) {
			c.logger.Printf("authorization popup for %q was blocked", appKey)
			return schema.Outcome{Code: schema.OutcomePopupBlocked}, nil
		}
		return schema.Outcome{}, err
	}
	return c.awaitSurface(ctx, surface, userID, appKey)
}

// awaitSurface watches a surface until it closes, then performs the one
// authoritative status check: connected maps to Success, anything else to
// Failed. Closing alone never indicates success.
func (c *Client) awaitSurface(ctx context.Context, surface watch.Surface, userID, appKey string) (schema.Outcome, error) {
	w := watch.New(surface, userID, appKey, watch.WithInterval(c.pollInterval))
	c.watches.Add(w)
	defer c.watches.Remove(w.ID())
	w.Start()
	result, err := w.Wait(ctx)
	if err != nil || result == watch.ResultCanceled {
		return schema.Outcome{Code: schema.OutcomeCanceled}, err
	}
	statuses, err := c.gateway.ConnectionStatus(ctx, userID, []string{appKey})
	if err != nil {
		return schema.Outcome{}, err
	}
	if statuses[appKey] == schema.StatusConnected {
		return schema.Outcome{Code: schema.OutcomeSuccess}, nil
	}
	return schema.Outcome{Code: schema.OutcomeFailed}, nil
}

func (c *Client) showBanner(message string) {
	c.mux.Lock()
	modal := c.modal
	c.mux.Unlock()
	if modal == nil {
		return
	}
	modal.ShowError(message)
	time.AfterFunc(c.bannerTTL, func() {
		c.mux.Lock()
		current := c.modal
		c.mux.Unlock()
		if current == modal {
			modal.HideError()
		}
	})
}

func (c *Client) clearModal(modal ui.Modal) {
	c.mux.Lock()
	if c.modal == modal {
		c.modal = nil
		c.modalForm = nil
	}
	c.mux.Unlock()
}
