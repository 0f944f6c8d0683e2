// Package ui defines the host-facing rendering contract of the SDK. The
// orchestrator never touches a window or a DOM node directly: it asks an
// Opener for a popup surface and a Renderer for a credential modal, then
// observes only their closed state.
package ui

import (
	"context"
	"errors"

	"github.com/monkedo/connect-go/client/form"
	"github.com/monkedo/connect-go/client/theme"
	"github.com/monkedo/connect-go/client/watch"
)

// ErrPopupBlocked is returned by an Opener when the host environment refused
// to open the authorization popup. It is signaled distinctly so callers can
// prompt the user to disable a popup blocker; no watch is ever started.
var ErrPopupBlocked = errors.New("popup blocked")

// OpenRequest describes the popup the host should open.
type OpenRequest struct {
	URL    string
	Name   string
	Width  int
	Height int
}

// Opener opens an authorization URL in a new top-level browsing context.
type Opener interface {
	Open(ctx context.Context, request OpenRequest) (watch.Surface, error)
}

// FormView is everything a renderer needs to present the credential dialog.
type FormView struct {
	// Title of the dialog, e.g. "Connect Acme CRM".
	Title string
	// Description is the app's credential guidance as markdown, with the
	// vendor name already relabeled. DescriptionHTML is the same text
	// rendered to HTML; DOM-backed renderers use it, text renderers don't.
	Description     string
	DescriptionHTML string
	Form            *form.Form
	Theme           theme.Theme
}

// Modal is a live credential dialog. Closed (from watch.Surface) reports user
// dismissal; Close tears the dialog down programmatically and must be
// idempotent.
type Modal interface {
	watch.Surface
	// ShowError displays a transient error banner, replacing any banner
	// already shown.
	ShowError(message string)
	// HideError removes the banner if present.
	HideError()
	Close()
}

// Renderer turns a form view into an interactive modal. Render returns once
// the dialog is presented; it does not wait for the user.
type Renderer interface {
	Render(ctx context.Context, view *FormView) (Modal, error)
}
