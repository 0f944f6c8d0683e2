package client

import (
	"time"

	"github.com/monkedo/connect-go/client/theme"
	"github.com/monkedo/connect-go/client/ui"
)

// Option represents a client option.
type Option func(c *Client)

// WithOpener sets the popup opener used for OAuth authorization URLs.
func WithOpener(opener ui.Opener) Option {
	return func(c *Client) {
		c.opener = opener
	}
}

// WithRenderer sets the credential form renderer. Without one the client runs
// headless: FetchCredentialSchema returns the form for the caller to present.
func WithRenderer(renderer ui.Renderer) Option {
	return func(c *Client) {
		c.renderer = renderer
	}
}

// WithDisplayName replaces the platform's own branding in credential-info
// descriptions with the given name.
func WithDisplayName(name string) Option {
	return func(c *Client) {
		c.displayName = name
	}
}

// WithTheme merges theme options over the defaults.
func WithTheme(options theme.Options) Option {
	return func(c *Client) {
		c.theme.Apply(options)
	}
}

// WithPollInterval overrides the popup/modal close poll interval.
func WithPollInterval(interval time.Duration) Option {
	return func(c *Client) {
		if interval > 0 {
			c.pollInterval = interval
		}
	}
}

// WithBannerTTL overrides how long transient error banners stay visible.
func WithBannerTTL(ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.bannerTTL = ttl
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
