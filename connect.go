package connect

import (
	"fmt"
	"net/http"

	"github.com/monkedo/connect-go/client"
	"github.com/monkedo/connect-go/client/gateway"
	"github.com/monkedo/connect-go/client/theme"
)

// Options
//
// defines options for configuring a connect client.
type Options struct {
	ProjectID   string `yaml:"projectId" json:"projectId,omitempty" short:"p" long:"project" description:"project identifier"`
	Endpoint    string `yaml:"endpoint,omitempty" json:"endpoint,omitempty" short:"e" long:"endpoint" description:"platform API endpoint"`
	DisplayName string `yaml:"displayName,omitempty" json:"displayName,omitempty" short:"d" long:"display-name" description:"name shown to end users instead of the platform's"`

	// Theme overrides applied on top of the default look.
	Theme *theme.Options `yaml:"theme,omitempty" json:"theme,omitempty"`

	// HTTPClient, if set, is used for all platform calls.
	HTTPClient *http.Client `yaml:"-" json:"-"`
}

func (o *Options) Init() {
	if o.Endpoint == "" {
		o.Endpoint = gateway.DefaultEndpoint
	}
}

// New creates a connect client configured via Options. Additional client
// options (renderer, opener, logger) are appended after the ones derived
// from Options.
func New(options *Options, clientOptions ...client.Option) (*client.Client, error) {
	if options == nil || options.ProjectID == "" {
		return nil, fmt.Errorf("%w: projectId is required", client.ErrInvalidArgument)
	}
	options.Init()

	var gatewayOptions []gateway.Option
	if options.HTTPClient != nil {
		gatewayOptions = append(gatewayOptions, gateway.WithHTTPClient(options.HTTPClient))
	}
	service := gateway.New(options.Endpoint, options.ProjectID, gatewayOptions...)

	var opts []client.Option
	if options.DisplayName != "" {
		opts = append(opts, client.WithDisplayName(options.DisplayName))
	}
	if options.Theme != nil {
		opts = append(opts, client.WithTheme(*options.Theme))
	}
	opts = append(opts, clientOptions...)
	return client.New(service, opts...), nil
}
