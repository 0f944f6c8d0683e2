// Package cli runs connection flows from a terminal: status checks, OAuth
// connects through the system browser and credential collection via an
// interactive prompt.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/viant/scy"

	connect "github.com/monkedo/connect-go"
	"github.com/monkedo/connect-go/client"
	"github.com/monkedo/connect-go/client/ui"
	"github.com/monkedo/connect-go/schema"
)

type Service struct {
	options *Options
	client  *client.Client
	out     io.Writer
}

// New constructs a CLI service over a terminal-rendered connect client.
func New(options *Options) (*Service, error) {
	renderer := ui.NewTermRenderer(os.Stdin, os.Stdout)
	cli, err := connect.New(&connect.Options{
		ProjectID:   options.Project,
		Endpoint:    options.Endpoint,
		DisplayName: options.DisplayName,
	}, client.WithRenderer(renderer), client.WithLogger(log.Default()))
	if err != nil {
		return nil, err
	}
	renderer.OnSubmit = cli.SubmitCredentialForm
	return &Service{options: options, client: cli, out: os.Stdout}, nil
}

func (s *Service) Run(ctx context.Context) error {
	switch s.options.Operation {
	case "connect":
		return s.connect(ctx)
	case "credential-form":
		return s.credentialForm(ctx)
	default:
		return s.status(ctx)
	}
}

func (s *Service) status(ctx context.Context) error {
	statuses, err := s.client.CheckUserConnections(ctx, s.options.UserID, s.options.AppKeys)
	if err != nil {
		return err
	}
	for _, appKey := range s.options.AppKeys {
		fmt.Fprintf(s.out, "%v: %v\n", appKey, statuses[appKey])
	}
	return nil
}

func (s *Service) connect(ctx context.Context) error {
	fields, err := s.connectionFields(ctx)
	if err != nil {
		return err
	}
	outcome, err := s.client.ConnectApp(ctx, &schema.ConnectionRequest{
		UserID: s.options.UserID,
		AppKey: s.options.AppKeys[0],
		Fields: fields,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%v\n", outcome.Code)
	return nil
}

func (s *Service) credentialForm(ctx context.Context) error {
	outcome, err := s.client.ConnectWithCredentials(ctx, s.options.UserID, s.options.AppKeys[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%v\n", outcome.Code)
	return nil
}

// connectionFields resolves optional connect payload fields, either inline
// JSON or a secret URL decrypted via scy.
func (s *Service) connectionFields(ctx context.Context) (map[string]any, error) {
	var raw []byte
	switch {
	case s.options.Fields != "":
		raw = []byte(s.options.Fields)
	case s.options.SecretURL != "":
		secrets := scy.New()
		resource := scy.NewResource(nil, s.options.SecretURL, s.options.SecretKey)
		secret, err := secrets.Load(ctx, resource)
		if err != nil {
			return nil, fmt.Errorf("failed to load secret %v: %w", s.options.SecretURL, err)
		}
		raw = []byte(secret.String())
	default:
		return nil, nil
	}
	var ret map[string]any
	if err := json.Unmarshal(raw, &ret); err != nil {
		return nil, fmt.Errorf("invalid connection fields: %w", err)
	}
	return ret, nil
}
