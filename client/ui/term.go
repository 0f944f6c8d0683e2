package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/monkedo/connect-go/client/form"
	"github.com/monkedo/connect-go/schema"
)

// TermRenderer presents the credential form as an interactive terminal
// prompt. It exists for CLI hosts; embedders with a real UI provide their
// own Renderer.
type TermRenderer struct {
	in  io.Reader
	out io.Writer
	// OnSubmit, when set, is invoked once all visible fields are answered,
	// typically bound to the orchestrator's SubmitCredentialForm.
	OnSubmit func(ctx context.Context, f *form.Form) error
}

// NewTermRenderer creates a terminal renderer reading answers from in.
func NewTermRenderer(in io.Reader, out io.Writer) *TermRenderer {
	return &TermRenderer{in: in, out: out}
}

func (r *TermRenderer) Render(ctx context.Context, view *FormView) (Modal, error) {
	modal := &termModal{out: r.out, done: make(chan struct{})}
	fmt.Fprintf(r.out, "%s\n", view.Title)
	if view.Description != "" {
		fmt.Fprintf(r.out, "%s\n", view.Description)
	}
	go r.prompt(ctx, view.Form, modal)
	return modal, nil
}

func (r *TermRenderer) prompt(ctx context.Context, f *form.Form, modal *termModal) {
	reader := bufio.NewReader(r.in)
	for _, field := range f.Fields() {
		// visibility may have changed while answering earlier fields
		visibility, _ := f.Visibility(field.Name)
		if !visibility.Visible {
			continue
		}
		value, err := r.ask(reader, f, &field, visibility.Required)
		if err != nil {
			modal.Close()
			return
		}
		_ = f.SetValue(field.Name, value)
	}
	if r.OnSubmit != nil {
		if err := r.OnSubmit(ctx, f); err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}
	modal.Close()
}

func (r *TermRenderer) ask(reader *bufio.Reader, f *form.Form, field *schema.FieldSpec, required bool) (string, error) {
	for {
		label := field.Name
		if field.Desc != "" {
			label += " (" + field.Desc + ")"
		}
		if field.Type == schema.FieldSelect {
			for _, option := range field.Options {
				fmt.Fprintf(r.out, "  %s - %s\n", option.Value, option.Label)
			}
			if current, ok := f.Value(field.Name); ok && current != "" {
				label += " [" + current + "]"
			}
		}
		fmt.Fprintf(r.out, "%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		value := strings.TrimSpace(line)
		if value == "" && field.Type == schema.FieldSelect {
			value, _ = f.Value(field.Name) // keep the default option
		}
		if value == "" && required {
			fmt.Fprintf(r.out, "%s is required\n", field.Name)
			continue
		}
		return value, nil
	}
}

type termModal struct {
	out    io.Writer
	mux    sync.Mutex
	closed bool
	done   chan struct{}
}

func (m *termModal) Closed() bool {
	m.mux.Lock()
	defer m.mux.Unlock()
	return m.closed
}

func (m *termModal) ShowError(message string) {
	fmt.Fprintf(m.out, "error: %s\n", message)
}

func (m *termModal) HideError() {}

func (m *termModal) Close() {
	m.mux.Lock()
	defer m.mux.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	close(m.done)
}
