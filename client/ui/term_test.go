package ui

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monkedo/connect-go/client/form"
	"github.com/monkedo/connect-go/schema"
)

func TestTermRenderer_CollectsAndSubmits(t *testing.T) {
	f, err := form.New("u1", "acme", []schema.FieldSpec{
		{Name: "apiKey", Desc: "Your API key"},
		{Name: "region", Type: schema.FieldSelect, Options: []schema.SelectOption{
			{Value: "us", Label: "US"},
			{Value: "eu", Label: "EU"},
		}},
	})
	require.NoError(t, err)

	// apiKey answered, region left empty so the default option sticks
	in := strings.NewReader("secret\n\n")
	out := &bytes.Buffer{}
	renderer := NewTermRenderer(in, out)

	var mux sync.Mutex
	var submitted map[string]any
	renderer.OnSubmit = func(ctx context.Context, f *form.Form) error {
		mux.Lock()
		defer mux.Unlock()
		submitted = f.Values()
		return nil
	}

	modal, err := renderer.Render(context.Background(), &FormView{Title: "Connect Acme", Form: f})
	require.NoError(t, err)

	assert.Eventually(t, modal.Closed, time.Second, 10*time.Millisecond)
	mux.Lock()
	defer mux.Unlock()
	assert.Equal(t, map[string]any{"apiKey": "secret", "region": "us"}, submitted)
	assert.Contains(t, out.String(), "Connect Acme")
	assert.Contains(t, out.String(), "us - US")
}

func TestTermRenderer_RequiredReprompt(t *testing.T) {
	f, err := form.New("u1", "acme", []schema.FieldSpec{{Name: "apiKey"}})
	require.NoError(t, err)

	in := strings.NewReader("\nsecret\n")
	out := &bytes.Buffer{}
	renderer := NewTermRenderer(in, out)

	modal, err := renderer.Render(context.Background(), &FormView{Title: "Connect Acme", Form: f})
	require.NoError(t, err)

	assert.Eventually(t, modal.Closed, time.Second, 10*time.Millisecond)
	value, _ := f.Value("apiKey")
	assert.Equal(t, "secret", value)
	assert.Contains(t, out.String(), "apiKey is required")
}
