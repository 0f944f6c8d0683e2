package connect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monkedo/connect-go/client"
	"github.com/monkedo/connect-go/client/theme"
)

func TestNew_RequiresProject(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, client.ErrInvalidArgument)
	_, err = New(&Options{})
	assert.ErrorIs(t, err, client.ErrInvalidArgument)
}

func TestNew_AppliesOptions(t *testing.T) {
	cli, err := New(&Options{
		ProjectID: "p1",
		Theme:     &theme.Options{Styles: theme.Elements{Title: "color: red"}},
	})
	require.NoError(t, err)
	current := cli.Theme()
	assert.Equal(t, "color: red", current.Styles.Title)
	assert.Equal(t, theme.Default().Styles.Header, current.Styles.Header)
}
