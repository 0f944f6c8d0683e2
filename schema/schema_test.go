package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCredentialInfo_Decode(t *testing.T) {
	payload := `{
		"appName": "Acme CRM",
		"desc": "Create an API key in **Settings**.",
		"fields": [
			{"name": "region", "type": "select", "options": [
				{"value": "us", "label": "United States"},
				{"value": "eu", "label": "Europe"}
			]},
			{"name": "apiKey", "desc": "Your Acme API key"},
			{"name": "euTenant", "type": "text", "isOptional": true, "showWhen": {"key": "region", "value": "eu"}}
		]
	}`
	var info CredentialInfo
	require.NoError(t, json.Unmarshal([]byte(payload), &info))
	require.Equal(t, "Acme CRM", info.AppName)
	require.Len(t, info.Fields, 3)
	require.Equal(t, FieldSelect, info.Fields[0].Type)
	require.Equal(t, "eu", info.Fields[0].Options[1].Value)
	require.Nil(t, info.Fields[1].ShowWhen)
	sw := info.Fields[2].ShowWhen
	require.NotNil(t, sw)
	require.Equal(t, "region", sw.Key)
	require.True(t, sw.Matches("eu"))
	require.False(t, sw.Matches("us"))
}

func TestShowWhen_NilReceiver(t *testing.T) {
	var sw *ShowWhen
	require.False(t, sw.Matches(""))
}
