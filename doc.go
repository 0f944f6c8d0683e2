// Package connect provides high-level helpers for letting end users link
// their third-party app accounts to a Monkedo project.
//
// The package glues the low-level building blocks - the HTTP gateway, the
// popup/modal watch machinery, the credential form engine and the theme
// layer - behind a single entry point:
//
//	cli, _ := connect.New(&connect.Options{ProjectID: "p1"})
//	outcome, _ := cli.ConnectApp(ctx, &schema.ConnectionRequest{UserID: "u1", AppKey: "slack"})
//
// Options can be populated from CLI flags or configuration files. By default
// the client opens OAuth authorization URLs in the system browser and runs
// the credential form headless; hosts embed their own UI by supplying a
// ui.Renderer and ui.Opener.
//
// See the README for a more complete introduction.
package connect
