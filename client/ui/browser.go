package ui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"sync"

	"github.com/monkedo/connect-go/client/watch"
)

// BrowserOpener opens authorization URLs in the system browser. The launched
// process stands in for the popup window: its exit marks the surface closed.
// Most desktop browsers hand the URL to an already-running instance and exit
// immediately; hosts that can track a real window (webview embedders) should
// provide their own Opener.
type BrowserOpener struct{}

func (o BrowserOpener) Open(ctx context.Context, request OpenRequest) (watch.Surface, error) {
	cmd := openCommand(request.URL)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPopupBlocked, err)
	}
	surface := &processSurface{done: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		surface.markClosed()
	}()
	return surface, nil
}

func openCommand(URL string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", URL)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", URL)
	default:
		return exec.Command("xdg-open", URL)
	}
}

type processSurface struct {
	once sync.Once
	done chan struct{}
}

func (s *processSurface) markClosed() {
	s.once.Do(func() { close(s.done) })
}

func (s *processSurface) Closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}
