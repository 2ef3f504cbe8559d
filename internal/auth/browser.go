package auth

import (
	"os/exec"
	"runtime"
)

// BrowserOpener opens a URL for the user.
type BrowserOpener interface {
	Open(url string) error
}

// BrowserOpenerFunc adapts a function to BrowserOpener.
type BrowserOpenerFunc func(url string) error

// Open calls f(url).
func (f BrowserOpenerFunc) Open(url string) error { return f(url) }

// SystemBrowser opens URLs with the platform's default handler.
type SystemBrowser struct{}

// Open launches the browser and returns without waiting for it.
func (SystemBrowser) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// NoBrowser discards URLs.
type NoBrowser struct{}

// Open is a no-op.
func (NoBrowser) Open(string) error { return nil }
