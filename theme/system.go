package theme

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ProbeTimeout bounds a single OS appearance query
const ProbeTimeout = 2 * time.Second

// Probe reports the OS-level light/dark preference
type Probe interface {
	Detect(ctx context.Context) Theme
}

// ProbeFunc adapts a function to Probe
type ProbeFunc func(ctx context.Context) Theme

// Detect calls f
func (f ProbeFunc) Detect(ctx context.Context) Theme {
	return f(ctx)
}

// runner executes a command and returns its standard output
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// OSProbe asks the desktop environment for its appearance and falls back to
// the terminal background when the platform has no answer.
type OSProbe struct {
	goos     string
	run      runner
	fallback Theme
}

// NewOSProbe creates a probe for the running platform. The terminal
// background is sampled once here, before the UI takes over the screen.
func NewOSProbe() *OSProbe {
	fallback := Light
	if lipgloss.HasDarkBackground() {
		fallback = Dark
	}
	return &OSProbe{
		goos:     runtime.GOOS,
		run:      execRunner,
		fallback: fallback,
	}
}

// Detect returns the current OS preference
func (p *OSProbe) Detect(ctx context.Context) Theme {
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	switch p.goos {
	case "darwin":
		// The key is absent in light mode, which makes defaults exit 1.
		out, err := p.run(ctx, "defaults", "read", "-g", "AppleInterfaceStyle")
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Light
		}
		if err == nil {
			if bytes.Contains(bytes.ToLower(out), []byte("dark")) {
				return Dark
			}
			return Light
		}
	case "linux", "freebsd", "openbsd":
		out, err := p.run(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
		if err == nil {
			scheme := strings.Trim(strings.TrimSpace(string(out)), "'")
			switch scheme {
			case "prefer-dark":
				return Dark
			case "prefer-light":
				return Light
			}
		}
	}
	return p.fallback
}
