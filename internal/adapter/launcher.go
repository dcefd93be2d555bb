package adapter

import (
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"
)

// startFunc starts a detached process; replaced in tests
type startFunc func(name string, args ...string) error

func startDetached(name string, args ...string) error {
	return exec.Command(name, args...).Start() // Start async, don't wait
}

// Launcher opens recipe links (videos, sources) in an external program
type Launcher struct {
	command string   // configured command, empty for system default
	args    []string // additional arguments placed before the URL
	logger  *slog.Logger
	start   startFunc
	goos    string
}

// NewLauncher creates a Launcher for the configured opener
func NewLauncher(cfg OpenerConfig, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command: cfg.Command,
		args:    cfg.Args,
		logger:  logger,
		start:   startDetached,
		goos:    runtime.GOOS,
	}
}

// Open launches link with the configured command or the system default handler
func (l *Launcher) Open(link string) error {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("refusing to open non-web link %q", link)
	}

	name, args := l.commandLine(link)
	l.logger.Info("opening link", "command", name, "args", args)

	if err := l.start(name, args...); err != nil {
		l.logger.Error("failed to open link", "command", name, "error", err)
		return fmt.Errorf("failed to open link with %s: %w", name, err)
	}
	return nil
}

// commandLine builds the program and arguments used to open link
func (l *Launcher) commandLine(link string) (string, []string) {
	if l.command != "" {
		args := append(append([]string{}, l.args...), link)
		return l.command, args
	}

	switch l.goos {
	case "darwin":
		return "open", []string{link}
	case "windows":
		return "cmd", []string{"/c", "start", "", link}
	default:
		// Linux and other Unix-like systems
		return "xdg-open", []string{link}
	}
}
