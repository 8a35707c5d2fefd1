// Package session detects workstation user changes between runs and performs
// the optional wipe of local data when a new agent logs in.
package session

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Wiper clears one persisted surface during a session wipe.
type Wiper interface {
	Wipe() error
}

// WiperFunc adapts a plain function to the Wiper interface.
type WiperFunc func() error

func (f WiperFunc) Wipe() error { return f() }

// Guard compares the current OS username with the one persisted by the
// previous run and wipes local data on confirmation.
type Guard struct {
	path   string // last-seen username file
	log    *zap.Logger
	wipers []Wiper
}

func NewGuard(path string, log *zap.Logger, wipers ...Wiper) *Guard {
	return &Guard{path: path, log: log, wipers: wipers}
}

// CurrentUsername returns the OS-reported username.
func CurrentUsername() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		// user.Current may include the domain on Windows.
		name := u.Username
		if i := strings.LastIndexByte(name, '\\'); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	return os.Getenv("USER")
}

// Check reports whether a different user was seen on the previous run.
// Returns the previous username when a mismatch is detected.
func (g *Guard) Check(current string) (previous string, changed bool) {
	data, err := os.ReadFile(g.path)
	if err != nil {
		if !os.IsNotExist(err) {
			g.log.Error("reading last-user file", zap.String("path", g.path), zap.Error(err))
		}
		return "", false
	}
	previous = strings.TrimSpace(string(data))
	return previous, previous != "" && previous != current
}

// Remember persists the current username for the next run.
func (g *Guard) Remember(current string) error {
	if err := os.MkdirAll(filepath.Dir(g.path), 0o755); err != nil {
		return fmt.Errorf("ensuring session dir: %w", err)
	}
	if err := os.WriteFile(g.path, []byte(current), 0o644); err != nil {
		return fmt.Errorf("writing last-user file: %w", err)
	}
	return nil
}

// Wipe runs every registered wiper. It keeps going on individual failures
// and returns the first error encountered.
func (g *Guard) Wipe() error {
	var first error
	for _, w := range g.wipers {
		if err := w.Wipe(); err != nil {
			g.log.Error("session wipe step failed", zap.Error(err))
			if first == nil {
				first = err
			}
		}
	}
	return first
}
