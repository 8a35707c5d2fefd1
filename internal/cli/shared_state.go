package cli

import "github.com/erickthegreen/crafttable/internal/prefs"

// SharedState carries cross-view data: the wired App, terminal geometry and
// the per-session agent registration.
type SharedState struct {
	App    *App
	Prefs  prefs.Preferences
	Width  int
	Height int

	// Agent is the registration (matrícula) appended to every record. It is
	// session state, never persisted.
	Agent string
}

// headerLines + status bar consume a fixed number of rows.
const chromeHeight = 4

// ContentHeight returns the rows available to the active view.
func (s *SharedState) ContentHeight() int {
	h := s.Height - chromeHeight
	if h < 0 {
		return 0
	}
	return h
}
