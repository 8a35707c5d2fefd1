package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigation and notification messages exchanged between views and the root
// model.

type pushViewMsg struct{ view View }

type popViewMsg struct{}

type replaceViewMsg struct{ view View }

// noticeMsg flashes a transient line in the status bar.
type noticeMsg struct {
	text  string
	isErr bool
}

// clockTickMsg drives the status-bar clock and the break-due check.
type clockTickMsg time.Time

// wizardCompleteMsg pops the form view and runs the follow-up command.
type wizardCompleteMsg struct{ nextCmd tea.Cmd }

// breakFinishedMsg signals that the running break countdown elapsed.
type breakFinishedMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func notify(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}

func notifyErr(err error) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: err.Error(), isErr: true} }
}

func tickClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}
