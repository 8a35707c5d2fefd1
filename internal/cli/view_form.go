package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formView wraps a boundForm as a View on the navigation stack. When the
// form completes, it sends a wizardCompleteMsg with the done callback's
// result so the root model pops it and runs the follow-up atomically.
type formView struct {
	state    *SharedState
	bound    *boundForm
	titleStr string
	done     func(*boundForm) tea.Cmd
}

func newFormView(state *SharedState, title string, bound *boundForm, done func(*boundForm) tea.Cmd) *formView {
	return &formView{
		state:    state,
		bound:    bound,
		titleStr: title,
		done:     done,
	}
}

func (v *formView) Init() tea.Cmd {
	return v.bound.form.Init()
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the form.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return wizardCompleteMsg{nextCmd: notify("Preenchimento cancelado.")}
		}
	}

	form, cmd := v.bound.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.bound.form = f
	}

	if v.bound.form.State == huh.StateCompleted {
		var doneCmd tea.Cmd
		if v.done != nil {
			doneCmd = v.done(v.bound)
		}
		return v, func() tea.Msg {
			return wizardCompleteMsg{nextCmd: tea.Batch(cmd, doneCmd)}
		}
	}

	return v, cmd
}

func (v *formView) View() string {
	return v.bound.form.View()
}

func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.titleStr }
func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirmar")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancelar")),
	}
}
