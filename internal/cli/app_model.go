package cli

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/erickthegreen/crafttable/internal/cli/formatter"
)

// appModel is the root bubbletea Model. It manages a view stack, the header
// with the wall clock and break countdown, and a transient notice line.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	now    time.Time
	notice noticeMsg

	// lastBreakAlert suppresses repeated due-break notices for the same slot.
	lastBreakAlert string
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:   app,
		Prefs: app.Prefs.Load(),
		Agent: app.Agent,
	}
	m := appModel{
		state: state,
		now:   time.Now(),
	}
	m.viewStack = []View{newCatalogView(state)}
	if svc := app.StartService; svc != nil {
		m.viewStack = append(m.viewStack, newServiceForm(state, *svc))
	}
	return m
}

// RunTUI starts the interactive terminal program.
func RunTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tickClock()}
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case clockTickMsg:
		m.now = time.Time(msg)
		// The countdown follows the wall clock, so a running break ends even
		// when another view is on screen.
		if _, _, ok := m.state.App.Breaks.Running(); ok && m.state.App.Breaks.Remaining(m.now) == 0 {
			m.state.App.Breaks.Finish()
			return m, tea.Batch(
				tickClock(),
				notify("Pausa encerrada. Bom retorno!"),
				func() tea.Msg { return breakFinishedMsg{} },
			)
		}
		return m, tea.Batch(tickClock(), m.checkBreakDue())

	case pushViewMsg:
		m.notice = noticeMsg{}
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		m.notice = noticeMsg{}
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case wizardCompleteMsg:
		// Pop the form view and run the follow-up atomically.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, msg.nextCmd

	case noticeMsg:
		m.notice = msg
		return m, nil

	case breakFinishedMsg:
		m.lastBreakAlert = ""
		return m, nil
	}

	// Forward everything else (timer ticks etc.) to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Any key clears the transient notice.
	m.notice = noticeMsg{}

	// Forms own the keyboard, including q and esc.
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, nil
		}
		return m, nil
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

// checkBreakDue fires one notice when an untaken break window opens.
func (m *appModel) checkBreakDue() tea.Cmd {
	due := m.state.App.Breaks.Due(m.now)
	if due == nil {
		return nil
	}
	if m.lastBreakAlert == due.Name {
		return nil
	}
	m.lastBreakAlert = due.Name
	return notify("Hora da " + due.Name + "! Abra as pausas com p.")
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StyleHeader.Render("craft table")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	left := title + breadcrumb
	right := m.renderClock()

	width := max(m.state.Width, 20)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	header := left + strings.Repeat(" ", gap) + right

	sep := formatter.Dim(strings.Repeat("─", width))
	return header + "\n" + sep
}

// renderClock shows the wall clock, or the break countdown while one runs.
func (m *appModel) renderClock() string {
	if name, endsAt, ok := m.state.App.Breaks.Running(); ok {
		rem := endsAt.Sub(m.now)
		return formatter.StyleYellow.Render(name+" "+formatter.FormatCountdown(rem)) + "  " + formatter.FormatClock(m.now)
	}
	return formatter.FormatClock(m.now)
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	if m.notice.text != "" {
		style := formatter.StyleGreen
		if m.notice.isErr {
			style = formatter.StyleRed
		}
		hints = append(hints, style.Render(m.notice.text))
	} else if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	bar := strings.Join(hints, "  ")
	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}
