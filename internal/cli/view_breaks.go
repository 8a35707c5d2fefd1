package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erickthegreen/crafttable/internal/breaks"
	"github.com/erickthegreen/crafttable/internal/cli/formatter"
)

// breaksView shows the day's pause plan and runs the active countdown.
type breaksView struct {
	state   *SharedState
	cursor  int
	timer   timer.Model
	running bool
}

func newBreaksView(state *SharedState) *breaksView {
	return &breaksView{state: state}
}

func (v *breaksView) ID() ViewID    { return ViewBreaks }
func (v *breaksView) Title() string { return "Pausas" }

func (v *breaksView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "iniciar pausa")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "encerrar pausa")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "voltar")),
	}
}

func (v *breaksView) Init() tea.Cmd {
	// Resume the countdown display if a break is already running.
	if _, endsAt, ok := v.state.App.Breaks.Running(); ok {
		return v.attachTimer(time.Until(endsAt))
	}
	return nil
}

func (v *breaksView) attachTimer(d time.Duration) tea.Cmd {
	if d < 0 {
		d = 0
	}
	v.timer = timer.NewWithInterval(d, time.Second)
	v.running = true
	return v.timer.Init()
}

func (v *breaksView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg:
		var cmd tea.Cmd
		v.timer, cmd = v.timer.Update(msg)
		return v, cmd

	case timer.TimeoutMsg:
		v.running = false
		v.state.App.Breaks.Finish()
		return v, tea.Batch(
			notify("Pausa encerrada. Bom retorno!"),
			func() tea.Msg { return breakFinishedMsg{} },
		)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.state.App.Breaks.Slots)-1 {
				v.cursor++
			}
		case "enter":
			slot := v.state.App.Breaks.Slots[v.cursor]
			endsAt, err := v.state.App.Breaks.Start(slot.Name, time.Now())
			if err != nil {
				return v, notifyErr(err)
			}
			return v, tea.Batch(
				v.attachTimer(time.Until(endsAt)),
				notify("Pausa iniciada: "+slot.Name),
			)
		case "x":
			if _, _, ok := v.state.App.Breaks.Running(); !ok {
				return v, notify("Nenhuma pausa em andamento.")
			}
			v.running = false
			v.state.App.Breaks.Finish()
			return v, notify("Pausa encerrada manualmente.")
		}
	}
	return v, nil
}

func (v *breaksView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	now := time.Now()
	runningName, _, isRunning := v.state.App.Breaks.Running()

	for i, slot := range v.state.App.Breaks.Slots {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(cursor + v.renderSlot(slot, now, runningName) + "\n")
	}

	if isRunning && v.running {
		b.WriteString("\n  " + formatter.StyleYellow.Render("Em pausa: "+runningName))
		b.WriteString("  " + formatter.Bold(formatter.FormatCountdown(v.timer.Timeout)) + "\n")
	} else if due := v.state.App.Breaks.Due(now); due != nil {
		b.WriteString("\n  " + formatter.StyleYellow.Render("Hora da "+due.Name+"!") + "\n")
	}
	return b.String()
}

func (v *breaksView) renderSlot(slot breaks.Slot, now time.Time, runningName string) string {
	window := formatter.Dim(slot.Start + "–" + slot.End)
	status := ""
	switch {
	case slot.Name == runningName:
		status = formatter.StyleYellow.Render("em andamento")
	case v.state.App.Breaks.Taken(slot.Name):
		status = formatter.StyleGreen.Render("realizada")
	case slot.InWindow(now):
		status = formatter.Bold("disponível")
	default:
		status = formatter.Dim("fora da janela")
	}
	return formatter.Bold(slot.Name) + "  " + window + "  " + status
}
