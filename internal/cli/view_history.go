package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erickthegreen/crafttable/internal/cli/formatter"
	"github.com/erickthegreen/crafttable/internal/domain"
)

// historyView browses the attendance log, one tab per category. "enter"
// opens the full record, "R" asks for confirmation and resets everything.
type historyView struct {
	state      *SharedState
	tab        int // index into domain.AllCategories
	cursor     int
	confirming bool // reset confirmation pending
}

func newHistoryView(state *SharedState) *historyView {
	return &historyView{state: state}
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "Histórico" }

func (v *historyView) ShortHelp() []key.Binding {
	if v.confirming {
		return []key.Binding{
			key.NewBinding(key.WithKeys("y"), key.WithHelp("s", "confirmar limpeza")),
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "cancelar")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "categoria")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
		key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "limpar tudo")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "voltar")),
	}
}

func (v *historyView) Init() tea.Cmd { return nil }

func (v *historyView) category() domain.Category {
	return domain.AllCategories[v.tab]
}

func (v *historyView) records() []domain.Record {
	return v.state.App.History.Records(v.category())
}

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.confirming {
		switch keyMsg.String() {
		case "y", "s", "Y", "S":
			v.confirming = false
			v.cursor = 0
			if err := v.state.App.History.Reset(); err != nil {
				return v, notifyErr(err)
			}
			return v, notify("Histórico limpo.")
		default:
			v.confirming = false
			return v, notify("Limpeza cancelada.")
		}
	}

	switch keyMsg.String() {
	case "left":
		v.tab = (v.tab + len(domain.AllCategories) - 1) % len(domain.AllCategories)
		v.cursor = 0
	case "right", "tab":
		v.tab = (v.tab + 1) % len(domain.AllCategories)
		v.cursor = 0
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.records())-1 {
			v.cursor++
		}
	case "enter":
		// The list renders newest first, so the cursor counts from the end.
		recs := v.records()
		if v.cursor < len(recs) {
			rec := recs[len(recs)-1-v.cursor]
			return v, pushView(newRecordView(v.state, v.category(), rec, false))
		}
	case "R":
		if v.state.App.History.Total() == 0 {
			return v, notify("O histórico já está vazio.")
		}
		v.confirming = true
	}
	return v, nil
}

func (v *historyView) View() string {
	var b strings.Builder
	b.WriteString("\n  ")

	// Category tabs with per-category counts.
	for i, c := range domain.AllCategories {
		label := fmt.Sprintf("%s (%d)", c, v.state.App.History.Len(c))
		if i == v.tab {
			b.WriteString(formatter.CategoryStyle(c).Render("[" + label + "]"))
		} else {
			b.WriteString(formatter.Dim(" " + label + " "))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	if v.confirming {
		b.WriteString("  " + formatter.StyleRed.Render("Limpar TODO o histórico? (s/n)") + "\n")
		return b.String()
	}

	recs := v.records()
	if len(recs) == 0 {
		b.WriteString("  " + formatter.Dim("Nenhum registro nesta categoria.") + "\n")
		return b.String()
	}

	// Newest first.
	for i := len(recs) - 1; i >= 0; i-- {
		idx := len(recs) - 1 - i
		cursor := "  "
		if idx == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(cursor + formatter.FormatRecordLine(recs[i]) + "\n")
	}
	return b.String()
}
