package cli

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erickthegreen/crafttable/internal/cli/formatter"
	"github.com/erickthegreen/crafttable/internal/domain"
)

// recordView shows a finalized record in a scrollable viewport. "c" copies
// the full text again.
type recordView struct {
	state  *SharedState
	cat    domain.Category
	rec    domain.Record
	vp     viewport.Model
	copied bool
	ready  bool
}

func newRecordView(state *SharedState, cat domain.Category, rec domain.Record, copied bool) *recordView {
	return &recordView{
		state:  state,
		cat:    cat,
		rec:    rec,
		copied: copied,
	}
}

func (v *recordView) Init() tea.Cmd {
	v.resize()
	return nil
}

func (v *recordView) resize() {
	w := v.state.Width
	if w <= 0 {
		w = 80
	}
	vp := viewport.New(w, v.state.ContentHeight())
	vp.SetContent(formatter.FormatRecordDetail(v.cat, v.rec))
	v.vp = vp
	v.ready = true
}

func (v *recordView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "c" {
			if err := clipboard.WriteAll(v.rec.FullText); err != nil {
				return v, notifyErr(err)
			}
			v.copied = true
			return v, notify("Texto copiado para a área de transferência.")
		}
	}

	if !v.ready {
		return v, nil
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *recordView) View() string {
	if !v.ready {
		return ""
	}
	return v.vp.View()
}

func (v *recordView) ID() ViewID    { return ViewRecord }
func (v *recordView) Title() string { return "Registro" }
func (v *recordView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copiar")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "rolar")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "voltar")),
	}
}
