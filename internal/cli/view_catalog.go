package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erickthegreen/crafttable/internal/catalog"
	"github.com/erickthegreen/crafttable/internal/cli/formatter"
	"github.com/erickthegreen/crafttable/internal/domain"
)

// catalogRow is one selectable line on the home screen: either a category
// header or a service entry.
type catalogRow struct {
	isHeader bool
	header   string
	category domain.Category
	svc      domain.Service
	favSlot  int // 1-based favorite slot, 0 otherwise
}

// jumpTimeoutMsg clears the digit-jump buffer after a pause.
type jumpTimeoutMsg struct{ seq int }

// catalogView is the home screen: favorites on top, then every service
// grouped by category. Typing a service number jumps straight to it.
type catalogView struct {
	state   *SharedState
	rows    []catalogRow
	cursor  int
	jumpBuf string
	jumpSeq int
}

func newCatalogView(state *SharedState) *catalogView {
	v := &catalogView{state: state}
	v.rebuild()
	return v
}

func (v *catalogView) ID() ViewID    { return ViewCatalog }
func (v *catalogView) Title() string { return "Serviços" }

func (v *catalogView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir formulário")),
		key.NewBinding(key.WithKeys("0"), key.WithHelp("0-20", "ir ao serviço")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favoritar")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "histórico")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pausas")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "sair")),
	}
}

func (v *catalogView) Init() tea.Cmd { return nil }

// rebuild recomputes the row list from the catalog and the favorite slots.
func (v *catalogView) rebuild() {
	var rows []catalogRow

	if slots := v.favoriteServices(); len(slots) > 0 {
		rows = append(rows, catalogRow{isHeader: true, header: "Favoritos"})
		for i, svc := range slots {
			if svc != nil {
				rows = append(rows, catalogRow{svc: *svc, favSlot: i + 1})
			}
		}
	}

	for _, c := range domain.AllCategories {
		services := catalog.ByCategory(c)
		if len(services) == 0 {
			continue
		}
		rows = append(rows, catalogRow{isHeader: true, header: string(c), category: c})
		for _, s := range services {
			rows = append(rows, catalogRow{svc: s, category: c})
		}
	}

	v.rows = rows
	if v.cursor >= len(rows) {
		v.cursor = len(rows) - 1
	}
	v.skipHeaders(1)
}

func (v *catalogView) favoriteServices() []*domain.Service {
	out := make([]*domain.Service, len(v.state.Prefs.Favorites))
	any := false
	for i, id := range v.state.Prefs.Favorites {
		if id == nil {
			continue
		}
		if s, ok := catalog.Lookup(*id); ok {
			svc := s
			out[i] = &svc
			any = true
		}
	}
	if !any {
		return nil
	}
	return out
}

// skipHeaders moves the cursor off header rows in the given direction.
func (v *catalogView) skipHeaders(dir int) {
	for v.cursor >= 0 && v.cursor < len(v.rows) && v.rows[v.cursor].isHeader {
		v.cursor += dir
	}
	if v.cursor < 0 {
		v.cursor = 0
		v.skipHeaders(1)
	}
	if v.cursor >= len(v.rows) {
		v.cursor = len(v.rows) - 1
		v.skipHeaders(-1)
	}
}

func (v *catalogView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case jumpTimeoutMsg:
		if msg.seq == v.jumpSeq {
			v.jumpBuf = ""
		}
		return v, nil

	case tea.KeyMsg:
		// Digit keys accumulate a service ID and jump to it.
		if k := msg.String(); len(k) == 1 && k[0] >= '0' && k[0] <= '9' {
			v.jumpBuf += k
			v.jumpSeq++
			for i, row := range v.rows {
				if !row.isHeader && row.favSlot == 0 && row.svc.ID == v.jumpBuf {
					v.cursor = i
					break
				}
			}
			seq := v.jumpSeq
			return v, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return jumpTimeoutMsg{seq: seq}
			})
		}
		v.jumpBuf = ""

		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
				v.skipHeaders(-1)
			}
		case "down", "j":
			if v.cursor < len(v.rows)-1 {
				v.cursor++
				v.skipHeaders(1)
			}
		case "enter":
			if row := v.current(); row != nil {
				return v, startFormCmd(v.state, row.svc)
			}
		case "f":
			if row := v.current(); row != nil {
				return v, v.toggleFavorite(row.svc)
			}
		case "h":
			return v, pushView(newHistoryView(v.state))
		case "p":
			return v, pushView(newBreaksView(v.state))
		}
	}
	return v, nil
}

func (v *catalogView) current() *catalogRow {
	if v.cursor < 0 || v.cursor >= len(v.rows) || v.rows[v.cursor].isHeader {
		return nil
	}
	return &v.rows[v.cursor]
}

// toggleFavorite removes the service if it occupies a slot, otherwise fills
// the first free slot. The change is persisted immediately.
func (v *catalogView) toggleFavorite(svc domain.Service) tea.Cmd {
	favs := v.state.Prefs.Favorites
	for i, id := range favs {
		if id != nil && *id == svc.ID {
			favs[i] = nil
			return v.saveFavorites("Favorito removido: " + svc.Name)
		}
	}
	for i, id := range favs {
		if id == nil {
			sid := svc.ID
			favs[i] = &sid
			return v.saveFavorites("Favorito adicionado: " + svc.Name)
		}
	}
	return notify("Os três favoritos já estão em uso; remova um com f.")
}

func (v *catalogView) saveFavorites(notice string) tea.Cmd {
	if err := v.state.App.Prefs.Save(v.state.Prefs); err != nil {
		return notifyErr(err)
	}
	v.rebuild()
	return notify(notice)
}

func (v *catalogView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	for i, row := range v.rows {
		if row.isHeader {
			if i > 0 {
				b.WriteString("\n")
			}
			style := formatter.StyleHeader
			if row.header != "Favoritos" {
				style = formatter.CategoryStyle(row.category)
			}
			b.WriteString("  " + style.Render(row.header) + "\n")
			continue
		}

		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		label := formatter.FormatServiceOption(row.svc)
		if row.favSlot > 0 {
			label += "  " + formatter.Dim("[F"+strconv.Itoa(row.favSlot)+"]")
		}
		b.WriteString(cursor + label + "\n")
	}

	if v.jumpBuf != "" {
		b.WriteString("\n  " + formatter.Dim("ir ao serviço: "+v.jumpBuf) + "\n")
	}
	return b.String()
}
