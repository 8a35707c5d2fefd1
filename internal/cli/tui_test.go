package cli

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/erickthegreen/crafttable/internal/breaks"
	"github.com/erickthegreen/crafttable/internal/catalog"
	"github.com/erickthegreen/crafttable/internal/dispatch"
	"github.com/erickthegreen/crafttable/internal/domain"
	"github.com/erickthegreen/crafttable/internal/history"
	"github.com/erickthegreen/crafttable/internal/prefs"
	"github.com/erickthegreen/crafttable/internal/session"
	"github.com/erickthegreen/crafttable/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	log := zap.NewNop()
	return &App{
		History: history.Open(filepath.Join(dir, "historico_registros.json"), log),
		Prefs:   prefs.NewStore(filepath.Join(dir, "config_tema.json"), log),
		Guard:   session.NewGuard(filepath.Join(dir, "ultimo_usuario.tmp"), log),
		Breaks:  breaks.NewState(breaks.DefaultSlots),
		Log:     log,
		Agent:   "A123",
	}
}

func testDriver(t *testing.T) *teatest.Driver {
	t.Helper()
	return teatest.New(t, newAppModel(testApp(t)), 100, 40)
}

func TestTUI_HomeShowsCatalogGroupedByCategory(t *testing.T) {
	d := testDriver(t)
	view := d.View()

	for _, c := range domain.AllCategories {
		assert.Contains(t, view, string(c))
	}
	assert.Contains(t, view, "10 - Religação")
	assert.Contains(t, view, "13 - Genesys")
	assert.Contains(t, view, "craft table")
}

func TestTUI_DigitJumpSelectsService(t *testing.T) {
	d := testDriver(t)
	d.Type("16")

	assert.Contains(t, d.View(), "▸ 16 - Problema com Equipamento")
}

func TestTUI_HistoryViewOpensAndGoesBack(t *testing.T) {
	d := testDriver(t)

	d.PressRune('h')
	view := d.View()
	assert.Contains(t, view, "Nenhum registro nesta categoria.")
	assert.Contains(t, view, "Histórico")

	d.Press(tea.KeyEsc)
	assert.Contains(t, d.View(), "1 - Serviços Emergenciais")
}

func TestTUI_BreaksViewStartsCountdown(t *testing.T) {
	d := testDriver(t)

	d.PressRune('p')
	view := d.View()
	assert.Contains(t, view, "Pausa 10 (1ª)")
	assert.Contains(t, view, "Pausa 20")

	d.Press(tea.KeyEnter)
	assert.Contains(t, d.View(), "em andamento")
}

func TestTUI_EnterOpensServiceForm(t *testing.T) {
	d := testDriver(t)

	d.Press(tea.KeyEnter) // first selectable service
	view := d.View()
	assert.Contains(t, view, "MATRÍCULA")
	assert.Contains(t, view, "Serviços Emergenciais")

	d.Press(tea.KeyEsc)
	assert.Contains(t, d.View(), "Preenchimento cancelado.")
}

func TestTUI_BreakFinishesWhileOffScreen(t *testing.T) {
	app := testApp(t)
	d := teatest.New(t, newAppModel(app), 100, 40)

	d.PressRune('p')
	d.Press(tea.KeyEnter)
	_, endsAt, running := app.Breaks.Running()
	require.True(t, running)

	// Leave the breaks view; the countdown must still end on the wall clock.
	d.Press(tea.KeyEsc)
	d.Send(clockTickMsg(endsAt.Add(time.Second)))

	_, _, running = app.Breaks.Running()
	assert.False(t, running)
	assert.True(t, app.Breaks.Taken("Pausa 10 (1ª)"))
	assert.Contains(t, d.View(), "Pausa encerrada")
}

func TestTUI_ServiceArgumentOpensFormOnLaunch(t *testing.T) {
	app := testApp(t)
	svc, ok := catalog.Lookup("10")
	require.True(t, ok)
	app.StartService = &svc

	d := teatest.New(t, newAppModel(app), 100, 40)
	view := d.View()
	assert.Contains(t, view, "MATRÍCULA")
	assert.Contains(t, view, "Religação")
}

func TestRootCmd_UnknownServiceArgument(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	cmd := NewRootCmd(app)
	cmd.SetArgs([]string{"serviço que não existe"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serviço desconhecido")
}

func TestTUI_QuitFromHome(t *testing.T) {
	d := testDriver(t)
	d.PressRune('q')
	assert.True(t, d.Quitting)
}

func TestRegisterCmd_AppendsToHistory(t *testing.T) {
	app := testApp(t)
	state := &SharedState{App: app, Prefs: prefs.Defaults(), Agent: app.Agent}

	svc, ok := catalog.Lookup("7")
	require.True(t, ok)

	bf := newBoundForm(dispatch.Spec(svc), "A123")
	*bf.bound[dispatch.KeyName] = "Maria"
	*bf.bound[dispatch.KeyProtocol] = "P-7"
	*bf.bound["SOLICITA ALTERAÇÃO PARA DATA FIXA NO DIA"] = "15"

	cmd := registerCmd(state, svc, bf)
	require.NotNil(t, cmd)

	require.Equal(t, 1, app.History.Len(domain.CategoryCommercial))
	rec := app.History.Records(domain.CategoryCommercial)[0]
	assert.Equal(t, "Mudança de Data Certa", rec.Service)
	assert.Equal(t, "Maria", rec.Name)
	assert.Equal(t, "A123", rec.Agent)
	assert.NotEmpty(t, rec.ID)
	assert.Contains(t, rec.FullText, "PARA O DIA 15.")
	assert.Contains(t, rec.FullText, "\nA123")
}

func TestRegisterCmd_ValidationFailureDoesNotPersist(t *testing.T) {
	app := testApp(t)
	state := &SharedState{App: app, Prefs: prefs.Defaults(), Agent: ""}

	svc, ok := catalog.Lookup("7")
	require.True(t, ok)

	bf := newBoundForm(dispatch.Spec(svc), "")
	*bf.bound[dispatch.KeyName] = "Maria"

	registerCmd(state, svc, bf)
	assert.Equal(t, 0, app.History.Total())
}

func TestRecordName_AnonymousFraudReport(t *testing.T) {
	svc, ok := catalog.Lookup("6")
	require.True(t, ok)
	assert.Equal(t, "Denúncia", recordName(svc, dispatch.Values{}))

	svc, ok = catalog.Lookup("4")
	require.True(t, ok)
	assert.Equal(t, "Ana", recordName(svc, dispatch.Values{dispatch.KeyName: "Ana"}))
}
