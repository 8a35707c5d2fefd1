package cli

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erickthegreen/crafttable/internal/dispatch"
	"github.com/erickthegreen/crafttable/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// newServiceForm builds the bound form view for svc, wired to the submission
// pipeline.
func newServiceForm(state *SharedState, svc domain.Service) *formView {
	spec := dispatch.Spec(svc)
	bound := newBoundForm(spec, state.Agent)
	return newFormView(state, svc.Name, bound, func(bf *boundForm) tea.Cmd {
		return registerCmd(state, svc, bf)
	})
}

// startFormCmd pushes the form for svc on the stack.
func startFormCmd(state *SharedState, svc domain.Service) tea.Cmd {
	return pushView(newServiceForm(state, svc))
}

// registerCmd runs the full submission pipeline: validate, compose, copy to
// the clipboard, persist to history and open the record view.
func registerCmd(state *SharedState, svc domain.Service, bf *boundForm) tea.Cmd {
	values := bf.Values()
	agent := bf.Agent()

	if err := dispatch.ValidateSubmission(svc, values, agent); err != nil {
		return notifyErr(err)
	}
	state.Agent = agent

	text := dispatch.Compose(svc, values, agent)
	rec := domain.Record{
		ID:       uuid.NewString(),
		Date:     time.Now().Format(domain.RecordDateLayout),
		Service:  svc.Name,
		Name:     recordName(svc, values),
		Protocol: values.Get(dispatch.KeyProtocol),
		Agent:    agent,
		FullText: text,
	}

	copied := true
	if err := clipboard.WriteAll(text); err != nil {
		copied = false
		state.App.Log.Warn("clipboard indisponível", zap.Error(err))
	}

	if err := state.App.History.Append(svc.Category, rec); err != nil {
		state.App.Log.Error("falha ao salvar histórico", zap.Error(err))
		return tea.Batch(
			pushView(newRecordView(state, svc.Category, rec, copied)),
			notifyErr(fmt.Errorf("registro não foi salvo no histórico: %w", err)),
		)
	}

	notice := "Registro salvo no histórico."
	if copied {
		notice = "Registro salvo e copiado para a área de transferência."
	}
	return tea.Batch(
		pushView(newRecordView(state, svc.Category, rec, copied)),
		notify(notice),
	)
}

// recordName picks the history display name. The anonymous fraud report has
// no customer name, so the record is filed under the complaint itself.
func recordName(svc domain.Service, v dispatch.Values) string {
	if svc.ID == "6" {
		return "Denúncia"
	}
	return v.Get(dispatch.KeyName)
}
