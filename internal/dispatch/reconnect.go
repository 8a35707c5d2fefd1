package dispatch

import (
	"fmt"
	"strings"

	"github.com/erickthegreen/crafttable/internal/domain"
)

// Reconnection (service 10) field keys.
const (
	keyState          = "ESTADO"
	keyInstallType    = "TIPO DE INSTALAÇÃO"
	keyReconnectType  = "TIPO DE RELIGAÇÃO"
	keyPopupChecked   = "POP-UP DE RELIGAÇÃO DE CONFIANÇA FOI VERIFICADO?"
	keyInvoiceCount   = "QUANTIDADE DE FATURAS"
	keyRefMonth       = "MÊS REFERENTE"
	keyPayDate        = "DATA PGTO"
	keyPayTime        = "HORA PGTO"
	keyInvoiceValue   = "VALOR"
	keyCollectionSite = "NOME LOCAL AGENTE ARRECADADOR"
)

// ReconnectStates lists the covered states in picker order.
var ReconnectStates = []string{"Amapá", "Alagoas", "Maranhão", "Piauí", "Pará"}

// reconnectFees maps state → reconnection type → installation phase → fee.
// Urgência is only offered in Pará; FeeFor enforces that.
var reconnectFees = map[string]map[string]map[string]string{
	"Amapá": {
		"Comum":    {"Monofásica": "R$ 10,38", "Bifásica": "R$ 14,29", "Trifásica": "R$ 42,92"},
		"Urgência": {"Monofásica": "R$ 53,78", "Bifásica": "R$ 80,70", "Trifásica": "R$ 134,52"},
	},
	"Alagoas": {
		"Comum":    {"Monofásica": "R$ 11,21", "Bifásica": "R$ 15,45", "Trifásica": "R$ 46,38"},
		"Urgência": {"Monofásica": "R$ 53,78", "Bifásica": "R$ 80,70", "Trifásica": "R$ 134,52"},
	},
	"Maranhão": {
		"Comum":    {"Monofásica": "R$ 10,73", "Bifásica": "R$ 14,79", "Trifásica": "R$ 44,40"},
		"Urgência": {"Monofásica": "R$ 53,78", "Bifásica": "R$ 80,70", "Trifásica": "R$ 134,52"},
	},
	"Piauí": {
		"Comum":    {"Monofásica": "R$ 10,86", "Bifásica": "R$ 14,96", "Trifásica": "R$ 44,91"},
		"Urgência": {"Monofásica": "R$ 53,78", "Bifásica": "R$ 80,70", "Trifásica": "R$ 134,52"},
	},
	"Pará": {
		"Comum":    {"Monofásica": "R$ 10,72", "Bifásica": "R$ 14,77", "Trifásica": "R$ 44,35"},
		"Urgência": {"Monofásica": "R$ 53,78", "Bifásica": "R$ 80,70", "Trifásica": "R$ 134,52"},
	},
}

// reconnectDeadlines maps reconnection type to the regulated service window.
var reconnectDeadlines = map[string]string{
	"Comum":    "24 horas",
	"Urgência": "4 horas",
}

// FeeFor resolves the taxed fee and regulated deadline for a reconnection.
// Urgent reconnections are available only in Pará; elsewhere the fee is
// unavailable and the deadline says so.
func FeeFor(state, reconnectType, installType string) (fee, deadline string) {
	byType, ok := reconnectFees[state]
	if !ok {
		return "", ""
	}
	byPhase, ok := byType[reconnectType]
	if !ok {
		return "", ""
	}
	fee, ok = byPhase[installType]
	if !ok {
		return "", ""
	}
	deadline = reconnectDeadlines[reconnectType]
	if reconnectType == "Urgência" && state != "Pará" {
		return "N/A", "Apenas no Pará"
	}
	return fee, deadline
}

// Service 10 — Religação. The fee and deadline are derived from the selected
// state, installation and reconnection type at formatting time.
func buildReconnection(svc domain.Service) *FormSpec {
	stateOpts := make([]Option, 0, len(ReconnectStates))
	for _, s := range ReconnectStates {
		stateOpts = append(stateOpts, Opt(s))
	}
	return &FormSpec{
		Service: svc,
		Sections: []Section{
			{Fields: []Field{{Key: keyReference, Kind: FieldText}}},
			{
				Title: "Seletor de Religação",
				Fields: []Field{
					{Key: keyState, Kind: FieldChoice, Options: stateOpts},
					{Key: keyInstallType, Kind: FieldChoice, Options: []Option{
						Opt("Monofásica"), Opt("Bifásica"), Opt("Trifásica"),
					}},
					{Key: keyReconnectType, Kind: FieldChoice, Options: []Option{
						Opt("Comum"), Opt("Urgência"),
					}},
					{Key: keyPopupChecked, Kind: FieldChoice, Options: []Option{
						{Label: "Sim", Value: "SIM"}, {Label: "Não", Value: "NAO"},
					}},
				},
			},
			{
				Title: "Dados do Pagamento",
				Group: &ItemGroup{
					Key:        keyInvoiceCount,
					Title:      "Detalhes da Fatura",
					CountLabel: "Quantidade de faturas",
					Min:        0, Max: 10, Default: 1,
					Fields: []Field{
						{Key: keyRefMonth, Kind: FieldText},
						{Key: keyPayDate, Kind: FieldText},
						{Key: keyPayTime, Kind: FieldText},
						{Key: keyInvoiceValue, Kind: FieldText},
					},
				},
				Fields: []Field{{Key: keyCollectionSite, Kind: FieldText}},
			},
			{
				Title: "Verificação de Débitos",
				Fields: []Field{
					{Key: "FATURA EM ABERTO E VENCIDA?", Kind: FieldChoice, Options: []Option{{Label: "Sim", Value: "SIM"}, {Label: "Não", Value: "NAO"}}},
					{Key: "ENTRADA DE PARCELAMENTO?", Kind: FieldChoice, Options: []Option{{Label: "Sim", Value: "SIM"}, {Label: "Não", Value: "NAO"}}},
					{Key: "FATURA CNR?", Kind: FieldChoice, Options: []Option{{Label: "Sim", Value: "SIM"}, {Label: "Não", Value: "NAO"}}},
					{Key: "FATURA BLOQUEADA?", Kind: FieldChoice, Options: []Option{{Label: "Sim", Value: "SIM"}, {Label: "Não", Value: "NAO"}}},
				},
			},
		},
	}
}

func formatReconnection(v Values) string {
	var b strings.Builder
	b.WriteString("SOLICITA RELIGAÇÃO:\n")
	b.WriteString(basicInfo(v))
	line(&b, keyReference, v.Get(keyReference))

	state := v.Get(keyState)
	install := v.Get(keyInstallType)
	rtype := v.Get(keyReconnectType)
	line(&b, keyState, state)
	line(&b, keyInstallType, install)
	line(&b, keyReconnectType, rtype)

	fee, deadline := FeeFor(state, rtype, install)
	line(&b, "VALOR DE SERVIÇO TAXADO", fee)
	line(&b, "PRAZO DO SERVIÇO", deadline)

	b.WriteString(keyPopupChecked + " " + v.Get(keyPopupChecked) + "\n")

	b.WriteString("\n--- Dados do Pagamento ---\n")
	count := v.Count(keyInvoiceCount, 0)
	if count == 0 {
		b.WriteString("Nenhuma fatura informada para esta religação (ex: religação de confiança).\n")
	}
	for i := 1; i <= count; i++ {
		b.WriteString(fmt.Sprintf("--- Fatura %d ---\n", i))
		b.WriteString("  " + keyRefMonth + ": " + v.Item(keyRefMonth, i) + "\n")
		b.WriteString("  " + keyPayDate + ": " + v.Item(keyPayDate, i) + "\n")
		b.WriteString("  " + keyPayTime + ": " + v.Item(keyPayTime, i) + "\n")
		b.WriteString("  " + keyInvoiceValue + ": " + v.Item(keyInvoiceValue, i) + "\n")
	}
	line(&b, keyCollectionSite, v.Get(keyCollectionSite))

	b.WriteString("\n--- Verificação de Débitos ---\n")
	for _, check := range []string{"FATURA EM ABERTO E VENCIDA?", "ENTRADA DE PARCELAMENTO?", "FATURA CNR?", "FATURA BLOQUEADA?"} {
		if ans := v.Get(check); ans != "" {
			b.WriteString(check + " " + ans + "\n")
		}
	}
	return b.String()
}
