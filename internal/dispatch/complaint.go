package dispatch

import (
	"strings"

	"github.com/erickthegreen/crafttable/internal/domain"
)

// responseChannel is the Telefone/Carta/E-mail choice reused across the
// complaint forms.
var responseChannel = []Option{
	{Label: "Telefone", Value: "TELEFONE"},
	{Label: "Carta", Value: "CARTA"},
	{Label: "E-mail", Value: "EMAIL"},
}

// Unified complaint (service 2) field keys, lettered a..j in the record.
const (
	keyComplaintDesc   = "DESCRIÇÃO DA RECLAMAÇÃO"
	keyDesiredSolution = "SOLUÇÃO PRETENDIDA"
	keyAgentAnalysis   = "ANÁLISE DO ATENDENTE"
	keyResponseChannel = "MEIO DE RESPOSTA"
	keyResponseContact = "CONTATO PARA RESPOSTA"
	keyWhatsAppOK      = "ACEITA RESPOSTA/FATURA VIA WHATSAPP"
	keyContactPhone    = "TELEFONE PARA CONTATO"
	keyBestTime        = "MELHOR HORÁRIO PARA CONTATO"
	keyContactEmail    = "E-MAIL PARA CONTATO"
	keyThirdPartyOK    = "AUTORIZA TERCEIROS A RECEBER A RESPOSTA"
	keyThirdPartyName  = "NOME E VÍNCULO DO TERCEIRO"
	keyThirdPartyTel   = "CONTATO DO TERCEIRO"
	keyExtraInfo       = "INFORMAÇÕES COMPLEMENTARES"
)

// Service 2 — Reclamações, the unified complaint form.
func buildUnifiedComplaint(svc domain.Service) *FormSpec {
	return &FormSpec{
		Service: svc,
		Sections: []Section{
			{
				Title: "a) Descrição da Reclamação",
				Fields: []Field{
					{Key: keyComplaintDesc, Kind: FieldText},
				},
			},
			{
				Title: "b) Solução Pretendida pelo Cliente",
				Fields: []Field{
					{Key: keyDesiredSolution, Kind: FieldText},
				},
			},
			{
				Title: "c) Análise do Atendente",
				Fields: []Field{
					{Key: keyAgentAnalysis, Kind: FieldText},
				},
			},
			{
				Title: "Dados de Contato e Permissões",
				Fields: []Field{
					{Key: keyResponseChannel, Kind: FieldChoice, Options: responseChannel},
					{Key: keyResponseContact, Kind: FieldText},
					{Key: keyWhatsAppOK, Kind: FieldChoice, Options: []Option{
						{Label: "Sim", Value: "SIM"}, {Label: "Não", Value: "NAO"},
					}},
					{Key: keyContactPhone, Kind: FieldText},
					{Key: keyBestTime, Kind: FieldChoice, Options: []Option{
						{Label: "Manhã", Value: "MANHA"}, {Label: "Tarde", Value: "TARDE"},
					}},
					{Key: keyContactEmail, Kind: FieldText},
					{Key: keyThirdPartyOK, Kind: FieldChoice, Options: []Option{
						{Label: "Sim", Value: "SIM"}, {Label: "Não", Value: "NAO"},
					}},
					{Key: keyThirdPartyName, Kind: FieldText},
					{Key: keyThirdPartyTel, Kind: FieldText},
				},
			},
			{
				Title: "j) Informações Complementares",
				Fields: []Field{
					{Key: keyExtraInfo, Kind: FieldText},
				},
			},
		},
	}
}

func orUnselected(s string) string {
	if s == "" {
		return "NÃO SELECIONADO"
	}
	return s
}

func formatUnifiedComplaint(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	b.WriteString("\n")

	b.WriteString("a) DESCRIÇÃO DA RECLAMAÇÃO: " + strings.TrimSpace(v.Get(keyComplaintDesc)) + "\n")
	b.WriteString("b) SOLUÇÃO PRETENDIDA: " + v.Get(keyDesiredSolution) + "\n")
	b.WriteString("c) ANÁLISE DO ATENDENTE: " + strings.TrimSpace(v.Get(keyAgentAnalysis)) + "\n")
	b.WriteString("d) MEIO DE RESPOSTA DA RECLAMAÇÃO: " + orUnselected(v.Get(keyResponseChannel)) +
		" - Contato: " + v.Get(keyResponseContact) + "\n")
	b.WriteString("e) ACEITA RECEBER RESPOSTA / FATURA VIA WHATSAPP: " + orUnselected(v.Get(keyWhatsAppOK)) + "\n")
	b.WriteString("f) TELEFONE PARA CONTATO: " + v.Get(keyContactPhone) + "\n")
	b.WriteString("g) MELHOR HORÁRIO PARA CONTATO: " + orUnselected(v.Get(keyBestTime)) + "\n")

	email := v.Get(keyContactEmail)
	if email == "" {
		email = "não informado"
	}
	b.WriteString("h) E-MAIL: " + email + "\n")

	authorizes := v.Get(keyThirdPartyOK)
	if authorizes == "" {
		authorizes = "NÃO"
	}
	b.WriteString("i) AUTORIZA TERCEIROS: " + authorizes + "\n")
	if authorizes == "SIM" {
		b.WriteString("   - NOME E VÍNCULO: " + v.Get(keyThirdPartyName) + "\n")
		b.WriteString("   - CONTATO: " + v.Get(keyThirdPartyTel) + "\n")
	}

	b.WriteString("j) INFORMAÇÕES COMPLEMENTARES: " + strings.TrimSpace(v.Get(keyExtraInfo)) + "\n")
	return b.String()
}

// voltageQuestions is the service 5 technical questionnaire, in record order.
var voltageQuestions = []string{
	"Houve acréscimo de carga instalada?",
	"Lâmpadas queimam com frequência?",
	"Lâmpadas piscam continuadamente?",
	"Lâmpadas perdem a luminosidade?",
	"Eletrodomésticos se auto desligam?",
	"A energia está oscilando (forte ou fraca)?",
	"Existe vizinho que utiliza motor, solda, bomba ou máquina de raio-x?",
}

// Service 5 — Nível de Tensão.
func buildVoltageLevel(svc domain.Service) *FormSpec {
	questionnaire := make([]Field, 0, len(voltageQuestions))
	for _, q := range voltageQuestions {
		questionnaire = append(questionnaire, Field{Key: q, Kind: FieldChoice, Options: YesNo})
	}
	return &FormSpec{
		Service: svc,
		Sections: []Section{
			{Fields: []Field{{Key: keyReference, Kind: FieldText}}},
			{Title: "Questionário de Nível de Tensão", Fields: append(questionnaire,
				Field{Key: keyObservation, Kind: FieldText})},
			{Title: "Resposta da Reclamação", Fields: []Field{
				{Key: keyResponseChannel, Kind: FieldChoice, Options: responseChannel},
				{Key: "QUAL E-MAIL/TELEFONE?", Kind: FieldText},
			}},
		},
	}
}

func formatVoltageLevel(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	b.WriteString(keyReference + ": " + v.Get(keyReference) + "\n\n")

	b.WriteString("QUESTIONÁRIO DE NÍVEL DE TENSÃO:\n")
	for _, q := range voltageQuestions {
		if ans := v.Get(q); ans != "" {
			b.WriteString("- " + q + " " + ans + "\n")
		}
	}

	if obs := v.Get(keyObservation); obs != "" {
		b.WriteString("\n" + keyObservation + ": " + obs + "\n")
	}
	if resp := v.Get(keyResponseChannel); resp != "" {
		b.WriteString("\nMEIO DE RESPOSTA: " + resp + "\n")
	}
	if contact := v.Get("QUAL E-MAIL/TELEFONE?"); contact != "" {
		b.WriteString("CONTATO: " + contact + "\n")
	}
	return b.String()
}

// fraudFields is the service 6 anonymous report block, in record order.
var fraudFields = []string{
	"NOME DO RESPONSÁVEL DA FRAUDE", "RUA", "BAIRRO", "CIDADE",
	"PONTO DE REFERÊNCIA", "APARENCIA DA CASA",
}

// Service 6 — Denúncia anônima de fraude. The reporter stays anonymous, so
// the customer block is skipped.
func buildFraudReport(svc domain.Service) *FormSpec {
	fields := make([]Field, 0, len(fraudFields)+3)
	for _, key := range fraudFields {
		fields = append(fields, Field{Key: key, Kind: FieldText})
	}
	fields = append(fields,
		Field{Key: "CASA MURADA", Kind: FieldChoice, Options: YesNo},
		Field{Key: "TEM MEDIDOR", Kind: FieldChoice, Options: YesNo},
		Field{Key: "TEM HORÁRIO ESPECÍFICO PARA A FRAUDE", Kind: FieldText},
	)
	return &FormSpec{
		Service:    svc,
		SkipBasics: true,
		Sections:   []Section{{Title: "Denúncia Anônima de Fraude", Fields: fields}},
	}
}

func formatFraudReport(v Values) string {
	var b strings.Builder
	b.WriteString("CLIENTE ANÔNIMO\n")
	b.WriteString("DESCRIÇÃO DA DENUNCIA: INFORMA POSSÍVEL FURTO DE ENERGIA OCORRENDO NO LOCAL INDICADO.\n\n")
	for _, key := range fraudFields {
		line(&b, key, v.Get(key))
	}
	for _, key := range []string{"CASA MURADA", "TEM MEDIDOR", "TEM HORÁRIO ESPECÍFICO PARA A FRAUDE"} {
		if val := v.Get(key); val != "" {
			line(&b, key, val)
		}
	}
	return b.String()
}

// equipmentProblems are the canned meter problem descriptions for service 16.
var equipmentProblems = []string{
	"DISPLAY APAGADO",
	"MEDIDOR QUEIMADO",
	"DANIFICADO/QUEBRADO",
	"MEDIDOR PARADO",
	"MEDIDOR FURTADO",
}

// Service 16 — Problema com Equipamento.
func buildEquipmentProblem(svc domain.Service) *FormSpec {
	opts := make([]Option, 0, len(equipmentProblems)+1)
	for _, p := range equipmentProblems {
		opts = append(opts, Opt(p))
	}
	opts = append(opts, Opt(OptionCustom))
	return &FormSpec{
		Service: svc,
		Sections: []Section{{
			Title: "Descrição do Problema",
			Fields: []Field{
				{Key: "PROBLEMA", Kind: FieldSelect, Options: opts},
				{Key: "DESCRIÇÃO DO PROBLEMA", Kind: FieldText},
			},
		}},
	}
}

func formatEquipmentProblem(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	desc := v.Get("DESCRIÇÃO DO PROBLEMA")
	if desc == "" && v.Get("PROBLEMA") != OptionCustom {
		desc = v.Get("PROBLEMA")
	}
	line(&b, "DESCRIÇÃO DO PROBLEMA", desc)
	return b.String()
}

// materialDamageFields is the service 19 questionnaire, in record order.
var materialDamageFields = []string{
	"DESCRIÇÃO DA OCORRÊNCIA COM DATA E HORA",
	"RELATO DO MOTIVO POR QUE SUPÕE QUE A RESPONSABILIDADE SEJA DA EMPRESA",
	"DESCRIÇÃO DO PRODUTO PERDIDO - ITEM 1",
	"DESCRIÇÃO DO PRODUTO PERDIDO - ITEM 2",
	"SOLUÇÃO PRETENDIDA",
	"MEIO DE COMUNICAÇÃO ESCOLHIDO PELO CLIENTE (E-MAIL)",
	"AUTORIZAÇÃO DE OUTRA PESSOA PARA RECEBER A RESPOSTA",
	"MEIO DE RESSARCIMENTO CASO A RECLAMAÇÃO SEJA PROCEDENTE",
	"INFORMAÇÕES ADICIONAIS",
	"OBSERVAÇÃO DA OCORRÊNCIA",
}

// Service 19 — Danos Materiais.
func buildMaterialDamages(svc domain.Service) *FormSpec {
	fields := make([]Field, 0, len(materialDamageFields))
	for _, key := range materialDamageFields {
		fields = append(fields, Field{Key: key, Kind: FieldText})
	}
	return &FormSpec{
		Service:  svc,
		Sections: []Section{{Title: "Danos Materiais", Fields: fields}},
	}
}

func formatMaterialDamages(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	for _, key := range materialDamageFields {
		line(&b, key, v.Get(key))
	}
	return b.String()
}
