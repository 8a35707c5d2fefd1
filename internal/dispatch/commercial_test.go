package dispatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisconnection_ReadingBranches(t *testing.T) {
	v := Values{
		KeyName:                  "Maria",
		KeyProtocol:              "P-4",
		"CPF":                    "111.222.333-44",
		"MOTIVO":                 "mudança de endereço",
		"LEITURA ATUAL OU MÉDIA": "MEDIA",
	}
	got := formatDisconnection(v)
	assert.Contains(t, got, "DESCRIÇÃO: SOLICITA O DESLIGAMENTO DEFINITIVO DA SUA CC\n")
	assert.Contains(t, got, "INFORMADO QUE SE NÃO EFETUAR PAGAMENTO DOS DÉBITOS SEU NOME SERÁ NEGATIVADO.\n")
	assert.Contains(t, got, "LEITURA ATUAL OU MÉDIA: POR MEDIA\n")

	v["LEITURA ATUAL OU MÉDIA"] = "LEITURA"
	v["VALOR DA LEITURA ATUAL"] = "04512"
	got = formatDisconnection(v)
	assert.Contains(t, got, "LEITURA ATUAL OU MÉDIA: COM LEITURA (04512)\n")
}

func TestFormatDueDateChange_RequestPhrase(t *testing.T) {
	v := Values{
		KeyName:     "João",
		KeyProtocol: "P-7",
		"SOLICITA ALTERAÇÃO PARA DATA FIXA NO DIA": "15",
	}
	got := formatDueDateChange(v)
	assert.Contains(t, got, "CLIENTE SOLICITA ALTERAÇÃO DA DATA DE VENCIMENTO DA CONTA PARA O DIA 15.\n")
	assert.Contains(t, got, "DADOS CONFIRMADOS DURANTE A LIGAÇÃO\n")
}

func TestFormatLowIncome_FixedDescriptionFirst(t *testing.T) {
	v := Values{KeyName: "Ana", KeyProtocol: "P-8", "CPF": "1", "NIS": "2", "CÓDIGO FAMILIAR": "3"}
	got := formatLowIncome(v)

	idx := strings.Index(got, "SOLICITA O CADASTRO BAIXA RENDA NESSA CONTA CONTRATO.\n")
	assert.True(t, idx >= 0)
	assert.True(t, idx < strings.Index(got, "CPF: 1"), "fixed description comes before the document fields")
	assert.Contains(t, got, "CÓDIGO FAMILIAR: 3\n")
}

func TestFormatLowIncomeDeactivation(t *testing.T) {
	v := Values{KeyName: "Ana", KeyProtocol: "P-20", "CPF": "1", "NIS": "2"}
	got := formatLowIncomeDeactivation(v)
	assert.Contains(t, got, "SOLICITA A INATIVAÇÃO DO BAIXA RENDA NESSA CONTA CONTRATO.\n")
	assert.NotContains(t, got, "CÓDIGO FAMILIAR")
}

func TestFormatCancelAccessory_QuestionLines(t *testing.T) {
	v := Values{
		KeyName:          "Rui",
		KeyProtocol:      "P-18",
		"CPF":            "9",
		"QUAL ATIVIDADE?": "seguro residencial",
		"MOTIVO?":         "não reconhece a contratação",
	}
	got := formatCancelAccessory(v)
	assert.Contains(t, got, "QUAL ATIVIDADE? seguro residencial\n")
	assert.Contains(t, got, "MOTIVO? não reconhece a contratação\n")
	assert.Contains(t, got, "REALIZADO CONFORME PEDIDO DO CLIENTE.\n")
}

func TestFormatCallRecording_ProtocolRepeated(t *testing.T) {
	v := Values{
		KeyName:     "Lia",
		KeyProtocol: "P-3",
		"CPF":       "5",
		"DATA":      "02/03/2024",
		"HORA":      "16:20",
		"E-MAIL":    "lia@example.com",
	}
	got := formatCallRecording(v)
	assert.Equal(t, 2, strings.Count(got, "PROTOCOLO: P-3\n"),
		"the protocol shows in the customer block and again in the service block")
}

func TestFormatInformation_CannedAndCustomTopics(t *testing.T) {
	v := Values{KeyName: "Eva", KeyProtocol: "P-11", keyInformedAbout: "SOLICITAÇÃO PIX"}
	got := formatInformation(v)
	assert.Contains(t, got, "CLIENTE INFORMADO SOBRE: SOLICITAÇÃO PIX\n")

	v[keyInformedAbout] = OptionCustom
	v[keyCustomInfo] = " prazo de religação após pagamento "
	got = formatInformation(v)
	assert.Contains(t, got, "CLIENTE INFORMADO SOBRE: prazo de religação após pagamento\n")

	delete(v, keyInformedAbout)
	delete(v, keyCustomInfo)
	got = formatInformation(v)
	assert.NotContains(t, got, "CLIENTE INFORMADO SOBRE")
}
