package dispatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUnifiedComplaint_LetteredSections(t *testing.T) {
	v := Values{
		KeyName:            "Maria",
		KeyProtocol:        "P-1",
		keyComplaintDesc:   "  fatura cobrada em duplicidade  ",
		keyDesiredSolution: "estorno",
		keyAgentAnalysis:   "procedente",
		keyResponseChannel: "TELEFONE",
		keyResponseContact: "9999-0000",
		keyWhatsAppOK:      "SIM",
		keyContactPhone:    "9999-0000",
		keyBestTime:        "MANHA",
		keyExtraInfo:       "nenhuma",
	}
	got := formatUnifiedComplaint(v)

	assert.Contains(t, got, "a) DESCRIÇÃO DA RECLAMAÇÃO: fatura cobrada em duplicidade\n")
	assert.Contains(t, got, "b) SOLUÇÃO PRETENDIDA: estorno\n")
	assert.Contains(t, got, "d) MEIO DE RESPOSTA DA RECLAMAÇÃO: TELEFONE - Contato: 9999-0000\n")
	assert.Contains(t, got, "g) MELHOR HORÁRIO PARA CONTATO: MANHA\n")
	assert.Contains(t, got, "h) E-MAIL: não informado\n")
	assert.Contains(t, got, "i) AUTORIZA TERCEIROS: NÃO\n")
	assert.NotContains(t, got, "- NOME E VÍNCULO:")
}

func TestFormatUnifiedComplaint_ThirdPartyAuthorized(t *testing.T) {
	v := Values{
		KeyName:           "Maria",
		KeyProtocol:       "P-1",
		keyThirdPartyOK:   "SIM",
		keyThirdPartyName: "José, esposo",
		keyThirdPartyTel:  "8888-7777",
	}
	got := formatUnifiedComplaint(v)

	assert.Contains(t, got, "i) AUTORIZA TERCEIROS: SIM\n")
	assert.Contains(t, got, "   - NOME E VÍNCULO: José, esposo\n")
	assert.Contains(t, got, "   - CONTATO: 8888-7777\n")
}

func TestFormatUnifiedComplaint_UnselectedChoices(t *testing.T) {
	got := formatUnifiedComplaint(Values{KeyName: "Maria", KeyProtocol: "P-1"})

	assert.Contains(t, got, "d) MEIO DE RESPOSTA DA RECLAMAÇÃO: NÃO SELECIONADO - Contato: \n")
	assert.Contains(t, got, "e) ACEITA RECEBER RESPOSTA / FATURA VIA WHATSAPP: NÃO SELECIONADO\n")
	assert.Contains(t, got, "g) MELHOR HORÁRIO PARA CONTATO: NÃO SELECIONADO\n")
}

func TestFormatFraudReport_AnonymousHeader(t *testing.T) {
	v := Values{
		"NOME DO RESPONSÁVEL DA FRAUDE": "desconhecido",
		"RUA":         "Rua das Flores",
		"CASA MURADA": "SIM",
	}
	got := formatFraudReport(v)

	assert.True(t, strings.HasPrefix(got,
		"CLIENTE ANÔNIMO\nDESCRIÇÃO DA DENUNCIA: INFORMA POSSÍVEL FURTO DE ENERGIA OCORRENDO NO LOCAL INDICADO.\n\n"))
	assert.Contains(t, got, "RUA: Rua das Flores\n")
	assert.Contains(t, got, "CASA MURADA: SIM\n")
	assert.NotContains(t, got, "TEM MEDIDOR:")
	assert.NotContains(t, got, KeyName+":")
}

func TestFormatElectricalDamages_ApplianceListAndChecklist(t *testing.T) {
	v := Values{
		KeyName:             "Pedro",
		KeyProtocol:         "P-9",
		"TIPO DE EVENTO":    "SOBRETENSÃO",
		"DATA DA OCORRÊNCIA": "01/02/2024",
		"HORA DA OCORRÊNCIA": "18:40",
		keyApplianceCount:   "2",
		"Chovia no dia da ocorrência": "SIM",
	}
	v[ItemKey(keyAppliance, 1)] = "Geladeira"
	v[ItemKey(keyBrand, 1)] = "Consul"
	v[ItemKey(keyModel, 1)] = "CRB39"
	v[ItemKey(keyUsageTime, 1)] = "3 anos"
	v[ItemKey(keyAppliance, 2)] = "Televisor"
	v[ItemKey(keyBrand, 2)] = "LG"
	v[ItemKey(keyModel, 2)] = "43UQ"
	v[ItemKey(keyUsageTime, 2)] = "1 ano"

	got := formatElectricalDamages(v)

	assert.Contains(t, got, "Equipamento 1: Geladeira - Marca: Consul - Modelo: CRB39 - Tempo de Uso: 3 anos\n")
	assert.Contains(t, got, "Equipamento 2: Televisor - Marca: LG - Modelo: 43UQ - Tempo de Uso: 1 ano\n")
	assert.Contains(t, got, "- Chovia no dia da ocorrência? SIM\n")
	assert.Contains(t, got, "- Atingiu outras residências/instalações? NÃO INFORMADO\n")
}

func TestFormatElectricalDamages_NoAppliances(t *testing.T) {
	got := formatElectricalDamages(Values{KeyName: "Pedro", KeyProtocol: "P-9"})
	assert.Contains(t, got, "Nenhum equipamento informado.\n")
}

func TestFormatEquipmentProblem_CannedAndCustom(t *testing.T) {
	v := Values{KeyName: "Rita", KeyProtocol: "P-16", "PROBLEMA": "MEDIDOR QUEIMADO"}
	got := formatEquipmentProblem(v)
	assert.Contains(t, got, "DESCRIÇÃO DO PROBLEMA: MEDIDOR QUEIMADO\n")

	v = Values{
		KeyName: "Rita", KeyProtocol: "P-16",
		"PROBLEMA":               OptionCustom,
		"DESCRIÇÃO DO PROBLEMA": "visor com mensagem de erro",
	}
	got = formatEquipmentProblem(v)
	assert.Contains(t, got, "DESCRIÇÃO DO PROBLEMA: visor com mensagem de erro\n")
}

func TestFormatVoltageLevel_QuestionnaireBlock(t *testing.T) {
	v := Values{
		KeyName:      "Luiz",
		KeyProtocol:  "P-5",
		keyReference: "próximo à escola",
		"Lâmpadas queimam com frequência?":          "SIM",
		"A energia está oscilando (forte ou fraca)?": "NÃO",
		keyObservation:     "ocorre à noite",
		keyResponseChannel: "EMAIL",
		"QUAL E-MAIL/TELEFONE?": "luiz@example.com",
	}
	got := formatVoltageLevel(v)

	assert.Contains(t, got, "QUESTIONÁRIO DE NÍVEL DE TENSÃO:\n")
	assert.Contains(t, got, "- Lâmpadas queimam com frequência? SIM\n")
	assert.NotContains(t, got, "Houve acréscimo de carga instalada?")
	assert.Contains(t, got, "\nOBSERVAÇÃO DA OCORRÊNCIA: ocorre à noite\n")
	assert.Contains(t, got, "\nMEIO DE RESPOSTA: EMAIL\n")
	assert.Contains(t, got, "CONTATO: luiz@example.com\n")
}
