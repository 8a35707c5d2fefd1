package dispatch

import (
	"strings"

	"github.com/erickthegreen/crafttable/internal/domain"
)

const (
	keyInformedAbout = "CLIENTE INFORMADO SOBRE"
	keyCustomInfo    = "INFORMAÇÃO PERSONALIZADA"
)

// informationTopics are the canned subjects for service 11.
var informationTopics = []string{
	"INFORMAÇÕES CONEXÃO - LIGAÇÃO NOVA", "CADASTRO E CONTRATOS", "BENEFÍCIOS",
	"MEDIÇÃO E EQUIPAMENTOS DE MEDIÇÃO", "LEITURA", "TARIFAS, FATURAS, FATURAMENTO E COBRANÇA",
	"SERVIÇOS COBRÁVEIS", "PAGAMENTO", "SUSPENSÃO DO FORNECIMENTO", "PROCEDIMENTO IRREGULAR",
	"ATENDIMENTO E ESTRUTURA DE ATENDIMENTO", "QUALIDADE DA PRESTAÇÃO DE SERVIÇO",
	"RESSARCIMENTO DE DANOS ELÉTRICOS", "REDE E MANUTENÇÃO", "GERAÇÃO DISTRIBUÍDA",
	"PRAZOS E ACOMPANHAMENTO DE SOLICITAÇÃO", "INSTALAÇÃO", "ILUMINAÇÃO PÚBLICA",
	"LEGISLAÇÃO SETOR ELÉTRICO CORRELATA", "NORMAS E PADRÕES TÉCNICOS DE DISTRIBUIÇÃO",
	"EFICIÊNCIA ENERGÉTICA - RACIONALIZAÇÃO DE CONSUMO", "CAMINHO DO ATENDIMENTO",
	"DESLIGAMENTO DEFINITIVO/TEMPORÁRIO", "VENDAS DE PRODUTOS E SERVIÇOS", "RECLAME AQUI",
	"SOLICITAÇÃO PIX", "INFORMAÇÃO DE INCORPORAÇÃO DE REDE", "OUTROS",
}

// Service 11 — Informações.
func buildInformation(svc domain.Service) *FormSpec {
	opts := make([]Option, 0, len(informationTopics)+1)
	for _, t := range informationTopics {
		opts = append(opts, Opt(t))
	}
	opts = append(opts, Opt(OptionCustom))
	return &FormSpec{
		Service: svc,
		Sections: []Section{{
			Fields: []Field{
				{Key: keyInformedAbout, Kind: FieldSelect, Options: opts},
				{Key: keyCustomInfo, Kind: FieldText},
			},
		}},
	}
}

func formatInformation(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	info := v.Get(keyInformedAbout)
	if info == OptionCustom {
		info = strings.TrimSpace(v.Get(keyCustomInfo))
	}
	if info != "" {
		line(&b, keyInformedAbout, info)
	}
	return b.String()
}

// Service 3 — Gravação Telefônica.
func buildCallRecording(svc domain.Service) *FormSpec {
	return &FormSpec{
		Service: svc,
		Sections: []Section{{
			Title: "Solicitação de Gravação Telefônica",
			Fields: []Field{
				{Key: "CPF", Kind: FieldText},
				{Key: "DATA", Kind: FieldText},
				{Key: "HORA", Kind: FieldText},
				{Key: "E-MAIL", Kind: FieldText},
			},
		}},
	}
}

// PROTOCOLO appears again in the service block, bound to the same value as
// the customer one, so the record shows it twice.
func formatCallRecording(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	for _, key := range []string{"CPF", KeyProtocol, "DATA", "HORA", "E-MAIL"} {
		line(&b, key, v.Get(key))
	}
	return b.String()
}
