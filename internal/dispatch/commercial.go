package dispatch

import (
	"strings"

	"github.com/erickthegreen/crafttable/internal/domain"
)

// Service 4 — Desligamento Definitivo.
func buildDisconnection(svc domain.Service) *FormSpec {
	return &FormSpec{
		Service: svc,
		Sections: []Section{{
			Title: "Desligamento Definitivo",
			Fields: []Field{
				{Key: "CPF", Kind: FieldText},
				{Key: keyReference, Kind: FieldText},
				{Key: "DESCRIÇÃO", Kind: FieldFixed, Fixed: "SOLICITA O DESLIGAMENTO DEFINITIVO DA SUA CC"},
				{Key: "AVISO", Kind: FieldFixed, Fixed: "INFORMADO QUE SE NÃO EFETUAR PAGAMENTO DOS DÉBITOS SEU NOME SERÁ NEGATIVADO."},
				{Key: "MOTIVO", Kind: FieldText},
				{Key: "LEITURA ATUAL OU MÉDIA", Kind: FieldChoice, Options: []Option{
					{Label: "Por Média", Value: "MEDIA"},
					{Label: "Com Leitura (informar abaixo)", Value: "LEITURA"},
				}},
				{Key: "VALOR DA LEITURA ATUAL", Kind: FieldText},
			},
		}},
	}
}

func formatDisconnection(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	line(&b, "CPF", v.Get("CPF"))
	line(&b, keyReference, v.Get(keyReference))
	b.WriteString("DESCRIÇÃO: SOLICITA O DESLIGAMENTO DEFINITIVO DA SUA CC\n")
	b.WriteString("INFORMADO QUE SE NÃO EFETUAR PAGAMENTO DOS DÉBITOS SEU NOME SERÁ NEGATIVADO.\n")
	line(&b, "MOTIVO", v.Get("MOTIVO"))
	if v.Get("LEITURA ATUAL OU MÉDIA") == "MEDIA" {
		b.WriteString("LEITURA ATUAL OU MÉDIA: POR MEDIA\n")
	} else {
		b.WriteString("LEITURA ATUAL OU MÉDIA: COM LEITURA (" + v.Get("VALOR DA LEITURA ATUAL") + ")\n")
	}
	return b.String()
}

// Service 7 — Mudança de Data Certa.
func buildDueDateChange(svc domain.Service) *FormSpec {
	return &FormSpec{
		Service: svc,
		Sections: []Section{{
			Title: "Mudança de Data Certa",
			Fields: []Field{
				{Key: "CPF", Kind: FieldText},
				{Key: "SOLICITA ALTERAÇÃO PARA DATA FIXA NO DIA", Kind: FieldText},
			},
		}},
	}
}

func formatDueDateChange(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	line(&b, "CPF", v.Get("CPF"))
	b.WriteString("CLIENTE SOLICITA ALTERAÇÃO DA DATA DE VENCIMENTO DA CONTA PARA O DIA " +
		v.Get("SOLICITA ALTERAÇÃO PARA DATA FIXA NO DIA") + ".\n")
	b.WriteString("DADOS CONFIRMADOS DURANTE A LIGAÇÃO\n")
	return b.String()
}

// Service 8 — Cadastro Baixa Renda (tarifa social).
func buildLowIncome(svc domain.Service) *FormSpec {
	return &FormSpec{
		Service: svc,
		Sections: []Section{{
			Title: "Cadastro Tarifa Social (Baixa Renda)",
			Fields: []Field{
				{Key: "CPF", Kind: FieldText},
				{Key: "NIS", Kind: FieldText},
				{Key: "CÓDIGO FAMILIAR", Kind: FieldText},
				{Key: "DESCRIÇÃO", Kind: FieldFixed, Fixed: "SOLICITA O CADASTRO BAIXA RENDA NESSA CONTA CONTRATO."},
			},
		}},
	}
}

func formatLowIncome(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	b.WriteString("SOLICITA O CADASTRO BAIXA RENDA NESSA CONTA CONTRATO.\n")
	for _, key := range []string{"CPF", "NIS", "CÓDIGO FAMILIAR"} {
		line(&b, key, v.Get(key))
	}
	return b.String()
}

// Service 20 — Inativação Baixa Renda.
func buildLowIncomeDeactivation(svc domain.Service) *FormSpec {
	return &FormSpec{
		Service: svc,
		Sections: []Section{{
			Title: "Inativação Tarifa Social (Baixa Renda)",
			Fields: []Field{
				{Key: "CPF", Kind: FieldText},
				{Key: "NIS", Kind: FieldText},
				{Key: "DESCRIÇÃO", Kind: FieldFixed, Fixed: "SOLICITA A INATIVAÇÃO DO BAIXA RENDA NESSA CONTA CONTRATO."},
			},
		}},
	}
}

func formatLowIncomeDeactivation(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	b.WriteString("SOLICITA A INATIVAÇÃO DO BAIXA RENDA NESSA CONTA CONTRATO.\n")
	for _, key := range []string{"CPF", "NIS"} {
		line(&b, key, v.Get(key))
	}
	return b.String()
}

// Service 14 — Cancelar Fatura por E-mail.
func buildCancelEmailInvoice(svc domain.Service) *FormSpec {
	return &FormSpec{
		Service: svc,
		Sections: []Section{{
			Title: "Cancelar Fatura por E-mail",
			Fields: []Field{
				{Key: "CPF", Kind: FieldText},
				{Key: "DESCRIÇÃO", Kind: FieldFixed, Fixed: "CLIENTE SOLICITA O CANCELAMENTO DE ENVIO DE FATURA POR E-MAIL E DESEJA RECEBER NOVAMENTE EM SUA UNIDADE."},
				{Key: "STATUS", Kind: FieldFixed, Fixed: "REALIZADO CONFORME PEDIDO DO CLIENTE."},
			},
		}},
	}
}

func formatCancelEmailInvoice(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	line(&b, "CPF", v.Get("CPF"))
	b.WriteString("CLIENTE SOLICITA O CANCELAMENTO DE ENVIO DE FATURA POR E-MAIL\nDESEJA RECEBER NOVAMENTE EM SUA UNIDADE.\nREALIZADO CONFORME PEDIDO DO CLIENTE.\n")
	return b.String()
}

// Service 15 — Alterar Dados do Parceiro de Negócios.
func buildPartnerDataChange(svc domain.Service) *FormSpec {
	return &FormSpec{
		Service: svc,
		Sections: []Section{{
			Title: "Alterar Dados do Parceiro de Negócios",
			Fields: []Field{
				{Key: "CAMPO A SER ALTERADO", Kind: FieldText},
				{Key: "VALOR ANTIGO", Kind: FieldText},
				{Key: "NOVO VALOR", Kind: FieldText},
			},
		}},
	}
}

func formatPartnerDataChange(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	b.WriteString("CLIENTE SOLICITA ALTERAÇÃO DE DADOS CADASTRAIS:\n")
	for _, key := range []string{"CAMPO A SER ALTERADO", "VALOR ANTIGO", "NOVO VALOR"} {
		line(&b, key, v.Get(key))
	}
	return b.String()
}

// Service 17 — Mudança de Medidor de Local.
func buildMeterRelocation(svc domain.Service) *FormSpec {
	return &FormSpec{
		Service: svc,
		Sections: []Section{{
			Title: "Mudança de Medidor de Local",
			Fields: []Field{
				{Key: "CPF", Kind: FieldText},
				{Key: "MOTIVO DA MUDANÇA", Kind: FieldText},
			},
		}},
	}
}

func formatMeterRelocation(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	b.WriteString("\n")
	for _, key := range []string{"CPF", "MOTIVO DA MUDANÇA"} {
		if val := v.Get(key); val != "" {
			line(&b, key, val)
		}
	}
	return b.String()
}

// Service 18 — Cancelamento de Atividades Acessórias.
func buildCancelAccessory(svc domain.Service) *FormSpec {
	return &FormSpec{
		Service: svc,
		Sections: []Section{{
			Title: "Cancelar Atividades Acessórias",
			Fields: []Field{
				{Key: "CPF", Kind: FieldText},
				{Key: "INFO", Kind: FieldFixed, Fixed: "CLIENTE SOLICITA O CANCELAMENTO DA SEGUINTE ATIVIDADE ACESSÓRIA:"},
				{Key: "QUAL ATIVIDADE?", Kind: FieldText},
				{Key: "MOTIVO?", Kind: FieldText},
				{Key: "STATUS", Kind: FieldFixed, Fixed: "REALIZADO CONFORME PEDIDO DO CLIENTE."},
			},
		}},
	}
}

func formatCancelAccessory(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	line(&b, "CPF", v.Get("CPF"))
	b.WriteString("CLIENTE SOLICITA O CANCELAMENTO DA SEGUINTE ATIVIDADE ACESSÓRIA\n")
	b.WriteString("QUAL ATIVIDADE? " + v.Get("QUAL ATIVIDADE?") + "\n")
	b.WriteString("MOTIVO? " + v.Get("MOTIVO?") + "\n")
	b.WriteString("REALIZADO CONFORME PEDIDO DO CLIENTE.\n")
	return b.String()
}
