package dispatch

import (
	"fmt"
	"strings"

	"github.com/erickthegreen/crafttable/internal/domain"
)

// Damaged-appliance item group keys (service 9).
const (
	keyApplianceCount = "QUANTIDADE DE EQUIPAMENTOS"
	keyAppliance      = "APARELHO"
	keyBrand          = "MARCA"
	keyModel          = "MODELO"
	keyUsageTime      = "TEMPO DE USO"
)

// damageChecklist is the verification checklist, in record order.
var damageChecklist = []string{
	"Atingiu outras residências/instalações",
	"Faltou energia ou a energia oscilava antes da queima",
	"Havia funcionário da empresa no local executando algum serviço",
	"Possui telefone fixo/antena parabólica",
	"Chovia no dia da ocorrência",
}

// Service 9 — Danos Elétricos, with a dynamically sized list of damaged
// appliances.
func buildElectricalDamages(svc domain.Service) *FormSpec {
	checklist := make([]Field, 0, len(damageChecklist))
	for _, q := range damageChecklist {
		checklist = append(checklist, Field{Key: q, Kind: FieldChoice, Options: YesNo})
	}
	return &FormSpec{
		Service: svc,
		Sections: []Section{
			{
				Title: "Descrição da Ocorrência",
				Fields: []Field{
					{Key: "TIPO DE EVENTO", Kind: FieldChoice, Options: []Option{
						Opt("FALTA DE ENERGIA"), Opt("OSCILAÇÃO"), Opt("SOBRETENSÃO"),
					}},
					{Key: "DATA DA OCORRÊNCIA", Kind: FieldText},
					{Key: "HORA DA OCORRÊNCIA", Kind: FieldText},
				},
			},
			{
				Title: "Equipamentos Danificados",
				Group: &ItemGroup{
					Key:        keyApplianceCount,
					Title:      "Equipamento",
					CountLabel: "Número de equipamentos",
					Min:        1, Max: 10, Default: 1,
					Fields: []Field{
						{Key: keyAppliance, Kind: FieldText},
						{Key: keyBrand, Kind: FieldText},
						{Key: keyModel, Kind: FieldText},
						{Key: keyUsageTime, Kind: FieldText},
					},
				},
			},
			{Title: "Checklist de Verificação", Fields: checklist},
			{
				Title: "Dados para Resposta",
				Fields: []Field{
					{Key: "MEIO DE COMUNICAÇÃO ESCOLHIDO PELO CLIENTE", Kind: FieldChoice, Options: responseChannel},
					{Key: "TELEFONE EXTRA PARA CONTATO", Kind: FieldText},
					{Key: "AUTORIZAÇÃO DE TERCEIRO (Nome, parentesco e telefone)", Kind: FieldText},
					{Key: "FORMA DE RESSARCIMENTO CASO A RECLAMAÇÃO SEJA PROCEDENTE", Kind: FieldChoice, Options: []Option{
						Opt("CONTA POUPANÇA"), Opt("CONTA CORRENTE"),
					}},
				},
			},
		},
	}
}

func formatElectricalDamages(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	b.WriteString("\n--- DESCRIÇÃO DA OCORRÊNCIA ---\n")

	if event := v.Get("TIPO DE EVENTO"); event != "" {
		line(&b, "TIPO DE EVENTO", event)
	}
	line(&b, "DATA DA OCORRÊNCIA", v.Get("DATA DA OCORRÊNCIA"))
	line(&b, "HORA DA OCORRÊNCIA", v.Get("HORA DA OCORRÊNCIA"))

	b.WriteString("\n--- EQUIPAMENTOS DANIFICADOS ---\n")
	count := v.Count(keyApplianceCount, 0)
	if count == 0 {
		b.WriteString("Nenhum equipamento informado.\n")
	}
	for i := 1; i <= count; i++ {
		b.WriteString(fmt.Sprintf("Equipamento %d: %s - Marca: %s - Modelo: %s - Tempo de Uso: %s\n",
			i, v.Item(keyAppliance, i), v.Item(keyBrand, i), v.Item(keyModel, i), v.Item(keyUsageTime, i)))
	}

	b.WriteString("\n--- CHECKLIST DE VERIFICAÇÃO ---\n")
	for _, q := range damageChecklist {
		ans := v.Get(q)
		if ans == "" {
			ans = "NÃO INFORMADO"
		}
		b.WriteString("- " + q + "? " + ans + "\n")
	}

	b.WriteString("\n--- DADOS PARA RESPOSTA ---\n")
	if channel := v.Get("MEIO DE COMUNICAÇÃO ESCOLHIDO PELO CLIENTE"); channel != "" {
		line(&b, "MEIO DE COMUNICAÇÃO", channel)
	}
	line(&b, "TELEFONE EXTRA PARA CONTATO", v.Get("TELEFONE EXTRA PARA CONTATO"))
	line(&b, "AUTORIZAÇÃO DE TERCEIRO", v.Get("AUTORIZAÇÃO DE TERCEIRO (Nome, parentesco e telefone)"))
	if refund := v.Get("FORMA DE RESSARCIMENTO CASO A RECLAMAÇÃO SEJA PROCEDENTE"); refund != "" {
		line(&b, "FORMA DE RESSARCIMENTO", refund)
	}
	return b.String()
}
