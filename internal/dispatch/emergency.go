package dispatch

import (
	"strings"

	"github.com/erickthegreen/crafttable/internal/domain"
)

// Field keys shared by the emergency forms.
const (
	keyReference   = "PONTO DE REFERENCIA"
	keyDescription = "DESCRIÇÃO"
	keyCustomDesc  = "DESCRIÇÃO PERSONALIZADA"
	keyObservation = "OBSERVAÇÃO DA OCORRÊNCIA"
)

// emergencyDescriptions maps the canned occurrence labels to the full phrases
// dispatched to field teams. Labels feed the select; phrases land in the text.
var emergencyDescriptions = map[string]string{
	"FALTA DE ENERGIA GERAL":                   "CLIENTE INFORMA FALTA DE ENERGIA GERAL; O CLIENTE INFORMA QUE REALIZOU O TESTE DO DISJUNTOR",
	"FALTA DE ENERGIA INDIVIDUAL":              "CLIENTE INFORMA FALTA DE ENERGIA INDIVIDUAL; O CLIENTE INFORMA QUE REALIZOU O TESTE DO DISJUNTOR",
	"AVALIAÇÃO TÉCNICA":                        "CLIENTE INFORMA QUE A SUA ENERGIA ESTÁ OSCILAÇÃO FRACA/FORTE.",
	"RECHAMADA":                                "RECHAMADA - CLIENTE INFORMADO QUE JÁ EXISTE SOLICITAÇÃO EM ABERTO COM EQUIPE DE OPERAÇÕES.",
	"FALTA DE FASE":                            "CLIENTE INFORMA QUE ESTÁ COM FALTA DE FASE EM SUA INSTALAÇÃO; CLIENTE TAMBEM INFORMA FALTA DE ENERGIA EM ALGUNS CÔMODOS DA CASA.",
	"CHOQUE/VAZAMENTO":                         "CLIENTE INFORMA QUE ESTÁ HAVENDO CHOQUE OU VAZAMENTO DE ENERGIA NA REDE, SOLICITA AGILIDADE.",
	"REDE PARTIDA":                             "CLIENTE INFORMA QUE ESTÁ COM REDE PARTIDA DE (BT/AT) OFERECENDO PERIGO.",
	"FAISCAMENTO":                              "FAISCAMENTO NA REDE, GERANDO RISCO A VIDA DE ENERGIA.",
	"RAMAL PARTIDO":                            "CLIENTE INFORMA QUE RAMAL DE SERVIÇO ESTÁ PARTIDO, SOLICITA AGILIDADE.",
	"INCÊNDIO":                                 "CLIENTE INFORMA QUE ESTÁ HAVENDO INCÊNDIO NA REDE, ONDE COLOCA TERCEIROS EM RISCO, SOLICITA AGILIDADE.",
	"VÃO BAIXO":                                "CLIENTE INFORMA VÃO BAIXO COM RISCO DE ROMPIMENTO",
	"VAZAMENTO DE ÓLEO":                        "CLIENTE INFORMA DE ÓLEO NO TRANSFORMADOR.",
	"ABALROAMENTO":                             "CLIENTE INFORMA ABALROAMENTO DE POSTE OU EQUIPAMENTO.",
	"ILUMINAÇÃO PÚBLICA ACESA DURANTE O DIA":   "CLIENTE INFORMA LUZ DO POSTE LIGADA DURANTE O DIA",
	"INTERVENÇÃO DE TERCEIROS NA REDE":         "CLIENTE INFORMA QUE HOUVE INTERVENÇÃ DE TERCEIROS NA REDE",
}

// emergencyDescriptionOrder keeps the select stable (maps iterate randomly).
var emergencyDescriptionOrder = []string{
	"FALTA DE ENERGIA GERAL", "FALTA DE ENERGIA INDIVIDUAL", "AVALIAÇÃO TÉCNICA",
	"RECHAMADA", "FALTA DE FASE", "CHOQUE/VAZAMENTO", "REDE PARTIDA",
	"FAISCAMENTO", "RAMAL PARTIDO", "INCÊNDIO", "VÃO BAIXO",
	"VAZAMENTO DE ÓLEO", "ABALROAMENTO", "ILUMINAÇÃO PÚBLICA ACESA DURANTE O DIA",
	"INTERVENÇÃO DE TERCEIROS NA REDE",
}

func descriptionField() Field {
	opts := make([]Option, 0, len(emergencyDescriptionOrder)+1)
	for _, label := range emergencyDescriptionOrder {
		opts = append(opts, Opt(label))
	}
	opts = append(opts, Opt(OptionCustom))
	return Field{Key: keyDescription, Kind: FieldSelect, Options: opts}
}

// resolveDescription expands the selected canned label into its full phrase,
// or returns the agent's custom text.
func resolveDescription(v Values) string {
	sel := v.Get(keyDescription)
	if sel == OptionCustom {
		return strings.TrimSpace(v.Get(keyCustomDesc))
	}
	if full, ok := emergencyDescriptions[sel]; ok {
		return full
	}
	return ""
}

// Service 1 — Serviços Emergenciais.
func buildEmergency(svc domain.Service) *FormSpec {
	return &FormSpec{
		Service: svc,
		Sections: []Section{{
			Fields: []Field{
				{Key: keyReference, Kind: FieldText},
				descriptionField(),
				{Key: keyCustomDesc, Kind: FieldText},
				{Key: keyObservation, Kind: FieldText},
			},
		}},
	}
}

func formatEmergency(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	line(&b, keyReference, v.Get(keyReference))
	if desc := resolveDescription(v); desc != "" {
		line(&b, keyDescription, desc)
	}
	line(&b, keyObservation, v.Get(keyObservation))
	return b.String()
}

// Service 12 — Serviços Emergenciais no ATC. Same as 1 plus address fields.
func buildEmergencyATC(svc domain.Service) *FormSpec {
	return &FormSpec{
		Service: svc,
		Sections: []Section{{
			Fields: []Field{
				{Key: "CIDADE", Kind: FieldText},
				{Key: "BAIRRO", Kind: FieldText},
				{Key: "LOGRADOURO", Kind: FieldText},
				{Key: keyReference, Kind: FieldText},
				descriptionField(),
				{Key: keyCustomDesc, Kind: FieldText},
				{Key: keyObservation, Kind: FieldText},
			},
		}},
	}
}

func formatEmergencyATC(v Values) string {
	var b strings.Builder
	b.WriteString(basicInfo(v))
	for _, key := range []string{"CIDADE", "BAIRRO", "LOGRADOURO", keyReference} {
		if val := v.Get(key); val != "" {
			line(&b, key, val)
		}
	}
	if desc := resolveDescription(v); desc != "" {
		line(&b, keyDescription, desc)
	}
	line(&b, keyObservation, v.Get(keyObservation))
	return b.String()
}

// Service 13 — Genesys direct register. One choice, no customer fields; the
// picked phrase IS the final text (see Compose).
func buildGenesys(svc domain.Service) *FormSpec {
	return &FormSpec{
		Service:    svc,
		SkipBasics: true,
		Sections: []Section{{
			Title: "Serviço Genesys - Registro Direto",
			Fields: []Field{{
				Key:  KeyGenesys,
				Kind: FieldChoice,
				Options: []Option{
					{Label: "Falta de Energia Individual", Value: "FALTA DE ENERGIA INDIVIDUAL; O CLIENTE INFORMA QUE REALIZOU O TESTE DO DISJUNTOR."},
					{Label: "Falta de Energia Coletiva", Value: "FALTA DE ENERGIA GERAL; O CLIENTE INFORMA QUE REALIZOU O TESTE DO DISJUNTOR"},
				},
				Required: true,
			}},
		}},
	}
}

func formatGenesys(v Values) string {
	return v.Get(KeyGenesys)
}
