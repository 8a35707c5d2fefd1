// Package catalog holds the static table of call-center services.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/erickthegreen/crafttable/internal/domain"
)

// services is the canonical service table, keyed by ID.
var services = map[string]domain.Service{
	"0":  {ID: "0", Name: "Geral", Category: domain.CategoryInformation},
	"1":  {ID: "1", Name: "Serviços Emergenciais", Category: domain.CategoryEmergency},
	"2":  {ID: "2", Name: "Reclamações", Category: domain.CategoryComplaint},
	"3":  {ID: "3", Name: "Gravação Telefônica", Category: domain.CategoryInformation},
	"4":  {ID: "4", Name: "Desligamento Definitivo", Category: domain.CategoryCommercial},
	"5":  {ID: "5", Name: "Nível de Tensão", Category: domain.CategoryComplaint},
	"6":  {ID: "6", Name: "Denúncia", Category: domain.CategoryComplaint},
	"7":  {ID: "7", Name: "Mudança de Data Certa", Category: domain.CategoryCommercial},
	"8":  {ID: "8", Name: "Cadastro Baixa Renda", Category: domain.CategoryCommercial},
	"9":  {ID: "9", Name: "Danos Elétricos", Category: domain.CategoryComplaint},
	"10": {ID: "10", Name: "Religação", Category: domain.CategoryCommercial},
	"11": {ID: "11", Name: "Informações", Category: domain.CategoryInformation},
	"12": {ID: "12", Name: "Serviços Emergenciais no ATC", Category: domain.CategoryEmergency},
	"13": {ID: "13", Name: "Genesys", Category: domain.CategoryEmergency},
	"14": {ID: "14", Name: "Cancelar Fatura por E-mail", Category: domain.CategoryCommercial},
	"15": {ID: "15", Name: "Alterar Dados do Parceiro de Negócios", Category: domain.CategoryCommercial},
	"16": {ID: "16", Name: "Problema com Equipamento", Category: domain.CategoryComplaint},
	"17": {ID: "17", Name: "Mudança de Medidor de Local", Category: domain.CategoryCommercial},
	"18": {ID: "18", Name: "Cancelamento de Atividades Acessórias", Category: domain.CategoryCommercial},
	"19": {ID: "19", Name: "Danos Materiais", Category: domain.CategoryComplaint},
	"20": {ID: "20", Name: "Inativação Baixa Renda", Category: domain.CategoryCommercial},
}

// Lookup returns the service with the given ID.
func Lookup(id string) (domain.Service, bool) {
	s, ok := services[id]
	return s, ok
}

// LookupByName returns the service whose name matches, case-insensitively.
func LookupByName(name string) (domain.Service, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, s := range services {
		if strings.ToLower(s.Name) == needle {
			return s, true
		}
	}
	return domain.Service{}, false
}

// All returns every service sorted by numeric ID.
func All() []domain.Service {
	out := make([]domain.Service, 0, len(services))
	for _, s := range services {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i].ID)
		b, _ := strconv.Atoi(out[j].ID)
		return a < b
	})
	return out
}

// ByCategory returns the services of one category, sorted by numeric ID.
func ByCategory(c domain.Category) []domain.Service {
	var out []domain.Service
	for _, s := range All() {
		if s.Category == c {
			out = append(out, s)
		}
	}
	return out
}
