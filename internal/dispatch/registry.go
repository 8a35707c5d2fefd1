package dispatch

import (
	"fmt"
	"strings"

	"github.com/erickthegreen/crafttable/internal/catalog"
	"github.com/erickthegreen/crafttable/internal/domain"
)

// Builder constructs the form spec for one service.
type Builder func(svc domain.Service) *FormSpec

// Formatter renders the collected values into the service's text block. It
// must be a pure function of its inputs.
type Formatter func(v Values) string

// Entry pairs a service's form builder with its text formatter.
type Entry struct {
	Build  Builder
	Format Formatter
}

// registry maps service IDs to their entries. IDs absent here (such as "0",
// Geral) get the generic form and field-dump formatter.
var registry = map[string]Entry{
	"1":  {Build: buildEmergency, Format: formatEmergency},
	"2":  {Build: buildUnifiedComplaint, Format: formatUnifiedComplaint},
	"3":  {Build: buildCallRecording, Format: formatCallRecording},
	"4":  {Build: buildDisconnection, Format: formatDisconnection},
	"5":  {Build: buildVoltageLevel, Format: formatVoltageLevel},
	"6":  {Build: buildFraudReport, Format: formatFraudReport},
	"7":  {Build: buildDueDateChange, Format: formatDueDateChange},
	"8":  {Build: buildLowIncome, Format: formatLowIncome},
	"9":  {Build: buildElectricalDamages, Format: formatElectricalDamages},
	"10": {Build: buildReconnection, Format: formatReconnection},
	"11": {Build: buildInformation, Format: formatInformation},
	"12": {Build: buildEmergencyATC, Format: formatEmergencyATC},
	"13": {Build: buildGenesys, Format: formatGenesys},
	"14": {Build: buildCancelEmailInvoice, Format: formatCancelEmailInvoice},
	"15": {Build: buildPartnerDataChange, Format: formatPartnerDataChange},
	"16": {Build: buildEquipmentProblem, Format: formatEquipmentProblem},
	"17": {Build: buildMeterRelocation, Format: formatMeterRelocation},
	"18": {Build: buildCancelAccessory, Format: formatCancelAccessory},
	"19": {Build: buildMaterialDamages, Format: formatMaterialDamages},
	"20": {Build: buildLowIncomeDeactivation, Format: formatLowIncomeDeactivation},
}

// Spec builds the form spec for svc, falling back to the generic form.
func Spec(svc domain.Service) *FormSpec {
	if e, ok := registry[svc.ID]; ok {
		return e.Build(svc)
	}
	return buildGeneric(svc)
}

// Format renders the service text body for svc, falling back to the generic
// field dump for unregistered IDs.
func Format(svc domain.Service, v Values) string {
	if e, ok := registry[svc.ID]; ok {
		return e.Format(v)
	}
	return formatGeneric(Spec(svc), v)
}

// Compose produces the final clipboard/history text: service header, body,
// and the agent registration trailer. Genesys registers its canned text
// directly with no header or trailer.
func Compose(svc domain.Service, v Values, agent string) string {
	if svc.ID == "13" {
		return v.Get(KeyGenesys)
	}
	text := "SERVIÇO: " + svc.Name + "\n"
	text += Format(svc, v)
	text += "\n" + agent
	return text
}

// ValidateSubmission enforces the submission rules: the agent registration is
// always required; NOME and PROTOCOLO are required for every service except
// the anonymous fraud report (6) and Genesys (13), which instead needs an
// option picked.
func ValidateSubmission(svc domain.Service, v Values, agent string) error {
	if strings.TrimSpace(agent) == "" {
		return fmt.Errorf("informe a sua matrícula")
	}
	switch svc.ID {
	case "6":
		return nil
	case "13":
		if v.Get(KeyGenesys) == "" {
			return fmt.Errorf("selecione uma opção do Genesys antes de registrar")
		}
		return nil
	}
	for _, key := range []string{KeyName, KeyProtocol} {
		if strings.TrimSpace(v.Get(key)) == "" {
			return fmt.Errorf("o campo %q é obrigatório e não foi preenchido", key)
		}
	}
	return nil
}

// buildGeneric is the fallback form: just the customer block.
func buildGeneric(svc domain.Service) *FormSpec {
	return &FormSpec{Service: svc}
}

// formatGeneric dumps the customer block followed by every other non-empty
// field in spec order.
func formatGeneric(spec *FormSpec, v Values) string {
	var b strings.Builder
	base := basicInfo(v)
	b.WriteString(base)
	if base != "" {
		b.WriteString("\n")
	}
	for _, f := range spec.Fields() {
		if isBasicKey(f.Key) {
			continue
		}
		if val := v.Get(f.Key); val != "" {
			line(&b, strings.ToUpper(strings.ReplaceAll(f.Key, "_", " ")), val)
		}
	}
	return b.String()
}

// ServiceFor resolves a service picker entry: a bare ID, an exact name, or a
// "<id> - <name>" combo line.
func ServiceFor(input string) (domain.Service, bool) {
	entry := strings.TrimSpace(input)
	if s, ok := catalog.Lookup(entry); ok {
		return s, true
	}
	if id, _, found := strings.Cut(entry, " - "); found {
		if s, ok := catalog.Lookup(strings.TrimSpace(id)); ok {
			return s, true
		}
	}
	return catalog.LookupByName(entry)
}
