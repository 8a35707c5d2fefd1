package dispatch

import "strings"

// Shared field keys referenced across builders and formatters.
const (
	KeyName     = "NOME"
	KeyPhone    = "TELEFONE"
	KeyAccount  = "CC/CPF/CNPJ/UC"
	KeyProtocol = "PROTOCOLO"
	KeyGenesys  = "OPÇÃO GENESYS"
)

// basicKeys is the customer identification block collected for every service
// except the anonymous ones.
var basicKeys = []string{KeyName, KeyPhone, KeyAccount, KeyProtocol}

func basicFields() []Field {
	return []Field{
		{Key: KeyName, Kind: FieldText, Required: true},
		{Key: KeyPhone, Kind: FieldText},
		{Key: KeyAccount, Kind: FieldText},
		{Key: KeyProtocol, Kind: FieldText, Required: true},
	}
}

// basicInfo renders the customer block, skipping empty fields, exactly as the
// head of every generated record.
func basicInfo(v Values) string {
	var b strings.Builder
	for _, key := range basicKeys {
		if val := v.Get(key); val != "" {
			b.WriteString(key)
			b.WriteString(": ")
			b.WriteString(val)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// isBasicKey reports whether key belongs to the customer block.
func isBasicKey(key string) bool {
	for _, k := range basicKeys {
		if k == key {
			return true
		}
	}
	return false
}

// line appends "KEY: value\n" to b.
func line(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
