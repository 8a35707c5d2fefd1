package domain

// Service is one call-center request type. Services are defined statically at
// startup and never mutated; the numeric string ID is what agents type into
// the service picker.
type Service struct {
	ID       string
	Name     string
	Category Category
}

// Record is one finalized, formatted submission. Field tags reproduce the
// original history document layout so existing files keep loading.
type Record struct {
	ID       string `json:"id,omitempty"`
	Date     string `json:"data"`
	Service  string `json:"servico"`
	Name     string `json:"nome"`
	Protocol string `json:"protocolo"`
	Agent    string `json:"atendente"`
	FullText string `json:"texto_completo"`
}

// RecordDateLayout is the timestamp layout used in history records.
const RecordDateLayout = "02/01/2006 15:04"
