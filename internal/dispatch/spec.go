// Package dispatch maps service IDs to form builders and text formatters.
// Form specs are plain data so the TUI layer can render them with huh while
// formatting stays a pure function of the collected values.
package dispatch

import (
	"fmt"
	"strconv"

	"github.com/erickthegreen/crafttable/internal/domain"
)

// FieldKind selects the widget used to collect one value.
type FieldKind int

const (
	// FieldText is a free-text input.
	FieldText FieldKind = iota
	// FieldFixed is a pre-filled, read-only boilerplate line shown to the
	// agent and echoed into the record.
	FieldFixed
	// FieldChoice is a fixed single-choice group (the original radio buttons).
	FieldChoice
	// FieldSelect is a single-choice list that also accepts a custom entry
	// when the agent picks OptionCustom.
	FieldSelect
)

// OptionCustom is the select entry that unlocks the companion custom-text
// field of a FieldSelect.
const OptionCustom = "PERSONALIZADA"

// Option is one selectable choice. Label is what the agent sees; Value is
// what lands in the record.
type Option struct {
	Label string
	Value string
}

// Opt builds an Option whose label and value are the same string.
func Opt(s string) Option { return Option{Label: s, Value: s} }

// YesNo is the ubiquitous Sim/Não choice pair.
var YesNo = []Option{{Label: "Sim", Value: "SIM"}, {Label: "Não", Value: "NÃO"}}

// Field describes one input of a form.
type Field struct {
	Key      string // values map key; also the label when Label is empty
	Label    string
	Kind     FieldKind
	Options  []Option // FieldChoice / FieldSelect
	Fixed    string   // FieldFixed boilerplate
	Required bool
}

// DisplayLabel returns the label shown next to the widget.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Key
}

// ItemGroup is a dynamically sized run of repeated sub-forms, used for line
// items such as paid invoices or damaged appliances. Each field key is
// suffixed with the 1-based item index ("VALOR_3").
type ItemGroup struct {
	Key        string // values key holding the selected item count
	Title      string // per-item frame title ("Detalhes da Fatura")
	CountLabel string
	Min, Max   int
	Default    int
	Fields     []Field
}

// Section is a titled run of fields, optionally followed by an item group.
type Section struct {
	Title  string
	Fields []Field
	Group  *ItemGroup
}

// FormSpec is the full declarative description of one service form.
type FormSpec struct {
	Service domain.Service
	// SkipBasics suppresses the shared customer fields (anonymous reports
	// and the Genesys direct register).
	SkipBasics bool
	Sections   []Section
}

// Fields returns every field of the spec in display order, basics included.
func (s *FormSpec) Fields() []Field {
	var out []Field
	if !s.SkipBasics {
		out = append(out, basicFields()...)
	}
	for _, sec := range s.Sections {
		out = append(out, sec.Fields...)
	}
	return out
}

// Values holds the collected answers keyed by field key.
type Values map[string]string

// Get returns the value for key, or "". Values collected from a form are
// already trimmed by the binding layer.
func (v Values) Get(key string) string { return v[key] }

// ItemKey derives the values key of field key within item i (1-based).
func ItemKey(key string, i int) string { return fmt.Sprintf("%s_%d", key, i) }

// Item returns the value of field key within item i of a group.
func (v Values) Item(key string, i int) string { return v[ItemKey(key, i)] }

// Count returns the item count selected for a group, falling back to def when
// missing or unparsable.
func (v Values) Count(groupKey string, def int) int {
	n, err := strconv.Atoi(v[groupKey])
	if err != nil || n < 0 {
		return def
	}
	return n
}
