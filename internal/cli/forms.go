package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/erickthegreen/crafttable/internal/dispatch"
)

// keyAgent is the registration input present on every form.
const keyAgent = "MATRÍCULA"

// boundForm binds a dispatch.FormSpec to a huh.Form. Every field value is
// collected through a string pointer and read back with Values() after the
// form completes.
type boundForm struct {
	form   *huh.Form
	bound  map[string]*string
	agent  *string
	counts map[string]*string // group key → selected count
}

// newBoundForm renders spec as a themed huh form. The agent registration is
// always the first field, pre-filled from the previous submission.
func newBoundForm(spec *dispatch.FormSpec, agentDefault string) *boundForm {
	bf := &boundForm{
		bound:  make(map[string]*string),
		counts: make(map[string]*string),
	}

	agent := agentDefault
	bf.agent = &agent
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title(keyAgent).
				Placeholder("sua matrícula").
				Value(bf.agent).
				Validate(requireNonEmpty(keyAgent)),
		),
	}

	if !spec.SkipBasics {
		groups = append(groups, bf.basicsGroup())
	}
	for _, sec := range spec.Sections {
		groups = append(groups, bf.sectionGroups(sec)...)
	}

	bf.form = huh.NewForm(groups...).WithTheme(craftHuhTheme()).WithShowHelp(false)
	return bf
}

func (bf *boundForm) basicsGroup() *huh.Group {
	var fields []huh.Field
	for _, f := range []struct {
		key      string
		required bool
	}{
		{dispatch.KeyName, true},
		{dispatch.KeyPhone, false},
		{dispatch.KeyAccount, false},
		{dispatch.KeyProtocol, true},
	} {
		fields = append(fields, bf.textInput(f.key, f.key, f.required))
	}
	return huh.NewGroup(fields...).Title("Dados do Cliente")
}

// sectionGroups renders one spec section, expanding an attached item group
// into a count selector plus pre-built, conditionally hidden item frames.
func (bf *boundForm) sectionGroups(sec dispatch.Section) []*huh.Group {
	var out []*huh.Group

	if len(sec.Fields) > 0 {
		fields := make([]huh.Field, 0, len(sec.Fields))
		for _, f := range sec.Fields {
			fields = append(fields, bf.huhField(f))
		}
		g := huh.NewGroup(fields...)
		if sec.Title != "" {
			g = g.Title(sec.Title)
		}
		out = append(out, g)
	}

	if sec.Group != nil {
		out = append(out, bf.itemGroups(sec.Group)...)
	}
	return out
}

func (bf *boundForm) itemGroups(ig *dispatch.ItemGroup) []*huh.Group {
	count := strconv.Itoa(ig.Default)
	bf.counts[ig.Key] = &count

	countOpts := make([]huh.Option[string], 0, ig.Max-ig.Min+1)
	for n := ig.Min; n <= ig.Max; n++ {
		countOpts = append(countOpts, huh.NewOption(strconv.Itoa(n), strconv.Itoa(n)))
	}
	out := []*huh.Group{huh.NewGroup(
		huh.NewSelect[string]().
			Title(ig.CountLabel).
			Options(countOpts...).
			Value(&count),
	)}

	// All item frames exist up front; hidden ones are skipped by huh.
	for i := 1; i <= ig.Max; i++ {
		idx := i
		fields := make([]huh.Field, 0, len(ig.Fields))
		for _, f := range ig.Fields {
			fields = append(fields, bf.textInput(dispatch.ItemKey(f.Key, idx), f.DisplayLabel(), false))
		}
		g := huh.NewGroup(fields...).
			Title(fmt.Sprintf("%s %d", ig.Title, idx)).
			WithHideFunc(func() bool {
				n, err := strconv.Atoi(count)
				return err != nil || idx > n
			})
		out = append(out, g)
	}
	return out
}

func (bf *boundForm) huhField(f dispatch.Field) huh.Field {
	switch f.Kind {
	case dispatch.FieldFixed:
		// Boilerplate shown to the agent and echoed into the record.
		fixed := f.Fixed
		bf.bound[f.Key] = &fixed
		return huh.NewNote().Title(f.DisplayLabel()).Description(f.Fixed)

	case dispatch.FieldChoice, dispatch.FieldSelect:
		val := new(string)
		bf.bound[f.Key] = val
		opts := make([]huh.Option[string], 0, len(f.Options))
		for _, o := range f.Options {
			opts = append(opts, huh.NewOption(o.Label, o.Value))
		}
		sel := huh.NewSelect[string]().Title(f.DisplayLabel()).Options(opts...).Value(val)
		if f.Required {
			sel = sel.Validate(requireNonEmpty(f.DisplayLabel()))
		}
		return sel

	default:
		return bf.textInput(f.Key, f.DisplayLabel(), f.Required)
	}
}

func (bf *boundForm) textInput(key, label string, required bool) huh.Field {
	val := new(string)
	bf.bound[key] = val
	in := huh.NewInput().Title(label).Value(val)
	if required {
		in = in.Validate(requireNonEmpty(label))
	}
	return in
}

// Values snapshots the bound pointers into a dispatch.Values map.
func (bf *boundForm) Values() dispatch.Values {
	v := make(dispatch.Values, len(bf.bound)+len(bf.counts))
	for key, ptr := range bf.bound {
		v[key] = strings.TrimSpace(*ptr)
	}
	for key, ptr := range bf.counts {
		v[key] = strings.TrimSpace(*ptr)
	}
	return v
}

// Agent returns the submitted registration.
func (bf *boundForm) Agent() string {
	return strings.TrimSpace(*bf.agent)
}

func requireNonEmpty(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s é obrigatório", label)
		}
		return nil
	}
}
