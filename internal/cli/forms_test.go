package cli

import (
	"testing"

	"github.com/erickthegreen/crafttable/internal/catalog"
	"github.com/erickthegreen/crafttable/internal/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoundForm_BindsFixedFieldsImmediately(t *testing.T) {
	svc, ok := catalog.Lookup("4") // Desligamento Definitivo carries boilerplate lines
	require.True(t, ok)

	bf := newBoundForm(dispatch.Spec(svc), "A123")
	v := bf.Values()

	assert.Equal(t, "SOLICITA O DESLIGAMENTO DEFINITIVO DA SUA CC", v.Get("DESCRIÇÃO"))
	assert.Equal(t, "A123", bf.Agent())
}

func TestNewBoundForm_ItemGroupKeysAndDefaultCount(t *testing.T) {
	svc, ok := catalog.Lookup("10")
	require.True(t, ok)

	bf := newBoundForm(dispatch.Spec(svc), "")
	v := bf.Values()

	assert.Equal(t, "1", v.Get("QUANTIDADE DE FATURAS"), "invoice count defaults to 1")
	_, bound := bf.bound[dispatch.ItemKey("MÊS REFERENTE", 1)]
	assert.True(t, bound, "item fields are pre-bound for every possible index")
	_, bound = bf.bound[dispatch.ItemKey("MÊS REFERENTE", 10)]
	assert.True(t, bound)
}

func TestNewBoundForm_SkipBasicsOmitsCustomerFields(t *testing.T) {
	svc, ok := catalog.Lookup("6")
	require.True(t, ok)

	bf := newBoundForm(dispatch.Spec(svc), "")
	_, bound := bf.bound[dispatch.KeyName]
	assert.False(t, bound, "anonymous forms never collect the customer block")
}

func TestBoundForm_ValuesTrimWhitespace(t *testing.T) {
	svc, ok := catalog.Lookup("0")
	require.True(t, ok)

	bf := newBoundForm(dispatch.Spec(svc), "")
	*bf.bound[dispatch.KeyName] = "  Maria  "

	assert.Equal(t, "Maria", bf.Values().Get(dispatch.KeyName))
}
