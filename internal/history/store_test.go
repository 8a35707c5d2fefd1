package history

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erickthegreen/crafttable/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "historico_registros.json")
	return Open(path, zap.NewNop()), path
}

func sampleRecord(name string) domain.Record {
	return domain.Record{
		ID:       "id-" + name,
		Date:     "01/02/2024 10:30",
		Service:  "Religação",
		Name:     name,
		Protocol: "P-1",
		Agent:    "A123",
		FullText: "SERVIÇO: Religação\nNOME: " + name + "\n\nA123",
	}
}

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	s, _ := tempStore(t)
	assert.Equal(t, 0, s.Total())
	for _, c := range domain.AllCategories {
		assert.NotNil(t, s.Records(c))
		assert.Empty(t, s.Records(c))
	}
}

func TestAppend_PersistsAndReloads(t *testing.T) {
	s, path := tempStore(t)

	require.NoError(t, s.Append(domain.CategoryCommercial, sampleRecord("Maria")))
	require.NoError(t, s.Append(domain.CategoryCommercial, sampleRecord("João")))
	require.NoError(t, s.Append(domain.CategoryEmergency, sampleRecord("Ana")))

	reloaded := Open(path, zap.NewNop())
	assert.Equal(t, 3, reloaded.Total())
	assert.Equal(t, 2, reloaded.Len(domain.CategoryCommercial))

	recs := reloaded.Records(domain.CategoryCommercial)
	require.Len(t, recs, 2)
	assert.Equal(t, "Maria", recs[0].Name, "insertion order preserved")
	assert.Equal(t, "João", recs[1].Name)
}

func TestAppend_RejectsUnknownCategory(t *testing.T) {
	s, path := tempStore(t)

	err := s.Append(domain.Category("Outros"), sampleRecord("Zé"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categoria desconhecida")

	// Nothing was written.
	assert.Equal(t, 0, s.Total())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestOpen_DocumentUsesOriginalCategoryKeys(t *testing.T) {
	s, path := tempStore(t)
	require.NoError(t, s.Append(domain.CategoryComplaint, sampleRecord("Rita")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string][]map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "Reclamações")
	require.Len(t, doc["Reclamações"], 1)
	assert.Equal(t, "Rita", doc["Reclamações"][0]["nome"])
	assert.Equal(t, "01/02/2024 10:30", doc["Reclamações"][0]["data"])
}

func TestOpen_CorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "historico_registros.json")
	require.NoError(t, os.WriteFile(path, []byte("{ not json"), 0o644))

	s := Open(path, zap.NewNop())
	assert.Equal(t, 0, s.Total())

	// The store must stay usable after degrading.
	require.NoError(t, s.Append(domain.CategoryInformation, sampleRecord("Bia")))
	assert.Equal(t, 1, s.Total())
}

func TestOpen_BackfillsMissingCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "historico_registros.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Emergenciais": []}`), 0o644))

	s := Open(path, zap.NewNop())
	for _, c := range domain.AllCategories {
		assert.NotNil(t, s.Records(c), string(c))
	}
}

func TestReset_ClearsEveryCategory(t *testing.T) {
	s, path := tempStore(t)
	require.NoError(t, s.Append(domain.CategoryEmergency, sampleRecord("Ana")))
	require.NoError(t, s.Reset())

	assert.Equal(t, 0, s.Total())
	assert.Equal(t, 0, Open(path, zap.NewNop()).Total())
}

func TestExportCSV(t *testing.T) {
	s, _ := tempStore(t)
	require.NoError(t, s.Append(domain.CategoryCommercial, sampleRecord("Maria")))

	var buf bytes.Buffer
	require.NoError(t, s.ExportCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "categoria,data,servico,nome,protocolo,atendente", lines[0])
	assert.Contains(t, lines[1], "Comerciais")
	assert.Contains(t, lines[1], "Maria")
}

func TestExportText(t *testing.T) {
	s, _ := tempStore(t)
	require.NoError(t, s.Append(domain.CategoryEmergency, sampleRecord("Ana")))

	var buf bytes.Buffer
	require.NoError(t, s.ExportText(&buf))

	out := buf.String()
	assert.Contains(t, out, "===== Emergenciais (1 registros) =====")
	assert.Contains(t, out, "===== Comerciais (0 registros) =====")
	assert.Contains(t, out, "SERVIÇO: Religação")
}
