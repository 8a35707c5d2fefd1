package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/erickthegreen/crafttable/internal/domain"
)

// ExportCSV writes every record as CSV rows with a category column.
func (s *Store) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"categoria", "data", "servico", "nome", "protocolo", "atendente"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, c := range domain.AllCategories {
		for _, r := range s.records[c] {
			row := []string{string(c), r.Date, r.Service, r.Name, r.Protocol, r.Agent}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing csv row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportText writes a human-readable dump of all categories, full record
// texts included.
func (s *Store) ExportText(w io.Writer) error {
	for _, c := range domain.AllCategories {
		header := fmt.Sprintf("===== %s (%d registros) =====\n", c, len(s.records[c]))
		if _, err := io.WriteString(w, header); err != nil {
			return fmt.Errorf("writing text export: %w", err)
		}
		for _, r := range s.records[c] {
			block := fmt.Sprintf("[%s] %s — %s (protocolo %s, atendente %s)\n%s\n%s\n",
				r.Date, r.Service, r.Name, r.Protocol, r.Agent,
				strings.Repeat("-", 40), r.FullText)
			if _, err := io.WriteString(w, block); err != nil {
				return fmt.Errorf("writing text export: %w", err)
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("writing text export: %w", err)
		}
	}
	return nil
}
