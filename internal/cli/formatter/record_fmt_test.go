package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/erickthegreen/crafttable/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "10:00", FormatCountdown(10*time.Minute))
	assert.Equal(t, "00:59", FormatCountdown(59*time.Second))
	assert.Equal(t, "00:00", FormatCountdown(-3*time.Second), "negative durations clamp to zero")
}

func TestFormatRecordLine_Placeholders(t *testing.T) {
	line := FormatRecordLine(domain.Record{
		Date:    "01/02/2024 10:30",
		Service: "Genesys",
	})
	assert.Contains(t, line, "—")
	assert.Contains(t, line, "prot. —")
}

func TestCategoryColor_EveryCategoryHasAnAccent(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range domain.AllCategories {
		color := string(CategoryColor(c))
		assert.NotEqual(t, string(ColorDim), color, string(c))
		assert.False(t, seen[color], "accents must be distinct")
		seen[color] = true
	}
}

func TestHeader_UnderlineMatchesRuneCount(t *testing.T) {
	out := Header("Religação")
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[1], strings.Repeat("─", len([]rune("RELIGAÇÃO"))))
}
