package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/erickthegreen/crafttable/internal/domain"
)

// FormatRecordLine renders one history list row: timestamp, service, customer
// and protocol.
func FormatRecordLine(r domain.Record) string {
	name := r.Name
	if name == "" {
		name = "—"
	}
	proto := r.Protocol
	if proto == "" {
		proto = "—"
	}
	return fmt.Sprintf("%s  %s  %s  %s",
		StyleDim.Render(r.Date),
		Bold(r.Service),
		StyleFg.Render(name),
		StyleDim.Render("prot. "+proto))
}

// FormatRecordDetail renders the full-text view of one record.
func FormatRecordDetail(c domain.Category, r domain.Record) string {
	var b strings.Builder
	b.WriteString(CategoryStyle(c).Render(string(c)))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(r.Date))
	b.WriteString("\n")
	b.WriteString(Header(r.Service))
	b.WriteString("\n\n")
	b.WriteString(r.FullText)
	return b.String()
}

// FormatClock renders the status-bar wall clock.
func FormatClock(t time.Time) string {
	return StyleDim.Render(t.Format("15:04:05"))
}

// FormatCountdown renders a mm:ss break countdown.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatServiceOption renders one catalog picker row ("10 - Religação").
func FormatServiceOption(s domain.Service) string {
	return fmt.Sprintf("%s - %s", s.ID, s.Name)
}
