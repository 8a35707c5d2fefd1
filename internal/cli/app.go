package cli

import (
	"github.com/erickthegreen/crafttable/internal/breaks"
	"github.com/erickthegreen/crafttable/internal/domain"
	"github.com/erickthegreen/crafttable/internal/history"
	"github.com/erickthegreen/crafttable/internal/prefs"
	"github.com/erickthegreen/crafttable/internal/session"
	"go.uber.org/zap"
)

// App holds references to the stores and services used by the TUI and the
// maintenance subcommands.
type App struct {
	History *history.Store
	Prefs   *prefs.Store
	Guard   *session.Guard
	Breaks  *breaks.State
	Log     *zap.Logger

	// Agent is the pre-filled agent registration (matrícula), typically from
	// CRAFTTABLE_AGENT.
	Agent string

	// StartService, when set, opens that service's form right after launch,
	// skipping the catalog. Set from the root command's optional argument.
	StartService *domain.Service

	// IsInteractive reports whether stdin is a terminal; set by main.
	IsInteractive func() bool
}
