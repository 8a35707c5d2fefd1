package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/erickthegreen/crafttable/internal/breaks"
	"github.com/erickthegreen/crafttable/internal/cli"
	"github.com/erickthegreen/crafttable/internal/config"
	"github.com/erickthegreen/crafttable/internal/history"
	"github.com/erickthegreen/crafttable/internal/logging"
	"github.com/erickthegreen/crafttable/internal/prefs"
	"github.com/erickthegreen/crafttable/internal/session"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.NewFileLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer log.Sync()

	historyStore := history.Open(cfg.HistoryPath(), log)
	prefsStore := prefs.NewStore(cfg.PrefsPath(), log)
	breakState := breaks.NewState(breaks.DefaultSlots)

	guard := session.NewGuard(cfg.LastUserPath(), log,
		session.WiperFunc(historyStore.Reset),
		session.WiperFunc(prefsStore.Remove),
		session.WiperFunc(func() error { breakState.Clear(); return nil }),
	)

	interactive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	if err := checkSessionUser(guard, log, interactive()); err != nil {
		return err
	}

	app := &cli.App{
		History:       historyStore,
		Prefs:         prefsStore,
		Guard:         guard,
		Breaks:        breakState,
		Log:           log,
		Agent:         cfg.Agent,
		IsInteractive: interactive,
	}

	return cli.NewRootCmd(app).Execute()
}

// checkSessionUser compares the workstation user with the one from the last
// run and offers to wipe the local data when they differ. Non-interactive
// runs only log the mismatch.
func checkSessionUser(guard *session.Guard, log *zap.Logger, interactive bool) error {
	current := session.CurrentUsername()
	previous, changed := guard.Check(current)

	if changed {
		log.Warn("workstation user changed since last run",
			zap.String("previous", previous),
			zap.String("current", current))

		if interactive {
			wipe := false
			prompt := huh.NewConfirm().
				Title(fmt.Sprintf("Usuário diferente detectado (antes: %s, agora: %s).", previous, current)).
				Description("Deseja limpar o histórico e as preferências locais?").
				Affirmative("Limpar").
				Negative("Manter").
				Value(&wipe)
			if err := prompt.Run(); err != nil {
				return fmt.Errorf("confirming session wipe: %w", err)
			}
			if wipe {
				if err := guard.Wipe(); err != nil {
					return fmt.Errorf("wiping local data: %w", err)
				}
			}
		}
	}

	if current != "" {
		if err := guard.Remember(current); err != nil {
			log.Error("persisting current user", zap.Error(err))
		}
	}
	return nil
}
