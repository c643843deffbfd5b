// Package main is the entry point for the savswap application.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/joe/savswap/internal/config"
	"github.com/joe/savswap/internal/logging"
	"github.com/joe/savswap/internal/transfer"
	"github.com/joe/savswap/internal/tui"
	"github.com/joe/savswap/internal/tui/setup"
	"github.com/joe/savswap/internal/tui/shared"
	pkgerrors "github.com/joe/savswap/pkg/errors"
	"github.com/joe/savswap/pkg/gateway"
	"github.com/joe/savswap/pkg/listing"
)

// environment holds what run needs from the outside world.
type environment struct {
	Runner   gateway.Runner
	Prompter config.Prompter
	Logger   zerolog.Logger
	Stderr   io.Writer
	Options  []tea.ProgramOption
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := logging.New(cfg.DebugLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	defer func() { _ = closeLog() }()

	return run(context.Background(), cfg, environment{
		Runner:   gateway.NewExecRunner(logger),
		Prompter: setup.NewPrompter(),
		Logger:   logger,
		Stderr:   os.Stderr,
		Options:  tui.ProgramOptions(os.Stdout),
	})
}

// run loads the paths, checks that a phone answers and then hands over to
// the menus. It returns the process exit code.
func run(ctx context.Context, cfg *config.Config, env environment) int {
	paths, err := config.NewStore(cfg.ConfigPath, env.Prompter).Load()
	if err != nil {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return 1
	}

	env.Logger.Info().
		Str("config", cfg.ConfigPath).
		Str("phone_path", paths.DevicePath).
		Str("pc_path", paths.HostPath).
		Msg("config loaded")

	bridge := gateway.NewBridge(env.Runner, cfg.ADB, cfg.ShellCommand())

	if !checkConnection(ctx, bridge, env) {
		return 1
	}

	model := tui.NewModel(ctx, tui.Options{
		Lister:     bridge,
		Transferer: transfer.NewInvoker(bridge, paths, env.Logger),
		Paths:      paths,
		Filter:     listing.NewFilter(cfg.Filter),
		Logger:     env.Logger,
	})

	if err := tui.Run(model, env.Options...); err != nil {
		env.Logger.Error().Err(err).Msg("exiting")
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

// checkConnection probes the device once. On failure it prints why and
// returns false.
func checkConnection(ctx context.Context, bridge *gateway.Bridge, env environment) bool {
	result, err := bridge.Probe(ctx)
	if err == nil && result.Success {
		return true
	}

	env.Logger.Error().Err(err).Bool("success", result.Success).Msg("connectivity probe failed")

	diag := listing.Decode(result.Stderr)
	if err != nil {
		diag = err.Error()
	}

	failure := shared.Failure{
		Title:      "No phone connected. Terminating program...",
		Output:     listing.Decode(result.Stdout),
		Diagnostic: diag,
	}

	failure.Suggestions = pkgerrors.FormatSuggestions(probeDiagnosis(diag))

	fmt.Fprint(env.Stderr, shared.RenderFailure(failure))

	return false
}

// probeDiagnosis categorises a failed probe. A silent failure is treated as
// a missing device.
func probeDiagnosis(diag string) error {
	if strings.TrimSpace(diag) == "" {
		return pkgerrors.NewActionableError(
			"probe failed",
			pkgerrors.CategoryDevice,
			pkgerrors.NewSuggestionGenerator().Generate(pkgerrors.CategoryDevice, ""),
			"",
		)
	}

	return pkgerrors.NewEnricher().Enrich(errors.New(diag), "")
}
