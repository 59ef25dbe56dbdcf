// Command powder-term runs the sandbox in a terminal. Click to paint, digits
// pick a material, [ and ] resize the brush, space pauses, n steps, r resets
// and q quits.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"sandca/internal/app"
	_ "sandca/internal/sims/sandbox"
	"sandca/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	sim, err := cfg.NewSim()
	if err != nil {
		logger.Error("building sim", "error", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("opening terminal", "error", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error("initializing terminal", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := term.Run(ctx, screen, sim, cfg.TPS, cfg.Seed)
	stop()
	screen.Fini()

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Error("simulation stopped", "sim", sim.Name(), "error", runErr)
		os.Exit(1)
	}
}
