package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leonelquinteros/gotext"

	"gloomhold/pkg/engine/input"
	"gloomhold/pkg/game/config"
	"gloomhold/pkg/game/gameplay"
	"gloomhold/pkg/game/renderer"
	"gloomhold/pkg/game/renderer/remote"
	"gloomhold/pkg/game/renderer/screen"
	"gloomhold/pkg/game/renderer/tui"
	"gloomhold/pkg/logger"
)

func initGettext(localesDir, locale string) {
	if localesDir == "" {
		return
	}
	gotext.Configure(localesDir, locale, "default")
}

// initLogging sends logs to path. Without a path the terminal frontends
// stay silent so log lines do not tear the display.
func initLogging(path, backend string) (func(), error) {
	if path == "" {
		logger.Init(nil)
		if backend != "remote" {
			logger.Silence()
		}
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.Init(f)
	return func() { f.Close() }, nil
}

func newRenderer(name, addr string) (renderer.Renderer, error) {
	switch name {
	case "tui":
		return tui.New(), nil
	case "screen":
		return screen.New(nil), nil
	case "remote":
		return remote.New(addr), nil
	}
	return nil, fmt.Errorf("unknown renderer %q (want tui, screen or remote)", name)
}

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	backend := flag.String("renderer", "tui", "display backend: tui, screen or remote")
	addr := flag.String("addr", "127.0.0.1:8080", "listen address for the remote renderer")
	logFile := flag.String("log-file", "", "write logs to this file")
	locale := flag.String("locale", "en_US", "message catalog language")
	localesDir := flag.String("locales-dir", "", "directory holding <locale>/default.po catalogs")
	dumpPath := flag.String("dump", "", "file the map dump key writes to (default map.txt)")
	flag.Parse()

	closeLog, err := initLogging(*logFile, *backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	initGettext(*localesDir, *locale)

	r, err := newRenderer(*backend, *addr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	g, err := gameplay.BuildGame(cfg)
	if err != nil {
		logger.Log.WithError(err).Error("Building game failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	renderer.SetRenderer(r)
	if err := renderer.Init(); err != nil {
		logger.Log.WithError(err).Error("Renderer init failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := gameplay.NewController(g)
	ctrl.DumpPath = *dumpPath

	if err := mainLoop(ctx, ctrl); err != nil {
		renderer.Close()
		logger.Log.WithError(err).Error("Game aborted")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	renderer.Close()
	logger.Log.WithField("turn", g.Turn).Info("Game ended")
}

// mainLoop ticks the controller until the player quits or ctx is
// cancelled. A frame is drawn whenever the controller is about to wait
// for input.
func mainLoop(ctx context.Context, ctrl *gameplay.Controller) error {
	g := ctrl.Game()
	for !ctrl.QuitRequested() {
		if ctx.Err() != nil {
			return nil
		}
		intent := input.None
		if ctrl.NeedsInput() {
			renderer.RenderFrame(renderer.BuildFrame(g, ctrl.Menu()))
			intent = renderer.GetInput(ctx, ctrl.InputContext())
			if ctx.Err() != nil {
				return nil
			}
		}
		if _, err := ctrl.Tick(ctx, intent); err != nil {
			return err
		}
	}
	return nil
}
