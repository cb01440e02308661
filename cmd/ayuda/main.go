package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/khebbar/ayuda-cli/internal/buildinfo"
	"github.com/khebbar/ayuda-cli/internal/client/cli"
	"github.com/khebbar/ayuda-cli/internal/client/config"
	"github.com/khebbar/ayuda-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app := cli.NewApp(cfg, logger)
	app.Run(ctx)

}
