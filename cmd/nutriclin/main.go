package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/nutriclin/nutriclin/internal/api"
	"github.com/nutriclin/nutriclin/internal/cli"
	"github.com/nutriclin/nutriclin/internal/config"
	"github.com/nutriclin/nutriclin/internal/db"
	"github.com/rs/zerolog"
)

func main() {
	resetEmail := flag.String("reset-password", "", "reset the password for the given account email and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	if *resetEmail != "" {
		if err := cli.RunResetPasswordCommand(cfg.DBPath, *resetEmail); err != nil {
			fmt.Fprintf(os.Stderr, "reset password failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger := buildLogger(cfg)
	location := cfg.Location()
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init failed")
	}

	handler, err := api.NewHandler(database, cfg.SecretKey, location, cfg.CookieSecure, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("handler init failed")
	}

	app := fiber.New(fiber.Config{
		AppName:               "Nutriclin",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(handler.RequestLogger)
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	logger.Info().
		Str("port", cfg.Port).
		Str("db", cfg.DBPath).
		Str("tz", location.String()).
		Msg("Nutriclin listening")

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func buildLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = os.Stderr
	if cfg.LogPretty {
		writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
