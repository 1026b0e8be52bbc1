package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/cli/command/auth"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/cli/command/history"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/cli/command/identity"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/cli/command/run"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/cli/registry"
	cfg "github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/i18n"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/logger"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error initializing the cli: %v", err)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		stop()
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	logger.Initialize(false, false)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, err
	}

	commands := registry.NewRegistry(cfgApp, translations)
	if err := commands.Register("run", run.NewCommand()); err != nil {
		return nil, err
	}
	if err := commands.Register("identity", identity.NewCommand()); err != nil {
		return nil, err
	}
	if err := commands.Register("auth", auth.NewCommand()); err != nil {
		return nil, err
	}
	if err := commands.Register("history", history.NewCommand()); err != nil {
		return nil, err
	}

	return &cli.Command{
		Name:        "daily-post",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Description: translations.GetMessage("app_description", 0, nil),
		Commands:    commands.CreateCommands(),
	}, nil
}
