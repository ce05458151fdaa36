package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gatewarden/gatewarden/internal/bot"
	"github.com/gatewarden/gatewarden/internal/setup"
	"github.com/urfave/cli/v3"
)

const (
	// BotLogDir specifies where bot log files are stored.
	BotLogDir = "logs/bot_logs"
)

func main() {
	if err := run(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cmd := &cli.Command{
		Name:  "bot",
		Usage: "Start the gatewarden membership bot",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Aliases: []string{"c"},
				Usage:   "Directory containing bot.toml (overrides the default search paths)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runBot(ctx, c.String("config-dir"))
		},
	}

	return cmd.Run(context.Background(), os.Args)
}

func runBot(ctx context.Context, configDir string) error {
	// Initialize application with required dependencies
	app, err := setup.InitializeApp(BotLogDir, configDir)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.CleanupApp()

	// Create bot instance
	discordBot, err := bot.New(app.Config, app.Logger)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	// Start the bot and connect to Discord
	if err := discordBot.Start(ctx); err != nil {
		return fmt.Errorf("failed to start bot: %w", err)
	}

	log.Println("Bot has been started. Waiting for interrupt signal to gracefully shutdown...")

	// Wait for interrupt signal to gracefully shutdown the bot
	// This ensures all pending events are processed before closing
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Cleanly close down the Discord session
	discordBot.Close(ctx)

	return nil
}
