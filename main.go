package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hendrywilliam/launchpad/src/channels"
	"github.com/hendrywilliam/launchpad/src/commands"
	"github.com/hendrywilliam/launchpad/src/config"
	"github.com/hendrywilliam/launchpad/src/interactions"
	"github.com/hendrywilliam/launchpad/src/rest"
	"github.com/hendrywilliam/launchpad/src/verify"
	"github.com/hendrywilliam/launchpad/src/webhook"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

var signals = []os.Signal{
	os.Interrupt,
	syscall.SIGINT,
	syscall.SIGTERM,
}

func loadConfig(c *cli.Context) (config.AppConfig, error) {
	envFile := c.String("env-file")
	if err := godotenv.Load(envFile); err != nil {
		// Deployments inject the environment directly.
		log.Debug().Err(err).Str("file", envFile).Msg("no env file loaded")
	}
	cfg, err := config.LoadConfiguration()
	if err != nil {
		return config.AppConfig{}, err
	}
	if c.IsSet("addr") {
		cfg.APIAddress = c.String("addr")
	}
	if cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return cfg, nil
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	publicKey, err := verify.ParsePublicKey(cfg.DiscordPublicKey)
	if err != nil {
		return err
	}
	discord := rest.NewREST(cfg.DiscordHTTPBaseURL, cfg.DiscordBotToken, cfg.RequestTimeout)

	dispatcher := interactions.NewDispatcher()
	dispatcher.Handle(interactions.ActivitiesPrefix, interactions.ActivitiesHandler(channels.New(discord)))

	log.Info().Str("addr", cfg.APIAddress).Str("env", cfg.AppEnv).Msg("starting interactions webhook")
	server := webhook.NewServer(publicKey, dispatcher)
	return server.StartServer(c.Context, cfg.APIAddress)
}

func registerCommands(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	discord := rest.NewREST(cfg.DiscordHTTPBaseURL, cfg.DiscordBotToken, cfg.RequestTimeout)
	registered, err := commands.New(discord).BulkOverwrite(c.Context, cfg.DiscordAppsID, commands.Definitions())
	if err != nil {
		return err
	}
	for _, cmd := range registered {
		log.Info().Str("id", cmd.ID).Str("name", cmd.Name).Msg("registered command")
	}
	return nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	ctx, stop := signal.NotifyContext(context.Background(), signals...)
	defer stop()

	app := &cli.App{
		Name:  "launchpad",
		Usage: "discord interactions webhook that launches activities in voice channels",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Value:   ".env",
				Usage:   "dotenv file to load before reading the environment",
				EnvVars: []string{"ENV_FILE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the interactions webhook",
				Action: serve,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "listen address, overrides API_ADDRESS",
					},
				},
			},
			{
				Name:   "register-commands",
				Usage:  "overwrite the application's global slash commands",
				Action: registerCommands,
			},
		},
		DefaultCommand: "serve",
	}
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("launchpad exited")
	}
}
