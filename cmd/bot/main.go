package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"eventcal/internal/adapters/discord"
	"eventcal/internal/application"
	"eventcal/internal/config"
	"eventcal/internal/infrastructure/database"
	"eventcal/internal/infrastructure/i18n"
	"eventcal/pkg/ical"
)

func main() {
	app := &cli.App{
		Name:   "eventcal",
		Usage:  "Agenda d'événements récurrents sur Discord.",
		Action: runBot,
		Commands: []*cli.Command{
			botCommand(),
			migrateCommand(),
			exportCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

func botCommand() *cli.Command {
	return &cli.Command{
		Name:   "bot",
		Usage:  "Lancer le bot Discord (commande par défaut).",
		Action: runBot,
	}
}

func runBot(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	pool, err := database.NewPool(c.Context, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("initialisation de la base de données: %w", err)
	}
	defer pool.Close()

	eventUC := application.NewEventService(database.NewEventRepository(pool), cfg.Zone)
	referenceUC := application.NewReferenceService(database.NewLocationRepository(pool), database.NewCategoryRepository(pool))
	translator := i18n.NewTranslator(cfg.Locale)

	bot, err := discord.NewBot(cfg, eventUC, referenceUC, translator)
	if err != nil {
		return err
	}
	log.Printf("🕒 Fuseau horaire : %s", cfg.Zone)
	return bot.Start()
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Gérer le schéma de la base de données.",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Appliquer les migrations en attente.",
				Action: func(c *cli.Context) error {
					cfg, err := config.LoadStorage()
					if err != nil {
						return err
					}
					return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
				},
			},
			{
				Name:  "down",
				Usage: "Annuler les dernières migrations.",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "Nombre de migrations à annuler."},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.LoadStorage()
					if err != nil {
						return err
					}
					return database.RollbackMigrations(cfg.DatabaseURL, cfg.MigrationsPath, c.Int("steps"))
				},
			},
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Exporter les événements d'un créateur au format iCalendar.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "creator", Required: true, Usage: "ID Discord du créateur."},
			&cli.StringFlag{Name: "out", Value: "-", Usage: "Fichier de sortie (- = sortie standard)."},
			&cli.StringFlag{Name: "name", Value: "eventcal", Usage: "Nom du calendrier."},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadStorage()
			if err != nil {
				return err
			}
			pool, err := database.NewPool(c.Context, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("initialisation de la base de données: %w", err)
			}
			defer pool.Close()

			eventUC := application.NewEventService(database.NewEventRepository(pool), cfg.Zone)
			referenceUC := application.NewReferenceService(database.NewLocationRepository(pool), database.NewCategoryRepository(pool))

			events, err := eventUC.GetEventsByCreatorID(c.Context, c.String("creator"))
			if err != nil {
				return err
			}
			catalog, err := referenceUC.Catalog(c.Context)
			if err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if out := c.String("out"); out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("création de %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := ical.Export(w, events, ical.Options{
				Name:       c.String("name"),
				Location:   cfg.Zone.Location(),
				Locations:  catalog.Locations,
				Categories: catalog.Categories,
			}); err != nil {
				return err
			}
			log.Printf("✅ %d événement(s) exporté(s)", len(events))
			return nil
		},
	}
}
