package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"eventcal/internal/domain/calendar"
	"eventcal/pkg/tz"
)

const (
	defaultDatabaseURL  = "postgres://localhost:5432/eventcal?sslmode=disable"
	defaultLocale       = "fr"
	defaultAnnounceCron = "*/15 * * * *"
)

type Config struct {
	Token             string `env:"TOKEN"`
	GuildID           string `env:"GUILD_ID"`
	AnnounceChannelID string `env:"ANNOUNCE_CHANNEL_ID"`
	DatabaseURL       string `env:"DATABASE_URL"`
	// MigrationsPath vide = migrations embarquées dans le binaire.
	MigrationsPath string `env:"MIGRATIONS_PATH"`
	Timezone       string `env:"TIMEZONE"`
	Locale         string `env:"LOCALE"`
	AnnounceCron   string `env:"ANNOUNCE_CRON"`

	// Zone est résolue à partir de Timezone par validate.
	Zone calendar.Zone
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}
	return FromEnv()
}

// FromEnv lit la configuration sans charger de fichier .env.
func FromEnv() (*Config, error) {
	cfg, err := parseEnv()
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}

	for _, r := range c.AnnounceChannelID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: ANNOUNCE_CHANNEL_ID doit être un ID de salon Discord (chiffres uniquement)")
		}
	}

	if err := c.validateStorage(); err != nil {
		return err
	}

	if strings.TrimSpace(c.Timezone) == "" {
		c.Timezone = tz.Default
	}
	zone, err := calendar.LoadZone(c.Timezone)
	if err != nil {
		return fmt.Errorf("config: TIMEZONE invalide (%q): %w", c.Timezone, err)
	}
	c.Zone = zone

	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = defaultLocale
	}

	if strings.TrimSpace(c.AnnounceCron) == "" {
		c.AnnounceCron = defaultAnnounceCron
	}
	if _, err := cron.ParseStandard(c.AnnounceCron); err != nil {
		return fmt.Errorf("config: ANNOUNCE_CRON invalide (%q): %w", c.AnnounceCron, err)
	}

	return nil
}

// LoadStorage ne lit que ce qu'il faut pour les commandes hors bot (migrate, export).
func LoadStorage() (*Config, error) {
	_ = godotenv.Load()
	cfg, err := parseEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.validateStorage(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Timezone) == "" {
		cfg.Timezone = tz.Default
	}
	zone, err := calendar.LoadZone(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: TIMEZONE invalide (%q): %w", cfg.Timezone, err)
	}
	cfg.Zone = zone
	return cfg, nil
}

func parseEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: lecture de l'environnement: %w", err)
	}
	return cfg, nil
}

func (c *Config) validateStorage() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
		c.DatabaseURL = defaultDatabaseURL
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}
	return nil
}
