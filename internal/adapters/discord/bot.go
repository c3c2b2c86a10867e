package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"eventcal/internal/config"
	"eventcal/internal/ports/input"
	"eventcal/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot around the given use cases.
func NewBot(cfg *config.Config, eventUC input.EventUseCase, referenceUC input.ReferenceUseCase, translator output.T) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("création de la session Discord: %w", err)
	}

	handler := NewHandler(eventUC, referenceUC, translator, cfg.Locale, cfg.GuildID, cfg.AnnounceChannelID)

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handler.HandleCommand(s, i)
	case discordgo.InteractionModalSubmit:
		b.handler.HandleModalSubmit(s, i)
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		switch {
		case strings.HasPrefix(customID, editButtonPrefix):
			b.handler.HandleEditButton(s, i)
		case strings.HasPrefix(customID, deleteButtonPrefix):
			b.handler.HandleDeleteButton(s, i)
		case strings.HasPrefix(customID, agendaSelectPrefix):
			b.handler.HandleAgendaMonthSelect(s, i)
		}
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, Commands()); err != nil {
		log.Printf("⚠️ Erreur lors de l'enregistrement des commandes: %v", err)
	}

	if b.config.AnnounceChannelID != "" {
		announcer, err := NewAnnouncer(b.handler.eventUseCase, b.config.AnnounceCron, b.config.Zone.Location(), b.handler.announce(b.session))
		if err != nil {
			return err
		}
		announcer.Start()
		defer announcer.Stop()
		log.Printf("🔔 Annonces actives (%s, %s)", b.config.AnnounceCron, b.config.Zone)
	}

	fmt.Println("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
