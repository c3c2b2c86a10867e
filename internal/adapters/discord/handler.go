package discord

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"eventcal/internal/ports/input"
	"eventcal/internal/ports/output"
	pkgdiscord "eventcal/pkg/discord"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	eventUseCase      input.EventUseCase
	referenceUseCase  input.ReferenceUseCase
	translator        output.T
	locale            string
	guildID           string
	announceChannelID string
	now               func() time.Time
}

// NewHandler creates a Handler.
func NewHandler(
	eventUseCase input.EventUseCase,
	referenceUseCase input.ReferenceUseCase,
	translator output.T,
	locale string,
	guildID string,
	announceChannelID string,
) *Handler {
	return &Handler{
		eventUseCase:      eventUseCase,
		referenceUseCase:  referenceUseCase,
		translator:        translator,
		locale:            locale,
		guildID:           guildID,
		announceChannelID: announceChannelID,
		now:               time.Now,
	}
}

func (h *Handler) location() *time.Location {
	return h.eventUseCase.Zone().Location()
}

// translate renders key in the configured default locale.
func (h *Handler) translate(key string, data map[string]any) string {
	return h.translator.T(h.locale, key, data)
}

// localeOf prefers the interaction's client locale over the default.
func (h *Handler) localeOf(i *discordgo.InteractionCreate) string {
	if i != nil && i.Locale != "" {
		return string(i.Locale)
	}
	return h.locale
}

func (h *Handler) translatorFor(i *discordgo.InteractionCreate) pkgdiscord.Translate {
	locale := h.localeOf(i)
	return func(key string, data map[string]any) string {
		return h.translator.T(locale, key, data)
	}
}

// names loads the location/category catalog; display degrades to no names on error.
func (h *Handler) names(ctx context.Context) pkgdiscord.Names {
	catalog, err := h.referenceUseCase.Catalog(ctx)
	if err != nil {
		log.Printf("⚠️ Chargement des lieux/catégories: %v", err)
		return pkgdiscord.Names{}
	}
	return pkgdiscord.Names{Locations: catalog.Locations, Categories: catalog.Categories}
}

func monthName(tr pkgdiscord.Translate, m time.Month) string {
	return tr("month."+strconv.Itoa(int(m)), nil)
}
