package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"eventcal/internal/domain/entities"
	pkgdiscord "eventcal/pkg/discord"
)

const (
	editButtonPrefix   = "btn_edit_event_"
	deleteButtonPrefix = "btn_delete_event_"
)

// eventMessage builds the event card: detail embed plus owner buttons.
func (h *Handler) eventMessage(ctx context.Context, tr pkgdiscord.Translate, e entities.Event) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := pkgdiscord.EventEmbed(e, h.names(ctx), h.location(), tr)
	return []*discordgo.MessageEmbed{embed}, buildComponents(tr, e.ID)
}

func buildComponents(tr pkgdiscord.Translate, eventID uint) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: tr("ui.button_edit", nil), Style: discordgo.SecondaryButton, CustomID: fmt.Sprintf("%s%d", editButtonPrefix, eventID)},
			discordgo.Button{Label: tr("ui.button_delete", nil), Style: discordgo.DangerButton, CustomID: fmt.Sprintf("%s%d", deleteButtonPrefix, eventID)},
		}},
	}
}

// createDiscordScheduledEvent mirrors a one-off event into the guild's
// Discord calendar. Past events are skipped since Discord rejects them.
func (h *Handler) createDiscordScheduledEvent(s *discordgo.Session, event *entities.Event) {
	if h.guildID == "" || !event.Start.After(h.now()) {
		return
	}
	startTime := event.Start
	endTime := event.End

	location := event.Description
	if len([]rune(location)) > 100 {
		location = string([]rune(location)[:97]) + "..."
	}
	if location == "" {
		location = event.Title
	}

	_, err := s.GuildScheduledEventCreate(h.guildID, &discordgo.GuildScheduledEventParams{
		Name:               event.Title,
		Description:        event.Description,
		ScheduledStartTime: &startTime,
		ScheduledEndTime:   &endTime,
		PrivacyLevel:       discordgo.GuildScheduledEventPrivacyLevelGuildOnly,
		EntityType:         discordgo.GuildScheduledEventEntityTypeExternal,
		EntityMetadata: &discordgo.GuildScheduledEventEntityMetadata{
			Location: location,
		},
	})
	if err != nil {
		log.Printf("❌ Création événement calendrier Discord (event %d): %v", event.ID, err)
	}
}
