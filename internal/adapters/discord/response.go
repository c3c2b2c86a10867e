package discord

import (
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"eventcal/internal/domain"
)

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.User != nil {
		return i.User.ID
	}
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	return ""
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_ = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondEmbeds(s *discordgo.Session, i *discordgo.Interaction, content string, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	if err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Embeds:     embeds,
			Components: components,
		},
	}); err != nil {
		log.Printf("❌ Réponse à l'interaction: %v", err)
	}
}

// respondError shows the translated error. Errors without a domain code are
// unexpected and get logged.
func (h *Handler) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, action string, err error) {
	if domain.Code(err) == "" {
		log.Printf("❌ %s: %v", action, err)
	}
	respondEphemeral(s, i.Interaction, h.translator.Err(h.localeOf(i), err))
}

// idSuffix parses the numeric ID at the end of a custom ID such as "btn_delete_event_12".
func idSuffix(customID, prefix string) (uint, bool) {
	if !strings.HasPrefix(customID, prefix) {
		return 0, false
	}
	id, err := strconv.ParseUint(strings.TrimPrefix(customID, prefix), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
