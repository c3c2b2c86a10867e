package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// HandleEditButton opens the edit modal from an event card.
func (h *Handler) HandleEditButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	id, ok := idSuffix(i.MessageComponentData().CustomID, editButtonPrefix)
	if !ok {
		return
	}
	h.openEditModal(s, i, id)
}

// HandleDeleteButton deletes the event and strips the card's buttons.
func (h *Handler) HandleDeleteButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	id, ok := idSuffix(i.MessageComponentData().CustomID, deleteButtonPrefix)
	if !ok {
		return
	}
	if err := h.eventUseCase.DeleteEvent(context.Background(), id, interactionUserID(i)); err != nil {
		h.respondError(s, i, "Suppression de l'événement", err)
		return
	}

	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    h.translatorFor(i)("info.event_deleted", nil),
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		},
	})
}
