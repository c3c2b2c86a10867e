package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"eventcal/internal/domain"
	"eventcal/internal/domain/entities"
	pkgdiscord "eventcal/pkg/discord"
)

const editModalPrefix = "edit_event_modal_"

// openEditModal ouvre le modal d'édition d'un événement existant.
func (h *Handler) openEditModal(s *discordgo.Session, i *discordgo.InteractionCreate, id uint) {
	tr := h.translatorFor(i)
	event, err := h.eventUseCase.GetEventByID(context.Background(), id)
	if err != nil {
		h.respondError(s, i, "Chargement de l'événement", err)
		return
	}
	if event.CreatedBy != "" && !event.IsOwnedBy(interactionUserID(i)) {
		h.respondError(s, i, "Modification", domain.ErrNotOwner)
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   fmt.Sprintf("%s%d", editModalPrefix, event.ID),
			Title:      tr("ui.modal_edit_event_title", nil),
			Components: h.eventModalFields(tr, *event, true),
		},
	})
	if err != nil {
		h.respondError(s, i, "Ouverture du formulaire", err)
	}
}

// handleEditEventModalSubmit traite la soumission du modal d'édition.
// Lieux, catégories et fin de répétition sont conservés.
func (h *Handler) handleEditEventModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	tr := h.translatorFor(i)
	id, ok := idSuffix(data.CustomID, editModalPrefix)
	if !ok {
		return
	}
	values := pkgdiscord.ModalValues(data)

	repeat, err := entities.ParseRepeat(values["repeat"])
	if err != nil {
		h.respondError(s, i, "Répétition", err)
		return
	}

	ctx := context.Background()
	event, err := h.eventUseCase.GetEventByID(ctx, id)
	if err != nil {
		h.respondError(s, i, "Chargement de l'événement", err)
		return
	}

	start, end, err := pkgdiscord.ParseEventWindow(values["start"], values["end"], event.AllDay, h.location())
	if err != nil {
		h.respondError(s, i, "Dates de l'événement", err)
		return
	}

	event.Title = values["title"]
	event.Description = values["desc"]
	event.Start = start
	event.End = end
	event.Repeat = repeat

	if err := h.eventUseCase.UpdateEvent(ctx, event, interactionUserID(i)); err != nil {
		h.respondError(s, i, "Mise à jour de l'événement", err)
		return
	}

	embeds, components := h.eventMessage(ctx, tr, *event)
	content := tr("info.event_updated", map[string]any{"Title": event.Title})
	if i.Message != nil {
		// Submitted from the event card's edit button: refresh the card in place.
		_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{Content: content, Embeds: embeds, Components: components},
		})
		return
	}
	respondEmbeds(s, i.Interaction, content, embeds, components)
}
