package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"eventcal/internal/domain/entities"
	pkgdiscord "eventcal/pkg/discord"
)

const createModalPrefix = "create_event_modal"

// createState carries the /evenement options through the modal CustomID,
// since modals only hold text inputs.
type createState struct {
	Repeat     entities.Repeat
	AllDay     bool
	EndRepeat  *time.Time
	LocationID uint
	CategoryID uint
}

// customID encodes s as "create_event_modal:REPEAT:allDay:YYYYMMDD|-:loc:cat".
func (s createState) customID() string {
	allDay := "0"
	if s.AllDay {
		allDay = "1"
	}
	endRepeat := "-"
	if s.EndRepeat != nil {
		endRepeat = s.EndRepeat.Format("20060102")
	}
	return fmt.Sprintf("%s:%s:%s:%s:%d:%d", createModalPrefix, s.Repeat, allDay, endRepeat, s.LocationID, s.CategoryID)
}

func parseCreateState(customID string) (createState, error) {
	parts := strings.Split(customID, ":")
	if len(parts) != 6 || parts[0] != createModalPrefix {
		return createState{}, fmt.Errorf("modal %q: format inattendu", customID)
	}
	var s createState
	repeat, err := entities.ParseRepeat(parts[1])
	if err != nil {
		return createState{}, err
	}
	s.Repeat = repeat
	s.AllDay = parts[2] == "1"
	if parts[3] != "-" {
		d, err := time.Parse("20060102", parts[3])
		if err != nil {
			return createState{}, fmt.Errorf("modal %q: fin de répétition: %w", customID, err)
		}
		s.EndRepeat = &d
	}
	loc, err := strconv.ParseUint(parts[4], 10, 32)
	if err != nil {
		return createState{}, fmt.Errorf("modal %q: lieu: %w", customID, err)
	}
	cat, err := strconv.ParseUint(parts[5], 10, 32)
	if err != nil {
		return createState{}, fmt.Errorf("modal %q: catégorie: %w", customID, err)
	}
	s.LocationID, s.CategoryID = uint(loc), uint(cat)
	return s, nil
}

func optionalID(id uint) []uint {
	if id == 0 {
		return nil
	}
	return []uint{id}
}

func (h *Handler) eventModalFields(tr pkgdiscord.Translate, e entities.Event, withRepeat bool) []discordgo.MessageComponent {
	var start, end string
	if !e.Start.IsZero() {
		start = e.Start.In(h.location()).Format(pkgdiscord.DateTimeLayout)
	}
	if !e.End.IsZero() {
		end = e.End.In(h.location()).Format(pkgdiscord.DateTimeLayout)
	}
	fields := []discordgo.MessageComponent{
		pkgdiscord.TextRow(discordgo.TextInput{CustomID: "title", Label: tr("ui.label_title", nil), Style: discordgo.TextInputShort, Required: true, MaxLength: 100, Value: e.Title, Placeholder: tr("ui.placeholder_title", nil)}),
		pkgdiscord.TextRow(discordgo.TextInput{CustomID: "desc", Label: tr("ui.label_description", nil), Style: discordgo.TextInputParagraph, Required: false, Value: e.Description, Placeholder: tr("ui.placeholder_desc", nil)}),
		pkgdiscord.TextRow(discordgo.TextInput{CustomID: "start", Label: tr("ui.label_start", nil), Style: discordgo.TextInputShort, Required: true, Value: start, Placeholder: tr("ui.placeholder_datetime", nil)}),
		pkgdiscord.TextRow(discordgo.TextInput{CustomID: "end", Label: tr("ui.label_end", nil), Style: discordgo.TextInputShort, Required: false, Value: end, Placeholder: tr("ui.placeholder_datetime", nil)}),
	}
	if withRepeat {
		fields = append(fields, pkgdiscord.TextRow(discordgo.TextInput{CustomID: "repeat", Label: tr("ui.label_repeat", nil), Style: discordgo.TextInputShort, Required: true, Value: e.Repeat.String(), Placeholder: tr("ui.placeholder_repeat", nil)}))
	}
	return fields
}

func (h *Handler) openCreateModal(s *discordgo.Session, i *discordgo.InteractionCreate, state createState) {
	tr := h.translatorFor(i)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   state.customID(),
			Title:      tr("ui.modal_create_event_title", nil),
			Components: h.eventModalFields(tr, entities.Event{}, false),
		},
	})
	if err != nil {
		h.respondError(s, i, "Ouverture du formulaire", err)
	}
}

// handleCreateEventModalSubmit gère la soumission du modal de création.
func (h *Handler) handleCreateEventModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, data discordgo.ModalSubmitInteractionData) {
	tr := h.translatorFor(i)
	state, err := parseCreateState(data.CustomID)
	if err != nil {
		h.respondError(s, i, "Modal de création", err)
		return
	}
	values := pkgdiscord.ModalValues(data)
	start, end, err := pkgdiscord.ParseEventWindow(values["start"], values["end"], state.AllDay, h.location())
	if err != nil {
		h.respondError(s, i, "Dates de l'événement", err)
		return
	}

	event := &entities.Event{
		Title:       values["title"],
		Description: values["desc"],
		Start:       start,
		End:         end,
		AllDay:      state.AllDay || isWholeDays(start, end),
		Repeat:      state.Repeat,
		EndRepeat:   state.EndRepeat,
		LocationIDs: optionalID(state.LocationID),
		CategoryIDs: optionalID(state.CategoryID),
		CreatedBy:   interactionUserID(i),
	}

	ctx := context.Background()
	if err := h.eventUseCase.CreateEvent(ctx, event); err != nil {
		h.respondError(s, i, "Sauvegarde de l'événement", err)
		return
	}

	if event.Repeat == entities.RepeatNever {
		h.createDiscordScheduledEvent(s, event)
	}

	embeds, components := h.eventMessage(ctx, tr, *event)
	respondEmbeds(s, i.Interaction, tr("info.event_created", map[string]any{"Title": event.Title, "ID": event.ID}), embeds, components)
}

// isWholeDays reports a window running from 00:00 to 23:59 local.
func isWholeDays(start, end time.Time) bool {
	return start.Hour() == 0 && start.Minute() == 0 && end.Hour() == 23 && end.Minute() == 59
}
