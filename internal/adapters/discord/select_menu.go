package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"eventcal/internal/domain"
	pkgdiscord "eventcal/pkg/discord"
)

const agendaSelectPrefix = "select_agenda_month_"

// agendaMessage renders a month agenda with a month picker for the same year.
func (h *Handler) agendaMessage(ctx context.Context, i *discordgo.InteractionCreate, year int, month time.Month) (*discordgo.MessageEmbed, []discordgo.MessageComponent, error) {
	tr := h.translatorFor(i)
	entries, err := h.eventUseCase.MonthAgenda(ctx, year, month)
	if err != nil {
		return nil, nil, err
	}

	data := map[string]any{"Month": monthName(tr, month), "Year": year}
	embed := pkgdiscord.ListEmbed(tr("ui.agenda_title", data), entries, h.location(), tr)
	if len(entries) == 0 {
		embed.Description = tr("info.agenda_empty", data)
	}
	return embed, monthSelect(tr, year, month), nil
}

func monthSelect(tr pkgdiscord.Translate, year int, selected time.Month) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, 12)
	for m := time.January; m <= time.December; m++ {
		options = append(options, discordgo.SelectMenuOption{
			Label:   fmt.Sprintf("%s %d", monthName(tr, m), year),
			Value:   strconv.Itoa(int(m)),
			Default: m == selected,
		})
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    agendaSelectPrefix + strconv.Itoa(year),
				Placeholder: tr("ui.select_month_placeholder", nil),
				Options:     options,
			},
		}},
	}
}

// HandleAgendaMonthSelect redraws the agenda message for the picked month.
func (h *Handler) HandleAgendaMonthSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	year, err := strconv.Atoi(strings.TrimPrefix(data.CustomID, agendaSelectPrefix))
	if err != nil || len(data.Values) == 0 {
		return
	}
	m, err := strconv.Atoi(data.Values[0])
	if err != nil {
		h.respondError(s, i, "Agenda", domain.ErrInvalidMonth)
		return
	}

	embed, components, err := h.agendaMessage(context.Background(), i, year, time.Month(m))
	if err != nil {
		h.respondError(s, i, "Agenda", err)
		return
	}
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}
