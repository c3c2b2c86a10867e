package discord

import (
	"bytes"
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"eventcal/internal/domain"
	"eventcal/internal/domain/entities"
	pkgdiscord "eventcal/pkg/discord"
	"eventcal/pkg/ical"
)

const (
	cmdEvent    = "evenement"
	cmdEdit     = "modifier"
	cmdDelete   = "supprimer"
	cmdNow      = "maintenant"
	cmdAgenda   = "agenda"
	cmdExport   = "ics"
	cmdLocation = "lieu"
	cmdCategory = "categorie"
)

var minMonth, minYear = 1.0, 1970.0

func repeatChoices() []*discordgo.ApplicationCommandOptionChoice {
	repeats := entities.AllRepeats()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(repeats))
	for i, r := range repeats {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{Name: r.Label(), Value: r.String()}
	}
	return choices
}

// Commands lists the slash commands registered at startup.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        cmdEvent,
			Description: "Créer un événement",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "repetition", Description: "Répétition (Never par défaut)", Choices: repeatChoices()},
				{Type: discordgo.ApplicationCommandOptionBoolean, Name: "journee", Description: "Événement sur la journée entière"},
				{Type: discordgo.ApplicationCommandOptionString, Name: "fin_repetition", Description: "Dernier jour de répétition (JJ/MM/AAAA)"},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "lieu", Description: "Numéro du lieu"},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "categorie", Description: "Numéro de la catégorie"},
			},
		},
		{
			Name:        cmdEdit,
			Description: "Modifier un de tes événements",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "id", Description: "Numéro de l'événement", Required: true},
			},
		},
		{
			Name:        cmdDelete,
			Description: "Supprimer un de tes événements",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "id", Description: "Numéro de l'événement", Required: true},
			},
		},
		{Name: cmdNow, Description: "Événements en cours"},
		{
			Name:        cmdAgenda,
			Description: "Événements d'un mois",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "annee", Description: "Année (par défaut l'année en cours)", MinValue: &minYear},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "mois", Description: "Mois 1-12 (par défaut le mois en cours)", MinValue: &minMonth, MaxValue: 12},
			},
		},
		{Name: cmdExport, Description: "Exporter tes événements au format .ics"},
		{
			Name:        cmdLocation,
			Description: "Ajouter un lieu",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "nom", Description: "Nom du lieu", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "ville", Description: "Ville"},
				{Type: discordgo.ApplicationCommandOptionString, Name: "region", Description: "Région"},
				{Type: discordgo.ApplicationCommandOptionString, Name: "pays", Description: "Pays"},
			},
		},
		{
			Name:        cmdCategory,
			Description: "Ajouter une catégorie",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "titre", Description: "Titre de la catégorie", Required: true},
			},
		},
	}
}

type commandOptions map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionsOf(data discordgo.ApplicationCommandInteractionData) commandOptions {
	opts := make(commandOptions, len(data.Options))
	for _, o := range data.Options {
		opts[o.Name] = o
	}
	return opts
}

func (o commandOptions) stringOpt(name string) string {
	if opt, ok := o[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func (o commandOptions) intOpt(name string) int64 {
	if opt, ok := o[name]; ok {
		return opt.IntValue()
	}
	return 0
}

func (o commandOptions) boolOpt(name string) bool {
	if opt, ok := o[name]; ok {
		return opt.BoolValue()
	}
	return false
}

// HandleCommand dispatches slash commands.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	opts := optionsOf(data)
	switch data.Name {
	case cmdEvent:
		h.handleEventCommand(s, i, opts)
	case cmdEdit:
		h.openEditModal(s, i, uint(opts.intOpt("id")))
	case cmdDelete:
		h.deleteEvent(s, i, uint(opts.intOpt("id")))
	case cmdNow:
		h.handleNowCommand(s, i)
	case cmdAgenda:
		h.handleAgendaCommand(s, i, opts)
	case cmdExport:
		h.handleExportCommand(s, i)
	case cmdLocation:
		h.handleLocationCommand(s, i, opts)
	case cmdCategory:
		h.handleCategoryCommand(s, i, opts)
	}
}

func (h *Handler) handleEventCommand(s *discordgo.Session, i *discordgo.InteractionCreate, opts commandOptions) {
	state := createState{AllDay: opts.boolOpt("journee")}
	if r := opts.stringOpt("repetition"); r != "" {
		repeat, err := entities.ParseRepeat(r)
		if err != nil {
			h.respondError(s, i, "Répétition", err)
			return
		}
		state.Repeat = repeat
	}
	endRepeat, err := pkgdiscord.ParseDate(opts.stringOpt("fin_repetition"))
	if err != nil {
		h.respondError(s, i, "Fin de répétition", err)
		return
	}
	state.EndRepeat = endRepeat
	state.LocationID = uint(opts.intOpt("lieu"))
	state.CategoryID = uint(opts.intOpt("categorie"))

	h.openCreateModal(s, i, state)
}

func (h *Handler) handleNowCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	tr := h.translatorFor(i)
	entries, err := h.eventUseCase.HappeningNow(context.Background(), h.now())
	if err != nil {
		h.respondError(s, i, "Événements en cours", err)
		return
	}
	if len(entries) == 0 {
		respondEphemeral(s, i.Interaction, tr("info.nothing_now", nil))
		return
	}
	embed := pkgdiscord.ListEmbed(tr("ui.now_title", nil), entries, h.location(), tr)
	respondEmbeds(s, i.Interaction, "", []*discordgo.MessageEmbed{embed}, nil)
}

func (h *Handler) handleAgendaCommand(s *discordgo.Session, i *discordgo.InteractionCreate, opts commandOptions) {
	now := h.now().In(h.location())
	year, month := now.Year(), now.Month()
	if y := opts.intOpt("annee"); y != 0 {
		year = int(y)
	}
	if m := opts.intOpt("mois"); m != 0 {
		month = time.Month(m)
	}

	embed, components, err := h.agendaMessage(context.Background(), i, year, month)
	if err != nil {
		h.respondError(s, i, "Agenda", err)
		return
	}
	respondEmbeds(s, i.Interaction, "", []*discordgo.MessageEmbed{embed}, components)
}

func (h *Handler) handleExportCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	tr := h.translatorFor(i)
	ctx := context.Background()
	events, err := h.eventUseCase.GetEventsByCreatorID(ctx, interactionUserID(i))
	if err != nil {
		h.respondError(s, i, "Export .ics", err)
		return
	}
	if len(events) == 0 {
		respondEphemeral(s, i.Interaction, tr("info.no_events_to_export", nil))
		return
	}

	names := h.names(ctx)
	var buf bytes.Buffer
	err = ical.Export(&buf, events, ical.Options{
		Name:       "eventcal",
		Location:   h.location(),
		Locations:  names.Locations,
		Categories: names.Categories,
		Now:        h.now(),
	})
	if err != nil {
		h.respondError(s, i, "Export .ics", err)
		return
	}

	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: tr("info.ics_ready", map[string]any{"Count": len(events)}),
			Flags:   discordgo.MessageFlagsEphemeral,
			Files: []*discordgo.File{
				{Name: "evenements.ics", ContentType: "text/calendar", Reader: &buf},
			},
		},
	})
}

func (h *Handler) handleLocationCommand(s *discordgo.Session, i *discordgo.InteractionCreate, opts commandOptions) {
	location := &entities.Location{
		Name:    opts.stringOpt("nom"),
		City:    opts.stringOpt("ville"),
		Region:  opts.stringOpt("region"),
		Country: opts.stringOpt("pays"),
	}
	if err := h.referenceUseCase.CreateLocation(context.Background(), location); err != nil {
		h.respondError(s, i, "Création du lieu", err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translatorFor(i)("info.location_created", map[string]any{"Name": location.Name, "ID": location.ID}))
}

func (h *Handler) handleCategoryCommand(s *discordgo.Session, i *discordgo.InteractionCreate, opts commandOptions) {
	category := &entities.Category{Title: opts.stringOpt("titre")}
	if err := h.referenceUseCase.CreateCategory(context.Background(), category); err != nil {
		h.respondError(s, i, "Création de la catégorie", err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translatorFor(i)("info.category_created", map[string]any{"Title": category.Title, "ID": category.ID}))
}

func (h *Handler) deleteEvent(s *discordgo.Session, i *discordgo.InteractionCreate, id uint) {
	if id == 0 {
		h.respondError(s, i, "Suppression", domain.ErrEventNotFound)
		return
	}
	if err := h.eventUseCase.DeleteEvent(context.Background(), id, interactionUserID(i)); err != nil {
		h.respondError(s, i, "Suppression de l'événement", err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translatorFor(i)("info.event_deleted", nil))
}
