package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"eventcal/internal/domain/calendar"
	"eventcal/internal/domain/entities"
)

const (
	embedColor    = 0x5865F2
	announceColor = 0x57F287
	// Discord caps embed descriptions at 4096 characters.
	maxListLines = 25
)

// Translate renders a message key for the current viewer.
type Translate func(key string, data map[string]any) string

// Names resolves location and category IDs for display.
type Names struct {
	Locations  map[uint]entities.Location
	Categories map[uint]entities.Category
}

func (n Names) locations(ids []uint) string {
	var parts []string
	for _, id := range ids {
		if l, ok := n.Locations[id]; ok {
			parts = append(parts, l.Name)
		}
	}
	return strings.Join(parts, ", ")
}

func (n Names) categories(ids []uint) string {
	var parts []string
	for _, id := range ids {
		if c, ok := n.Categories[id]; ok {
			parts = append(parts, c.Title)
		}
	}
	return strings.Join(parts, ", ")
}

// EventEmbed builds the detail card of a single event.
func EventEmbed(e entities.Event, names Names, loc *time.Location, tr Translate) *discordgo.MessageEmbed {
	when := FormatWindow(e.Start, e.End, e.AllDay, loc)
	if e.AllDay {
		when += " (" + tr("ui.all_day", nil) + ")"
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: tr("ui.embed_when", nil), Value: when},
		{Name: tr("ui.embed_repeat", nil), Value: tr("repeat."+e.Repeat.String(), nil), Inline: true},
	}
	if e.HasEndRepeat() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: tr("ui.embed_until", nil), Value: e.EndRepeat.Format(DateLayout), Inline: true,
		})
	}
	if s := names.locations(e.LocationIDs); s != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: tr("ui.embed_locations", nil), Value: s})
	}
	if s := names.categories(e.CategoryIDs); s != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: tr("ui.embed_categories", nil), Value: s})
	}
	if e.CreatedBy != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: tr("ui.embed_created_by", nil), Value: fmt.Sprintf("<@%s>", e.CreatedBy), Inline: true,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📅 %s", e.Title),
		Description: e.Description,
		Color:       embedColor,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("#%d", e.ID)},
	}
	if e.Thumbnail != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.Thumbnail}
	}
	return embed
}

// ListEmbed renders entries one per line under title.
func ListEmbed(title string, entries []calendar.Entry, loc *time.Location, tr Translate) *discordgo.MessageEmbed {
	var b strings.Builder
	for i, entry := range entries {
		if i == maxListLines {
			fmt.Fprintf(&b, "… +%d", len(entries)-maxListLines)
			break
		}
		b.WriteString(EntryLine(entry, loc, tr))
		b.WriteString("\n")
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: strings.TrimRight(b.String(), "\n"),
		Color:       embedColor,
	}
}

// AnnounceEmbed is posted when events start happening.
func AnnounceEmbed(title string, entries []calendar.Entry, loc *time.Location, tr Translate) *discordgo.MessageEmbed {
	embed := ListEmbed(title, entries, loc, tr)
	embed.Color = announceColor
	return embed
}

// EntryLine is "**#id Title** · window · repeat". The window shown is the
// stored one; recurrences keep their original time of day.
func EntryLine(entry calendar.Entry, loc *time.Location, tr Translate) string {
	e := entry.Event()
	line := fmt.Sprintf("**#%d %s** · %s", e.ID, e.Title, FormatWindow(e.Start, e.End, e.AllDay, loc))
	if e.Repeat != entities.RepeatNever {
		line += " · " + tr("repeat."+e.Repeat.String(), nil)
	}
	return line
}
