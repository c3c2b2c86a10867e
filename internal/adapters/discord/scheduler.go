package discord

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"

	"eventcal/internal/domain/calendar"
	pkgdiscord "eventcal/pkg/discord"
)

// HappeningSource is the slice of the event use case the announcer needs.
type HappeningSource interface {
	HappeningNow(ctx context.Context, now time.Time) ([]calendar.Entry, error)
}

// Announcer periodically posts events that started happening since the
// previous tick. The first tick only records what is already happening so
// a restart does not repeat announcements.
type Announcer struct {
	source HappeningSource
	post   func([]calendar.Entry) error
	now    func() time.Time
	cron   *cron.Cron

	mu     sync.Mutex
	seeded bool
	active map[uint]struct{}
}

// NewAnnouncer schedules Tick on spec (standard 5-field cron) in loc.
func NewAnnouncer(source HappeningSource, spec string, loc *time.Location, post func([]calendar.Entry) error) (*Announcer, error) {
	logger := cron.PrintfLogger(log.Default())
	a := &Announcer{
		source: source,
		post:   post,
		now:    time.Now,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}
	if _, err := a.cron.AddFunc(spec, a.run); err != nil {
		return nil, fmt.Errorf("announcer: schedule %q: %w", spec, err)
	}
	return a, nil
}

func (a *Announcer) Start() {
	a.cron.Start()
	go a.run()
}

// Stop waits for a running tick to finish.
func (a *Announcer) Stop() {
	<-a.cron.Stop().Done()
}

func (a *Announcer) run() {
	if err := a.Tick(context.Background(), a.now()); err != nil {
		log.Printf("⚠️ Annonce des événements: %v", err)
	}
}

// Tick announces entries happening at now that were not happening at the
// previous tick.
func (a *Announcer) Tick(ctx context.Context, now time.Time) error {
	entries, err := a.source.HappeningNow(ctx, now)
	if err != nil {
		return err
	}

	a.mu.Lock()
	fresh, active := newlyHappening(a.active, entries)
	seeded := a.seeded
	a.active, a.seeded = active, true
	a.mu.Unlock()

	if !seeded || len(fresh) == 0 {
		return nil
	}
	return a.post(fresh)
}

// newlyHappening returns the entries absent from prev and the new active set.
func newlyHappening(prev map[uint]struct{}, entries []calendar.Entry) ([]calendar.Entry, map[uint]struct{}) {
	active := make(map[uint]struct{}, len(entries))
	var fresh []calendar.Entry
	for _, e := range entries {
		id := e.Snapshot().EventID()
		active[id] = struct{}{}
		if _, ok := prev[id]; !ok {
			fresh = append(fresh, e)
		}
	}
	return fresh, active
}

// announce posts entries to the announce channel.
func (h *Handler) announce(s *discordgo.Session) func([]calendar.Entry) error {
	return func(entries []calendar.Entry) error {
		embed := pkgdiscord.AnnounceEmbed(h.translate("ui.announce_title", nil), entries, h.location(), h.translate)
		if _, err := s.ChannelMessageSendEmbed(h.announceChannelID, embed); err != nil {
			return fmt.Errorf("send announcement: %w", err)
		}
		log.Printf("🔔 %d événement(s) annoncé(s)", len(entries))
		return nil
	}
}
