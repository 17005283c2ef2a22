// Package scheduler fires event reminders. The web client used browser
// notifications for this; server-side the same concern runs on cron: a
// per-minute sweep for events about to start and a daily summary.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/timely-app/timely/config"
	"github.com/timely-app/timely/internal/dateutil"
	"github.com/timely-app/timely/internal/service"
)

type Scheduler struct {
	cron     *cron.Cron
	cfg      *config.Config
	events   *service.EventService
	notifier service.Notifier

	mu       sync.Mutex
	notified map[string]bool // event ids reminded today
	day      string          // wall date the notified set belongs to
}

func New(cfg *config.Config, events *service.EventService, notifier service.Notifier) *Scheduler {
	c := cron.New(cron.WithLocation(cfg.Location()))

	return &Scheduler{
		cron:     c,
		cfg:      cfg,
		events:   events,
		notifier: notifier,
		notified: make(map[string]bool),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc("* * * * *", s.checkUpcoming); err != nil {
		return fmt.Errorf("add reminder sweep: %w", err)
	}

	summarySpec, err := cronSpecAt(s.cfg.SummaryTime)
	if err != nil {
		return fmt.Errorf("summary time: %w", err)
	}
	if _, err := s.cron.AddFunc(summarySpec, s.dailySummary); err != nil {
		return fmt.Errorf("add daily summary: %w", err)
	}

	s.cron.Start()
	log.Printf("Scheduler started (TZ: %s, summary: %s, lead: %dm)",
		s.cfg.Timezone, s.cfg.SummaryTime, s.cfg.ReminderLeadMinutes)

	<-ctx.Done()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Scheduler stopped")
}

// checkUpcoming reminds about events starting within the configured lead
// window. Each event is reminded at most once per day.
func (s *Scheduler) checkUpcoming() {
	now := time.Now().In(s.cfg.Location())
	today := now.Format(dateutil.DateLayout)
	// Wall-space "now" so it compares against wall event starts.
	wallNow := time.Date(now.Year(), now.Month(), now.Day(),
		now.Hour(), now.Minute(), 0, 0, time.UTC)

	s.mu.Lock()
	if s.day != today {
		s.day = today
		s.notified = make(map[string]bool)
	}
	s.mu.Unlock()

	lead := time.Duration(s.cfg.ReminderLeadMinutes) * time.Minute
	for _, ev := range s.events.EventsOn(today) {
		start, err := dateutil.Combine(ev.Date, ev.Time)
		if err != nil {
			continue
		}
		until := start.Sub(wallNow)
		if until < 0 || until > lead {
			continue
		}

		s.mu.Lock()
		seen := s.notified[ev.ID]
		s.notified[ev.ID] = true
		s.mu.Unlock()
		if seen {
			continue
		}

		body := fmt.Sprintf("%s starts at %s", ev.Title, ev.Time)
		if ev.Time == "" {
			body = fmt.Sprintf("%s is today", ev.Title)
		}
		if err := s.notifier.Notify("Upcoming event", body); err != nil {
			log.Printf("Reminder for %s failed: %v", ev.ID, err)
		}
	}
}

func (s *Scheduler) dailySummary() {
	today := time.Now().In(s.cfg.Location()).Format(dateutil.DateLayout)
	events := s.events.EventsOn(today)
	if len(events) == 0 {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d event(s) today:\n", len(events))
	for _, ev := range events {
		if ev.Time != "" {
			fmt.Fprintf(&b, "- %s %s (%dm)\n", ev.Time, ev.Title, ev.Duration)
		} else {
			fmt.Fprintf(&b, "- %s\n", ev.Title)
		}
	}

	if err := s.notifier.Notify("Today's schedule", b.String()); err != nil {
		log.Printf("Daily summary failed: %v", err)
	}
}

// cronSpecAt converts "HH:MM" into a daily cron spec.
func cronSpecAt(clock string) (string, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q", clock)
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid time %q", clock)
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}

// LogNotifier writes notifications to the process log; the default sink
// when nothing else is wired.
type LogNotifier struct{}

func (LogNotifier) Notify(title, body string) error {
	log.Printf("[notify] %s: %s", title, body)
	return nil
}
