package service

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"

	"github.com/timely-app/timely/internal/domain"
	"github.com/timely-app/timely/internal/schedule"
	"github.com/timely-app/timely/internal/storage"
)

// ErrNotFound is returned by Update and Delete for an unknown event id.
var ErrNotFound = errors.New("event not found")

// IDGenerator hands out event ids and recurrence group ids. Injected so
// creation stays deterministic under test and safe under rapid batch
// expansion, where wall-clock-derived ids would collide.
type IDGenerator interface {
	NextID() string
	NextGroupID() string
}

// Sequence is the default IDGenerator: a monotonic counter. Event ids are
// plain decimal strings; group ids carry a "recurring-" prefix so the two
// namespaces never mix.
type Sequence struct {
	mu sync.Mutex
	n  uint64
}

func NewSequence(seed uint64) *Sequence {
	return &Sequence{n: seed}
}

func (s *Sequence) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return strconv.FormatUint(s.n, 10)
}

func (s *Sequence) NextGroupID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return "recurring-" + strconv.FormatUint(s.n, 10)
}

// EventService is the sole owner of the event collection. Every mutation is
// applied to the in-memory slice under the lock and then persisted as a
// whole snapshot; readers only ever get copies.
type EventService struct {
	mu      sync.RWMutex
	storage *storage.Storage
	gen     IDGenerator
	events  []domain.Event
}

func NewEventService(st *storage.Storage, gen IDGenerator) *EventService {
	return &EventService{storage: st, gen: gen}
}

// Load pulls the persisted collection into memory. An empty or unreadable
// store falls back to the built-in default set, which is persisted right
// away so the next start finds it.
func (s *EventService) Load() error {
	events, err := s.storage.LoadEvents()
	if err != nil {
		log.Printf("Loading events failed, seeding defaults: %v", err)
		events = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(events) == 0 {
		events = s.defaultEvents()
		if err := s.storage.ReplaceEvents(events); err != nil {
			return fmt.Errorf("persist default events: %w", err)
		}
	}
	s.events = events
	s.reseedLocked()
	return nil
}

// reseedLocked bumps the id counter past every numeric id already in the
// collection so freshly assigned ids cannot collide with loaded ones.
func (s *EventService) reseedLocked() {
	seq, ok := s.gen.(*Sequence)
	if !ok {
		return
	}
	var max uint64
	for _, ev := range s.events {
		if n, err := strconv.ParseUint(ev.ID, 10, 64); err == nil && n > max {
			max = n
		}
	}
	seq.mu.Lock()
	if seq.n < max {
		seq.n = max
	}
	seq.mu.Unlock()
}

// CreateRequest carries the fields of a creation. When Recurring is set the
// request expands into one event per step from Date through RecurringEndDate.
type CreateRequest struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`

	Recurring        bool                  `json:"recurring,omitempty"`
	RecurringType    domain.RecurrenceType `json:"recurringType,omitempty"`
	RecurringEndDate string                `json:"recurringEndDate,omitempty"`
}

// CreateResult reports the assigned ids (one per inserted event) and
// whether any insert overlapped an existing event. Conflicts never block
// the write; the flag is a warning for the caller to surface.
type CreateResult struct {
	IDs      []string `json:"ids"`
	Conflict bool     `json:"conflict"`
}

// Create inserts one event, or a whole recurrence group when the request is
// recurring. Each expanded occurrence is conflict-checked against the
// collection as inserted so far, so overlaps inside the batch are reported
// too. The snapshot is persisted once per call.
func (s *EventService) Create(req CreateRequest) (CreateResult, error) {
	var result CreateResult

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Recurring {
		rule := domain.RecurrenceRule{
			Title:     req.Title,
			StartDate: req.Date,
			Time:      req.Time,
			Duration:  req.Duration,
			Type:      req.RecurringType,
			EndDate:   req.RecurringEndDate,
		}
		occurrences, err := schedule.Expand(rule, s.gen.NextGroupID())
		if err != nil {
			return result, err
		}
		for _, occ := range occurrences {
			conflict, err := schedule.HasConflict(occ, s.events, "")
			if err != nil {
				return CreateResult{}, err
			}
			occ.ID = s.gen.NextID()
			s.events = append(s.events, occ)
			result.IDs = append(result.IDs, occ.ID)
			result.Conflict = result.Conflict || conflict
		}
	} else {
		candidate := domain.Event{
			Title:    req.Title,
			Date:     req.Date,
			Time:     req.Time,
			Duration: req.Duration,
		}
		conflict, err := schedule.HasConflict(candidate, s.events, "")
		if err != nil {
			return result, err
		}
		candidate.ID = s.gen.NextID()
		s.events = append(s.events, candidate)
		result.IDs = []string{candidate.ID}
		result.Conflict = conflict
	}

	if err := s.persistLocked(); err != nil {
		return result, err
	}
	return result, nil
}

// Update merge-patches the event with the given id and reports whether the
// merged result overlaps any other event. The event's own previous version
// is never counted as a conflict.
func (s *EventService) Update(id string, patch domain.EventPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return false, fmt.Errorf("update %s: %w", id, ErrNotFound)
	}

	merged := s.events[idx]
	patch.Apply(&merged)

	conflict, err := schedule.HasConflict(merged, s.events, id)
	if err != nil {
		return false, err
	}

	s.events[idx] = merged
	if err := s.persistLocked(); err != nil {
		return conflict, err
	}
	return conflict, nil
}

// Delete removes one event. A missing id is an ErrNotFound, consistent
// with Update.
func (s *EventService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	s.events = append(s.events[:idx], s.events[idx+1:]...)
	return s.persistLocked()
}

// DeleteGroup removes every occurrence sharing a recurrence group id and
// returns how many were removed. An unknown group removes nothing and is
// not an error.
func (s *EventService) DeleteGroup(recurringID string) (int, error) {
	if recurringID == "" {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.events[:0]
	removed := 0
	for _, ev := range s.events {
		if ev.RecurringID == recurringID {
			removed++
			continue
		}
		kept = append(kept, ev)
	}
	s.events = kept

	if removed == 0 {
		return 0, nil
	}
	return removed, s.persistLocked()
}

// Events returns a copy of the whole collection, sorted by date and time.
func (s *EventService) Events() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	sortEvents(out)
	return out
}

// EventsOn returns the events on one wall date, sorted by start time.
func (s *EventService) EventsOn(date string) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Event
	for _, ev := range s.events {
		if ev.Date == date {
			out = append(out, ev)
		}
	}
	sortEvents(out)
	return out
}

// HasConflict re-runs conflict detection for an existing event against the
// rest of the collection; the views use it to flag overlapping entries.
func (s *EventService) HasConflict(ev domain.Event) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conflict, err := schedule.HasConflict(ev, s.events, ev.ID)
	if err != nil {
		return false
	}
	return conflict
}

// ReplaceAll swaps in a wholly new collection; the import path uses it.
// Incoming ids are kept so exported data round-trips, and the id counter is
// pushed past them.
func (s *EventService) ReplaceAll(events []domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(events))
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = s.gen.NextID()
		}
		if _, dup := seen[events[i].ID]; dup {
			return fmt.Errorf("import: duplicate event id %q", events[i].ID)
		}
		seen[events[i].ID] = struct{}{}
	}

	s.events = events
	s.reseedLocked()
	return s.persistLocked()
}

func (s *EventService) persistLocked() error {
	if err := s.storage.ReplaceEvents(s.events); err != nil {
		return fmt.Errorf("persist events: %w", err)
	}
	return nil
}

func (s *EventService) indexOfLocked(id string) int {
	for i, ev := range s.events {
		if ev.ID == id {
			return i
		}
	}
	return -1
}

func sortEvents(events []domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return events[i].ID < events[j].ID
	})
}

// defaultEvents seeds a fresh install with a small sample set on upcoming
// dates, mirroring what an empty store falls back to.
func (s *EventService) defaultEvents() []domain.Event {
	return []domain.Event{
		{ID: s.gen.NextID(), Title: "Team standup", Date: "2026-09-01", Time: "09:00", Duration: 15},
		{ID: s.gen.NextID(), Title: "Lunch with Sam", Date: "2026-09-01", Time: "12:30", Duration: 60},
		{ID: s.gen.NextID(), Title: "Dentist", Date: "2026-09-03", Time: "15:00", Duration: 45},
	}
}
