package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/timely-app/timely/internal/dateutil"
	"github.com/timely-app/timely/internal/domain"
	"github.com/timely-app/timely/internal/ics"
	"github.com/timely-app/timely/internal/schedule"
	"github.com/timely-app/timely/internal/service"
)

// exportDocument is the JSON export/import format: the full collection plus
// settings, round-tripping losslessly.
type exportDocument struct {
	Events   []domain.Event  `json:"events"`
	Settings domain.Settings `json:"settings"`
}

// eventView is an event joined with its current conflict flag, which the
// views use to highlight overlapping entries.
type eventView struct {
	domain.Event
	Conflict bool `json:"conflict"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeError maps service errors onto HTTP statuses: unknown ids are 404,
// malformed dates and times are 400, the rest is 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, dateutil.ErrInvalidDate), errors.Is(err, dateutil.ErrInvalidTime):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) eventViews(events []domain.Event) []eventView {
	views := make([]eventView, 0, len(events))
	for _, ev := range events {
		views = append(views, eventView{Event: ev, Conflict: s.events.HasConflict(ev)})
	}
	return views
}

// === Events ===

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.eventViews(s.events.Events()))
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req service.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := s.events.Create(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var patch domain.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	conflict, err := s.events.Update(r.PathValue("id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"conflict": conflict})
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.events.Delete(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	removed, err := s.events.DeleteGroup(r.PathValue("recurringId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

func (s *Server) handleEventsOnDay(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, err := dateutil.ParseDate(date); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.eventViews(s.events.EventsOn(date)))
}

// === Calendar views ===

type monthCell struct {
	Date    string      `json:"date"`
	InMonth bool        `json:"inMonth"`
	Today   bool        `json:"today"`
	Events  []eventView `json:"events,omitempty"`
}

func (s *Server) handleMonth(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	month, err := queryInt(r, "month")
	if err != nil || month < 1 || month > 12 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid month"})
		return
	}

	reference := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	mondayStart := s.settings.Get().StartWeekMonday
	matrix := schedule.MonthMatrix(reference, mondayStart, dateutil.DateOf(time.Now()))

	weeks := make([][]monthCell, schedule.MatrixWeeks)
	for wi, week := range matrix {
		cells := make([]monthCell, schedule.MatrixDays)
		for di, cell := range week {
			date := dateutil.FormatDate(cell.Date)
			cells[di] = monthCell{
				Date:    date,
				InMonth: cell.InMonth,
				Today:   cell.Today,
				Events:  s.eventViews(s.events.EventsOn(date)),
			}
		}
		weeks[wi] = cells
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"headers": schedule.DayHeaders(mondayStart),
		"weeks":   weeks,
	})
}

func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	reference, err := dateutil.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}

	mondayStart := s.settings.Get().StartWeekMonday
	today := dateutil.DateOf(time.Now())

	days := make([]monthCell, 0, schedule.MatrixDays)
	for _, day := range schedule.WeekDays(reference, mondayStart) {
		date := dateutil.FormatDate(day)
		days = append(days, monthCell{
			Date:    date,
			InMonth: true,
			Today:   dateutil.SameDay(day, today),
			Events:  s.eventViews(s.events.EventsOn(date)),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"headers": schedule.DayHeaders(mondayStart),
		"days":    days,
	})
}

type yearMonth struct {
	Month      string `json:"month"` // "YYYY-MM"
	Name       string `json:"name"`
	Days       []int  `json:"days"` // 0 marks a leading blank cell
	EventCount int    `json:"eventCount"`
}

func (s *Server) handleYear(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	mondayStart := s.settings.Get().StartWeekMonday

	counts := make(map[string]int)
	for _, ev := range s.events.Events() {
		if len(ev.Date) >= 7 {
			counts[ev.Date[:7]]++
		}
	}

	months := make([]yearMonth, 0, 12)
	for _, start := range schedule.YearMonths(year) {
		key := start.Format("2006-01")
		months = append(months, yearMonth{
			Month:      key,
			Name:       start.Format("January"),
			Days:       schedule.MiniMonth(start, mondayStart),
			EventCount: counts[key],
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"headers": schedule.DayHeaders(mondayStart),
		"months":  months,
	})
}

// === Settings ===

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.settings.Get())
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := s.settings.Update(settings); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.settings.Get())
}

// === Export / import ===

func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	doc := exportDocument{
		Events:   s.events.Events(),
		Settings: s.settings.Get(),
	}
	w.Header().Set("Content-Disposition", `attachment; filename="timely-export.json"`)
	writeJSON(w, http.StatusOK, doc)
}

// handleImportJSON replaces the stored collection and settings wholesale.
func (s *Server) handleImportJSON(w http.ResponseWriter, r *http.Request) {
	var doc exportDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid import document"})
		return
	}

	if err := s.events.ReplaceAll(doc.Events); err != nil {
		writeError(w, err)
		return
	}
	if err := s.settings.Update(doc.Settings); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"events": len(doc.Events)})
}

func (s *Server) handleExportICS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="timely.ics"`)
	if err := ics.Export(w, s.events.Events()); err != nil {
		log.Printf("ICS export failed: %v", err)
	}
}

// handleImportICS adds events from an uploaded ICS document to the existing
// collection; unlike JSON import it does not replace anything.
func (s *Server) handleImportICS(w http.ResponseWriter, r *http.Request) {
	imported, err := ics.Parse(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var created, conflicts int
	for _, ev := range imported {
		result, err := s.events.Create(service.CreateRequest{
			Title:            ev.Title,
			Date:             ev.Date,
			Time:             ev.Time,
			Duration:         ev.Duration,
			Recurring:        ev.Recurring,
			RecurringType:    ev.RecurringType,
			RecurringEndDate: ev.RecurringEndDate,
		})
		if err != nil {
			log.Printf("ICS import: skipping %q: %v", ev.Title, err)
			continue
		}
		created += len(result.IDs)
		if result.Conflict {
			conflicts++
		}
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"imported":  created,
		"conflicts": conflicts,
	})
}

// === World clock ===

func (s *Server) handleWorldClock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.clock.Times(time.Now()))
}

// === Pomodoro ===

func (s *Server) handlePomodoroState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pomodoro.State())
}

func (s *Server) handlePomodoroToggle(w http.ResponseWriter, r *http.Request) {
	s.pomodoro.Toggle()
	writeJSON(w, http.StatusOK, s.pomodoro.State())
}

func (s *Server) handlePomodoroReset(w http.ResponseWriter, r *http.Request) {
	s.pomodoro.Reset()
	writeJSON(w, http.StatusOK, s.pomodoro.State())
}

func (s *Server) handlePomodoroMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode service.PomodoroMode `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := s.pomodoro.SwitchMode(req.Mode); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.pomodoro.State())
}

func queryInt(r *http.Request, key string) (int, error) {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}
