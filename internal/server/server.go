// Package server is the JSON API the web client talks to. It owns no state
// of its own; every handler delegates to a service and translates results
// to HTTP. Conflicts are reported inside successful responses, never as
// error statuses.
package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/timely-app/timely/internal/service"
)

type Server struct {
	events   *service.EventService
	settings *service.SettingsService
	clock    *service.ClockService
	pomodoro *service.PomodoroService

	httpServer *http.Server
}

func New(addr string, events *service.EventService, settings *service.SettingsService,
	clock *service.ClockService, pomodoro *service.PomodoroService) *Server {

	s := &Server{
		events:   events,
		settings: settings,
		clock:    clock,
		pomodoro: pomodoro,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/events", s.handleListEvents)
	mux.HandleFunc("POST /api/events", s.handleCreateEvent)
	mux.HandleFunc("PUT /api/events/{id}", s.handleUpdateEvent)
	mux.HandleFunc("DELETE /api/events/{id}", s.handleDeleteEvent)
	mux.HandleFunc("DELETE /api/events/groups/{recurringId}", s.handleDeleteGroup)
	mux.HandleFunc("GET /api/events/day", s.handleEventsOnDay)

	mux.HandleFunc("GET /api/calendar/month", s.handleMonth)
	mux.HandleFunc("GET /api/calendar/week", s.handleWeek)
	mux.HandleFunc("GET /api/calendar/year", s.handleYear)

	mux.HandleFunc("GET /api/settings", s.handleGetSettings)
	mux.HandleFunc("PUT /api/settings", s.handlePutSettings)

	mux.HandleFunc("GET /api/export", s.handleExportJSON)
	mux.HandleFunc("POST /api/import", s.handleImportJSON)
	mux.HandleFunc("GET /api/export/ics", s.handleExportICS)
	mux.HandleFunc("POST /api/import/ics", s.handleImportICS)

	mux.HandleFunc("GET /api/worldclock", s.handleWorldClock)

	mux.HandleFunc("GET /api/pomodoro", s.handlePomodoroState)
	mux.HandleFunc("POST /api/pomodoro/toggle", s.handlePomodoroToggle)
	mux.HandleFunc("POST /api/pomodoro/reset", s.handlePomodoroReset)
	mux.HandleFunc("POST /api/pomodoro/mode", s.handlePomodoroMode)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	log.Printf("API listening on %s", s.httpServer.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
