package service

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// PomodoroMode is the current phase of the focus timer.
type PomodoroMode string

const (
	ModeWork       PomodoroMode = "work"
	ModeShortBreak PomodoroMode = "shortBreak"
	ModeLongBreak  PomodoroMode = "longBreak"
)

// Phase lengths in seconds. Every fourth completed work session earns the
// long break.
const (
	workSeconds       = 25 * 60
	shortBreakSeconds = 5 * 60
	longBreakSeconds  = 15 * 60

	sessionsPerLongBreak = 4
)

// Notifier delivers user-facing notifications; the scheduler shares it.
type Notifier interface {
	Notify(title, body string) error
}

// PomodoroState is a read-only snapshot for the timer page.
type PomodoroState struct {
	Mode              PomodoroMode `json:"mode"`
	SecondsLeft       int          `json:"secondsLeft"`
	Display           string       `json:"display"`
	Running           bool         `json:"running"`
	SessionsCompleted int          `json:"sessionsCompleted"`
	Progress          float64      `json:"progress"`
}

// PomodoroService runs the work/break cycle. Run owns the one-second tick;
// everything else just flips state under the lock.
type PomodoroService struct {
	mu        sync.Mutex
	mode      PomodoroMode
	remaining int
	running   bool
	sessions  int
	notifier  Notifier
}

func NewPomodoroService(notifier Notifier) *PomodoroService {
	return &PomodoroService{
		mode:      ModeWork,
		remaining: workSeconds,
		notifier:  notifier,
	}
}

// Run ticks the timer once per second until the context ends.
func (s *PomodoroService) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick advances a running timer by one second, rolling over to the next
// phase on completion. Returns true when a phase just completed.
func (s *PomodoroService) Tick() bool {
	s.mu.Lock()
	if !s.running || s.remaining <= 0 {
		s.mu.Unlock()
		return false
	}
	s.remaining--
	if s.remaining > 0 {
		s.mu.Unlock()
		return false
	}

	// Phase complete: stop, advance the cycle.
	s.running = false
	completed := s.mode
	if s.mode == ModeWork {
		s.sessions++
		if s.sessions%sessionsPerLongBreak == 0 {
			s.mode = ModeLongBreak
		} else {
			s.mode = ModeShortBreak
		}
	} else {
		s.mode = ModeWork
	}
	s.remaining = phaseSeconds(s.mode)
	notifier := s.notifier
	s.mu.Unlock()

	if notifier != nil {
		body := "Break completed! Ready to work?"
		if completed == ModeWork {
			body = "Work session completed! Time for a break."
		}
		if err := notifier.Notify("Pomodoro Timer", body); err != nil {
			// Notification delivery is best effort.
			_ = err
		}
	}
	return true
}

// Toggle starts or pauses the timer.
func (s *PomodoroService) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = !s.running
}

// Reset stops the timer and restores the full length of the current mode.
func (s *PomodoroService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.remaining = phaseSeconds(s.mode)
}

// SwitchMode stops the timer and jumps to the given phase.
func (s *PomodoroService) SwitchMode(mode PomodoroMode) error {
	switch mode {
	case ModeWork, ModeShortBreak, ModeLongBreak:
	default:
		return fmt.Errorf("unknown pomodoro mode %q", mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.mode = mode
	s.remaining = phaseSeconds(mode)
	return nil
}

// State returns a snapshot for display.
func (s *PomodoroService) State() PomodoroState {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := phaseSeconds(s.mode)
	return PomodoroState{
		Mode:              s.mode,
		SecondsLeft:       s.remaining,
		Display:           fmt.Sprintf("%02d:%02d", s.remaining/60, s.remaining%60),
		Running:           s.running,
		SessionsCompleted: s.sessions,
		Progress:          float64(total-s.remaining) / float64(total) * 100,
	}
}

func phaseSeconds(mode PomodoroMode) int {
	switch mode {
	case ModeShortBreak:
		return shortBreakSeconds
	case ModeLongBreak:
		return longBreakSeconds
	default:
		return workSeconds
	}
}
