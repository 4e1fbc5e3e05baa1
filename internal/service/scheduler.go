package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"controlling_lights/internal/logger"
	"controlling_lights/internal/models"
	"controlling_lights/internal/repository"
)

// Accepted fire-time layouts. Naive timestamps are treated as UTC.
const (
	layoutDateTime = "2006-01-02 15:04:05"
)

// SchedulerService arms one-shot timers that re-enter the light service when
// they elapse. Pending timers are not persisted and cannot be cancelled;
// whatever has not fired when the process stops is lost.
type SchedulerService struct {
	lights Lights
	events repository.EventRepo
	log    *logger.Logger
	now    func() time.Time
	after  func(time.Duration, func()) // swappable for tests
}

func NewSchedulerService(lights Lights, events repository.EventRepo, log *logger.Logger) *SchedulerService {
	return &SchedulerService{
		lights: lights,
		events: events,
		log:    log,
		now:    time.Now,
		after:  func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// parseFireTime accepts RFC3339 or "YYYY-MM-DD HH:MM:SS".
func parseFireTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutDateTime, s, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable time %q (use RFC3339 or %q): %w", s, layoutDateTime, ErrInvalidArgument)
}

// Schedule validates the request and arms the timer. The referenced light
// must exist now; if it is gone when the timer fires, the action is dropped
// silently since no caller remains to receive the error.
func (s *SchedulerService) Schedule(ctx context.Context, lightID int, at, action string) (time.Time, error) {
	if action != ActionOn && action != ActionOff {
		return time.Time{}, fmt.Errorf("unknown action %q: %w", action, ErrInvalidArgument)
	}
	fireAt, err := parseFireTime(at)
	if err != nil {
		return time.Time{}, err
	}
	if _, err := s.lights.Get(ctx, lightID); err != nil {
		return time.Time{}, err
	}
	delay := fireAt.Sub(s.now())
	if delay < 0 {
		return time.Time{}, fmt.Errorf("fire time %s is in the past: %w", at, ErrInvalidArgument)
	}

	s.after(delay, func() { s.fire(lightID, action) })

	if s.log != nil {
		s.log.Infow("action_scheduled", "light_id", lightID, "action", action, "fire_at", fireAt, "delay", delay)
	}
	s.emit(ctx, models.EventActionScheduled,
		fmt.Sprintf("light %d scheduled to turn %s at %s", lightID, action, fireAt.UTC().Format(time.RFC3339)),
		map[string]any{"light_id": lightID, "action": action})
	return fireAt, nil
}

// fire runs on the timer goroutine with no request left to answer, so it
// carries its own context and swallows NotFound for lights deleted in the
// interim.
func (s *SchedulerService) fire(lightID int, action string) {
	ctx := context.Background()

	var err error
	switch action {
	case ActionOn:
		_, err = s.lights.TurnOn(ctx, lightID)
	case ActionOff:
		_, err = s.lights.TurnOff(ctx, lightID)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			if s.log != nil {
				s.log.Debugw("scheduled_action_abandoned", "light_id", lightID, "action", action)
			}
			return
		}
		if s.log != nil {
			s.log.Errorw("scheduled_action_failed", "light_id", lightID, "action", action, "err", err)
		}
		return
	}
	s.emit(ctx, models.EventActionFired,
		fmt.Sprintf("scheduled action fired: light %d turned %s", lightID, action),
		map[string]any{"light_id": lightID, "action": action})
}

func (s *SchedulerService) emit(ctx context.Context, typ, description string, meta any) {
	err := s.events.Append(ctx, models.LightEvent{
		Type:        typ,
		Description: description,
		Metadata:    meta,
	})
	if err != nil && s.log != nil {
		s.log.Warnw("audit_append_failed", "type", typ, "err", err)
	}
}
