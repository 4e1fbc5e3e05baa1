package service

import (
	"context"
	"fmt"

	"controlling_lights/internal/logger"
	"controlling_lights/internal/models"
	"controlling_lights/internal/repository"
)

// LightService implements single-light operations on top of the store.
type LightService struct {
	store  repository.LightStore
	events repository.EventRepo
	log    *logger.Logger
}

func NewLightService(store repository.LightStore, events repository.EventRepo, log *logger.Logger) *LightService {
	return &LightService{store: store, events: events, log: log}
}

// emit appends an audit event. Audit failures never fail the operation that
// triggered them; they are logged and dropped.
func (s *LightService) emit(ctx context.Context, typ, description string, meta any) {
	err := s.events.Append(ctx, models.LightEvent{
		Type:        typ,
		Description: description,
		Metadata:    meta,
	})
	if err != nil && s.log != nil {
		s.log.Warnw("audit_append_failed", "type", typ, "err", err)
	}
}

// List returns a snapshot of all lights keyed by id.
func (s *LightService) List(ctx context.Context) map[int]models.Light {
	return s.store.GetAllLights()
}

func (s *LightService) Get(ctx context.Context, id int) (models.Light, error) {
	l, ok := s.store.GetLight(id)
	if !ok {
		return models.Light{}, lightNotFound(id)
	}
	return l, nil
}

// TurnOn sets the light's status to on.
func (s *LightService) TurnOn(ctx context.Context, id int) (models.Light, error) {
	return s.setStatus(ctx, id, models.StatusOn)
}

// TurnOff sets the light's status to off.
func (s *LightService) TurnOff(ctx context.Context, id int) (models.Light, error) {
	return s.setStatus(ctx, id, models.StatusOff)
}

func (s *LightService) setStatus(ctx context.Context, id int, status string) (models.Light, error) {
	l, ok := s.store.GetLight(id)
	if !ok {
		return models.Light{}, lightNotFound(id)
	}
	l.Status = status
	s.store.PutLight(l)

	if s.log != nil {
		s.log.Infow("light_status_changed", "id", id, "status", status)
	}
	typ := models.EventLightOn
	if status == models.StatusOff {
		typ = models.EventLightOff
	}
	s.emit(ctx, typ, fmt.Sprintf("light %d turned %s", id, status), nil)
	return l, nil
}

// SetBrightness sets the light's brightness after range-checking the value.
func (s *LightService) SetBrightness(ctx context.Context, id, brightness int) (models.Light, error) {
	if brightness < models.BrightnessMin || brightness > models.BrightnessMax {
		return models.Light{}, fmt.Errorf("brightness %d outside [%d,%d]: %w",
			brightness, models.BrightnessMin, models.BrightnessMax, ErrInvalidArgument)
	}
	l, ok := s.store.GetLight(id)
	if !ok {
		return models.Light{}, lightNotFound(id)
	}
	l.Brightness = brightness
	s.store.PutLight(l)

	s.emit(ctx, models.EventBrightnessSet,
		fmt.Sprintf("light %d brightness set to %d", id, brightness),
		map[string]any{"brightness": brightness})
	return l, nil
}

// SetColor sets the light's color. The color is validated at the HTTP
// boundary too, but re-checked here so the enum holds regardless of caller.
func (s *LightService) SetColor(ctx context.Context, id int, color string) (models.Light, error) {
	if !models.ValidColor(color) {
		return models.Light{}, fmt.Errorf("unknown color %q: %w", color, ErrInvalidArgument)
	}
	l, ok := s.store.GetLight(id)
	if !ok {
		return models.Light{}, lightNotFound(id)
	}
	l.Color = color
	s.store.PutLight(l)

	s.emit(ctx, models.EventColorSet,
		fmt.Sprintf("light %d color set to %s", id, color),
		map[string]any{"color": color})
	return l, nil
}

// Add allocates a fresh id and inserts a light with default state.
// It never fails.
func (s *LightService) Add(ctx context.Context) int {
	id := s.store.AllocateLightID()
	s.store.PutLight(models.NewLight(id))

	if s.log != nil {
		s.log.Infow("light_added", "id", id)
	}
	s.emit(ctx, models.EventLightAdded, fmt.Sprintf("light %d added", id), nil)
	return id
}

// Delete removes the light; the store scrubs its id from every group.
func (s *LightService) Delete(ctx context.Context, id int) error {
	if !s.store.DeleteLight(id) {
		return lightNotFound(id)
	}
	if s.log != nil {
		s.log.Infow("light_deleted", "id", id)
	}
	s.emit(ctx, models.EventLightDeleted, fmt.Sprintf("light %d deleted", id), nil)
	return nil
}
