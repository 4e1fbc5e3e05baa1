package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"controlling_lights/internal/models"
	"controlling_lights/internal/repository"
)

// recordingEventRepo is an in-memory EventRepo shared by the service tests.
type recordingEventRepo struct {
	appendErr error
	events    []models.LightEvent
}

func (f *recordingEventRepo) Append(ctx context.Context, e models.LightEvent) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events = append(f.events, e)
	return nil
}

func (f *recordingEventRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.LightEvent, error) {
	var out []models.LightEvent
	for _, e := range f.events {
		if typ == "" || e.Type == typ {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *recordingEventRepo) lastType(t *testing.T) string {
	t.Helper()
	if len(f.events) == 0 {
		t.Fatalf("expected at least one audit event")
	}
	return f.events[len(f.events)-1].Type
}

func newLightsFixture() (*LightService, *repository.MemoryLightStore, *recordingEventRepo) {
	store := repository.NewMemoryLightStore()
	events := &recordingEventRepo{}
	return NewLightService(store, events, nil), store, events
}

func TestLightService_TurnOnOff(t *testing.T) {
	svc, store, events := newLightsFixture()
	ctx := context.Background()

	l, err := svc.TurnOn(ctx, 1)
	if err != nil {
		t.Fatalf("TurnOn: %v", err)
	}
	if l.Status != models.StatusOn {
		t.Fatalf("returned light status = %q, want on", l.Status)
	}
	if got, _ := store.GetLight(1); got.Status != models.StatusOn {
		t.Fatalf("stored light status = %q, want on", got.Status)
	}
	if events.lastType(t) != models.EventLightOn {
		t.Fatalf("expected LIGHT_ON audit event, got %s", events.lastType(t))
	}

	if _, err := svc.TurnOff(ctx, 1); err != nil {
		t.Fatalf("TurnOff: %v", err)
	}
	if got, _ := store.GetLight(1); got.Status != models.StatusOff {
		t.Fatalf("stored light status = %q, want off", got.Status)
	}
}

func TestLightService_TurnOn_NotFound(t *testing.T) {
	svc, _, _ := newLightsFixture()
	_, err := svc.TurnOn(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLightService_SetBrightness(t *testing.T) {
	svc, store, _ := newLightsFixture()
	ctx := context.Background()

	for _, b := range []int{0, 50, 100} {
		if _, err := svc.SetBrightness(ctx, 1, b); err != nil {
			t.Fatalf("SetBrightness(%d): %v", b, err)
		}
		if got, _ := store.GetLight(1); got.Brightness != b {
			t.Fatalf("brightness = %d, want %d", got.Brightness, b)
		}
	}

	for _, b := range []int{-1, 101, 1000} {
		_, err := svc.SetBrightness(ctx, 1, b)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("SetBrightness(%d): expected ErrInvalidArgument, got %v", b, err)
		}
		// state must be unchanged by the rejected call
		if got, _ := store.GetLight(1); got.Brightness != 100 {
			t.Fatalf("brightness changed by rejected call: %d", got.Brightness)
		}
	}

	if _, err := svc.SetBrightness(ctx, 99, 50); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent light, got %v", err)
	}
}

func TestLightService_SetColor(t *testing.T) {
	svc, store, _ := newLightsFixture()
	ctx := context.Background()

	if _, err := svc.SetColor(ctx, 2, models.ColorBlue); err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	if got, _ := store.GetLight(2); got.Color != models.ColorBlue {
		t.Fatalf("color = %q, want blue", got.Color)
	}

	if _, err := svc.SetColor(ctx, 2, "magenta"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for unknown color")
	}
	if _, err := svc.SetColor(ctx, 99, models.ColorRed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent light")
	}
}

func TestLightService_Add_ReturnsFreshIDsWithDefaults(t *testing.T) {
	svc, store, events := newLightsFixture()
	ctx := context.Background()

	id := svc.Add(ctx)
	if id != 3 {
		t.Fatalf("first added id = %d, want 3", id)
	}
	l, ok := store.GetLight(id)
	if !ok {
		t.Fatalf("added light missing from store")
	}
	if l.Status != models.StatusOff || l.Brightness != 0 || l.Color != models.ColorWhite {
		t.Fatalf("added light not in default state: %+v", l)
	}
	if next := svc.Add(ctx); next != 4 {
		t.Fatalf("second added id = %d, want 4", next)
	}
	if events.lastType(t) != models.EventLightAdded {
		t.Fatalf("expected LIGHT_ADDED audit event")
	}
}

func TestLightService_Delete(t *testing.T) {
	svc, store, events := newLightsFixture()
	ctx := context.Background()

	store.PutGroup(models.LightGroup{ID: 1, Name: "Room", LightIDs: []int{1, 2}})

	if err := svc.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete")
	}
	g, _ := store.GetGroup(1)
	if len(g.LightIDs) != 1 || g.LightIDs[0] != 1 {
		t.Fatalf("group not scrubbed: %v", g.LightIDs)
	}
	if events.lastType(t) != models.EventLightDeleted {
		t.Fatalf("expected LIGHT_DELETED audit event")
	}

	if err := svc.Delete(ctx, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for repeated delete")
	}
}

func TestLightService_AuditFailureDoesNotFailOperation(t *testing.T) {
	store := repository.NewMemoryLightStore()
	events := &recordingEventRepo{appendErr: errors.New("db down")}
	svc := NewLightService(store, events, nil)

	if _, err := svc.TurnOn(context.Background(), 1); err != nil {
		t.Fatalf("TurnOn should not surface audit errors, got %v", err)
	}
	if got, _ := store.GetLight(1); got.Status != models.StatusOn {
		t.Fatalf("light not toggled")
	}
}
