package service

import (
	"context"
	"testing"
	"time"

	"controlling_lights/internal/models"
)

// capturingEventRepo records the filter arguments List receives.
type capturingEventRepo struct {
	gotFrom time.Time
	gotTo   time.Time
	gotType string
	events  []models.LightEvent
	err     error
	calls   int
}

func (f *capturingEventRepo) Append(ctx context.Context, e models.LightEvent) error { return nil }

func (f *capturingEventRepo) List(ctx context.Context, from, to time.Time, typ string) ([]models.LightEvent, error) {
	f.calls++
	f.gotFrom = from
	f.gotTo = to
	f.gotType = typ
	return f.events, f.err
}

func TestEventLogService_List_NormalizesFilter(t *testing.T) {
	repo := &capturingEventRepo{events: []models.LightEvent{{EventID: "ev-1"}}}
	svc := NewEventLogService(repo)

	offset := time.FixedZone("UTC+3", 3*60*60)
	from := time.Date(2025, 8, 1, 10, 0, 0, 0, offset)
	to := time.Date(2025, 8, 2, 10, 0, 0, 0, offset)

	events, err := svc.List(context.Background(), LogFilter{From: from, To: to, Type: " light_on "})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 1 || events[0].EventID != "ev-1" {
		t.Fatalf("unexpected events: %+v", events)
	}
	if repo.gotFrom.Location() != time.UTC || repo.gotTo.Location() != time.UTC {
		t.Fatalf("times not normalized to UTC")
	}
	if !repo.gotFrom.Equal(from) {
		t.Fatalf("from changed instant: %v vs %v", repo.gotFrom, from)
	}
	if repo.gotType != "LIGHT_ON" {
		t.Fatalf("type = %q, want LIGHT_ON", repo.gotType)
	}
}

func TestEventLogService_List_ZeroBoundsPassThrough(t *testing.T) {
	repo := &capturingEventRepo{}
	svc := NewEventLogService(repo)

	if _, err := svc.List(context.Background(), LogFilter{}); err != nil {
		t.Fatalf("List: %v", err)
	}
	if !repo.gotFrom.IsZero() || !repo.gotTo.IsZero() || repo.gotType != "" {
		t.Fatalf("zero filter mangled: %+v", repo)
	}
}

func TestEventLogService_List_InvalidRange(t *testing.T) {
	repo := &capturingEventRepo{}
	svc := NewEventLogService(repo)

	from := time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.List(context.Background(), LogFilter{From: from, To: to}); err == nil {
		t.Fatalf("expected error for inverted range")
	}
	if repo.calls != 0 {
		t.Fatalf("repo called despite invalid filter")
	}
}
