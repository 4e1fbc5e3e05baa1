package service

import (
	"context"
	"time"

	"controlling_lights/internal/logger"
	"controlling_lights/internal/models"
	"controlling_lights/internal/repository"
)

// Actions a light or a group can be told to perform.
const (
	ActionOn  = "on"
	ActionOff = "off"
)

type Authorization interface {
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Lights exposes validated single-light operations.
type Lights interface {
	List(ctx context.Context) map[int]models.Light
	Get(ctx context.Context, id int) (models.Light, error)
	TurnOn(ctx context.Context, id int) (models.Light, error)
	TurnOff(ctx context.Context, id int) (models.Light, error)
	SetBrightness(ctx context.Context, id, brightness int) (models.Light, error)
	SetColor(ctx context.Context, id int, color string) (models.Light, error)
	Add(ctx context.Context) int
	Delete(ctx context.Context, id int) error
}

// Groups exposes group lifecycle and bulk control.
type Groups interface {
	List(ctx context.Context) map[int]models.LightGroup
	Get(ctx context.Context, id int) (models.LightGroup, error)
	Create(ctx context.Context, name string, lightIDs []int) (int, error)
	Control(ctx context.Context, groupID int, action string) error
	AddLight(ctx context.Context, groupID, lightID int) error
	RemoveLight(ctx context.Context, groupID, lightID int) error
	DeleteLightFromSystem(ctx context.Context, lightID int) error
	Delete(ctx context.Context, groupID int) error
}

// Scheduler arms one-shot deferred on/off actions against a light.
type Scheduler interface {
	Schedule(ctx context.Context, lightID int, at, action string) (time.Time, error)
}

// EventLog exposes the append-only audit log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.LightEvent, error)
}

// Persistence is the save/load surface. Both calls are acknowledged no-ops:
// light and group state is memory-only and rebuilt from defaults on start.
type Persistence interface {
	Save(ctx context.Context) error
	Load(ctx context.Context) error
}

// LogFilter supports audit history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "" means any event type
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Lights
	Groups
	Scheduler
	EventLog
	Persistence
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, auth AuthConfig, log *logger.Logger) *Service {
	lights := NewLightService(repos.Lights, repos.Events, log)
	return &Service{
		Lights:        lights,
		Groups:        NewGroupService(repos.Lights, repos.Events, lights, log),
		Scheduler:     NewSchedulerService(lights, repos.Events, log),
		EventLog:      NewEventLogService(repos.Events),
		Persistence:   NewPersistenceService(log),
		Authorization: NewAuthService(auth),
	}
}
