package repository

import (
	"context"
	"database/sql"
	"time"

	"controlling_lights/internal/models"
)

// LightStore is the authoritative owner of all light and group records and of
// their id counters. Implementations must make every method atomic.
type LightStore interface {
	AllocateLightID() int
	AllocateGroupID() int

	GetLight(id int) (models.Light, bool)
	GetAllLights() map[int]models.Light
	PutLight(l models.Light)
	// DeleteLight removes the light and scrubs its id from every group's
	// member list, so no group ever references a missing light through this
	// path. Returns false if the id was absent.
	DeleteLight(id int) bool

	GetGroup(id int) (models.LightGroup, bool)
	GetAllGroups() map[int]models.LightGroup
	PutGroup(g models.LightGroup)
	DeleteGroup(id int) bool
}

// EventRepo is the append-only audit log.
type EventRepo interface {
	Append(ctx context.Context, e models.LightEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.LightEvent, error)
}

type Repository struct {
	Lights LightStore
	Events EventRepo
}

// NewRepository wires the in-memory light store with the SQLite audit log.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Lights: NewMemoryLightStore(),
		Events: NewEventSQLite(db),
	}
}
