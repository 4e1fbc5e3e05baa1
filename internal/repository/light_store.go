package repository

import (
	"sync"

	"controlling_lights/internal/models"
)

// Seed ids present in a fresh store. The light counter starts above them so
// allocated ids never collide with the seeds.
const (
	seedLightCount = 2
	firstGroupID   = 1
)

// MemoryLightStore keeps all lights and groups in process memory, guarded by
// a single mutex so each operation is atomic. Ids come from two independent,
// strictly increasing counters and are never reused, even after deletion.
type MemoryLightStore struct {
	mu          sync.Mutex
	lights      map[int]models.Light
	groups      map[int]models.LightGroup
	nextLightID int
	nextGroupID int
}

// Ensure interface compliance at compile time.
var _ LightStore = (*MemoryLightStore)(nil)

// NewMemoryLightStore returns a store seeded with two default lights
// (ids 1 and 2, both off, brightness 0, white).
func NewMemoryLightStore() *MemoryLightStore {
	s := &MemoryLightStore{
		lights:      make(map[int]models.Light),
		groups:      make(map[int]models.LightGroup),
		nextLightID: seedLightCount + 1,
		nextGroupID: firstGroupID,
	}
	for id := 1; id <= seedLightCount; id++ {
		s.lights[id] = models.NewLight(id)
	}
	return s
}

// AllocateLightID returns the next unused light id and advances the counter.
func (s *MemoryLightStore) AllocateLightID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextLightID
	s.nextLightID++
	return id
}

// AllocateGroupID returns the next unused group id and advances the counter.
func (s *MemoryLightStore) AllocateGroupID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextGroupID
	s.nextGroupID++
	return id
}

func (s *MemoryLightStore) GetLight(id int) (models.Light, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.lights[id]
	return l, ok
}

// GetAllLights returns a snapshot of all lights at the time of the call.
func (s *MemoryLightStore) GetAllLights() map[int]models.Light {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]models.Light, len(s.lights))
	for id, l := range s.lights {
		out[id] = l
	}
	return out
}

func (s *MemoryLightStore) PutLight(l models.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights[l.ID] = l
}

// DeleteLight removes the light and purges its id from every group's member
// list. The purge happens under the same lock as the delete, so no reader
// can observe a group referencing a missing light through this path.
func (s *MemoryLightStore) DeleteLight(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lights[id]; !ok {
		return false
	}
	delete(s.lights, id)
	for gid, g := range s.groups {
		g.RemoveLight(id)
		s.groups[gid] = g
	}
	return true
}

func (s *MemoryLightStore) GetGroup(id int) (models.LightGroup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[id]
	if !ok {
		return models.LightGroup{}, false
	}
	return copyGroup(g), true
}

// GetAllGroups returns a snapshot of all groups at the time of the call.
func (s *MemoryLightStore) GetAllGroups() map[int]models.LightGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]models.LightGroup, len(s.groups))
	for id, g := range s.groups {
		out[id] = copyGroup(g)
	}
	return out
}

func (s *MemoryLightStore) PutGroup(g models.LightGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[g.ID] = copyGroup(g)
}

func (s *MemoryLightStore) DeleteGroup(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.groups[id]; !ok {
		return false
	}
	delete(s.groups, id)
	return true
}

// copyGroup deep-copies the member slice so callers cannot mutate stored
// state through a returned group.
func copyGroup(g models.LightGroup) models.LightGroup {
	out := g
	out.LightIDs = append([]int(nil), g.LightIDs...)
	return out
}
