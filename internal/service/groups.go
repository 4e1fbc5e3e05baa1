package service

import (
	"context"
	"fmt"
	"strings"

	"controlling_lights/internal/logger"
	"controlling_lights/internal/models"
	"controlling_lights/internal/repository"
)

// GroupService implements group lifecycle and bulk control, composing the
// light service for per-member actions.
type GroupService struct {
	store  repository.LightStore
	events repository.EventRepo
	lights Lights
	log    *logger.Logger
}

func NewGroupService(store repository.LightStore, events repository.EventRepo, lights Lights, log *logger.Logger) *GroupService {
	return &GroupService{store: store, events: events, lights: lights, log: log}
}

func (s *GroupService) emit(ctx context.Context, typ, description string, meta any) {
	err := s.events.Append(ctx, models.LightEvent{
		Type:        typ,
		Description: description,
		Metadata:    meta,
	})
	if err != nil && s.log != nil {
		s.log.Warnw("audit_append_failed", "type", typ, "err", err)
	}
}

// List returns a snapshot of all groups keyed by id.
func (s *GroupService) List(ctx context.Context) map[int]models.LightGroup {
	return s.store.GetAllGroups()
}

func (s *GroupService) Get(ctx context.Context, id int) (models.LightGroup, error) {
	g, ok := s.store.GetGroup(id)
	if !ok {
		return models.LightGroup{}, groupNotFound(id)
	}
	return g, nil
}

// Create makes a new group from the given member lights. All members must
// exist before anything is mutated: on failure no group is created and the
// group id counter is not advanced. Duplicate ids in the request collapse
// into a single membership, insertion order kept.
func (s *GroupService) Create(ctx context.Context, name string, lightIDs []int) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("group name is empty: %w", ErrInvalidArgument)
	}
	for _, id := range lightIDs {
		if _, ok := s.store.GetLight(id); !ok {
			return 0, fmt.Errorf("member light %d does not exist: %w", id, ErrInvalidArgument)
		}
	}

	g := models.LightGroup{ID: s.store.AllocateGroupID(), Name: name}
	for _, id := range lightIDs {
		g.AddLight(id)
	}
	s.store.PutGroup(g)

	if s.log != nil {
		s.log.Infow("group_created", "id", g.ID, "name", name, "members", len(g.LightIDs))
	}
	s.emit(ctx, models.EventGroupCreated,
		fmt.Sprintf("group %d (%s) created", g.ID, name),
		map[string]any{"light_ids": g.LightIDs})
	return g.ID, nil
}

// Control applies the action to every member light in list order, fail-fast:
// the first missing member aborts the sweep and surfaces NotFound, and
// already-toggled lights keep their new state (no rollback).
func (s *GroupService) Control(ctx context.Context, groupID int, action string) error {
	apply, err := s.applyFunc(action)
	if err != nil {
		return err
	}
	g, ok := s.store.GetGroup(groupID)
	if !ok {
		return groupNotFound(groupID)
	}
	for _, id := range g.LightIDs {
		if _, err := apply(ctx, id); err != nil {
			return err
		}
	}

	s.emit(ctx, models.EventGroupControlled,
		fmt.Sprintf("group %d turned %s", groupID, action),
		map[string]any{"action": action, "light_ids": g.LightIDs})
	return nil
}

// applyFunc maps an action string to the light operation performing it.
func (s *GroupService) applyFunc(action string) (func(context.Context, int) (models.Light, error), error) {
	switch action {
	case ActionOn:
		return s.lights.TurnOn, nil
	case ActionOff:
		return s.lights.TurnOff, nil
	default:
		return nil, fmt.Errorf("unknown action %q: %w", action, ErrInvalidArgument)
	}
}

// AddLight appends the light to the group. Adding an existing member is a
// no-op success.
func (s *GroupService) AddLight(ctx context.Context, groupID, lightID int) error {
	g, ok := s.store.GetGroup(groupID)
	if !ok {
		return groupNotFound(groupID)
	}
	if _, ok := s.store.GetLight(lightID); !ok {
		return lightNotFound(lightID)
	}
	if g.HasLight(lightID) {
		return nil
	}
	g.AddLight(lightID)
	s.store.PutGroup(g)

	s.emit(ctx, models.EventGroupMemberAdded,
		fmt.Sprintf("light %d added to group %d", lightID, groupID), nil)
	return nil
}

// RemoveLight drops the light from the group's member list only. Removing a
// non-member is a no-op success.
func (s *GroupService) RemoveLight(ctx context.Context, groupID, lightID int) error {
	g, ok := s.store.GetGroup(groupID)
	if !ok {
		return groupNotFound(groupID)
	}
	if !g.HasLight(lightID) {
		return nil
	}
	g.RemoveLight(lightID)
	s.store.PutGroup(g)
	return nil
}

// DeleteLightFromSystem removes the light from every group and from the
// store. This is the operation the removal-from-group endpoint is wired to.
func (s *GroupService) DeleteLightFromSystem(ctx context.Context, lightID int) error {
	return s.lights.Delete(ctx, lightID)
}

// Delete removes the group record. Member lights are untouched.
func (s *GroupService) Delete(ctx context.Context, groupID int) error {
	if !s.store.DeleteGroup(groupID) {
		return groupNotFound(groupID)
	}
	if s.log != nil {
		s.log.Infow("group_deleted", "id", groupID)
	}
	s.emit(ctx, models.EventGroupDeleted, fmt.Sprintf("group %d deleted", groupID), nil)
	return nil
}
