package models

import "time"

// Audit event types.
const (
	EventLightOn          = "LIGHT_ON"
	EventLightOff         = "LIGHT_OFF"
	EventLightAdded       = "LIGHT_ADDED"
	EventLightDeleted     = "LIGHT_DELETED"
	EventBrightnessSet    = "BRIGHTNESS_SET"
	EventColorSet         = "COLOR_SET"
	EventGroupCreated     = "GROUP_CREATED"
	EventGroupDeleted     = "GROUP_DELETED"
	EventGroupControlled  = "GROUP_CONTROLLED"
	EventGroupMemberAdded = "GROUP_MEMBER_ADDED"
	EventActionScheduled  = "ACTION_SCHEDULED"
	EventActionFired      = "ACTION_FIRED"
)

// LightEvent is a single audit log entry.
type LightEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
