package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const statusScheduled = "scheduled"

// Request DTO for scheduling a deferred action.
type scheduleRequest struct {
	LightID int    `json:"light_id" binding:"required"`
	At      string `json:"at" binding:"required"`     // RFC3339 or "YYYY-MM-DD HH:MM:SS"
	Action  string `json:"action" binding:"required"` // on | off
}

// @Summary      Schedule on/off action
// @Description  Arms a one-shot timer; fire times in the past are rejected. Pending timers are lost on restart.
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body  scheduleRequest  true  "Schedule payload"
// @Success      200   {object}  map[string]interface{}  "status, fire_at"
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/schedule [post]
// @Security     BearerAuth
func (h *Handler) scheduleAction(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	fireAt, err := h.services.Scheduler.Schedule(c.Request.Context(), req.LightID, req.At, req.Action)
	if err != nil {
		h.respondError(c, err, "schedule_failed", "light_id", req.LightID, "at", req.At)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  statusScheduled,
		"fire_at": fireAt.UTC().Format(time.RFC3339),
	})
}

// @Summary      Save state
// @Description  Acknowledged no-op; light state is memory-only.
// @Tags         state
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/state/save [post]
// @Security     BearerAuth
func (h *Handler) saveState(c *gin.Context) {
	if err := h.services.Persistence.Save(c.Request.Context()); err != nil {
		h.respondError(c, err, "state_save_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Load state
// @Description  Acknowledged no-op; light state is memory-only.
// @Tags         state
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/state/load [post]
// @Security     BearerAuth
func (h *Handler) loadState(c *gin.Context) {
	if err := h.services.Persistence.Load(c.Request.Context()); err != nil {
		h.respondError(c, err, "state_load_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}
