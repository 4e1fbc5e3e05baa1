package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"controlling_lights/internal/models"
	"controlling_lights/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errInvalidID       = "invalid id: must be a positive integer"
	errInvalidBodyPref = "invalid body: "
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return 0, false
	}
	return id, true
}

// respondError maps core failure kinds to HTTP codes: NotFound→404,
// InvalidArgument→400, anything else→500 (logged).
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// Request DTOs.
type brightnessRequest struct {
	Brightness *int `json:"brightness" binding:"required"` // 0..100
}

type colorRequest struct {
	Color string `json:"color" binding:"required"` // white | blue | red | green | yellow
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List lights
// @Tags         lights
// @Produce      json
// @Success      200  {object}  map[string]models.Light
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/lights [get]
// @Security     BearerAuth
func (h *Handler) listLights(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Lights.List(c.Request.Context()))
}

// @Summary      Get light
// @Tags         lights
// @Produce      json
// @Param        id  path  int  true  "Light id"
// @Success      200  {object}  models.Light
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/lights/{id} [get]
// @Security     BearerAuth
func (h *Handler) getLight(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	l, err := h.services.Lights.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "light_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, l)
}

// @Summary      Add light
// @Description  Creates a light with default state: off, brightness 0, white.
// @Tags         lights
// @Produce      json
// @Success      200  {object}  map[string]int  "id"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/lights [post]
// @Security     BearerAuth
func (h *Handler) addLight(c *gin.Context) {
	id := h.services.Lights.Add(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// @Summary      Turn light on
// @Tags         lights
// @Produce      json
// @Param        id  path  int  true  "Light id"
// @Success      200  {object}  map[string]interface{}  "status, light"
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/lights/{id}/on [post]
// @Security     BearerAuth
func (h *Handler) turnOn(c *gin.Context) {
	h.toggleLight(c, h.services.Lights.TurnOn)
}

// @Summary      Turn light off
// @Tags         lights
// @Produce      json
// @Param        id  path  int  true  "Light id"
// @Success      200  {object}  map[string]interface{}  "status, light"
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/lights/{id}/off [post]
// @Security     BearerAuth
func (h *Handler) turnOff(c *gin.Context) {
	h.toggleLight(c, h.services.Lights.TurnOff)
}

func (h *Handler) toggleLight(c *gin.Context, op func(ctx context.Context, id int) (models.Light, error)) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	l, err := op(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "light_toggle_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK, "light": l})
}

// @Summary      Set brightness
// @Tags         lights
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "Light id"
// @Param        body  body  brightnessRequest  true  "Brightness payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/lights/{id}/brightness [put]
// @Security     BearerAuth
func (h *Handler) setBrightness(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req brightnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	l, err := h.services.Lights.SetBrightness(c.Request.Context(), id, *req.Brightness)
	if err != nil {
		h.respondError(c, err, "light_set_brightness_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK, "light": l})
}

// @Summary      Set color
// @Tags         lights
// @Accept       json
// @Produce      json
// @Param        id    path  int           true  "Light id"
// @Param        body  body  colorRequest  true  "Color payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/lights/{id}/color [put]
// @Security     BearerAuth
func (h *Handler) setColor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req colorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	l, err := h.services.Lights.SetColor(c.Request.Context(), id, req.Color)
	if err != nil {
		h.respondError(c, err, "light_set_color_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK, "light": l})
}

// @Summary      Delete light
// @Description  Removes the light and purges it from every group.
// @Tags         lights
// @Produce      json
// @Param        id  path  int  true  "Light id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/lights/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteLight(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.services.Lights.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "light_delete_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}
