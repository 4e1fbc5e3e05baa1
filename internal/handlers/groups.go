package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Request DTOs.
type createGroupRequest struct {
	Name     string `json:"name" binding:"required"`
	LightIDs []int  `json:"light_ids"`
}

type controlGroupRequest struct {
	Action string `json:"action" binding:"required"` // on | off
}

type addGroupLightRequest struct {
	LightID int `json:"light_id" binding:"required"`
}

// @Summary      List groups
// @Tags         groups
// @Produce      json
// @Success      200  {object}  map[string]models.LightGroup
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/groups [get]
// @Security     BearerAuth
func (h *Handler) listGroups(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Groups.List(c.Request.Context()))
}

// @Summary      Get group
// @Tags         groups
// @Produce      json
// @Param        id  path  int  true  "Group id"
// @Success      200  {object}  models.LightGroup
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/groups/{id} [get]
// @Security     BearerAuth
func (h *Handler) getGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	g, err := h.services.Groups.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "group_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, g)
}

// @Summary      Create group
// @Description  All member lights must exist; creation is all-or-nothing.
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        body  body  createGroupRequest  true  "Group payload"
// @Success      200   {object}  map[string]int  "id"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/groups [post]
// @Security     BearerAuth
func (h *Handler) createGroup(c *gin.Context) {
	var req createGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	id, err := h.services.Groups.Create(c.Request.Context(), req.Name, req.LightIDs)
	if err != nil {
		h.respondError(c, err, "group_create_failed", "name", req.Name)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// @Summary      Control group
// @Description  Applies on/off to every member in list order, fail-fast on a missing member.
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "Group id"
// @Param        body  body  controlGroupRequest  true  "Action payload"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/groups/{id}/control [post]
// @Security     BearerAuth
func (h *Handler) controlGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req controlGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Groups.Control(c.Request.Context(), id, req.Action); err != nil {
		h.respondError(c, err, "group_control_failed", "id", id, "action", req.Action)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK, "action": req.Action})
}

// @Summary      Add light to group
// @Description  Adding an existing member is a no-op success.
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "Group id"
// @Param        body  body  addGroupLightRequest  true  "Member payload"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/groups/{id}/lights [post]
// @Security     BearerAuth
func (h *Handler) addLightToGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req addGroupLightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if err := h.services.Groups.AddLight(c.Request.Context(), id, req.LightID); err != nil {
		h.respondError(c, err, "group_add_light_failed", "id", id, "light_id", req.LightID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Remove light from group
// @Description  Deletes the light from the whole system: it is purged from every group and removed from the store.
// @Tags         groups
// @Produce      json
// @Param        id       path  int  true  "Group id"
// @Param        lightId  path  int  true  "Light id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/groups/{id}/lights/{lightId} [delete]
// @Security     BearerAuth
func (h *Handler) removeLightFromGroup(c *gin.Context) {
	if _, ok := parseIDParam(c, "id"); !ok {
		return
	}
	lightID, ok := parseIDParam(c, "lightId")
	if !ok {
		return
	}
	// Wired to the system-wide delete on purpose; see DESIGN.md.
	if err := h.services.Groups.DeleteLightFromSystem(c.Request.Context(), lightID); err != nil {
		h.respondError(c, err, "group_remove_light_failed", "light_id", lightID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Delete group
// @Description  Member lights are untouched.
// @Tags         groups
// @Produce      json
// @Param        id  path  int  true  "Group id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/groups/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.services.Groups.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "group_delete_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}
