package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"controlling_lights/internal/models"
	"controlling_lights/internal/service"
)

func TestLightHandlers_ListGetToggle(t *testing.T) {
	auth := &mockAuth{parseUser: "admin"}
	lights := &mockLights{
		lights: map[int]models.Light{
			1: {ID: 1, Status: "off", Color: "white"},
			2: {ID: 2, Status: "on", Brightness: 80, Color: "blue"},
		},
		light: models.Light{ID: 1, Status: "on", Color: "white"},
	}
	s := &service.Service{Authorization: auth, Lights: lights}
	r := newTestRouter(s)

	// List requires auth → 401 without header
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/lights", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}

	// With auth → 200 and lights map
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/lights", nil)
	applyHeader(req, authHeader("valid"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d, body=%s", w.Code, w.Body.String())
	}
	var listed map[int]models.Light
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(listed) != 2 || listed[2].Brightness != 80 {
		t.Fatalf("unexpected list: %+v", listed)
	}

	// GET one light
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/lights/1", nil)
	applyHeader(req, authHeader("valid"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d, body=%s", w.Code, w.Body.String())
	}

	// POST /:id/on → 200 and TurnOn called with the id
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/lights/1/on", nil)
	applyHeader(req, authHeader("valid"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("on status=%d, body=%s", w.Code, w.Body.String())
	}
	if len(lights.turnOnCalls) != 1 || lights.turnOnCalls[0] != 1 {
		t.Fatalf("TurnOn calls = %v", lights.turnOnCalls)
	}
	var resp struct {
		Status string       `json:"status"`
		Light  models.Light `json:"light"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Status != statusOK || resp.Light.Status != "on" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	// POST /:id/off
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/lights/2/off", nil)
	applyHeader(req, authHeader("valid"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("off status=%d", w.Code)
	}
	if len(lights.turnOffCalls) != 1 || lights.turnOffCalls[0] != 2 {
		t.Fatalf("TurnOff calls = %v", lights.turnOffCalls)
	}
}

func TestLightHandlers_ErrorMapping(t *testing.T) {
	auth := &mockAuth{parseUser: "admin"}
	lights := &mockLights{err: fmt.Errorf("light 99: %w", service.ErrNotFound)}
	s := &service.Service{Authorization: auth, Lights: lights}
	r := newTestRouter(s)

	// Service NotFound → 404
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lights/99/on", nil)
	applyHeader(req, authHeader("valid"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}

	// Service InvalidArgument → 400
	lights.err = fmt.Errorf("brightness 200 outside [0,100]: %w", service.ErrInvalidArgument)
	w = httptest.NewRecorder()
	body := bytes.NewBufferString(`{"brightness":200}`)
	req = httptest.NewRequest(http.MethodPut, "/api/v1/lights/1/brightness", body)
	req.Header.Set("Content-Type", "application/json")
	applyHeader(req, authHeader("valid"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}

	// Malformed id → 400 without touching the service
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/lights/abc/on", nil)
	applyHeader(req, authHeader("valid"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}
}

func TestLightHandlers_AddAndDelete(t *testing.T) {
	auth := &mockAuth{parseUser: "admin"}
	lights := &mockLights{addID: 3}
	s := &service.Service{Authorization: auth, Lights: lights}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lights", nil)
	applyHeader(req, authHeader("valid"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("add status=%d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		ID int `json:"id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.ID != 3 || lights.addCalls != 1 {
		t.Fatalf("add: id=%d calls=%d", resp.ID, lights.addCalls)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/lights/3", nil)
	applyHeader(req, authHeader("valid"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status=%d", w.Code)
	}
	if len(lights.deleteCalls) != 1 || lights.deleteCalls[0] != 3 {
		t.Fatalf("Delete calls = %v", lights.deleteCalls)
	}
}

func TestLightHandlers_SetBrightnessAndColor(t *testing.T) {
	auth := &mockAuth{parseUser: "admin"}
	lights := &mockLights{light: models.Light{ID: 1, Brightness: 70, Color: "blue"}}
	s := &service.Service{Authorization: auth, Lights: lights}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/lights/1/brightness",
		bytes.NewBufferString(`{"brightness":70}`))
	req.Header.Set("Content-Type", "application/json")
	applyHeader(req, authHeader("valid"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("brightness status=%d, body=%s", w.Code, w.Body.String())
	}
	if lights.lastBrightness != 70 {
		t.Fatalf("brightness passed = %d", lights.lastBrightness)
	}

	// Missing body field → 400 before the service is reached
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/v1/lights/1/brightness",
		bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	applyHeader(req, authHeader("valid"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing brightness, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/v1/lights/1/color",
		bytes.NewBufferString(`{"color":"blue"}`))
	req.Header.Set("Content-Type", "application/json")
	applyHeader(req, authHeader("valid"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("color status=%d, body=%s", w.Code, w.Body.String())
	}
	if lights.lastColor != "blue" {
		t.Fatalf("color passed = %q", lights.lastColor)
	}
}
