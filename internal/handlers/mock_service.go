package handlers

import (
	"context"
	"net/http"
	"time"

	"controlling_lights/internal/models"
	"controlling_lights/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	genTokenToken string
	genTokenErr   error
	parseUser     string
	parseErr      error

	lastGenUsername string
	lastGenPassword string
	lastParseToken  string
}

func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseUser, m.parseErr
}

type mockLights struct {
	lights map[int]models.Light
	light  models.Light
	err    error

	turnOnCalls  []int
	turnOffCalls []int
	addCalls     int
	addID        int
	deleteCalls  []int

	lastBrightness int
	lastColor      string
}

func (m *mockLights) List(ctx context.Context) map[int]models.Light { return m.lights }
func (m *mockLights) Get(ctx context.Context, id int) (models.Light, error) {
	return m.light, m.err
}
func (m *mockLights) TurnOn(ctx context.Context, id int) (models.Light, error) {
	m.turnOnCalls = append(m.turnOnCalls, id)
	return m.light, m.err
}
func (m *mockLights) TurnOff(ctx context.Context, id int) (models.Light, error) {
	m.turnOffCalls = append(m.turnOffCalls, id)
	return m.light, m.err
}
func (m *mockLights) SetBrightness(ctx context.Context, id, brightness int) (models.Light, error) {
	m.lastBrightness = brightness
	return m.light, m.err
}
func (m *mockLights) SetColor(ctx context.Context, id int, color string) (models.Light, error) {
	m.lastColor = color
	return m.light, m.err
}
func (m *mockLights) Add(ctx context.Context) int {
	m.addCalls++
	return m.addID
}
func (m *mockLights) Delete(ctx context.Context, id int) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.err
}

type mockGroups struct {
	groups    map[int]models.LightGroup
	group     models.LightGroup
	createdID int
	err       error

	lastCreateName   string
	lastCreateLights []int
	lastControlID    int
	lastAction       string
	lastAddLight     int
	lastRemoveLight  int
	systemDeletes    []int
	deleteCalls      []int
}

func (m *mockGroups) List(ctx context.Context) map[int]models.LightGroup { return m.groups }
func (m *mockGroups) Get(ctx context.Context, id int) (models.LightGroup, error) {
	return m.group, m.err
}
func (m *mockGroups) Create(ctx context.Context, name string, lightIDs []int) (int, error) {
	m.lastCreateName = name
	m.lastCreateLights = lightIDs
	return m.createdID, m.err
}
func (m *mockGroups) Control(ctx context.Context, groupID int, action string) error {
	m.lastControlID = groupID
	m.lastAction = action
	return m.err
}
func (m *mockGroups) AddLight(ctx context.Context, groupID, lightID int) error {
	m.lastAddLight = lightID
	return m.err
}
func (m *mockGroups) RemoveLight(ctx context.Context, groupID, lightID int) error {
	m.lastRemoveLight = lightID
	return m.err
}
func (m *mockGroups) DeleteLightFromSystem(ctx context.Context, lightID int) error {
	m.systemDeletes = append(m.systemDeletes, lightID)
	return m.err
}
func (m *mockGroups) Delete(ctx context.Context, groupID int) error {
	m.deleteCalls = append(m.deleteCalls, groupID)
	return m.err
}

type mockScheduler struct {
	fireAt time.Time
	err    error

	lastLightID int
	lastAt      string
	lastAction  string
}

func (m *mockScheduler) Schedule(ctx context.Context, lightID int, at, action string) (time.Time, error) {
	m.lastLightID = lightID
	m.lastAt = at
	m.lastAction = action
	return m.fireAt, m.err
}

type mockEventLog struct {
	resp     []models.LightEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.LightEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

type mockPersistence struct {
	saveCalls int
	loadCalls int
	err       error
}

func (m *mockPersistence) Save(ctx context.Context) error {
	m.saveCalls++
	return m.err
}
func (m *mockPersistence) Load(ctx context.Context) error {
	m.loadCalls++
	return m.err
}

// ---- Shared Test Helpers ----

// generous limits so ordinary tests never trip the rate limiter
var testRateLimit = RateLimit{RPS: 1000, Burst: 1000}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, testRateLimit)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func applyHeader(req *http.Request, hdr http.Header) {
	for k, vv := range hdr {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
}
