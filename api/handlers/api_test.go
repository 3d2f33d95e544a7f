package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/linesmerrill/hospital-api/databases/mocks"
)

var a App

func executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	if expected != actual {
		t.Errorf("Expected response code %d. Got %d\n", expected, actual)
	}
}

func newTestApp() {
	db := &mocks.DatabaseHelper{}
	db.On("Collection", mock.Anything).Return(&mocks.CollectionHelper{})
	a = App{dbHelper: db}
	a.Router = a.New()
}

func TestUnknownRoute(t *testing.T) {
	newTestApp()
	req, _ := http.NewRequest("GET", "/asdf", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusNotFound, response.Code)
}

func TestHealthCheckRoute(t *testing.T) {
	newTestApp()
	req, _ := http.NewRequest("GET", "/health", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)

	if !strings.Contains(response.Body.String(), "alive") {
		t.Errorf("Expected 'alive' in the reponse. Got '%s'", response.Body.String())
	}
	assert.NotEmpty(t, response.Header().Get("X-Request-ID"))
}

func TestProtectedRoutesNeedAuth(t *testing.T) {
	newTestApp()
	routes := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/appointments"},
		{"PATCH", "/api/v1/appointments/abc/status"},
		{"GET", "/api/v1/admin/dashboard"},
		{"GET", "/api/v1/users/abc/profiles"},
		{"POST", "/api/v1/prescriptions"},
		{"GET", "/api/v1/records"},
		{"GET", "/api/v1/schedules"},
		{"GET", "/api/v1/ws/appointments"},
	}
	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req, _ := http.NewRequest(route.method, route.path, nil)
			response := executeRequest(req)

			checkResponseCode(t, http.StatusUnauthorized, response.Code)
		})
	}
}

func TestRegisterRouteIsPublic(t *testing.T) {
	newTestApp()
	req, _ := http.NewRequest("POST", "/api/v1/users", strings.NewReader(`{"email": "not-an-email"}`))
	response := executeRequest(req)

	checkResponseCode(t, http.StatusBadRequest, response.Code)
	assert.Contains(t, response.Body.String(), "invalid user")
}

func TestWrongMethod(t *testing.T) {
	newTestApp()
	req, _ := http.NewRequest("PUT", "/api/v1/appointments", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusMethodNotAllowed, response.Code)
}
