package handlers

import (
	"net/http"
	"time"

	"github.com/linesmerrill/hospital-api/api"
	"github.com/linesmerrill/hospital-api/dashboard"
)

// Dashboard exists to hold the admin dashboard endpoint
type Dashboard struct {
	Service *dashboard.Service
	Now     func() time.Time
}

// DashboardHandler returns the admin dashboard: KPI cards, chart series, the
// month calendar, today's doctor schedule and the latest appointments.
func (d Dashboard) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	response, err := d.Service.Dashboard(ctx, now().UTC())
	if err != nil {
		writeError(w, "failed to build dashboard", err)
		return
	}
	writeJSON(w, r, http.StatusOK, response)
}
