package models

import "time"

// KPICard is one of the headline numbers on the admin dashboard
type KPICard struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// ChartPoint is a single labelled value in a chart series
type ChartPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// DashboardCharts holds the bar, line and pie chart series
type DashboardCharts struct {
	Bar  []ChartPoint `json:"bar"`
	Line []ChartPoint `json:"line"`
	Pie  []ChartPoint `json:"pie"`
}

// CalendarDay is a cell of the dashboard calendar
type CalendarDay struct {
	Date         string `json:"date"`
	Day          int    `json:"day"`
	InMonth      bool   `json:"inMonth"`
	Today        bool   `json:"today"`
	Appointments int    `json:"appointments"`
}

// Calendar is a month laid out as weeks starting on Sunday
type Calendar struct {
	Year  int             `json:"year"`
	Month time.Month      `json:"month"`
	Weeks [][]CalendarDay `json:"weeks"`
}

// Dashboard represents the admin dashboard payload
type Dashboard struct {
	GeneratedAt        time.Time        `json:"generatedAt"`
	Cards              []KPICard        `json:"cards"`
	Charts             DashboardCharts  `json:"charts"`
	Calendar           Calendar         `json:"calendar"`
	DoctorSchedule     []DoctorSchedule `json:"doctorSchedule"`
	RecentAppointments []AppointmentRow `json:"recentAppointments"`
}
