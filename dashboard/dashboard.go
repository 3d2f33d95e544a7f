// Package dashboard composes the admin dashboard: headline cards, chart
// series, the month calendar, today's doctor schedule and the latest
// appointments.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/linesmerrill/hospital-api/appointments"
	"github.com/linesmerrill/hospital-api/databases"
	"github.com/linesmerrill/hospital-api/models"
)

// DefaultRecentLimit is how many appointments the recent table shows
const DefaultRecentLimit = 5

// Input is everything the dashboard is built from
type Input struct {
	TotalPatients int64
	TotalDoctors  int64
	// Appointments must cover the calendar grid returned by Window
	Appointments []models.Appointment
	// Schedules are the duty slots for today's weekday
	Schedules   []models.DoctorSchedule
	RecentLimit int
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Window returns the range of days shown on the calendar for now's month,
// padded out to whole weeks starting on Sunday.
func Window(now time.Time) (from, to time.Time) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	from = monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	to = monthEnd
	if wd := monthEnd.Weekday(); wd != time.Sunday {
		to = monthEnd.AddDate(0, 0, 7-int(wd))
	}
	return from, to
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

// Build lays out the dashboard for the moment now
func Build(now time.Time, in Input) *models.Dashboard {
	loc := now.Location()
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	weekEnd := weekStart.AddDate(0, 0, 7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)
	daysInMonth := monthEnd.AddDate(0, 0, -1).Day()

	var todayCount int64
	weekly := make([]int, 7)
	daily := make([]int, daysInMonth)
	byDate := map[string]int{}
	var monthly []models.Appointment

	for _, a := range in.Appointments {
		at := a.ScheduledAt.In(loc)
		byDate[at.Format("2006-01-02")]++
		if within(at, today, tomorrow) {
			todayCount++
		}
		if within(at, weekStart, weekEnd) {
			weekly[at.Weekday()]++
		}
		if within(at, monthStart, monthEnd) {
			daily[at.Day()-1]++
			monthly = append(monthly, a)
		}
	}
	counts := appointments.CountByTab(monthly)

	d := &models.Dashboard{
		GeneratedAt: now,
		Cards: []models.KPICard{
			{Key: "total_patients", Label: "Total Patients", Value: in.TotalPatients},
			{Key: "total_doctors", Label: "Doctors", Value: in.TotalDoctors},
			{Key: "appointments_today", Label: "Appointments Today", Value: todayCount},
			{Key: "confirmed", Label: "Confirmed This Month", Value: int64(counts.Confirmed)},
			{Key: "pending", Label: "Pending This Month", Value: int64(counts.Pending)},
			{Key: "cancelled", Label: "Cancelled This Month", Value: int64(counts.Cancelled)},
		},
		Charts: models.DashboardCharts{
			Pie: []models.ChartPoint{
				{Label: models.StatusConfirmed, Value: counts.Confirmed},
				{Label: models.StatusPending, Value: counts.Pending},
				{Label: models.StatusCancelled, Value: counts.Cancelled},
			},
		},
		Calendar:           calendar(now, byDate),
		DoctorSchedule:     todaysSchedule(in.Schedules, now.Weekday()),
		RecentAppointments: recent(in.Appointments, now, in.RecentLimit),
	}
	for wd, n := range weekly {
		d.Charts.Bar = append(d.Charts.Bar, models.ChartPoint{Label: time.Weekday(wd).String()[:3], Value: n})
	}
	for i, n := range daily {
		d.Charts.Line = append(d.Charts.Line, models.ChartPoint{Label: strconv.Itoa(i + 1), Value: n})
	}
	return d
}

func calendar(now time.Time, byDate map[string]int) models.Calendar {
	from, to := Window(now)
	today := startOfDay(now)
	cal := models.Calendar{Year: now.Year(), Month: now.Month()}
	var week []models.CalendarDay
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		week = append(week, models.CalendarDay{
			Date:         key,
			Day:          day.Day(),
			InMonth:      day.Month() == now.Month(),
			Today:        day.Equal(today),
			Appointments: byDate[key],
		})
		if len(week) == 7 {
			cal.Weeks = append(cal.Weeks, week)
			week = nil
		}
	}
	return cal
}

func todaysSchedule(schedules []models.DoctorSchedule, weekday time.Weekday) []models.DoctorSchedule {
	out := []models.DoctorSchedule{}
	for _, s := range schedules {
		if s.Weekday == weekday {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// recent keeps the latest appointments already due by now, newest first
func recent(list []models.Appointment, now time.Time, limit int) []models.AppointmentRow {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	sorted := make([]models.Appointment, 0, len(list))
	for _, a := range list {
		if !a.ScheduledAt.After(now) {
			sorted = append(sorted, a)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ScheduledAt.After(sorted[j].ScheduledAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return appointments.Rows(sorted)
}

// Service loads the dashboard inputs from the stores
type Service struct {
	Users        databases.UserDatabase
	Profiles     databases.PatientProfileDatabase
	Appointments databases.AppointmentDatabase
	Schedules    databases.DoctorScheduleDatabase
	RecentLimit  int
}

// Dashboard builds the dashboard as of now
func (s *Service) Dashboard(ctx context.Context, now time.Time) (*models.Dashboard, error) {
	patients, err := s.Profiles.CountPatientProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	doctors, err := s.Users.CountUsersByRole(ctx, models.RoleDoctor)
	if err != nil {
		return nil, fmt.Errorf("failed to count doctors: %w", err)
	}
	from, to := Window(now)
	appts, err := s.Appointments.GetAppointmentsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	schedules, err := s.Schedules.GetSchedulesByWeekday(ctx, now.Weekday())
	if err != nil {
		return nil, fmt.Errorf("failed to load doctor schedules: %w", err)
	}
	return Build(now, Input{
		TotalPatients: patients,
		TotalDoctors:  doctors,
		Appointments:  appts,
		Schedules:     schedules,
		RecentLimit:   s.RecentLimit,
	}), nil
}
