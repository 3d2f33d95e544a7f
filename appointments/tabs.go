// Package appointments holds the admin appointments page logic: the status
// tabs, the status styles and in-memory paging of the filtered rows.
package appointments

import (
	"fmt"
	"strings"

	"github.com/linesmerrill/hospital-api/models"
)

// Tab is one of the status tabs above the appointments table
type Tab string

// Tabs in display order
const (
	TabAll       Tab = "All"
	TabConfirmed Tab = models.StatusConfirmed
	TabPending   Tab = models.StatusPending
	TabCancelled Tab = models.StatusCancelled
)

// Tabs lists every tab in display order
var Tabs = []Tab{TabAll, TabConfirmed, TabPending, TabCancelled}

// ParseTab maps a query value to a tab. An empty value selects All. Matching
// is case-sensitive like the status field itself.
func ParseTab(s string) (Tab, error) {
	if s == "" {
		return TabAll, nil
	}
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown appointment tab %q", s)
}

// Filter returns the rows whose status equals the tab keyword, keeping their
// relative order. The All tab returns the list unchanged.
func Filter(list []models.Appointment, tab Tab) []models.Appointment {
	if tab == TabAll {
		return list
	}
	out := make([]models.Appointment, 0, len(list))
	for _, a := range list {
		if a.Status == string(tab) {
			out = append(out, a)
		}
	}
	return out
}

// CountByTab counts the rows each tab would show
func CountByTab(list []models.Appointment) models.AppointmentTabCounts {
	counts := models.AppointmentTabCounts{All: len(list)}
	for _, a := range list {
		switch a.Status {
		case models.StatusConfirmed:
			counts.Confirmed++
		case models.StatusPending:
			counts.Pending++
		case models.StatusCancelled:
			counts.Cancelled++
		}
	}
	return counts
}

// ValidStatus reports whether status is one an appointment may be stored with
func ValidStatus(status string) bool {
	switch status {
	case models.StatusConfirmed, models.StatusPending, models.StatusCancelled:
		return true
	}
	return false
}

var statusStyles = map[string]string{
	"confirmed": "status-confirmed",
	"pending":   "status-pending",
	"cancelled": "status-cancelled",
}

// StatusStyle returns the presentation style for a status. The status is
// lower-cased first; statuses without a style get an empty string.
func StatusStyle(status string) string {
	return statusStyles[strings.ToLower(status)]
}

// Rows decorates appointments with their status style
func Rows(list []models.Appointment) []models.AppointmentRow {
	rows := make([]models.AppointmentRow, 0, len(list))
	for _, a := range list {
		rows = append(rows, models.AppointmentRow{Appointment: a, StatusClass: StatusStyle(a.Status)})
	}
	return rows
}

// Paginate slices out a zero based page of limit rows and reports the paging details
func Paginate(list []models.Appointment, limit, page int64) ([]models.Appointment, models.Pagination) {
	total := int64(len(list))
	p := models.NewPagination(page, limit, total)
	if limit <= 0 || page < 0 || total == 0 || page > (total-1)/limit {
		return []models.Appointment{}, p
	}
	start := page * limit
	end := start + limit
	if end > total {
		end = total
	}
	return list[start:end], p
}
