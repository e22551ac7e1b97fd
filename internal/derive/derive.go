// Package derive computes read-only views over the fixture data: dashboard
// counters, report breakdowns, display labels and colors, and date
// formatting. Every function is pure; none mutates its input.
package derive

import (
	"fmt"
	"time"

	"github.com/airmedops/medevac-console/internal/types"
)

const fallbackColor = "bg-gray-100 text-gray-800"

var statusColors = map[string]string{
	"PLANNING":    "bg-gray-100 text-gray-800",
	"APPROVED":    "bg-blue-100 text-blue-800",
	"BOARDING":    "bg-yellow-100 text-yellow-800",
	"AIRBORNE":    "bg-green-100 text-green-800",
	"LANDED":      "bg-purple-100 text-purple-800",
	"COMPLETED":   "bg-gray-100 text-gray-800",
	"CANCELLED":   "bg-red-100 text-red-800",
	"READY":       "bg-green-100 text-green-800",
	"ON_MISSION":  "bg-blue-100 text-blue-800",
	"MAINTENANCE": "bg-orange-100 text-orange-800",
}

var severityColors = map[types.PatientSeverity]string{
	types.SeverityCritical: "bg-red-100 text-red-800",
	types.SeverityModerate: "bg-yellow-100 text-yellow-800",
	types.SeverityMild:     "bg-green-100 text-green-800",
}

var roleColors = map[types.UserRole]string{
	types.RoleMissionCommander:  "bg-purple-100 text-purple-800",
	types.RoleFlightCrew:        "bg-blue-100 text-blue-800",
	types.RoleMedicalTeamLeader: "bg-green-100 text-green-800",
	types.RoleMedicalStaff:      "bg-yellow-100 text-yellow-800",
	types.RoleAdmin:             "bg-red-100 text-red-800",
}

var missionTypeLabels = map[types.MissionType]string{
	types.MissionTactical:     "Tactical",
	types.MissionStrategic:    "Strategic",
	types.MissionMassCasualty: "Mass Casualty",
	types.MissionICU:          "ICU Transport",
}

// statusSteps is the linear mission lifecycle shown by the stepper.
// CANCELLED sits outside the chain.
var statusSteps = []types.MissionStatus{
	types.MissionPlanning,
	types.MissionApproved,
	types.MissionBoarding,
	types.MissionAirborne,
	types.MissionLanded,
	types.MissionCompleted,
}

// DashboardStats computes the four headline dashboard counters. Each counter
// is an independent pass over the mission list; a mission may contribute to
// more than one counter. "Completed today" compares the arrival date to now
// at calendar-day granularity in now's location.
func DashboardStats(missions []types.Mission, now time.Time) types.DashboardStats {
	var stats types.DashboardStats

	ty, tm, td := now.Date()
	for _, m := range missions {
		switch m.Status {
		case types.MissionApproved, types.MissionBoarding, types.MissionAirborne, types.MissionLanded:
			stats.ActiveMissions++
		case types.MissionPlanning:
			stats.UpcomingMissions++
		case types.MissionCompleted:
			y, mo, d := m.ETA.In(now.Location()).Date()
			if y == ty && mo == tm && d == td {
				stats.CompletedToday++
			}
		}

		if m.Status == types.MissionBoarding || m.Status == types.MissionAirborne {
			stats.PatientsInTransit += len(m.Patients)
		}
	}

	return stats
}

// StatusColor maps a mission or aircraft status to its badge color token.
// Unknown values get the gray fallback, never an error.
func StatusColor(status string) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return fallbackColor
}

// SeverityColor maps patient severity to its badge color token, with the
// gray fallback for values outside the closed set.
func SeverityColor(severity types.PatientSeverity) string {
	if color, ok := severityColors[severity]; ok {
		return color
	}
	return fallbackColor
}

// RoleColor maps a user role to its badge color token
func RoleColor(role types.UserRole) string {
	if color, ok := roleColors[role]; ok {
		return color
	}
	return fallbackColor
}

// MissionTypeLabel returns the display label for a mission type. Unknown
// values are returned unchanged.
func MissionTypeLabel(t types.MissionType) string {
	if label, ok := missionTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// dateLayouts are tried in order when parsing display timestamps. Fixture
// dates are either full RFC 3339 stamps or bare calendar dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders an ISO-8601 timestamp as "MMM dd, yyyy HH:mm". A value
// that does not parse is returned unchanged rather than reported as an
// error.
func FormatDate(s string) string {
	if ts, ok := parseTimestamp(s); ok {
		return ts.Format("Jan 02, 2006 15:04")
	}
	return s
}

// FormatTime renders an ISO-8601 timestamp as "HH:mm", falling back to the
// raw input on parse failure.
func FormatTime(s string) string {
	if ts, ok := parseTimestamp(s); ok {
		return ts.Format("15:04")
	}
	return s
}

// SeverityBreakdown counts patients per acuity class
type SeverityBreakdown struct {
	Critical int `json:"critical"`
	Moderate int `json:"moderate"`
	Mild     int `json:"mild"`
}

// PatientsBySeverity tallies a patient list by severity
func PatientsBySeverity(patients []types.Patient) SeverityBreakdown {
	var b SeverityBreakdown
	for _, p := range patients {
		switch p.Severity {
		case types.SeverityCritical:
			b.Critical++
		case types.SeverityModerate:
			b.Moderate++
		case types.SeverityMild:
			b.Mild++
		}
	}
	return b
}

// MissionsByType counts missions per display label
func MissionsByType(missions []types.Mission) map[string]int {
	counts := make(map[string]int)
	for _, m := range missions {
		counts[MissionTypeLabel(m.Type)]++
	}
	return counts
}

// MissionsByStatus counts missions per status value
func MissionsByStatus(missions []types.Mission) map[string]int {
	counts := make(map[string]int)
	for _, m := range missions {
		counts[string(m.Status)]++
	}
	return counts
}

// ReportSummary is the aggregate figure set on the reports page.
// Percentages and the patient average are pre-rendered to one decimal
// place, the way the console displays them.
type ReportSummary struct {
	TotalMissions         int               `json:"total_missions"`
	CompletedMissions     int               `json:"completed_missions"`
	TotalPatients         int               `json:"total_patients"`
	AvgPatientsPerMission string            `json:"avg_patients_per_mission"`
	SuccessRatePct        string            `json:"success_rate_pct"`
	Severity              SeverityBreakdown `json:"severity"`
	CriticalPct           string            `json:"critical_pct"`
	ModeratePct           string            `json:"moderate_pct"`
	MildPct               string            `json:"mild_pct"`
}

// Summarize computes the report aggregates over the full mission list
func Summarize(missions []types.Mission) ReportSummary {
	var patients []types.Patient
	completed := 0
	for _, m := range missions {
		patients = append(patients, m.Patients...)
		if m.Status == types.MissionCompleted {
			completed++
		}
	}

	severity := PatientsBySeverity(patients)
	return ReportSummary{
		TotalMissions:         len(missions),
		CompletedMissions:     completed,
		TotalPatients:         len(patients),
		AvgPatientsPerMission: ratio(len(patients), len(missions)),
		SuccessRatePct:        percentage(completed, len(missions)),
		Severity:              severity,
		CriticalPct:           percentage(severity.Critical, len(patients)),
		ModeratePct:           percentage(severity.Moderate, len(patients)),
		MildPct:               percentage(severity.Mild, len(patients)),
	}
}

func ratio(num, den int) string {
	if den == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(num)/float64(den))
}

func percentage(num, den int) string {
	if den == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(num)/float64(den)*100)
}

// StatusStepIndex returns the position of a status in the linear lifecycle
// chain, or -1 for CANCELLED and anything outside the closed set. The field
// is free-standing state; no transition history is validated.
func StatusStepIndex(status types.MissionStatus) int {
	for i, step := range statusSteps {
		if step == status {
			return i
		}
	}
	return -1
}

// StatusSteps returns the lifecycle chain in order
func StatusSteps() []types.MissionStatus {
	steps := make([]types.MissionStatus, len(statusSteps))
	copy(steps, statusSteps)
	return steps
}

// ActiveFlights filters missions to those currently in progress, the set
// the live monitor shows
func ActiveFlights(missions []types.Mission) []types.Mission {
	var active []types.Mission
	for _, m := range missions {
		switch m.Status {
		case types.MissionBoarding, types.MissionAirborne, types.MissionLanded:
			active = append(active, m)
		}
	}
	return active
}
