package derive

import (
	"strings"
	"testing"
	"time"

	"github.com/airmedops/medevac-console/internal/types"
)

func mission(id string, status types.MissionStatus, patients int) types.Mission {
	m := types.Mission{ID: id, Status: status}
	for i := 0; i < patients; i++ {
		m.Patients = append(m.Patients, types.Patient{ID: id + "-p", Severity: types.SeverityMild})
	}
	return m
}

func TestDashboardStats_Empty(t *testing.T) {
	stats := DashboardStats(nil, time.Now())

	if stats.ActiveMissions != 0 {
		t.Errorf("ActiveMissions mismatch: got %d, want 0", stats.ActiveMissions)
	}
	if stats.CompletedToday != 0 {
		t.Errorf("CompletedToday mismatch: got %d, want 0", stats.CompletedToday)
	}
	if stats.UpcomingMissions != 0 {
		t.Errorf("UpcomingMissions mismatch: got %d, want 0", stats.UpcomingMissions)
	}
	if stats.PatientsInTransit != 0 {
		t.Errorf("PatientsInTransit mismatch: got %d, want 0", stats.PatientsInTransit)
	}
}

func TestDashboardStats_Counters(t *testing.T) {
	now := time.Date(2024, 11, 18, 14, 0, 0, 0, time.UTC)
	missions := []types.Mission{
		mission("M-1", types.MissionPlanning, 0),
		mission("M-2", types.MissionApproved, 2),
		mission("M-3", types.MissionBoarding, 3),
		mission("M-4", types.MissionAirborne, 4),
		mission("M-5", types.MissionLanded, 1),
		mission("M-6", types.MissionCancelled, 2),
	}

	stats := DashboardStats(missions, now)

	if stats.ActiveMissions != 4 {
		t.Errorf("ActiveMissions mismatch: got %d, want 4", stats.ActiveMissions)
	}
	if stats.UpcomingMissions != 1 {
		t.Errorf("UpcomingMissions mismatch: got %d, want 1", stats.UpcomingMissions)
	}
	// Only boarding and airborne patients are in transit
	if stats.PatientsInTransit != 7 {
		t.Errorf("PatientsInTransit mismatch: got %d, want 7", stats.PatientsInTransit)
	}

	if stats.ActiveMissions+stats.UpcomingMissions > len(missions) {
		t.Errorf("active %d + upcoming %d exceeds total %d",
			stats.ActiveMissions, stats.UpcomingMissions, len(missions))
	}
}

func TestDashboardStats_CompletedToday(t *testing.T) {
	now := time.Date(2024, 11, 18, 14, 0, 0, 0, time.UTC)

	today := mission("M-1", types.MissionCompleted, 0)
	today.ETA = time.Date(2024, 11, 18, 23, 59, 0, 0, time.UTC)

	yesterday := mission("M-2", types.MissionCompleted, 0)
	yesterday.ETA = time.Date(2024, 11, 17, 16, 0, 0, 0, time.UTC)

	notCompleted := mission("M-3", types.MissionAirborne, 0)
	notCompleted.ETA = now

	stats := DashboardStats([]types.Mission{today, yesterday, notCompleted}, now)
	if stats.CompletedToday != 1 {
		t.Errorf("CompletedToday mismatch: got %d, want 1", stats.CompletedToday)
	}
}

func TestStatusColor(t *testing.T) {
	cases := map[string]string{
		"PLANNING":    "bg-gray-100 text-gray-800",
		"AIRBORNE":    "bg-green-100 text-green-800",
		"CANCELLED":   "bg-red-100 text-red-800",
		"READY":       "bg-green-100 text-green-800",
		"MAINTENANCE": "bg-orange-100 text-orange-800",
	}
	for status, want := range cases {
		if got := StatusColor(status); got != want {
			t.Errorf("StatusColor(%q) mismatch: got %q, want %q", status, got, want)
		}
	}

	if got := StatusColor("NO_SUCH_STATUS"); got != fallbackColor {
		t.Errorf("fallback mismatch: got %q, want %q", got, fallbackColor)
	}
	if got := StatusColor(""); got != fallbackColor {
		t.Errorf("fallback mismatch for empty input: got %q, want %q", got, fallbackColor)
	}
}

func TestSeverityColor(t *testing.T) {
	if got := SeverityColor(types.SeverityCritical); got != "bg-red-100 text-red-800" {
		t.Errorf("SeverityColor(CRITICAL) mismatch: got %q", got)
	}
	if got := SeverityColor("UNKNOWN"); got != fallbackColor {
		t.Errorf("fallback mismatch: got %q, want %q", got, fallbackColor)
	}
}

func TestRoleColor(t *testing.T) {
	if got := RoleColor(types.RoleAdmin); got != "bg-red-100 text-red-800" {
		t.Errorf("RoleColor(ADMIN) mismatch: got %q", got)
	}
	if got := RoleColor("OBSERVER"); got != fallbackColor {
		t.Errorf("fallback mismatch: got %q, want %q", got, fallbackColor)
	}
}

func TestMissionTypeLabel(t *testing.T) {
	cases := map[types.MissionType]string{
		types.MissionTactical:     "Tactical",
		types.MissionStrategic:    "Strategic",
		types.MissionMassCasualty: "Mass Casualty",
		types.MissionICU:          "ICU Transport",
	}
	for mt, want := range cases {
		got := MissionTypeLabel(mt)
		if got != want {
			t.Errorf("MissionTypeLabel(%q) mismatch: got %q, want %q", mt, got, want)
		}
		if got == "" {
			t.Errorf("MissionTypeLabel(%q) returned empty label", mt)
		}
	}

	// Unknown types pass through unchanged
	if got := MissionTypeLabel("AEROSPACE_RESCUE"); got != "AEROSPACE_RESCUE" {
		t.Errorf("unknown type mismatch: got %q, want raw input", got)
	}
}

func TestFormatDate(t *testing.T) {
	got := FormatDate("2024-11-18T08:00:00Z")
	if !strings.Contains(got, "2024") || !strings.Contains(got, "08:00") {
		t.Errorf("FormatDate mismatch: got %q, want it to contain 2024 and 08:00", got)
	}
	if got != "Nov 18, 2024 08:00" {
		t.Errorf("FormatDate mismatch: got %q, want %q", got, "Nov 18, 2024 08:00")
	}
}

func TestFormatDate_DateOnly(t *testing.T) {
	if got := FormatDate("2024-12-15"); got != "Dec 15, 2024 00:00" {
		t.Errorf("FormatDate mismatch: got %q, want %q", got, "Dec 15, 2024 00:00")
	}
}

func TestFormatDate_Invalid(t *testing.T) {
	if got := FormatDate("not-a-date"); got != "not-a-date" {
		t.Errorf("FormatDate should return invalid input unchanged: got %q", got)
	}
	if got := FormatDate(""); got != "" {
		t.Errorf("FormatDate should return empty input unchanged: got %q", got)
	}
}

func TestFormatTime(t *testing.T) {
	if got := FormatTime("2024-11-18T10:30:00Z"); got != "10:30" {
		t.Errorf("FormatTime mismatch: got %q, want %q", got, "10:30")
	}
	if got := FormatTime("late morning"); got != "late morning" {
		t.Errorf("FormatTime should return invalid input unchanged: got %q", got)
	}
}

func TestPatientsBySeverity(t *testing.T) {
	patients := []types.Patient{
		{Severity: types.SeverityCritical},
		{Severity: types.SeverityCritical},
		{Severity: types.SeverityModerate},
		{Severity: types.SeverityMild},
	}

	got := PatientsBySeverity(patients)
	want := SeverityBreakdown{Critical: 2, Moderate: 1, Mild: 1}
	if got != want {
		t.Errorf("PatientsBySeverity mismatch: got %+v, want %+v", got, want)
	}

	if got := PatientsBySeverity(nil); got != (SeverityBreakdown{}) {
		t.Errorf("PatientsBySeverity(nil) mismatch: got %+v, want zeroes", got)
	}
}

func TestMissionsByType(t *testing.T) {
	missions := []types.Mission{
		{Type: types.MissionICU},
		{Type: types.MissionICU},
		{Type: types.MissionMassCasualty},
	}

	counts := MissionsByType(missions)
	if counts["ICU Transport"] != 2 {
		t.Errorf("ICU Transport count mismatch: got %d, want 2", counts["ICU Transport"])
	}
	if counts["Mass Casualty"] != 1 {
		t.Errorf("Mass Casualty count mismatch: got %d, want 1", counts["Mass Casualty"])
	}
}

func TestMissionsByStatus(t *testing.T) {
	missions := []types.Mission{
		{Status: types.MissionAirborne},
		{Status: types.MissionAirborne},
		{Status: types.MissionCompleted},
	}

	counts := MissionsByStatus(missions)
	if counts["AIRBORNE"] != 2 || counts["COMPLETED"] != 1 {
		t.Errorf("MissionsByStatus mismatch: got %v", counts)
	}
}

func TestSummarize(t *testing.T) {
	missions := []types.Mission{
		{
			Status: types.MissionCompleted,
			Patients: []types.Patient{
				{Severity: types.SeverityCritical},
				{Severity: types.SeverityMild},
			},
		},
		{
			Status: types.MissionAirborne,
			Patients: []types.Patient{
				{Severity: types.SeverityModerate},
			},
		},
	}

	s := Summarize(missions)
	if s.TotalMissions != 2 || s.CompletedMissions != 1 || s.TotalPatients != 3 {
		t.Errorf("totals mismatch: got %+v", s)
	}
	if s.AvgPatientsPerMission != "1.5" {
		t.Errorf("AvgPatientsPerMission mismatch: got %q, want 1.5", s.AvgPatientsPerMission)
	}
	if s.SuccessRatePct != "50.0" {
		t.Errorf("SuccessRatePct mismatch: got %q, want 50.0", s.SuccessRatePct)
	}
	if s.CriticalPct != "33.3" {
		t.Errorf("CriticalPct mismatch: got %q, want 33.3", s.CriticalPct)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalMissions != 0 || s.TotalPatients != 0 {
		t.Errorf("totals mismatch: got %+v", s)
	}
	if s.AvgPatientsPerMission != "0.0" || s.SuccessRatePct != "0.0" {
		t.Errorf("empty summary should not divide by zero: got %+v", s)
	}
}

func TestStatusStepIndex(t *testing.T) {
	cases := map[types.MissionStatus]int{
		types.MissionPlanning:  0,
		types.MissionApproved:  1,
		types.MissionBoarding:  2,
		types.MissionAirborne:  3,
		types.MissionLanded:    4,
		types.MissionCompleted: 5,
		types.MissionCancelled: -1,
		"BOGUS":                -1,
	}
	for status, want := range cases {
		if got := StatusStepIndex(status); got != want {
			t.Errorf("StatusStepIndex(%q) mismatch: got %d, want %d", status, got, want)
		}
	}

	// Note: the status field is free-standing state. A mission constructed
	// at COMPLETED without passing through the chain is still reported at
	// step 5; transition legality is not checked anywhere.
	if got := StatusStepIndex(types.MissionCompleted); got != 5 {
		t.Errorf("StatusStepIndex(COMPLETED) mismatch: got %d, want 5", got)
	}
}

func TestActiveFlights(t *testing.T) {
	missions := []types.Mission{
		mission("M-1", types.MissionPlanning, 0),
		mission("M-2", types.MissionBoarding, 1),
		mission("M-3", types.MissionAirborne, 2),
		mission("M-4", types.MissionLanded, 0),
		mission("M-5", types.MissionCompleted, 0),
	}

	active := ActiveFlights(missions)
	if len(active) != 3 {
		t.Fatalf("ActiveFlights length mismatch: got %d, want 3", len(active))
	}
	for _, m := range active {
		if m.Status == types.MissionPlanning || m.Status == types.MissionCompleted {
			t.Errorf("unexpected status %q in active flights", m.Status)
		}
	}
}
