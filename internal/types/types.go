package types

import (
	"time"
)

// MissionStatus is the lifecycle state of a mission
type MissionStatus string

const (
	MissionPlanning  MissionStatus = "PLANNING"
	MissionApproved  MissionStatus = "APPROVED"
	MissionBoarding  MissionStatus = "BOARDING"
	MissionAirborne  MissionStatus = "AIRBORNE"
	MissionLanded    MissionStatus = "LANDED"
	MissionCompleted MissionStatus = "COMPLETED"
	MissionCancelled MissionStatus = "CANCELLED"
)

// Valid reports whether the status is one of the closed set of values
func (s MissionStatus) Valid() bool {
	switch s {
	case MissionPlanning, MissionApproved, MissionBoarding, MissionAirborne,
		MissionLanded, MissionCompleted, MissionCancelled:
		return true
	}
	return false
}

// MissionType classifies the kind of evacuation flight
type MissionType string

const (
	MissionTactical     MissionType = "TACTICAL"
	MissionStrategic    MissionType = "STRATEGIC"
	MissionMassCasualty MissionType = "MASS_CASUALTY"
	MissionICU          MissionType = "ICU"
)

// Valid reports whether the type is one of the closed set of values
func (t MissionType) Valid() bool {
	switch t {
	case MissionTactical, MissionStrategic, MissionMassCasualty, MissionICU:
		return true
	}
	return false
}

// PatientSeverity is patient acuity, critical highest
type PatientSeverity string

const (
	SeverityCritical PatientSeverity = "CRITICAL"
	SeverityModerate PatientSeverity = "MODERATE"
	SeverityMild     PatientSeverity = "MILD"
)

// Valid reports whether the severity is one of the closed set of values
func (s PatientSeverity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityModerate, SeverityMild:
		return true
	}
	return false
}

// PatientStatus is the in-transit condition of a patient
type PatientStatus string

const (
	PatientOnboard       PatientStatus = "ONBOARD"
	PatientStable        PatientStatus = "STABLE"
	PatientDeteriorating PatientStatus = "DETERIORATING"
	PatientDeceased      PatientStatus = "DECEASED"
	PatientDisembarked   PatientStatus = "DISEMBARKED"
)

// Valid reports whether the status is one of the closed set of values
func (s PatientStatus) Valid() bool {
	switch s {
	case PatientOnboard, PatientStable, PatientDeteriorating, PatientDeceased, PatientDisembarked:
		return true
	}
	return false
}

// AircraftStatus is the availability state of an airframe
type AircraftStatus string

const (
	AircraftReady       AircraftStatus = "READY"
	AircraftOnMission   AircraftStatus = "ON_MISSION"
	AircraftMaintenance AircraftStatus = "MAINTENANCE"
)

// Valid reports whether the status is one of the closed set of values
func (s AircraftStatus) Valid() bool {
	switch s {
	case AircraftReady, AircraftOnMission, AircraftMaintenance:
		return true
	}
	return false
}

// EquipmentType classifies medical cabin equipment
type EquipmentType string

const (
	EquipmentVentilator    EquipmentType = "VENTILATOR"
	EquipmentMonitor       EquipmentType = "MONITOR"
	EquipmentDefibrillator EquipmentType = "DEFIBRILLATOR"
	EquipmentPump          EquipmentType = "PUMP"
	EquipmentOxygen        EquipmentType = "OXYGEN"
)

// Valid reports whether the type is one of the closed set of values
func (t EquipmentType) Valid() bool {
	switch t {
	case EquipmentVentilator, EquipmentMonitor, EquipmentDefibrillator, EquipmentPump, EquipmentOxygen:
		return true
	}
	return false
}

// EquipmentStatus is the serviceability state of an equipment item
type EquipmentStatus string

const (
	EquipmentOK         EquipmentStatus = "OK"
	EquipmentNeedsCheck EquipmentStatus = "NEEDS_CHECK"
	EquipmentFaulty     EquipmentStatus = "FAULTY"
)

// Valid reports whether the status is one of the closed set of values
func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentOK, EquipmentNeedsCheck, EquipmentFaulty:
		return true
	}
	return false
}

// LogType is the severity class of a mission log entry
type LogType string

const (
	LogInfo     LogType = "INFO"
	LogWarning  LogType = "WARNING"
	LogCritical LogType = "CRITICAL"
)

// Valid reports whether the type is one of the closed set of values
func (t LogType) Valid() bool {
	switch t {
	case LogInfo, LogWarning, LogCritical:
		return true
	}
	return false
}

// UserRole determines which parts of the console a user can reach
type UserRole string

const (
	RoleMissionCommander  UserRole = "MISSION_COMMANDER"
	RoleFlightCrew        UserRole = "FLIGHT_CREW"
	RoleMedicalTeamLeader UserRole = "MEDICAL_TEAM_LEADER"
	RoleMedicalStaff      UserRole = "MEDICAL_STAFF"
	RoleAdmin             UserRole = "ADMIN"
)

// Roles lists every role in display order
var Roles = []UserRole{
	RoleMissionCommander,
	RoleFlightCrew,
	RoleMedicalTeamLeader,
	RoleMedicalStaff,
	RoleAdmin,
}

// Valid reports whether the role is one of the closed set of values
func (r UserRole) Valid() bool {
	switch r {
	case RoleMissionCommander, RoleFlightCrew, RoleMedicalTeamLeader, RoleMedicalStaff, RoleAdmin:
		return true
	}
	return false
}

// Label renders the role for display, underscores replaced with spaces
func (r UserRole) Label() string {
	out := make([]byte, len(r))
	for i := 0; i < len(r); i++ {
		if r[i] == '_' {
			out[i] = ' '
		} else {
			out[i] = r[i]
		}
	}
	return string(out)
}

// Aircraft is a per-mission snapshot of an airframe. The same tail number
// may appear on several missions with independent state; nothing reconciles
// the copies.
type Aircraft struct {
	ID                  string         `json:"id"`
	TailNumber          string         `json:"tail_number"`
	Status              AircraftStatus `json:"status"`
	FlightHours         int            `json:"flight_hours"`
	NextMaintenanceDate string         `json:"next_maintenance_date"`
}

// Equipment is a medical equipment item carried in the cabin
type Equipment struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          EquipmentType   `json:"type"`
	Status        EquipmentStatus `json:"status"`
	LastCheckDate string          `json:"last_check_date"`
}

// VitalSign is one timestamped sample of patient physiology. Readings are
// recorded as received; no physiological range checks are applied.
type VitalSign struct {
	Timestamp              time.Time `json:"timestamp"`
	HeartRate              int       `json:"heart_rate"`
	BloodPressureSystolic  int       `json:"blood_pressure_systolic"`
	BloodPressureDiastolic int       `json:"blood_pressure_diastolic"`
	OxygenSaturation       int       `json:"oxygen_saturation"`
	Temperature            float64   `json:"temperature"`
	RespiratoryRate        int       `json:"respiratory_rate"`
}

// MedicalIntervention records a treatment performed in flight
type MedicalIntervention struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	PerformedBy string    `json:"performed_by"`
}

// Patient belongs to exactly one mission and has no identity of its own
// across missions. VitalSigns and Interventions are append-only and
// chronological.
type Patient struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Age           int                   `json:"age"`
	Gender        string                `json:"gender"`
	Diagnosis     string                `json:"diagnosis"`
	Severity      PatientSeverity       `json:"severity"`
	CabinPosition string                `json:"cabin_position"`
	Status        PatientStatus         `json:"status"`
	VitalSigns    []VitalSign           `json:"vital_signs"`
	Interventions []MedicalIntervention `json:"interventions"`
	Notes         string                `json:"notes"`
	Outcome       string                `json:"outcome,omitempty"`
}

// MissionLog is one append-only, chronological log entry
type MissionLog struct {
	ID        string    `json:"id"`
	Time      time.Time `json:"time"`
	Message   string    `json:"message"`
	Type      LogType   `json:"type"`
	CreatedBy string    `json:"created_by"`
}

// CrewMember is a flight crew or medical team assignment
type CrewMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// CabinConfiguration is the static capacity of a mission's cabin. It is
// informational only and never enforced against the patient count.
type CabinConfiguration struct {
	ICUStations int `json:"icu_stations"`
	Stretchers  int `json:"stretchers"`
	Seats       int `json:"seats"`
}

// Mission is a single air evacuation operation
type Mission struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Type               MissionType        `json:"type"`
	Origin             string             `json:"origin"`
	Destination        string             `json:"destination"`
	AlternateAirport   string             `json:"alternate_airport,omitempty"`
	ETD                time.Time          `json:"etd"`
	ETA                time.Time          `json:"eta"`
	Status             MissionStatus      `json:"status"`
	Aircraft           Aircraft           `json:"aircraft"`
	Commander          string             `json:"commander"`
	Crew               []CrewMember       `json:"crew"`
	MedicalTeam        []CrewMember       `json:"medical_team"`
	Patients           []Patient          `json:"patients"`
	Logs               []MissionLog       `json:"logs"`
	CabinConfiguration CabinConfiguration `json:"cabin_configuration"`
}

// User is a console account
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// DashboardStats is the headline figure set on the dashboard
type DashboardStats struct {
	ActiveMissions    int `json:"active_missions"`
	CompletedToday    int `json:"completed_today"`
	UpcomingMissions  int `json:"upcoming_missions"`
	PatientsInTransit int `json:"patients_in_transit"`
}
