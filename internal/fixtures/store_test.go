package fixtures

import (
	"errors"
	"testing"
	"time"

	"github.com/airmedops/medevac-console/internal/types"
)

func TestNew_DatasetShape(t *testing.T) {
	s := New()

	if got := len(s.Missions()); got != 3 {
		t.Errorf("mission count mismatch: got %d, want 3", got)
	}
	if got := len(s.Aircraft()); got != 3 {
		t.Errorf("aircraft count mismatch: got %d, want 3", got)
	}
	if got := len(s.Equipment()); got != 9 {
		t.Errorf("equipment count mismatch: got %d, want 9", got)
	}
	if got := len(s.Users()); got != 5 {
		t.Errorf("user count mismatch: got %d, want 5", got)
	}
	if got := len(s.Patients()); got != 5 {
		t.Errorf("patient count mismatch: got %d, want 5", got)
	}
}

func TestNew_Validates(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Fatalf("default dataset should validate: %v", err)
	}
}

func TestMissionByID(t *testing.T) {
	s := New()

	m, err := s.MissionByID("M-2024-001")
	if err != nil {
		t.Fatalf("MissionByID failed: %v", err)
	}
	if m.Name != "Operation Nightingale" {
		t.Errorf("Name mismatch: got %q, want %q", m.Name, "Operation Nightingale")
	}
	if len(m.Patients) != 4 {
		t.Errorf("patient count mismatch: got %d, want 4", len(m.Patients))
	}

	_, err = s.MissionByID("M-9999-999")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPatients_CarryOwningMission(t *testing.T) {
	s := New()

	p, err := s.PatientByID("p5")
	if err != nil {
		t.Fatalf("PatientByID failed: %v", err)
	}
	if p.MissionID != "M-2024-003" {
		t.Errorf("MissionID mismatch: got %q, want %q", p.MissionID, "M-2024-003")
	}
	if p.MissionName != "Operation Mercy Flight" {
		t.Errorf("MissionName mismatch: got %q, want %q", p.MissionName, "Operation Mercy Flight")
	}
	if p.Outcome == "" {
		t.Error("disembarked patient should carry an outcome")
	}

	_, err = s.PatientByID("p99")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUserByEmail(t *testing.T) {
	s := New()

	u, err := s.UserByEmail("admin@airmedevac.mil")
	if err != nil {
		t.Fatalf("UserByEmail failed: %v", err)
	}
	if u.Role != types.RoleAdmin {
		t.Errorf("Role mismatch: got %q, want %q", u.Role, types.RoleAdmin)
	}

	_, err = s.UserByEmail("nobody@airmedevac.mil")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestAddUser(t *testing.T) {
	s := New()

	u, err := s.AddUser("Maj. Dana Cole", "cole@airmedevac.mil", types.RoleFlightCrew)
	if err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}
	if u.ID == "" {
		t.Error("AddUser should assign an id")
	}
	if got := len(s.Users()); got != 6 {
		t.Errorf("user count mismatch: got %d, want 6", got)
	}

	found, err := s.UserByEmail("cole@airmedevac.mil")
	if err != nil {
		t.Fatalf("added user not found: %v", err)
	}
	if found.ID != u.ID {
		t.Errorf("ID mismatch: got %q, want %q", found.ID, u.ID)
	}
}

func TestAddUser_Rejections(t *testing.T) {
	s := New()

	if _, err := s.AddUser("", "x@airmedevac.mil", types.RoleAdmin); err == nil {
		t.Error("AddUser should reject empty name")
	}
	if _, err := s.AddUser("X", "x@airmedevac.mil", "SUPERUSER"); err == nil {
		t.Error("AddUser should reject an invalid role")
	}
	if _, err := s.AddUser("Duplicate", "admin@airmedevac.mil", types.RoleAdmin); err == nil {
		t.Error("AddUser should reject a duplicate email")
	}
}

func TestDeleteUser(t *testing.T) {
	s := New()

	if err := s.DeleteUser("u2"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if got := len(s.Users()); got != 4 {
		t.Errorf("user count mismatch: got %d, want 4", got)
	}
	if _, err := s.UserByEmail("rodriguez@airmedevac.mil"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted user should not be found, got %v", err)
	}

	if err := s.DeleteUser("u2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestValidate_RejectsBadEnum(t *testing.T) {
	missions := []types.Mission{
		{ID: "M-1", Status: "HOVERING", Type: types.MissionTactical},
	}
	s := NewWithData(missions, nil, nil, nil)

	if err := s.Validate(); err == nil {
		t.Error("Validate should reject a status outside the closed set")
	}
}

func TestValidate_RejectsOutOfOrderLogs(t *testing.T) {
	base := time.Date(2024, 11, 18, 6, 0, 0, 0, time.UTC)
	missions := []types.Mission{
		{
			ID:     "M-1",
			Status: types.MissionPlanning,
			Type:   types.MissionTactical,
			Aircraft: types.Aircraft{
				ID: "a1", Status: types.AircraftReady,
			},
			Logs: []types.MissionLog{
				{ID: "l1", Time: base, Type: types.LogInfo},
				{ID: "l2", Time: base.Add(-time.Minute), Type: types.LogInfo},
			},
		},
	}
	s := NewWithData(missions, nil, nil, nil)

	if err := s.Validate(); err == nil {
		t.Error("Validate should reject out-of-order mission logs")
	}
}

func TestValidate_RejectsOutOfOrderVitals(t *testing.T) {
	base := time.Date(2024, 11, 18, 8, 0, 0, 0, time.UTC)
	missions := []types.Mission{
		{
			ID:     "M-1",
			Status: types.MissionAirborne,
			Type:   types.MissionICU,
			Aircraft: types.Aircraft{
				ID: "a1", Status: types.AircraftOnMission,
			},
			Patients: []types.Patient{
				{
					ID:       "p1",
					Severity: types.SeverityCritical,
					Status:   types.PatientOnboard,
					VitalSigns: []types.VitalSign{
						{Timestamp: base},
						{Timestamp: base}, // equal timestamps are not strictly ascending
					},
				},
			},
		},
	}
	s := NewWithData(missions, nil, nil, nil)

	if err := s.Validate(); err == nil {
		t.Error("Validate should reject non-ascending vital signs")
	}
}

func TestValidate_RejectsDuplicatePatientIDs(t *testing.T) {
	missions := []types.Mission{
		{
			ID: "M-1", Status: types.MissionAirborne, Type: types.MissionICU,
			Aircraft: types.Aircraft{ID: "a1", Status: types.AircraftOnMission},
			Patients: []types.Patient{
				{ID: "p1", Severity: types.SeverityMild, Status: types.PatientOnboard},
			},
		},
		{
			ID: "M-2", Status: types.MissionPlanning, Type: types.MissionICU,
			Aircraft: types.Aircraft{ID: "a2", Status: types.AircraftReady},
			Patients: []types.Patient{
				{ID: "p1", Severity: types.SeverityMild, Status: types.PatientOnboard},
			},
		},
	}
	s := NewWithData(missions, nil, nil, nil)

	if err := s.Validate(); err == nil {
		t.Error("Validate should reject a patient id appearing on two missions")
	}
}
