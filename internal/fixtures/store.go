// Package fixtures holds the process-lifetime dataset the console serves.
// There is no backing database; missions, aircraft and equipment are fixed
// at startup and only the user list can change, in memory, until the
// process exits.
package fixtures

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/airmedops/medevac-console/internal/types"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// PatientRecord is a patient together with its owning mission. Patients are
// embedded in missions and have no standalone identity, so the flattened
// view carries the mission along.
type PatientRecord struct {
	types.Patient
	MissionID   string `json:"mission_id"`
	MissionName string `json:"mission_name"`
}

// Store is the in-memory data source for every view. Missions, aircraft and
// equipment are immutable after construction; the user list is guarded for
// concurrent request handling.
type Store struct {
	missions  []types.Mission
	aircraft  []types.Aircraft
	equipment []types.Equipment

	mu    sync.RWMutex
	users []types.User
}

// New creates a store loaded with the standard dataset
func New() *Store {
	aircraft := defaultAircraft()
	return &Store{
		missions:  defaultMissions(aircraft),
		aircraft:  aircraft,
		equipment: defaultEquipment(),
		users:     defaultUsers(),
	}
}

// NewWithData creates a store over caller-supplied records, used by tests
func NewWithData(missions []types.Mission, aircraft []types.Aircraft, equipment []types.Equipment, users []types.User) *Store {
	return &Store{
		missions:  missions,
		aircraft:  aircraft,
		equipment: equipment,
		users:     users,
	}
}

// Missions returns all missions
func (s *Store) Missions() []types.Mission {
	out := make([]types.Mission, len(s.missions))
	copy(out, s.missions)
	return out
}

// MissionByID returns a single mission or ErrNotFound
func (s *Store) MissionByID(id string) (types.Mission, error) {
	for _, m := range s.missions {
		if m.ID == id {
			return m, nil
		}
	}
	return types.Mission{}, fmt.Errorf("mission %s: %w", id, ErrNotFound)
}

// Patients returns every patient across all missions, each tagged with its
// owning mission
func (s *Store) Patients() []PatientRecord {
	var out []PatientRecord
	for _, m := range s.missions {
		for _, p := range m.Patients {
			out = append(out, PatientRecord{Patient: p, MissionID: m.ID, MissionName: m.Name})
		}
	}
	return out
}

// PatientByID returns a single patient record or ErrNotFound
func (s *Store) PatientByID(id string) (PatientRecord, error) {
	for _, m := range s.missions {
		for _, p := range m.Patients {
			if p.ID == id {
				return PatientRecord{Patient: p, MissionID: m.ID, MissionName: m.Name}, nil
			}
		}
	}
	return PatientRecord{}, fmt.Errorf("patient %s: %w", id, ErrNotFound)
}

// Aircraft returns the aircraft roster
func (s *Store) Aircraft() []types.Aircraft {
	out := make([]types.Aircraft, len(s.aircraft))
	copy(out, s.aircraft)
	return out
}

// Equipment returns the equipment inventory
func (s *Store) Equipment() []types.Equipment {
	out := make([]types.Equipment, len(s.equipment))
	copy(out, s.equipment)
	return out
}

// Users returns the current user list
func (s *Store) Users() []types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.User, len(s.users))
	copy(out, s.users)
	return out
}

// UserByEmail finds a user by email or returns ErrNotFound
func (s *Store) UserByEmail(email string) (types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return types.User{}, fmt.Errorf("user %s: %w", email, ErrNotFound)
}

// AddUser appends a new user with a generated id. The addition lives only
// in memory and is lost on restart.
func (s *Store) AddUser(name, email string, role types.UserRole) (types.User, error) {
	if name == "" || email == "" {
		return types.User{}, fmt.Errorf("name and email are required")
	}
	if !role.Valid() {
		return types.User{}, fmt.Errorf("invalid user role: %s", role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return types.User{}, fmt.Errorf("user with email %s already exists", email)
		}
	}

	user := types.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  role,
	}
	s.users = append(s.users, user)
	return user, nil
}

// DeleteUser removes a user by id or returns ErrNotFound
func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", id, ErrNotFound)
}
