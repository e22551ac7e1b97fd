package fixtures

import (
	"fmt"
)

// Validate checks dataset integrity: every enum value is inside its closed
// set, ids are unique, and the append-only mission log and vital sign lists
// are strictly ascending by timestamp. A failure here is a fatal
// configuration error; the dataset never changes after startup, so the
// check runs once.
//
// Aircraft snapshots are deliberately not cross-checked between missions:
// the same tail number may carry divergent state on different missions.
func (s *Store) Validate() error {
	missionIDs := make(map[string]bool)
	patientIDs := make(map[string]bool)

	for _, m := range s.missions {
		if missionIDs[m.ID] {
			return fmt.Errorf("duplicate mission id %s", m.ID)
		}
		missionIDs[m.ID] = true

		if !m.Status.Valid() {
			return fmt.Errorf("mission %s: invalid status %q", m.ID, m.Status)
		}
		if !m.Type.Valid() {
			return fmt.Errorf("mission %s: invalid type %q", m.ID, m.Type)
		}
		if !m.Aircraft.Status.Valid() {
			return fmt.Errorf("mission %s: invalid aircraft status %q", m.ID, m.Aircraft.Status)
		}

		for i := 1; i < len(m.Logs); i++ {
			if !m.Logs[i].Time.After(m.Logs[i-1].Time) {
				return fmt.Errorf("mission %s: log %s is not after log %s", m.ID, m.Logs[i].ID, m.Logs[i-1].ID)
			}
		}
		for _, l := range m.Logs {
			if !l.Type.Valid() {
				return fmt.Errorf("mission %s: log %s has invalid type %q", m.ID, l.ID, l.Type)
			}
		}

		for _, p := range m.Patients {
			if patientIDs[p.ID] {
				return fmt.Errorf("duplicate patient id %s", p.ID)
			}
			patientIDs[p.ID] = true

			if !p.Severity.Valid() {
				return fmt.Errorf("patient %s: invalid severity %q", p.ID, p.Severity)
			}
			if !p.Status.Valid() {
				return fmt.Errorf("patient %s: invalid status %q", p.ID, p.Status)
			}
			for i := 1; i < len(p.VitalSigns); i++ {
				if !p.VitalSigns[i].Timestamp.After(p.VitalSigns[i-1].Timestamp) {
					return fmt.Errorf("patient %s: vital sign %d is not after its predecessor", p.ID, i)
				}
			}
		}
	}

	for _, a := range s.aircraft {
		if !a.Status.Valid() {
			return fmt.Errorf("aircraft %s: invalid status %q", a.ID, a.Status)
		}
	}

	for _, e := range s.equipment {
		if !e.Type.Valid() {
			return fmt.Errorf("equipment %s: invalid type %q", e.ID, e.Type)
		}
		if !e.Status.Valid() {
			return fmt.Errorf("equipment %s: invalid status %q", e.ID, e.Status)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	userIDs := make(map[string]bool)
	emails := make(map[string]bool)
	for _, u := range s.users {
		if userIDs[u.ID] {
			return fmt.Errorf("duplicate user id %s", u.ID)
		}
		userIDs[u.ID] = true
		if emails[u.Email] {
			return fmt.Errorf("duplicate user email %s", u.Email)
		}
		emails[u.Email] = true
		if !u.Role.Valid() {
			return fmt.Errorf("user %s: invalid role %q", u.ID, u.Role)
		}
	}

	return nil
}
