// Package auth maps user roles to the console surfaces they may reach and
// performs login. Authorization is a pure lookup against a static
// capability registry; there is nothing dynamic to administer.
package auth

import (
	"errors"

	"github.com/airmedops/medevac-console/internal/types"
)

// ErrInvalidCredentials is returned for any failed login. The reason is
// deliberately generic.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Capability is a navigable console surface
type Capability string

const (
	CapDashboard Capability = "dashboard"
	CapMissions  Capability = "missions"
	CapPatients  Capability = "patients"
	CapMonitor   Capability = "monitor"
	CapEquipment Capability = "equipment"
	CapReports   Capability = "reports"
	CapUsers     Capability = "users"
)

// MenuItem is one navigation entry
type MenuItem struct {
	Label      string     `json:"label"`
	Path       string     `json:"path"`
	Capability Capability `json:"capability"`
}

// menu is the full navigation surface in display order
var menu = []MenuItem{
	{Label: "Dashboard", Path: "/", Capability: CapDashboard},
	{Label: "Missions", Path: "/missions", Capability: CapMissions},
	{Label: "Patients", Path: "/patients", Capability: CapPatients},
	{Label: "In-Flight Monitor", Path: "/monitor", Capability: CapMonitor},
	{Label: "Aircraft & Equipment", Path: "/equipment", Capability: CapEquipment},
	{Label: "Reports", Path: "/reports", Capability: CapReports},
	{Label: "User Management", Path: "/users", Capability: CapUsers},
}

// registry maps each role to the capabilities it holds
var registry = map[types.UserRole]map[Capability]bool{
	types.RoleMissionCommander: caps(CapDashboard, CapMissions, CapPatients, CapMonitor, CapEquipment, CapReports),
	types.RoleFlightCrew:       caps(CapDashboard, CapMissions, CapMonitor, CapEquipment),
	types.RoleMedicalTeamLeader: caps(CapDashboard, CapMissions, CapPatients, CapMonitor),
	types.RoleMedicalStaff:      caps(CapDashboard, CapMissions, CapPatients, CapMonitor),
	types.RoleAdmin:             caps(CapDashboard, CapMissions, CapPatients, CapEquipment, CapReports, CapUsers),
}

func caps(list ...Capability) map[Capability]bool {
	m := make(map[Capability]bool, len(list))
	for _, c := range list {
		m[c] = true
	}
	return m
}

// Allowed reports whether the role holds the capability. Roles outside the
// closed set hold nothing.
func Allowed(role types.UserRole, capability Capability) bool {
	return registry[role][capability]
}

// VisibleMenu returns the navigation entries the role can see, in display
// order
func VisibleMenu(role types.UserRole) []MenuItem {
	var visible []MenuItem
	for _, item := range menu {
		if Allowed(role, item.Capability) {
			visible = append(visible, item)
		}
	}
	return visible
}

// UserFinder locates accounts for login
type UserFinder interface {
	UserByEmail(email string) (types.User, error)
}

// Login authenticates by email lookup alone. The password is accepted but
// never checked against anything; an unknown email fails with the generic
// credentials error.
func Login(users UserFinder, email, password string) (types.User, error) {
	_ = password

	user, err := users.UserByEmail(email)
	if err != nil {
		return types.User{}, ErrInvalidCredentials
	}
	return user, nil
}
