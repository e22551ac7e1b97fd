package fixtures

import (
	"time"

	"github.com/airmedops/medevac-console/internal/types"
)

// The dataset below is the console's entire data source. It is constructed
// once at process start and, apart from the user list, never changes for
// the lifetime of the process.

func defaultAircraft() []types.Aircraft {
	return []types.Aircraft{
		{
			ID:                  "a1",
			TailNumber:          "A-400-001",
			Status:              types.AircraftOnMission,
			FlightHours:         2340,
			NextMaintenanceDate: "2024-12-15",
		},
		{
			ID:                  "a2",
			TailNumber:          "A-400-002",
			Status:              types.AircraftReady,
			FlightHours:         1890,
			NextMaintenanceDate: "2024-11-30",
		},
		{
			ID:                  "a3",
			TailNumber:          "A-400-003",
			Status:              types.AircraftMaintenance,
			FlightHours:         3120,
			NextMaintenanceDate: "2024-11-20",
		},
	}
}

func defaultEquipment() []types.Equipment {
	return []types.Equipment{
		{ID: "eq1", Name: "Ventilator #1", Type: types.EquipmentVentilator, Status: types.EquipmentOK, LastCheckDate: "2024-11-15"},
		{ID: "eq2", Name: "Ventilator #2", Type: types.EquipmentVentilator, Status: types.EquipmentOK, LastCheckDate: "2024-11-15"},
		{ID: "eq3", Name: "Cardiac Monitor #1", Type: types.EquipmentMonitor, Status: types.EquipmentOK, LastCheckDate: "2024-11-16"},
		{ID: "eq4", Name: "Cardiac Monitor #2", Type: types.EquipmentMonitor, Status: types.EquipmentNeedsCheck, LastCheckDate: "2024-11-10"},
		{ID: "eq5", Name: "Defibrillator #1", Type: types.EquipmentDefibrillator, Status: types.EquipmentOK, LastCheckDate: "2024-11-17"},
		{ID: "eq6", Name: "Defibrillator #2", Type: types.EquipmentDefibrillator, Status: types.EquipmentOK, LastCheckDate: "2024-11-17"},
		{ID: "eq7", Name: "Infusion Pump #1", Type: types.EquipmentPump, Status: types.EquipmentOK, LastCheckDate: "2024-11-16"},
		{ID: "eq8", Name: "Oxygen Supply #1", Type: types.EquipmentOxygen, Status: types.EquipmentOK, LastCheckDate: "2024-11-18"},
		{ID: "eq9", Name: "Oxygen Supply #2", Type: types.EquipmentOxygen, Status: types.EquipmentFaulty, LastCheckDate: "2024-11-12"},
	}
}

func nightingalePatients() []types.Patient {
	return []types.Patient{
		{
			ID:            "p1",
			Name:          "John Anderson",
			Age:           45,
			Gender:        "M",
			Diagnosis:     "Severe trauma, multiple fractures",
			Severity:      types.SeverityCritical,
			CabinPosition: "ICU-1",
			Status:        types.PatientStable,
			Notes:         "Intubated, on ventilator support",
			VitalSigns: []types.VitalSign{
				{
					Timestamp:              time.Date(2024, 11, 18, 8, 0, 0, 0, time.UTC),
					HeartRate:              95,
					BloodPressureSystolic:  120,
					BloodPressureDiastolic: 80,
					OxygenSaturation:       95,
					Temperature:            37.2,
					RespiratoryRate:        16,
				},
				{
					Timestamp:              time.Date(2024, 11, 18, 9, 0, 0, 0, time.UTC),
					HeartRate:              92,
					BloodPressureSystolic:  118,
					BloodPressureDiastolic: 78,
					OxygenSaturation:       96,
					Temperature:            37.1,
					RespiratoryRate:        16,
				},
			},
			Interventions: []types.MedicalIntervention{
				{
					ID:          "i1",
					Timestamp:   time.Date(2024, 11, 18, 7, 30, 0, 0, time.UTC),
					Type:        "Intubation",
					Description: "Emergency intubation performed",
					PerformedBy: "Dr. Sarah Mitchell",
				},
			},
		},
		{
			ID:            "p2",
			Name:          "Maria Santos",
			Age:           32,
			Gender:        "F",
			Diagnosis:     "Gunshot wound, abdomen",
			Severity:      types.SeverityCritical,
			CabinPosition: "ICU-2",
			Status:        types.PatientStable,
			Notes:         "Post-operative, requires close monitoring",
			VitalSigns: []types.VitalSign{
				{
					Timestamp:              time.Date(2024, 11, 18, 8, 0, 0, 0, time.UTC),
					HeartRate:              88,
					BloodPressureSystolic:  110,
					BloodPressureDiastolic: 70,
					OxygenSaturation:       97,
					Temperature:            36.8,
					RespiratoryRate:        14,
				},
			},
			Interventions: []types.MedicalIntervention{
				{
					ID:          "i2",
					Timestamp:   time.Date(2024, 11, 18, 8, 15, 0, 0, time.UTC),
					Type:        "Fluid Resuscitation",
					Description: "IV fluids administered",
					PerformedBy: "Nurse James Wilson",
				},
			},
		},
		{
			ID:            "p3",
			Name:          "Robert Chen",
			Age:           28,
			Gender:        "M",
			Diagnosis:     "Blast injury, lower extremities",
			Severity:      types.SeverityModerate,
			CabinPosition: "STRETCHER-1",
			Status:        types.PatientStable,
			Notes:         "Pain management in progress",
			VitalSigns: []types.VitalSign{
				{
					Timestamp:              time.Date(2024, 11, 18, 8, 0, 0, 0, time.UTC),
					HeartRate:              75,
					BloodPressureSystolic:  125,
					BloodPressureDiastolic: 82,
					OxygenSaturation:       98,
					Temperature:            36.9,
					RespiratoryRate:        14,
				},
			},
			Interventions: []types.MedicalIntervention{},
		},
		{
			ID:            "p4",
			Name:          "Emma Davis",
			Age:           40,
			Gender:        "F",
			Diagnosis:     "Concussion, minor lacerations",
			Severity:      types.SeverityMild,
			CabinPosition: "SEAT-A1",
			Status:        types.PatientStable,
			Notes:         "Ambulatory patient, monitoring for concussion symptoms",
			VitalSigns: []types.VitalSign{
				{
					Timestamp:              time.Date(2024, 11, 18, 8, 0, 0, 0, time.UTC),
					HeartRate:              72,
					BloodPressureSystolic:  118,
					BloodPressureDiastolic: 76,
					OxygenSaturation:       99,
					Temperature:            36.7,
					RespiratoryRate:        12,
				},
			},
			Interventions: []types.MedicalIntervention{},
		},
	}
}

func defaultMissions(aircraft []types.Aircraft) []types.Mission {
	return []types.Mission{
		{
			ID:               "M-2024-001",
			Name:             "Operation Nightingale",
			Type:             types.MissionMassCasualty,
			Origin:           "Forward Operating Base Alpha",
			Destination:      "Ramstein Air Base Hospital",
			AlternateAirport: "Landstuhl Regional Medical Center",
			ETD:              time.Date(2024, 11, 18, 6, 0, 0, 0, time.UTC),
			ETA:              time.Date(2024, 11, 18, 10, 30, 0, 0, time.UTC),
			Status:           types.MissionAirborne,
			Aircraft:         aircraft[0],
			Commander:        "Col. Michael Stevens",
			Crew: []types.CrewMember{
				{ID: "c1", Name: "Capt. James Rodriguez", Role: "Pilot"},
				{ID: "c2", Name: "Lt. Sarah Johnson", Role: "Co-Pilot"},
				{ID: "c3", Name: "SSgt. Mark Thompson", Role: "Loadmaster"},
			},
			MedicalTeam: []types.CrewMember{
				{ID: "m1", Name: "Dr. Sarah Mitchell", Role: "Medical Team Leader"},
				{ID: "m2", Name: "Nurse James Wilson", Role: "Critical Care Nurse"},
				{ID: "m3", Name: "Paramedic Lisa Brown", Role: "Paramedic"},
				{ID: "m4", Name: "Paramedic David Lee", Role: "Paramedic"},
			},
			Patients: nightingalePatients(),
			Logs: []types.MissionLog{
				{
					ID:        "l1",
					Time:      time.Date(2024, 11, 18, 5, 30, 0, 0, time.UTC),
					Message:   "Mission request received from FOB Alpha",
					Type:      types.LogInfo,
					CreatedBy: "Operations Center",
				},
				{
					ID:        "l2",
					Time:      time.Date(2024, 11, 18, 5, 45, 0, 0, time.UTC),
					Message:   "Mission approved by Mission Commander",
					Type:      types.LogInfo,
					CreatedBy: "Col. Michael Stevens",
				},
				{
					ID:        "l3",
					Time:      time.Date(2024, 11, 18, 6, 0, 0, 0, time.UTC),
					Message:   "Aircraft departed FOB Alpha",
					Type:      types.LogInfo,
					CreatedBy: "Capt. James Rodriguez",
				},
				{
					ID:        "l4",
					Time:      time.Date(2024, 11, 18, 7, 30, 0, 0, time.UTC),
					Message:   "Patient P1 intubated due to respiratory distress",
					Type:      types.LogWarning,
					CreatedBy: "Dr. Sarah Mitchell",
				},
				{
					ID:        "l5",
					Time:      time.Date(2024, 11, 18, 8, 15, 0, 0, time.UTC),
					Message:   "All patients stable, vitals within normal limits",
					Type:      types.LogInfo,
					CreatedBy: "Nurse James Wilson",
				},
			},
			CabinConfiguration: types.CabinConfiguration{ICUStations: 4, Stretchers: 8, Seats: 20},
		},
		{
			ID:          "M-2024-002",
			Name:        "Operation Guardian Angel",
			Type:        types.MissionICU,
			Origin:      "Baghdad International Airport",
			Destination: "Landstuhl Regional Medical Center",
			ETD:         time.Date(2024, 11, 18, 14, 0, 0, 0, time.UTC),
			ETA:         time.Date(2024, 11, 18, 18, 30, 0, 0, time.UTC),
			Status:      types.MissionApproved,
			Aircraft:    aircraft[1],
			Commander:   "Col. Michael Stevens",
			Crew: []types.CrewMember{
				{ID: "c4", Name: "Maj. Robert Anderson", Role: "Pilot"},
				{ID: "c5", Name: "Capt. Emily White", Role: "Co-Pilot"},
				{ID: "c6", Name: "TSgt. John Martinez", Role: "Loadmaster"},
			},
			MedicalTeam: []types.CrewMember{
				{ID: "m5", Name: "Dr. Michael Chen", Role: "Medical Team Leader"},
				{ID: "m6", Name: "Nurse Patricia Garcia", Role: "Critical Care Nurse"},
			},
			Patients: []types.Patient{},
			Logs: []types.MissionLog{
				{
					ID:        "l6",
					Time:      time.Date(2024, 11, 18, 12, 0, 0, 0, time.UTC),
					Message:   "Mission request received",
					Type:      types.LogInfo,
					CreatedBy: "Operations Center",
				},
				{
					ID:        "l7",
					Time:      time.Date(2024, 11, 18, 12, 30, 0, 0, time.UTC),
					Message:   "Mission approved, aircraft and crew assigned",
					Type:      types.LogInfo,
					CreatedBy: "Col. Michael Stevens",
				},
			},
			CabinConfiguration: types.CabinConfiguration{ICUStations: 6, Stretchers: 4, Seats: 10},
		},
		{
			ID:          "M-2024-003",
			Name:        "Operation Mercy Flight",
			Type:        types.MissionStrategic,
			Origin:      "Kandahar Airfield",
			Destination: "Walter Reed Medical Center",
			ETD:         time.Date(2024, 11, 17, 8, 0, 0, 0, time.UTC),
			ETA:         time.Date(2024, 11, 17, 16, 0, 0, 0, time.UTC),
			Status:      types.MissionCompleted,
			Aircraft:    aircraft[0],
			Commander:   "Col. Michael Stevens",
			Crew: []types.CrewMember{
				{ID: "c1", Name: "Capt. James Rodriguez", Role: "Pilot"},
				{ID: "c2", Name: "Lt. Sarah Johnson", Role: "Co-Pilot"},
				{ID: "c3", Name: "SSgt. Mark Thompson", Role: "Loadmaster"},
			},
			MedicalTeam: []types.CrewMember{
				{ID: "m1", Name: "Dr. Sarah Mitchell", Role: "Medical Team Leader"},
				{ID: "m2", Name: "Nurse James Wilson", Role: "Critical Care Nurse"},
			},
			Patients: []types.Patient{
				{
					ID:            "p5",
					Name:          "Thomas Wright",
					Age:           35,
					Gender:        "M",
					Diagnosis:     "Spinal injury",
					Severity:      types.SeverityCritical,
					CabinPosition: "ICU-1",
					Status:        types.PatientDisembarked,
					Notes:         "Successfully transferred to Walter Reed",
					Outcome:       "Transferred to ICU, stable condition",
					VitalSigns:    []types.VitalSign{},
					Interventions: []types.MedicalIntervention{},
				},
			},
			Logs: []types.MissionLog{
				{
					ID:        "l8",
					Time:      time.Date(2024, 11, 17, 8, 0, 0, 0, time.UTC),
					Message:   "Mission departed Kandahar",
					Type:      types.LogInfo,
					CreatedBy: "Capt. James Rodriguez",
				},
				{
					ID:        "l9",
					Time:      time.Date(2024, 11, 17, 16, 0, 0, 0, time.UTC),
					Message:   "Mission completed successfully",
					Type:      types.LogInfo,
					CreatedBy: "Operations Center",
				},
			},
			CabinConfiguration: types.CabinConfiguration{ICUStations: 2, Stretchers: 6, Seats: 15},
		},
	}
}

func defaultUsers() []types.User {
	return []types.User{
		{ID: "u1", Name: "Col. Michael Stevens", Email: "stevens@airmedevac.mil", Role: types.RoleMissionCommander},
		{ID: "u2", Name: "Capt. James Rodriguez", Email: "rodriguez@airmedevac.mil", Role: types.RoleFlightCrew},
		{ID: "u3", Name: "Dr. Sarah Mitchell", Email: "mitchell@airmedevac.mil", Role: types.RoleMedicalTeamLeader},
		{ID: "u4", Name: "Nurse James Wilson", Email: "wilson@airmedevac.mil", Role: types.RoleMedicalStaff},
		{ID: "u5", Name: "Admin User", Email: "admin@airmedevac.mil", Role: types.RoleAdmin},
	}
}
