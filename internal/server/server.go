// Package server exposes the console over an HTTP JSON API. Handlers read
// from the fixture store, call the derivation engine, and never mutate
// anything except the user list and the session slot.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/airmedops/medevac-console/internal/auth"
	"github.com/airmedops/medevac-console/internal/csvexport"
	"github.com/airmedops/medevac-console/internal/derive"
	"github.com/airmedops/medevac-console/internal/fixtures"
	"github.com/airmedops/medevac-console/internal/metrics"
	"github.com/airmedops/medevac-console/internal/session"
	"github.com/airmedops/medevac-console/internal/types"
)

type contextKey string

const userKey contextKey = "user"

// Placeholder flight telemetry for the live monitor. There is no telemetry
// feed; these are the fixed figures the monitor has always shown.
const (
	monitorAltitudeFt    = 35000
	monitorGroundSpeedKt = 450
)

// Server serves the console API
type Server struct {
	store    *fixtures.Store
	sessions session.Store
	metrics  *metrics.Metrics
	mux      *http.ServeMux

	// now is swapped out in tests to pin the calendar day
	now func() time.Time
}

// New creates a server over the given store and session backend
func New(store *fixtures.Store, sessions session.Store, m *metrics.Metrics) *Server {
	s := &Server{
		store:    store,
		sessions: sessions,
		metrics:  m,
		mux:      http.NewServeMux(),
		now:      time.Now,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/login", s.handleLogin)
	s.mux.Handle("POST /api/logout", s.authed("", s.handleLogout))
	s.mux.Handle("GET /api/menu", s.authed("", s.handleMenu))

	s.mux.Handle("GET /api/dashboard", s.authed(auth.CapDashboard, s.handleDashboard))

	s.mux.Handle("GET /api/missions", s.authed(auth.CapMissions, s.handleMissions))
	s.mux.Handle("GET /api/missions/export", s.authed(auth.CapMissions, s.handleMissionsExport))
	s.mux.Handle("GET /api/missions/{id}", s.authed(auth.CapMissions, s.handleMissionDetail))

	s.mux.Handle("GET /api/patients", s.authed(auth.CapPatients, s.handlePatients))
	s.mux.Handle("GET /api/patients/export", s.authed(auth.CapPatients, s.handlePatientsExport))
	s.mux.Handle("GET /api/patients/{id}", s.authed(auth.CapPatients, s.handlePatientDetail))

	s.mux.Handle("GET /api/equipment", s.authed(auth.CapEquipment, s.handleEquipment))
	s.mux.Handle("GET /api/monitor", s.authed(auth.CapMonitor, s.handleMonitor))

	s.mux.Handle("GET /api/reports", s.authed(auth.CapReports, s.handleReports))
	s.mux.Handle("GET /api/reports/missions.csv", s.authed(auth.CapReports, s.handleMissionsReportCSV))
	s.mux.Handle("GET /api/reports/patients.csv", s.authed(auth.CapReports, s.handlePatientsReportCSV))

	s.mux.Handle("GET /api/users", s.authed(auth.CapUsers, s.handleUsers))
	s.mux.Handle("POST /api/users", s.authed(auth.CapUsers, s.handleAddUser))
	s.mux.Handle("DELETE /api/users/{id}", s.authed(auth.CapUsers, s.handleDeleteUser))
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves until the context is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Console API listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	}
}

// authed wraps a handler with session and capability checks. An empty
// capability requires only a valid session.
func (s *Server) authed(capability auth.Capability, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementRequests(r.URL.Path)

		user := s.sessionUser(r)
		if user == nil {
			s.metrics.IncrementUnauthorized()
			writeError(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		if capability != "" && !auth.Allowed(user.Role, capability) {
			s.metrics.IncrementForbidden()
			writeError(w, http.StatusForbidden, "insufficient role")
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

func (s *Server) sessionUser(r *http.Request) *types.User {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil
	}

	user, err := s.sessions.Load(r.Context(), token)
	if err != nil {
		log.Printf("Warning: Failed to load session: %v", err)
		return nil
	}
	return user
}

func currentUser(r *http.Request) *types.User {
	user, _ := r.Context().Value(userKey).(*types.User)
	return user
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Warning: Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// --- auth ---

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  types.User `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.metrics.IncrementRequests(r.URL.Path)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := auth.Login(s.store, req.Email, req.Password)
	if err != nil {
		s.metrics.IncrementLoginFailures()
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token := session.NewToken()
	if err := s.sessions.Save(r.Context(), token, user); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	s.metrics.IncrementLoginSuccesses()
	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		if err := s.sessions.Delete(r.Context(), token); err != nil {
			log.Printf("Warning: Failed to delete session: %v", err)
		}
	}
	s.metrics.IncrementLogouts()
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": user,
		"menu": auth.VisibleMenu(user.Role),
	})
}

// --- dashboard ---

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	missions := s.store.Missions()
	stats := derive.DashboardStats(missions, s.now())

	// The dashboard lists in-progress missions under the counters
	var active []missionSummary
	for _, m := range missions {
		switch m.Status {
		case types.MissionApproved, types.MissionBoarding, types.MissionAirborne, types.MissionLanded:
			active = append(active, summarize(m))
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stats":           stats,
		"active_missions": active,
	})
}

// missionSummary decorates a mission with its display tokens
type missionSummary struct {
	types.Mission
	TypeLabel   string `json:"type_label"`
	StatusColor string `json:"status_color"`
}

func summarize(m types.Mission) missionSummary {
	return missionSummary{
		Mission:     m,
		TypeLabel:   derive.MissionTypeLabel(m.Type),
		StatusColor: derive.StatusColor(string(m.Status)),
	}
}

// --- missions ---

func (s *Server) filteredMissions(r *http.Request) []types.Mission {
	statusFilter := r.URL.Query().Get("status")
	typeFilter := r.URL.Query().Get("type")

	var out []types.Mission
	for _, m := range s.store.Missions() {
		if statusFilter != "" && string(m.Status) != statusFilter {
			continue
		}
		if typeFilter != "" && string(m.Type) != typeFilter {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (s *Server) handleMissions(w http.ResponseWriter, r *http.Request) {
	missions := s.filteredMissions(r)

	summaries := make([]missionSummary, 0, len(missions))
	for _, m := range missions {
		summaries = append(summaries, summarize(m))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"missions": summaries})
}

func (s *Server) handleMissionDetail(w http.ResponseWriter, r *http.Request) {
	mission, err := s.store.MissionByID(r.PathValue("id"))
	if err != nil {
		s.metrics.IncrementNotFound()
		writeError(w, http.StatusNotFound, "mission not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mission":      summarize(mission),
		"status_steps": derive.StatusSteps(),
		"step_index":   derive.StatusStepIndex(mission.Status),
	})
}

// --- patients ---

type patientSummary struct {
	fixtures.PatientRecord
	SeverityColor string `json:"severity_color"`
}

func (s *Server) handlePatients(w http.ResponseWriter, r *http.Request) {
	severityFilter := r.URL.Query().Get("severity")

	var out []patientSummary
	for _, p := range s.store.Patients() {
		if severityFilter != "" && string(p.Severity) != severityFilter {
			continue
		}
		out = append(out, patientSummary{
			PatientRecord: p,
			SeverityColor: derive.SeverityColor(p.Severity),
		})
	}

	all := s.store.Patients()
	patients := make([]types.Patient, len(all))
	for i, p := range all {
		patients[i] = p.Patient
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"patients": out,
		"severity": derive.PatientsBySeverity(patients),
	})
}

func (s *Server) handlePatientDetail(w http.ResponseWriter, r *http.Request) {
	patient, err := s.store.PatientByID(r.PathValue("id"))
	if err != nil {
		s.metrics.IncrementNotFound()
		writeError(w, http.StatusNotFound, "patient not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"patient": patientSummary{
			PatientRecord: patient,
			SeverityColor: derive.SeverityColor(patient.Severity),
		},
	})
}

// --- equipment ---

func (s *Server) handleEquipment(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"aircraft":  s.store.Aircraft(),
		"equipment": s.store.Equipment(),
	})
}

// --- monitor ---

type flightView struct {
	missionSummary
	Telemetry telemetry                `json:"telemetry"`
	Severity  derive.SeverityBreakdown `json:"severity"`
}

type telemetry struct {
	AltitudeFt    int    `json:"altitude_ft"`
	GroundSpeedKt int    `json:"ground_speed_kt"`
	ETA           string `json:"eta"`
}

func (s *Server) handleMonitor(w http.ResponseWriter, r *http.Request) {
	active := derive.ActiveFlights(s.store.Missions())

	flights := make([]flightView, 0, len(active))
	for _, m := range active {
		flights = append(flights, flightView{
			missionSummary: summarize(m),
			Telemetry: telemetry{
				AltitudeFt:    monitorAltitudeFt,
				GroundSpeedKt: monitorGroundSpeedKt,
				ETA:           derive.FormatTime(m.ETA.Format(time.RFC3339)),
			},
			Severity: derive.PatientsBySeverity(m.Patients),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"active_flights": flights,
	})
}

// --- reports ---

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	missions := s.store.Missions()

	all := s.store.Patients()
	patients := make([]types.Patient, len(all))
	for i, p := range all {
		patients[i] = p.Patient
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"summary":              derive.Summarize(missions),
		"missions_by_type":     derive.MissionsByType(missions),
		"missions_by_status":   derive.MissionsByStatus(missions),
		"patients_by_severity": derive.PatientsBySeverity(patients),
	})
}

// httpSaver streams a CSV document as a browser download
type httpSaver struct {
	w     http.ResponseWriter
	saved bool
}

func (h *httpSaver) Save(filename, content string) error {
	h.w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	h.w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	h.saved = true
	_, err := h.w.Write([]byte(content))
	return err
}

func (s *Server) serveCSV(w http.ResponseWriter, rows []csvexport.Row, filename string) {
	saver := &httpSaver{w: w}
	if err := csvexport.Export(rows, filename, saver); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate export")
		return
	}
	if !saver.saved {
		// Empty dataset: nothing to download, matching the no-op export
		w.WriteHeader(http.StatusNoContent)
		return
	}
	s.metrics.IncrementExports()
}

func (s *Server) handleMissionsExport(w http.ResponseWriter, r *http.Request) {
	rows := csvexport.MissionExportRows(s.filteredMissions(r))
	s.serveCSV(w, rows, csvexport.MissionsExportFilename)
}

func (s *Server) handlePatientsExport(w http.ResponseWriter, r *http.Request) {
	severityFilter := r.URL.Query().Get("severity")

	var records []fixtures.PatientRecord
	for _, p := range s.store.Patients() {
		if severityFilter != "" && string(p.Severity) != severityFilter {
			continue
		}
		records = append(records, p)
	}

	rows := csvexport.PatientExportRows(records)
	s.serveCSV(w, rows, csvexport.PatientsExportFilename)
}

func (s *Server) handleMissionsReportCSV(w http.ResponseWriter, r *http.Request) {
	rows := csvexport.MissionReportRows(s.store.Missions())
	s.serveCSV(w, rows, csvexport.MissionsReportFilename)
}

func (s *Server) handlePatientsReportCSV(w http.ResponseWriter, r *http.Request) {
	all := s.store.Patients()
	patients := make([]types.Patient, len(all))
	for i, p := range all {
		patients[i] = p.Patient
	}

	rows := csvexport.PatientReportRows(patients)
	s.serveCSV(w, rows, csvexport.PatientsReportFilename)
}

// --- users ---

type userView struct {
	types.User
	RoleLabel string `json:"role_label"`
	RoleColor string `json:"role_color"`
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	users := s.store.Users()

	views := make([]userView, 0, len(users))
	byRole := make(map[string]int, len(types.Roles))
	for _, role := range types.Roles {
		byRole[string(role)] = 0
	}
	for _, u := range users {
		views = append(views, userView{
			User:      u,
			RoleLabel: u.Role.Label(),
			RoleColor: derive.RoleColor(u.Role),
		})
		byRole[string(u.Role)]++
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"users":   views,
		"by_role": byRole,
	})
}

type addUserRequest struct {
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Role  types.UserRole `json:"role"`
}

func (s *Server) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.store.AddUser(req.Name, req.Email, req.Role)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteUser(r.PathValue("id")); err != nil {
		s.metrics.IncrementNotFound()
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
