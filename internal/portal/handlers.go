package portal

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/caresuite/hms-portal/pkg/types"
)

func (s *Service) writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("Failed to encode response")
	}
}

func (s *Service) writeError(w http.ResponseWriter, statusCode int, err *types.PortalError) {
	s.writeJSON(w, statusCode, map[string]interface{}{"error": err})
}

// user resolves the authenticated user for the request. Handlers pass
// the result straight into the filter engine; a nil user yields empty
// collections there, but the auth middleware already rejects
// unauthenticated API requests.
func (s *Service) user(r *http.Request) *types.User {
	return claimsFromContext(r.Context()).User()
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"uptime":    time.Since(s.startTime).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) handleListPatients(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.FilterPatients(s.user(r), s.data.Patients))
}

// handleGetPatient serves a single patient record. Denied lookups are
// indistinguishable from missing records so the endpoint cannot be
// used as an existence oracle.
func (s *Service) handleGetPatient(w http.ResponseWriter, r *http.Request) {
	patientID := mux.Vars(r)["id"]
	user := s.user(r)

	if !s.engine.CanViewPatient(user, patientID) {
		s.writeError(w, http.StatusNotFound, types.NewNotFoundError(types.ErrCodeNotFound, "patient not found"))
		return
	}

	for _, p := range s.data.Patients {
		if p.ID == patientID {
			userID := ""
			if user != nil {
				userID = user.ID
			}
			s.logger.PHIAccess(r.Context(), userID, patientID, "read", "patient", true, nil)
			s.writeJSON(w, http.StatusOK, p)
			return
		}
	}

	s.writeError(w, http.StatusNotFound, types.NewNotFoundError(types.ErrCodeNotFound, "patient not found"))
}

func (s *Service) handleListEMRs(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.FilterEMRs(s.user(r), s.data.EMRRecords))
}

func (s *Service) handleListAppointments(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.FilterAppointments(s.user(r), s.data.Appointments))
}

func (s *Service) handleListLabOrders(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.FilterLabOrders(s.user(r), s.data.LabOrders))
}

func (s *Service) handleListLabResults(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.FilterLabResults(s.user(r), s.data.LabResults))
}

func (s *Service) handleListInpatients(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.FilterInpatients(s.user(r), s.data.Inpatients))
}

func (s *Service) handleListConsultations(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.FilterConsultations(s.user(r), s.data.Consultations))
}

func (s *Service) handleListRadiology(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.FilterRadiology(s.user(r), s.data.RadiologyStudies))
}

func (s *Service) handleListBilling(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.FilterBilling(s.user(r), s.data.BillingRecords))
}

func (s *Service) handleListEmergency(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.FilterEmergency(s.user(r), s.data.EmergencyCases))
}

func (s *Service) handleActivityFeed(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.FilterActivity(s.user(r), s.data.Activities))
}

func (s *Service) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dashboard.StatsForUser(s.user(r)))
}

func (s *Service) handleDashboardVisits(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dashboard.PatientVisitsForUser(s.user(r)))
}

func (s *Service) handleDashboardRevenue(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dashboard.RevenueForUser(s.user(r)))
}

func (s *Service) handleDashboardDepartments(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dashboard.DepartmentDistributionForUser(s.user(r)))
}

// handleAvailableDoctors lists doctors available today, or on the
// given day when the day query parameter is set. The department
// parameter narrows either form.
func (s *Service) handleAvailableDoctors(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	day := r.URL.Query().Get("day")

	var doctors []types.DoctorAvailability
	if day != "" {
		doctors = s.dashboard.AvailableDoctorsForDay(department, day)
	} else {
		doctors = s.dashboard.AvailableDoctorsToday(department)
	}

	s.writeJSON(w, http.StatusOK, doctors)
}
