package dashboard

import (
	"time"

	"github.com/caresuite/hms-portal/internal/authz"
	"github.com/caresuite/hms-portal/internal/dataset"
	"github.com/caresuite/hms-portal/pkg/logger"
	"github.com/caresuite/hms-portal/pkg/types"
)

// Placeholder counters standing in for live aggregate queries.
// TODO: compute these from the EMR and triage stores once those move
// off static fixtures.
const (
	DoctorPendingEMRs   = 8
	DoctorOpenLabOrders = 12
	NurseTriageToday    = 24
	NursePendingTriage  = 7
)

// doctorRevenueShare approximates a single department's slice of the
// hospital-wide chart series.
const doctorRevenueShare = 5

// Service computes per-role dashboard summaries by composing the
// authorization filters over the seeded dataset.
type Service struct {
	data   *dataset.Dataset
	engine *authz.Engine
	logger *logger.Logger
	now    func() time.Time
}

// New creates a dashboard service over the given dataset and engine
func New(data *dataset.Dataset, engine *authz.Engine, log *logger.Logger) *Service {
	return &Service{
		data:   data,
		engine: engine,
		logger: log,
		now:    time.Now,
	}
}

// WithClock substitutes the time source. Used by tests and the
// availability preview.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// StatsForUser computes the dashboard summary for the user's role.
// A nil user gets the zero summary.
func (s *Service) StatsForUser(user *types.User) types.DashboardStats {
	if user == nil {
		return types.DashboardStats{}
	}

	switch user.Role {
	case types.RoleAdministrator:
		// Global summary is served verbatim.
		return s.data.GlobalSummary

	case types.RoleDoctor:
		patients := s.engine.FilterPatients(user, s.data.Patients)
		appointments := s.engine.FilterAppointments(user, s.data.Appointments)
		return types.DashboardStats{
			TotalPatients:     len(patients),
			TotalAppointments: len(appointments),
			TodayAppointments: s.countToday(appointments),
			PendingEMRs:       DoctorPendingEMRs,
			LabOrders:         DoctorOpenLabOrders,
		}

	case types.RoleAuxiliaryNurse:
		// Nurses work off the hospital-wide schedule.
		return types.DashboardStats{
			TotalPatients:     len(s.data.Patients),
			TotalAppointments: len(s.data.Appointments),
			TodayAppointments: s.countToday(s.data.Appointments),
			AdmittedPatients:  len(s.data.Inpatients),
			AvailableDoctors:  len(s.AvailableDoctors()),
			TriageToday:       NurseTriageToday,
			PendingTriage:     NursePendingTriage,
		}

	default:
		return types.DashboardStats{}
	}
}

// countToday counts appointments on the current calendar day
func (s *Service) countToday(appointments []types.Appointment) int {
	year, month, day := s.now().Date()
	count := 0
	for _, a := range appointments {
		ay, am, ad := a.Date.Date()
		if ay == year && am == month && ad == day {
			count++
		}
	}
	return count
}

// PatientVisitsForUser returns the visits chart series shaped for the
// user's role.
func (s *Service) PatientVisitsForUser(user *types.User) []types.ChartPoint {
	if user == nil {
		return []types.ChartPoint{}
	}
	switch user.Role {
	case types.RoleAdministrator, types.RoleAuxiliaryNurse:
		return s.data.PatientVisits
	case types.RoleDoctor:
		return scaleSeries(s.data.PatientVisits, doctorRevenueShare)
	default:
		return []types.ChartPoint{}
	}
}

// RevenueForUser returns the revenue chart series shaped for the
// user's role. Nurses have no financial visibility, consistent with
// the payment rule on the activity feed.
func (s *Service) RevenueForUser(user *types.User) []types.ChartPoint {
	if user == nil {
		return []types.ChartPoint{}
	}
	switch user.Role {
	case types.RoleAdministrator:
		return s.data.Revenue
	case types.RoleDoctor:
		return scaleSeries(s.data.Revenue, doctorRevenueShare)
	default:
		return []types.ChartPoint{}
	}
}

// DepartmentDistributionForUser returns the department distribution
// series shaped for the user's role.
func (s *Service) DepartmentDistributionForUser(user *types.User) []types.ChartPoint {
	if user == nil {
		return []types.ChartPoint{}
	}
	switch user.Role {
	case types.RoleAdministrator, types.RoleAuxiliaryNurse:
		return s.data.DepartmentDistribution
	case types.RoleDoctor:
		return scaleSeries(s.data.DepartmentDistribution, doctorRevenueShare)
	default:
		return []types.ChartPoint{}
	}
}

func scaleSeries(series []types.ChartPoint, divisor float64) []types.ChartPoint {
	scaled := make([]types.ChartPoint, len(series))
	for i, p := range series {
		scaled[i] = types.ChartPoint{Label: p.Label, Value: p.Value / divisor}
	}
	return scaled
}
