package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresuite/hms-portal/internal/authz"
	"github.com/caresuite/hms-portal/internal/dataset"
	"github.com/caresuite/hms-portal/pkg/logger"
	"github.com/caresuite/hms-portal/pkg/types"
)

// mondayMarch10 is a day with three seeded appointments.
var mondayMarch10 = time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)

func newTestService() *Service {
	data := dataset.Seed()
	engine := authz.NewEngine(data.Ownership(), logger.New("error"))
	return New(data, engine, logger.New("error")).WithClock(func() time.Time { return mondayMarch10 })
}

func TestStatsForUser_NilUser(t *testing.T) {
	svc := newTestService()

	assert.Equal(t, types.DashboardStats{}, svc.StatsForUser(nil))
}

func TestStatsForUser_AdministratorPassThrough(t *testing.T) {
	svc := newTestService()
	admin := &types.User{ID: "admin-1", Role: types.RoleAdministrator}

	stats := svc.StatsForUser(admin)

	assert.Equal(t, svc.data.GlobalSummary, stats)
}

func TestStatsForUser_DoctorComputed(t *testing.T) {
	svc := newTestService()
	doctor := &types.User{ID: "d-001", Role: types.RoleDoctor, Department: "Cardiology"}

	stats := svc.StatsForUser(doctor)

	// d-001 is assigned p-001 and p-003, with two appointments both
	// on the reference Monday.
	assert.Equal(t, 2, stats.TotalPatients)
	assert.Equal(t, 2, stats.TotalAppointments)
	assert.Equal(t, 2, stats.TodayAppointments)
	assert.Equal(t, DoctorPendingEMRs, stats.PendingEMRs)
	assert.Equal(t, DoctorOpenLabOrders, stats.LabOrders)
	assert.Zero(t, stats.MonthlyRevenue)
}

func TestStatsForUser_NurseHospitalWide(t *testing.T) {
	svc := newTestService()
	nurse := &types.User{ID: "n-001", Role: types.RoleAuxiliaryNurse, Department: "Emergency"}

	stats := svc.StatsForUser(nurse)

	assert.Equal(t, len(svc.data.Patients), stats.TotalPatients)
	assert.Equal(t, len(svc.data.Appointments), stats.TotalAppointments)
	assert.Equal(t, 3, stats.TodayAppointments)
	assert.Equal(t, len(svc.data.Inpatients), stats.AdmittedPatients)
	assert.Equal(t, 3, stats.AvailableDoctors)
	assert.Equal(t, NurseTriageToday, stats.TriageToday)
	assert.Equal(t, NursePendingTriage, stats.PendingTriage)
}

func TestStatsForUser_UnknownRole(t *testing.T) {
	svc := newTestService()
	stranger := &types.User{ID: "x-1", Role: types.Role("visitor")}

	assert.Equal(t, types.DashboardStats{}, svc.StatsForUser(stranger))
}

func TestPatientVisitsForUser(t *testing.T) {
	svc := newTestService()
	admin := &types.User{ID: "admin-1", Role: types.RoleAdministrator}
	doctor := &types.User{ID: "d-001", Role: types.RoleDoctor}
	nurse := &types.User{ID: "n-001", Role: types.RoleAuxiliaryNurse}

	assert.Equal(t, svc.data.PatientVisits, svc.PatientVisitsForUser(admin))
	assert.Equal(t, svc.data.PatientVisits, svc.PatientVisitsForUser(nurse))
	assert.Empty(t, svc.PatientVisitsForUser(nil))

	scaled := svc.PatientVisitsForUser(doctor)
	require.Len(t, scaled, len(svc.data.PatientVisits))
	assert.Equal(t, svc.data.PatientVisits[0].Value/5, scaled[0].Value)
	assert.Equal(t, svc.data.PatientVisits[0].Label, scaled[0].Label)
}

func TestRevenueForUser_NurseHasNoFinancialVisibility(t *testing.T) {
	svc := newTestService()
	nurse := &types.User{ID: "n-001", Role: types.RoleAuxiliaryNurse}

	assert.Empty(t, svc.RevenueForUser(nurse))
	assert.Empty(t, svc.RevenueForUser(nil))
	assert.Empty(t, svc.RevenueForUser(&types.User{ID: "x", Role: types.Role("visitor")}))
}

func TestRevenueForUser_AdminAndDoctor(t *testing.T) {
	svc := newTestService()
	admin := &types.User{ID: "admin-1", Role: types.RoleAdministrator}
	doctor := &types.User{ID: "d-001", Role: types.RoleDoctor}

	assert.Equal(t, svc.data.Revenue, svc.RevenueForUser(admin))

	scaled := svc.RevenueForUser(doctor)
	require.Len(t, scaled, len(svc.data.Revenue))
	assert.Equal(t, svc.data.Revenue[2].Value/5, scaled[2].Value)
}

func TestDepartmentDistributionForUser(t *testing.T) {
	svc := newTestService()
	admin := &types.User{ID: "admin-1", Role: types.RoleAdministrator}
	nurse := &types.User{ID: "n-001", Role: types.RoleAuxiliaryNurse}

	assert.Equal(t, svc.data.DepartmentDistribution, svc.DepartmentDistributionForUser(admin))
	assert.Equal(t, svc.data.DepartmentDistribution, svc.DepartmentDistributionForUser(nurse))
	assert.Empty(t, svc.DepartmentDistributionForUser(nil))
}
