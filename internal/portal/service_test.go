package portal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresuite/hms-portal/pkg/config"
	"github.com/caresuite/hms-portal/pkg/logger"
	"github.com/caresuite/hms-portal/pkg/types"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, ReadTimeout: 5, WriteTimeout: 5, IdleTimeout: 5},
		JWT:    config.JWTConfig{SecretKey: "test-secret", Issuer: "hms-portal-test"},
		RateLimit: config.RateLimitConfig{
			Enabled:        false,
			RequestsPerMin: 100,
		},
		Monitoring: config.MonitoringConfig{Enabled: true, MetricsPath: "/metrics", HealthPath: "/health"},
		LogLevel:   "error",
	}
}

func setupTestService(t *testing.T) *Service {
	t.Helper()
	return New(testConfig(), logger.New("error"))
}

func (s *Service) tokenFor(t *testing.T, claims *types.UserClaims) string {
	t.Helper()
	token, err := s.tokenValidator.GenerateToken(claims, time.Hour)
	require.NoError(t, err)
	return token
}

func (s *Service) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint_NoAuthRequired(t *testing.T) {
	s := setupTestService(t)

	rec := s.get(t, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_RequiresToken(t *testing.T) {
	s := setupTestService(t)

	rec := s.get(t, "/api/v1/patients", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_RejectsInvalidToken(t *testing.T) {
	s := setupTestService(t)

	rec := s.get(t, "/api/v1/patients", "not-a-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListPatients_Administrator(t *testing.T) {
	s := setupTestService(t)
	token := s.tokenFor(t, &types.UserClaims{UserID: "admin-1", Role: types.RoleAdministrator})

	rec := s.get(t, "/api/v1/patients", token)

	require.Equal(t, http.StatusOK, rec.Code)
	var patients []types.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patients))
	assert.Len(t, patients, len(s.data.Patients))
}

func TestListPatients_DoctorSeesOnlyAssigned(t *testing.T) {
	s := setupTestService(t)
	token := s.tokenFor(t, &types.UserClaims{UserID: "d-001", Role: types.RoleDoctor, Department: "Cardiology"})

	rec := s.get(t, "/api/v1/patients", token)

	require.Equal(t, http.StatusOK, rec.Code)
	var patients []types.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patients))
	require.Len(t, patients, 2)
	assert.Equal(t, "p-001", patients[0].ID)
	assert.Equal(t, "p-003", patients[1].ID)
}

func TestGetPatient_DeniedLooksLikeMissing(t *testing.T) {
	s := setupTestService(t)
	doctorToken := s.tokenFor(t, &types.UserClaims{UserID: "d-001", Role: types.RoleDoctor})
	adminToken := s.tokenFor(t, &types.UserClaims{UserID: "admin-1", Role: types.RoleAdministrator})

	denied := s.get(t, "/api/v1/patients/p-002", doctorToken)
	missing := s.get(t, "/api/v1/patients/p-999", doctorToken)
	allowed := s.get(t, "/api/v1/patients/p-002", adminToken)

	assert.Equal(t, http.StatusNotFound, denied.Code)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, http.StatusOK, allowed.Code)
}

func TestListBilling_NurseDenied(t *testing.T) {
	s := setupTestService(t)
	token := s.tokenFor(t, &types.UserClaims{UserID: "n-001", Role: types.RoleAuxiliaryNurse})

	rec := s.get(t, "/api/v1/billing", token)

	require.Equal(t, http.StatusOK, rec.Code)
	var records []types.BillingRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Empty(t, records)
}

func TestActivityFeed_NurseSeesTriageSubset(t *testing.T) {
	s := setupTestService(t)
	token := s.tokenFor(t, &types.UserClaims{UserID: "n-001", Role: types.RoleAuxiliaryNurse})

	rec := s.get(t, "/api/v1/activity", token)

	require.Equal(t, http.StatusOK, rec.Code)
	var events []types.ActivityEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 3)
	for _, event := range events {
		assert.NotEqual(t, types.ActivityPayment, event.Type)
		assert.NotEqual(t, types.ActivityLab, event.Type)
	}
}

func TestActivityFeed_AdministratorSeesPayment(t *testing.T) {
	s := setupTestService(t)
	token := s.tokenFor(t, &types.UserClaims{UserID: "admin-1", Role: types.RoleAdministrator})

	rec := s.get(t, "/api/v1/activity", token)

	require.Equal(t, http.StatusOK, rec.Code)
	var events []types.ActivityEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	assert.Len(t, events, len(s.data.Activities))
}

func TestDashboardStats_PerRole(t *testing.T) {
	s := setupTestService(t)
	adminToken := s.tokenFor(t, &types.UserClaims{UserID: "admin-1", Role: types.RoleAdministrator})
	doctorToken := s.tokenFor(t, &types.UserClaims{UserID: "d-001", Role: types.RoleDoctor})

	adminRec := s.get(t, "/api/v1/dashboard/stats", adminToken)
	doctorRec := s.get(t, "/api/v1/dashboard/stats", doctorToken)

	require.Equal(t, http.StatusOK, adminRec.Code)
	require.Equal(t, http.StatusOK, doctorRec.Code)

	var adminStats, doctorStats types.DashboardStats
	require.NoError(t, json.Unmarshal(adminRec.Body.Bytes(), &adminStats))
	require.NoError(t, json.Unmarshal(doctorRec.Body.Bytes(), &doctorStats))

	assert.Equal(t, s.data.GlobalSummary, adminStats)
	assert.Equal(t, 2, doctorStats.TotalPatients)
}

func TestAvailableDoctors_Parameterized(t *testing.T) {
	s := setupTestService(t)
	token := s.tokenFor(t, &types.UserClaims{UserID: "n-001", Role: types.RoleAuxiliaryNurse})

	rec := s.get(t, "/api/v1/doctors/available?department=Cardiology&day=Sunday", token)

	require.Equal(t, http.StatusOK, rec.Code)
	var doctors []types.DoctorAvailability
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doctors))
	assert.Empty(t, doctors)
}

func TestUnknownRole_AuthenticatedButDenied(t *testing.T) {
	s := setupTestService(t)
	token := s.tokenFor(t, &types.UserClaims{UserID: "x-001", Role: types.Role("intern")})

	rec := s.get(t, "/api/v1/patients", token)

	require.Equal(t, http.StatusOK, rec.Code)
	var patients []types.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patients))
	assert.Empty(t, patients)
}

func TestRateLimit_Enforced(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.RequestsPerMin = 2
	s := New(cfg, logger.New("error"))
	token := s.tokenFor(t, &types.UserClaims{UserID: "d-001", Role: types.RoleDoctor})

	first := s.get(t, "/api/v1/patients", token)
	second := s.get(t, "/api/v1/patients", token)
	third := s.get(t, "/api/v1/patients", token)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
}
