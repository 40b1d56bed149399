package portal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caresuite/hms-portal/pkg/logger"
	"github.com/caresuite/hms-portal/pkg/types"
)

func TestRequestIDMiddleware_IDReachesLogEntries(t *testing.T) {
	s := setupTestService(t)
	log := logger.New("error")

	var requestID interface{}
	handler := s.requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = log.WithContext(r.Context()).Data["request_id"]
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	s := setupTestService(t)
	log := logger.New("error")

	var requestID interface{}
	handler := s.requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = log.WithContext(r.Context()).Data["request_id"]
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil))

	assert.NotEmpty(t, requestID)
}

func TestAuthMiddleware_UserIDReachesLogEntries(t *testing.T) {
	s := setupTestService(t)
	log := logger.New("error")
	token := s.tokenFor(t, &types.UserClaims{UserID: "d-001", Role: types.RoleDoctor})

	var userID interface{}
	handler := s.authMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID = log.WithContext(r.Context()).Data["user_id"]
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "d-001", userID)
}
