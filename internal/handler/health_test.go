package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReadinessChecker is a mock implementation of the ReadinessChecker interface
type MockReadinessChecker struct {
	mock.Mock
}

func (m *MockReadinessChecker) CheckReadiness(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		dbErr          error
		expectedStatus int
		expectedBody   string
	}{
		{name: "health", path: "/health", expectedStatus: http.StatusOK, expectedBody: `{"status":"ok"}`},
		{name: "ready", path: "/ready", expectedStatus: http.StatusOK, expectedBody: `{"status":"ready"}`},
		{name: "database down", path: "/ready", dbErr: assert.AnError, expectedStatus: http.StatusServiceUnavailable, expectedBody: `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockReadinessChecker)
			db.On("CheckReadiness", mock.Anything).Return(tt.dbErr)
			h := NewHealthHandler(db)

			r := gin.New()
			r.GET("/health", h.Health)
			r.GET("/ready", h.Ready)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
