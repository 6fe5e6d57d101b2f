package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"volcano-insurance-api/internal/auth"
	"volcano-insurance-api/internal/models"
	"volcano-insurance-api/internal/observability"
	"volcano-insurance-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuotes struct{}

func (fakeQuotes) CreateQuote(context.Context, service.CreateQuoteInput) (*models.Quote, error) {
	return &models.Quote{QuoteNumber: "ABCDE12345"}, nil
}

func (fakeQuotes) GetQuote(context.Context, string) (*models.Quote, error) {
	return nil, service.ErrQuoteNotFound
}

type fakeCheckout struct{}

func (fakeCheckout) Checkout(_ context.Context, n string) (*models.Policy, error) {
	return &models.Policy{PolicyNumber: n}, nil
}

func (fakeCheckout) GetPolicy(context.Context, string) (*models.Policy, error) {
	return nil, service.ErrPolicyNotFound
}

type fakeUsers struct{}

func (fakeUsers) Register(context.Context, string, string, string) (string, error) { return "t", nil }
func (fakeUsers) Login(context.Context, string, string) (string, error)            { return "t", nil }

type fakeDB struct{}

func (fakeDB) CheckReadiness(context.Context) error { return nil }

func testRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager("router-secret", time.Hour, nil)
	token, err := tokens.Issue(uuid.New(), "lava")
	require.NoError(t, err)

	r := newRouter(routerDeps{
		quotes:   fakeQuotes{},
		checkout: fakeCheckout{},
		users:    fakeUsers{},
		db:       fakeDB{},
		tokens:   tokens,
		limiter:  newLimiter(1000, 1000),
		metrics:  observability.NewMetricsForTesting(),
	})
	return r, token
}

func TestRouter(t *testing.T) {
	r, token := testRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		authenticated  bool
		expectedStatus int
	}{
		{name: "health", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK},
		{name: "ready", method: http.MethodGet, path: "/ready", expectedStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "register is public", method: http.MethodPost, path: "/users", body: `{"username":"a","email":"a@b.c","password":"12345678"}`, expectedStatus: http.StatusCreated},
		{name: "login is public", method: http.MethodPost, path: "/tokens", body: `{"username":"a","password":"12345678"}`, expectedStatus: http.StatusOK},
		{name: "quotes need a token", method: http.MethodPost, path: "/quotes", body: `{}`, expectedStatus: http.StatusUnauthorized},
		{name: "create quote", method: http.MethodPost, path: "/quotes", body: `{}`, authenticated: true, expectedStatus: http.StatusCreated},
		{name: "get quote", method: http.MethodGet, path: "/quotes/MISSING000", authenticated: true, expectedStatus: http.StatusNotFound},
		{name: "checkout", method: http.MethodPost, path: "/checkout", body: `{"quote_number":"ABCDE12345"}`, authenticated: true, expectedStatus: http.StatusCreated},
		{name: "get policy", method: http.MethodGet, path: "/policies/MISSING000", authenticated: true, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.authenticated {
				req.Header.Set("Authorization", "Bearer "+token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestNewLimiter_Disabled(t *testing.T) {
	assert.Nil(t, newLimiter(0, 10))
	assert.NotNil(t, newLimiter(5, 10))
}
