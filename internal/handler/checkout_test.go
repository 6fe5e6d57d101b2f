package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"volcano-insurance-api/internal/models"
	"volcano-insurance-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCheckoutService is a mock implementation of the CheckoutService interface
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, quoteNumber string) (*models.Policy, error) {
	args := m.Called(ctx, quoteNumber)
	if p := args.Get(0); p != nil {
		return p.(*models.Policy), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCheckoutService) GetPolicy(ctx context.Context, policyNumber string) (*models.Policy, error) {
	args := m.Called(ctx, policyNumber)
	if p := args.Get(0); p != nil {
		return p.(*models.Policy), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCheckoutHandler_Checkout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		quoteNumber    string
		mockPolicy     *models.Policy
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "success",
			body:           `{"quote_number": "ABCDE12345"}`,
			quoteNumber:    "ABCDE12345",
			mockPolicy:     &models.Policy{PolicyNumber: "ABCDE12345", IsActive: true},
			expectedStatus: http.StatusCreated,
			expectedBody:   map[string]interface{}{"quote_number": "ABCDE12345", "policy_number": "ABCDE12345"},
		},
		{
			name:           "missing quote number",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "quote_number is required and must be at most 10 characters"},
		},
		{
			name:           "quote number too long",
			body:           `{"quote_number": "ABCDE123456"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "quote_number is required and must be at most 10 characters"},
		},
		{
			name:           "quote not found",
			body:           `{"quote_number": "MISSING000"}`,
			quoteNumber:    "MISSING000",
			mockError:      service.ErrQuoteNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]interface{}{"error": "quote not found"},
		},
		{
			name:           "already checked out",
			body:           `{"quote_number": "ABCDE12345"}`,
			quoteNumber:    "ABCDE12345",
			mockError:      service.ErrQuoteAlreadyCheckedOut,
			expectedStatus: http.StatusConflict,
			expectedBody:   map[string]interface{}{"error": "quote already checked out"},
		},
		{
			name:           "storage failure",
			body:           `{"quote_number": "ABCDE12345"}`,
			quoteNumber:    "ABCDE12345",
			mockError:      errors.Join(service.ErrCheckoutFailed, assert.AnError),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockCheckoutService)
			handler := NewCheckoutHandler(mockSvc)

			if tt.quoteNumber != "" {
				mockSvc.On("Checkout", mock.Anything, tt.quoteNumber).Return(tt.mockPolicy, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.Checkout(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestCheckoutHandler_GetPolicy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockCheckoutService)
	mockSvc.On("GetPolicy", mock.Anything, "ABCDE12345").Return(&models.Policy{PolicyNumber: "ABCDE12345", IsActive: true}, nil)
	mockSvc.On("GetPolicy", mock.Anything, "MISSING000").Return(nil, service.ErrPolicyNotFound)

	r := gin.New()
	r.GET("/policies/:policy_number", NewCheckoutHandler(mockSvc).GetPolicy)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/policies/ABCDE12345", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_active":true`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/policies/MISSING000", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "policy not found"}`, w.Body.String())
}
