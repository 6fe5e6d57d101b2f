package handler

import (
	"context"
	"net/http"

	"volcano-insurance-api/internal/models"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles checkout and policy requests
type CheckoutHandler struct {
	service CheckoutService
}

// Service interface for dependency injection
type CheckoutService interface {
	Checkout(context.Context, string) (*models.Policy, error)
	GetPolicy(context.Context, string) (*models.Policy, error)
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(svc CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: svc}
}

// CheckoutRequest is the body of POST /checkout.
type CheckoutRequest struct {
	QuoteNumber string `json:"quote_number" binding:"required,max=10" example:"ABCDE12345"`
}

// CheckoutResponse is returned by POST /checkout.
type CheckoutResponse struct {
	QuoteNumber  string `json:"quote_number" example:"ABCDE12345"`
	PolicyNumber string `json:"policy_number" example:"ABCDE12345"`
}

// Checkout handles POST /checkout requests
//
//	@Summary	Check out a quote
//	@Tags		policies
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CheckoutRequest	true	"Checkout request"
//	@Success	201		{object}	CheckoutResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse	"quote already checked out"
//	@Failure	500		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "quote_number is required and must be at most 10 characters"})
		return
	}

	policy, err := h.service.Checkout(c.Request.Context(), req.QuoteNumber)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CheckoutResponse{QuoteNumber: req.QuoteNumber, PolicyNumber: policy.PolicyNumber})
}

// GetPolicy handles GET /policies/:policy_number requests
//
//	@Summary	Get a policy
//	@Tags		policies
//	@Produce	json
//	@Param		policy_number	path		string	true	"Policy number"
//	@Success	200				{object}	models.Policy
//	@Failure	404				{object}	ErrorResponse
//	@Failure	500				{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/policies/{policy_number} [get]
func (h *CheckoutHandler) GetPolicy(c *gin.Context) {
	policy, err := h.service.GetPolicy(c.Request.Context(), c.Param("policy_number"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, policy)
}
