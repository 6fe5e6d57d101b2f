package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"volcano-insurance-api/internal/models"
	"volcano-insurance-api/internal/service"

	"github.com/gin-gonic/gin"
)

// DefaultQuoteAddress is used when a quote request has no address.
const DefaultQuoteAddress = "1600 Pennsylvania Avenue NW, Washington, DC 20500"

// QuoteHandler handles quote requests
type QuoteHandler struct {
	service QuoteService
}

// Service interface for dependency injection
type QuoteService interface {
	CreateQuote(context.Context, service.CreateQuoteInput) (*models.Quote, error)
	GetQuote(context.Context, string) (*models.Quote, error)
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(svc QuoteService) *QuoteHandler {
	return &QuoteHandler{service: svc}
}

// CreateQuoteRequest is the body of POST /quotes. Every field is optional.
type CreateQuoteRequest struct {
	HadPreviouslyCancelVolcanoPolicy bool       `json:"had_previously_cancel_volcano_policy"`
	NeverCancelVolcanoPolicy         bool       `json:"never_cancel_volcano_policy"`
	NewProperty                      bool       `json:"new_property"`
	Address                          *string    `json:"address" example:"1600 Pennsylvania Avenue NW, Washington, DC 20500"`
	EffectiveDate                    *time.Time `json:"effective_date" example:"2026-01-01T00:00:00Z"`
	PreviouslyCancelPolicy           string     `json:"previously_cancel_policy" binding:"omitempty,max=10"`
}

// CreateQuoteResponse is returned by POST /quotes.
type CreateQuoteResponse struct {
	QuoteNumber string `json:"quote_number" example:"ABCDE12345"`
}

func (r CreateQuoteRequest) input() service.CreateQuoteInput {
	in := service.CreateQuoteInput{
		HadPreviousCancellation: r.HadPreviouslyCancelVolcanoPolicy,
		NeverCancelled:          r.NeverCancelVolcanoPolicy,
		OwnsProperty:            r.NewProperty,
		PreviouslyCancelPolicy:  r.PreviouslyCancelPolicy,
		Address:                 DefaultQuoteAddress,
	}
	if r.Address != nil {
		in.Address = *r.Address
	}
	if r.EffectiveDate != nil {
		in.EffectiveDate = *r.EffectiveDate
	}
	return in
}

// CreateQuote handles POST /quotes requests
//
//	@Summary	Create a quote
//	@Tags		quotes
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateQuoteRequest	false	"Quote request"
//	@Success	201		{object}	CreateQuoteResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse	"previous policy not found"
//	@Failure	422		{object}	ErrorResponse	"address could not be resolved"
//	@Failure	500		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	quote, err := h.service.CreateQuote(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateQuoteResponse{QuoteNumber: quote.QuoteNumber})
}

// GetQuote handles GET /quotes/:quote_number requests
//
//	@Summary	Get a quote
//	@Tags		quotes
//	@Produce	json
//	@Param		quote_number	path		string	true	"Quote number"
//	@Success	200				{object}	models.Quote
//	@Failure	404				{object}	ErrorResponse
//	@Failure	500				{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/quotes/{quote_number} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.service.GetQuote(c.Request.Context(), c.Param("quote_number"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
