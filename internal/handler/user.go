package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler handles account and token requests
type UserHandler struct {
	service UserService
}

// Service interface for dependency injection
type UserService interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// NewUserHandler creates a new user handler
func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Username string `json:"username" binding:"required" example:"lava"`
	Email    string `json:"email" binding:"required" example:"lava@example.com"`
	Password string `json:"password" binding:"required" example:"correct-horse"`
}

// LoginRequest is the body of POST /tokens.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"lava"`
	Password string `json:"password" binding:"required" example:"correct-horse"`
}

// TokenResponse carries an API token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Register handles POST /users requests
//
//	@Summary	Register a user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		RegisterRequest	true	"New user"
//	@Success	201		{object}	TokenResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username, email and password are required"})
		return
	}

	token, err := h.service.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// Login handles POST /tokens requests
//
//	@Summary	Obtain a token
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LoginRequest	true	"Credentials"
//	@Success	200		{object}	TokenResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/tokens [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "username and password are required"})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}
