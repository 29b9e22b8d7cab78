// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"

	"channa-relay/internal/services"
	"channa-relay/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP endpoints.
type AuthHandler struct {
	service *services.AuthService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	res, err := h.service.Register(c.Request.Context(), services.Credentials{
		Email:    *req.Email,
		Password: *req.Password,
	})
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewDataResponse("User registered successfully", res))
}

// Login handles password sign in.
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBind(c, err)
		return
	}

	res, err := h.service.Login(c.Request.Context(), services.Credentials{
		Email:    *req.Email,
		Password: *req.Password,
	})
	if err != nil {
		writeAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.NewDataResponse("Login successful", res))
}

// abortBind leaves rendering to middleware.ErrorHandler.
func abortBind(c *gin.Context, err error) {
	c.Status(http.StatusUnprocessableEntity)
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.Abort()
}

func writeAuthError(c *gin.Context, err error) {
	c.JSON(services.HTTPStatus(err), httpdto.NewErrorResponse(err.Error()))
}
