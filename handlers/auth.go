package handlers

import (
	"net/http"

	"cooptaxi/services/session"
	"cooptaxi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the mock login endpoint.
type AuthHandler struct {
	Svc    session.Service
	Logger *zap.Logger
}

func NewAuthHandler(svc session.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// LoginRequest is the expected input for POST /api/auth/login.
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// LoginHandler handles POST /api/auth/login. Any email signs in as the demo
// driver.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid login request", err.Error())
		return
	}

	sess, err := h.Svc.Login(req.Email)
	if err != nil {
		h.Logger.Error("Login: session issuance failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to sign in", err.Error())
		return
	}
	c.JSON(http.StatusOK, sess)
}
