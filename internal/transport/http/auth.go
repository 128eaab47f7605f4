package http

import (
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/aromaline/inventory-service/config"
	"github.com/aromaline/inventory-service/internal/security"
)

// AuthHandler exchanges static credentials for a JWT. Users are configured,
// not stored; this service has no user management.
type AuthHandler struct {
	jwtManager *security.JWTManager
	users      []config.User
	logger     *zap.Logger
}

func NewAuthHandler(jwtManager *security.JWTManager, users []config.User, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		jwtManager: jwtManager,
		users:      users,
		logger:     logger,
	}
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	req := &loginRequest{}
	if err := render.Bind(r, req); err != nil {
		renderError(w, r, errInvalidRequest)
		return
	}

	for _, u := range h.users {
		if u.Username == req.Username && security.CheckPassword(u.PasswordHash, req.Password) {
			token, err := h.jwtManager.Generate(u.Username)
			if err != nil {
				h.logger.Error("token generation failed", zap.Error(err))
				renderError(w, r, err)
				return
			}
			render.JSON(w, r, &loginResponse{Token: token})
			return
		}
	}

	h.logger.Warn("failed login attempt", zap.String("username", req.Username))
	renderError(w, r, security.ErrInvalidToken)
}
