package login_user

import (
	"errors"
	"net/http"

	"github.com/bookline/shopify-booking-service/internal/api/handlers"
	"github.com/bookline/shopify-booking-service/internal/service/users"
	"github.com/bookline/shopify-booking-service/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingCredentials = "email and password are required"
	msgInvalidCredentials = "invalid credentials"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /user/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /user/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /user/login - Missing credentials")
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, users.ErrInvalidCredentials):
			h.logger.Warn("POST /user/login - Invalid credentials")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /user/login - Failed to issue token: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /user/login - Token issued")
	handlers.RespondJSON(w, http.StatusCreated, result)
}
