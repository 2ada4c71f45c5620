package register_user

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
	msgEmailTaken         = "user already registered"
)

// RegisteredUserResponse ответ с созданным пользователем
type RegisteredUserResponse struct {
	User *models.UserResponse `json:"user"`
}

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

// Handle POST /user/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /user/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /user/register - Missing credentials")
			handlers.RespondBadRequest(w, msgMissingCredentials)

		case errors.Is(err, users.ErrEmailTaken):
			h.logger.Warn("POST /user/register - Email already taken")
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /user/register - Failed to register user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /user/register - User registered: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, RegisteredUserResponse{User: user})
}
