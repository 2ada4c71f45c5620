package models

import (
	"time"

	"github.com/bookline/shopify-booking-service/internal/domain"
)

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest запрос на выпуск токена
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse пользователь в формате внешнего API (без хэша пароля)
type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// UserListResponse список пользователей
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
}

// TokenResponse выпущенный access-токен
type TokenResponse struct {
	Token string `json:"token"`
}

// FromDomainUser конвертирует domain-модель в ответ API
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainUserList конвертирует список domain-моделей в ответ API
func FromDomainUserList(users []*domain.User) *UserListResponse {
	result := &UserListResponse{
		Users: make([]*UserResponse, 0, len(users)),
	}
	for _, u := range users {
		result.Users = append(result.Users, FromDomainUser(u))
	}
	return result
}
