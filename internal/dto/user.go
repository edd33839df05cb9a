package dto

import (
	"time"

	"github.com/SscSPs/desk_reservation_app/internal/core/domain"
)

// RegisterUserRequest defines the data needed to register a user.
type RegisterUserRequest struct {
	Handle string `json:"handle" binding:"required,handle"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
}

// UserResponse defines the user data returned by the API.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Handle    string    `json:"handle"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Handle:    u.Handle,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	list := make([]UserResponse, len(users))
	for i := range users {
		list[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: list}
}
