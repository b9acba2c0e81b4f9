// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type BanRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse redacts the password hash; it has no field for it at all.
type UserResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	DefaultPincode string    `json:"defaultPincode,omitempty"`
	Role           string    `json:"role"`
	IsApproved     bool      `json:"isApproved"`
	IsBanned       bool      `json:"isBanned"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Username:       u.Username,
		Email:          u.Email,
		DefaultPincode: u.DefaultPincode,
		Role:           u.Role,
		IsApproved:     u.IsApproved,
		IsBanned:       u.IsBanned,
		CreatedAt:      u.CreatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(&u))
	}
	return responses
}
