// AngelaMos | 2026
// dto.go

package auth

type RegisterRequest struct {
	Name           string `json:"name"           validate:"required,min=1,max=100"`
	Username       string `json:"username"       validate:"required,min=3,max=50"`
	Email          string `json:"email"          validate:"required,email,max=255"`
	Password       string `json:"password"       validate:"required,max=128"`
	DefaultPincode string `json:"defaultPincode" validate:"omitempty,max=10"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,max=128"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type LoginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    LoginUser `json:"user"`
}
