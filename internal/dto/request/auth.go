package request

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50,alphanum"`
	FullName string  `json:"full_name" validate:"required,max=200"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,phone_ie"`
	Role     string  `json:"role" validate:"omitempty,oneof=trainer client"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
