package model

type LoginInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=50"`
}

type RenewTokenInput struct {
	AccessToken string `json:"accessToken"`
}

type RegisterEmployeeInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=50"`
	FullName string `json:"fullName" validate:"omitempty"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"omitempty,oneof=admin employee"`
}

type Me struct {
	Role      string `json:"role"`
	Username  string `json:"username"`
	Exp       int64  `json:"exp"`
	SessionID string `json:"sessionId,omitempty"`
}
