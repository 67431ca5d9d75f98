package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse perfil público del usuario autenticado.
type UserResponse struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Location    string `json:"location"`
	Role        string `json:"role"`
}

// LoginResponse token + perfil.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
