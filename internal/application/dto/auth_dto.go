package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse saída com token JWT e perfil resumido.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ForgotPasswordRequest entrada para solicitar redefinição de senha.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest entrada para consumar a redefinição com o token recebido
// por e-mail.
type ResetPasswordRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Token     string `json:"token" validate:"required"`
	NovaSenha string `json:"novaSenha" validate:"required,min=6"`
}

// ChangePasswordRequest troca de senha do próprio usuário autenticado.
type ChangePasswordRequest struct {
	NovaSenha string `json:"novaSenha" validate:"required,min=6"`
}
