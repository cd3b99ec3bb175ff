package dto

import (
	"time"

	"github.com/jhoicas/stocktrack-api/internal/domain/validation"
)

// SignupRequest entrada para registrar empresa + usuario administrador.
type SignupRequest struct {
	CompanyName     string `json:"company_name"`
	FullName        string `json:"full_name"`
	LoginID         string `json:"login_id"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest entrada de login por email.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token de sesión + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	LoginID   string    `json:"login_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PasswordCheckRequest entrada de GET de checklist de contraseña (feedback en vivo).
type PasswordCheckRequest struct {
	Password string `json:"password"`
}

// PasswordCheckResponse checklist por regla + veredicto.
type PasswordCheckResponse struct {
	Valid   bool                      `json:"valid"`
	Message string                    `json:"message,omitempty"`
	Checks  validation.PasswordChecks `json:"checks"`
}

// ResetRequestRequest solicita el envío de un OTP al email.
type ResetRequestRequest struct {
	Email string `json:"email"`
}

// VerifyOTPRequest verifica el código de 6 dígitos.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// VerifyOTPResponse token de reseteo de corta vida.
type VerifyOTPResponse struct {
	ResetToken string `json:"reset_token"`
}

// ResetPasswordRequest fija la nueva contraseña usando el token de reseteo.
type ResetPasswordRequest struct {
	ResetToken      string `json:"reset_token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}
