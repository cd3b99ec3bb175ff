package repository

import "github.com/jhoicas/stocktrack-api/internal/domain/entity"

// PasswordResetRepository define el puerto para solicitudes de recuperación por OTP.
type PasswordResetRepository interface {
	Create(reset *entity.PasswordReset) error
	// GetActiveByEmail devuelve la solicitud vigente más reciente para el email,
	// o nil si no hay ninguna usable.
	GetActiveByEmail(email string) (*entity.PasswordReset, error)
	MarkConsumed(id string) error
}
