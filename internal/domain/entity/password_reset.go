package entity

import "time"

// PasswordReset representa una solicitud de recuperación de contraseña por OTP.
// Se guarda solo el hash bcrypt del código; el OTP en claro viaja por el canal de envío.
type PasswordReset struct {
	ID         string
	UserID     string
	Email      string
	OTPHash    string
	ExpiresAt  time.Time
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

// Usable indica si la solicitud sigue vigente y sin consumir.
func (r *PasswordReset) Usable(now time.Time) bool {
	return r.ConsumedAt == nil && now.Before(r.ExpiresAt)
}
