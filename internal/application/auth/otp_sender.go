package auth

import (
	"context"

	"github.com/jhoicas/stocktrack-api/pkg/logger"
)

// LogOTPSender escribe el OTP en el log en lugar de enviarlo por correo.
// Se usa en development y demo, donde no hay proveedor de correo configurado.
type LogOTPSender struct {
	log *logger.Logger
}

// NewLogOTPSender construye el sender de desarrollo.
func NewLogOTPSender(log *logger.Logger) *LogOTPSender {
	return &LogOTPSender{log: log.WithComponent("otp-sender")}
}

// SendOTP registra el código en el log.
func (s *LogOTPSender) SendOTP(ctx context.Context, email, code string) error {
	s.log.Info().
		Str("email", email).
		Str("code", code).
		Msg("OTP de recuperación generado")
	return nil
}
