package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktrack-api/internal/application/auth"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/stocktrack-api/pkg/jwt"
)

const authTestSecret = "test-secret-key-for-unit-tests"

// captureOTPSender guarda el último OTP "enviado" para poder verificarlo.
type captureOTPSender struct {
	email string
	code  string
	sent  int
}

func (s *captureOTPSender) SendOTP(_ context.Context, email, code string) error {
	s.email = email
	s.code = code
	s.sent++
	return nil
}

func newAuthFixture(t *testing.T) (*auth.UseCase, *captureOTPSender) {
	t.Helper()
	store := memory.NewStore()
	memory.Seed(store)
	sender := &captureOTPSender{}
	uc := auth.NewUseCase(
		memory.NewUserRepo(store),
		memory.NewCompanyRepo(store),
		memory.NewPasswordResetRepo(store),
		sender,
		auth.Config{
			JWTSecret:       authTestSecret,
			JWTIssuer:       "stocktrack-test",
			JWTExpMinutes:   60,
			OTPExpMinutes:   10,
			ResetExpMinutes: 15,
		},
	)
	return uc, sender
}

func validSignup() dto.SignupRequest {
	return dto.SignupRequest{
		CompanyName:     "Acme Logistics",
		FullName:        "Jane Roe",
		LoginID:         "janeroe1",
		Email:           "jane@acme.example",
		Password:        "Str0ng#Pass",
		ConfirmPassword: "Str0ng#Pass",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_CreaEmpresaYAdmin(t *testing.T) {
	uc, _ := newAuthFixture(t)

	out, err := uc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	assert.Equal(t, "admin", out.User.Role, "el primer usuario de la empresa es admin")
	assert.Equal(t, "jane@acme.example", out.User.Email)
	assert.NotEmpty(t, out.User.CompanyID)

	claims, err := pkgjwt.Parse(authTestSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, pkgjwt.PurposeAccess, claims.Purpose)
}

func TestSignup_EmailYaRegistrado(t *testing.T) {
	uc, _ := newAuthFixture(t)

	req := validSignup()
	req.Email = memory.DemoEmail
	_, err := uc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSignup_LoginIDOcupado_CaseInsensitive(t *testing.T) {
	uc, _ := newAuthFixture(t)

	req := validSignup()
	req.LoginID = "DemoAdmin" // el dataset trae "demoadmin"
	_, err := uc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrLoginIDTaken)
}

func TestSignup_ContrasenasNoCoinciden(t *testing.T) {
	uc, _ := newAuthFixture(t)

	req := validSignup()
	req.ConfirmPassword = "Otra#Clave9"
	_, err := uc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSignup_ContrasenaDebil(t *testing.T) {
	uc, _ := newAuthFixture(t)

	req := validSignup()
	req.Password = "corta"
	req.ConfirmPassword = "corta"
	_, err := uc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesDemo(t *testing.T) {
	uc, _ := newAuthFixture(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    memory.DemoEmail,
		Password: memory.DemoPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, memory.DemoUserID, out.User.ID)
	assert.NotEmpty(t, out.Token)
}

// Contraseña incorrecta y email inexistente responden con el mismo error
// para no revelar qué cuentas existen.
func TestLogin_ErrorUniformeAnteCredencialesMalas(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, errBadPass := uc.Login(context.Background(), dto.LoginRequest{
		Email:    memory.DemoEmail,
		Password: "Incorrecta#1",
	})
	_, errNoUser := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@ninguna.example",
		Password: "Incorrecta#1",
	})

	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Checklist de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckPassword_ChecklistPorRegla(t *testing.T) {
	uc, _ := newAuthFixture(t)

	out := uc.CheckPassword("solominusculas")
	assert.False(t, out.Valid)
	assert.True(t, out.Checks.Length)
	assert.True(t, out.Checks.Lowercase)
	assert.False(t, out.Checks.Uppercase)
	assert.False(t, out.Checks.Special)

	out = uc.CheckPassword("Str0ng#Pass")
	assert.True(t, out.Valid)
	assert.True(t, out.Checks.All())
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo de reseteo por OTP
// ──────────────────────────────────────────────────────────────────────────────

func TestPasswordReset_FlujoCompleto(t *testing.T) {
	uc, sender := newAuthFixture(t)
	ctx := context.Background()

	// 1. Solicitar: se envía un OTP de 6 dígitos al email.
	require.NoError(t, uc.RequestPasswordReset(ctx, memory.DemoEmail))
	require.Equal(t, 1, sender.sent)
	require.Len(t, sender.code, 6)
	assert.Equal(t, memory.DemoEmail, sender.email)

	// 2. Verificar: un código equivocado no consume la solicitud.
	_, err := uc.VerifyOTP(ctx, dto.VerifyOTPRequest{Email: memory.DemoEmail, Code: "000000"})
	if sender.code != "000000" {
		assert.ErrorIs(t, err, domain.ErrInvalidOTP)
	}

	out, err := uc.VerifyOTP(ctx, dto.VerifyOTPRequest{Email: memory.DemoEmail, Code: sender.code})
	require.NoError(t, err)
	require.NotEmpty(t, out.ResetToken)

	claims, err := pkgjwt.Parse(authTestSecret, out.ResetToken)
	require.NoError(t, err)
	assert.Equal(t, pkgjwt.PurposeReset, claims.Purpose)

	// 3. El OTP es de un solo uso.
	_, err = uc.VerifyOTP(ctx, dto.VerifyOTPRequest{Email: memory.DemoEmail, Code: sender.code})
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)

	// 4. Fijar la contraseña nueva y entrar con ella.
	require.NoError(t, uc.ResetPassword(ctx, dto.ResetPasswordRequest{
		ResetToken:      out.ResetToken,
		Password:        "Nueva#Clave7",
		ConfirmPassword: "Nueva#Clave7",
	}))

	_, err = uc.Login(ctx, dto.LoginRequest{Email: memory.DemoEmail, Password: memory.DemoPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "la contraseña anterior ya no sirve")

	logged, err := uc.Login(ctx, dto.LoginRequest{Email: memory.DemoEmail, Password: "Nueva#Clave7"})
	require.NoError(t, err)
	assert.Equal(t, memory.DemoUserID, logged.User.ID)
}

// Solicitar reseteo para un email desconocido responde sin error y sin envío.
func TestPasswordReset_EmailDesconocidoEsSilencioso(t *testing.T) {
	uc, sender := newAuthFixture(t)

	require.NoError(t, uc.RequestPasswordReset(context.Background(), "nadie@ninguna.example"))
	assert.Zero(t, sender.sent)
}

// Un token de sesión normal no sirve para fijar contraseña.
func TestResetPassword_RechazaTokenDeSesion(t *testing.T) {
	uc, _ := newAuthFixture(t)

	session, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    memory.DemoEmail,
		Password: memory.DemoPassword,
	})
	require.NoError(t, err)

	err = uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		ResetToken:      session.Token,
		Password:        "Nueva#Clave7",
		ConfirmPassword: "Nueva#Clave7",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
