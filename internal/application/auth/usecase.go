// Package auth implementa registro, login y recuperación de contraseña por OTP.
package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
	"github.com/jhoicas/stocktrack-api/internal/domain/validation"
	"github.com/jhoicas/stocktrack-api/pkg/jwt"
)

// OTPSender entrega el código de recuperación al usuario. En desarrollo y demo
// se registra en el log; en producción lo implementa el proveedor de correo.
type OTPSender interface {
	SendOTP(ctx context.Context, email, code string) error
}

// Config parámetros del caso de uso de autenticación.
type Config struct {
	JWTSecret       string
	JWTIssuer       string
	JWTExpMinutes   int
	OTPExpMinutes   int
	ResetExpMinutes int
}

// UseCase orquesta las operaciones de cuentas: signup de empresa + admin,
// login por email y el flujo de reseteo en tres pasos (solicitar OTP,
// verificar OTP, fijar contraseña nueva).
type UseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	resetRepo   repository.PasswordResetRepository
	sender      OTPSender
	cfg         Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	resetRepo repository.PasswordResetRepository,
	sender OTPSender,
	cfg Config,
) *UseCase {
	return &UseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		resetRepo:   resetRepo,
		sender:      sender,
		cfg:         cfg,
	}
}

// Signup registra una empresa nueva con su usuario administrador.
// Valida email, contraseña y login ID con las reglas de dominio; la unicidad
// se verifica contra el repositorio (case-insensitive).
func (uc *UseCase) Signup(ctx context.Context, req dto.SignupRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(req.CompanyName) == "" || strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("%w: company name y full name son obligatorios", domain.ErrInvalidInput)
	}
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("%w: las contraseñas no coinciden", domain.ErrInvalidInput)
	}

	if r := validation.Email(req.Email, nil); !r.Valid {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, r.Message)
	}
	if existing, err := uc.userRepo.GetByEmail(req.Email); err != nil {
		return nil, fmt.Errorf("error verificando email: %w", err)
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	if r := validation.LoginID(req.LoginID, nil); !r.Valid {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, r.Message)
	}
	if existing, err := uc.userRepo.GetByLoginID(req.LoginID); err != nil {
		return nil, fmt.Errorf("error verificando login ID: %w", err)
	} else if existing != nil {
		return nil, domain.ErrLoginIDTaken
	}

	if r, _ := validation.Password(req.Password); !r.Valid {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, r.Message)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error generando hash: %w", err)
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.CompanyName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, fmt.Errorf("error creando empresa: %w", err)
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		CompanyID:    company.ID,
		LoginID:      req.LoginID,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.FullName),
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("error creando usuario: %w", err)
	}

	return uc.issueSession(user)
}

// Login autentica por email + contraseña y devuelve el token de sesión.
// Credenciales malas y usuario inexistente responden igual (ErrUnauthorized)
// para no revelar qué emails existen.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("error consultando usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	return uc.issueSession(user)
}

// CheckPassword evalúa las reglas de contraseña y devuelve el checklist,
// para el feedback en vivo del formulario de registro.
func (uc *UseCase) CheckPassword(password string) dto.PasswordCheckResponse {
	result, checks := validation.Password(password)
	return dto.PasswordCheckResponse{
		Valid:   result.Valid,
		Message: result.Message,
		Checks:  checks,
	}
}

// RequestPasswordReset genera un OTP de 6 dígitos, guarda solo su hash y lo
// entrega por el canal configurado. Si el email no existe responde sin error
// para no revelar cuentas registradas.
func (uc *UseCase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("error consultando usuario: %w", err)
	}
	if user == nil {
		return nil
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("error generando OTP: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error generando hash del OTP: %w", err)
	}

	now := time.Now()
	reset := &entity.PasswordReset{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		OTPHash:   string(hash),
		ExpiresAt: now.Add(time.Duration(uc.cfg.OTPExpMinutes) * time.Minute),
		CreatedAt: now,
	}
	if err := uc.resetRepo.Create(reset); err != nil {
		return fmt.Errorf("error guardando solicitud: %w", err)
	}

	return uc.sender.SendOTP(ctx, user.Email, code)
}

// VerifyOTP compara el código contra el hash vigente y, si coincide, emite un
// token de reseteo de corta vida (Purpose="reset") y consume la solicitud.
func (uc *UseCase) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (*dto.VerifyOTPResponse, error) {
	reset, err := uc.resetRepo.GetActiveByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("error consultando solicitud: %w", err)
	}
	if reset == nil || !reset.Usable(time.Now()) {
		return nil, domain.ErrInvalidOTP
	}
	if err := bcrypt.CompareHashAndPassword([]byte(reset.OTPHash), []byte(req.Code)); err != nil {
		return nil, domain.ErrInvalidOTP
	}

	user, err := uc.userRepo.GetByID(reset.UserID)
	if err != nil {
		return nil, fmt.Errorf("error consultando usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidOTP
	}

	if err := uc.resetRepo.MarkConsumed(reset.ID); err != nil {
		return nil, fmt.Errorf("error consumiendo solicitud: %w", err)
	}

	token, err := jwt.GenerateReset(uc.cfg.JWTSecret, user.ID, user.CompanyID, uc.cfg.JWTIssuer, uc.cfg.ResetExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("error generando token de reseteo: %w", err)
	}
	return &dto.VerifyOTPResponse{ResetToken: token}, nil
}

// ResetPassword valida el token de reseteo y fija la contraseña nueva.
func (uc *UseCase) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	claims, err := jwt.Parse(uc.cfg.JWTSecret, req.ResetToken)
	if err != nil || claims.Purpose != jwt.PurposeReset {
		return domain.ErrUnauthorized
	}
	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("%w: las contraseñas no coinciden", domain.ErrInvalidInput)
	}
	if r, _ := validation.Password(req.Password); !r.Valid {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, r.Message)
	}

	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return fmt.Errorf("error consultando usuario: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error generando hash: %w", err)
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return fmt.Errorf("error actualizando usuario: %w", err)
	}
	return nil
}

func (uc *UseCase) issueSession(user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, user.CompanyID, user.Role, uc.cfg.JWTIssuer, uc.cfg.JWTExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("error generando token: %w", err)
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		CompanyID: user.CompanyID,
		LoginID:   user.LoginID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// generateOTP produce un código numérico de 6 dígitos con crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
