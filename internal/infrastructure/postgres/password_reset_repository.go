package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

var _ repository.PasswordResetRepository = (*PasswordResetRepo)(nil)

// PasswordResetRepo implementación de PasswordResetRepository sobre PostgreSQL.
type PasswordResetRepo struct {
	q Querier
}

// NewPasswordResetRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPasswordResetRepository(q Querier) *PasswordResetRepo {
	return &PasswordResetRepo{q: q}
}

func (r *PasswordResetRepo) Create(reset *entity.PasswordReset) error {
	query := `
		INSERT INTO password_resets (id, user_id, email, otp_hash, expires_at, consumed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		reset.ID, reset.UserID, reset.Email, reset.OTPHash,
		reset.ExpiresAt, reset.ConsumedAt, reset.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert password reset: %w", err)
	}
	return nil
}

// GetActiveByEmail devuelve la solicitud vigente más reciente para el email.
func (r *PasswordResetRepo) GetActiveByEmail(email string) (*entity.PasswordReset, error) {
	query := `
		SELECT id, user_id, email, otp_hash, expires_at, consumed_at, created_at
		FROM password_resets
		WHERE lower(email) = lower($1) AND consumed_at IS NULL AND expires_at > now()
		ORDER BY created_at DESC
		LIMIT 1`
	var reset entity.PasswordReset
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&reset.ID, &reset.UserID, &reset.Email, &reset.OTPHash,
		&reset.ExpiresAt, &reset.ConsumedAt, &reset.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active password reset: %w", err)
	}
	return &reset, nil
}

func (r *PasswordResetRepo) MarkConsumed(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE password_resets SET consumed_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark password reset consumed: %w", err)
	}
	return nil
}
