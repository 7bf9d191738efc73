package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/salescrm/internal/model"
	"github.com/umalmyha/salescrm/pkg/db/transactor"
)

// RefreshTokenRepository provides persistence logic for refresh tokens
type RefreshTokenRepository interface {
	Create(ctx context.Context, t *model.RefreshToken) error
	FindByID(ctx context.Context, id string) (*model.RefreshToken, error)
	FindTokensByUserID(ctx context.Context, userID string) ([]*model.RefreshToken, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type postgresRefreshTokenRepository struct {
	e transactor.PgxWithinTransactionExecutor
}

// NewPostgresRefreshTokenRepository builds postgres RefreshTokenRepository
func NewPostgresRefreshTokenRepository(e transactor.PgxWithinTransactionExecutor) RefreshTokenRepository {
	return &postgresRefreshTokenRepository{e: e}
}

func (r *postgresRefreshTokenRepository) Create(ctx context.Context, t *model.RefreshToken) error {
	q := `INSERT INTO refresh_tokens(id, user_id, fingerprint, expires_in, created_at)
				   VALUES($1, $2, $3, $4, $5)`
	if _, err := r.e.Executor(ctx).Exec(ctx, q, t.ID, t.UserID, t.Fingerprint, t.ExpiresIn, t.CreatedAt); err != nil {
		return err
	}
	return nil
}

func (r *postgresRefreshTokenRepository) FindByID(ctx context.Context, id string) (*model.RefreshToken, error) {
	q := "SELECT id, user_id, fingerprint, expires_in, created_at FROM refresh_tokens WHERE id = $1"

	var t model.RefreshToken
	err := r.e.Executor(ctx).QueryRow(ctx, q, id).Scan(&t.ID, &t.UserID, &t.Fingerprint, &t.ExpiresIn, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresRefreshTokenRepository) FindTokensByUserID(ctx context.Context, userID string) ([]*model.RefreshToken, error) {
	q := "SELECT id, user_id, fingerprint, expires_in, created_at FROM refresh_tokens WHERE user_id = $1"

	rows, err := r.e.Executor(ctx).Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := make([]*model.RefreshToken, 0)
	for rows.Next() {
		var t model.RefreshToken
		if err := rows.Scan(&t.ID, &t.UserID, &t.Fingerprint, &t.ExpiresIn, &t.CreatedAt); err != nil {
			return nil, err
		}
		tokens = append(tokens, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *postgresRefreshTokenRepository) DeleteByID(ctx context.Context, id string) error {
	q := "DELETE FROM refresh_tokens WHERE id = $1"
	if _, err := r.e.Executor(ctx).Exec(ctx, q, id); err != nil {
		return err
	}
	return nil
}

func (r *postgresRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	q := "DELETE FROM refresh_tokens WHERE user_id = $1"
	if _, err := r.e.Executor(ctx).Exec(ctx, q, userID); err != nil {
		return err
	}
	return nil
}
