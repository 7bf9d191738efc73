package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/salescrm/internal/model"
	"github.com/umalmyha/salescrm/pkg/db/transactor"
)

// UserRepository provides persistence logic for users
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type postgresUserRepository struct {
	e transactor.PgxWithinTransactionExecutor
}

// NewPostgresUserRepository builds postgres UserRepository
func NewPostgresUserRepository(e transactor.PgxWithinTransactionExecutor) UserRepository {
	return &postgresUserRepository{e: e}
}

func (r *postgresUserRepository) Create(ctx context.Context, u *model.User) error {
	q := "INSERT INTO users(id, name, email, password_hash, role) VALUES($1, $2, $3, $4, $5)"
	if _, err := r.e.Executor(ctx).Exec(ctx, q, u.ID, u.Name, u.Email, u.PasswordHash, u.Role); err != nil {
		return err
	}
	return nil
}

func (r *postgresUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	q := "SELECT id, name, email, password_hash, role FROM users WHERE email = $1"
	row := r.e.Executor(ctx).QueryRow(ctx, q, email)
	return r.scanRow(row)
}

func (r *postgresUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	q := "SELECT id, name, email, password_hash, role FROM users WHERE id = $1"
	row := r.e.Executor(ctx).QueryRow(ctx, q, id)
	return r.scanRow(row)
}

func (r *postgresUserRepository) scanRow(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
