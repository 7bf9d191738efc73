package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/salescrm/internal/model"
	"github.com/umalmyha/salescrm/pkg/db/transactor"
)

// LeadRepository provides persistence logic for leads
type LeadRepository interface {
	Create(ctx context.Context, l *model.Lead) error
	FindByID(ctx context.Context, id string) (*model.Lead, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]*model.Lead, error)
	FindByOwnerID(ctx context.Context, ownerID string) ([]*model.Lead, error)
	Update(ctx context.Context, l *model.Lead) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByCustomerID(ctx context.Context, customerID string) error
}

type postgresLeadRepository struct {
	e transactor.PgxWithinTransactionExecutor
}

// NewPostgresLeadRepository builds postgres LeadRepository
func NewPostgresLeadRepository(e transactor.PgxWithinTransactionExecutor) LeadRepository {
	return &postgresLeadRepository{e: e}
}

func (r *postgresLeadRepository) Create(ctx context.Context, l *model.Lead) error {
	q := `INSERT INTO leads(id, customer_id, title, description, status, value, created_at)
			   VALUES($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.e.Executor(ctx).Exec(ctx, q, l.ID, l.CustomerID, l.Title, l.Description, l.Status, l.Value, l.CreatedAt)
	if err != nil {
		return err
	}
	return nil
}

func (r *postgresLeadRepository) FindByID(ctx context.Context, id string) (*model.Lead, error) {
	q := `SELECT id, customer_id, title, description, status, value, created_at
			FROM leads WHERE id = $1`

	var l model.Lead
	row := r.e.Executor(ctx).QueryRow(ctx, q, id)
	if err := row.Scan(&l.ID, &l.CustomerID, &l.Title, &l.Description, &l.Status, &l.Value, &l.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *postgresLeadRepository) FindByCustomerID(ctx context.Context, customerID string) ([]*model.Lead, error) {
	q := `SELECT id, customer_id, title, description, status, value, created_at
			FROM leads WHERE customer_id = $1 ORDER BY created_at`

	rows, err := r.e.Executor(ctx).Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// FindByOwnerID resolves ownership in bulk through the parent customer relation
func (r *postgresLeadRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]*model.Lead, error) {
	q := `SELECT l.id, l.customer_id, l.title, l.description, l.status, l.value, l.created_at
			FROM leads l
			JOIN customers c ON c.id = l.customer_id
		   WHERE c.owner_id = $1`

	rows, err := r.e.Executor(ctx).Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *postgresLeadRepository) Update(ctx context.Context, l *model.Lead) error {
	q := "UPDATE leads SET title = $1, description = $2, status = $3, value = $4 WHERE id = $5"
	if _, err := r.e.Executor(ctx).Exec(ctx, q, l.Title, l.Description, l.Status, l.Value, l.ID); err != nil {
		return err
	}
	return nil
}

func (r *postgresLeadRepository) DeleteByID(ctx context.Context, id string) error {
	q := "DELETE FROM leads WHERE id = $1"
	if _, err := r.e.Executor(ctx).Exec(ctx, q, id); err != nil {
		return err
	}
	return nil
}

func (r *postgresLeadRepository) DeleteByCustomerID(ctx context.Context, customerID string) error {
	q := "DELETE FROM leads WHERE customer_id = $1"
	if _, err := r.e.Executor(ctx).Exec(ctx, q, customerID); err != nil {
		return err
	}
	return nil
}

func (r *postgresLeadRepository) scanRows(rows pgx.Rows) ([]*model.Lead, error) {
	leads := make([]*model.Lead, 0)
	for rows.Next() {
		var l model.Lead
		if err := rows.Scan(&l.ID, &l.CustomerID, &l.Title, &l.Description, &l.Status, &l.Value, &l.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return leads, nil
}
