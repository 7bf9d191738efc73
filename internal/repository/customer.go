package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/salescrm/internal/model"
	"github.com/umalmyha/salescrm/pkg/db/transactor"
)

// CustomerRepository provides persistence logic for customers.
// Listing lookups are always owner-scoped, there is no way to read
// across owners through this interface.
type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	FindByOwner(ctx context.Context, ownerID, search string, offset, limit int) ([]*model.Customer, error)
	CountByOwner(ctx context.Context, ownerID, search string) (int, error)
	Update(ctx context.Context, c *model.Customer) error
	DeleteByID(ctx context.Context, id string) error
}

type postgresCustomerRepository struct {
	e transactor.PgxWithinTransactionExecutor
}

// NewPostgresCustomerRepository builds postgres CustomerRepository
func NewPostgresCustomerRepository(e transactor.PgxWithinTransactionExecutor) CustomerRepository {
	return &postgresCustomerRepository{e: e}
}

func (r *postgresCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	q := `INSERT INTO customers(id, name, email, phone, company, owner_id)
				   VALUES($1, $2, $3, $4, $5, $6)`
	if _, err := r.e.Executor(ctx).Exec(ctx, q, c.ID, c.Name, c.Email, c.Phone, c.Company, c.OwnerID); err != nil {
		return err
	}
	return nil
}

func (r *postgresCustomerRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	q := "SELECT id, name, email, phone, company, owner_id FROM customers WHERE id = $1"

	var c model.Customer
	row := r.e.Executor(ctx).QueryRow(ctx, q, id)
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.OwnerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresCustomerRepository) FindByOwner(ctx context.Context, ownerID, search string, offset, limit int) ([]*model.Customer, error) {
	q := `SELECT id, name, email, phone, company, owner_id FROM customers
		   WHERE owner_id = $1 AND (name ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%')
		   ORDER BY name
		   LIMIT $3 OFFSET $4`

	rows, err := r.e.Executor(ctx).Query(ctx, q, ownerID, search, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.OwnerID); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresCustomerRepository) CountByOwner(ctx context.Context, ownerID, search string) (int, error) {
	q := `SELECT count(*) FROM customers
		   WHERE owner_id = $1 AND (name ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%')`

	var count int
	if err := r.e.Executor(ctx).QueryRow(ctx, q, ownerID, search).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postgresCustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	q := "UPDATE customers SET name = $1, email = $2, phone = $3, company = $4 WHERE id = $5"
	if _, err := r.e.Executor(ctx).Exec(ctx, q, c.Name, c.Email, c.Phone, c.Company, c.ID); err != nil {
		return err
	}
	return nil
}

func (r *postgresCustomerRepository) DeleteByID(ctx context.Context, id string) error {
	q := "DELETE FROM customers WHERE id = $1"
	if _, err := r.e.Executor(ctx).Exec(ctx, q, id); err != nil {
		return err
	}
	return nil
}
