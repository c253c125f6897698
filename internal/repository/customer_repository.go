package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

func (r *Repository) CreateCustomer(ctx context.Context, c entity.Customer) (entity.Customer, error) {
	const q = `
	INSERT INTO customers (
		id,
		organization_id,
		name,
		account_number,
		email,
		phone,
		company,
		tier,
		status,
		created_at,
		updated_at
	)
	VALUES ('cust_' || nextval('customers_seq'), $1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	RETURNING id
	`

	now := time.Now().UTC().Truncate(time.Microsecond)

	err := r.db.QueryRow(
		ctx,
		q,
		c.OrganizationID,
		c.Name,
		c.AccountNumber,
		c.Email,
		c.Phone,
		c.Company,
		c.Tier,
		c.Status,
		now,
	).Scan(&c.ID)
	if err != nil {
		return entity.Customer{}, err
	}

	c.CreatedAt = now
	c.UpdatedAt = now

	return c, nil
}

func (r *Repository) Customer(ctx context.Context, orgID, id string) (entity.Customer, error) {
	q, args, err := psql.Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"id": id, "organization_id": orgID}).
		ToSql()
	if err != nil {
		return entity.Customer{}, err
	}

	c, err := scanCustomer(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Customer{}, entity.ErrNotFound
		}

		return entity.Customer{}, err
	}

	return c, nil
}

func (r *Repository) Customers(ctx context.Context, f entity.CustomerFilter) ([]entity.Customer, int, error) {
	page := f.Page.Normalize()

	stmt := applyCustomerFilter(psql.Select(withTotal(customerColumns)...).From("customers"), f)

	q, args, err := stmt.
		OrderBy("created_at ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	customers := make([]entity.Customer, 0, page.Limit)

	var total int

	for rows.Next() {
		var c entity.Customer

		err = rows.Scan(
			&c.ID,
			&c.OrganizationID,
			&c.Name,
			&c.AccountNumber,
			&c.Email,
			&c.Phone,
			&c.Company,
			&c.Tier,
			&c.Status,
			&c.CreatedAt,
			&c.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, err
		}

		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(customers) == 0 && page.Page > 1 {
		total, err = r.count(ctx, applyCustomerFilter(psql.Select("COUNT(*)").From("customers"), f))
		if err != nil {
			return nil, 0, err
		}
	}

	return customers, total, nil
}

func (r *Repository) UpdateCustomer(ctx context.Context, c entity.Customer) (entity.Customer, error) {
	const q = `
	UPDATE customers
	SET name = $1, email = $2, phone = $3, company = $4, tier = $5, status = $6, updated_at = $7
	WHERE id = $8 AND organization_id = $9
	`

	c.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	result, err := r.db.Exec(ctx, q, c.Name, c.Email, c.Phone, c.Company, c.Tier, c.Status, c.UpdatedAt, c.ID, c.OrganizationID)
	if err != nil {
		return entity.Customer{}, err
	}

	if result.RowsAffected() == 0 {
		return entity.Customer{}, entity.ErrNotFound
	}

	return c, nil
}

func (r *Repository) DeleteCustomer(ctx context.Context, orgID, id string) error {
	return r.delete(ctx, "customers", orgID, id)
}

func applyCustomerFilter(stmt sq.SelectBuilder, f entity.CustomerFilter) sq.SelectBuilder {
	stmt = stmt.Where(sq.Eq{"organization_id": f.OrganizationID})

	if f.Tier != "" {
		stmt = stmt.Where(sq.Eq{"tier": f.Tier})
	}

	if f.Status != "" {
		stmt = stmt.Where(sq.Eq{"status": f.Status})
	}

	if f.Phone != "" {
		stmt = stmt.Where(sq.Eq{"phone": f.Phone})
	}

	if f.Search != "" {
		like := containsPattern(f.Search)
		stmt = stmt.Where(sq.Or{
			sq.ILike{"name": like},
			sq.ILike{"email": like},
			sq.ILike{"account_number": like},
			sq.ILike{"company": like},
			sq.ILike{"phone": like},
		})
	}

	return stmt
}

func scanCustomer(row pgx.Row) (c entity.Customer, err error) {
	err = row.Scan(
		&c.ID,
		&c.OrganizationID,
		&c.Name,
		&c.AccountNumber,
		&c.Email,
		&c.Phone,
		&c.Company,
		&c.Tier,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	return c, err
}

func (r *Repository) delete(ctx context.Context, table, orgID, id string) error {
	q, args, err := psql.Delete(table).Where(sq.Eq{"id": id, "organization_id": orgID}).ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// count is used when a page is past the end and the window total is unavailable.
func (r *Repository) count(ctx context.Context, stmt sq.SelectBuilder) (int, error) {
	q, args, err := stmt.ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := r.db.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}
