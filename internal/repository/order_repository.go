package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

func (r *Repository) CreateOrder(ctx context.Context, o entity.Order) (entity.Order, error) {
	const q = `
	INSERT INTO orders (
		id,
		organization_id,
		customer_id,
		items,
		total,
		status,
		created_at,
		updated_at
	)
	VALUES ('order_' || nextval('orders_seq'), $1, $2, $3, $4, $5, $6, $6)
	RETURNING id
	`

	now := time.Now().UTC().Truncate(time.Microsecond)

	err := r.db.QueryRow(ctx, q, o.OrganizationID, o.CustomerID, o.Items, o.Total, o.Status, now).Scan(&o.ID)
	if err != nil {
		return entity.Order{}, err
	}

	o.CreatedAt = now
	o.UpdatedAt = now

	return o, nil
}

func (r *Repository) Order(ctx context.Context, orgID, id string) (entity.Order, error) {
	q, args, err := psql.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id, "organization_id": orgID}).
		ToSql()
	if err != nil {
		return entity.Order{}, err
	}

	var o entity.Order

	err = r.db.QueryRow(ctx, q, args...).Scan(
		&o.ID,
		&o.OrganizationID,
		&o.CustomerID,
		&o.Items,
		&o.Total,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Order{}, entity.ErrNotFound
		}

		return entity.Order{}, err
	}

	return o, nil
}

func (r *Repository) Orders(ctx context.Context, f entity.OrderFilter) ([]entity.Order, int, error) {
	page := f.Page.Normalize()

	q, args, err := applyOrderFilter(psql.Select(withTotal(orderColumns)...).From("orders"), f).
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

	orders := make([]entity.Order, 0, page.Limit)

	var total int

	for rows.Next() {
		var o entity.Order

		err = rows.Scan(
			&o.ID,
			&o.OrganizationID,
			&o.CustomerID,
			&o.Items,
			&o.Total,
			&o.Status,
			&o.CreatedAt,
			&o.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, err
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(orders) == 0 && page.Page > 1 {
		total, err = r.count(ctx, applyOrderFilter(psql.Select("COUNT(*)").From("orders"), f))
		if err != nil {
			return nil, 0, err
		}
	}

	return orders, total, nil
}

func (r *Repository) UpdateOrder(ctx context.Context, o entity.Order) (entity.Order, error) {
	const q = `UPDATE orders SET status = $1, items = $2, total = $3, updated_at = $4 WHERE id = $5 AND organization_id = $6`

	o.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	result, err := r.db.Exec(ctx, q, o.Status, o.Items, o.Total, o.UpdatedAt, o.ID, o.OrganizationID)
	if err != nil {
		return entity.Order{}, err
	}

	if result.RowsAffected() == 0 {
		return entity.Order{}, entity.ErrNotFound
	}

	return o, nil
}

func (r *Repository) DeleteOrder(ctx context.Context, orgID, id string) error {
	return r.delete(ctx, "orders", orgID, id)
}

func (r *Repository) Revenue(ctx context.Context, orgID string) (decimal.Decimal, error) {
	const q = `SELECT COALESCE(SUM(total), 0) FROM orders WHERE organization_id = $1 AND status <> 'cancelled'`

	var total decimal.Decimal

	if err := r.db.QueryRow(ctx, q, orgID).Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

func applyOrderFilter(stmt sq.SelectBuilder, f entity.OrderFilter) sq.SelectBuilder {
	stmt = stmt.Where(sq.Eq{"organization_id": f.OrganizationID})

	if f.CustomerID != "" {
		stmt = stmt.Where(sq.Eq{"customer_id": f.CustomerID})
	}

	if f.Status != "" {
		stmt = stmt.Where(sq.Eq{"status": f.Status})
	}

	return stmt
}
