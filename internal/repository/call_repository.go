package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

func (r *Repository) CreateCall(ctx context.Context, c entity.Call) (entity.Call, error) {
	const q = `
	INSERT INTO calls (
		id,
		organization_id,
		customer_id,
		agent_id,
		phone_number,
		direction,
		status,
		duration_seconds,
		notes,
		created_at
	)
	VALUES ('call_' || nextval('calls_seq'), $1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id
	`

	c.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	err := r.db.QueryRow(
		ctx,
		q,
		c.OrganizationID,
		c.CustomerID,
		c.AgentID,
		c.PhoneNumber,
		c.Direction,
		c.Status,
		c.DurationSeconds,
		c.Notes,
		c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return entity.Call{}, err
	}

	return c, nil
}

func (r *Repository) Calls(ctx context.Context, f entity.CallFilter) ([]entity.Call, int, error) {
	page := f.Page.Normalize()

	q, args, err := applyCallFilter(psql.Select(withTotal(callColumns)...).From("calls"), f).
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

	calls := make([]entity.Call, 0, page.Limit)

	var total int

	for rows.Next() {
		var c entity.Call

		err = rows.Scan(
			&c.ID,
			&c.OrganizationID,
			&c.CustomerID,
			&c.AgentID,
			&c.PhoneNumber,
			&c.Direction,
			&c.Status,
			&c.DurationSeconds,
			&c.Notes,
			&c.CreatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, err
		}

		calls = append(calls, c)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(calls) == 0 && page.Page > 1 {
		total, err = r.count(ctx, applyCallFilter(psql.Select("COUNT(*)").From("calls"), f))
		if err != nil {
			return nil, 0, err
		}
	}

	return calls, total, nil
}

func applyCallFilter(stmt sq.SelectBuilder, f entity.CallFilter) sq.SelectBuilder {
	stmt = stmt.Where(sq.Eq{"organization_id": f.OrganizationID})

	if f.AgentID != "" {
		stmt = stmt.Where(sq.Eq{"agent_id": f.AgentID})
	}

	if f.CustomerID != "" {
		stmt = stmt.Where(sq.Eq{"customer_id": f.CustomerID})
	}

	if f.Status != "" {
		stmt = stmt.Where(sq.Eq{"status": f.Status})
	}

	return stmt
}
