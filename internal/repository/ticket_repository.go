package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

func (r *Repository) CreateTicket(ctx context.Context, t entity.Ticket) (entity.Ticket, error) {
	const q = `
	INSERT INTO tickets (
		id,
		organization_id,
		customer_id,
		subject,
		description,
		status,
		priority,
		assigned_to,
		created_at,
		updated_at
	)
	VALUES ('ticket_' || nextval('tickets_seq'), $1, $2, $3, $4, $5, $6, $7, $8, $8)
	RETURNING id
	`

	now := time.Now().UTC().Truncate(time.Microsecond)

	err := r.db.QueryRow(
		ctx,
		q,
		t.OrganizationID,
		t.CustomerID,
		t.Subject,
		t.Description,
		t.Status,
		t.Priority,
		t.AssignedTo,
		now,
	).Scan(&t.ID)
	if err != nil {
		return entity.Ticket{}, err
	}

	t.CreatedAt = now
	t.UpdatedAt = now

	return t, nil
}

func (r *Repository) Ticket(ctx context.Context, orgID, id string) (entity.Ticket, error) {
	q, args, err := psql.Select(ticketColumns...).
		From("tickets").
		Where(sq.Eq{"id": id, "organization_id": orgID}).
		ToSql()
	if err != nil {
		return entity.Ticket{}, err
	}

	var t entity.Ticket

	err = r.db.QueryRow(ctx, q, args...).Scan(
		&t.ID,
		&t.OrganizationID,
		&t.CustomerID,
		&t.Subject,
		&t.Description,
		&t.Status,
		&t.Priority,
		&t.AssignedTo,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Ticket{}, entity.ErrNotFound
		}

		return entity.Ticket{}, err
	}

	return t, nil
}

func (r *Repository) Tickets(ctx context.Context, f entity.TicketFilter) ([]entity.Ticket, int, error) {
	page := f.Page.Normalize()

	q, args, err := applyTicketFilter(psql.Select(withTotal(ticketColumns)...).From("tickets"), f).
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

	tickets := make([]entity.Ticket, 0, page.Limit)

	var total int

	for rows.Next() {
		var t entity.Ticket

		err = rows.Scan(
			&t.ID,
			&t.OrganizationID,
			&t.CustomerID,
			&t.Subject,
			&t.Description,
			&t.Status,
			&t.Priority,
			&t.AssignedTo,
			&t.CreatedAt,
			&t.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, err
		}

		tickets = append(tickets, t)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(tickets) == 0 && page.Page > 1 {
		total, err = r.count(ctx, applyTicketFilter(psql.Select("COUNT(*)").From("tickets"), f))
		if err != nil {
			return nil, 0, err
		}
	}

	return tickets, total, nil
}

func (r *Repository) UpdateTicket(ctx context.Context, t entity.Ticket) (entity.Ticket, error) {
	const q = `
	UPDATE tickets
	SET subject = $1, description = $2, status = $3, priority = $4, assigned_to = $5, updated_at = $6
	WHERE id = $7 AND organization_id = $8
	`

	t.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	result, err := r.db.Exec(ctx, q, t.Subject, t.Description, t.Status, t.Priority, t.AssignedTo, t.UpdatedAt, t.ID, t.OrganizationID)
	if err != nil {
		return entity.Ticket{}, err
	}

	if result.RowsAffected() == 0 {
		return entity.Ticket{}, entity.ErrNotFound
	}

	return t, nil
}

func (r *Repository) DeleteTicket(ctx context.Context, orgID, id string) error {
	return r.delete(ctx, "tickets", orgID, id)
}

func (r *Repository) OpenTicketCounts(ctx context.Context, orgID string) (map[string]int, error) {
	const q = `
	SELECT assigned_to, COUNT(*)
	FROM tickets
	WHERE organization_id = $1 AND assigned_to <> '' AND status IN ('open', 'in_progress')
	GROUP BY assigned_to
	`

	rows, err := r.db.Query(ctx, q, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)

	for rows.Next() {
		var (
			agentID string
			n       int
		)

		if err := rows.Scan(&agentID, &n); err != nil {
			return nil, err
		}

		counts[agentID] = n
	}

	return counts, rows.Err()
}

func applyTicketFilter(stmt sq.SelectBuilder, f entity.TicketFilter) sq.SelectBuilder {
	stmt = stmt.Where(sq.Eq{"organization_id": f.OrganizationID})

	if f.Status != "" {
		stmt = stmt.Where(sq.Eq{"status": f.Status})
	}

	if f.OpenOnly {
		stmt = stmt.Where(sq.Eq{"status": []entity.TicketStatus{entity.TicketStatusOpen, entity.TicketStatusInProgress}})
	}

	if f.Priority != "" {
		stmt = stmt.Where(sq.Eq{"priority": f.Priority})
	}

	if f.AssignedTo != "" {
		stmt = stmt.Where(sq.Eq{"assigned_to": f.AssignedTo})
	}

	if f.CustomerID != "" {
		stmt = stmt.Where(sq.Eq{"customer_id": f.CustomerID})
	}

	return stmt
}
