package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists CRM records (customers, tickets, orders, calls) in Postgres.
type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}
