package repository

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	customerColumns = []string{
		"id",
		"organization_id",
		"name",
		"account_number",
		"email",
		"phone",
		"company",
		"tier",
		"status",
		"created_at",
		"updated_at",
	}

	ticketColumns = []string{
		"id",
		"organization_id",
		"customer_id",
		"subject",
		"description",
		"status",
		"priority",
		"assigned_to",
		"created_at",
		"updated_at",
	}

	orderColumns = []string{
		"id",
		"organization_id",
		"customer_id",
		"items",
		"total",
		"status",
		"created_at",
		"updated_at",
	}

	callColumns = []string{
		"id",
		"organization_id",
		"customer_id",
		"agent_id",
		"phone_number",
		"direction",
		"status",
		"duration_seconds",
		"notes",
		"created_at",
	}
)

func withTotal(columns []string) []string {
	out := make([]string, 0, len(columns)+1)
	out = append(out, columns...)

	return append(out, "COUNT(*) OVER() AS total_count")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere in
// the column. Backslash is the default LIKE escape in Postgres.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
