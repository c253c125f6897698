package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/callcenter/internal/entity"
)

func TestContainsPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		search string
		want   string
	}{
		{name: "plain", search: "acme", want: "%acme%"},
		{name: "percent", search: "100%", want: `%100\%%`},
		{name: "underscore", search: "a_b", want: `%a\_b%`},
		{name: "backslash", search: `c:\x`, want: `%c:\\x%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, containsPattern(tt.search))
		})
	}
}

func TestApplyCustomerFilter_EscapesSearch(t *testing.T) {
	t.Parallel()

	stmt := applyCustomerFilter(psql.Select("id").From("customers"), entity.CustomerFilter{
		OrganizationID: "org_1",
		Search:         "50%_off",
	})

	query, args, err := stmt.ToSql()
	require.NoError(t, err)
	require.Contains(t, query, "name ILIKE $2")
	require.Len(t, args, 6)
	require.Equal(t, "org_1", args[0])

	for _, arg := range args[1:] {
		require.Equal(t, `%50\%\_off%`, arg)
	}
}
