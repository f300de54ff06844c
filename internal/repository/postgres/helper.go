package postgres

import (
	"database/sql"
	"fmt"

	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/types"
)

// sortColumn maps the filter sort onto a known column, qualified by alias
func sortColumn(filter *types.QueryFilter, alias string) string {
	column := types.FILTER_DEFAULT_SORT
	switch filter.GetSort() {
	case "created_at", "updated_at":
		column = filter.GetSort()
	}
	return alias + column
}

func sortOrder(filter *types.QueryFilter) string {
	if filter.GetOrder() == types.OrderAsc {
		return "ASC"
	}
	return "DESC"
}

// whereActive appends the is_active condition of filter, if any. query must
// already end in a WHERE clause binding len(args) parameters.
func whereActive(query string, args []interface{}, filter *types.QueryFilter, alias string) (string, []interface{}) {
	if filter != nil && filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		query = fmt.Sprintf("%s AND %sis_active = $%d", query, alias, len(args))
	}
	return query, args
}

// listQuery adds the filter conditions, sort and pagination to query
func listQuery(query string, args []interface{}, filter *types.QueryFilter, alias string) (string, []interface{}) {
	query, args = whereActive(query, args, filter, alias)
	query = fmt.Sprintf("%s ORDER BY %s %s, %sid %s", query,
		sortColumn(filter, alias), sortOrder(filter), alias, sortOrder(filter))

	args = append(args, filter.GetLimit(), filter.GetOffset())
	query = fmt.Sprintf("%s LIMIT $%d OFFSET $%d", query, len(args)-1, len(args))
	return query, args
}

// checkAffected turns an update that matched no row into a not found error
func checkAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return ierr.FromPostgres(err, entity)
	}
	if n == 0 {
		return ierr.NewErrorf("%s not found", entity).
			WithHintf("%s not found", entity).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

// withoutActive drops the is_active condition for tables that lack the column
func withoutActive(filter *types.QueryFilter) *types.QueryFilter {
	if filter == nil || filter.IsActive == nil {
		return filter
	}
	out := *filter
	out.IsActive = nil
	return &out
}
