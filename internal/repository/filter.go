package repository

import (
	"fmt"
	"strings"
)

const defaultPageSize = 10

// filterQuery accumulates optional WHERE clauses with positional args and
// renders an offset/limit query. Prefix matches are case-insensitive.
type filterQuery struct {
	base    string
	clauses []string
	args    []any
}

func newFilterQuery(base string) *filterQuery {
	return &filterQuery{base: base, clauses: []string{"1=1"}}
}

func (q *filterQuery) Equal(column string, value any) {
	q.args = append(q.args, value)
	q.clauses = append(q.clauses, fmt.Sprintf("%s=$%d", column, len(q.args)))
}

func (q *filterQuery) EqualInt64(column string, value *int64) {
	if value == nil {
		return
	}
	q.Equal(column, *value)
}

func (q *filterQuery) EqualString(column string, value *string) {
	if value == nil {
		return
	}
	q.Equal(column, *value)
}

func (q *filterQuery) PrefixILike(column string, value *string) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return
	}
	q.args = append(q.args, strings.TrimSpace(*value)+"%")
	q.clauses = append(q.clauses, fmt.Sprintf("%s ILIKE $%d", column, len(q.args)))
}

// Build renders the final query ordered by the given column.
func (q *filterQuery) Build(orderBy string, limit, offset int) string {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return fmt.Sprintf("%s WHERE %s ORDER BY %s LIMIT %d OFFSET %d",
		q.base, strings.Join(q.clauses, " AND "), orderBy, limit, offset)
}

func (q *filterQuery) Args() []any {
	return q.args
}
