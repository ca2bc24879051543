package repositories

import (
	"strconv"
	"strings"
)

// queryBuilder accumulates predicates and their positional arguments.
// Placeholders are numbered in the order values are bound.
type queryBuilder struct {
	predicates []string
	having     []string
	args       []any
}

// bind appends v to the argument list and returns its placeholder.
func (b *queryBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *queryBuilder) where(predicate string) {
	b.predicates = append(b.predicates, predicate)
}

func (b *queryBuilder) havingCond(predicate string) {
	b.having = append(b.having, predicate)
}

func (b *queryBuilder) whereClause() string {
	if len(b.predicates) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.predicates, " AND ")
}

func (b *queryBuilder) havingClause() string {
	if len(b.having) == 0 {
		return ""
	}
	return "HAVING " + strings.Join(b.having, " AND ")
}
