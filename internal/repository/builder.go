package repository

import (
	"fmt"
	"strings"
)

// predicateBuilder accumulates WHERE predicates together with their bound
// values. Placeholder indexes are rendered from the running argument count
// at append time, so predicate order and parameter order cannot drift apart.
type predicateBuilder struct {
	conds []string
	args  []any
}

// and appends one predicate combined with AND. cond must contain a single
// %d verb, which is replaced with the positional placeholder of value.
func (b *predicateBuilder) and(cond string, value any) {
	b.args = append(b.args, value)
	b.conds = append(b.conds, fmt.Sprintf(cond, len(b.args)))
}

// bind appends a value without a predicate and returns its placeholder
// index. Used for trailing parameters such as LIMIT.
func (b *predicateBuilder) bind(value any) int {
	b.args = append(b.args, value)
	return len(b.args)
}

// where renders the WHERE clause. The clause starts from the always-true
// 1=1 predicate so every accumulated condition can be prefixed with AND
// unconditionally.
func (b *predicateBuilder) where() string {
	var sb strings.Builder
	sb.WriteString("WHERE 1=1")
	for _, cond := range b.conds {
		sb.WriteString("\nAND ")
		sb.WriteString(cond)
	}
	return sb.String()
}
