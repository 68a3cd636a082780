package postgres

import (
	"fmt"
	"strings"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/jsonfield"
)

// updateBuilder accumulates SET assignments for a dynamic partial
// update. Column names are always literals written in repository code;
// request payloads only ever contribute values, so the statement shape
// cannot be influenced by the client.
type updateBuilder struct {
	assignments []string
	args        []interface{}
}

func (b *updateBuilder) Set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.assignments = append(b.assignments, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) Empty() bool {
	return len(b.assignments) == 0
}

// Build assembles the UPDATE statement. The WHERE columns take the
// placeholders after the assignments, every condition is ANDed, and
// updated_at is always stamped.
func (b *updateBuilder) Build(table string, whereCols []string, whereArgs ...interface{}) (string, []interface{}) {
	sets := make([]string, 0, len(b.assignments)+1)
	sets = append(sets, b.assignments...)
	sets = append(sets, "updated_at = now()")

	conds := make([]string, 0, len(whereCols))
	for i, col := range whereCols {
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(b.args)+i+1))
	}

	args := make([]interface{}, 0, len(b.args)+len(whereArgs))
	args = append(args, b.args...)
	args = append(args, whereArgs...)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		table, strings.Join(sets, ", "), strings.Join(conds, " AND "))
	return query, args
}

// optValue unwraps an Optional for storage: explicit null clears the
// column, a value replaces it.
func optValue[T any](o domain.Optional[T]) interface{} {
	if o.Null {
		return nil
	}
	return o.Value
}

// optEncoded unwraps an Optional structured value into its encoded
// text form.
func optEncoded[T any](o domain.Optional[T]) interface{} {
	if o.Null {
		return nil
	}
	return jsonfield.Encode(o.Value)
}
