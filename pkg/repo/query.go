package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Tx is the minimal query surface shared by pgx.Tx and *pgxpool.Pool, so
// repositories can run against either a transaction or the pool directly.
type Tx interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Join concatenates non-empty SQL parts with a single space.
func Join(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// JoinWhere builds a WHERE clause from the given expressions joined with AND.
// Returns an empty string when there are no expressions.
func JoinWhere(exprs ...string) string {
	nonEmpty := make([]string, 0, len(exprs))
	for _, e := range exprs {
		if strings.TrimSpace(e) != "" {
			nonEmpty = append(nonEmpty, e)
		}
	}
	if len(nonEmpty) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(nonEmpty, " AND ")
}

// FormatLimitOffset renders LIMIT/OFFSET, omitting either when non-positive.
func FormatLimitOffset(limit, offset int) string {
	switch {
	case limit > 0 && offset > 0:
		return fmt.Sprintf("LIMIT %d OFFSET %d", limit, offset)
	case limit > 0:
		return fmt.Sprintf("LIMIT %d", limit)
	case offset > 0:
		return fmt.Sprintf("OFFSET %d", offset)
	default:
		return ""
	}
}

type SortByField[T comparable] struct {
	Field     T
	Ascending bool
}

type SortBy[T comparable] struct {
	Fields []SortByField[T]
}

// ToSQL renders an ORDER BY clause using the given field-to-column mapping.
// Fields missing from the mapping are skipped; an empty sort renders nothing.
func (s SortBy[T]) ToSQL(mapping map[T]string) string {
	if len(s.Fields) == 0 {
		return ""
	}
	cols := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		col, ok := mapping[f.Field]
		if !ok {
			continue
		}
		if f.Ascending {
			cols = append(cols, col+" ASC")
		} else {
			cols = append(cols, col+" DESC")
		}
	}
	if len(cols) == 0 {
		return ""
	}
	return "ORDER BY " + strings.Join(cols, ", ")
}
