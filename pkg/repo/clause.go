package repo

import (
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// Clause is a single SQL condition carried together with its bound
// arguments. Fragments use '?' markers; positional placeholders are assigned
// only when the assembled clause set is built, so a skipped filter can never
// leave a hole in the placeholder sequence.
type Clause struct {
	fragment string
	args     []any
}

func NewClause(fragment string, args ...any) Clause {
	return Clause{fragment: fragment, args: args}
}

// All matches every row.
func All() Clause { return Clause{fragment: "TRUE"} }

// None matches no row.
func None() Clause { return Clause{fragment: "FALSE"} }

func (c Clause) Fragment() string { return c.fragment }
func (c Clause) Args() []any      { return append([]any(nil), c.args...) }

// IsEmpty reports whether the clause carries no condition at all.
func (c Clause) IsEmpty() bool { return strings.TrimSpace(c.fragment) == "" }

func Eq(column string, value any) Clause {
	return NewClause(column+" = ?", value)
}

// likeEscaper neutralizes LIKE metacharacters so substring filters match
// them literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains matches when the column contains the given substring,
// case-insensitively.
func Contains(column, substring string) Clause {
	return NewClause(column+" ILIKE ?", "%"+likeEscaper.Replace(substring)+"%")
}

// AnyOf matches when the column value is one of the given values.
func AnyOf[T any](column string, values []T) Clause {
	return NewClause(column+" = ANY(?)", values)
}

func Gte(column string, value any) Clause {
	return NewClause(column+" >= ?", value)
}

func Lte(column string, value any) Clause {
	return NewClause(column+" <= ?", value)
}

// Overlaps matches when the array column shares at least one element with
// the given values.
func Overlaps(column string, values []string) Clause {
	return NewClause(column+" && ?", values)
}

// FullText matches the given document expression against a plain-language
// query.
func FullText(documentExpr, query string) Clause {
	return NewClause(documentExpr+" @@ plainto_tsquery('english', ?)", query)
}

// Or combines clauses into a single parenthesized disjunction.
func Or(clauses ...Clause) Clause {
	fragments := make([]string, 0, len(clauses))
	var args []any
	for _, c := range clauses {
		if c.IsEmpty() {
			continue
		}
		fragments = append(fragments, c.fragment)
		args = append(args, c.args...)
	}
	if len(fragments) == 0 {
		return Clause{}
	}
	return Clause{
		fragment: "(" + strings.Join(fragments, " OR ") + ")",
		args:     args,
	}
}

// WhereBuilder accumulates clauses as atomic fragment/argument pairs and
// renders them into a WHERE expression with sequential positional
// placeholders. The base clause is required at construction so no query can
// be assembled without its access scope.
type WhereBuilder struct {
	clauses []Clause
}

func NewWhere(base Clause) *WhereBuilder {
	return &WhereBuilder{clauses: []Clause{base}}
}

func (b *WhereBuilder) Add(c Clause) *WhereBuilder {
	if !c.IsEmpty() {
		b.clauses = append(b.clauses, c)
	}
	return b
}

// Len returns the number of accumulated clauses, base included.
func (b *WhereBuilder) Len() int { return len(b.clauses) }

// Build renders the accumulated clauses into AND-joined expressions and the
// flat argument list. Placeholders are numbered from startIndex in strictly
// increasing order. A fragment whose '?' markers disagree with its argument
// count fails the build.
func (b *WhereBuilder) Build(startIndex int) ([]string, []any, error) {
	if startIndex < 1 {
		startIndex = 1
	}
	exprs := make([]string, 0, len(b.clauses))
	var args []any
	next := startIndex
	for _, c := range b.clauses {
		markers := strings.Count(c.fragment, "?")
		if markers != len(c.args) {
			return nil, nil, errors.Errorf(
				"clause %q has %d placeholder(s) but %d argument(s)",
				c.fragment, markers, len(c.args),
			)
		}
		expr := c.fragment
		for range markers {
			expr = strings.Replace(expr, "?", "$"+strconv.Itoa(next), 1)
			next++
		}
		exprs = append(exprs, expr)
		args = append(args, c.args...)
	}
	return exprs, args, nil
}
