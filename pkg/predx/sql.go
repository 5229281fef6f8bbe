package predx

import (
	"fmt"
	"strings"
)

// Columns maps logical fields to the SQL expressions of one query.
type Columns map[Field]string

// Compile renders a predicate into a SQL condition with positional
// placeholders starting at $argOffset+1. A match-all predicate compiles to an
// empty clause and no arguments.
func Compile(p Predicate, cols Columns, argOffset int) (string, []any, error) {
	c := &compiler{cols: cols, next: argOffset + 1}
	clause, err := c.compile(p)
	if err != nil {
		return "", nil, err
	}
	return clause, c.args, nil
}

type compiler struct {
	cols Columns
	args []any
	next int
}

func (c *compiler) compile(p Predicate) (string, error) {
	switch v := p.(type) {
	case nil, MatchAll:
		return "", nil

	case And:
		return c.join(v, " AND ")

	case Or:
		return c.join(v, " OR ")

	case FieldEquals:
		col, err := c.column(v.Field)
		if err != nil {
			return "", err
		}
		c.args = append(c.args, v.Value)
		return fmt.Sprintf("%s = $%d", col, c.placeholder()), nil

	case FieldContains:
		col, err := c.column(v.Field)
		if err != nil {
			return "", err
		}
		c.args = append(c.args, "%"+escapeLike(v.Substring)+"%")
		return fmt.Sprintf("%s LIKE $%d", col, c.placeholder()), nil

	default:
		return "", fmt.Errorf("predx: unsupported predicate %T", p)
	}
}

func (c *compiler) join(children []Predicate, sep string) (string, error) {
	parts := make([]string, 0, len(children))
	for _, child := range children {
		clause, err := c.compile(child)
		if err != nil {
			return "", err
		}
		if clause != "" {
			parts = append(parts, clause)
		}
	}
	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return parts[0], nil
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}

func (c *compiler) column(f Field) (string, error) {
	col, ok := c.cols[f]
	if !ok {
		return "", fmt.Errorf("predx: field %q has no column mapping", f)
	}
	return col, nil
}

func (c *compiler) placeholder() int {
	n := c.next + len(c.args) - 1
	return n
}

// escapeLike neutralizes LIKE metacharacters so a search term matches
// literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
