package job

import (
	"strings"

	"github.com/mehrab1899/ats-backend/pkg/predx"
)

// BuildSearchFilter turns the admin job list arguments into a predicate. A
// search term matches title and description substrings, and additionally the
// exact status or employment type when it spells one. An explicit status
// filter narrows the result with And.
func BuildSearchFilter(search, status string) predx.Predicate {
	var clauses predx.And

	if term := strings.TrimSpace(search); term != "" {
		or := predx.Or{
			predx.FieldContains{Field: predx.FieldJobTitle, Substring: term},
			predx.FieldContains{Field: predx.FieldJobDescription, Substring: term},
		}
		if parsed, ok := ParseStatus(term); ok {
			or = append(or, predx.FieldEquals{Field: predx.FieldJobStatus, Value: string(parsed)})
		}
		if parsed, ok := ParseType(term); ok {
			or = append(or, predx.FieldEquals{Field: predx.FieldJobType, Value: string(parsed)})
		}
		clauses = append(clauses, or)
	}

	if parsed, ok := ParseStatus(status); ok {
		clauses = append(clauses, predx.FieldEquals{Field: predx.FieldJobStatus, Value: string(parsed)})
	}

	switch len(clauses) {
	case 0:
		return predx.MatchAll{}
	case 1:
		return clauses[0]
	}
	return clauses
}
