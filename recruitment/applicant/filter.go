package applicant

import (
	"strings"

	"github.com/mehrab1899/ats-backend/pkg/predx"
)

// BuildSearchFilter turns the admin list arguments into a predicate. A
// non-empty search term matches as a substring over names, email, phone and
// the joined job title; a valid stage narrows with an exact match. Both empty
// means match everything.
func BuildSearchFilter(search, stage string) predx.Predicate {
	var clauses predx.And

	if term := strings.TrimSpace(search); term != "" {
		clauses = append(clauses, predx.Or{
			predx.FieldContains{Field: predx.FieldFirstName, Substring: term},
			predx.FieldContains{Field: predx.FieldLastName, Substring: term},
			predx.FieldContains{Field: predx.FieldEmail, Substring: term},
			predx.FieldContains{Field: predx.FieldPhone, Substring: term},
			predx.FieldContains{Field: predx.FieldJobTitle, Substring: term},
		})
	}

	if parsed, ok := ParseStage(stage); ok {
		clauses = append(clauses, predx.FieldEquals{Field: predx.FieldStage, Value: string(parsed)})
	}

	switch len(clauses) {
	case 0:
		return predx.MatchAll{}
	case 1:
		return clauses[0]
	}
	return clauses
}
