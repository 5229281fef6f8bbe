// Package predx models data-access filter predicates as a tagged variant
// tree, replacing ad hoc loosely-typed filter maps. Repositories interpret a
// predicate against their own column mapping.
package predx

// Field names a filterable attribute. Repositories map fields to columns.
type Field string

const (
	FieldFirstName      Field = "firstName"
	FieldLastName       Field = "lastName"
	FieldEmail          Field = "email"
	FieldPhone          Field = "phone"
	FieldStage          Field = "stage"
	FieldJobTitle       Field = "jobTitle"
	FieldJobDescription Field = "jobDescription"
	FieldJobStatus      Field = "jobStatus"
	FieldJobType        Field = "jobType"
)

// Predicate is the closed filter variant: And, Or, FieldEquals,
// FieldContains or MatchAll.
type Predicate interface {
	isPredicate()
}

// And matches records satisfying every child predicate.
type And []Predicate

// Or matches records satisfying at least one child predicate.
type Or []Predicate

// FieldEquals matches records whose field equals Value exactly.
type FieldEquals struct {
	Field Field
	Value string
}

// FieldContains matches records whose field contains Substring.
// Case sensitivity is whatever the store's comparison default is.
type FieldContains struct {
	Field     Field
	Substring string
}

// MatchAll is the unconstrained predicate.
type MatchAll struct{}

func (And) isPredicate()           {}
func (Or) isPredicate()            {}
func (FieldEquals) isPredicate()   {}
func (FieldContains) isPredicate() {}
func (MatchAll) isPredicate()      {}

// IsMatchAll reports whether p constrains nothing.
func IsMatchAll(p Predicate) bool {
	switch v := p.(type) {
	case nil, MatchAll:
		return true
	case And:
		return len(v) == 0
	case Or:
		return len(v) == 0
	}
	return false
}
