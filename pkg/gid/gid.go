// Package gid encodes and decodes the prefixed global ids the API hands to
// clients ("job-<id>", "applicant-<id>"). It replaces per-resolver prefix
// stripping with a single boundary utility.
package gid

import "strings"

// Kind is an entity namespace for global ids.
type Kind string

const (
	KindJob       Kind = "job"
	KindApplicant Kind = "applicant"
	KindAdmin     Kind = "admin"
)

// legacyAliases lists additional prefixes accepted on decode, left over from
// earlier schema revisions.
var legacyAliases = map[Kind][]string{
	KindJob: {"admin-job"},
}

// Encode renders the global form of a raw id.
func Encode(k Kind, id string) string {
	return string(k) + "-" + id
}

// Decode strips the kind prefix (and any legacy alias) from a client-supplied
// id. A bare id passes through unchanged so callers tolerate both forms.
func Decode(k Kind, global string) string {
	for _, prefix := range legacyAliases[k] {
		if rest, ok := strings.CutPrefix(global, prefix+"-"); ok {
			return rest
		}
	}
	if rest, ok := strings.CutPrefix(global, string(k)+"-"); ok {
		return rest
	}
	return global
}
