// Package division resolves GB/T 2260 administrative-division codes. The
// registry is historical: codes retired in later revisions stay resolvable,
// since identity numbers carry the code in force at the time of issue.
package division

import "context"

// Division is a single entry from the GB/T 2260 code tables. Values are small
// and copied freely; callers never mutate registry-owned data through them.
type Division struct {
	Code     string `json:"code"`     // 6-digit code
	Name     string `json:"name"`     // official name at publication time
	Revision int    `json:"revision"` // year of the revision the code first appeared in
}

// Registry resolves a 6-character division code. Implementations may hit
// external storage, so lookups take a context and can fail for
// infrastructure reasons; "code unknown" is the boolean, not the error.
type Registry interface {
	Lookup(ctx context.Context, code string) (Division, bool, error)
}

// Seeder is implemented by registries that can be bulk-loaded with division
// records, used by the admin reload endpoint and by store seeding.
type Seeder interface {
	Seed(ctx context.Context, divisions []Division) error
}
