// Package mapper translates between the persisted row representation
// (snake_case keys, numerics that may arrive as strings) and the domain
// structs. Inbound mapping never fails: missing or malformed fields fall
// back to zero values, since rows created before a column existed are
// still expected to load.
package mapper

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is a raw row as decoded from the persistence boundary.
type Record map[string]any

// Persisted identifiers are plain 8-4-4-4-12 hex UUIDs. Anything else
// (client-side placeholder ids, empty strings) is treated as "no id" so
// the backend generates one on insert.
var _uuidRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func IsStoredID(id string) bool {
	return _uuidRe.MatchString(strings.ToLower(id))
}

func (r Record) str(key string) string {
	v, ok := r[key].(string)
	if !ok {
		return ""
	}
	return v
}

// num coerces a numeric field to float64. The hosted backend returns
// numeric columns as JSON numbers, but legacy rows and CSV imports carry
// them as strings; both are accepted, everything else reads as 0.
func (r Record) num(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		f, _ := d.Float64()
		return f
	}
	return 0
}

func (r Record) integer(key string) int64 {
	switch v := r[key].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return d.IntPart()
	}
	return 0
}

// boolean applies truthiness: null and 0 are false, a non-empty string or
// non-zero number is true.
func (r Record) boolean(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case string:
		return v != ""
	}
	return false
}
