// Package timestamp guesses when a record happened by scanning its fields
// for date-looking keys. It is a heuristic: the first parseable candidate
// wins and there is no disambiguation between multiple date fields.
package timestamp

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var dateKeys = []string{"date", "timestamp", "created_at", "time", "day"}

// Infer returns epoch milliseconds for the first field whose key contains a
// date-like substring (case-insensitive) and whose value parses as a date.
// String values go through permissive date parsing; numeric values are
// taken as epoch milliseconds directly. When nothing parses, the current
// wall-clock time at extraction is returned.
func Infer(fields []Field) int64 {
	for _, field := range fields {
		if !candidateKey(field.Key) {
			continue
		}
		if ms, ok := parseValue(field.Value); ok {
			return ms
		}
	}
	return time.Now().UnixMilli()
}

// Field is one key/value pair in its original input order. Callers pass an
// ordered slice rather than a map so the first-match rule stays
// deterministic.
type Field struct {
	Key   string
	Value any
}

func candidateKey(key string) bool {
	lower := strings.ToLower(key)
	for _, dateKey := range dateKeys {
		if strings.Contains(lower, dateKey) {
			return true
		}
	}
	return false
}

func parseValue(value any) (int64, bool) {
	switch v := value.(type) {
	case string:
		parsed, err := dateparse.ParseAny(v)
		if err != nil {
			return 0, false
		}
		return parsed.UnixMilli(), true
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
