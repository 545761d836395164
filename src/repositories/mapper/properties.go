package mapper

import (
	"strconv"
	"strings"
	"time"

	"healthgraph/src/domain/entities"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// The readers below never fail: a property that is absent or carries an
// unexpected type resolves to the default of its kind, so nodes written before
// a field existed still map to a usable entity.

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

const dateLayout = "2006-01-02"

func String(props map[string]any, key string) string {
	switch value := props[key].(type) {
	case string:
		return value
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return ""
	}
}

// Time reads an instant and returns it in UTC, or entities.MinTime.
func Time(props map[string]any, key string) time.Time {
	switch value := props[key].(type) {
	case time.Time:
		return value.UTC()
	case dbtype.LocalDateTime:
		return value.Time().UTC()
	case dbtype.Date:
		return calendarDate(value.Time())
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, value); err == nil {
				return parsed.UTC()
			}
		}
		if parsed, err := time.Parse(dateLayout, value); err == nil {
			return parsed.UTC()
		}
	}
	return entities.MinTime
}

// Date reads a calendar date and rebuilds it at midnight UTC from its
// year, month and day, or returns entities.MinTime.
func Date(props map[string]any, key string) time.Time {
	switch value := props[key].(type) {
	case dbtype.Date:
		return calendarDate(value.Time())
	case dbtype.LocalDateTime:
		return calendarDate(value.Time())
	case time.Time:
		return calendarDate(value.UTC())
	case string:
		if parsed, err := time.Parse(dateLayout, value); err == nil {
			return calendarDate(parsed)
		}
		if t := Time(props, key); !t.Equal(entities.MinTime) {
			return calendarDate(t)
		}
	}
	return entities.MinTime
}

// Bool accepts native booleans and their string form.
func Bool(props map[string]any, key string) bool {
	switch value := props[key].(type) {
	case bool:
		return value
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return false
		}
		return parsed
	default:
		return false
	}
}

func Int(props map[string]any, key string) int {
	switch value := props[key].(type) {
	case int64:
		return int(value)
	case int:
		return value
	case float64:
		return int(value)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// StringSlice reads a list property. Non-string members are skipped.
func StringSlice(props map[string]any, key string) []string {
	switch value := props[key].(type) {
	case []string:
		return append([]string{}, value...)
	case []any:
		result := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	default:
		return []string{}
	}
}

// PlainProperties converts driver temporal values into JSON-friendly ones.
func PlainProperties(props map[string]any) map[string]any {
	plain := make(map[string]any, len(props))
	for key, value := range props {
		plain[key] = plainValue(value)
	}
	return plain
}

func plainValue(value any) any {
	switch v := value.(type) {
	case time.Time:
		return v.UTC()
	case dbtype.Date:
		return v.Time().Format(dateLayout)
	case dbtype.LocalDateTime:
		return v.Time().UTC()
	case dbtype.LocalTime:
		return v.Time().Format("15:04:05.999999999")
	case dbtype.Time:
		return v.Time().Format("15:04:05.999999999Z07:00")
	case dbtype.Duration:
		return v.String()
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = plainValue(item)
		}
		return items
	case map[string]any:
		return PlainProperties(v)
	default:
		return v
	}
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateValue converts a calendar date into the store's date type.
func DateValue(t time.Time) dbtype.Date {
	return dbtype.Date(calendarDate(t))
}
