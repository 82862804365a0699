package client

import (
	"encoding/json"
	"fmt"
	"strings"
)

// matchFilters filters items client-side by comparing each filter against
// the item's JSON fields. String comparison is case-insensitive, matching
// the backend's search behavior. Client-side filtering is a documented
// workaround for endpoints that only support q= search; it is not a
// substitute for server-side filters where those exist.
func matchFilters[T any](items []T, filters map[string]string) []T {
	if len(filters) == 0 {
		return items
	}

	matched := make([]T, 0, len(items))

	for _, item := range items {
		fields, err := itemFields(item)
		if err != nil {
			continue
		}

		if fieldsMatch(fields, filters) {
			matched = append(matched, item)
		}
	}

	return matched
}

func itemFields[T any](item T) (map[string]any, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	return fields, nil
}

func fieldsMatch(fields map[string]any, filters map[string]string) bool {
	for name, want := range filters {
		value, ok := fields[name]
		if !ok {
			return false
		}

		if !strings.EqualFold(stringify(value), want) {
			return false
		}
	}

	return true
}

// stringify renders a JSON field value the way a query parameter would
// spell it; whole-number floats drop the decimal point.
func stringify(value any) string {
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}

	return fmt.Sprintf("%v", value)
}
