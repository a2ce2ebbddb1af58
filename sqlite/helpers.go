package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	insideideo "github.com/niravbeni/inside-ideo"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// encodeValue serializes a field value for storage.
func encodeValue(v insideideo.FieldValue) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode field value: %w", err)
	}
	return string(data), nil
}

// decodeValue deserializes a stored field value.
func decodeValue(data string) (insideideo.FieldValue, error) {
	var v insideideo.FieldValue
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return insideideo.FieldValue{}, fmt.Errorf("decode field value: %w", err)
	}
	return v, nil
}
