package resource

import (
	"sort"
	"strings"
	"time"
)

const detailDateFormat = "02/01/2006 03:04 PM"

// Placeholders used when a record field is null/empty versus absent entirely.
const (
	placeholderEmpty   = "-"
	placeholderMissing = "N/A"
)

// DetailRow is one rendered label/value line of the detail view. Nested is
// set instead of Value for sub-object fields.
type DetailRow struct {
	Label  string      `json:"label"`
	Value  string      `json:"value,omitempty"`
	Nested []DetailRow `json:"nested,omitempty"`
}

// Detail projects a record into display rows using the config's field-type
// schema. Keys are sorted so the projection is stable.
func (c *Config) Detail(record map[string]any) []DetailRow {
	return renderObject(record, c.Fields, c.Nested)
}

func renderObject(obj map[string]any, fields map[string]FieldKind, nested map[string]map[string]FieldKind) []DetailRow {
	keySet := map[string]struct{}{}
	for k := range obj {
		keySet[k] = struct{}{}
	}
	// schema fields absent from the record still get a row
	for k := range fields {
		keySet[k] = struct{}{}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]DetailRow, 0, len(keys))
	for _, key := range keys {
		kind := fields[key]
		row := DetailRow{Label: humanizeLabel(key)}
		value, present := obj[key]
		switch {
		case !present:
			row.Value = placeholderMissing
		case kind == KindNested:
			sub, ok := value.(map[string]any)
			if !ok || len(sub) == 0 {
				row.Value = placeholderEmpty
			} else {
				// one level of recursion only
				row.Nested = renderObject(sub, nested[key], nil)
			}
		default:
			row.Value = renderValue(value, kind)
		}
		rows = append(rows, row)
	}
	return rows
}

func renderValue(value any, kind FieldKind) string {
	switch v := value.(type) {
	case nil:
		return placeholderEmpty
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case string:
		if v == "" {
			return placeholderEmpty
		}
		if kind == KindDate {
			return formatDate(v)
		}
		return v
	}
	return stringify(value)
}

// formatDate accepts the timestamp layouts the backend emits and renders
// them as DD/MM/YYYY hh:mm A. Unparseable values pass through untouched.
func formatDate(value string) string {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(detailDateFormat)
		}
	}
	return value
}

// humanizeLabel turns a snake_case key into a display label, capitalising
// each word: "user_details" -> "User Details".
func humanizeLabel(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
