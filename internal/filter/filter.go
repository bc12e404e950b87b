// Package filter holds the draft-filter validation rules shared by every
// resource listing: email and mobile formats, the allowed date window and the
// start/end ordering check. Validation is pure; the caller decides whether a
// passing snapshot becomes the applied filter set.
package filter

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	emailPattern  = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
	mobilePattern = regexp.MustCompile(`^\d{8,15}$`)
)

// State maps filter field names to their raw string values.
type State map[string]string

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Schema declares which fields a resource filters on and the bounds applied
// to them.
type Schema struct {
	EmailFields  []string
	MobileFields []string
	// MobileDigits forces an exact digit count; zero means 8 to 15 digits.
	MobileDigits int
	DateFields   [][2]string // start/end pairs, e.g. {"start_date","end_date"}
	// Enums restricts a field to a fixed value set (status, currency, topic).
	Enums map[string][]string
	// TextFields are free-form and pass through untouched.
	TextFields []string
	// MinDate is the earliest date the resource accepts in a date filter.
	MinDate time.Time
}

// Defaults returns the reset state: every declared field present and empty.
func (sc *Schema) Defaults() State {
	out := State{}
	for _, f := range sc.EmailFields {
		out[f] = ""
	}
	for _, f := range sc.MobileFields {
		out[f] = ""
	}
	for _, pair := range sc.DateFields {
		out[pair[0]] = ""
		out[pair[1]] = ""
	}
	for f := range sc.Enums {
		out[f] = ""
	}
	for _, f := range sc.TextFields {
		out[f] = ""
	}
	return out
}

// Fields lists every declared filter field name.
func (sc *Schema) Fields() []string {
	defaults := sc.Defaults()
	out := make([]string, 0, len(defaults))
	for f := range defaults {
		out = append(out, f)
	}
	return out
}

// Result is the outcome of validating a draft filter state.
type Result struct {
	Valid  bool
	Errors map[string]string
	// Applied is the trimmed snapshot to use for queries; only set when Valid.
	Applied State
}

// Validate checks a draft state against the schema. Empty fields are always
// acceptable; rules only apply to non-empty values. today is the upper bound
// of the date window, truncated to the day.
func (sc *Schema) Validate(draft State, today time.Time) Result {
	errors := map[string]string{}
	applied := State{}

	for _, field := range sc.EmailFields {
		value := strings.TrimSpace(draft[field])
		if value == "" {
			continue
		}
		if !emailPattern.MatchString(value) {
			errors[field] = "Invalid email address"
			continue
		}
		applied[field] = value
	}

	for _, field := range sc.MobileFields {
		value := strings.TrimSpace(draft[field])
		if value == "" {
			continue
		}
		if msg := sc.checkMobile(value); msg != "" {
			errors[field] = msg
			continue
		}
		applied[field] = value
	}

	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	for _, pair := range sc.DateFields {
		start := sc.checkDate(pair[0], draft, dayStart, errors, applied)
		end := sc.checkDate(pair[1], draft, dayStart, errors, applied)
		if start != nil && end != nil && start.After(*end) {
			errors[pair[1]] = "End date must be after start date"
			delete(applied, pair[0])
			delete(applied, pair[1])
		}
	}

	for field, allowed := range sc.Enums {
		value := strings.TrimSpace(draft[field])
		if value == "" {
			continue
		}
		found := false
		for _, a := range allowed {
			if value == a {
				found = true
				break
			}
		}
		if !found {
			errors[field] = "Invalid value"
			continue
		}
		applied[field] = value
	}

	for _, field := range sc.TextFields {
		if value := strings.TrimSpace(draft[field]); value != "" {
			applied[field] = value
		}
	}

	if len(errors) > 0 {
		return Result{Valid: false, Errors: errors}
	}
	return Result{Valid: true, Errors: errors, Applied: applied}
}

func (sc *Schema) checkMobile(value string) string {
	if sc.MobileDigits > 0 {
		if len(value) != sc.MobileDigits {
			return fmt.Sprintf("Mobile must be %d digits", sc.MobileDigits)
		}
		for _, r := range value {
			if r < '0' || r > '9' {
				return fmt.Sprintf("Mobile must be %d digits", sc.MobileDigits)
			}
		}
		return ""
	}
	if !mobilePattern.MatchString(value) {
		return "Mobile must be 8 to 15 digits"
	}
	return ""
}

// checkDate validates one date field and records it in applied when in range.
// Returns the parsed date so the caller can cross-check ordering.
func (sc *Schema) checkDate(field string, draft State, today time.Time, errors map[string]string, applied State) *time.Time {
	value := strings.TrimSpace(draft[field])
	if value == "" {
		return nil
	}
	parsed, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		errors[field] = "Invalid date"
		return nil
	}
	if parsed.After(today) {
		errors[field] = "Date cannot be in the future"
		return nil
	}
	if !sc.MinDate.IsZero() && parsed.Before(sc.MinDate) {
		errors[field] = "Date is before the earliest allowed date"
		return nil
	}
	applied[field] = value
	return &parsed
}

// Describe renders an applied state as "field: value, field: value" for
// empty-result messages, in a stable field order.
func (sc *Schema) Describe(applied State) string {
	parts := make([]string, 0, len(applied))
	appendPart := func(field string) {
		if value, ok := applied[field]; ok && value != "" {
			parts = append(parts, field+": "+value)
		}
	}
	for _, f := range sc.EmailFields {
		appendPart(f)
	}
	for _, f := range sc.MobileFields {
		appendPart(f)
	}
	for _, f := range sc.TextFields {
		appendPart(f)
	}
	enumFields := make([]string, 0, len(sc.Enums))
	for f := range sc.Enums {
		enumFields = append(enumFields, f)
	}
	sort.Strings(enumFields)
	for _, f := range enumFields {
		appendPart(f)
	}
	for _, pair := range sc.DateFields {
		appendPart(pair[0])
		appendPart(pair[1])
	}
	return strings.Join(parts, ", ")
}
