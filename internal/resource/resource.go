// Package resource declares the configuration for every backend list domain
// the console exposes: its API path, filter schema, export columns and the
// field-type schema driving the detail view. One generic controller consumes
// these configs instead of bespoke per-page code.
package resource

import (
	"strconv"
	"strings"
	"time"

	"go-admin-console/internal/filter"
)

// FieldKind tells the renderer how to present a field.
type FieldKind string

const (
	KindText   FieldKind = "text"
	KindDate   FieldKind = "date"
	KindBool   FieldKind = "boolean"
	KindEnum   FieldKind = "enum"
	KindAmount FieldKind = "amount"
	KindNested FieldKind = "nested"
)

// Column is one CSV export column: ID is the record path (dots reach into
// nested objects), Title the header cell.
type Column struct {
	ID    string
	Title string
}

type Config struct {
	// Name is the URL segment and the prefix of export filenames.
	Name string
	// Path is the backend list path, relative to the API base URL.
	Path string
	// PluralKey is the array key inside the backend envelope's data object.
	PluralKey string
	Filter    filter.Schema
	Columns   []Column
	// Fields maps top-level record fields to their kinds. Fields absent from
	// the map render as text.
	Fields map[string]FieldKind
	// Nested maps a KindNested field to the schema of its sub-object.
	Nested map[string]map[string]FieldKind
}

type Registry struct {
	configs map[string]*Config
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{configs: map[string]*Config{}}
}

func (r *Registry) Register(cfg *Config) {
	r.configs[cfg.Name] = cfg
	r.order = append(r.order, cfg.Name)
}

func (r *Registry) Get(name string) (*Config, bool) {
	cfg, ok := r.configs[name]
	return cfg, ok
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// FlattenField resolves a dotted column path against a record. Missing or
// null values flatten to the empty string.
func FlattenField(record map[string]any, path string) string {
	parts := strings.Split(path, ".")
	var current any = record
	for _, part := range parts {
		obj, ok := current.(map[string]any)
		if !ok {
			return ""
		}
		current, ok = obj[part]
		if !ok {
			return ""
		}
	}
	return stringify(current)
}

// Row flattens one record to the config's column order for export.
func (c *Config) Row(record map[string]any) []string {
	out := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		out[i] = FlattenField(record, col.ID)
	}
	return out
}

// Header returns the export header cells in column order.
func (c *Config) Header() []string {
	out := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		out[i] = col.Title
	}
	return out
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

var minKYCDate = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultRegistry wires every resource the console serves. The payout
// transactions resource deliberately carries no host override: all resources
// go through the shared configured base URL.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	dateRange := [][2]string{{"start_date", "end_date"}}

	r.Register(&Config{
		Name:      "users",
		Path:      "/admin/users",
		PluralKey: "users",
		Filter: filter.Schema{
			EmailFields:  []string{"email"},
			MobileFields: []string{"mobile_number"},
			MobileDigits: 10,
			DateFields:   dateRange,
			Enums: map[string][]string{
				"kyc_status": {"Pending", "Approved", "Rejected"},
			},
			MinDate: minKYCDate,
		},
		Columns: []Column{
			{ID: "id", Title: "ID"},
			{ID: "name", Title: "Name"},
			{ID: "email", Title: "Email"},
			{ID: "mobile_number", Title: "Mobile"},
			{ID: "kyc_status", Title: "KYC Status"},
			{ID: "wallet_balance", Title: "Wallet Balance"},
			{ID: "created_at", Title: "Registered At"},
		},
		Fields: map[string]FieldKind{
			"email_verified": KindBool,
			"kyc_status":     KindEnum,
			"wallet_balance": KindAmount,
			"created_at":     KindDate,
			"updated_at":     KindDate,
		},
	})

	r.Register(&Config{
		Name:      "wallet-transactions",
		Path:      "/admin/wallet-transactions",
		PluralKey: "transactions",
		Filter: filter.Schema{
			EmailFields: []string{"email"},
			DateFields:  dateRange,
			Enums: map[string][]string{
				"transaction_type": {"credit", "debit"},
				"status":           {"pending", "completed", "failed"},
			},
			MinDate: minKYCDate,
		},
		Columns: []Column{
			{ID: "id", Title: "Transaction ID"},
			{ID: "user_details.name", Title: "User"},
			{ID: "user_details.email", Title: "Email"},
			{ID: "transaction_type", Title: "Type"},
			{ID: "amount", Title: "Amount"},
			{ID: "status", Title: "Status"},
			{ID: "remark", Title: "Remark"},
			{ID: "created_at", Title: "Date"},
		},
		Fields: map[string]FieldKind{
			"user_details":     KindNested,
			"transaction_type": KindEnum,
			"amount":           KindAmount,
			"status":           KindEnum,
			"created_at":       KindDate,
			"updated_at":       KindDate,
		},
		Nested: map[string]map[string]FieldKind{
			"user_details": {
				"created_at": KindDate,
				"verified":   KindBool,
			},
		},
	})

	r.Register(&Config{
		Name:      "crypto-transactions",
		Path:      "/admin/crypto-transactions",
		PluralKey: "transactions",
		Filter: filter.Schema{
			EmailFields: []string{"email"},
			DateFields:  dateRange,
			Enums: map[string][]string{
				"currency": {"BTC", "ETH", "USDT", "TRX"},
				"status":   {"pending", "completed", "failed"},
			},
			MinDate: minKYCDate,
		},
		Columns: []Column{
			{ID: "id", Title: "Transaction ID"},
			{ID: "user_details.email", Title: "Email"},
			{ID: "currency", Title: "Currency"},
			{ID: "amount", Title: "Amount"},
			{ID: "wallet_address", Title: "Wallet Address"},
			{ID: "status", Title: "Status"},
			{ID: "created_at", Title: "Date"},
		},
		Fields: map[string]FieldKind{
			"user_details": KindNested,
			"currency":     KindEnum,
			"amount":       KindAmount,
			"status":       KindEnum,
			"created_at":   KindDate,
		},
		Nested: map[string]map[string]FieldKind{
			"user_details": {"created_at": KindDate},
		},
	})

	r.Register(&Config{
		Name:      "cards",
		Path:      "/admin/cards",
		PluralKey: "cards",
		Filter: filter.Schema{
			EmailFields: []string{"email"},
			DateFields:  dateRange,
			Enums: map[string][]string{
				"status": {"active", "frozen", "cancelled"},
			},
			MinDate: minKYCDate,
		},
		Columns: []Column{
			{ID: "id", Title: "Card ID"},
			{ID: "user_details.name", Title: "Holder"},
			{ID: "user_details.email", Title: "Email"},
			{ID: "masked_number", Title: "Card Number"},
			{ID: "status", Title: "Status"},
			{ID: "issued_at", Title: "Issued At"},
		},
		Fields: map[string]FieldKind{
			"user_details": KindNested,
			"status":       KindEnum,
			"virtual":      KindBool,
			"issued_at":    KindDate,
		},
		Nested: map[string]map[string]FieldKind{
			"user_details": {"created_at": KindDate},
		},
	})

	r.Register(&Config{
		Name:      "mobile-recharges",
		Path:      "/admin/mobile-recharges",
		PluralKey: "recharges",
		Filter: filter.Schema{
			MobileFields: []string{"mobile_number"},
			DateFields:   dateRange,
			Enums: map[string][]string{
				"status": {"pending", "completed", "failed"},
			},
			MinDate: minKYCDate,
		},
		Columns: []Column{
			{ID: "id", Title: "Recharge ID"},
			{ID: "mobile_number", Title: "Mobile"},
			{ID: "operator", Title: "Operator"},
			{ID: "amount", Title: "Amount"},
			{ID: "status", Title: "Status"},
			{ID: "created_at", Title: "Date"},
		},
		Fields: map[string]FieldKind{
			"amount":     KindAmount,
			"status":     KindEnum,
			"created_at": KindDate,
		},
	})

	r.Register(&Config{
		Name:      "kyc-submissions",
		Path:      "/admin/kyc",
		PluralKey: "submissions",
		Filter: filter.Schema{
			EmailFields: []string{"email"},
			DateFields:  dateRange,
			Enums: map[string][]string{
				"kyc_status": {"Pending", "Approved", "Rejected"},
			},
			MinDate: minKYCDate,
		},
		Columns: []Column{
			{ID: "id", Title: "Submission ID"},
			{ID: "user_details.name", Title: "Name"},
			{ID: "user_details.email", Title: "Email"},
			{ID: "document_type", Title: "Document Type"},
			{ID: "kyc_status", Title: "Status"},
			{ID: "submitted_at", Title: "Submitted At"},
		},
		Fields: map[string]FieldKind{
			"user_details": KindNested,
			"kyc_status":   KindEnum,
			"submitted_at": KindDate,
			"reviewed_at":  KindDate,
		},
		Nested: map[string]map[string]FieldKind{
			"user_details": {"created_at": KindDate, "verified": KindBool},
		},
	})

	r.Register(&Config{
		Name:      "referrals",
		Path:      "/admin/referrals",
		PluralKey: "referrals",
		Filter: filter.Schema{
			EmailFields: []string{"email"},
			DateFields:  dateRange,
			MinDate:     minKYCDate,
		},
		Columns: []Column{
			{ID: "id", Title: "Referral ID"},
			{ID: "referrer_email", Title: "Referrer"},
			{ID: "referred_email", Title: "Referred"},
			{ID: "reward_amount", Title: "Reward"},
			{ID: "created_at", Title: "Date"},
		},
		Fields: map[string]FieldKind{
			"reward_amount": KindAmount,
			"rewarded":      KindBool,
			"created_at":    KindDate,
		},
	})

	r.Register(&Config{
		Name:      "topups",
		Path:      "/admin/topups",
		PluralKey: "topups",
		Filter: filter.Schema{
			EmailFields: []string{"email"},
			DateFields:  dateRange,
			Enums: map[string][]string{
				"status": {"pending", "completed", "failed"},
			},
			MinDate: minKYCDate,
		},
		Columns: []Column{
			{ID: "id", Title: "Topup ID"},
			{ID: "user_details.email", Title: "Email"},
			{ID: "amount", Title: "Amount"},
			{ID: "provider", Title: "Provider"},
			{ID: "status", Title: "Status"},
			{ID: "created_at", Title: "Date"},
		},
		Fields: map[string]FieldKind{
			"user_details": KindNested,
			"amount":       KindAmount,
			"status":       KindEnum,
			"created_at":   KindDate,
		},
		Nested: map[string]map[string]FieldKind{
			"user_details": {"created_at": KindDate},
		},
	})

	r.Register(&Config{
		Name:      "payout-transactions",
		Path:      "/admin/payout-transactions",
		PluralKey: "transactions",
		Filter: filter.Schema{
			EmailFields: []string{"email"},
			DateFields:  dateRange,
			Enums: map[string][]string{
				"status": {"pending", "completed", "failed"},
			},
			MinDate: minKYCDate,
		},
		Columns: []Column{
			{ID: "id", Title: "Payout ID"},
			{ID: "user_details.email", Title: "Email"},
			{ID: "amount", Title: "Amount"},
			{ID: "destination", Title: "Destination"},
			{ID: "status", Title: "Status"},
			{ID: "created_at", Title: "Date"},
		},
		Fields: map[string]FieldKind{
			"user_details": KindNested,
			"amount":       KindAmount,
			"status":       KindEnum,
			"created_at":   KindDate,
		},
		Nested: map[string]map[string]FieldKind{
			"user_details": {"created_at": KindDate},
		},
	})

	return r
}
