package resource_test

import (
	"testing"

	"go-admin-console/internal/resource"

	"github.com/stretchr/testify/assert"
)

func findRow(rows []resource.DetailRow, label string) *resource.DetailRow {
	for i := range rows {
		if rows[i].Label == label {
			return &rows[i]
		}
	}
	return nil
}

func detailConfig() *resource.Config {
	return &resource.Config{
		Name: "wallet-transactions",
		Fields: map[string]resource.FieldKind{
			"user_details": resource.KindNested,
			"created_at":   resource.KindDate,
			"verified":     resource.KindBool,
			"amount":       resource.KindAmount,
		},
		Nested: map[string]map[string]resource.FieldKind{
			"user_details": {"created_at": resource.KindDate},
		},
	}
}

func TestDetail_HumanizesLabels(t *testing.T) {
	cfg := detailConfig()

	rows := cfg.Detail(map[string]any{"transaction_type": "credit"})

	assert.NotNil(t, findRow(rows, "Transaction Type"))
}

func TestDetail_BooleanRendersYesNo(t *testing.T) {
	cfg := detailConfig()

	rows := cfg.Detail(map[string]any{"verified": true})
	assert.Equal(t, "Yes", findRow(rows, "Verified").Value)

	rows = cfg.Detail(map[string]any{"verified": false})
	assert.Equal(t, "No", findRow(rows, "Verified").Value)
}

func TestDetail_DateFormatting(t *testing.T) {
	cfg := detailConfig()

	rows := cfg.Detail(map[string]any{"created_at": "2024-03-05T09:30:00Z"})

	assert.Equal(t, "05/03/2024 09:30 AM", findRow(rows, "Created At").Value)
}

func TestDetail_AfternoonDate(t *testing.T) {
	cfg := detailConfig()

	rows := cfg.Detail(map[string]any{"created_at": "2024-03-05T21:05:00Z"})

	assert.Equal(t, "05/03/2024 09:05 PM", findRow(rows, "Created At").Value)
}

func TestDetail_Placeholders(t *testing.T) {
	cfg := detailConfig()

	rows := cfg.Detail(map[string]any{"remark": "", "amount": nil})
	assert.Equal(t, "-", findRow(rows, "Remark").Value)
	assert.Equal(t, "-", findRow(rows, "Amount").Value)

	// declared field absent from the record
	rows = cfg.Detail(map[string]any{})
	assert.Equal(t, "N/A", findRow(rows, "Verified").Value)
}

func TestDetail_NestedSubTable(t *testing.T) {
	cfg := detailConfig()

	rows := cfg.Detail(map[string]any{
		"user_details": map[string]any{
			"name":       "Jane Doe",
			"created_at": "2024-01-02T08:00:00Z",
		},
	})

	nested := findRow(rows, "User Details")
	assert.NotNil(t, nested)
	assert.Empty(t, nested.Value)
	assert.Equal(t, "Jane Doe", findRow(nested.Nested, "Name").Value)
	assert.Equal(t, "02/01/2024 08:00 AM", findRow(nested.Nested, "Created At").Value)
}

func TestFlattenField(t *testing.T) {
	record := map[string]any{
		"id":     "tx-1",
		"amount": float64(100),
		"rate":   10.5,
		"user_details": map[string]any{
			"email": "jane@example.com",
		},
		"remark": nil,
	}

	assert.Equal(t, "tx-1", resource.FlattenField(record, "id"))
	assert.Equal(t, "100", resource.FlattenField(record, "amount"))
	assert.Equal(t, "10.5", resource.FlattenField(record, "rate"))
	assert.Equal(t, "jane@example.com", resource.FlattenField(record, "user_details.email"))
	assert.Equal(t, "", resource.FlattenField(record, "remark"))
	assert.Equal(t, "", resource.FlattenField(record, "user_details.missing"))
	assert.Equal(t, "", resource.FlattenField(record, "missing.path"))
}

func TestRowAndHeader(t *testing.T) {
	cfg := &resource.Config{
		Columns: []resource.Column{
			{ID: "id", Title: "ID"},
			{ID: "user_details.email", Title: "Email"},
		},
	}

	assert.Equal(t, []string{"ID", "Email"}, cfg.Header())
	assert.Equal(t, []string{"tx-1", "jane@example.com"}, cfg.Row(map[string]any{
		"id":           "tx-1",
		"user_details": map[string]any{"email": "jane@example.com"},
	}))
}

func TestDefaultRegistry(t *testing.T) {
	registry := resource.DefaultRegistry()

	for _, name := range []string{
		"users", "wallet-transactions", "crypto-transactions", "cards",
		"mobile-recharges", "kyc-submissions", "referrals", "topups",
		"payout-transactions",
	} {
		cfg, ok := registry.Get(name)
		assert.True(t, ok, name)
		assert.NotEmpty(t, cfg.Path)
		assert.NotEmpty(t, cfg.PluralKey)
		assert.NotEmpty(t, cfg.Columns)
	}

	_, ok := registry.Get("unknown")
	assert.False(t, ok)
}
