package filter_test

import (
	"testing"
	"time"

	"go-admin-console/internal/filter"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

func testSchema() *filter.Schema {
	return &filter.Schema{
		EmailFields:  []string{"email"},
		MobileFields: []string{"mobile_number"},
		DateFields:   [][2]string{{"start_date", "end_date"}},
		Enums: map[string][]string{
			"status": {"pending", "completed", "failed"},
		},
		MinDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidate_InvalidEmail(t *testing.T) {
	sc := testSchema()

	result := sc.Validate(filter.State{
		"email":      "not-an-email",
		"start_date": "2024-05-01",
		"end_date":   "2024-05-31",
	}, today)

	assert.False(t, result.Valid)
	assert.Equal(t, "Invalid email address", result.Errors["email"])
	assert.Len(t, result.Errors, 1)
}

func TestValidate_ValidEmailTrimmed(t *testing.T) {
	sc := testSchema()

	result := sc.Validate(filter.State{"email": "  Foo@Bar.com  "}, today)

	assert.True(t, result.Valid)
	assert.Equal(t, "Foo@Bar.com", result.Applied["email"])
}

func TestValidate_EndDateBeforeStartDate(t *testing.T) {
	sc := testSchema()

	result := sc.Validate(filter.State{
		"start_date": "2024-05-10",
		"end_date":   "2024-05-01",
	}, today)

	assert.False(t, result.Valid)
	assert.Equal(t, "End date must be after start date", result.Errors["end_date"])
}

func TestValidate_FutureDate(t *testing.T) {
	sc := testSchema()

	result := sc.Validate(filter.State{"end_date": "2024-06-16"}, today)

	assert.False(t, result.Valid)
	assert.Equal(t, "Date cannot be in the future", result.Errors["end_date"])
}

func TestValidate_TodayIsAllowed(t *testing.T) {
	sc := testSchema()

	result := sc.Validate(filter.State{"end_date": "2024-06-15"}, today)

	assert.True(t, result.Valid)
	assert.Equal(t, "2024-06-15", result.Applied["end_date"])
}

func TestValidate_DateBeforeMinimum(t *testing.T) {
	sc := testSchema()

	result := sc.Validate(filter.State{"start_date": "2019-12-31"}, today)

	assert.False(t, result.Valid)
	assert.Equal(t, "Date is before the earliest allowed date", result.Errors["start_date"])
}

func TestValidate_MalformedDate(t *testing.T) {
	sc := testSchema()

	result := sc.Validate(filter.State{"start_date": "15/06/2024"}, today)

	assert.False(t, result.Valid)
	assert.Equal(t, "Invalid date", result.Errors["start_date"])
}

func TestValidate_MobileDigitRange(t *testing.T) {
	sc := testSchema()

	result := sc.Validate(filter.State{"mobile_number": "12345"}, today)
	assert.False(t, result.Valid)
	assert.Equal(t, "Mobile must be 8 to 15 digits", result.Errors["mobile_number"])

	result = sc.Validate(filter.State{"mobile_number": "1234567890"}, today)
	assert.True(t, result.Valid)
}

func TestValidate_MobileExactDigits(t *testing.T) {
	sc := testSchema()
	sc.MobileDigits = 10

	result := sc.Validate(filter.State{"mobile_number": "123456789"}, today)
	assert.False(t, result.Valid)
	assert.Equal(t, "Mobile must be 10 digits", result.Errors["mobile_number"])

	result = sc.Validate(filter.State{"mobile_number": "12345678ab"}, today)
	assert.False(t, result.Valid)

	result = sc.Validate(filter.State{"mobile_number": "1234567890"}, today)
	assert.True(t, result.Valid)
}

func TestValidate_InvalidEnumValue(t *testing.T) {
	sc := testSchema()

	result := sc.Validate(filter.State{"status": "unknown"}, today)

	assert.False(t, result.Valid)
	assert.Equal(t, "Invalid value", result.Errors["status"])
}

func TestValidate_EmptyFieldsAreValid(t *testing.T) {
	sc := testSchema()

	result := sc.Validate(sc.Defaults(), today)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Applied)
}

func TestDefaults_Idempotent(t *testing.T) {
	sc := testSchema()

	first := sc.Defaults()
	second := sc.Defaults()

	assert.Equal(t, first, second)
}

func TestDescribe(t *testing.T) {
	sc := testSchema()

	described := sc.Describe(filter.State{"email": "foo@bar.com"})
	assert.Equal(t, "email: foo@bar.com", described)

	described = sc.Describe(filter.State{"email": "foo@bar.com", "status": "pending"})
	assert.Equal(t, "email: foo@bar.com, status: pending", described)

	assert.Equal(t, "", sc.Describe(filter.State{}))
}
