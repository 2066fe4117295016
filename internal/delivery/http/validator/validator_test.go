package validator

import (
	"strings"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProductInput() *usecase.CreateProductInput {
	return &usecase.CreateProductInput{
		Name:       "Widget",
		Price:      9.99,
		Stock:      0,
		CategoryID: 1,
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	out := make(map[string]string, len(validationErr.Fields()))
	for _, fe := range validationErr.Fields() {
		out[fe.Field] = fe.Message
	}

	return out
}

func TestValidator_ValidProductPayload(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(validProductInput()))
}

func TestValidator_ProductNameRules(t *testing.T) {
	v := New()

	empty := validProductInput()
	empty.Name = ""
	fields := fieldErrors(t, v.Validate(empty))
	assert.Contains(t, fields["name"], "required")

	tooLong := validProductInput()
	tooLong.Name = strings.Repeat("a", 201)
	fields = fieldErrors(t, v.Validate(tooLong))
	assert.Contains(t, fields["name"], "200")

	// Exactly at the limit passes.
	atLimit := validProductInput()
	atLimit.Name = strings.Repeat("a", 200)
	require.NoError(t, v.Validate(atLimit))
}

func TestValidator_ProductNumericRules(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		mutate  func(*usecase.CreateProductInput)
		field   string
		message string
	}{
		{
			name:    "zero price",
			mutate:  func(in *usecase.CreateProductInput) { in.Price = 0 },
			field:   "price",
			message: "required",
		},
		{
			name:    "negative price",
			mutate:  func(in *usecase.CreateProductInput) { in.Price = -1 },
			field:   "price",
			message: "greater than zero",
		},
		{
			name:    "negative stock",
			mutate:  func(in *usecase.CreateProductInput) { in.Stock = -1 },
			field:   "stock",
			message: "cannot be negative",
		},
		{
			name:    "zero category",
			mutate:  func(in *usecase.CreateProductInput) { in.CategoryID = 0 },
			field:   "categoryId",
			message: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validProductInput()
			tt.mutate(input)

			fields := fieldErrors(t, v.Validate(input))
			assert.Contains(t, fields[tt.field], tt.message)
		})
	}
}

// Failures are collected, not short-circuited on the first broken rule.
func TestValidator_CollectsAllFailures(t *testing.T) {
	v := New()

	input := &usecase.CreateProductInput{
		Name:        "",
		Description: strings.Repeat("d", 1001),
		Price:       -1,
		Stock:       -5,
		CategoryID:  0,
	}

	fields := fieldErrors(t, v.Validate(input))
	assert.Len(t, fields, 5)
}

func TestValidator_OrderRules(t *testing.T) {
	v := New()

	empty := &usecase.PlaceOrderInput{}
	fields := fieldErrors(t, v.Validate(empty))
	assert.Contains(t, fields, "items")

	badLine := &usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItemInput{{ProductID: 1, Quantity: 0}},
	}
	fields = fieldErrors(t, v.Validate(badLine))
	assert.NotEmpty(t, fields)

	valid := &usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItemInput{{ProductID: 1, Quantity: 2}},
	}
	require.NoError(t, v.Validate(valid))
}

func TestValidator_RegisterRules(t *testing.T) {
	v := New()

	input := &usecase.RegisterInput{
		Email:     "not-an-email",
		Password:  "",
		FirstName: "Jane",
		LastName:  "Doe",
	}

	fields := fieldErrors(t, v.Validate(input))
	assert.Contains(t, fields["email"], "valid email")
	assert.Contains(t, fields["password"], "required")
}
