package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	validator := New()

	require.NotNil(t, validator)
	require.NotNil(t, validator.Errors)
	require.Equal(t, 0, len(validator.Errors))
}

func TestValidator_AddError(t *testing.T) {
	validator := New()
	validator.AddError("name", "Name is required")
	if len(validator.Errors) != 1 {
		t.Error("validator.Errors should contain one entry")
	}
	if validator.Errors["name"] != "Name is required" {
		t.Error("validator.Errors[name] should contain the correct error message")
	}
}

func TestValidator_Check(t *testing.T) {
	validator := New()
	validator.Check(false, "name", "Name is required")
	if len(validator.Errors) != 1 {
		t.Error("validator.Errors should contain one entry")
	}
	if validator.Errors["name"] != "Name is required" {
		t.Error("validator.Errors[name] should contain the correct error message")
	}
}

func TestValidator_Valid(t *testing.T) {
	validator := New()
	if !validator.Valid() {
		t.Error("validator.Valid() should return true")
	}
	validator.Errors["name"] = "Name is required"
	if validator.Valid() {
		t.Error("validator.Valid() should return false")
	}
}

func TestValidator_AddError_KeepsFirst(t *testing.T) {
	validator := New()
	validator.AddError("market", "Market is required")
	validator.AddError("market", "Market is too long")

	require.Equal(t, "Market is required", validator.Errors["market"])
}

func TestNewValidationError(t *testing.T) {
	v := New()
	v.Check(false, "result", "Result must be one of: open, win, loss")

	err := NewValidationError("Invalid query parameters", v.Errors)
	require.EqualError(t, err, "Invalid query parameters")
	require.Equal(t, v.Errors, err.Errors)
}
