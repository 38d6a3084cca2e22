package validator

import "testing"

func TestNotBlank(t *testing.T) {
	validator := New()
	validator.Check(NotBlank(""), "market", "market is required")
	if validator.Valid() {
		t.Error("validator.Valid() should return false")
	}
	if len(validator.Errors) != 1 {
		t.Error("validator.Errors should contain one entry")
	}
	if validator.Errors["market"] != "market is required" {
		t.Error("validator.Errors[market] should contain the correct error message")
	}

	if !NotBlank("home_win") {
		t.Error("NotBlank should return true for a non-empty string")
	}
	if NotBlank("   ") {
		t.Error("NotBlank should return false for whitespace")
	}
}

func TestMaxRunes(t *testing.T) {
	if !MaxRunes("over", 120) {
		t.Error("MaxRunes should return true when under the limit")
	}
	if MaxRunes("abcdef", 5) {
		t.Error("MaxRunes should return false when over the limit")
	}
	if !MaxRunes("", 0) {
		t.Error("MaxRunes should return true for an empty string at zero")
	}
}

func TestIn(t *testing.T) {
	if !In("decimal", "decimal", "american") {
		t.Error("In should find a value present in the list")
	}
	if In("fractional", "decimal", "american") {
		t.Error("In should not find a value absent from the list")
	}
	if !In(2, 1, 2, 3) {
		t.Error("In should work for comparable non-string types")
	}
}

func TestIsURL(t *testing.T) {
	if !IsURL("http://models.internal:8080/predict") {
		t.Error("IsURL should accept a URL with scheme and host")
	}
	if IsURL("not-a-url") {
		t.Error("IsURL should reject a bare string")
	}
	if IsURL("/predict") {
		t.Error("IsURL should reject a path with no host")
	}
}
