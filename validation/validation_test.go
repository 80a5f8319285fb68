package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/flowkit/errors"
)

type order struct {
	ID     string  `json:"id" validate:"required,uuid"`
	Email  string  `json:"email" validate:"required,email"`
	Amount float64 `json:"amount" validate:"gt=0"`
}

func TestStruct_Valid(t *testing.T) {
	o := order{
		ID:     "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		Email:  "a@example.com",
		Amount: 10,
	}
	if err := Struct(o); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestStruct_AggregatesFieldErrors(t *testing.T) {
	err := Struct(order{})
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	if !errors.IsValidation(err) {
		t.Fatalf("expected VALIDATION_FAILED, got %v", err)
	}

	appErr, _ := errors.AsAppError(err)
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("expected []FieldError details, got %T", appErr.Details["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(fields), fields)
	}
	if !strings.Contains(appErr.Message, "email") {
		t.Errorf("expected email mentioned in message, got %s", appErr.Message)
	}
}

func TestStruct_UsesJSONTagNames(t *testing.T) {
	type payload struct {
		UserName string `json:"username" validate:"required"`
	}

	err := Struct(payload{})
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	if !strings.Contains(err.Error(), "username") {
		t.Errorf("expected json tag name in message, got %s", err.Error())
	}
}

func TestStruct_SnakeCaseFallback(t *testing.T) {
	type payload struct {
		FirstName string `validate:"required"`
	}

	err := Struct(payload{})
	if err == nil {
		t.Fatal("expected validation to fail")
	}
	if !strings.Contains(err.Error(), "first_name") {
		t.Errorf("expected snake_case field name, got %s", err.Error())
	}
}
