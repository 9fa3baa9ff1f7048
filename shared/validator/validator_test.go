package validator_test

import (
	"strings"
	"taskly/shared/failure"
	"taskly/shared/validator"
	"testing"
)

type signupTestStruct struct {
	Username string `validate:"required"       json:"username"`
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required,min=8" json:"password"`
}

type createTestStruct struct {
	Title       string `validate:"required" json:"title"`
	Description string `validate:"omitempty" json:"description"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *signupTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &signupTestStruct{
				Username: "john",
				Email:    "john@example.com",
				Password: "supersecret",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &signupTestStruct{
				Email:    "john@example.com",
				Password: "supersecret",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &signupTestStruct{
				Username: "john",
				Email:    "invalid-email",
				Password: "supersecret",
			},
			expectError: true,
		},
		{
			name: "password too short",
			data: &signupTestStruct{
				Username: "john",
				Email:    "john@example.com",
				Password: "short",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate_DecodeAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid body",
			body:        `{"title": "Buy milk", "description": "2 liters"}`,
			expectError: false,
		},
		{
			name:        "missing title",
			body:        `{"description": "no title"}`,
			expectError: true,
		},
		{
			name:        "empty title",
			body:        `{"title": ""}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			body:        `{"title": "Buy milk"`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createTestStruct{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if failure.GetCode(err) != 400 {
					t.Errorf("expected code 400, got %d", failure.GetCode(err))
				}
			} else if err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateStruct_MessageTranslation(t *testing.T) {
	req := createTestStruct{}
	err := validator.ValidateStruct(&req)

	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	if !strings.Contains(err.Error(), "is required") {
		t.Errorf("expected translated message, got: %v", err)
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("test@example.com", "required,email"); err != nil {
		t.Errorf("expected no error for valid email, got: %v", err)
	}

	if err := validator.ValidateVar("", "required"); err == nil {
		t.Error("expected error for empty required var, got nil")
	}
}
