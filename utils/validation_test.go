package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"+56 9 1234 5678", true},
		{"(555) 123-4567", true},
		{"+0123", false},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidatePhone(tt.in); got != tt.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateUsesJSONNames(t *testing.T) {
	type input struct {
		Email string `json:"email" validate:"required,email"`
		Price int    `json:"price" validate:"gt=0"`
	}

	errs := Validate(input{Email: "nope"})
	if errs["email"] != "Invalid email format" {
		t.Errorf("email error = %q", errs["email"])
	}
	if errs["price"] == "" {
		t.Error("missing price error")
	}
	if Validate(input{Email: "a@b.cl", Price: 1}) != nil {
		t.Error("valid input rejected")
	}
}
