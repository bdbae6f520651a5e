package utils

import "testing"

func TestNormalizePlate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{" abc 123 ", "ABC123"},
		{"abc123", "ABC123"},
		{"ABC 123", "ABC123"},
		{"a b\tc", "ABC"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := NormalizePlate(tc.in); got != tc.want {
			t.Errorf("NormalizePlate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+573001234567", "3001234567", "(300) 123-4567"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("expected %q to be valid", phone)
		}
	}
	invalid := []string{"", "abc", "+0123"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("expected %q to be invalid", phone)
		}
	}
}
