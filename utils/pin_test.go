package utils

import "testing"

func TestGeneratePinFormat(t *testing.T) {
	for i := 0; i < 200; i++ {
		pin := GeneratePin()
		if !IsValidPin(pin) {
			t.Fatalf("generated pin %q is not 4 decimal digits", pin)
		}
	}
}

func TestIsValidPin(t *testing.T) {
	valid := []string{"0000", "0042", "9999"}
	for _, pin := range valid {
		if !IsValidPin(pin) {
			t.Errorf("IsValidPin(%q) = false, want true", pin)
		}
	}

	invalid := []string{"", "1", "123", "12345", "12a4", " 123", "12.4", "-123"}
	for _, pin := range invalid {
		if IsValidPin(pin) {
			t.Errorf("IsValidPin(%q) = true, want false", pin)
		}
	}
}
