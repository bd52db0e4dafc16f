package timeinmarket

import "testing"

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(1234.5, "EUR"), "€1,234.50"},
		{M(0, "EUR"), "€0.00"},
		{M(-20, "USD"), "-$20.00"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String(%v %s) = %q, want %q", tc.m.value, tc.m.cur, got, tc.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(0, "EUR").SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want -", got)
	}
	if got := M(5, "EUR").SignedString(); got != "+€5.00" {
		t.Errorf("positive SignedString = %q", got)
	}
}

func TestPercentString(t *testing.T) {
	if got := Percent(12.345).String(); got != "12.35%" {
		t.Errorf("String = %q", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q", got)
	}
	if got := Percent(3.2).SignedString(); got != "+3.20%" {
		t.Errorf("SignedString = %q", got)
	}
}
