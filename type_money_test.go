package tradelog

import "testing"

func TestMoneyString(t *testing.T) {
	if got, want := M(1234.5, "USD").String(), "$1,234.50"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := M(1000, "JPY").String(), "¥1,000"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMoneySignedString(t *testing.T) {
	cases := map[float64]string{
		150:  "+$150.00",
		-42:  "-$42.00",
		0:    "-",
		-0.5: "-$0.50",
	}
	for value, want := range cases {
		if got := M(value, "USD").SignedString(); got != want {
			t.Errorf("SignedString(%v) = %q, want %q", value, got, want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(100, "USD")
	b := M(25, "USD")
	if got := a.Sub(b); !got.Equal(M(75, "USD")) {
		t.Errorf("Sub = %v", got)
	}
	// the empty currency is weak: it adopts the other operand's
	if got := a.Add(M(1, "")); got.Currency() != "USD" {
		t.Errorf("weak currency not adopted: %q", got.Currency())
	}
	if !M(0, "USD").IsZero() {
		t.Error("IsZero")
	}
	if !M(-1, "USD").IsNegative() {
		t.Error("IsNegative")
	}
}
