package tradelog

import "testing"

func TestPercentString(t *testing.T) {
	if got, want := Percent(13.636).String(), "13.64%"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPercentSignedString(t *testing.T) {
	cases := map[Percent]string{
		13.636: "+13.64%",
		-2.5:   "-2.50%",
		0:      "-",
	}
	for p, want := range cases {
		if got := p.SignedString(); got != want {
			t.Errorf("SignedString(%v) = %q, want %q", p, got, want)
		}
	}
}

func TestPercentEqual(t *testing.T) {
	if !Percent(10).Equal(10.00001) {
		t.Error("near-equal percents must compare equal")
	}
	if Percent(10).Equal(10.1) {
		t.Error("distinct percents must not compare equal")
	}
}
