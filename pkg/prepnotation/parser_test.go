package prepnotation

import "testing"

func TestParse_ValidNotation(t *testing.T) {
	cases := []struct {
		in       string
		wantPrep string
		wantCase Case
	}{
		{"auf + A", "auf", CaseAccusative},
		{"mit + D", "mit", CaseDative},
		{"wegen + G", "wegen", CaseGenitive},
		{"über+A", "über", CaseAccusative},
		{"an  +   D", "an", CaseDative},
		{"  vor + a  ", "vor", CaseAccusative},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected err: %v", tc.in, err)
		}
		if got.Preposition != tc.wantPrep {
			t.Fatalf("Parse(%q): preposition = %q, want %q", tc.in, got.Preposition, tc.wantPrep)
		}
		if got.Case != tc.wantCase {
			t.Fatalf("Parse(%q): case = %q, want %q", tc.in, got.Case, tc.wantCase)
		}
	}
}

func TestParse_UnknownCaseCodeIsNotAFailure(t *testing.T) {
	got, err := Parse("auf + X")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Preposition != "auf" || got.Case != CaseUnknown {
		t.Fatalf("got (%q, %q), want (auf, unknown)", got.Preposition, got.Case)
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"", "   ", "nurascii", "a + B + c", "auf an D"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q): expected error, got none", in)
		}
	}
}

func TestParseCaseCode(t *testing.T) {
	if got := ParseCaseCode("a"); got != CaseAccusative {
		t.Fatalf("lowercase code: got %q", got)
	}
	if got := ParseCaseCode("Z"); got != CaseUnknown {
		t.Fatalf("unmapped code: got %q", got)
	}
}
