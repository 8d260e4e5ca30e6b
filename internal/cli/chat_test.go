package cli

import "testing"

func TestProfileArg(t *testing.T) {
	cases := []struct {
		question string
		want     string
	}{
		{"what is my current dasha profile: Asha Rao", "Asha Rao"},
		{"life overview profile:Rohan", "Rohan"},
		{"no marker here", ""},
	}
	for _, c := range cases {
		if got := profileArg(c.question); got != c.want {
			t.Errorf("profileArg(%q) = %q, want %q", c.question, got, c.want)
		}
	}
}

func TestCompareArgs(t *testing.T) {
	a, b, ok := compareArgs("compare profile: Asha Rao. profile: Rohan Iyer.")
	if !ok {
		t.Fatal("expected two names to parse")
	}
	if a != "Asha Rao" || b != "Rohan Iyer" {
		t.Errorf("got %q / %q, want Asha Rao / Rohan Iyer", a, b)
	}

	if _, _, ok := compareArgs("compare profile: OnlyOne"); ok {
		t.Error("expected parse failure with a single name")
	}
}
