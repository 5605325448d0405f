package matching

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Hello, World!", "hello  world "},
		{"bachelor-of-science", "bachelor of science"},
		{"already clean 123", "already clean 123"},
		{"Tabs\tand\nnewlines", "tabs\tand\nnewlines"},
		{"unicode: résumé", "unicode  r sum "},
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeCompact(t *testing.T) {
	if got := normalizeCompact("  B.S.  in\n Computer   Science "); got != "b s in computer science" {
		t.Fatalf("normalizeCompact = %q", got)
	}
	if got := normalizeCompact("C++ & C# Developer"); got != "c c developer" {
		t.Fatalf("normalizeCompact = %q", got)
	}
	if got := normalizeCompact("!!!"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
