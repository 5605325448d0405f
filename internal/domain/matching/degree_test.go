package matching

import "testing"

func TestDegreeMatchesEquivalence(t *testing.T) {
	if !DegreeMatches("Bachelor of Science", "Holds a BS in Computer Science") {
		t.Fatalf("expected BS to satisfy Bachelor of Science")
	}
	if !DegreeMatches("MS", "Master of Science in Statistics") {
		t.Fatalf("expected master to satisfy MS")
	}
	if !DegreeMatches("PhD", "completed a doctorate in physics") {
		t.Fatalf("expected doctorate to satisfy PhD")
	}
	if !DegreeMatches("B.S.", "earned a Bachelor of Science in 2020") {
		t.Fatalf("expected dotted abbreviation to satisfy Bachelor of Science")
	}
}

func TestDegreeMatchesHyphenatedPhrase(t *testing.T) {
	if !DegreeMatches("Bachelor", "bachelor-of-science holder") {
		t.Fatalf("expected hyphenated phrasing to satisfy Bachelor")
	}
}

func TestDegreeMatchesDirectContainment(t *testing.T) {
	if !DegreeMatches("B.Sc.", "graduated with a BSc in 2019") {
		t.Fatalf("expected normalized containment match")
	}
}

func TestDegreeMatchesNoFalsePositives(t *testing.T) {
	// "ms" must not fire inside "systems".
	if DegreeMatches("MS", "built distributed systems for years") {
		t.Fatalf("ms matched inside systems")
	}
	if DegreeMatches("Bachelor", "self-taught developer") {
		t.Fatalf("unexpected degree match")
	}
}

func TestDegreeMatchesEmpty(t *testing.T) {
	if DegreeMatches("", "has a bachelor degree") {
		t.Fatalf("empty requirement should not match")
	}
	if DegreeMatches("Bachelor", "") {
		t.Fatalf("empty resume should not match")
	}
}
