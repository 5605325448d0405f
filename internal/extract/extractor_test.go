package extract

import (
	"errors"
	"testing"
)

func TestSupportedExt(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"resume.docx", true},
		{"resume.doc", true},
		{"notes.txt", true},
		{"photo.png", false},
		{"archive.zip", false},
		{"noext", false},
	}
	for _, c := range cases {
		if got := SupportedExt(c.filename); got != c.want {
			t.Fatalf("SupportedExt(%q) = %v, want %v", c.filename, got, c.want)
		}
	}
}

func TestTextPlainFile(t *testing.T) {
	got, err := Text([]byte("Senior Go developer, 5 years"), "resume.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Senior Go developer, 5 years" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestTextUnsupportedType(t *testing.T) {
	_, err := Text([]byte("x"), "resume.exe")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestTextCorruptPDF(t *testing.T) {
	_, err := Text([]byte("not a pdf"), "resume.pdf")
	if err == nil {
		t.Fatalf("expected error for corrupt pdf")
	}
}

func TestTextCorruptDocx(t *testing.T) {
	_, err := Text([]byte("not a zip"), "resume.docx")
	if err == nil {
		t.Fatalf("expected error for corrupt docx")
	}
}
