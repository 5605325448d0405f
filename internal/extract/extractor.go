package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

// MaxFileSize caps uploaded resume payloads at 5 MiB.
const MaxFileSize = 5 << 20

var ErrUnsupportedType = fmt.Errorf("extract: unsupported file type")

// SupportedExt reports whether the extractor knows how to read the file.
func SupportedExt(filename string) bool {
	switch normalizeExt(filename) {
	case "pdf", "doc", "docx", "txt":
		return true
	}
	return false
}

// Text pulls plain text out of a resume file. A nil error with an empty
// string is a valid outcome: the file was readable but carried no text
// (scanned PDFs, image-only documents). Callers decide how to degrade.
func Text(data []byte, filename string) (string, error) {
	switch normalizeExt(filename) {
	case "txt":
		return string(data), nil
	case "pdf":
		return pdfText(data)
	case "doc", "docx":
		return docxText(data)
	}
	return "", ErrUnsupportedType
}

func normalizeExt(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

func pdfText(data []byte) (string, error) {
	reader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("extract: read pdf: %w", err)
	}

	numPages, err := reader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("extract: page count: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			continue
		}
		ex, err := extractor.New(page)
		if err != nil {
			continue
		}
		pageText, err := ex.ExtractText()
		if err != nil {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}

var docxTagRe = regexp.MustCompile(`<[^>]+>`)

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("extract: read docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	// Paragraph closers become line breaks before the markup is stripped,
	// otherwise adjacent paragraphs glue into one word.
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	return strings.TrimSpace(content), nil
}
