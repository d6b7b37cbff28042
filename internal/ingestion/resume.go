package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxFileBytes caps the size of a resume or job description file.
const MaxFileBytes = 10 << 20

// ErrUnsupportedFormat is returned for file extensions that cannot be read as text.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Error wraps a failure loading one input.
type Error struct {
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingestion error for %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingestion error for %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// LoadFile reads a .txt, .md, .pdf or .docx file and returns its cleaned text.
func LoadFile(path string) (string, *Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &Error{Source: path, Message: "file not found", Cause: err}
		}
		return "", nil, &Error{Source: path, Message: "failed to stat file", Cause: err}
	}
	if info.Size() > MaxFileBytes {
		return "", nil, &Error{Source: path, Message: fmt.Sprintf("file exceeds %d bytes", MaxFileBytes)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, &Error{Source: path, Message: "failed to read file", Cause: err}
	}

	format := formatFromPath(path)
	raw, err := ExtractText(format, data)
	if err != nil {
		return "", nil, &Error{Source: path, Message: "failed to extract text", Cause: err}
	}

	cleaned := CleanText(raw)
	if cleaned == "" {
		return "", nil, &Error{Source: path, Message: "no text content found"}
	}

	meta := NewMetadata(KindFile, path, cleaned)
	meta.Format = format
	return cleaned, meta, nil
}

func formatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "", "text":
		return "txt"
	case "markdown":
		return "md"
	default:
		return ext
	}
}

// ExtractText converts raw file bytes in the given format (file extension
// without the dot) to plain text.
func ExtractText(format string, data []byte) (string, error) {
	switch format {
	case "txt", "md":
		return string(data), nil
	case "pdf":
		return extractPDFText(data)
	case "docx":
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:cr/>`)
	docxTab          = regexp.MustCompile(`<w:tab/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText flattens WordprocessingML body XML to text, one paragraph per line.
func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
