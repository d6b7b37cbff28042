package ingestion

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// buildDocx returns a minimal .docx archive whose body holds the given paragraphs.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `</w:body></w:document>`
	rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"word/document.xml":            document,
		"word/_rels/document.xml.rels": rels,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestLoadFile_Text(t *testing.T) {
	for _, name := range []string{"resume.txt", "resume.md", "resume"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, []byte("# Jane Doe\n\n\n\nSkills:   Go,  React\r\n"))

			text, meta, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "# Jane Doe\n\nSkills: Go, React", text)
			assert.Equal(t, KindFile, meta.Kind)
			assert.Equal(t, path, meta.Source)
			assert.Len(t, meta.Hash, 64)
		})
	}
}

func TestLoadFile_Docx(t *testing.T) {
	path := writeFile(t, "resume.docx", buildDocx(t, "Jane Doe", "Go &amp; Kubernetes"))

	text, meta, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "docx", meta.Format)
	assert.Contains(t, text, "Jane Doe\nGo & Kubernetes")
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		contains string
	}{
		{
			name:     "missing",
			path:     func(*testing.T) string { return "/nonexistent/resume.txt" },
			contains: "file not found",
		},
		{
			name:     "unsupported extension",
			path:     func(t *testing.T) string { return writeFile(t, "resume.odt", []byte("x")) },
			contains: "unsupported file format",
		},
		{
			name:     "blank text",
			path:     func(t *testing.T) string { return writeFile(t, "resume.txt", []byte(" \n\t\n")) },
			contains: "no text content",
		},
		{
			name:     "corrupt pdf",
			path:     func(t *testing.T) string { return writeFile(t, "resume.pdf", []byte("not a pdf")) },
			contains: "failed to extract text",
		},
		{
			name:     "corrupt docx",
			path:     func(t *testing.T) string { return writeFile(t, "resume.docx", []byte("not a zip")) },
			contains: "failed to extract text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, meta, err := LoadFile(tt.path(t))
			require.Error(t, err)
			assert.Empty(t, text)
			assert.Nil(t, meta)

			var ingestErr *Error
			assert.ErrorAs(t, err, &ingestErr)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	_, err := ExtractText("rtf", []byte("{\\rtf1}"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDocxXMLToText(t *testing.T) {
	xml := `<w:body><w:p><w:r><w:t>Skills</w:t><w:tab/><w:t>Go</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p></w:body>`

	assert.Equal(t, "Skills\tGo\nLine one\nLine two\n", docxXMLToText(xml))
}
