package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

// Source kinds.
const (
	KindInline = "inline"
	KindFile   = "file"
	KindURL    = "url"
)

// Metadata describes where one input came from. It is informational only and
// is never stored.
type Metadata struct {
	Kind        string         `json:"kind"`
	Source      string         `json:"source,omitempty"` // file path or URL
	Format      string         `json:"format,omitempty"` // txt, md, pdf, docx, html
	Platform    fetch.Platform `json:"platform,omitempty"`
	UsedBrowser bool           `json:"used_browser,omitempty"`
	Chars       int            `json:"chars"`
	Hash        string         `json:"hash"` // SHA256 hex digest of the cleaned text
	RetrievedAt string         `json:"retrieved_at"`
}

// NewMetadata describes cleaned content from source.
func NewMetadata(kind, source, content string) *Metadata {
	return &Metadata{
		Kind:        kind,
		Source:      source,
		Chars:       len(content),
		Hash:        computeHash(content),
		RetrievedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
