package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/materia"
)

// UnknownRemedy labels markup sections whose remedy name could not be found.
const UnknownRemedy = "Unknown Medicine"

// Document is a decoded source file reduced to the text a format scans.
type Document struct {
	Name     string   // Source filename
	Title    string   // <title> text (markup only)
	Centered []string // Cleaned text of centered paragraphs (markup only)
	Lines    []string // Cleaned paragraphs or lines in document order
}

// Format decodes one kind of reference document and extracts its sections.
type Format interface {
	// Decode reads raw bytes into a Document.
	Decode(r io.Reader, filename string) (*Document, error)
	// Extract scans a decoded document in a single pass.
	Extract(doc *Document) []materia.Entry
	// Extensions lists the file extensions this format reads.
	Extensions() []string
}

// Format names used in configuration.
const (
	FormatCenteredTitle = "centered-title"
	FormatBracketed     = "bracketed"
	FormatDashedHeader  = "dashed-header"
	FormatColonHeader   = "colon-header"
)

// ForFormat returns the format registered under name.
func ForFormat(name string) (Format, error) {
	switch name {
	case FormatCenteredTitle:
		return NewCenteredTitle(), nil
	case FormatBracketed:
		return &Bracketed{}, nil
	case FormatDashedHeader:
		return &DashedHeader{}, nil
	case FormatColonHeader:
		return &ColonHeader{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %q", name)
	}
}

// IsKnownFormat reports whether ForFormat accepts name.
func IsKnownFormat(name string) bool {
	_, err := ForFormat(name)
	return err == nil
}

// Accepts reports whether filename has one of the format's extensions.
func Accepts(f Format, filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range f.Extensions() {
		if ext == e {
			return true
		}
	}
	return false
}

// Extract runs f over decoded documents in order, merging sections into one
// corpus by remedy name.
func Extract(source string, f Format, docs []*Document) *materia.Corpus {
	corpus := materia.NewCorpus(source)
	for _, doc := range docs {
		corpus.AddEntries(f.Extract(doc))
	}
	return corpus
}

var (
	markupExtensions = []string{".htm", ".html"}
	docxExtensions   = []string{".docx"}
)
