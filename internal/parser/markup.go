package parser

import (
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/materia"
)

// CenteredTitle reads handbooks whose remedy name is the first short
// centered paragraph after a front-matter marker, with "<words> :-" headings.
type CenteredTitle struct {
	Marker      string // Lowercase phrase that precedes the remedy title
	MaxTitleLen int    // Remedy titles are strictly shorter than this
}

// NewCenteredTitle returns the format with the handbook's front-matter marker.
func NewCenteredTitle() *CenteredTitle {
	return &CenteredTitle{
		Marker:      "hand book of materia medica",
		MaxTitleLen: 30,
	}
}

var centeredHeadingRe = regexp.MustCompile(`^([A-Za-z\s]+)\s*:-`)

func (f *CenteredTitle) Decode(r io.Reader, filename string) (*Document, error) {
	return DecodeHTMLParagraphs(r, filename)
}

func (f *CenteredTitle) Extensions() []string { return markupExtensions }

func (f *CenteredTitle) Extract(doc *Document) []materia.Entry {
	b := builder{remedy: f.remedyName(doc.Centered)}
	for _, line := range doc.Lines {
		if m := centeredHeadingRe.FindStringSubmatch(line); m != nil {
			b.open(strings.TrimSpace(m[1]), line)
			continue
		}
		b.appendText(line)
	}
	return b.finish()
}

// remedyName returns the first qualifying centered paragraph after the marker.
func (f *CenteredTitle) remedyName(centered []string) string {
	found := false
	for _, t := range centered {
		if strings.Contains(strings.ToLower(t), f.Marker) {
			found = true
			continue
		}
		if found && strings.HasSuffix(t, ".") && utf8.RuneCountInString(t) < f.MaxTitleLen {
			return t
		}
	}
	return UnknownRemedy
}

// Bracketed reads guiding-symptom pages: the remedy comes from <title> and
// headings look like "MIND. [1]".
type Bracketed struct{}

var bracketedHeadingRe = regexp.MustCompile(`^([A-Z ,]+)\.\s*\[\d+\]`)

func (f *Bracketed) Decode(r io.Reader, filename string) (*Document, error) {
	return DecodeHTMLLines(r, filename)
}

func (f *Bracketed) Extensions() []string { return markupExtensions }

func (f *Bracketed) Extract(doc *Document) []materia.Entry {
	b := builder{remedy: titleRemedy(doc.Title)}
	for _, line := range doc.Lines {
		if m := bracketedHeadingRe.FindStringSubmatch(line); m != nil {
			b.open(strings.TrimSpace(m[1]), line)
			continue
		}
		b.appendText(line)
	}
	return b.finish()
}

// titleRemedy keeps the title text before its first period, plus the period.
func titleRemedy(title string) string {
	i := strings.Index(title, ".")
	if i <= 0 {
		return UnknownRemedy
	}
	return strings.TrimSpace(title[:i]) + "."
}
