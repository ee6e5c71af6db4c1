package parser

import (
	"io"
	"regexp"
	"strings"

	"github.com/suryakrishnakishore/Homeopath-Medicines-Search/internal/materia"
)

// GeneralHeading names the catch-all section opened by text that precedes
// any heading in the dashed-header format.
const GeneralHeading = "General"

// DashedHeader reads word-processor materia medica where a remedy is an
// all-caps line followed by a common-name subtitle, and sections look like
// "Mind.--text".
type DashedHeader struct{}

var (
	dashedRemedyRe  = regexp.MustCompile(`^[A-Z\s]+$`)
	dashedHeadingRe = regexp.MustCompile(`^([A-Z][a-z]+)\.--(.*)$`)
)

func (f *DashedHeader) Decode(r io.Reader, filename string) (*Document, error) {
	return DecodeDOCX(r, filename)
}

func (f *DashedHeader) Extensions() []string { return docxExtensions }

func (f *DashedHeader) Extract(doc *Document) []materia.Entry {
	var b builder
	hasRemedy := false
	skipNext := false

	for _, line := range doc.Lines {
		if skipNext {
			// Common-name subtitle under the remedy line.
			skipNext = false
			continue
		}
		if len(line) > 3 && dashedRemedyRe.MatchString(line) {
			b.setRemedy(line)
			hasRemedy = true
			skipNext = true
			continue
		}
		if !hasRemedy {
			continue
		}
		if m := dashedHeadingRe.FindStringSubmatch(line); m != nil {
			b.open(m[1], strings.TrimSpace(m[2]))
			continue
		}
		if !b.appendText(line) {
			b.open(GeneralHeading, line)
		}
	}
	return b.finish()
}

// ColonHeader reads word-processor documents where a remedy is a line of one
// to four title-case words and sections look like "Mind: text".
type ColonHeader struct{}

var (
	colonRemedyRe  = regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z][a-z]+){0,3}$`)
	colonHeadingRe = regexp.MustCompile(`^([A-Z][a-z]+(?: [A-Z][a-z]+)*):\s*(.*)$`)
)

func (f *ColonHeader) Decode(r io.Reader, filename string) (*Document, error) {
	return DecodeDOCX(r, filename)
}

func (f *ColonHeader) Extensions() []string { return docxExtensions }

// Extract drops lines that follow a remedy line but precede its first
// subheading.
func (f *ColonHeader) Extract(doc *Document) []materia.Entry {
	var b builder
	hasRemedy := false

	for _, line := range doc.Lines {
		if hasRemedy {
			if m := colonHeadingRe.FindStringSubmatch(line); m != nil {
				b.open(m[1], strings.TrimSpace(m[2]))
				continue
			}
		}
		if colonRemedyRe.MatchString(line) {
			b.setRemedy(line)
			hasRemedy = true
			continue
		}
		b.appendText(line)
	}
	return b.finish()
}
