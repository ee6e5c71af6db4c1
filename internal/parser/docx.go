package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fumiama/go-docx"
)

// DecodeDOCX reads a .docx archive and returns one cleaned line per
// non-empty body paragraph.
func DecodeDOCX(r io.Reader, filename string) (*Document, error) {
	// go-docx needs a ReaderAt+size; reference documents are small enough to buffer.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read docx: %w", err)
	}

	d, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	doc := &Document{Name: filename}
	for _, item := range d.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		if t := Clean(docxParagraphText(para)); t != "" {
			doc.Lines = append(doc.Lines, t)
		}
	}
	return doc, nil
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf bytes.Buffer
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return buf.String()
}
