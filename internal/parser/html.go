package parser

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DecodeHTMLParagraphs parses markup into its <p> elements. Every paragraph's
// cleaned text goes to Lines (empty ones are skipped); paragraphs with
// align="center" are also collected into Centered.
func DecodeHTMLParagraphs(r io.Reader, filename string) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	dom := goquery.NewDocumentFromNode(root)

	doc := &Document{
		Name:  filename,
		Title: Clean(dom.Find("title").First().Text()),
	}
	dom.Find("p").Each(func(_ int, p *goquery.Selection) {
		t := Clean(p.Text())
		if align, ok := p.Attr("align"); ok && strings.EqualFold(align, "center") {
			doc.Centered = append(doc.Centered, t)
		}
		if t != "" {
			doc.Lines = append(doc.Lines, t)
		}
	})
	return doc, nil
}

var titleRe = regexp.MustCompile(`(?is)<title>(.*?)</title>`)

// DecodeHTMLLines strips tags from raw markup and splits what is left into
// cleaned, non-empty lines. The <title> element is kept as raw text.
func DecodeHTMLLines(r io.Reader, filename string) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read html: %w", err)
	}
	src := string(raw)

	doc := &Document{Name: filename}
	if m := titleRe.FindStringSubmatch(src); m != nil {
		doc.Title = m[1]
	}
	doc.Lines = SplitLines(StripMarkup(src))
	return doc, nil
}
