package text

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

var (
	spaceRe      = regexp.MustCompile(`[ \t\r\f\v\p{Zs}]+`)
	pageNumberRe = regexp.MustCompile(`^\s*\d+\s*$`)
)

// Document is a parsed chapter (X)HTML file.
type Document struct {
	doc      *goquery.Document
	markdown string
}

func Parse(html []byte) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	doc.Find("script, style, img, svg, noscript").Remove()
	// Printed page numbers left in the markup by some converters.
	doc.Find("body p, body div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Children().Length() == 0 && pageNumberRe.MatchString(s.Text())
	}).Remove()

	d := &Document{doc: doc}
	body, err := d.body().Html()
	if err != nil {
		return nil, fmt.Errorf("failed to render body: %w", err)
	}
	md, err := htmltomarkdown.ConvertString(body)
	if err != nil {
		return nil, fmt.Errorf("failed to convert to markdown: %w", err)
	}
	d.markdown = strings.TrimSpace(md)
	return d, nil
}

// Heading returns the first h1, h2 or h3 in document order.
func (d *Document) Heading() string {
	return collapse(d.doc.Find("body h1, body h2, body h3").First().Text())
}

// Title returns the content of the <title> element.
func (d *Document) Title() string {
	return collapse(d.doc.Find("head title").First().Text())
}

// Markdown returns the body rendered as Markdown.
func (d *Document) Markdown() string {
	return d.markdown
}

// PlainText returns the body as paragraphs of plain text separated by blank lines.
func (d *Document) PlainText() string {
	return StripMarkdown(d.markdown)
}

func (d *Document) body() *goquery.Selection {
	body := d.doc.Find("body").First()
	if body.Length() == 0 {
		return d.doc.Selection
	}
	return body
}

// WordCount counts whitespace separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

func collapse(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(strings.ReplaceAll(s, "\n", " "), " "))
}
