// Package epubtest builds small EPUB files for tests.
package epubtest

import (
	"archive/zip"
	"fmt"
	"html"
	"os"
	"strings"
	"testing"
)

type Chapter struct {
	// Heading is rendered as an <h1>; leave empty to test title fallbacks.
	Heading string
	// Label is the table of contents entry for this document.
	Label string
	// Body is inner HTML placed after the heading.
	Body string
}

type Book struct {
	Title       string
	Author      string
	Language    string
	Publisher   string
	Description string
	// NCX writes an EPUB2 toc.ncx instead of an EPUB3 nav document.
	NCX      bool
	Chapters []Chapter
}

// Write builds the EPUB at path and fails the test on error.
func Write(t testing.TB, path string, b Book) {
	t.Helper()
	if err := WriteFile(path, b); err != nil {
		t.Fatalf("failed to write epub: %v", err)
	}
}

func WriteFile(path string, b Book) error {
	zipFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	zipWriter := zip.NewWriter(zipFile)

	err = addStringToZip(zipWriter, "mimetype", "application/epub+zip", zip.Store)
	if err != nil {
		return err
	}
	files := map[string]string{
		"META-INF/container.xml": containerXML,
		"OEBPS/content.opf":      b.opf(),
	}
	if b.NCX {
		files["OEBPS/toc.ncx"] = b.ncx()
	} else {
		files["OEBPS/nav.xhtml"] = b.nav()
	}
	for i, ch := range b.Chapters {
		files[fmt.Sprintf("OEBPS/Text/chapter-%03v.xhtml", i+1)] = ch.xhtml()
	}
	for name, content := range files {
		if err := addStringToZip(zipWriter, name, content, zip.Deflate); err != nil {
			return err
		}
	}
	return zipWriter.Close()
}

func addStringToZip(zipWriter *zip.Writer, relPath, content string, method uint16) error {
	header := &zip.FileHeader{
		Name:   relPath,
		Method: method,
	}
	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = writer.Write([]byte(content))
	return err
}

const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

func (b Book) opf() string {
	var meta strings.Builder
	writeDC := func(name, value string) {
		if value != "" {
			fmt.Fprintf(&meta, "    <dc:%s>%s</dc:%s>\n", name, html.EscapeString(value), name)
		}
	}
	writeDC("title", b.Title)
	writeDC("creator", b.Author)
	writeDC("language", b.Language)
	writeDC("publisher", b.Publisher)
	writeDC("description", b.Description)

	var manifest, spine strings.Builder
	version, spineAttr := "3.0", ""
	if b.NCX {
		version, spineAttr = "2.0", ` toc="ncx"`
		manifest.WriteString(`    <item id="ncx" href="toc.ncx" media-type="application/x-dtbncx+xml"/>` + "\n")
	} else {
		manifest.WriteString(`    <item id="nav" href="nav.xhtml" media-type="application/xhtml+xml" properties="nav"/>` + "\n")
	}
	for i := range b.Chapters {
		fmt.Fprintf(&manifest, "    <item id=\"chapter-%03v\" href=\"Text/chapter-%03v.xhtml\" media-type=\"application/xhtml+xml\"/>\n", i+1, i+1)
		fmt.Fprintf(&spine, "    <itemref idref=\"chapter-%03v\"/>\n", i+1)
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="%s" unique-identifier="book-id">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
%s  </metadata>
  <manifest>
%s  </manifest>
  <spine%s>
%s  </spine>
</package>`, version, meta.String(), manifest.String(), spineAttr, spine.String())
}

func (b Book) nav() string {
	var items strings.Builder
	for i, ch := range b.Chapters {
		if ch.Label == "" {
			continue
		}
		fmt.Fprintf(&items, `<li><a href="Text/chapter-%03v.xhtml">%s</a></li>`, i+1, html.EscapeString(ch.Label))
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml" xmlns:epub="http://www.idpf.org/2007/ops">
<head><title>Contents</title></head>
<body><nav epub:type="toc" id="toc"><ol>%s</ol></nav></body>
</html>`, items.String())
}

func (b Book) ncx() string {
	var points strings.Builder
	for i, ch := range b.Chapters {
		if ch.Label == "" {
			continue
		}
		fmt.Fprintf(&points, `<navPoint id="np-%d" playOrder="%d"><navLabel><text>%s</text></navLabel><content src="Text/chapter-%03v.xhtml"/></navPoint>`,
			i+1, i+1, html.EscapeString(ch.Label), i+1)
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<ncx xmlns="http://www.daisy.org/z3986/2005/ncx/" version="2005-1">
<head/>
<docTitle><text>%s</text></docTitle>
<navMap>%s</navMap>
</ncx>`, html.EscapeString(b.Title), points.String())
}

func (c Chapter) xhtml() string {
	heading := ""
	if c.Heading != "" {
		heading = "<h1>" + html.EscapeString(c.Heading) + "</h1>"
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>%s</title></head>
<body>%s%s</body>
</html>`, html.EscapeString(c.Label), heading, c.Body)
}
