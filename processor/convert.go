// Package processor implements the book commands: convert, list-chapters and generate-audio.
package processor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"bookvoice/book"
	"bookvoice/model"
	"bookvoice/text"
	"bookvoice/utils"

	"github.com/google/uuid"
	"github.com/simp-lee/epub"
)

const (
	unknown         = "Unknown"
	defaultLanguage = "en"
	summaryRows     = 10
)

var ErrInvalidEPUB = errors.New("invalid epub")

type ConvertOptions struct {
	EPUBPath string
	Title    string
	// Slug overrides the directory name derived from Title.
	Slug     string
	BooksDir string
	// Force replaces an existing book, keeping its audio.
	Force bool
	Out   io.Writer
}

type ConvertResult struct {
	Dir      string
	Metadata model.Metadata
	Chapters []model.Chapter
}

// Convert parses an EPUB and writes it as a book directory under BooksDir.
// Nothing is written unless the whole EPUB parses.
func Convert(opts ConvertOptions) (*ConvertResult, error) {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if _, err := os.Stat(opts.EPUBPath); err != nil {
		return nil, fmt.Errorf("epub file not found: %s", opts.EPUBPath)
	}
	slug := BookSlug(opts.Title, opts.Slug)
	dir := filepath.Join(opts.BooksDir, slug)
	if utils.Exists(dir) && !opts.Force {
		return nil, fmt.Errorf("%w: %s (use --force to replace it)", book.ErrBookExists, dir)
	}

	slog.Info("converting epub", "path", opts.EPUBPath, "slug", slug)
	dc, chapters, err := ExtractEPUB(opts.EPUBPath)
	if err != nil {
		return nil, err
	}
	if len(chapters) == 0 {
		return nil, fmt.Errorf("%w: no chapters with text", ErrInvalidEPUB)
	}

	meta := model.Metadata{
		Title:         opts.Title,
		OriginalTitle: orDefault(first(dc.Titles), unknown),
		Author:        orDefault(bookAuthor(dc.Authors), unknown),
		Language:      orDefault(first(dc.Language), defaultLanguage),
		Publisher:     orDefault(dc.Publisher, unknown),
		Description:   dc.Description,
		Slug:          slug,
		Source:        filepath.ToSlash(filepath.Join("source", utils.CleanDirName(filepath.Base(opts.EPUBPath)))),
		ChapterCount:  len(chapters),
		ConvertedAt:   time.Now().UTC().Truncate(time.Second),
	}
	if meta.Title == "" {
		meta.Title = meta.OriginalTitle
	}

	if err := os.MkdirAll(opts.BooksDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create books directory: %w", err)
	}
	staging := filepath.Join(opts.BooksDir, fmt.Sprintf(".%s.partial-%s", slug, uuid.NewString()))
	if err := writeBook(book.Layout{Root: staging}, opts.EPUBPath, meta, chapters); err != nil {
		os.RemoveAll(staging)
		return nil, err
	}
	if err := publish(staging, dir); err != nil {
		os.RemoveAll(staging)
		return nil, err
	}
	slog.Info("book converted", "dir", dir, "chapters", len(chapters))

	printSummary(opts.Out, meta, dir, chapters)
	return &ConvertResult{Dir: dir, Metadata: meta, Chapters: chapters}, nil
}

// BookSlug returns the directory name for a book: override when given, else the title.
func BookSlug(title, override string) string {
	slug := utils.Slugify(override)
	if slug == "" {
		slug = utils.Slugify(title)
	}
	if slug == "" {
		slug = "book"
	}
	return slug
}

// ExtractEPUB reads the metadata and the chapters of an EPUB.
// Spine documents without text are skipped and the rest numbered from 1.
func ExtractEPUB(path string) (epub.Metadata, []model.Chapter, error) {
	b, err := epub.Open(path)
	if err != nil {
		return epub.Metadata{}, nil, fmt.Errorf("%w: %w", ErrInvalidEPUB, err)
	}
	defer b.Close()
	meta := b.Metadata()
	slog.Debug("opened epub", "path", path, "version", meta.Version, "toc", b.HasTOC())
	for _, w := range b.Warnings() {
		slog.Warn("epub warning", "path", path, "warning", w)
	}

	var chapters []model.Chapter
	for _, ch := range b.ContentChapters() {
		if ch.Href == "" {
			slog.Warn("skipping spine item missing from manifest", "id", ch.ID)
			continue
		}
		content, err := ch.RawContent()
		if err != nil {
			return epub.Metadata{}, nil, fmt.Errorf("%w: failed to read %s: %v", ErrInvalidEPUB, ch.Href, err)
		}
		doc, err := text.Parse(content)
		if err != nil {
			return epub.Metadata{}, nil, fmt.Errorf("failed to parse %s: %w", ch.Href, err)
		}
		plain := doc.PlainText()
		if strings.TrimSpace(plain) == "" {
			slog.Debug("skipping document without text", "href", ch.Href)
			continue
		}
		number := len(chapters) + 1
		title := chapterTitle(doc, ch.Title, number)
		chapters = append(chapters, model.Chapter{
			Number:    number,
			Title:     title,
			Markdown:  "# " + title + "\n\n" + dropLeadingHeading(doc.Markdown(), title),
			Text:      withTitle(plain, title),
			WordCount: text.WordCount(plain),
		})
	}
	for i := range chapters {
		chapters[i].Filename = utils.ChapterFilename(chapters[i].Number, len(chapters), chapters[i].Title)
	}
	return meta, chapters, nil
}

// bookAuthor prefers a creator with role "aut", falling back to the first creator.
func bookAuthor(authors []epub.Author) string {
	for _, a := range authors {
		if a.Role == "aut" {
			return a.Name
		}
	}
	if len(authors) > 0 {
		return authors[0].Name
	}
	return ""
}

func first(values []string) string {
	if len(values) > 0 {
		return values[0]
	}
	return ""
}

func chapterTitle(doc *text.Document, tocLabel string, number int) string {
	for _, t := range []string{doc.Heading(), tocLabel, doc.Title()} {
		if t = strings.TrimSpace(t); t != "" {
			return t
		}
	}
	return fmt.Sprintf("Chapter %d", number)
}

// dropLeadingHeading removes a first Markdown heading that repeats title.
func dropLeadingHeading(md, title string) string {
	first, rest, _ := strings.Cut(md, "\n\n")
	if strings.HasPrefix(first, "#") && strings.TrimSpace(strings.TrimLeft(first, "#")) == title {
		return rest
	}
	return md
}

func withTitle(plain, title string) string {
	first, _, _ := strings.Cut(plain, "\n\n")
	if strings.TrimSpace(first) == title {
		return plain
	}
	return title + "\n\n" + plain
}

func writeBook(l book.Layout, epubPath string, meta model.Metadata, chapters []model.Chapter) error {
	if err := l.Create(); err != nil {
		return err
	}
	if err := utils.CopyFile(epubPath, filepath.Join(l.Root, filepath.FromSlash(meta.Source))); err != nil {
		return fmt.Errorf("failed to copy epub: %w", err)
	}
	toc := model.TOC{Chapters: make([]model.TOCEntry, 0, len(chapters))}
	for i := range chapters {
		ch := &chapters[i]
		if err := os.WriteFile(l.ChapterPath(ch.Filename), []byte(ch.Markdown+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write chapter %d: %w", ch.Number, err)
		}
		if err := os.WriteFile(l.TextPath(ch.Filename), []byte(ch.Text+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write chapter %d text: %w", ch.Number, err)
		}
		toc.Chapters = append(toc.Chapters, ch.Entry())
	}
	if err := book.WriteYAML(l.TOCPath(), toc); err != nil {
		return err
	}
	return book.WriteYAML(l.MetadataPath(), meta)
}

// publish moves a fully written staging directory to dir. An existing book
// at dir is replaced and its audio tree carried over.
func publish(staging, dir string) error {
	if !utils.Exists(dir) {
		if err := os.Rename(staging, dir); err != nil {
			return fmt.Errorf("failed to move book into place: %w", err)
		}
		return nil
	}

	backup := filepath.Join(filepath.Dir(dir), fmt.Sprintf(".%s.old-%s", filepath.Base(dir), uuid.NewString()))
	if err := os.Rename(dir, backup); err != nil {
		return fmt.Errorf("failed to move old book aside: %w", err)
	}
	if err := os.Rename(staging, dir); err != nil {
		if rerr := os.Rename(backup, dir); rerr != nil {
			return errors.Join(fmt.Errorf("failed to move book into place: %w", err), fmt.Errorf("old book left at %s", backup))
		}
		return fmt.Errorf("failed to move book into place: %w", err)
	}

	newAudio := book.Layout{Root: dir}.AudioRoot()
	oldAudio := book.Layout{Root: backup}.AudioRoot()
	if utils.Exists(oldAudio) {
		if err := os.RemoveAll(newAudio); err != nil {
			return fmt.Errorf("failed to prepare audio directory: %w", err)
		}
		if err := os.Rename(oldAudio, newAudio); err != nil {
			return fmt.Errorf("failed to carry over audio, it is still in %s: %w", oldAudio, err)
		}
	}
	if err := os.RemoveAll(backup); err != nil {
		slog.Warn("failed to remove old book", "path", backup, "error", err)
	}
	return nil
}

func printSummary(w io.Writer, meta model.Metadata, dir string, chapters []model.Chapter) {
	fmt.Fprintf(w, "Converted %d chapters\n", len(chapters))
	fmt.Fprintf(w, "Book saved to: %s\n\n", dir)
	fmt.Fprintf(w, "Book: %s\n", meta.Title)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Chapter\tTitle\tWords")
	for i, ch := range chapters {
		if i == summaryRows {
			break
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\n", ch.Number, truncate(ch.Title, 50), ch.WordCount)
	}
	if len(chapters) > summaryRows {
		fmt.Fprintf(tw, "...\t... and %d more chapters\t...\n", len(chapters)-summaryRows)
	}
	tw.Flush()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// truncate cuts s to n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
