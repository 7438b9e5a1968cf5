package processor

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"bookvoice/book"
	"bookvoice/model"
	"bookvoice/utils"
)

type ListOptions struct {
	BookDir   string
	Model     string
	ShowAudio bool
	Out       io.Writer
}

// ListChapters prints the chapters of a book in table of contents order.
func ListChapters(opts ListOptions) error {
	b, err := book.Open(opts.BookDir)
	if err != nil {
		return err
	}

	var manifest *model.AudioManifest
	if opts.ShowAudio {
		if manifest, err = b.LoadManifest(opts.Model); err != nil {
			return err
		}
	}

	fmt.Fprintf(opts.Out, "%s by %s\n\n", b.Metadata.Title, b.Metadata.Author)
	tw := tabwriter.NewWriter(opts.Out, 0, 0, 2, ' ', 0)
	header := "#\tTitle\tWords"
	if opts.ShowAudio {
		header += "\t" + opts.Model + " audio"
	}
	fmt.Fprintln(tw, header)
	for _, ch := range b.TOC.Chapters {
		row := fmt.Sprintf("%d\t%s\t%d", ch.Number, truncate(ch.Title, 60), ch.WordCount)
		if opts.ShowAudio {
			status := "-"
			if v := voicesOnDisk(b, manifest, ch.Number); len(v) > 0 {
				status = strings.Join(v, ", ")
			}
			row += "\t" + status
		}
		fmt.Fprintln(tw, row)
	}
	return tw.Flush()
}

// voicesOnDisk returns the manifest voices of a chapter whose files all still exist.
func voicesOnDisk(b *book.Book, m *model.AudioManifest, chapter int) []string {
	dir := filepath.Dir(b.ManifestPath(m.Model))
	var voices []string
	for _, e := range m.Entries {
		if e.Chapter != chapter || len(e.Files) == 0 {
			continue
		}
		present := true
		for _, f := range e.Files {
			if !utils.Exists(filepath.Join(dir, filepath.FromSlash(f))) {
				present = false
				break
			}
		}
		if present {
			voices = append(voices, e.Voice)
		}
	}
	return voices
}
