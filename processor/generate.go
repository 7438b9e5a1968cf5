package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"bookvoice/audio"
	"bookvoice/book"
	"bookvoice/model"
	"bookvoice/tts"

	"github.com/google/uuid"
)

const maxRange = 10000

var ErrChaptersFailed = errors.New("some chapters failed")

type GenerateOptions struct {
	BookDir string
	// Chapters are numbers or inclusive ranges such as "3-5".
	Chapters []string
	Voice    string
	Model    string
	Format   string
	Combine  bool
	MaxChars int
	Out      io.Writer
}

type ChapterResult struct {
	Number  int
	Title   string
	Files   []string
	Seconds float64
	Err     error
}

// runLog is written to processing/logs for every generate-audio run.
type runLog struct {
	RunID    string          `yaml:"run_id"`
	Model    string          `yaml:"model"`
	Voice    string          `yaml:"voice"`
	Format   string          `yaml:"format"`
	Started  time.Time       `yaml:"started"`
	Finished time.Time       `yaml:"finished"`
	Chapters []runLogChapter `yaml:"chapters"`
}

type runLogChapter struct {
	Number int      `yaml:"number"`
	Files  []string `yaml:"files,omitempty"`
	Error  string   `yaml:"error,omitempty"`
}

// GenerateAudio synthesizes the selected chapters one after another. A chapter
// that fails is reported and the rest still run; the returned error wraps
// ErrChaptersFailed when any did.
func GenerateAudio(ctx context.Context, engine tts.Synthesizer, opts GenerateOptions) ([]ChapterResult, error) {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Format == "" {
		opts.Format = audio.FormatWAV
	}
	if opts.Model == "" {
		opts.Model = engine.Name()
	}
	numbers, err := ParseSelectors(opts.Chapters)
	if err != nil {
		return nil, err
	}
	if err := audio.ValidateFormat(opts.Format); err != nil {
		return nil, err
	}
	b, err := book.Open(opts.BookDir)
	if err != nil {
		return nil, err
	}
	if err := tts.ValidateVoices(ctx, engine, opts.Voice); err != nil {
		return nil, err
	}
	manifest, err := b.LoadManifest(opts.Model)
	if err != nil {
		return nil, err
	}

	run := runLog{
		RunID:   uuid.NewString(),
		Model:   opts.Model,
		Voice:   opts.Voice,
		Format:  opts.Format,
		Started: time.Now().UTC(),
	}
	gen := tts.NewGenerator(engine, opts.MaxChars)
	fmt.Fprintf(opts.Out, "Generating audio for %d chapters with voice: %s\n", len(numbers), opts.Voice)

	results := make([]ChapterResult, 0, len(numbers))
	for _, n := range numbers {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := generateChapter(ctx, gen, b, manifest, run.RunID, n, opts)
		results = append(results, res)

		entry := runLogChapter{Number: n, Files: res.Files}
		if res.Err != nil {
			entry.Error = res.Err.Error()
			slog.Error("chapter failed", "chapter", n, "error", res.Err)
			fmt.Fprintf(opts.Out, "FAIL  chapter %d: %v\n", n, res.Err)
		} else {
			fmt.Fprintf(opts.Out, "OK    chapter %d: %s (%.1f min)\n", n, strings.Join(res.Files, ", "), res.Seconds/60)
		}
		run.Chapters = append(run.Chapters, entry)
	}

	run.Finished = time.Now().UTC()
	logPath := filepath.Join(b.LogsDir(), fmt.Sprintf("generate-%s.yml", run.RunID))
	if err := book.WriteYAML(logPath, run); err != nil {
		slog.Warn("failed to write run log", "error", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	fmt.Fprintf(opts.Out, "\n%d of %d chapters generated\n", len(results)-failed, len(results))
	if failed > 0 {
		return results, fmt.Errorf("%w: %d of %d", ErrChaptersFailed, failed, len(results))
	}
	return results, nil
}

func generateChapter(ctx context.Context, gen *tts.Generator, b *book.Book, manifest *model.AudioManifest, runID string, n int, opts GenerateOptions) ChapterResult {
	res := ChapterResult{Number: n}
	entry, err := b.Chapter(n)
	if err != nil {
		res.Err = err
		return res
	}
	res.Title = entry.Title
	slog.Info("processing chapter", "chapter", n, "title", entry.Title)

	input, err := b.ChapterText(entry)
	if err != nil {
		res.Err = err
		return res
	}
	out := tts.Output{
		Combined: b.AudioPath(opts.Model, entry.Filename, opts.Voice, opts.Format),
		Segment: func(i int) string {
			return b.SegmentPath(opts.Model, entry.Filename, opts.Voice, i, opts.Format)
		},
		Combine: opts.Combine,
		Format:  opts.Format,
	}
	generated, err := gen.Generate(ctx, input, opts.Voice, out)
	if err != nil {
		res.Err = err
		return res
	}
	res.Files = generated.Files
	res.Seconds = generated.Seconds
	// Files from an earlier run in another mode or format are replaced too.
	if err := b.RemoveStaleAudio(opts.Model, entry.Filename, opts.Voice, generated.Files); err != nil {
		res.Err = err
		return res
	}

	modelDir := filepath.Dir(b.ManifestPath(opts.Model))
	files := make([]string, len(generated.Files))
	for i, f := range generated.Files {
		rel, err := filepath.Rel(modelDir, f)
		if err != nil {
			rel = f
		}
		files[i] = filepath.ToSlash(rel)
	}
	manifest.Put(model.AudioEntry{
		Chapter:         n,
		Voice:           opts.Voice,
		Files:           files,
		Format:          opts.Format,
		Segments:        generated.Segments,
		DurationSeconds: generated.Seconds,
		RunID:           runID,
		GeneratedAt:     time.Now().UTC().Truncate(time.Second),
	})
	if err := b.SaveManifest(manifest); err != nil {
		res.Err = err
	}
	return res
}

// ParseSelectors expands chapter numbers and inclusive ranges ("3-5"),
// also accepting comma separated lists. Duplicates keep their first position.
func ParseSelectors(args []string) ([]int, error) {
	var numbers []int
	seen := make(map[int]bool)
	add := func(n int) {
		if !seen[n] {
			seen[n] = true
			numbers = append(numbers, n)
		}
	}
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			lo, hi, isRange := strings.Cut(part, "-")
			start, err := strconv.Atoi(lo)
			if err != nil || start < 0 {
				return nil, fmt.Errorf("invalid chapter %q", part)
			}
			if !isRange {
				add(start)
				continue
			}
			end, err := strconv.Atoi(hi)
			if err != nil || end < start || end-start > maxRange {
				return nil, fmt.Errorf("invalid chapter range %q", part)
			}
			for n := start; n <= end; n++ {
				add(n)
			}
		}
	}
	if len(numbers) == 0 {
		return nil, errors.New("no chapters selected")
	}
	return numbers, nil
}
