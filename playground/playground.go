// Package playground compares speech engine voices on a sample text.
package playground

import (
	"context"
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

	"bookvoice/audio"
	"bookvoice/template"
	"bookvoice/text"
	"bookvoice/tts"
	"bookvoice/utils"
)

const (
	IndexFile     = "index.html"
	previewRunes  = 200
	bytesPerMB    = 1024 * 1024
	defaultMaxSeg = 4000
)

var ErrEmptyText = errors.New("text file is empty")

type CompareOptions struct {
	TextFile string
	// Voices to compare; all engine voices when empty or when All is set.
	Voices    []string
	All       bool
	OutputDir string
	MaxChars  int
	Out       io.Writer
}

type VoiceResult struct {
	Voice   string
	File    string
	Size    int64
	Seconds float64
	GenTime time.Duration
	Err     error
}

type Comparison struct {
	SessionDir string
	Results    []VoiceResult
}

// Compare synthesizes the text file once per voice into a session directory
// named after the file, then writes an index.html with a player per voice.
// A voice that fails is recorded and the others still run.
func Compare(ctx context.Context, engine tts.Synthesizer, opts CompareOptions) (*Comparison, error) {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.MaxChars <= 0 {
		opts.MaxChars = defaultMaxSeg
	}
	data, err := os.ReadFile(opts.TextFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("text file not found: %s", opts.TextFile)
		}
		return nil, fmt.Errorf("failed to read text file: %w", err)
	}
	content := strings.TrimSpace(string(data))
	if content == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyText, opts.TextFile)
	}

	available, err := engine.Voices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s voices: %w", engine.Name(), err)
	}
	voices := uniqueVoices(opts.Voices)
	if opts.All || len(voices) == 0 {
		voices = tts.VoiceNames(available)
	} else if err := tts.ValidateVoices(ctx, engine, voices...); err != nil {
		return nil, err
	}
	if len(voices) == 0 {
		return nil, fmt.Errorf("no %s voices available", engine.Name())
	}

	stem := utils.Slugify(strings.TrimSuffix(filepath.Base(opts.TextFile), filepath.Ext(opts.TextFile)))
	if stem == "" {
		stem = "sample"
	}
	session := filepath.Join(opts.OutputDir, stem)
	if err := os.MkdirAll(session, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Fprintf(opts.Out, "Text file: %s\n", opts.TextFile)
	fmt.Fprintf(opts.Out, "Text length: %d characters\n", utf8.RuneCountInString(content))
	fmt.Fprintf(opts.Out, "Testing voices: %s\n", strings.Join(voices, ", "))
	fmt.Fprintf(opts.Out, "Output directory: %s\n\n", session)

	// Markdown samples are read aloud without their markup.
	speech := text.StripMarkdown(content)
	gen := tts.NewGenerator(engine, opts.MaxChars)
	cmp := &Comparison{SessionDir: session}
	for _, voice := range voices {
		if err := ctx.Err(); err != nil {
			return cmp, err
		}
		cmp.Results = append(cmp.Results, compareVoice(ctx, gen, speech, voice, filepath.Join(session, stem+"_"+voice+".wav")))
	}

	printResults(opts.Out, cmp)
	if err := writeIndex(ctx, cmp, opts.TextFile, content, available); err != nil {
		return cmp, err
	}
	printNextSteps(opts.Out, cmp)
	return cmp, nil
}

// uniqueVoices drops repeated names, keeping first-seen order.
func uniqueVoices(names []string) []string {
	var out []string
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func compareVoice(ctx context.Context, gen *tts.Generator, input, voice, path string) VoiceResult {
	slog.Info("generating voice sample", "voice", voice)
	res := VoiceResult{Voice: voice}
	start := time.Now()
	out, err := gen.Generate(ctx, input, voice, tts.Output{Combined: path, Combine: true, Format: audio.FormatWAV})
	res.GenTime = time.Since(start)
	if err != nil {
		slog.Error("voice failed", "voice", voice, "error", err)
		res.Err = err
		return res
	}
	res.File = filepath.Base(path)
	res.Seconds = out.Seconds
	if info, err := os.Stat(path); err == nil {
		res.Size = info.Size()
	}
	return res
}

func printResults(w io.Writer, cmp *Comparison) {
	fmt.Fprintln(w, "Voice Comparison Results")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Voice\tAudio File\tSize\tDuration\tGen Time\tStatus")
	for _, r := range cmp.Results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%s\t%s\t-\t-\t%.1fs\tfailed\n", r.Voice, "Error", r.GenTime.Seconds())
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%.1fMB\t%.1fmin\t%.1fs\tok\n",
			r.Voice, r.File, float64(r.Size)/bytesPerMB, r.Seconds/60, r.GenTime.Seconds())
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func printNextSteps(w io.Writer, cmp *Comparison) {
	ok := 0
	for _, r := range cmp.Results {
		if r.Err == nil {
			ok++
		}
	}
	if ok == 0 {
		return
	}
	fmt.Fprintln(w, "Generated files:")
	for _, r := range cmp.Results {
		if r.Err == nil {
			fmt.Fprintf(w, "  %s\n", filepath.Join(cmp.SessionDir, r.File))
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "  1. Open %s or listen to the files in %s\n", filepath.Join(cmp.SessionDir, IndexFile), cmp.SessionDir)
	fmt.Fprintln(w, "  2. Compare voice quality, tone and clarity")
	fmt.Fprintln(w, "  3. Choose your favorite voice for book processing")
	fmt.Fprintln(w, "  4. Use: bookvoice generate-audio books/<book> <chapters...> --voice YOUR_CHOICE")
}

func writeIndex(ctx context.Context, cmp *Comparison, textFile, content string, available []tts.Voice) error {
	descriptions := make(map[string]string, len(available))
	for _, v := range available {
		descriptions[v.Name] = v.Description
	}
	preview := content
	if utf8.RuneCountInString(preview) > previewRunes {
		preview = string([]rune(preview)[:previewRunes]) + "..."
	}
	view := template.ComparisonView{
		Title:    "Voice comparison: " + filepath.Base(textFile),
		TextFile: textFile,
		Preview:  preview,
	}
	for _, r := range cmp.Results {
		entry := template.ComparisonEntry{
			Voice:       r.Voice,
			Description: descriptions[r.Voice],
			File:        r.File,
			SizeMB:      float64(r.Size) / bytesPerMB,
			Minutes:     r.Seconds / 60,
			GenSeconds:  r.GenTime.Seconds(),
			OK:          r.Err == nil,
		}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		}
		view.Entries = append(view.Entries, entry)
	}

	path := filepath.Join(cmp.SessionDir, IndexFile)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", IndexFile, err)
	}
	defer file.Close()
	if err := template.ComparisonPage(view).Render(ctx, file); err != nil {
		return fmt.Errorf("failed to render %s: %w", IndexFile, err)
	}
	return nil
}

// CreateSamples writes the short, medium and long sample texts into dir.
func CreateSamples(dir string, out io.Writer) ([]string, error) {
	if out == nil {
		out = io.Discard
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create samples directory: %w", err)
	}
	var paths []string
	for _, s := range samples {
		path := filepath.Join(dir, s.Name)
		if err := utils.WriteFileAtomic(path, []byte(s.Content)); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		fmt.Fprintf(out, "Created: %s (%d chars)\n", path, utf8.RuneCountInString(s.Content))
	}
	fmt.Fprintf(out, "\nSample files created in %s\n\n", dir)
	fmt.Fprintln(out, "Usage examples:")
	fmt.Fprintf(out, "  voice-playground compare %s --all\n", filepath.Join(dir, "short_sample.txt"))
	fmt.Fprintf(out, "  voice-playground compare %s -v af_bella -v af_sarah\n", filepath.Join(dir, "medium_sample.txt"))
	fmt.Fprintf(out, "  voice-playground compare %s -v af_heart\n", filepath.Join(dir, "long_sample.txt"))
	return paths, nil
}

type SayOptions struct {
	Text      string
	Voice     string
	OutputDir string
	// Combine writes one output.wav instead of one file per segment.
	Combine  bool
	MaxChars int
	Out      io.Writer
}

// Say synthesizes a short text straight into OutputDir.
func Say(ctx context.Context, engine tts.Synthesizer, opts SayOptions) ([]string, error) {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.MaxChars <= 0 {
		opts.MaxChars = defaultMaxSeg
	}
	if strings.TrimSpace(opts.Text) == "" {
		return nil, tts.ErrEmptyText
	}
	if err := tts.ValidateVoices(ctx, engine, opts.Voice); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	res, err := tts.NewGenerator(engine, opts.MaxChars).Generate(ctx, opts.Text, opts.Voice, tts.Output{
		Combined: filepath.Join(opts.OutputDir, "output.wav"),
		Segment: func(i int) string {
			return filepath.Join(opts.OutputDir, fmt.Sprintf("output_%03d.wav", i))
		},
		Combine: opts.Combine,
		Format:  audio.FormatWAV,
	})
	if err != nil {
		return nil, err
	}
	for _, f := range res.Files {
		fmt.Fprintf(opts.Out, "  %s\n", f)
	}
	fmt.Fprintf(opts.Out, "Generated %d audio files\n", len(res.Files))
	return res.Files, nil
}

// ListVoices prints the engine's voices with their descriptions.
func ListVoices(ctx context.Context, engine tts.Synthesizer, out io.Writer) error {
	voices, err := engine.Voices(ctx)
	if err != nil {
		return fmt.Errorf("failed to list %s voices: %w", engine.Name(), err)
	}
	fmt.Fprintf(out, "Available voices in %s\n\n", engine.Name())
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Voice Name\tDescription")
	for _, v := range voices {
		fmt.Fprintf(tw, "%s\t%s\n", v.Name, v.Description)
	}
	return tw.Flush()
}
