package cmd

import (
	"fmt"
	"log/slog"

	"bookvoice/config"
	"bookvoice/tts"

	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:               "bookvoice",
	Short:             "Convert EPUB books to Markdown and read them aloud with local TTS models",
	Long:              "Convert EPUB books into a directory of Markdown and text chapters, then generate per-chapter audio with a local text-to-speech engine",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

type globalArgs struct {
	booksDir string
	verbose  bool
}

var (
	gArgs globalArgs
	cfg   *config.Config
)

func init() {
	RootCmd.PersistentFlags().StringVar(&gArgs.booksDir, "books-dir", "", "books directory (default $BOOKVOICE_BOOKS_DIR or ./books)")
	RootCmd.PersistentFlags().BoolVarP(&gArgs.verbose, "verbose", "V", false, "enable debug logging")
}

// setup loads the environment config, applies global flags and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if gArgs.booksDir != "" {
		c.BooksDir = gArgs.booksDir
	}
	level := slog.LevelInfo
	if gArgs.verbose || c.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	cfg = c
	return nil
}

func newEngine(name string) (tts.Synthesizer, error) {
	if name == "" {
		name = cfg.Engine
	}
	engine, err := tts.NewSynthesizer(name, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return engine, nil
}
