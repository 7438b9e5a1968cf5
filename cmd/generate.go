package cmd

import (
	"bookvoice/audio"
	"bookvoice/processor"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate-audio <book-dir> <chapters...>",
	Short: "Generate TTS audio for specific chapters",
	Long:  "Generate TTS audio for chapters given as numbers or ranges (3 5-7). Failed chapters are reported and the rest still run.",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runGenerate,
}

type generateArgs struct {
	voice   string
	model   string
	combine bool
	format  string
}

var genArgs generateArgs

func init() {
	generateCmd.Flags().StringVarP(&genArgs.voice, "voice", "v", "", "voice to use (default $BOOKVOICE_VOICE or af_heart)")
	generateCmd.Flags().StringVarP(&genArgs.model, "model", "m", "", "TTS engine to use: kokoro or piper (default $BOOKVOICE_ENGINE)")
	generateCmd.Flags().BoolVar(&genArgs.combine, "combine", true, "combine segments into one file per chapter")
	generateCmd.Flags().StringVar(&genArgs.format, "format", audio.FormatWAV, "output format: wav or mp3")
	RootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(genArgs.model)
	if err != nil {
		return err
	}
	voice := genArgs.voice
	if voice == "" {
		voice = cfg.Voice
	}
	_, err = processor.GenerateAudio(cmd.Context(), engine, processor.GenerateOptions{
		BookDir:  args[0],
		Chapters: args[1:],
		Voice:    voice,
		Model:    engine.Name(),
		Format:   genArgs.format,
		Combine:  genArgs.combine,
		MaxChars: cfg.MaxSegmentChars,
		Out:      cmd.OutOrStdout(),
	})
	return err
}
