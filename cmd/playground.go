package cmd

import (
	"bookvoice/playground"

	"github.com/spf13/cobra"
)

// PlaygroundCmd is the root of the voice-playground binary.
var PlaygroundCmd = &cobra.Command{
	Use:               "voice-playground",
	Short:             "Test and compare TTS voices",
	Long:              "Test and compare TTS voices on your own text before processing full books",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var compareCmd = &cobra.Command{
	Use:   "compare <text-file>",
	Short: "Compare different voices with your sample text",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompare,
}

var createSampleCmd = &cobra.Command{
	Use:   "create-sample",
	Short: "Create sample text files for voice testing",
	Args:  cobra.NoArgs,
	RunE:  runCreateSample,
}

var listVoicesCmd = &cobra.Command{
	Use:   "list-voices",
	Short: "List all available voices",
	Args:  cobra.NoArgs,
	RunE:  runListVoices,
}

var sayCmd = &cobra.Command{
	Use:   "say <text>",
	Short: "Convert a short text to speech",
	Args:  cobra.ExactArgs(1),
	RunE:  runSay,
}

type compareArgs struct {
	voices    []string
	all       bool
	outputDir string
	engine    string
}

type sampleArgs struct {
	dir string
}

type sayArgs struct {
	voice   string
	output  string
	engine  string
	combine bool
}

var (
	cmpArgs    compareArgs
	smpArgs    sampleArgs
	sArgs      sayArgs
	voicesArgs struct{ engine string }
)

func init() {
	PlaygroundCmd.PersistentFlags().BoolVarP(&gArgs.verbose, "verbose", "V", false, "enable debug logging")

	compareCmd.Flags().StringArrayVarP(&cmpArgs.voices, "voice", "v", nil, "voice to test (repeat for multiple)")
	compareCmd.Flags().BoolVar(&cmpArgs.all, "all", false, "test all available voices")
	compareCmd.Flags().StringVar(&cmpArgs.outputDir, "output-dir", "voice_comparisons", "output directory")
	compareCmd.Flags().StringVarP(&cmpArgs.engine, "engine", "e", "", "TTS engine: kokoro or piper (default $BOOKVOICE_ENGINE)")

	createSampleCmd.Flags().StringVar(&smpArgs.dir, "dir", "voice_samples", "directory for the sample files")

	listVoicesCmd.Flags().StringVarP(&voicesArgs.engine, "engine", "e", "", "TTS engine: kokoro or piper (default $BOOKVOICE_ENGINE)")

	sayCmd.Flags().StringVarP(&sArgs.voice, "voice", "v", "", "voice to use (default $BOOKVOICE_VOICE or af_heart)")
	sayCmd.Flags().StringVar(&sArgs.output, "output", "cli_output", "output directory")
	sayCmd.Flags().StringVarP(&sArgs.engine, "engine", "e", "", "TTS engine: kokoro or piper (default $BOOKVOICE_ENGINE)")
	sayCmd.Flags().BoolVar(&sArgs.combine, "combine", true, "combine segments into one file")

	PlaygroundCmd.AddCommand(compareCmd, createSampleCmd, listVoicesCmd, sayCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(cmpArgs.engine)
	if err != nil {
		return err
	}
	_, err = playground.Compare(cmd.Context(), engine, playground.CompareOptions{
		TextFile:  args[0],
		Voices:    cmpArgs.voices,
		All:       cmpArgs.all,
		OutputDir: cmpArgs.outputDir,
		MaxChars:  cfg.MaxSegmentChars,
		Out:       cmd.OutOrStdout(),
	})
	return err
}

func runCreateSample(cmd *cobra.Command, args []string) error {
	_, err := playground.CreateSamples(smpArgs.dir, cmd.OutOrStdout())
	return err
}

func runListVoices(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(voicesArgs.engine)
	if err != nil {
		return err
	}
	return playground.ListVoices(cmd.Context(), engine, cmd.OutOrStdout())
}

func runSay(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(sArgs.engine)
	if err != nil {
		return err
	}
	voice := sArgs.voice
	if voice == "" {
		voice = cfg.Voice
	}
	_, err = playground.Say(cmd.Context(), engine, playground.SayOptions{
		Text:      args[0],
		Voice:     voice,
		OutputDir: sArgs.output,
		Combine:   sArgs.combine,
		MaxChars:  cfg.MaxSegmentChars,
		Out:       cmd.OutOrStdout(),
	})
	return err
}
