package cmd

import (
	"fmt"

	"bookvoice/processor"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <epub> <title>",
	Short: "Convert an EPUB to structured Markdown",
	Long:  "Convert an EPUB into <books-dir>/<slug> with metadata, table of contents, Markdown and text chapters",
	Args:  cobra.ExactArgs(2),
	RunE:  runConvert,
}

type convertArgs struct {
	slug  string
	force bool
}

var cArgs convertArgs

func init() {
	convertCmd.Flags().StringVar(&cArgs.slug, "slug", "", "custom book directory name")
	convertCmd.Flags().BoolVarP(&cArgs.force, "force", "f", false, "replace an existing book, keeping its audio")
	RootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	_, err := processor.Convert(processor.ConvertOptions{
		EPUBPath: args[0],
		Title:    args[1],
		Slug:     cArgs.slug,
		BooksDir: cfg.BooksDir,
		Force:    cArgs.force,
		Out:      cmd.OutOrStdout(),
	})
	if err != nil {
		return fmt.Errorf("failed to convert epub: %w", err)
	}
	return nil
}
