package cmd

import (
	"bookvoice/processor"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list-chapters <book-dir>",
	Aliases: []string{"list"},
	Short:   "List all chapters in a book",
	Args:    cobra.ExactArgs(1),
	RunE:    runList,
}

type listArgs struct {
	showAudio bool
	model     string
}

var lArgs listArgs

func init() {
	listCmd.Flags().BoolVar(&lArgs.showAudio, "show-audio", true, "show which voices have audio")
	listCmd.Flags().StringVarP(&lArgs.model, "model", "m", "", "audio model directory to inspect (default $BOOKVOICE_ENGINE)")
	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	model := lArgs.model
	if model == "" {
		model = cfg.Engine
	}
	return processor.ListChapters(processor.ListOptions{
		BookDir:   args[0],
		Model:     model,
		ShowAudio: lArgs.showAudio,
		Out:       cmd.OutOrStdout(),
	})
}
