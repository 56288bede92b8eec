package cmd

import (
	"fmt"

	"github.com/jsphweid/chordshift/file"
	"github.com/jsphweid/chordshift/line"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Shows how each line of a chart is classified",
	Long:  `Shows how each line of a chart is classified: label, inline, chords or lyric.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var src string
		if len(args) == 1 {
			src = args[0]
		}
		text, err := file.ReadChart(src, cmd.InOrStdin())
		if err != nil {
			return err
		}
		for _, l := range line.Split(text) {
			fmt.Fprintf(cmd.OutOrStdout(), "%-6s | %s\n", l.Kind, l.Text)
		}
		return nil
	},
}
