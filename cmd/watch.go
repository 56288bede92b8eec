package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/jsphweid/chordshift/watch"
	"github.com/spf13/cobra"
)

var watchSemitones int

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().IntVarP(&watchSemitones, "semitones", "s", 0, "semitones to shift by, may be negative")
}

var watchCmd = &cobra.Command{
	Use:   "watch <src> <dst>",
	Short: "Keeps a transposed copy of a chart up to date",
	Long:  `Transposes src into dst, then again whenever src changes.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return watch.Run(ctx, watch.Options{
			Src:       args[0],
			Dst:       args[1],
			Semitones: watchSemitones,
			Debounce:  cfg.Watch.Debounce,
			Logger:    logger,
		})
	},
}
