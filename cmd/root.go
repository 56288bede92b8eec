package cmd

import (
	"github.com/jsphweid/chordshift/config"
	"github.com/jsphweid/chordshift/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgPath string
	cfg     *config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "chordshift",
	Short: "Transposes lyrics-and-chords charts",
	Long: `Transposes the chords in lyrics-and-chords charts by a number of semitones.
Chord lines and [bracketed] inline chords are shifted; lyrics, section labels
and spacing are left as they are.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Log.Level, cfg.Log.Development)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// stderr sync fails on some platforms; nothing useful to do about it
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "chordshift.yaml", "path to a YAML config file")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
