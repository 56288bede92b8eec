package cmd

import (
	"errors"
	"os"

	"github.com/jsphweid/chordshift/file"
	"github.com/jsphweid/chordshift/transpose"
	"github.com/jsphweid/chordshift/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	transposeSemitones int
	transposeOut       string
)

func init() {
	rootCmd.AddCommand(transposeCmd)
	transposeCmd.Flags().IntVarP(&transposeSemitones, "semitones", "s", 0, "semitones to shift by, may be negative")
	transposeCmd.Flags().StringVarP(&transposeOut, "out", "o", "", "output file, or output directory when transposing a directory (default stdout)")
}

var transposeCmd = &cobra.Command{
	Use:   "transpose [file|dir]",
	Short: "Transposes a chart",
	Long: `Transposes a chart read from a file, or stdin when no file or "-" is given.
When given a directory, every chart found beneath it is written to the same
relative path under --out.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var src string
		if len(args) == 1 {
			src = args[0]
		}

		if src != "" && src != file.Stdio {
			info, err := os.Stat(src)
			if err != nil {
				return err
			}
			if info.IsDir() {
				return transposeDir(src, transposeOut, transposeSemitones)
			}
		}

		text, err := file.ReadChart(src, cmd.InOrStdin())
		if err != nil {
			return err
		}
		return file.WriteChart(transposeOut, transpose.Transpose(text, transposeSemitones), cmd.OutOrStdout())
	},
}

func transposeDir(src string, dst string, semitones int) error {
	if dst == "" || dst == file.Stdio {
		return errors.New("--out directory is required when transposing a directory")
	}

	paths, err := util.GatherAllChartPaths(src, 0)
	if err != nil {
		return err
	}
	for i, path := range paths {
		logger.Info("Transposing chart",
			zap.Int("num", i+1),
			zap.Int("total", len(paths)),
			zap.String("path", path))

		text, err := file.ReadChart(path, nil)
		if err != nil {
			return err
		}
		out, err := file.OutputPath(src, dst, path)
		if err != nil {
			return err
		}
		if err := file.WriteChart(out, transpose.Transpose(text, semitones), nil); err != nil {
			return err
		}
	}
	return nil
}
