package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jsphweid/capofinder/capo"
	"github.com/jsphweid/capofinder/chord"
	"github.com/jsphweid/capofinder/constants"
	"github.com/jsphweid/capofinder/sample"
	"github.com/spf13/cobra"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "file to write (default <uuid>.mid)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [CHORD...]",
	Short: "Writes the capo-friendly progression as a MIDI file",
	Long: `Runs the capo search and writes the transposed progression as block major
triads, one per bar. When no capo position works the progression is written
as given.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := chord.ParseProgression(args)
		if err != nil {
			return err
		}
		cfg, err := constants.Load()
		if err != nil {
			return err
		}

		res := capo.FindCapoPosition(p)
		out := cmd.OutOrStdout()
		printResult(out, res)
		if res.Found {
			p = res.Transposed
		}

		path := exportOut
		if path == "" {
			path = uuid.New().String() + ".mid"
		}
		if err := sample.WriteFile(path, p, cfg.MidiTicksPerQuarter); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %v\n", path)
		return nil
	},
}
