package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jsphweid/capofinder/capo"
	"github.com/jsphweid/capofinder/chord"
	"github.com/jsphweid/capofinder/model"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "capofinder [CHORD...]",
	Short: "Finds a capo position that avoids barre chords",
	Long: `Finds the lowest capo fret at which none of the given chords needs a
barre fingering. Chords are root names like C, F#, or Bb.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := chord.ParseProgression(args)
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), capo.FindCapoPosition(p))
		return nil
	},
}

func printResult(w io.Writer, res model.CapoResult) {
	lines := capo.Message(res)
	headline := color.New(color.FgGreen)
	switch {
	case !res.Found:
		headline = color.New(color.FgYellow)
	case res.Fret == 0:
		headline = color.New(color.FgCyan)
	}
	headline.Fprintln(w, lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintln(w, line)
	}
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
