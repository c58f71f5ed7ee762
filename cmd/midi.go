package cmd

import (
	"fmt"

	"github.com/jsphweid/capofinder/capo"
	"github.com/jsphweid/capofinder/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi FILE",
	Short: "Finds a capo position for the chords in a MIDI file",
	Long: `Reads a standard MIDI file, takes the lowest sounding note of each chord as
its root, and runs the capo search on the resulting progression.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		p := midi.GetRoots(s)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Progression: %v\n", p)
		printResult(out, capo.FindCapoPosition(p))
		return nil
	},
}
