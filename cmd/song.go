package cmd

import (
	"fmt"

	"github.com/jsphweid/capofinder/capo"
	"github.com/jsphweid/capofinder/constants"
	"github.com/jsphweid/capofinder/db"
	"github.com/jsphweid/capofinder/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(songCmd)
}

var songCmd = &cobra.Command{
	Use:   "song TITLE...",
	Short: "Finds capo positions for songs in the songbook table",
	Long: `Looks up progressions stored in DynamoDB (table CAPO_SONG_TABLE at
CAPO_DYNAMO_ENDPOINT) and runs the capo search for each one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := constants.Load()
		if err != nil {
			return err
		}
		songbook, err := db.Connect(cfg)
		if err != nil {
			return err
		}
		return printSongs(cmd, songbook, args)
	},
}

type songGetter interface {
	GetSongs(titles []string) (map[string]model.Song, error)
}

func printSongs(cmd *cobra.Command, songbook songGetter, titles []string) error {
	songs, err := songbook.GetSongs(titles)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, title := range titles {
		song, ok := songs[title]
		if !ok {
			fmt.Fprintf(out, "No song titled %q\n", title)
			continue
		}
		fmt.Fprintf(out, "%v - %v: %v\n", song.Title, song.Artist, song.Chords)
		printResult(out, capo.FindCapoPosition(song.Chords))
	}
	return nil
}
