package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/capofinder/capo"
	"github.com/jsphweid/capofinder/chord"
	"github.com/jsphweid/capofinder/constants"
	ourmidi "github.com/jsphweid/capofinder/midi"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Builds a progression from a MIDI keyboard",
	Long: `Listens on a MIDI input port (CAPO_MIDI_IN_PORT, default 0). Each time the
held notes settle, the lowest one is added to the progression as a chord root
and the capo search runs again. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := constants.Load()
		if err != nil {
			return err
		}
		return listen(cmd.OutOrStdout(), cfg)
	},
}

type listener struct {
	mu          sync.Mutex
	pressed     map[uint8]bool
	progression chord.Progression
	out         io.Writer
}

func newListener(out io.Writer) *listener {
	return &listener{pressed: make(map[uint8]bool), out: out}
}

func (l *listener) noteOn(key uint8) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pressed[key] = true
}

func (l *listener) noteOff(key uint8) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.pressed, key)
}

// settle records the held chord, if any and if it differs from the last one.
func (l *listener) settle() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.pressed) == 0 {
		return
	}
	root := chord.FromMidiNote(ourmidi.Lowest(l.pressed))
	if n := len(l.progression); n > 0 && l.progression[n-1] == root {
		return
	}
	l.progression = append(l.progression, root)

	fmt.Fprintf(l.out, "Progression: %v\n", l.progression)
	printResult(l.out, capo.FindCapoPosition(l.progression))
}

func listen(out io.Writer, cfg constants.Config) error {
	defer midi.CloseDriver()
	in, err := midi.InPort(cfg.MidiInPort)
	if err != nil {
		return fmt.Errorf("can't find midi in port %v: %w", cfg.MidiInPort, err)
	}

	l := newListener(out)
	debounced := debounce.New(time.Duration(cfg.DebounceMillis) * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			l.noteOn(key)
		case msg.GetNoteEnd(&ch, &key):
			l.noteOff(key)
		default:
			return
		}
		debounced(l.settle)
	})
	if err != nil {
		return fmt.Errorf("could not listen on %v: %w", in, err)
	}
	defer stop()

	fmt.Fprintf(out, "Listening on %v\n", in)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	<-ctx.Done()
	return nil
}
