package sample

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/capofinder/chord"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	channel  = 0
	velocity = 100
	// C3; triads are voiced in root position from here
	baseNote = 48
)

var triad = []uint8{0, 4, 7}

func triadKeys(root chord.PitchClass) []uint8 {
	var keys []uint8
	for _, interval := range triad {
		keys = append(keys, baseNote+uint8(root)+interval)
	}
	return keys
}

// Create renders p as block major triads, one per 4/4 bar.
func Create(p chord.Progression, ticksPerQuarter uint16) (*smf.SMF, error) {
	if ticksPerQuarter == 0 {
		return nil, errors.New("ticks per quarter note must be positive")
	}
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	bar := uint32(ticksPerQuarter) * 4

	var track smf.Track
	for _, c := range p {
		keys := triadKeys(c)
		for _, key := range keys {
			track.Add(0, midi.NoteOn(channel, key, velocity))
		}
		for i, key := range keys {
			var delta uint32
			if i == 0 {
				delta = bar
			}
			track.Add(delta, midi.NoteOff(channel, key))
		}
	}
	track.Close(0)
	if err := res.Add(track); err != nil {
		return nil, fmt.Errorf("could not add track: %w", err)
	}

	return res, nil
}

func Write(w io.Writer, p chord.Progression, ticksPerQuarter uint16) error {
	s, err := Create(p, ticksPerQuarter)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("could not write midi: %w", err)
	}
	return nil
}

func WriteFile(path string, p chord.Progression, ticksPerQuarter uint16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't open file %v: %w", path, err)
	}
	defer f.Close()

	return Write(f, p, ticksPerQuarter)
}
