package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jsphweid/capofinder/chord"
	"github.com/jsphweid/capofinder/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

type noteEvent struct {
	absTicks  int64
	isNoteOff bool
	key       uint8
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("Error reading midi file... %w", err)
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// smf can panic on malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, fmt.Errorf("Error parsing midi file... %v", r)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("Error parsing midi file... %w", err)
	}
	return res, nil
}

func collectNoteEvents(s *smf.SMF) []noteEvent {
	var events []noteEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, noteEvent{absTicks: absTicks, isNoteOff: velocity == 0, key: key})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, noteEvent{absTicks: absTicks, isNoteOff: true, key: key})
			}
		}
	}

	// earlier ticks first, and note offs before note ons on the same tick
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].absTicks != events[j].absTicks {
			return events[i].absTicks < events[j].absTicks
		}
		return events[i].isNoteOff && !events[j].isNoteOff
	})
	return events
}

// Lowest returns the lowest held key, or 127 when nothing is held.
func Lowest(pressed map[uint8]bool) uint8 {
	var res uint8 = 127
	for key := range pressed {
		res = util.Min(res, key)
	}
	return res
}

// GetRoots reads the chord progression out of a file. A chord is whatever is
// held right after a tick with at least one note on; its root is the lowest
// held note. Repeated neighbouring roots collapse into one.
func GetRoots(s *smf.SMF) chord.Progression {
	var roots chord.Progression
	pressed := make(map[uint8]bool)

	events := collectNoteEvents(s)
	for i, evt := range events {
		if evt.isNoteOff {
			delete(pressed, evt.key)
		} else {
			pressed[evt.key] = true
		}

		isLastOnTick := i == len(events)-1 || events[i+1].absTicks != evt.absTicks
		if isLastOnTick && !evt.isNoteOff && len(pressed) > 0 {
			roots = append(roots, chord.FromMidiNote(Lowest(pressed)))
		}
	}

	return util.Dedupe(roots)
}
