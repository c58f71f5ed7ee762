package cmd

import (
	"bytes"
	"testing"

	"github.com/jsphweid/capofinder/chord"
	"github.com/stretchr/testify/assert"
)

func TestListenerAddsLowestHeldNote(t *testing.T) {
	var buf bytes.Buffer
	l := newListener(&buf)
	for _, key := range []uint8{72, 65, 69} {
		l.noteOn(key)
	}
	l.settle()

	assert := assert.New(t)
	assert.Equal(chord.Progression{chord.F}, l.progression)
	assert.Equal("Progression: F\nChord progression found! It needs a capo on fret 2\nG\n", buf.String())
}

func TestListenerSkipsRepeatsAndSilence(t *testing.T) {
	var buf bytes.Buffer
	l := newListener(&buf)

	l.noteOn(60)
	l.settle()
	l.noteOff(60)
	l.settle()
	l.noteOn(48)
	l.settle()
	l.noteOn(43)
	l.settle()

	assert.Equal(t, chord.Progression{chord.C, chord.G}, l.progression)
}
