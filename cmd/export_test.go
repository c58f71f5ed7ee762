package cmd

import (
	"path/filepath"
	"testing"

	"github.com/jsphweid/capofinder/chord"
	"github.com/jsphweid/capofinder/midi"
	"github.com/stretchr/testify/assert"
)

func TestExportWritesTransposedProgression(t *testing.T) {
	t.Setenv("CAPO_CONFIG", "")
	path := filepath.Join(t.TempDir(), "out.mid")
	out, err := run("export", "-o", path, "Db", "F")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("Chord progression found! It needs a capo on fret 2\nEb G\nWrote "+path+"\n", out)

	s, err := midi.ReadMidiFile(path)
	assert.NoError(err)
	assert.Equal(chord.Progression{chord.Eb, chord.G}, midi.GetRoots(s))
}

func TestExportThenReadBack(t *testing.T) {
	t.Setenv("CAPO_CONFIG", "")
	path := filepath.Join(t.TempDir(), "orig.mid")
	_, err := run("export", "-o", path, "C", "Db", "D", "Eb")
	assert.NoError(t, err)

	out, err := run("midi", path)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("Progression: C Db D Eb\nCouldn't find a progression without barre chords\n", out)
}

func TestExportRejectsBadChord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mid")
	_, err := run("export", "-o", path, "Z")
	assert.ErrorIs(t, err, chord.ErrInvalidChordName)
	assert.NoFileExists(t, path)
}

func TestMidiCommandMissingFile(t *testing.T) {
	_, err := run("midi", filepath.Join(t.TempDir(), "none.mid"))
	assert.Error(t, err)
}
