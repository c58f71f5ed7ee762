package model

import "github.com/jsphweid/capofinder/chord"

// CapoResult is the outcome of a capo search. Fret is 0 both when no capo is
// needed and when nothing was found.
type CapoResult struct {
	Found      bool
	Fret       int
	Transposed chord.Progression
}

// Song is a stored progression from the songbook table.
type Song struct {
	Title  string
	Artist string
	Chords chord.Progression
}
