package chord

import (
	"errors"
	"fmt"

	"github.com/jsphweid/capofinder/util"
)

// PitchClass is a chord root, one of the 12 equal-tempered pitch classes
// numbered chromatically from C.
type PitchClass uint8

const (
	C = PitchClass(iota)
	Db
	D
	Eb
	E
	F
	Gb
	G
	Ab
	A
	Bb
	B
)

const NumPitchClasses = 12

var ErrInvalidChordName = errors.New("invalid chord name")

type InvalidChordNameError struct {
	Name string
}

func (e *InvalidChordNameError) Error() string {
	return fmt.Sprintf("Unknown chord: %q", e.Name)
}

func (e *InvalidChordNameError) Is(target error) bool {
	return target == ErrInvalidChordName
}

// flat spellings are canonical
var names = [NumPitchClasses]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var byName = map[string]PitchClass{
	"C":  C,
	"C#": Db,
	"Db": Db,
	"D":  D,
	"D#": Eb,
	"Eb": Eb,
	"E":  E,
	"F":  F,
	"F#": Gb,
	"Gb": Gb,
	"G":  G,
	"G#": Ab,
	"Ab": Ab,
	"A":  A,
	"A#": Bb,
	"Bb": Bb,
	"B":  B,
}

// open shapes in standard tuning; everything else needs a barre
var barre = [NumPitchClasses]bool{
	C:  false,
	Db: true,
	D:  false,
	Eb: false,
	E:  false,
	F:  true,
	Gb: true,
	G:  false,
	Ab: true,
	A:  false,
	Bb: true,
	B:  true,
}

// Parse is case-sensitive and accepts the canonical names plus the sharp
// spelling of the five accidentals.
func Parse(name string) (PitchClass, error) {
	pc, ok := byName[name]
	if !ok {
		return C, &InvalidChordNameError{Name: name}
	}
	return pc, nil
}

func (p PitchClass) String() string {
	return names[p%NumPitchClasses]
}

func (p PitchClass) Transpose(semitones uint) PitchClass {
	steps := semitones % NumPitchClasses
	return PitchClass(util.Mod(uint(p)+steps, NumPitchClasses))
}

func (p PitchClass) IsBarreChord() bool {
	return barre[p%NumPitchClasses]
}

// FromMidiNote maps a MIDI key number to its pitch class (60 is middle C).
func FromMidiNote(note uint8) PitchClass {
	return PitchClass(note % NumPitchClasses)
}

func All() []PitchClass {
	res := make([]PitchClass, 0, NumPitchClasses)
	for i := 0; i < NumPitchClasses; i++ {
		res = append(res, PitchClass(i))
	}
	return res
}
