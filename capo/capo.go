package capo

import (
	"fmt"

	"github.com/jsphweid/capofinder/chord"
	"github.com/jsphweid/capofinder/model"
)

// MaxFret is the highest fret tried. Fret 12 is the open progression again.
const MaxFret = 11

const (
	AlreadyEasyMessage = "Given chord progression already has no barre chords!"
	NotFoundMessage    = "Couldn't find a progression without barre chords"
	foundMessage       = "Chord progression found! It needs a capo on fret %v"
)

// FindCapoPosition returns the lowest fret at which no chord of p needs a
// barre. Fret 0 means p is already playable (this includes an empty p).
func FindCapoPosition(p chord.Progression) model.CapoResult {
	if !p.HasBarreChord() {
		return model.CapoResult{Found: true, Fret: 0, Transposed: p.Transpose(0)}
	}

	for fret := 1; fret <= MaxFret; fret++ {
		transposed := p.Transpose(uint(fret))
		if !transposed.HasBarreChord() {
			return model.CapoResult{Found: true, Fret: fret, Transposed: transposed}
		}
	}

	return model.CapoResult{}
}

// Message renders a result as the lines printed to the user.
func Message(res model.CapoResult) []string {
	switch {
	case !res.Found:
		return []string{NotFoundMessage}
	case res.Fret == 0:
		return []string{AlreadyEasyMessage}
	default:
		return []string{fmt.Sprintf(foundMessage, res.Fret), res.Transposed.String()}
	}
}
