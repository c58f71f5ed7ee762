package chord

import (
	"strings"

	"github.com/jsphweid/capofinder/util"
)

// Progression is an ordered list of chord roots. Order only matters for display.
type Progression []PitchClass

// ParseProgression stops at the first bad name and returns no partial result.
func ParseProgression(names []string) (Progression, error) {
	res := make(Progression, 0, len(names))
	for _, name := range names {
		pc, err := Parse(name)
		if err != nil {
			return nil, err
		}
		res = append(res, pc)
	}
	return res, nil
}

func (p Progression) Transpose(semitones uint) Progression {
	return util.Map(p, func(c PitchClass) PitchClass {
		return c.Transpose(semitones)
	})
}

func (p Progression) HasBarreChord() bool {
	return util.Any(p, PitchClass.IsBarreChord)
}

func (p Progression) Names() []string {
	return util.Map(p, PitchClass.String)
}

func (p Progression) String() string {
	return strings.Join(p.Names(), " ")
}
