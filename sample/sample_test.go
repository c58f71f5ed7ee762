package sample

import (
	"bytes"
	"testing"

	"github.com/jsphweid/capofinder/chord"
	"github.com/stretchr/testify/assert"
)

func TestTriadKeys(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]uint8{48, 52, 55}, triadKeys(chord.C))
	assert.Equal([]uint8{59, 63, 66}, triadKeys(chord.B))
}

func TestCreateWritesOneTrack(t *testing.T) {
	s, err := Create(chord.Progression{chord.G, chord.D}, 96)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(s.Tracks, 1)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, chord.Progression{chord.G, chord.D}, 96)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]byte("MThd"), buf.Bytes()[:4])
}

func TestZeroTicksPerQuarterIsRejected(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, chord.Progression{chord.G}, 0)

	assert := assert.New(t)
	assert.ErrorContains(err, "ticks per quarter")
	assert.Zero(buf.Len())
}
